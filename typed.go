package vector

import "unsafe"

// Of is a typed view over a Vector whose elements are values of T.
//
// T must not contain Go pointers: elements live in a plain byte buffer that
// the garbage collector does not scan. Slots sit at multiples of
// unsafe.Sizeof(T) from the start of the buffer, so every element keeps T's
// alignment.
type Of[T any] struct {
	v *Vector
}

// NewOf creates a typed vector with room for initialAlloc values of T.
// free may be nil. NewOf panics if T has zero size.
func NewOf[T any](free func(*T), initialAlloc int, opts ...Option) *Of[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		fail(ErrInvalidArgument, "zero-size element type")
	}
	var ff FreeFunc
	if free != nil {
		ff = func(elem []byte) { free(ptrOf[T](elem)) }
	}
	return &Of[T]{v: New(size, ff, initialAlloc, opts...)}
}

// Bytes returns the underlying byte-level vector.
func (o *Of[T]) Bytes() *Vector {
	return o.v
}

// Len returns the number of elements.
func (o *Of[T]) Len() int {
	return o.v.Len()
}

// At returns a pointer to the element at position. The pointer is only valid
// until the next Insert, Append, Delete or Sort.
func (o *Of[T]) At(position int) *T {
	return ptrOf[T](o.v.At(position))
}

// Get returns a copy of the element at position.
func (o *Of[T]) Get(position int) T {
	return *o.At(position)
}

// Values returns a copy of all elements in order.
func (o *Of[T]) Values() []T {
	out := make([]T, o.v.Len())
	for i := range out {
		out[i] = *ptrOf[T](o.v.slot(i))
	}
	return out
}

// Replace overwrites the element at position, freeing the old one first.
func (o *Of[T]) Replace(position int, val T) {
	o.v.Replace(position, bytesOf(&val))
}

// Insert places val at position.
func (o *Of[T]) Insert(position int, val T) {
	o.v.Insert(position, bytesOf(&val))
}

// Append adds val to the end.
func (o *Of[T]) Append(val T) {
	o.v.Append(bytesOf(&val))
}

// Delete frees and removes the element at position.
func (o *Of[T]) Delete(position int) {
	o.v.Delete(position)
}

// Sort orders the elements by cmp. The sort is not stable.
func (o *Of[T]) Sort(cmp func(a, b *T) int) {
	o.v.Sort(typedCompare(cmp))
}

// Map calls fn on a pointer to every element in index order.
func (o *Of[T]) Map(fn func(*T)) {
	if fn == nil {
		fail(ErrInvalidArgument, "nil map function")
	}
	o.v.Map(func(elem []byte, _ any) { fn(ptrOf[T](elem)) }, nil)
}

// Search returns the index of an element in [start, Len) equal to key under
// cmp, or NotFound. See Vector.Search.
func (o *Of[T]) Search(key T, cmp func(a, b *T) int, start int, sorted bool) int {
	return o.v.Search(bytesOf(&key), typedCompare(cmp), start, sorted)
}

// Dispose frees every element and releases the storage.
func (o *Of[T]) Dispose() {
	o.v.Dispose()
}

func typedCompare[T any](cmp func(a, b *T) int) CompareFunc {
	if cmp == nil {
		return nil
	}
	return func(a, b []byte) int {
		return cmp(ptrOf[T](a), ptrOf[T](b))
	}
}

// ptrOf reinterprets an element slot as a *T.
func ptrOf[T any](b []byte) *T {
	return (*T)(unsafe.Pointer(&b[0]))
}

// bytesOf exposes the memory of *p as a byte slice.
func bytesOf[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}
