package vector

import "log/slog"

// FreeFunc releases whatever an element owns. It is called with the element's
// bytes immediately before the element is overwritten, deleted or disposed.
type FreeFunc func(elem []byte)

// Vector is a resizable array of fixed-size elements stored back to back in a
// single byte buffer. Not goroutine-safe; use SafeVector for concurrent access.
type Vector struct {
	elems       []byte // backing storage, allocLen*elemSize bytes
	scratch     []byte // one element, staging for Insert and Sort swaps
	elemSize    int
	logLen      int
	allocLen    int
	reallocSize int
	free        FreeFunc
	grows       int
	logger      *slog.Logger
}

// New creates a Vector holding elements of elemSize bytes with room for
// initialAlloc of them. Each time the vector fills up it grows by another
// initialAlloc slots. free may be nil.
//
// New panics if elemSize or initialAlloc is not positive.
func New(elemSize int, free FreeFunc, initialAlloc int, opts ...Option) *Vector {
	if elemSize <= 0 || initialAlloc <= 0 {
		fail(ErrInvalidArgument, "elemSize=%d initialAlloc=%d", elemSize, initialAlloc)
	}
	o := buildOptions(opts)
	return &Vector{
		elems:       make([]byte, initialAlloc*elemSize),
		scratch:     make([]byte, elemSize),
		elemSize:    elemSize,
		allocLen:    initialAlloc,
		reallocSize: initialAlloc,
		free:        free,
		logger:      o.logger,
	}
}

// Dispose calls the FreeFunc on every element in index order and releases
// the storage. Any subsequent operation panics.
func (v *Vector) Dispose() {
	v.panicIfDisposed()
	if v.free != nil {
		for i := 0; i < v.logLen; i++ {
			v.free(v.slot(i))
		}
	}
	v.logger.Debug("vector disposed", "len", v.logLen, "cap", v.allocLen)
	v.elems = nil
	v.scratch = nil
	v.logLen = 0
	v.allocLen = 0
}

// Len returns the number of elements in the vector.
func (v *Vector) Len() int {
	v.panicIfDisposed()
	return v.logLen
}

// At returns the bytes of the element at position. The slice aliases the
// vector's storage and is only valid until the next Insert, Append, Delete
// or Sort.
func (v *Vector) At(position int) []byte {
	v.panicIfDisposed()
	if position < 0 || position >= v.logLen {
		fail(ErrOutOfRange, "At(%d) with len %d", position, v.logLen)
	}
	return v.slot(position)
}

// Replace overwrites the element at position with elem, freeing the old
// element first.
func (v *Vector) Replace(position int, elem []byte) {
	v.panicIfDisposed()
	if position < 0 || position >= v.logLen {
		fail(ErrOutOfRange, "Replace(%d) with len %d", position, v.logLen)
	}
	v.checkElem(elem)

	cur := v.slot(position)
	if v.free != nil {
		v.free(cur)
	}
	copy(cur, elem)
}

// Insert places elem at position, shifting the elements at position and
// after one slot to the right. position may equal Len.
func (v *Vector) Insert(position int, elem []byte) {
	v.panicIfDisposed()
	if position < 0 || position > v.logLen {
		fail(ErrOutOfRange, "Insert(%d) with len %d", position, v.logLen)
	}
	v.checkElem(elem)
	// elem may alias a slot that the shift below overwrites
	copy(v.scratch, elem)

	if v.logLen == v.allocLen {
		v.grow()
	}
	es := v.elemSize
	copy(v.elems[(position+1)*es:], v.elems[position*es:v.logLen*es])
	copy(v.elems[position*es:(position+1)*es], v.scratch)
	v.logLen++
}

// Append adds elem to the end of the vector.
func (v *Vector) Append(elem []byte) {
	v.panicIfDisposed()
	v.Insert(v.logLen, elem)
}

// Delete frees the element at position and shifts the elements after it
// one slot to the left. Capacity is left unchanged.
func (v *Vector) Delete(position int) {
	v.panicIfDisposed()
	if position < 0 || position >= v.logLen {
		fail(ErrOutOfRange, "Delete(%d) with len %d", position, v.logLen)
	}
	if v.free != nil {
		v.free(v.slot(position))
	}
	es := v.elemSize
	copy(v.elems[position*es:], v.elems[(position+1)*es:v.logLen*es])
	v.logLen--
	// zero the vacated slot
	clear(v.elems[v.logLen*es : (v.logLen+1)*es])
}

// grow adds reallocSize slots. Existing bytes are relocated as is; no
// element is freed.
func (v *Vector) grow() {
	from := v.allocLen
	v.allocLen += v.reallocSize
	buf := make([]byte, v.allocLen*v.elemSize)
	copy(buf, v.elems[:v.logLen*v.elemSize])
	v.elems = buf
	v.grows++
	v.logger.Debug("vector grown", "from", from, "to", v.allocLen, "elem_size", v.elemSize)
}

// slot returns the element window at i with its capacity capped, so an
// append on the returned slice can never spill into the next element.
func (v *Vector) slot(i int) []byte {
	off := i * v.elemSize
	return v.elems[off : off+v.elemSize : off+v.elemSize]
}

func (v *Vector) checkElem(elem []byte) {
	if len(elem) != v.elemSize {
		fail(ErrElementSize, "got %d bytes, want %d", len(elem), v.elemSize)
	}
}

// panicIfDisposed panics if the vector has been disposed.
func (v *Vector) panicIfDisposed() {
	if v.elems == nil {
		panic(ErrDisposed)
	}
}
