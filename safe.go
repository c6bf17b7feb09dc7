package vector

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent access.
// All operations are serialized. Element bytes are never handed out while
// unlocked: Get returns a copy and Update runs a callback under the lock.
type SafeVector struct {
	mu sync.Mutex
	v  *Vector
}

// NewSafeVector creates a thread-safe vector. Arguments are as for New.
func NewSafeVector(elemSize int, free FreeFunc, initialAlloc int, opts ...Option) *SafeVector {
	return &SafeVector{v: New(elemSize, free, initialAlloc, opts...)}
}

// Len thread-safely returns the number of elements.
func (s *SafeVector) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Get thread-safely returns a copy of the element at position.
func (s *SafeVector) Get(position int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, s.v.elemSize)
	copy(out, s.v.At(position))
	return out
}

// Update thread-safely calls fn with the live element at position.
// fn may modify the element in place but must not retain it.
func (s *SafeVector) Update(position int, fn func(elem []byte)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn == nil {
		fail(ErrInvalidArgument, "nil update function")
	}
	fn(s.v.At(position))
}

// Replace thread-safely overwrites the element at position.
func (s *SafeVector) Replace(position int, elem []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Replace(position, elem)
}

// Insert thread-safely inserts elem at position.
func (s *SafeVector) Insert(position int, elem []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Insert(position, elem)
}

// Append thread-safely adds elem to the end and returns its index.
func (s *SafeVector) Append(elem []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Append(elem)
	return s.v.logLen - 1
}

// Delete thread-safely removes the element at position.
func (s *SafeVector) Delete(position int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Delete(position)
}

// Sort thread-safely sorts the elements.
func (s *SafeVector) Sort(cmp CompareFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Sort(cmp)
}

// Map thread-safely applies fn to every element. fn must not call back
// into s.
func (s *SafeVector) Map(fn MapFunc, aux any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Map(fn, aux)
}

// Search thread-safely searches for key. See Vector.Search.
func (s *SafeVector) Search(key []byte, cmp CompareFunc, start int, sorted bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Search(key, cmp, start, sorted)
}

// Dispose thread-safely frees every element and releases the storage.
func (s *SafeVector) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Dispose()
}
