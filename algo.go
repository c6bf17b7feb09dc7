package vector

import "sort"

// NotFound is returned by Search when no element matches the key.
const NotFound = -1

// CompareFunc orders two elements. It returns a negative number when a sorts
// before b, zero when they are equal and a positive number otherwise.
type CompareFunc func(a, b []byte) int

// MapFunc is applied to each element by Map. It may modify elem in place.
type MapFunc func(elem []byte, aux any)

// Sort reorders the elements in place into non-decreasing order according to
// cmp. The sort is not stable. No element is freed.
func (v *Vector) Sort(cmp CompareFunc) {
	v.panicIfDisposed()
	if cmp == nil {
		fail(ErrInvalidArgument, "nil compare function")
	}
	sort.Sort(&sorter{v: v, cmp: cmp})
}

// Map calls fn on every element in index order, passing aux through.
// fn must not change the length of the vector.
func (v *Vector) Map(fn MapFunc, aux any) {
	v.panicIfDisposed()
	if fn == nil {
		fail(ErrInvalidArgument, "nil map function")
	}
	for i := 0; i < v.logLen; i++ {
		fn(v.slot(i), aux)
	}
}

// Search returns the index of an element in [start, Len) for which
// cmp(key, elem) reports zero, or NotFound.
//
// If sorted is true the range must already be ordered by cmp and a binary
// search finds the first match in it. Otherwise the range is scanned from
// start and the first match is returned.
func (v *Vector) Search(key []byte, cmp CompareFunc, start int, sorted bool) int {
	v.panicIfDisposed()
	if key == nil || cmp == nil {
		fail(ErrInvalidArgument, "nil key or compare function")
	}
	if start < 0 || start > v.logLen {
		fail(ErrOutOfRange, "Search from %d with len %d", start, v.logLen)
	}
	if v.logLen == 0 {
		return NotFound
	}

	if sorted {
		n := v.logLen - start
		i := sort.Search(n, func(i int) bool {
			return cmp(key, v.slot(start+i)) <= 0
		})
		if i < n && cmp(key, v.slot(start+i)) == 0 {
			return start + i
		}
		return NotFound
	}

	for i := start; i < v.logLen; i++ {
		if cmp(key, v.slot(i)) == 0 {
			return i
		}
	}
	return NotFound
}

// sorter adapts a Vector to sort.Interface. Swaps go through the vector's
// scratch slot.
type sorter struct {
	v   *Vector
	cmp CompareFunc
}

func (s *sorter) Len() int { return s.v.logLen }

func (s *sorter) Less(i, j int) bool {
	return s.cmp(s.v.slot(i), s.v.slot(j)) < 0
}

func (s *sorter) Swap(i, j int) {
	a, b := s.v.slot(i), s.v.slot(j)
	copy(s.v.scratch, a)
	copy(a, b)
	copy(b, s.v.scratch)
}
