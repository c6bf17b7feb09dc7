// Package vector implements a type-erased resizable array.
//
// # Overview
//
// A Vector stores a sequence of fixed-size elements back to back in a single
// byte buffer. The caller chooses the element width at construction and
// supplies element bytes; the vector never looks inside them. It supports:
//
//   - Append, Insert and Delete with in-place shifting of the tail
//   - Replace and Map for in-place mutation
//   - Sort and Search (linear or binary) driven by a caller comparator
//   - An optional FreeFunc invoked on elements as they are destroyed
//
// # Basic Usage
//
//	v := vector.New(4, nil, 16) // 4-byte elements, 16 slots, grows by 16
//	defer v.Dispose()
//
//	var buf [4]byte
//	binary.LittleEndian.PutUint32(buf[:], 42)
//	v.Append(buf[:])
//
//	elem := v.At(0) // aliases the vector's storage
//
// The typed view removes the byte plumbing for pointer-free element types:
//
//	ints := vector.NewOf[int32](nil, 16)
//	ints.Append(42)
//	ints.Sort(func(a, b *int32) int { return cmp.Compare(*a, *b) })
//	i := ints.Search(42, func(a, b *int32) int { return cmp.Compare(*a, *b) }, 0, true)
//
// # Growth
//
// When an insertion finds every slot in use, the storage grows by the
// initial capacity: a vector created with 16 slots grows to 32, 48, 64 and so
// on. Growth relocates bytes without calling the FreeFunc. Storage never
// shrinks until Dispose.
//
// # Element Lifetime
//
// The FreeFunc runs exactly once for each element that is destroyed: on
// Replace (for the old value), on Delete, and on Dispose for every remaining
// element in index order. Insert, Append, Sort and growth never call it.
//
// Slices returned by At, and pointers returned by Of.At, alias the storage.
// They become invalid after Insert, Append, Delete or Sort.
//
// # Errors
//
// Contract violations such as an out-of-range position, a nil callback or
// use after Dispose are programming errors and panic. The panic value is an
// error wrapping ErrOutOfRange, ErrInvalidArgument, ErrElementSize or
// ErrDisposed. A failed Search is not an error; it returns NotFound.
//
// # Thread Safety
//
// Vector is not safe for concurrent use. SafeVector serializes every
// operation behind a mutex and only hands out copies of element bytes:
//
//	sv := vector.NewSafeVector(8, nil, 64)
//	defer sv.Dispose()
//	idx := sv.Append(buf)
//	elem := sv.Get(idx)
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("len=%d cap=%d grows=%d\n", m.Len, m.Cap, m.Grows)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//
// Growth and disposal are logged at debug level to the logger passed with
// WithLogger.
package vector
