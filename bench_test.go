package vector

import (
	"fmt"
	"testing"
)

// BenchmarkAppend measures appends across growth increments. Small
// increments reallocate often; the builtin slice doubles instead.
func BenchmarkAppend(b *testing.B) {
	elem := make([]byte, 16)

	for _, inc := range []int{8, 64, 1024} {
		b.Run(fmt.Sprintf("Vector_inc%d", inc), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := New(16, nil, inc)
				for j := 0; j < 4096; j++ {
					v.Append(elem)
				}
			}
		})
	}

	b.Run("Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var s [][16]byte
			for j := 0; j < 4096; j++ {
				s = append(s, [16]byte{})
			}
			_ = s
		}
	})
}

// BenchmarkInsertFront measures the worst case shift on insertion.
func BenchmarkInsertFront(b *testing.B) {
	elem := make([]byte, 8)
	for _, n := range []int{64, 1024} {
		b.Run(fmt.Sprintf("len%d", n), func(b *testing.B) {
			v := New(8, nil, n+1)
			for j := 0; j < n; j++ {
				v.Append(elem)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v.Insert(0, elem)
				v.Delete(0)
			}
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	const n = 4096
	v := New(4, nil, n)
	for i := uint32(0); i < n; i++ {
		v.Append(u32(i * 2))
	}
	key := u32(n + 1)

	b.Run("Linear", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Search(key, cmpU32, 0, false)
		}
	})

	b.Run("Binary", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Search(key, cmpU32, 0, true)
		}
	})
}

func BenchmarkSort(b *testing.B) {
	const n = 1024
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := New(4, nil, n)
		for j := uint32(0); j < n; j++ {
			v.Append(u32((j * 2654435761) % n))
		}
		b.StartTimer()
		v.Sort(cmpU32)
	}
}

func BenchmarkTypedAppend(b *testing.B) {
	type record struct {
		ID   int64
		Data [56]byte
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		o := NewOf[record](nil, 256)
		for j := 0; j < 1024; j++ {
			o.Append(record{ID: int64(j)})
		}
	}
}
