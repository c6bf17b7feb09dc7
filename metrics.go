package vector

// Cap returns the number of element slots currently allocated.
func (v *Vector) Cap() int {
	return v.allocLen
}

// ElemSize returns the byte width of one element.
func (v *Vector) ElemSize() int {
	return v.elemSize
}

// GrowthIncrement returns the number of slots added on each growth.
func (v *Vector) GrowthIncrement() int {
	return v.reallocSize
}

// Grows returns how many times the storage has been reallocated.
func (v *Vector) Grows() int {
	return v.grows
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector) SizeInUse() int {
	return v.logLen * v.elemSize
}

// Capacity returns the size of the backing storage in bytes.
func (v *Vector) Capacity() int {
	return len(v.elems)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:             v.logLen,
		Cap:             v.allocLen,
		ElemSize:        v.elemSize,
		GrowthIncrement: v.reallocSize,
		Grows:           v.grows,
		SizeInUse:       v.SizeInUse(),
		Capacity:        v.Capacity(),
		Utilization:     v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len             int     // Live elements
	Cap             int     // Allocated element slots
	ElemSize        int     // Bytes per element
	GrowthIncrement int     // Slots added per growth
	Grows           int     // Number of reallocations
	SizeInUse       int     // Bytes held by live elements
	Capacity        int     // Backing storage in bytes
	Utilization     float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeVector

// Cap thread-safely returns the number of allocated element slots.
func (s *SafeVector) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// Grows thread-safely returns how many times the storage has been reallocated.
func (s *SafeVector) Grows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Grows()
}

// Utilization thread-safely returns the ratio of bytes in use to capacity.
func (s *SafeVector) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Utilization()
}

// Metrics thread-safely returns a snapshot of vector statistics.
func (s *SafeVector) Metrics() VectorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Metrics()
}
