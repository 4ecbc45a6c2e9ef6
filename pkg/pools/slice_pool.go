package pools

import "sync"

// Size classes. Slices above MaxPooled are allocated directly and dropped
// on Put.
const (
	SmallCap  = 256
	MediumCap = 4096
	LargeCap  = 65536
	MaxPooled = LargeCap
)

// SlicePool pools slices of T in three capacity classes.
type SlicePool[T any] struct {
	small  sync.Pool
	medium sync.Pool
	large  sync.Pool
}

// NewSlicePool creates an empty pool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		small:  sync.Pool{New: newSlice[T](SmallCap)},
		medium: sync.Pool{New: newSlice[T](MediumCap)},
		large:  sync.Pool{New: newSlice[T](LargeCap)},
	}
}

func newSlice[T any](c int) func() any {
	return func() any {
		s := make([]T, 0, c)
		return &s
	}
}

func (p *SlicePool[T]) class(c int) *sync.Pool {
	switch {
	case c <= SmallCap:
		return &p.small
	case c <= MediumCap:
		return &p.medium
	case c <= LargeCap:
		return &p.large
	default:
		return nil
	}
}

// Get returns a zero-length slice with capacity of at least size.
func (p *SlicePool[T]) Get(size int) []T {
	pool := p.class(size)
	if pool == nil {
		return make([]T, 0, size)
	}
	sp, ok := pool.Get().(*[]T)
	if !ok || cap(*sp) < size {
		return make([]T, 0, size)
	}
	return (*sp)[:0]
}

// Put returns s to the pool. The caller must not use s afterwards.
func (p *SlicePool[T]) Put(s []T) {
	c := cap(s)
	if c == 0 || c > MaxPooled {
		return
	}
	// A slice is filed under the largest class it can fully serve.
	var pool *sync.Pool
	switch {
	case c >= LargeCap:
		pool = &p.large
	case c >= MediumCap:
		pool = &p.medium
	case c >= SmallCap:
		pool = &p.small
	default:
		return
	}
	s = s[:0]
	pool.Put(&s)
}

var defaultIntPool = NewSlicePool[int]()

// GetInts returns an []int from the shared pool.
func GetInts(size int) []int {
	return defaultIntPool.Get(size)
}

// PutInts returns an []int to the shared pool.
func PutInts(s []int) {
	defaultIntPool.Put(s)
}
