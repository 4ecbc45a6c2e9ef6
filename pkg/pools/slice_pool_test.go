package pools

import (
	"sync"
	"testing"
)

func TestSlicePool_Get(t *testing.T) {
	pool := NewSlicePool[int]()

	tests := []struct {
		name   string
		size   int
		minCap int
	}{
		{"tiny", 8, 8},
		{"small_exact", SmallCap, SmallCap},
		{"medium", 1000, 1000},
		{"medium_exact", MediumCap, MediumCap},
		{"large", 10000, 10000},
		{"large_exact", LargeCap, LargeCap},
		{"oversized", LargeCap + 1, LargeCap + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pool.Get(tt.size)
			if len(s) != 0 {
				t.Errorf("Get(%d) length = %d, want 0", tt.size, len(s))
			}
			if cap(s) < tt.minCap {
				t.Errorf("Get(%d) capacity = %d, want >= %d", tt.size, cap(s), tt.minCap)
			}
		})
	}
}

func TestSlicePool_PutAndReuse(t *testing.T) {
	pool := NewSlicePool[float64]()

	for i := 0; i < 10; i++ {
		s := pool.Get(100)
		for j := 0; j < 100; j++ {
			s = append(s, float64(j))
		}
		pool.Put(s)
	}

	s := pool.Get(100)
	if len(s) != 0 {
		t.Errorf("Reused slice should be empty, got length %d", len(s))
	}
	if cap(s) < 100 {
		t.Errorf("Reused slice capacity = %d, want >= 100", cap(s))
	}
}

func TestSlicePool_UndersizedSlicesNotFiled(t *testing.T) {
	pool := NewSlicePool[int]()

	// A 300-capacity slice may serve small requests but never medium ones.
	pool.Put(make([]int, 10, 300))
	if s := pool.Get(MediumCap); cap(s) < MediumCap {
		t.Errorf("Get(%d) capacity = %d", MediumCap, cap(s))
	}

	pool.Put(make([]int, 0, 5))
	pool.Put(make([]int, 0, MaxPooled+1))
	pool.Put(nil)
}

func TestSlicePool_Concurrent(t *testing.T) {
	pool := NewSlicePool[int]()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				size := (g*37 + i*13) % 5000
				s := pool.Get(size)
				if cap(s) < size {
					t.Errorf("Get(%d) capacity = %d", size, cap(s))
					return
				}
				s = append(s, g, i)
				pool.Put(s)
			}
		}(g)
	}
	wg.Wait()
}

func TestIntsDefaultPool(t *testing.T) {
	s := GetInts(50)
	if cap(s) < 50 {
		t.Fatalf("GetInts(50) capacity = %d", cap(s))
	}
	s = append(s, 1, 2, 3)
	PutInts(s)
}

func BenchmarkSlicePool_GetPut(b *testing.B) {
	pool := NewSlicePool[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := pool.Get(1024)
		pool.Put(s)
	}
}
