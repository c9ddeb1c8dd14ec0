package dynarray

import (
	"math/rand/v2"
	"testing"
)

// generateRandomValues generates n random values in [0, n*10).
func generateRandomValues(n int) []int {
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	values := make([]int, n)
	for i := range values {
		values[i] = r.IntN(n * 10)
	}
	return values
}

const benchmarkSize = 10000 // Number of items to push/search/remove

func BenchmarkArray_PushBack(b *testing.B) {
	values := generateRandomValues(benchmarkSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := New[int]() // สร้าง Array ใหม่ในแต่ละ iteration
		for j := 0; j < benchmarkSize; j++ {
			a.PushBack(values[j])
		}
	}
}

func BenchmarkSlice_Append(b *testing.B) {
	values := generateRandomValues(benchmarkSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var s []int
		for j := 0; j < benchmarkSize; j++ {
			s = append(s, values[j])
		}
	}
}

func BenchmarkArray_PushBackReserved(b *testing.B) {
	values := generateRandomValues(benchmarkSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := New[int]()
		a.Reserve(benchmarkSize)
		for j := 0; j < benchmarkSize; j++ {
			a.PushBack(values[j])
		}
	}
}

func BenchmarkArray_FindFirst(b *testing.B) {
	values := generateRandomValues(benchmarkSize)
	a := FromSlice(values)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.FindFirst(values[i%benchmarkSize])
	}
}

func BenchmarkArray_PushFront(b *testing.B) {
	const n = 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := New[int]()
		for j := 0; j < n; j++ {
			a.PushFront(j)
		}
	}
}

func BenchmarkArray_RemoveAtFront(b *testing.B) {
	values := generateRandomValues(benchmarkSize)
	b.StopTimer()
	for i := 0; i < b.N; i++ {
		a := FromSlice(values)
		b.StartTimer()
		for !a.IsEmpty() {
			_ = a.RemoveAt(0)
		}
		a.Repack()
		b.StopTimer()
	}
}

func BenchmarkArray_RemoveAll(b *testing.B) {
	values := make([]int, benchmarkSize)
	for i := range values {
		values[i] = i % 4
	}
	b.StopTimer()
	for i := 0; i < b.N; i++ {
		a := FromSlice(values)
		b.StartTimer()
		a.RemoveAll(0)
		b.StopTimer()
	}
}
