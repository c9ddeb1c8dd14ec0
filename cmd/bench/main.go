package main

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/INLOpen/dynarray"
	"github.com/dustin/go-humanize"
	"github.com/fulldump/goconfig"
)

type Config struct {
	N    int   `usage:"number of elements per run"`
	Seed int64 `usage:"random seed, 0 picks one"`
}

type run struct {
	name string
	fn   func(values []int) *dynarray.Array[int]
}

func main() {
	c := Config{
		N: 200_000,
	}
	goconfig.Read(&c)

	seed := uint64(c.Seed)
	if seed == 0 {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed))
	values := make([]int, c.N)
	for i := range values {
		values[i] = r.IntN(64)
	}

	runs := []run{
		{"push", func(values []int) *dynarray.Array[int] {
			a := dynarray.New[int]()
			for _, v := range values {
				a.PushBack(v)
			}
			return a
		}},
		{"push-reserved", func(values []int) *dynarray.Array[int] {
			a := dynarray.New[int]()
			a.Reserve(len(values))
			for _, v := range values {
				a.PushBack(v)
			}
			return a
		}},
		{"from-slice", func(values []int) *dynarray.Array[int] {
			return dynarray.FromSlice(values)
		}},
		{"push-remove-all", func(values []int) *dynarray.Array[int] {
			a := dynarray.FromSlice(values)
			for v := 0; v < 8; v++ {
				a.RemoveAll(v)
			}
			a.Repack()
			return a
		}},
	}

	fmt.Printf("Running lightweight dynarray microbench (N=%s, seed=%d)\n", humanize.Comma(int64(c.N)), seed)

	for _, cfg := range runs {
		runtime.GC()
		time.Sleep(50 * time.Millisecond)
		fmt.Printf("\nRun: %s\n", cfg.name)

		var msBefore, msAfter runtime.MemStats
		runtime.ReadMemStats(&msBefore)
		start := time.Now()

		a := cfg.fn(values)

		dur := time.Since(start)
		runtime.ReadMemStats(&msAfter)

		nsPerOp := float64(dur.Nanoseconds()) / float64(max(c.N, 1))
		fmt.Printf("Duration: %s, ns/op: %.1f, TotalAlloc diff: %s, Len: %d, Cap: %d\n",
			dur, nsPerOp, humanize.Bytes(msAfter.TotalAlloc-msBefore.TotalAlloc), a.Len(), a.Cap())
	}
}
