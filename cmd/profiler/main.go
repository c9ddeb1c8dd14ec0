package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // Import for side effects: registers pprof handlers
	"runtime"
	"strings"
	"time"

	"github.com/INLOpen/dynarray"
	"github.com/dustin/go-humanize"
	"github.com/fulldump/goconfig"
)

// Config is read from flags and environment variables by goconfig.
// Usage: go run ./cmd/profiler -workload churn -items 5000000
type Config struct {
	Addr     string `usage:"pprof HTTP address"`
	Workload string `usage:"workload to run: PUSH | FRONT | CHURN"`
	Items    int    `usage:"number of elements to push"`
	Repack   bool   `usage:"call Repack after each churn round"`
	Keep     bool   `usage:"keep the process alive for profiling"`
}

func main() {
	c := Config{
		Addr:     "localhost:6060",
		Workload: "push",
		Items:    2_000_000,
		Repack:   true,
		Keep:     true,
	}
	goconfig.Read(&c)

	// เปิด pprof endpoint ผ่าน HTTP server ใน goroutine แยกต่างหาก
	go func() {
		fmt.Printf("Starting pprof server on http://%s/debug/pprof/\n", c.Addr)
		if err := http.ListenAndServe(c.Addr, nil); err != nil {
			log.Fatalf("pprof server failed: %v", err)
		}
	}()

	// รอให้ server เริ่มทำงานสักครู่
	time.Sleep(100 * time.Millisecond)

	fmt.Printf("Starting %s workload...\n", strings.ToLower(c.Workload))
	fmt.Printf(" - Items: %s\n", humanize.Comma(int64(c.Items)))

	runtime.GC() // สั่งให้ GC ทำงานเพื่อดู memory ก่อนเริ่ม
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	var a *dynarray.Array[int]
	switch strings.ToUpper(c.Workload) {
	case "PUSH":
		a = pushWorkload(c.Items)
	case "FRONT":
		a = frontWorkload(c.Items)
	case "CHURN":
		a = churnWorkload(c.Items, c.Repack)
	default:
		log.Fatalf("Unknown workload %s", c.Workload)
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	fmt.Printf("Finished in %s. Len: %s, Cap: %s, DeletedCount: %d\n",
		elapsed, humanize.Comma(int64(a.Len())), humanize.Comma(int64(a.Cap())), a.DeletedCount())
	fmt.Printf("TotalAlloc diff: %s\n", humanize.Bytes(after.TotalAlloc-before.TotalAlloc))

	if !c.Keep {
		return
	}
	fmt.Println("Program is keeping alive for profiling. Press Ctrl+C to exit.")
	select {}
}

// pushWorkload appends n elements; growth happens every StepCapacity pushes
// once the initial buffer is full, which makes the copy cost easy to see.
func pushWorkload(n int) *dynarray.Array[int] {
	a := dynarray.New[int]()
	for i := 0; i < n; i++ {
		a.PushBack(i)
	}
	return a
}

// frontWorkload prepends elements, shifting the whole live region each time.
// n is capped because the workload is quadratic.
func frontWorkload(n int) *dynarray.Array[int] {
	n = min(n, 100_000)
	a := dynarray.New[int]()
	for i := 0; i < n; i++ {
		a.PushFront(i)
	}
	return a
}

// churnWorkload interleaves pushes with removals of a recurring value.
func churnWorkload(n int, repack bool) *dynarray.Array[int] {
	const round = 10_000
	a := dynarray.New[int]()
	for done := 0; done < n; done += round {
		for i := 0; i < round; i++ {
			a.PushBack(i % 16)
		}
		a.RemoveAll(0)
		if repack {
			a.Repack()
		}
	}
	return a
}
