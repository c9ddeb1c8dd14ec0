package dynarray_test

import (
	"fmt"
	"os"

	"github.com/INLOpen/dynarray"
)

func Example() {
	a := dynarray.New[int]()
	fmt.Println("Initial size:", a.Len())

	a.PushBack(10)
	a.PushBack(20)
	a.PushBack(30)
	fmt.Println("Size after adding elements:", a.Len())
	fmt.Println("Current elements:", a)

	if _, err := a.PopBack(); err != nil {
		fmt.Println(err)
	}
	fmt.Println("Size after removing an element:", a.Len())
	fmt.Println("Current elements:", a)

	a.PushFront(5)
	fmt.Println("Size after adding an element at the front:", a.Len())
	_ = a.Print(os.Stdout)

	// Output:
	// Initial size: 0
	// Size after adding elements: 3
	// Current elements: [10 20 30]
	// Size after removing an element: 2
	// Current elements: [10 20]
	// Size after adding an element at the front: 3
	// [5 10 20]
}

func ExampleArray_RemoveAt() {
	a := dynarray.FromSlice([]int{10, 20, 30})
	_ = a.RemoveAt(1)
	fmt.Println(a, a.Len(), a.DeletedCount())

	a.Repack()
	fmt.Println(a, a.Len(), a.DeletedCount())
	// Output:
	// [10 30] 2 1
	// [10 30] 2 0
}

func ExampleArray_FindFirst() {
	a := dynarray.FromSlice([]int{10, 20, 10})
	first, _ := a.FindFirst(10)
	last, _ := a.FindLast(10)
	_, ok := a.FindFirst(30)
	fmt.Println(first, last, ok)
	// Output: 0 2 false
}

func ExampleArray_Insert() {
	a := dynarray.FromSlice([]int{10, 30})
	fmt.Println(a.Insert(1, 20), a)
	fmt.Println(a.Insert(a.Len(), 40) != nil)
	// Output:
	// <nil> [10 20 30]
	// true
}
