// package dynarray implements a generic growable array with tombstone-based
// deletion and explicit compaction.
// The array keeps a contiguous buffer of tagged slots. Removing an element
// first marks its slot Deleted, and Repack reclaims tombstoned slots into
// usable size. Capacity grows in fixed steps and never shrinks.
package dynarray

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// StepCapacity is both the initial capacity of a new array and the
	// minimum number of slots added whenever the buffer has to grow.
	// StepCapacity คือขนาดเริ่มต้นของ buffer และจำนวนช่องขั้นต่ำที่เพิ่มขึ้นทุกครั้งที่ขยาย
	StepCapacity = 15

	// NotFound is the index reported together with ok=false by FindFirst
	// and FindLast. It is never a valid position.
	NotFound = -1
)

// Equal reports whether two elements are equal.
// Equal คือฟังก์ชันสำหรับเปรียบเทียบว่าค่าสองค่าเท่ากันหรือไม่
type Equal[T any] func(a, b T) bool

// Array is a growable array of T.
// The zero value for an Array is not ready to use; one of the New functions must be called.
// An Array is not safe for concurrent use.
//
// Array คือ array ที่ขยายขนาดได้เอง
// ค่า zero value ของ Array จะยังไม่พร้อมใช้งาน, ต้องสร้างผ่านฟังก์ชัน New... เท่านั้น
type Array[T any] struct {
	slots   []slot[T] // buffer; len(slots) คือ capacity
	size    int       // ขอบเขตบนของช่วงที่ใช้งาน [0, size)
	deleted int       // จำนวน tombstone ที่ยังไม่ถูก repack
	equal   Equal[T]  // ฟังก์ชันเปรียบเทียบค่าสำหรับการค้นหา
}

// New creates an empty array for comparable element types.
// It uses == as the equality used by the Find and Remove operations.
// New สร้าง array ว่างสำหรับ type ที่รองรับ comparable โดยใช้ == ในการเปรียบเทียบ
func New[T comparable]() *Array[T] {
	return NewWithEqual[T](func(a, b T) bool { return a == b })
}

// NewWithEqual creates an empty array with a custom equality function.
// This is suitable for element types that are not comparable, such as slices.
// The equality function must not be nil.
// NewWithEqual สร้าง array ว่างพร้อมฟังก์ชันเปรียบเทียบที่กำหนดเอง
func NewWithEqual[T any](equal Equal[T]) *Array[T] {
	if equal == nil {
		panic("dynarray: equal function cannot be nil")
	}
	return &Array[T]{
		slots: makeSlots[T](StepCapacity),
		equal: equal,
	}
}

// FromSlice creates an array holding a copy of values, in order.
func FromSlice[T comparable](values []T) *Array[T] {
	a := New[T]()
	a.Reserve(len(values))
	for _, v := range values {
		a.slots[a.size].set(v)
		a.size++
	}
	return a
}

// Filled creates an array of n copies of value.
func Filled[T comparable](n int, value T) *Array[T] {
	a := New[T]()
	a.Resize(n, value)
	return a
}

// Sub returns a new array holding the live elements of [pos, pos+n).
// The range is clipped to Len(). It fails with ErrOutOfRange when pos is not
// a valid index or n is negative.
// Sub คืนค่า array ใหม่ที่คัดลอกสมาชิกในช่วง [pos, pos+n) (ตัดส่วนที่เกิน Len() ทิ้ง)
func (a *Array[T]) Sub(pos, n int) (*Array[T], error) {
	if err := a.checkIndex(pos); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "negative length %d", n)
	}
	end := a.size
	if n < a.size-pos {
		end = pos + n
	}

	out := NewWithEqual(a.equal)
	out.Reserve(end - pos)
	for i := pos; i < end; i++ {
		if a.slots[i].live() {
			out.slots[out.size].set(a.slots[i].value)
			out.size++
		}
	}
	return out, nil
}

// Clone returns a deep copy of the array.
// The copy replicates the whole buffer, including its capacity, tombstones
// and deleted counter, and shares no storage with the receiver.
// Clone สร้างสำเนาของ array ทั้ง buffer (รวม capacity และ tombstone)
// สำเนาที่ได้จะเป็นอิสระจากตัวต้นฉบับ
func (a *Array[T]) Clone() *Array[T] {
	slots := makeSlots[T](len(a.slots))
	copy(slots, a.slots)
	return &Array[T]{
		slots:   slots,
		size:    a.size,
		deleted: a.deleted,
		equal:   a.equal,
	}
}

// Assign replaces the contents of the array with a deep copy of other.
func (a *Array[T]) Assign(other *Array[T]) {
	if a == other {
		return
	}
	*a = *other.Clone()
}

// Len returns the number of slots in the live region.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return len(a.slots)
}

// DeletedCount returns the number of tombstones recorded since the last
// Clear or successful Repack.
//
// RemoveAt shifts the following elements over the tombstone it creates, so
// the counter may be non-zero while the live region holds no Deleted slot.
func (a *Array[T]) DeletedCount() int {
	return a.deleted
}

// IsEmpty reports whether Len() is zero.
func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

// IsFull reports whether Len() equals Cap().
func (a *Array[T]) IsFull() bool {
	return a.size == len(a.slots)
}

// Data returns a copy of the values stored in the live region, in order.
// Values of Deleted slots are included as they sit in the buffer; callers
// must not treat them as elements.
func (a *Array[T]) Data() []T {
	out := make([]T, a.size)
	for i := range out {
		out[i] = a.slots[i].value
	}
	return out
}

// At returns the element at pos.
func (a *Array[T]) At(pos int) (T, error) {
	var zero T
	if err := a.checkIndex(pos); err != nil {
		return zero, err
	}
	if !a.slots[pos].live() {
		return zero, errors.Wrapf(ErrOutOfRange, "index %d is %s", pos, a.slots[pos].state)
	}
	return a.slots[pos].value, nil
}

// Reserve guarantees room for n more elements beyond Len().
// When the buffer is too small it grows by max(n, StepCapacity) slots.
// Tombstones are copied across as they are; use Repack to reclaim them.
// Reserve จองพื้นที่ให้เพิ่มได้อีก n ตัว หากไม่พอจะขยาย buffer เพิ่ม max(n, StepCapacity) ช่อง
func (a *Array[T]) Reserve(n int) {
	if n <= 0 || len(a.slots)-a.size >= n {
		return
	}
	a.grow(len(a.slots) + max(n, StepCapacity))
}

// grow moves the live region into a new buffer of the given capacity.
// The new buffer is fully populated before it replaces the old one.
func (a *Array[T]) grow(capacity int) {
	slots := makeSlots[T](capacity)
	copy(slots, a.slots[:a.size])
	a.slots = slots
}

// Repack compacts the live region, dropping every slot that is not Occupied
// while keeping the relative order of the others. Len() becomes the number
// of kept elements and DeletedCount() is reset. Capacity is unchanged.
// Repack does nothing when DeletedCount() is zero.
// Repack บีบอัดช่วงที่ใช้งานโดยตัดช่องที่ไม่ใช่ Occupied ออก และรีเซ็ตตัวนับ tombstone
func (a *Array[T]) Repack() {
	if a.deleted == 0 {
		return
	}
	kept := 0
	for i := 0; i < a.size; i++ {
		if !a.slots[i].live() {
			continue
		}
		if kept != i {
			a.slots[kept] = a.slots[i]
		}
		kept++
	}
	for i := kept; i < a.size; i++ {
		a.slots[i].reset()
	}
	a.size = kept
	a.deleted = 0
}

// FindFirst returns the index of the first live element equal to value.
// ok is false, and index is NotFound, when there is no such element.
// FindFirst ค้นหาตำแหน่งแรกที่มีค่าเท่ากับ value
func (a *Array[T]) FindFirst(value T) (index int, ok bool) {
	for i := 0; i < a.size; i++ {
		if a.slots[i].live() && a.equal(a.slots[i].value, value) {
			return i, true
		}
	}
	return NotFound, false
}

// FindLast returns the index of the last live element equal to value.
// ok is false, and index is NotFound, when there is no such element.
// FindLast ค้นหาตำแหน่งสุดท้ายที่มีค่าเท่ากับ value
func (a *Array[T]) FindLast(value T) (index int, ok bool) {
	for i := a.size - 1; i >= 0; i-- {
		if a.slots[i].live() && a.equal(a.slots[i].value, value) {
			return i, true
		}
	}
	return NotFound, false
}

// Contains reports whether a live element equal to value exists.
func (a *Array[T]) Contains(value T) bool {
	_, ok := a.FindFirst(value)
	return ok
}

// PushBack appends v to the end of the array.
func (a *Array[T]) PushBack(v T) {
	a.Reserve(1)
	a.slots[a.size].set(v)
	a.size++
}

// PopBack removes and returns the last element.
// The trailing slot is reclaimed immediately; no tombstone is created.
// It fails with ErrUnderflow when the array is empty.
func (a *Array[T]) PopBack() (T, error) {
	var zero T
	if a.size == 0 {
		return zero, errors.Wrap(ErrUnderflow, "pop back")
	}
	last := &a.slots[a.size-1]
	v := last.value
	if last.state == Deleted {
		a.deleted--
	}
	last.reset()
	a.size--
	return v, nil
}

// PushFront inserts v at index 0, shifting every element one slot right.
func (a *Array[T]) PushFront(v T) {
	a.Reserve(1)
	copy(a.slots[1:a.size+1], a.slots[:a.size])
	a.slots[0].set(v)
	a.size++
}

// PopFront removes and returns the first element, shifting every other
// element one slot left. It fails with ErrUnderflow when the array is empty.
func (a *Array[T]) PopFront() (T, error) {
	var zero T
	if a.size == 0 {
		return zero, errors.Wrap(ErrUnderflow, "pop front")
	}
	first := a.slots[0]
	if first.state == Deleted {
		a.deleted--
	}
	copy(a.slots[:a.size-1], a.slots[1:a.size])
	a.slots[a.size-1].reset()
	a.size--
	return first.value, nil
}

// Insert places v at pos, shifting the tail right by one.
// pos must be an existing index: inserting at Len() is rejected with
// ErrOutOfRange, use PushBack to append.
// Insert แทรกค่า v ที่ตำแหน่ง pos (pos ต้องเป็น index ที่มีอยู่แล้ว, ไม่รับ pos == Len())
func (a *Array[T]) Insert(pos int, v T) error {
	if err := a.checkIndex(pos); err != nil {
		return err
	}
	a.Reserve(1)
	copy(a.slots[pos+1:a.size+1], a.slots[pos:a.size])
	a.slots[pos].set(v)
	a.size++
	return nil
}

// InsertSlice places values at pos, in order, shifting the tail right.
// The bounds rule is the same as for Insert.
func (a *Array[T]) InsertSlice(pos int, values []T) error {
	if err := a.checkIndex(pos); err != nil {
		return err
	}
	n := len(values)
	if n == 0 {
		return nil
	}
	a.Reserve(n)
	copy(a.slots[pos+n:a.size+n], a.slots[pos:a.size])
	for i, v := range values {
		a.slots[pos+i].set(v)
	}
	a.size += n
	return nil
}

// Replace overwrites the value at pos without touching its state.
func (a *Array[T]) Replace(pos int, v T) error {
	if err := a.checkIndex(pos); err != nil {
		return err
	}
	a.slots[pos].value = v
	return nil
}

// tombstone marks pos as Deleted and records it in the deleted counter.
func (a *Array[T]) tombstone(pos int) {
	a.slots[pos].state = Deleted
	a.deleted++
}

// closeGap shifts every slot after pos one position left and reclaims the
// vacated trailing slot.
func (a *Array[T]) closeGap(pos int) {
	copy(a.slots[pos:a.size-1], a.slots[pos+1:a.size])
	a.slots[a.size-1].reset()
	a.size--
}

// removeAt ลบสมาชิกที่ตำแหน่ง pos: สร้าง tombstone ก่อนแล้วเลื่อนสมาชิกที่ตามมาทับทันที
func (a *Array[T]) removeAt(pos int) {
	a.tombstone(pos)
	a.closeGap(pos)
}

// RemoveAt removes the element at pos and shifts the tail left by one.
//
// The slot is first tombstoned, which increments DeletedCount(), and the
// tombstone is then overwritten by the shift. After RemoveAt the counter is
// therefore non-zero although no gap is left, and a following Repack only
// resets the counter.
func (a *Array[T]) RemoveAt(pos int) error {
	if err := a.checkIndex(pos); err != nil {
		return err
	}
	a.removeAt(pos)
	return nil
}

// Erase removes n consecutive elements starting at pos.
// The whole range is validated before anything is removed.
func (a *Array[T]) Erase(pos, n int) error {
	if err := a.checkIndex(pos); err != nil {
		return err
	}
	if n < 0 || n > a.size-pos {
		return errors.Wrapf(ErrOutOfRange, "erase %d elements at %d, size %d", n, pos, a.size)
	}
	for i := 0; i < n; i++ {
		a.removeAt(pos)
	}
	return nil
}

// RemoveAll removes every live element equal to value and returns how many
// were removed.
func (a *Array[T]) RemoveAll(value T) int {
	removed := 0
	for i := 0; i < a.size; {
		if a.slots[i].live() && a.equal(a.slots[i].value, value) {
			// สมาชิกถัดไปถูกเลื่อนมาอยู่ที่ i จึงต้องตรวจ i ซ้ำอีกครั้ง
			a.removeAt(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

// RemoveFirst removes the first live element equal to value.
// It reports whether an element was removed.
func (a *Array[T]) RemoveFirst(value T) bool {
	i, ok := a.FindFirst(value)
	if ok {
		a.removeAt(i)
	}
	return ok
}

// RemoveLast removes the last live element equal to value.
// It reports whether an element was removed.
func (a *Array[T]) RemoveLast(value T) bool {
	i, ok := a.FindLast(value)
	if ok {
		a.removeAt(i)
	}
	return ok
}

// Resize pads the array with copies of value until Len() is n.
// It never truncates: when n <= Len() only the capacity reservation applies.
func (a *Array[T]) Resize(n int, value T) {
	a.Reserve(n)
	for i := a.size; i < n; i++ {
		a.slots[i].set(value)
	}
	if n > a.size {
		a.size = n
	}
}

// Clear removes every element and tombstone. Capacity is kept.
// Clear ลบสมาชิกทั้งหมด แต่ยังคง capacity เดิมไว้
func (a *Array[T]) Clear() {
	clear(a.slots)
	a.size = 0
	a.deleted = 0
}

// Swap exchanges the contents of a and other slot by slot over the range
// [0, max(a.Len(), other.Len())). The buffers themselves are not exchanged,
// so each array keeps its own capacity and is grown first if the exchanged
// range does not fit.
// Swap สลับข้อมูลทีละช่องระหว่างสอง array โดยไม่สลับ buffer
func (a *Array[T]) Swap(other *Array[T]) {
	if a == other {
		return
	}
	n := max(a.size, other.size)
	a.Reserve(n - a.size)
	other.Reserve(n - other.size)
	for i := 0; i < n; i++ {
		a.slots[i], other.slots[i] = other.slots[i], a.slots[i]
	}
	a.size, other.size = other.size, a.size
	a.deleted, other.deleted = other.deleted, a.deleted
}

// Range iterates over the live elements in index order.
// The iteration stops if the provided function f returns false.
// The array must not be modified while Range is running.
// Range วนลูปไปตามสมาชิกที่ยังใช้งานอยู่ตามลำดับ index
// การวนลูปจะหยุดลงหากฟังก์ชัน f คืนค่า false
func (a *Array[T]) Range(f func(i int, v T) bool) {
	for i := 0; i < a.size; i++ {
		if !a.slots[i].live() {
			continue
		}
		if !f(i, a.slots[i].value) {
			return
		}
	}
}

// All returns an iterator over the index/value pairs of the live elements.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return a.Range
}

// String renders the live elements in order, for example "[10 20 30]".
func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	a.Range(func(_ int, v T) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
		return true
	})
	b.WriteByte(']')
	return b.String()
}

// Print writes the rendering of String followed by a newline to w.
func (a *Array[T]) Print(w io.Writer) error {
	if _, err := io.WriteString(w, a.String()+"\n"); err != nil {
		return errors.Wrap(err, "print array")
	}
	return nil
}
