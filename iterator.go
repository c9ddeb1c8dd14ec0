package dynarray

// Iterator provides a way to iterate over the live elements of an Array.
// The typical use is:
//
//	it := a.NewIterator()
//	for it.Next() {
//		i := it.Index()
//		v := it.Value()
//		// ...
//	}
//
// Deleted slots are skipped. An Iterator is only valid while the array is not
// modified.
//
// Iterator คือโครงสร้างที่ใช้สำหรับวนลูปผ่านสมาชิกใน Array
// ช่องที่ถูกลบ (Deleted) จะถูกข้ามไป
type Iterator[T any] struct {
	a   *Array[T] // อ้างอิงถึง Array ที่กำลังวนลูป
	pos int       // -1 คือก่อนสมาชิกแรก, a.size คือหลังสมาชิกสุดท้าย
}

// NewIterator creates a new iterator positioned before the first element.
// A call to Next() is required to advance to the first element.
// NewIterator สร้าง Iterator ใหม่ที่ชี้ไปยังตำแหน่งก่อนสมาชิกแรก
func (a *Array[T]) NewIterator() *Iterator[T] {
	return &Iterator[T]{a: a, pos: -1}
}

// Next moves the iterator to the next live element and returns true if the
// move was successful. It returns false if there are no more elements.
// Next เลื่อน Iterator ไปยังสมาชิกถัดไป คืนค่า false หากไม่มีสมาชิกเหลือแล้ว
func (it *Iterator[T]) Next() bool {
	for it.pos < it.a.size {
		it.pos++
		if it.pos < it.a.size && it.a.slots[it.pos].live() {
			return true
		}
	}
	return false
}

// Prev moves the iterator to the previous live element and returns true if
// the move was successful. To begin reverse iteration, use Last().
// Prev เลื่อน Iterator ไปยังสมาชิกก่อนหน้า
func (it *Iterator[T]) Prev() bool {
	if it.pos > it.a.size {
		it.pos = it.a.size
	}
	for it.pos >= 0 {
		it.pos--
		if it.pos >= 0 && it.a.slots[it.pos].live() {
			return true
		}
	}
	return false
}

// First moves the iterator to the first live element.
// It returns false if the array has no live element.
func (it *Iterator[T]) First() bool {
	it.pos = -1
	return it.Next()
}

// Last moves the iterator to the last live element.
// It returns false if the array has no live element.
func (it *Iterator[T]) Last() bool {
	it.pos = it.a.size
	return it.Prev()
}

// Seek positions the iterator just before index pos.
// A subsequent call to Next() advances to the first live element at or
// after pos.
// Seek เลื่อน Iterator ไปยังตำแหน่งก่อน index pos
// การเรียก Next() หลังจากนี้จะเลื่อนไปยังสมาชิกแรกที่ index >= pos
func (it *Iterator[T]) Seek(pos int) {
	switch {
	case pos < 0:
		it.pos = -1
	case pos > it.a.size:
		it.pos = it.a.size
	default:
		it.pos = pos - 1
	}
}

// Reset moves the iterator back to its initial state, before the first element.
func (it *Iterator[T]) Reset() {
	it.pos = -1
}

// Index returns the position of the current element.
// It should only be called after a move has returned true.
func (it *Iterator[T]) Index() int {
	return it.pos
}

// Value returns the current element.
// It should only be called after a move has returned true.
// Value คืนค่าสมาชิก ณ ตำแหน่งปัจจุบัน ควรเรียกหลังจาก Next() คืนค่า true เท่านั้น
func (it *Iterator[T]) Value() T {
	return it.a.slots[it.pos].value
}

// Clone creates an independent copy of the iterator at its current position.
func (it *Iterator[T]) Clone() *Iterator[T] {
	return &Iterator[T]{a: it.a, pos: it.pos}
}
