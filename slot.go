package dynarray

// State is the tag stored next to every buffer slot.
// State คือสถานะของแต่ละช่องใน buffer
type State uint8

const (
	// Empty marks a slot that was never written or has been reclaimed.
	// The zero value of State is Empty so a freshly made buffer is all Empty.
	Empty State = iota
	// Occupied marks a slot holding a live element.
	Occupied
	// Deleted marks a tombstone: the value is still in memory but is
	// treated as absent by every read and search.
	Deleted
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// slot คือช่องเก็บข้อมูลหนึ่งช่องใน buffer: ค่าและสถานะอยู่คู่กันเสมอ
type slot[T any] struct {
	value T
	state State
}

// live reports whether the slot holds an element visible to reads.
func (s *slot[T]) live() bool {
	return s.state == Occupied
}

// set writes v and marks the slot Occupied.
func (s *slot[T]) set(v T) {
	s.value = v
	s.state = Occupied
}

// reset clears the slot back to Empty and drops the reference to its value
// so the garbage collector can reclaim it.
// reset เคลียร์ช่องให้กลับเป็น Empty และล้างค่าเดิมเพื่อให้ GC คืนหน่วยความจำได้
func (s *slot[T]) reset() {
	var zero T
	s.value = zero
	s.state = Empty
}

// makeSlots allocates a buffer of n Empty slots.
func makeSlots[T any](n int) []slot[T] {
	return make([]slot[T], n)
}
