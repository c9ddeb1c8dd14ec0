package dynarray

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfRange is returned when an index-taking operation receives a
	// position outside the live region [0, Len()).
	// ErrOutOfRange จะถูกคืนค่าเมื่อ index ที่ส่งเข้ามาอยู่นอกช่วง [0, Len())
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrUnderflow is returned when popping from an empty array.
	// ErrUnderflow จะถูกคืนค่าเมื่อเรียก pop บน array ที่ว่างเปล่า
	ErrUnderflow = errors.New("dynarray: array is empty")
)

// checkIndex rejects any pos that is not inside the live region.
func (a *Array[T]) checkIndex(pos int) error {
	if pos < 0 || pos >= a.size {
		return errors.Wrapf(ErrOutOfRange, "index %d, size %d", pos, a.size)
	}
	return nil
}
