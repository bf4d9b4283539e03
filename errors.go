package remotecontrol

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotOutOfRange is matched by every SlotOutOfRangeError.
	ErrSlotOutOfRange = errors.New("slot out of range")

	ErrInvalidSlotCount   = errors.New("slot count must be positive")
	ErrInvalidHistoryMode = errors.New("invalid history mode")
)

// SlotOutOfRangeError is returned when a slot index falls outside the
// remote's slot table.
type SlotOutOfRangeError struct {
	Slot  int
	Slots int
}

func (e *SlotOutOfRangeError) Error() string {
	return fmt.Sprintf("slot %d out of range [0,%d)", e.Slot, e.Slots)
}

func (e *SlotOutOfRangeError) Is(target error) bool {
	return target == ErrSlotOutOfRange
}
