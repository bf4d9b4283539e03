package remotecontrol

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "SlotOutOfRangeError",
			err:  &SlotOutOfRangeError{Slot: 9, Slots: 7},
			want: "slot 9 out of range [0,7)",
		},
		{
			name: "negative slot",
			err:  &SlotOutOfRangeError{Slot: -1, Slots: 7},
			want: "slot -1 out of range [0,7)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSlotOutOfRangeError_Is(t *testing.T) {
	err := fmt.Errorf("bind: %w", &SlotOutOfRangeError{Slot: 8, Slots: 7})

	if !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("expected errors.Is to match ErrSlotOutOfRange")
	}

	var rangeErr *SlotOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected errors.As to find *SlotOutOfRangeError")
	}
	if rangeErr.Slot != 8 || rangeErr.Slots != 7 {
		t.Errorf("unexpected error fields: %+v", rangeErr)
	}
	if errors.Is(err, ErrInvalidSlotCount) {
		t.Errorf("did not expect match with ErrInvalidSlotCount")
	}
}
