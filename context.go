package remotecontrol

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

// Define constants for context keys
const (
	dispatchIDKey   ctxKey = "dispatchID"
	slotKey         ctxKey = "slot"
	buttonKey       ctxKey = "button"
	dispatchedAtKey ctxKey = "dispatchedAt"
	reversingKey    ctxKey = "reversing"
)

// WithEntry adds the dispatch Entry to the context.
func WithEntry(ctx context.Context, entry Entry) context.Context {
	ctx = context.WithValue(ctx, dispatchIDKey, entry.ID)
	ctx = context.WithValue(ctx, slotKey, entry.Slot)
	ctx = context.WithValue(ctx, buttonKey, entry.Button)
	ctx = context.WithValue(ctx, dispatchedAtKey, entry.DispatchedAt)
	return ctx
}

// withReversing marks the context as belonging to an undo.
func withReversing(ctx context.Context) context.Context {
	return context.WithValue(ctx, reversingKey, true)
}

// DispatchIDFromContext returns the dispatch id or uuid.Nil if not present
func DispatchIDFromContext(ctx context.Context) uuid.UUID {
	if v := ctx.Value(dispatchIDKey); v != nil {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// SlotFromContext returns the slot and whether it was present
func SlotFromContext(ctx context.Context) (int, bool) {
	if v := ctx.Value(slotKey); v != nil {
		if slot, ok := v.(int); ok {
			return slot, true
		}
	}
	return 0, false
}

// ButtonFromContext returns the pressed button and whether it was present
func ButtonFromContext(ctx context.Context) (Button, bool) {
	if v := ctx.Value(buttonKey); v != nil {
		if b, ok := v.(Button); ok {
			return b, true
		}
	}
	return 0, false
}

// DispatchedAtFromContext returns the dispatch time or zero time if not present
func DispatchedAtFromContext(ctx context.Context) time.Time {
	if v := ctx.Value(dispatchedAtKey); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

// IsReversing reports whether the context belongs to an UndoLast call.
func IsReversing(ctx context.Context) bool {
	v, _ := ctx.Value(reversingKey).(bool)
	return v
}
