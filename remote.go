package remotecontrol

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var now = time.Now

// Remote is the invoker contract shared by RemoteControl and its decorators.
type Remote interface {
	// Bind overwrites both commands of a slot. Nil commands bind the null
	// command. An out-of-range slot returns a *SlotOutOfRangeError and
	// changes nothing.
	Bind(slot int, on, off Command) error

	// DispatchOn invokes the slot's on command and records it in the history.
	DispatchOn(ctx context.Context, slot int) error

	// DispatchOff invokes the slot's off command and records it in the history.
	DispatchOff(ctx context.Context, slot int) error

	// UndoLast reverses the most recently dispatched command. It reports
	// false when the history is empty.
	UndoLast(ctx context.Context) bool

	// Describe returns a stable listing of every slot's bindings.
	Describe() string
}

var _ Remote = (*RemoteControl)(nil)

// RemoteControl binds pairs of commands to numbered slots, dispatches them
// on behalf of a caller and records every dispatch for undo.
//
// The slot table and history are guarded by a mutex, but commands are
// invoked and reversed outside of it. Callers that share a remote between
// goroutines must serialize dispatches themselves if they need ordering
// between receiver mutations and history entries.
type RemoteControl struct {
	mu          sync.Mutex
	onCommands  []Command
	offCommands []Command
	history     History
	logger      *logrus.Entry
}

// NewRemoteControl creates a remote with every slot bound to the null
// command.
//
// Example:
//
//	remote := NewRemoteControl(WithSlots(4), WithHistory(NewStackHistory(100)))
func NewRemoteControl(opts ...Option) *RemoteControl {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.History == nil {
		o.History = NewStackHistory(0)
	}

	r := &RemoteControl{
		onCommands:  make([]Command, o.Slots),
		offCommands: make([]Command, o.Slots),
		history:     o.History,
		logger:      o.Logger,
	}
	for i := 0; i < o.Slots; i++ {
		r.onCommands[i] = noCommand
		r.offCommands[i] = noCommand
	}
	return r
}

// NewRemoteControlFromConfig creates a remote from a validated Config.
// Options are applied after the configuration and take precedence.
func NewRemoteControlFromConfig(cfg Config, opts ...Option) (*RemoteControl, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new remote control: %w", err)
	}
	base := []Option{WithSlots(cfg.Slots), WithHistory(cfg.NewHistory())}
	return NewRemoteControl(append(base, opts...)...), nil
}

// Slots returns the size of the slot table.
func (r *RemoteControl) Slots() int {
	return len(r.onCommands)
}

func (r *RemoteControl) checkSlot(slot int) error {
	if slot < 0 || slot >= len(r.onCommands) {
		return &SlotOutOfRangeError{Slot: slot, Slots: len(r.onCommands)}
	}
	return nil
}

// Bind implements Remote.
func (r *RemoteControl) Bind(slot int, on, off Command) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.onCommands[slot] = orNull(on)
	r.offCommands[slot] = orNull(off)
	return nil
}

// Binding returns the commands currently bound to slot.
func (r *RemoteControl) Binding(slot int) (on, off Command, err error) {
	if err := r.checkSlot(slot); err != nil {
		return nil, nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.onCommands[slot], r.offCommands[slot], nil
}

// DispatchOn implements Remote.
func (r *RemoteControl) DispatchOn(ctx context.Context, slot int) error {
	return r.dispatch(ctx, slot, ButtonOn)
}

// DispatchOff implements Remote.
func (r *RemoteControl) DispatchOff(ctx context.Context, slot int) error {
	return r.dispatch(ctx, slot, ButtonOff)
}

func (r *RemoteControl) dispatch(ctx context.Context, slot int, button Button) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}

	r.mu.Lock()
	cmd := r.onCommands[slot]
	if button == ButtonOff {
		cmd = r.offCommands[slot]
	}
	r.mu.Unlock()

	entry := Entry{
		ID:           uuid.New(),
		Slot:         slot,
		Button:       button,
		Command:      cmd,
		DispatchedAt: now(),
	}

	cmd.Invoke(WithEntry(ctx, entry))
	r.history.Push(entry)
	return nil
}

// UndoLast implements Remote.
func (r *RemoteControl) UndoLast(ctx context.Context) bool {
	entry, ok := r.history.Pop()
	if !ok {
		r.logger.Info("no commands to undo")
		return false
	}

	entry.Command.Reverse(withReversing(WithEntry(ctx, entry)))
	return true
}

// CanUndo reports whether UndoLast would reverse a command.
func (r *RemoteControl) CanUndo() bool {
	return r.history.Len() > 0
}

// History returns the recorded dispatches, most recent first.
func (r *RemoteControl) History() []Entry {
	return r.history.Entries()
}

// ClearHistory drops every recorded dispatch without reversing it.
func (r *RemoteControl) ClearHistory() {
	r.history.Clear()
}

// Describe implements Remote.
func (r *RemoteControl) Describe() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("------ Remote Control -------\n")
	for i := range r.onCommands {
		fmt.Fprintf(&sb, "[slot %d] %s    %s\n", i, CommandName(r.onCommands[i]), CommandName(r.offCommands[i]))
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (r *RemoteControl) String() string {
	return r.Describe()
}
