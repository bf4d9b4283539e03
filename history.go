package remotecontrol

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Button identifies which side of a slot was pressed.
type Button int

const (
	ButtonOn Button = iota
	ButtonOff
)

func (b Button) String() string {
	switch b {
	case ButtonOn:
		return "on"
	case ButtonOff:
		return "off"
	default:
		return "unknown"
	}
}

// Entry records one dispatched command.
type Entry struct {
	ID           uuid.UUID
	Slot         int
	Button       Button
	Command      Command
	DispatchedAt time.Time
}

// History defines the contract for the record of dispatched commands used
// by UndoLast.
//
// Implementations must guarantee:
//   - Pop returns the most recently pushed entry that has not been popped.
//   - Pop on an empty history returns false and never panics.
//   - Entries lists entries most recent first.
type History interface {
	// Push records a dispatched command.
	Push(entry Entry)

	// Pop removes and returns the most recent entry.
	Pop() (Entry, bool)

	// Len returns the number of entries that can be undone.
	Len() int

	// Entries returns a snapshot of the history, most recent first.
	Entries() []Entry

	// Clear drops all entries without reversing them.
	Clear()
}

// stackHistory keeps every dispatched command for multi-level undo.
type stackHistory struct {
	mu      sync.Mutex
	entries []Entry
	limit   int
}

// NewStackHistory creates a multi-level history. A limit <= 0 keeps every
// entry; otherwise the oldest entries are dropped once the limit is reached.
func NewStackHistory(limit int) History {
	if limit < 0 {
		limit = 0
	}
	return &stackHistory{limit: limit}
}

func (h *stackHistory) Push(entry Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, entry)
	if h.limit > 0 && len(h.entries) > h.limit {
		excess := len(h.entries) - h.limit
		h.entries = slices.Delete(h.entries, 0, excess)
	}
}

func (h *stackHistory) Pop() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return Entry{}, false
	}
	last := len(h.entries) - 1
	entry := h.entries[last]
	h.entries[last] = Entry{}
	h.entries = h.entries[:last]
	return entry, true
}

func (h *stackHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *stackHistory) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := slices.Clone(h.entries)
	slices.Reverse(out)
	return out
}

func (h *stackHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

// lastCommandHistory keeps a single cell: one level of undo.
type lastCommandHistory struct {
	mu    sync.Mutex
	entry Entry
	set   bool
}

// NewLastCommandHistory creates a history that only remembers the most
// recently dispatched command.
func NewLastCommandHistory() History {
	return &lastCommandHistory{}
}

func (h *lastCommandHistory) Push(entry Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entry = entry
	h.set = true
}

func (h *lastCommandHistory) Pop() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.set {
		return Entry{}, false
	}
	entry := h.entry
	h.entry = Entry{}
	h.set = false
	return entry, true
}

func (h *lastCommandHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.set {
		return 1
	}
	return 0
}

func (h *lastCommandHistory) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.set {
		return nil
	}
	return []Entry{h.entry}
}

func (h *lastCommandHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entry = Entry{}
	h.set = false
}
