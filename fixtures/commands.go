package fixtures

import (
	"context"
	"fmt"
	"sync"

	rc "github.com/terraskye/remotecontrol"
)

// Call is one recorded Invoke or Reverse.
type Call struct {
	Command string
	Op      string // "invoke" or "reverse"
	Slot    int
	HasSlot bool
}

func (c Call) String() string {
	return fmt.Sprintf("%s.%s", c.Command, c.Op)
}

// Journal records calls from several commands in the order they happened.
type Journal struct {
	mu    sync.Mutex
	calls []Call
}

// NewJournal creates an empty Journal.
func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) record(c Call) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = append(j.calls, c)
}

// Calls returns a copy of every recorded call.
func (j *Journal) Calls() []Call {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Call, len(j.calls))
	copy(out, j.calls)
	return out
}

// Trace returns the calls as "name.op" strings.
func (j *Journal) Trace() []string {
	calls := j.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

// Reset clears the journal.
func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = nil
}

// SpyCommand is a configurable Command that records every call.
type SpyCommand struct {
	mu sync.Mutex

	name    string
	journal *Journal

	// Function overrides
	InvokeFn  func(ctx context.Context)
	ReverseFn func(ctx context.Context)

	// Call tracking
	InvokeCalls  int
	ReverseCalls int

	// Captured context from last call
	LastCtx context.Context
}

// SpyCommandBuilder provides a fluent API for constructing spy commands.
type SpyCommandBuilder struct {
	name      string
	journal   *Journal
	invokeFn  func(ctx context.Context)
	reverseFn func(ctx context.Context)
}

// NewSpyCommand creates a new SpyCommandBuilder with sensible defaults.
func NewSpyCommand() *SpyCommandBuilder {
	return &SpyCommandBuilder{name: "SpyCommand"}
}

// WithName sets the command name reported to Describe.
func (b *SpyCommandBuilder) WithName(name string) *SpyCommandBuilder {
	b.name = name
	return b
}

// WithJournal records calls into a shared journal.
func (b *SpyCommandBuilder) WithJournal(j *Journal) *SpyCommandBuilder {
	b.journal = j
	return b
}

// OnInvoke sets a function run on every Invoke.
func (b *SpyCommandBuilder) OnInvoke(fn func(ctx context.Context)) *SpyCommandBuilder {
	b.invokeFn = fn
	return b
}

// OnReverse sets a function run on every Reverse.
func (b *SpyCommandBuilder) OnReverse(fn func(ctx context.Context)) *SpyCommandBuilder {
	b.reverseFn = fn
	return b
}

// Build constructs the SpyCommand.
func (b *SpyCommandBuilder) Build() *SpyCommand {
	return &SpyCommand{
		name:      b.name,
		journal:   b.journal,
		InvokeFn:  b.invokeFn,
		ReverseFn: b.reverseFn,
	}
}

// Invoke implements Command.Invoke.
func (c *SpyCommand) Invoke(ctx context.Context) {
	c.track(ctx, "invoke")
	if c.InvokeFn != nil {
		c.InvokeFn(ctx)
	}
}

// Reverse implements Command.Reverse.
func (c *SpyCommand) Reverse(ctx context.Context) {
	c.track(ctx, "reverse")
	if c.ReverseFn != nil {
		c.ReverseFn(ctx)
	}
}

// Name reports the configured name.
func (c *SpyCommand) Name() string {
	return c.name
}

func (c *SpyCommand) track(ctx context.Context, op string) {
	c.mu.Lock()
	if op == "invoke" {
		c.InvokeCalls++
	} else {
		c.ReverseCalls++
	}
	c.LastCtx = ctx
	c.mu.Unlock()

	if c.journal != nil {
		slot, ok := rc.SlotFromContext(ctx)
		c.journal.record(Call{Command: c.name, Op: op, Slot: slot, HasSlot: ok})
	}
}

// Counts returns the number of Invoke and Reverse calls.
func (c *SpyCommand) Counts() (invokes, reverses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.InvokeCalls, c.ReverseCalls
}

// Counter is a tiny receiver for tests: an integer that commands add to.
type Counter struct {
	Value int
}

// NewAddCommand returns a command that adds n to the counter and subtracts
// it again on Reverse.
func NewAddCommand(c *Counter, n int) rc.Command {
	return rc.NewCommandFunc(fmt.Sprintf("Add%d", n),
		func(context.Context) { c.Value += n },
		func(context.Context) { c.Value -= n },
	)
}
