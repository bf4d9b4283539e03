package fixtures

import (
	"context"
	"sync"

	rc "github.com/terraskye/remotecontrol"
)

var _ rc.Remote = (*RemoteSpy)(nil)

// RemoteSpy is a configurable mock Remote for testing decorators.
// It tracks calls and allows injecting custom behavior.
type RemoteSpy struct {
	mu sync.Mutex

	// Function overrides
	BindFn        func(slot int, on, off rc.Command) error
	DispatchOnFn  func(ctx context.Context, slot int) error
	DispatchOffFn func(ctx context.Context, slot int) error
	UndoLastFn    func(ctx context.Context) bool
	DescribeFn    func() string

	// Call tracking
	BindCalls        int
	DispatchOnCalls  int
	DispatchOffCalls int
	UndoLastCalls    int

	// Captured arguments from last call
	LastSlot int

	// Error injection
	bindErr     error
	dispatchErr error
	undoResult  bool
}

// NewRemoteSpy creates a new RemoteSpy whose UndoLast reports success.
func NewRemoteSpy() *RemoteSpy {
	return &RemoteSpy{undoResult: true}
}

// FailOnBind configures the remote to return an error on Bind.
func (r *RemoteSpy) FailOnBind(err error) *RemoteSpy {
	r.bindErr = err
	return r
}

// FailOnDispatch configures the remote to return an error on both dispatches.
func (r *RemoteSpy) FailOnDispatch(err error) *RemoteSpy {
	r.dispatchErr = err
	return r
}

// WithEmptyHistory makes UndoLast report that nothing was undone.
func (r *RemoteSpy) WithEmptyHistory() *RemoteSpy {
	r.undoResult = false
	return r
}

// Bind implements Remote.Bind.
func (r *RemoteSpy) Bind(slot int, on, off rc.Command) error {
	r.mu.Lock()
	r.BindCalls++
	r.LastSlot = slot
	r.mu.Unlock()

	if r.BindFn != nil {
		return r.BindFn(slot, on, off)
	}
	return r.bindErr
}

// DispatchOn implements Remote.DispatchOn.
func (r *RemoteSpy) DispatchOn(ctx context.Context, slot int) error {
	r.mu.Lock()
	r.DispatchOnCalls++
	r.LastSlot = slot
	r.mu.Unlock()

	if r.DispatchOnFn != nil {
		return r.DispatchOnFn(ctx, slot)
	}
	return r.dispatchErr
}

// DispatchOff implements Remote.DispatchOff.
func (r *RemoteSpy) DispatchOff(ctx context.Context, slot int) error {
	r.mu.Lock()
	r.DispatchOffCalls++
	r.LastSlot = slot
	r.mu.Unlock()

	if r.DispatchOffFn != nil {
		return r.DispatchOffFn(ctx, slot)
	}
	return r.dispatchErr
}

// UndoLast implements Remote.UndoLast.
func (r *RemoteSpy) UndoLast(ctx context.Context) bool {
	r.mu.Lock()
	r.UndoLastCalls++
	r.mu.Unlock()

	if r.UndoLastFn != nil {
		return r.UndoLastFn(ctx)
	}
	return r.undoResult
}

// Describe implements Remote.Describe.
func (r *RemoteSpy) Describe() string {
	if r.DescribeFn != nil {
		return r.DescribeFn()
	}
	return "------ Remote Control -------\n"
}

// Reset clears all call counts and injected errors.
func (r *RemoteSpy) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.BindCalls = 0
	r.DispatchOnCalls = 0
	r.DispatchOffCalls = 0
	r.UndoLastCalls = 0
	r.LastSlot = 0
	r.bindErr = nil
	r.dispatchErr = nil
	r.undoResult = true
}
