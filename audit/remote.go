package audit

import (
	"context"

	"github.com/terraskye/remotecontrol"
)

type remoteAudit struct {
	journal *Journal
	next    remotecontrol.Remote
}

// WithRemoteAudit wraps a Remote so every Bind, dispatch and undo is
// appended to j. Journal failures never fail the wrapped operation; check
// Journal.Err.
func WithRemoteAudit(j *Journal, next remotecontrol.Remote) remotecontrol.Remote {
	return &remoteAudit{journal: j, next: next}
}

func (r *remoteAudit) Bind(slot int, on, off remotecontrol.Command) error {
	err := r.next.Bind(slot, on, off)
	r.append(Record{
		Operation: OpBind,
		Slot:      &slot,
		On:        remotecontrol.CommandName(on),
		Off:       remotecontrol.CommandName(off),
	}, err)
	return err
}

func (r *remoteAudit) DispatchOn(ctx context.Context, slot int) error {
	err := r.next.DispatchOn(ctx, slot)
	r.append(Record{Operation: OpDispatchOn, Slot: &slot}, err)
	return err
}

func (r *remoteAudit) DispatchOff(ctx context.Context, slot int) error {
	err := r.next.DispatchOff(ctx, slot)
	r.append(Record{Operation: OpDispatchOff, Slot: &slot}, err)
	return err
}

func (r *remoteAudit) UndoLast(ctx context.Context) bool {
	undone := r.next.UndoLast(ctx)
	r.append(Record{Operation: OpUndoLast, Undone: &undone}, nil)
	return undone
}

func (r *remoteAudit) Describe() string {
	return r.next.Describe()
}

func (r *remoteAudit) append(rec Record, err error) {
	if err != nil {
		rec.Error = err.Error()
	}
	_ = r.journal.Append(rec)
}
