package logging

import (
	"context"
	"log/slog"

	"github.com/terraskye/remotecontrol"
)

type remoteLogger struct {
	logger *slog.Logger
	next   remotecontrol.Remote
}

// WithRemoteLogging wraps a Remote so every operation is logged through
// slog: debug when it starts, error when it fails.
func WithRemoteLogging(logger *slog.Logger, next remotecontrol.Remote) remotecontrol.Remote {
	return &remoteLogger{logger: logger, next: next}
}

func (r *remoteLogger) Bind(slot int, on, off remotecontrol.Command) error {
	l := r.logger.With(
		"slot", slot,
		"on", remotecontrol.CommandName(on),
		"off", remotecontrol.CommandName(off),
	)
	l.Debug("binding slot")

	err := r.next.Bind(slot, on, off)
	if err != nil {
		l.Error("error binding slot", "error", err)
	}
	return err
}

func (r *remoteLogger) DispatchOn(ctx context.Context, slot int) error {
	return r.dispatch(ctx, slot, remotecontrol.ButtonOn, r.next.DispatchOn)
}

func (r *remoteLogger) DispatchOff(ctx context.Context, slot int) error {
	return r.dispatch(ctx, slot, remotecontrol.ButtonOff, r.next.DispatchOff)
}

func (r *remoteLogger) dispatch(ctx context.Context, slot int, button remotecontrol.Button, fn func(context.Context, int) error) error {
	l := r.logger.With("slot", slot, "button", button.String())

	l.DebugContext(ctx, "dispatch started")

	err := fn(ctx, slot)

	if err != nil {
		l.ErrorContext(ctx, "error dispatching", "error", err)
	} else {
		l.DebugContext(ctx, "dispatched successfully")
	}
	return err
}

func (r *remoteLogger) UndoLast(ctx context.Context) bool {
	undone := r.next.UndoLast(ctx)
	if undone {
		r.logger.DebugContext(ctx, "undid last command")
	} else {
		r.logger.InfoContext(ctx, "no commands to undo")
	}
	return undone
}

func (r *remoteLogger) Describe() string {
	return r.next.Describe()
}
