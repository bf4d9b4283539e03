package otel

import (
	"context"
	"errors"

	"github.com/terraskye/remotecontrol"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type remoteTelemetry struct {
	cfg  *config
	next remotecontrol.Remote
}

// WithRemoteTelemetry wraps a Remote with OpenTelemetry tracing and metrics.
//
// Bind, DispatchOn, DispatchOff and UndoLast each start a span named
// "<operation>.<method>". Rejected slots mark the span as an error and are
// counted in RemoteErrors; an empty undo is not an error and only sets the
// remotecontrol.undo.applied attribute to false.
//
// Example Usage:
//
//	remote := WithRemoteTelemetry(remotecontrol.NewRemoteControl(), WithOperation("living-room"))
func WithRemoteTelemetry(next remotecontrol.Remote, opts ...Option) remotecontrol.Remote {
	return &remoteTelemetry{cfg: newConfig(opts), next: next}
}

func (r *remoteTelemetry) Bind(slot int, on, off remotecontrol.Command) error {
	ctx := context.Background()
	ctx, span := r.start(ctx, "bind", AttrSlot.Int(slot))
	defer span.End()

	err := r.next.Bind(slot, on, off)
	r.end(ctx, span, "bind", err)
	return err
}

func (r *remoteTelemetry) DispatchOn(ctx context.Context, slot int) error {
	return r.dispatch(ctx, slot, remotecontrol.ButtonOn, r.next.DispatchOn)
}

func (r *remoteTelemetry) DispatchOff(ctx context.Context, slot int) error {
	return r.dispatch(ctx, slot, remotecontrol.ButtonOff, r.next.DispatchOff)
}

func (r *remoteTelemetry) dispatch(ctx context.Context, slot int, button remotecontrol.Button, fn func(context.Context, int) error) error {
	method := "dispatch_" + button.String()
	ctx, span := r.start(ctx, method, AttrSlot.Int(slot), AttrButton.String(button.String()))
	defer span.End()

	err := fn(ctx, slot)
	if err == nil {
		RemoteDispatches.Add(ctx, 1, metric.WithAttributes(AttrButton.String(button.String())))
	}
	r.end(ctx, span, method, err)
	return err
}

func (r *remoteTelemetry) UndoLast(ctx context.Context) bool {
	ctx, span := r.start(ctx, "undo_last")
	defer span.End()

	undone := r.next.UndoLast(ctx)
	span.SetAttributes(AttrUndone.Bool(undone))
	if !undone {
		span.AddEvent("history_empty")
	}
	RemoteUndos.Add(ctx, 1, metric.WithAttributes(AttrUndone.Bool(undone)))
	span.SetStatus(codes.Ok, "")
	return undone
}

func (r *remoteTelemetry) Describe() string {
	return r.next.Describe()
}

func (r *remoteTelemetry) start(ctx context.Context, method string, extra ...attribute.KeyValue) (context.Context, trace.Span) {
	attr := r.cfg.attributes(ctx, append(extra, AttrOperation.String(method))...)
	return tracer.Start(ctx, r.cfg.spanName(ctx, method),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attr...),
	)
}

func (r *remoteTelemetry) end(ctx context.Context, span trace.Span, method string, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	errType := "internal"
	if errors.Is(err, remotecontrol.ErrSlotOutOfRange) {
		errType = "slot_out_of_range"
	}
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err, trace.WithAttributes(AttrErrorType.String(errType)))
	RemoteErrors.Add(ctx, 1, metric.WithAttributes(
		AttrOperation.String(method),
		AttrErrorType.String(errType),
	))
}
