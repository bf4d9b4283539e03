package otel

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraskye/remotecontrol"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type commandTelemetry struct {
	name string
	next remotecontrol.Command
}

// WithCommandTelemetry wraps a Command with OpenTelemetry tracing and metrics.
//
// Every Invoke and Reverse runs inside its own span, named
// "command.invoke <name>" or "command.reverse <name>". The span carries the
// dispatch id, slot and button found in the context. Metrics recorded:
//   - CommandsInvoked / CommandsReversed: one per call.
//   - CommandsInFlight: incremented for the duration of the call.
//   - CommandsDuration: call duration in milliseconds.
//
// Commands never fail, so spans always end with codes.Ok.
//
// Example Usage:
//
//	cmd := WithCommandTelemetry(home.NewLightOnCommand(light))
//	remote.Bind(0, cmd, nil)
func WithCommandTelemetry(next remotecontrol.Command) remotecontrol.Command {
	return &commandTelemetry{
		name: remotecontrol.CommandName(next),
		next: next,
	}
}

func (c *commandTelemetry) Invoke(ctx context.Context) {
	c.observe(ctx, "invoke", CommandsInvoked, c.next.Invoke)
}

func (c *commandTelemetry) Reverse(ctx context.Context) {
	c.observe(ctx, "reverse", CommandsReversed, c.next.Reverse)
}

// Name keeps the wrapped command's name visible in Describe.
func (c *commandTelemetry) Name() string {
	return c.name
}

func (c *commandTelemetry) observe(ctx context.Context, op string, counter metric.Int64Counter, fn func(context.Context)) {
	attr := commandAttributes(ctx, c.name)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("command.%s %s", op, c.name),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attr...),
	)
	defer span.End()

	nameAttr := metric.WithAttributes(AttrCommandName.String(c.name))
	CommandsInFlight.Add(ctx, 1, nameAttr)
	defer CommandsInFlight.Add(ctx, -1, nameAttr)

	startTime := time.Now()
	fn(ctx)

	CommandsDuration.Record(ctx, float64(time.Since(startTime).Microseconds())/1000, nameAttr)
	counter.Add(ctx, 1, nameAttr)
	span.SetStatus(codes.Ok, "")
}

func commandAttributes(ctx context.Context, name string) []attribute.KeyValue {
	attr := []attribute.KeyValue{
		AttrCommandName.String(name),
		AttrReversing.Bool(remotecontrol.IsReversing(ctx)),
	}
	if id := remotecontrol.DispatchIDFromContext(ctx); id != uuid.Nil {
		attr = append(attr, AttrDispatchID.String(id.String()))
	}
	if slot, ok := remotecontrol.SlotFromContext(ctx); ok {
		attr = append(attr, AttrSlot.Int(slot))
	}
	if button, ok := remotecontrol.ButtonFromContext(ctx); ok {
		attr = append(attr, AttrButton.String(button.String()))
	}
	return attr
}
