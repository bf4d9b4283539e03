package otel

import (
	"github.com/terraskye/remotecontrol"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/terraskye/remotecontrol"
)

// Semantic attribute keys following OpenTelemetry conventions
const (
	// Command attributes
	AttrCommandName = attribute.Key("remotecontrol.command.name")
	AttrDispatchID  = attribute.Key("remotecontrol.dispatch.id")
	AttrReversing   = attribute.Key("remotecontrol.command.reversing")

	// Slot attributes
	AttrSlot   = attribute.Key("remotecontrol.slot")
	AttrButton = attribute.Key("remotecontrol.button")

	// Operation attributes
	AttrOperation = attribute.Key("remotecontrol.operation")
	AttrUndone    = attribute.Key("remotecontrol.undo.applied")
	AttrErrorType = attribute.Key("remotecontrol.error.type")
)

var (
	meter  = otel.Meter(instrumentationName, metric.WithInstrumentationVersion(remotecontrol.InstrumentationVersion))
	tracer = otel.Tracer(instrumentationName, trace.WithInstrumentationVersion(remotecontrol.InstrumentationVersion))

	// Command metrics
	CommandsInvoked, _ = meter.Int64Counter(
		"remotecontrol.commands.invoked",
		metric.WithDescription("Number of commands invoked"),
		metric.WithUnit("{command}"),
	)

	CommandsReversed, _ = meter.Int64Counter(
		"remotecontrol.commands.reversed",
		metric.WithDescription("Number of commands reversed"),
		metric.WithUnit("{command}"),
	)

	CommandsDuration, _ = meter.Float64Histogram(
		"remotecontrol.commands.duration",
		metric.WithDescription("Command invoke and reverse duration"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 5, 10, 25, 50, 100, 250, 500, 1000),
	)

	CommandsInFlight, _ = meter.Int64UpDownCounter(
		"remotecontrol.commands.in_flight",
		metric.WithDescription("Number of commands currently being invoked or reversed"),
		metric.WithUnit("{command}"),
	)

	// Remote metrics
	RemoteDispatches, _ = meter.Int64Counter(
		"remotecontrol.remote.dispatches",
		metric.WithDescription("Number of slot dispatches"),
		metric.WithUnit("{dispatch}"),
	)

	RemoteUndos, _ = meter.Int64Counter(
		"remotecontrol.remote.undos",
		metric.WithDescription("Number of undo requests"),
		metric.WithUnit("{undo}"),
	)

	RemoteErrors, _ = meter.Int64Counter(
		"remotecontrol.remote.errors",
		metric.WithDescription("Number of rejected bind and dispatch calls"),
		metric.WithUnit("{error}"),
	)
)
