package remotecontrol

// InstrumentationVersion is reported by the otel instrumentation scope.
const InstrumentationVersion = "0.1.0"
