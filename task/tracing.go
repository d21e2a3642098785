package task

import (
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InitTracing installs a process-wide SDK TracerProvider so the spans
// opened around each Task (task.go) and each resource manager's
// begin/end pair (see resource.Manager) are actually recorded rather than
// using the otel no-op default. The host is expected to attach its own
// exporter via additional sdktrace.WithBatcher/WithSyncer options; engines
// embedding this module without a configured exporter still get span
// lifecycle bookkeeping (parent/child relationships, timing) for free.
func InitTracing(opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}
