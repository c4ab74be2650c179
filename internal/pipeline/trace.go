package pipeline

import "github.com/npillmayer/schuko/tracing"

// TraceKey selects the tracer used by this package.
const TraceKey = "snudown.pipeline"

func tracer() tracing.Trace {
	return tracing.Select(TraceKey)
}
