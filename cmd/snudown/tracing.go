package main

import (
	"sync"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"

	snudown "github.com/alnah/go-snudown"
	"github.com/alnah/go-snudown/internal/pipeline"
)

var tracingOnce sync.Once

// traceKeys are the tracers raised by --verbose.
var traceKeys = []string{snudown.TraceKey, pipeline.TraceKey}

// configureTracing routes library traces to the standard logger, at debug
// level when verbose and errors only otherwise. Only the first call of the
// process has an effect.
func configureTracing(verbose bool) {
	tracingOnce.Do(func() {
		tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
		conf := testconfig.Conf{
			"tracing.adapter":        "go",
			"trace.snudown":          "Error",
			"trace.snudown.pipeline": "Error",
		}
		if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err == nil {
			tracing.SetTraceSelector(trace2go.Selector())
		}

		level := tracing.LevelError
		if verbose {
			level = tracing.LevelDebug
		}
		for _, key := range traceKeys {
			tracing.Select(key).SetTraceLevel(level)
		}
	})
}
