// Package trace records what the typecore tooling does, as a stream of
// structured span and point events.
//
// Enable it from the command line:
//
//	typecore render --trace=- --trace-level=detail fixtures/*.toml
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: failures only
//   - LevelPhase: command and pass boundaries (snapshot I/O, rendering)
//   - LevelDetail: one span per fixture file
//   - LevelDebug: per-declaration events
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "render", trace.CurrentSpan(ctx).SpanID)
//	defer span.End("")
package trace
