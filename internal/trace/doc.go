// Package trace records what the venturecode CLI does while rendering.
//
// Events are spans (begin/end pairs) and points, tagged with a Scope:
//
//   - ScopeCommand: one CLI invocation
//   - ScopeFile: one directive file decoded and rendered
//   - ScopeStage: decode, render and write steps inside a file
//
// A Level decides which scopes are emitted (phase: commands, detail: files,
// debug: stages). Tracers are carried in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, parentID)
//	defer span.End("")
//
// The formatter packages (expr, directive) never trace.
package trace
