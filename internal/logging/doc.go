// Package logging configures zerolog for countrytable.
//
// It provides:
//   - Config: level, format (json or console), output target and optional file
//   - NewLoggerWithPath: builds a logger and reports whether a log file is in use,
//     falling back to stderr when the file cannot be opened
//   - ComponentLogger: child loggers tagged with a component name
//   - Trace IDs: a ULID per command invocation, carried in context.Context and
//     stamped on every event logged with .Ctx(ctx)
package logging
