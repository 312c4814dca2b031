// Package telemetry is the optional metrics/run-correlation collaborator
// domlem.Induce* accepts via domlem.WithTelemetry: a Collector stamps every
// induction run with a UUID (used as both a slog field and a Prometheus
// label, per SPEC_FULL.md's Domain Stack) and records the two induction
// counters and one histogram domlem.Telemetry declares.
//
// A nil domlem.Options.Telemetry (the default unless WithTelemetry is used)
// means domlem never calls into this package; a Collector's methods expect
// a Collector built by NewCollector, not a nil *Collector. This package is
// glue around the algorithmic core, never a dependency of it.
package telemetry
