package telemetry

import "errors"

// ErrNilRegisterer is returned by NewCollector when asked to register
// metrics against a nil prometheus.Registerer.
var ErrNilRegisterer = errors.New("telemetry: nil registerer")
