package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/roughset/drsa/condition"
)

// Collector satisfies domlem.Telemetry, recording per-induction-run
// metrics against a caller-supplied prometheus.Registerer and stamping a
// fresh run id (from google/uuid) onto every metric's run_id label and
// every log record Logger() produces.
type Collector struct {
	runID string

	objectsProcessed  *prometheus.CounterVec
	rulesInduced      *prometheus.CounterVec
	conditionsPerRule *prometheus.HistogramVec
}

// NewCollector registers this induction run's metrics against reg and
// returns a Collector stamped with a fresh run id. reg must not be nil;
// pass prometheus.NewRegistry() for an isolated registry (recommended
// per-run, since repeated Induce calls against the default registerer
// would otherwise collide on re-registration).
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	c := &Collector{
		runID: uuid.NewString(),
		objectsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drsa",
			Subsystem: "domlem",
			Name:      "objects_processed_total",
			Help:      "Objects removed from a union's base set during sequential covering, by induction run.",
		}, []string{"run_id"}),
		rulesInduced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drsa",
			Subsystem: "domlem",
			Name:      "rules_induced_total",
			Help:      "Rules accepted by the minimality checker, by induction run and rule type.",
		}, []string{"run_id", "rule_type"}),
		conditionsPerRule: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "drsa",
			Subsystem: "domlem",
			Name:      "rule_conditions_per_rule",
			Help:      "Number of elementary conditions in each induced rule's LHS, by induction run.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}, []string{"run_id"}),
	}

	for _, collector := range []prometheus.Collector{c.objectsProcessed, c.rulesInduced, c.conditionsPerRule} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("telemetry: registering collector: %w", err)
		}
	}
	return c, nil
}

// RunID returns this collector's correlation id.
func (c *Collector) RunID() string { return c.runID }

// Logger returns l with this run's id attached as a structured field, or
// slog.Default() with the same field if l is nil.
func (c *Collector) Logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("run_id", c.runID)
}

// ObserveObjectsProcessed implements domlem.Telemetry.
func (c *Collector) ObserveObjectsProcessed(n int) {
	c.objectsProcessed.WithLabelValues(c.runID).Add(float64(n))
}

// ObserveRuleInduced implements domlem.Telemetry.
func (c *Collector) ObserveRuleInduced(ruleType condition.RuleType, conditionCount int) {
	c.rulesInduced.WithLabelValues(c.runID, ruleType.String()).Inc()
	c.conditionsPerRule.WithLabelValues(c.runID).Observe(float64(conditionCount))
}
