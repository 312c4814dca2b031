package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/telemetry"
)

func TestNewCollectorRejectsNilRegisterer(t *testing.T) {
	_, err := telemetry.NewCollector(nil)
	assert.ErrorIs(t, err, telemetry.ErrNilRegisterer)
}

func TestCollectorRecordsObjectsProcessedAndRulesInduced(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := telemetry.NewCollector(reg)
	require.NoError(t, err)
	require.NotEmpty(t, c.RunID())

	c.ObserveObjectsProcessed(3)
	c.ObserveObjectsProcessed(2)
	c.ObserveRuleInduced(condition.Certain, 2)

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawObjectsProcessed, sawRulesInduced bool
	for _, mf := range families {
		switch mf.GetName() {
		case "drsa_domlem_objects_processed_total":
			sawObjectsProcessed = true
			assert.Equal(t, float64(5), mf.GetMetric()[0].GetCounter().GetValue())
		case "drsa_domlem_rules_induced_total":
			sawRulesInduced = true
		}
	}
	assert.True(t, sawObjectsProcessed)
	assert.True(t, sawRulesInduced)
}
