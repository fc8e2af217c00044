package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Calculations.WithLabelValues(OutcomeResult).Inc()
	m.Calculations.WithLabelValues(OutcomeNoResult).Inc()
	m.RequiredDays.Observe(5.2)
	m.HTTPRequests.WithLabelValues("POST", "/v1/calculate", "200").Inc()

	assert.Equal(t, 2, testutil.CollectAndCount(m.Calculations))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Calculations.WithLabelValues(OutcomeResult)))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"worthit_calculations_total",
		"worthit_required_days",
		"worthit_http_requests_total",
	}, names)
}

func TestNew_SeparateRegistries(t *testing.T) {
	// Two services in one process must not collide.
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
