package metrics_test

import (
	"testing"

	"github.com/limbo/fitstreak/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewManager("fitstreak", "test", reg)

	m.CounterWorkoutsCompleted.Inc()
	m.CounterScheduleRejected.WithLabelValues("rest day required between workouts").Inc()
	m.CounterRequests.WithLabelValues("GET", "200").Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterWorkoutsCompleted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "fitstreak_test_workouts_completed_total")
	assert.Contains(t, names, "fitstreak_test_schedule_rejections_total")
}
