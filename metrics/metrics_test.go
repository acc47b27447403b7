package metrics

import (
	"testing"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

func TestDisabledMetricsAreNil(t *testing.T) {
	Enabled = false
	_, ok := NewMeter("test/disabled/meter").(*metrics.NilMeter)
	assert.True(t, ok)
	_, ok = NewTimer("test/disabled/timer").(*metrics.NilTimer)
	assert.True(t, ok)
	_, ok = NewCounter("test/disabled/counter").(*metrics.NilCounter)
	assert.True(t, ok)
	assert.Nil(t, metrics.DefaultRegistry.Get("test/disabled/meter"))
}

func TestEnabledMetricsAreRegistered(t *testing.T) {
	Enabled = true
	defer func() { Enabled = false }()
	defer Unregister("test/enabled/counter")

	c := NewCounter("test/enabled/counter")
	c.Inc(3)
	assert.Equal(t, int64(3), NewCounter("test/enabled/counter").Count())
	assert.NotNil(t, metrics.DefaultRegistry.Get("test/enabled/counter"))
}
