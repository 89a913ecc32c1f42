package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("trends", 20*time.Millisecond, "ok")
	m.ObserveRequest("trends", 5*time.Millisecond, "ok")
	m.ObserveRequest("trends", time.Millisecond, "invalid")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("trends", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("trends", "invalid")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestObserveAlert(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveAlert("published")
	m.ObserveAlert("suppressed")
	m.ObserveAlert("published")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AlertsPublished.WithLabelValues("published")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AlertsPublished.WithLabelValues("suppressed")))
}
