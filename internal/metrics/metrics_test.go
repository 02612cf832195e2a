package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Sessions(t *testing.T) {
	m := New()
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsActive))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sessionsTotal))
}

func TestMetrics_Steps(t *testing.T) {
	m := New()
	m.ObserveStep("balls", time.Millisecond, 3)
	m.ObserveStep("balls", time.Millisecond, 0)
	m.RunFinished("balls")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ticks.WithLabelValues("balls")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.collisions.WithLabelValues("balls")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("balls")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SessionStarted()
		m.SessionEnded()
		m.ObserveStep("shapes", time.Second, 1)
		m.RunFinished("shapes")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RunFinished("particles")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `mini2d_runs_total{demo="particles"} 1`)
}
