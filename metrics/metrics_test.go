package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersRegistered(t *testing.T) {
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily)
	for _, family := range families {
		byName[family.GetName()] = family
	}

	for _, name := range []string{
		"pitchpool_matches_computed_total",
		"pitchpool_preview_requests_total",
		"pitchpool_campaigns_launched_total",
		"pitchpool_emails_sent_total",
		"pitchpool_emails_failed_total",
		"pitchpool_contacts_discovered_total",
	} {
		family, ok := byName[name]
		require.True(t, ok, "metric %s not registered", name)
		assert.Equal(t, dto.MetricType_COUNTER, family.GetType())
	}
}

func TestVerificationsByResult(t *testing.T) {
	before := testutil.ToFloat64(Verifications.WithLabelValues("deliverable"))

	Verifications.WithLabelValues("deliverable").Inc()
	Verifications.WithLabelValues("risky").Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(Verifications.WithLabelValues("deliverable")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(Verifications.WithLabelValues("risky")), float64(1))
}
