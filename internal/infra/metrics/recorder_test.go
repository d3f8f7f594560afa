package metrics

import (
	"testing"
	"time"

	"offerengine/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Counts(t *testing.T) {
	registry := prometheus.NewRegistry()
	recorder := NewRecorder(registry)

	recorder.ImpressionRecorded(service.OutcomeRecorded)
	recorder.ImpressionRecorded(service.OutcomeRecorded)
	recorder.ImpressionRecorded(service.OutcomeDuplicate)
	recorder.CodeIssued(true)
	recorder.RedemptionProcessed(service.OutcomeOutbound)
	recorder.RedemptionProcessed("")
	recorder.ScoreEventApplied("impression", true)
	recorder.EligibilityResolved(false, 3, 20*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(recorder.impressions.WithLabelValues(service.OutcomeRecorded)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.impressions.WithLabelValues(service.OutcomeDuplicate)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.codes.WithLabelValues("true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.redemptions.WithLabelValues("unknown")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.scoreEvents.WithLabelValues("impression", "true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.eligibility.WithLabelValues("false")), 0)
}

func TestRecorder_NilSafe(t *testing.T) {
	var nilRecorder *Recorder
	empty := NewRecorder(nil)

	assert.NotPanics(t, func() {
		for _, r := range []*Recorder{nilRecorder, empty} {
			r.ImpressionRecorded(service.OutcomeFailed)
			r.CodeIssued(false)
			r.RedemptionProcessed(service.OutcomeInbound)
			r.ScoreEventApplied("impression", false)
			r.EligibilityResolved(true, 0, 0)
		}
	})
}
