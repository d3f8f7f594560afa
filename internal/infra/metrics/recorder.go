// Package metrics exports engine counters to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"offerengine/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "offerengine"

// Recorder implements service.MetricsRecorder. A Recorder built without a registerer records nothing.
type Recorder struct {
	eligibility         *prometheus.CounterVec
	eligibilityDuration prometheus.Histogram
	eligibleOffers      prometheus.Histogram
	impressions         *prometheus.CounterVec
	codes               *prometheus.CounterVec
	redemptions         *prometheus.CounterVec
	scoreEvents         *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// NewRecorder registers the engine metrics on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return &Recorder{}
	}

	r := &Recorder{
		eligibility: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "eligibility_resolutions_total",
			Help:      "Eligible offer set resolutions.",
		}, []string{"cached"}),
		eligibilityDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "eligibility_resolution_seconds",
			Help:      "Time spent resolving an eligible offer set.",
			Buckets:   prometheus.DefBuckets,
		}),
		eligibleOffers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "eligible_offers",
			Help:      "Partner and open offers in a resolved set.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		impressions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impressions_total",
			Help:      "Impression reports by outcome.",
		}, []string{"outcome"}),
		codes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemption_codes_issued_total",
			Help:      "Redemption code issuance, split by reuse of an active code.",
		}, []string{"reused"}),
		redemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemptions_total",
			Help:      "Redemption attempts by attribution or rejection reason.",
		}, []string{"outcome"}),
		scoreEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_events_total",
			Help:      "Leaderboard score events by kind.",
		}, []string{"kind", "applied"}),
	}

	reg.MustRegister(
		r.eligibility,
		r.eligibilityDuration,
		r.eligibleOffers,
		r.impressions,
		r.codes,
		r.redemptions,
		r.scoreEvents,
	)

	return r
}

func (r *Recorder) EligibilityResolved(cached bool, offers int, elapsed time.Duration) {
	if r == nil || r.eligibility == nil {
		return
	}
	r.eligibility.WithLabelValues(strconv.FormatBool(cached)).Inc()
	r.eligibleOffers.Observe(float64(offers))
	if !cached {
		r.eligibilityDuration.Observe(elapsed.Seconds())
	}
}

func (r *Recorder) ImpressionRecorded(outcome string) {
	if r == nil || r.impressions == nil {
		return
	}
	r.impressions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (r *Recorder) CodeIssued(reused bool) {
	if r == nil || r.codes == nil {
		return
	}
	r.codes.WithLabelValues(strconv.FormatBool(reused)).Inc()
}

func (r *Recorder) RedemptionProcessed(outcome string) {
	if r == nil || r.redemptions == nil {
		return
	}
	r.redemptions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (r *Recorder) ScoreEventApplied(kind string, applied bool) {
	if r == nil || r.scoreEvents == nil {
		return
	}
	r.scoreEvents.WithLabelValues(normalizeLabel(kind), strconv.FormatBool(applied)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}

	return value
}
