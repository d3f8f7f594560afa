package service

import "time"

// Outcome labels recorded by MetricsRecorder.
const (
	OutcomeRecorded  = "recorded"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
	OutcomeDropped   = "dropped"

	OutcomeInbound  = "inbound"
	OutcomeOutbound = "outbound"
)

// MetricsRecorder records engine counters. Implementations must be safe for concurrent use.
type MetricsRecorder interface {
	EligibilityResolved(cached bool, offers int, elapsed time.Duration)
	ImpressionRecorded(outcome string)
	CodeIssued(reused bool)
	RedemptionProcessed(outcome string)
	ScoreEventApplied(kind string, applied bool)
}
