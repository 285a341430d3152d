package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	// EventTypeInstructionProcessed is emitted for every completed pipeline run.
	EventTypeInstructionProcessed = "intent.instruction.processed"

	// EventTypeHighRiskDetected is emitted when an instruction is assessed at
	// high risk.
	EventTypeHighRiskDetected = "intent.high_risk.detected"
)

// Event is the interface all domain events implement.
type Event interface {
	EventType() string
	AggregateID() uuid.UUID
}

// InstructionProcessed is published when a payment instruction has been taken
// through the full extract-assess-format pipeline.
type InstructionProcessed struct {
	ResultID        uuid.UUID `json:"result_id"`
	Scheme          string    `json:"scheme"`
	RiskLevel       string    `json:"risk_level"`
	RiskScore       int       `json:"risk_score"`
	ScoringDegraded bool      `json:"scoring_degraded"`
	ProcessedAt     time.Time `json:"processed_at"`
}

// EventType returns the event type identifier.
func (e InstructionProcessed) EventType() string {
	return EventTypeInstructionProcessed
}

// AggregateID returns the pipeline result ID as the aggregate identifier.
func (e InstructionProcessed) AggregateID() uuid.UUID {
	return e.ResultID
}

// HighRiskDetected is published when an instruction scores into the high risk
// band, so downstream consumers can alert or hold the payment.
type HighRiskDetected struct {
	ResultID   uuid.UUID `json:"result_id"`
	RiskScore  int       `json:"risk_score"`
	Flags      []string  `json:"flags"`
	DetectedAt time.Time `json:"detected_at"`
}

// EventType returns the event type identifier.
func (e HighRiskDetected) EventType() string {
	return EventTypeHighRiskDetected
}

// AggregateID returns the pipeline result ID as the aggregate identifier.
func (e HighRiskDetected) AggregateID() uuid.UUID {
	return e.ResultID
}
