package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/event"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/valueobject"
)

// PipelineResult is the aggregate returned to the caller for one pipeline run:
// the original input together with the extracted intent, the fraud assessment
// and the formatted payment. Created once per request, no lifecycle beyond the
// response.
type PipelineResult struct {
	id            uuid.UUID
	originalInput string
	intent        *PaymentIntent
	assessment    *FraudAssessment
	formatted     FormattedPayment
	processedAt   time.Time
	domainEvents  []event.Event
}

// NewPipelineResult assembles the aggregate and records its domain events:
// InstructionProcessed always, HighRiskDetected additionally when the
// assessment lands in the high band.
func NewPipelineResult(
	originalInput string,
	intent *PaymentIntent,
	assessment *FraudAssessment,
	formatted FormattedPayment,
) *PipelineResult {
	r := &PipelineResult{
		id:            uuid.New(),
		originalInput: originalInput,
		intent:        intent,
		assessment:    assessment,
		formatted:     formatted,
		processedAt:   time.Now().UTC(),
	}

	r.domainEvents = append(r.domainEvents, event.InstructionProcessed{
		ResultID:        r.id,
		Scheme:          formatted.Scheme().String(),
		RiskLevel:       assessment.RiskLevel().String(),
		RiskScore:       assessment.Score(),
		ScoringDegraded: assessment.Degraded(),
		ProcessedAt:     r.processedAt,
	})

	if assessment.RiskLevel().Equal(valueobject.RiskLevelHigh) {
		r.domainEvents = append(r.domainEvents, event.HighRiskDetected{
			ResultID:   r.id,
			RiskScore:  assessment.Score(),
			Flags:      assessment.Flags(),
			DetectedAt: r.processedAt,
		})
	}

	return r
}

// --- Accessors ---

func (r *PipelineResult) ID() uuid.UUID                { return r.id }
func (r *PipelineResult) OriginalInput() string        { return r.originalInput }
func (r *PipelineResult) Intent() *PaymentIntent       { return r.intent }
func (r *PipelineResult) Assessment() *FraudAssessment { return r.assessment }
func (r *PipelineResult) Formatted() FormattedPayment  { return r.formatted }
func (r *PipelineResult) ProcessedAt() time.Time       { return r.processedAt }

// DomainEvents returns all accumulated domain events and clears them.
func (r *PipelineResult) DomainEvents() []event.Event {
	evts := r.domainEvents
	r.domainEvents = make([]event.Event, 0)
	return evts
}
