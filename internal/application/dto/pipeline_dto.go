package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/model"
)

// ProcessInstructionRequest is the input DTO for the ProcessInstruction use case.
type ProcessInstructionRequest struct {
	UserInput string `json:"userInput"`
}

// PaymentIntentDTO is the boundary representation of an extracted intent.
type PaymentIntentDTO struct {
	RecipientName        string              `json:"recipientName,omitempty"`
	IBAN                 string              `json:"iban,omitempty"`
	Amount               decimal.NullDecimal `json:"amount"`
	Currency             string              `json:"currency"`
	Reference            string              `json:"reference,omitempty"`
	Confidence           float64             `json:"confidence"`
	SuggestedPaymentType string              `json:"suggestedPaymentType"`
}

// FraudAssessmentDTO is the boundary representation of a fraud assessment.
type FraudAssessmentDTO struct {
	RiskLevel string   `json:"riskLevel"`
	Score     int      `json:"score"`
	Flags     []string `json:"flags"`
	Degraded  bool     `json:"degraded,omitempty"`
}

// SEPAPaymentDTO is the SEPA credit transfer variant of a formatted payment.
type SEPAPaymentDTO struct {
	CreditorName          string              `json:"creditorName,omitempty"`
	CreditorIBAN          string              `json:"creditorIBAN,omitempty"`
	Amount                decimal.NullDecimal `json:"amount"`
	Currency              string              `json:"currency"`
	RemittanceInformation string              `json:"remittanceInformation,omitempty"`
	ExecutionDate         string              `json:"executionDate"`
}

// FasterPaymentsPaymentDTO is the UK Faster Payments variant of a formatted payment.
type FasterPaymentsPaymentDTO struct {
	PayeeName          string              `json:"payeeName,omitempty"`
	PayeeAccountNumber string              `json:"payeeAccountNumber"`
	SortCode           string              `json:"sortCode"`
	Amount             decimal.NullDecimal `json:"amount"`
	Currency           string              `json:"currency"`
	Reference          string              `json:"reference,omitempty"`
	PaymentDateTime    time.Time           `json:"paymentDateTime"`
}

// FormattedPaymentDTO carries exactly one variant, discriminated by Scheme.
type FormattedPaymentDTO struct {
	Scheme         string                    `json:"scheme"`
	SEPA           *SEPAPaymentDTO           `json:"sepa,omitempty"`
	FasterPayments *FasterPaymentsPaymentDTO `json:"fasterPayments,omitempty"`
}

// PipelineResponse is the aggregate returned for one pipeline run.
type PipelineResponse struct {
	ID               uuid.UUID           `json:"id"`
	OriginalInput    string              `json:"originalInput"`
	Intent           PaymentIntentDTO    `json:"intent"`
	FraudAssessment  FraudAssessmentDTO  `json:"fraudAssessment"`
	FormattedPayment FormattedPaymentDTO `json:"formattedPayment"`
	ProcessedAt      time.Time           `json:"processedAt"`
}

// FromResult maps a domain pipeline result to the response DTO.
func FromResult(r *model.PipelineResult) PipelineResponse {
	intent := r.Intent()
	assessment := r.Assessment()

	return PipelineResponse{
		ID:            r.ID(),
		OriginalInput: r.OriginalInput(),
		Intent: PaymentIntentDTO{
			RecipientName:        intent.RecipientName(),
			IBAN:                 intent.IBAN(),
			Amount:               intent.Amount(),
			Currency:             intent.Currency(),
			Reference:            intent.Reference(),
			Confidence:           intent.Confidence(),
			SuggestedPaymentType: intent.SuggestedScheme().String(),
		},
		FraudAssessment: FraudAssessmentDTO{
			RiskLevel: assessment.RiskLevel().String(),
			Score:     assessment.Score(),
			Flags:     assessment.Flags(),
			Degraded:  assessment.Degraded(),
		},
		FormattedPayment: fromFormatted(r.Formatted()),
		ProcessedAt:      r.ProcessedAt(),
	}
}

func fromFormatted(p model.FormattedPayment) FormattedPaymentDTO {
	out := FormattedPaymentDTO{Scheme: p.Scheme().String()}

	switch v := p.(type) {
	case model.SEPAPayment:
		out.SEPA = &SEPAPaymentDTO{
			CreditorName:          v.CreditorName,
			CreditorIBAN:          v.CreditorIBAN,
			Amount:                v.Amount,
			Currency:              v.Currency,
			RemittanceInformation: v.RemittanceInformation,
			ExecutionDate:         v.ExecutionDate.Format("2006-01-02"),
		}
	case model.FasterPaymentsPayment:
		out.FasterPayments = &FasterPaymentsPaymentDTO{
			PayeeName:          v.PayeeName,
			PayeeAccountNumber: v.PayeeAccountNumber,
			SortCode:           v.SortCode,
			Amount:             v.Amount,
			Currency:           v.Currency,
			Reference:          v.Reference,
			PaymentDateTime:    v.PaymentDateTime,
		}
	}

	return out
}
