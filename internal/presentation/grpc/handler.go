package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/application/dto"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/application/usecase"
)

// Compile-time assertion that IntentServiceHandler implements IntentServiceServer.
var _ IntentServiceServer = (*IntentServiceHandler)(nil)

// IntentServiceHandler implements the gRPC IntentServiceServer interface.
type IntentServiceHandler struct {
	UnimplementedIntentServiceServer
	process *usecase.ProcessInstruction
	logger  *slog.Logger
}

// NewIntentServiceHandler creates a new gRPC handler.
func NewIntentServiceHandler(process *usecase.ProcessInstruction, logger *slog.Logger) *IntentServiceHandler {
	return &IntentServiceHandler{process: process, logger: logger}
}

// Proto-aligned request/response message types.

// ProcessInstructionRequest represents the proto ProcessInstructionRequest message.
type ProcessInstructionRequest struct {
	UserInput string `json:"user_input"`
}

// PaymentIntentMsg represents the proto PaymentIntent message.
type PaymentIntentMsg struct {
	RecipientName        string  `json:"recipient_name"`
	IBAN                 string  `json:"iban"`
	Amount               string  `json:"amount"`
	Currency             string  `json:"currency"`
	Reference            string  `json:"reference"`
	Confidence           float64 `json:"confidence"`
	SuggestedPaymentType string  `json:"suggested_payment_type"`
}

// FraudAssessmentMsg represents the proto FraudAssessment message.
type FraudAssessmentMsg struct {
	RiskLevel string   `json:"risk_level"`
	Score     int32    `json:"score"`
	Flags     []string `json:"flags"`
	Degraded  bool     `json:"degraded"`
}

// SEPAPaymentMsg represents the proto SEPAPayment message.
type SEPAPaymentMsg struct {
	CreditorName          string `json:"creditor_name"`
	CreditorIBAN          string `json:"creditor_iban"`
	Amount                string `json:"amount"`
	Currency              string `json:"currency"`
	RemittanceInformation string `json:"remittance_information"`
	ExecutionDate         string `json:"execution_date"`
}

// FasterPaymentsPaymentMsg represents the proto FasterPaymentsPayment message.
type FasterPaymentsPaymentMsg struct {
	PayeeName          string `json:"payee_name"`
	PayeeAccountNumber string `json:"payee_account_number"`
	SortCode           string `json:"sort_code"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	Reference          string `json:"reference"`
	PaymentDateTime    string `json:"payment_date_time"`
}

// FormattedPaymentMsg represents the proto FormattedPayment message, with
// exactly one variant set according to Scheme.
type FormattedPaymentMsg struct {
	Scheme         string                    `json:"scheme"`
	Sepa           *SEPAPaymentMsg           `json:"sepa,omitempty"`
	FasterPayments *FasterPaymentsPaymentMsg `json:"faster_payments,omitempty"`
}

// PipelineResultMsg represents the proto PipelineResult message.
type PipelineResultMsg struct {
	ID               string               `json:"id"`
	OriginalInput    string               `json:"original_input"`
	Intent           *PaymentIntentMsg    `json:"intent"`
	FraudAssessment  *FraudAssessmentMsg  `json:"fraud_assessment"`
	FormattedPayment *FormattedPaymentMsg `json:"formatted_payment"`
	ProcessedAt      string               `json:"processed_at"`
}

// ProcessInstructionResponse represents the proto ProcessInstructionResponse message.
type ProcessInstructionResponse struct {
	Result *PipelineResultMsg `json:"result"`
}

// ProcessInstruction handles a payment instruction clarification request.
func (h *IntentServiceHandler) ProcessInstruction(ctx context.Context, req *ProcessInstructionRequest) (*ProcessInstructionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.process.Execute(ctx, dto.ProcessInstructionRequest{UserInput: req.UserInput})
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyInput) {
			return nil, status.Error(codes.InvalidArgument, "user_input is required")
		}
		h.logger.Error("failed to process payment instruction",
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &ProcessInstructionResponse{Result: fromResponse(result)}, nil
}

func fromResponse(r dto.PipelineResponse) *PipelineResultMsg {
	msg := &PipelineResultMsg{
		ID:            r.ID.String(),
		OriginalInput: r.OriginalInput,
		Intent: &PaymentIntentMsg{
			RecipientName:        r.Intent.RecipientName,
			IBAN:                 r.Intent.IBAN,
			Amount:               nullDecimalString(r.Intent.Amount),
			Currency:             r.Intent.Currency,
			Reference:            r.Intent.Reference,
			Confidence:           r.Intent.Confidence,
			SuggestedPaymentType: r.Intent.SuggestedPaymentType,
		},
		FraudAssessment: &FraudAssessmentMsg{
			RiskLevel: r.FraudAssessment.RiskLevel,
			Score:     int32(r.FraudAssessment.Score),
			Flags:     r.FraudAssessment.Flags,
			Degraded:  r.FraudAssessment.Degraded,
		},
		FormattedPayment: &FormattedPaymentMsg{Scheme: r.FormattedPayment.Scheme},
		ProcessedAt:      r.ProcessedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if sepa := r.FormattedPayment.SEPA; sepa != nil {
		msg.FormattedPayment.Sepa = &SEPAPaymentMsg{
			CreditorName:          sepa.CreditorName,
			CreditorIBAN:          sepa.CreditorIBAN,
			Amount:                nullDecimalString(sepa.Amount),
			Currency:              sepa.Currency,
			RemittanceInformation: sepa.RemittanceInformation,
			ExecutionDate:         sepa.ExecutionDate,
		}
	}
	if fps := r.FormattedPayment.FasterPayments; fps != nil {
		msg.FormattedPayment.FasterPayments = &FasterPaymentsPaymentMsg{
			PayeeName:          fps.PayeeName,
			PayeeAccountNumber: fps.PayeeAccountNumber,
			SortCode:           fps.SortCode,
			Amount:             nullDecimalString(fps.Amount),
			Currency:           fps.Currency,
			Reference:          fps.Reference,
			PaymentDateTime:    fps.PaymentDateTime.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return msg
}

// nullDecimalString renders an optional decimal as a string, empty when absent.
func nullDecimalString(nd decimal.NullDecimal) string {
	if !nd.Valid {
		return ""
	}
	return nd.Decimal.String()
}
