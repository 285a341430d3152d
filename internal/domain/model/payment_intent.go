package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/valueobject"
)

// DefaultCurrency is applied when the inference gateway omits a currency.
const DefaultCurrency = "EUR"

// PaymentIntent is the structured payment request extracted from a
// natural-language instruction. It is immutable once produced: created exactly
// once per pipeline run and consumed by the risk analyzer and the scheme
// formatter, never mutated.
//
// The IBAN is carried as a raw, unvalidated string; the suggested scheme is
// advisory only — the scheme formatter decides independently.
type PaymentIntent struct {
	recipientName   string
	iban            string
	amount          decimal.NullDecimal
	currency        string
	reference       string
	confidence      float64
	suggestedScheme valueobject.PaymentScheme
}

// NewPaymentIntent creates a PaymentIntent from gateway-declared values.
// The currency defaults to EUR when absent, confidence is clamped to [0,1],
// and an uninitialized scheme becomes Unknown. A negative amount is rejected
// as schema-invalid; zero and absent amounts pass through.
func NewPaymentIntent(
	recipientName string,
	iban string,
	amount decimal.NullDecimal,
	currency string,
	reference string,
	confidence float64,
	suggestedScheme valueobject.PaymentScheme,
) (*PaymentIntent, error) {
	if amount.Valid && amount.Decimal.IsNegative() {
		return nil, fmt.Errorf("amount must be non-negative, got %s", amount.Decimal)
	}

	if currency == "" {
		currency = DefaultCurrency
	}

	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	if suggestedScheme.IsZero() {
		suggestedScheme = valueobject.SchemeUnknown
	}

	return &PaymentIntent{
		recipientName:   recipientName,
		iban:            iban,
		amount:          amount,
		currency:        currency,
		reference:       reference,
		confidence:      confidence,
		suggestedScheme: suggestedScheme,
	}, nil
}

// --- Accessors ---

func (i *PaymentIntent) RecipientName() string { return i.recipientName }
func (i *PaymentIntent) IBAN() string          { return i.iban }
func (i *PaymentIntent) Amount() decimal.NullDecimal {
	return i.amount
}
func (i *PaymentIntent) Currency() string  { return i.currency }
func (i *PaymentIntent) Reference() string { return i.reference }
func (i *PaymentIntent) Confidence() float64 {
	return i.confidence
}
func (i *PaymentIntent) SuggestedScheme() valueobject.PaymentScheme {
	return i.suggestedScheme
}
