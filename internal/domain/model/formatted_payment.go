package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/valueobject"
)

// FormattedPayment is the scheme-specific payment payload produced by the
// scheme formatter. It is a closed sum type: exactly SEPAPayment,
// FasterPaymentsPayment and UnformattedPayment implement it, so downstream
// consumers can switch over the variants exhaustively.
type FormattedPayment interface {
	Scheme() valueobject.PaymentScheme
}

// SEPAPayment is a SEPA credit transfer payload.
type SEPAPayment struct {
	CreditorName          string
	CreditorIBAN          string
	Amount                decimal.NullDecimal
	Currency              string
	RemittanceInformation string
	ExecutionDate         time.Time // calendar date, no time component
}

// Scheme identifies the variant.
func (SEPAPayment) Scheme() valueobject.PaymentScheme { return valueobject.SchemeSEPA }

// FasterPaymentsPayment is a UK Faster Payments payload. The currency is
// always GBP and the reference is at most 18 characters.
type FasterPaymentsPayment struct {
	PayeeName          string
	PayeeAccountNumber string
	SortCode           string
	Amount             decimal.NullDecimal
	Currency           string
	Reference          string
	PaymentDateTime    time.Time
}

// Scheme identifies the variant.
func (FasterPaymentsPayment) Scheme() valueobject.PaymentScheme {
	return valueobject.SchemeFasterPayments
}

// UnformattedPayment is returned when no clearing scheme could be determined.
type UnformattedPayment struct{}

// Scheme identifies the variant.
func (UnformattedPayment) Scheme() valueobject.PaymentScheme { return valueobject.SchemeUnknown }
