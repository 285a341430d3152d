package service

import (
	"strings"
	"time"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/model"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/valueobject"
)

// MaxFasterPaymentsReference is the Faster Payments reference length limit.
const MaxFasterPaymentsReference = 18

// SchemeFormatter emits a scheme-specific payment payload for a validated
// intent. It is a pure domain service: no external calls and no failure mode —
// when the scheme cannot be determined it returns UnformattedPayment.
type SchemeFormatter struct {
	now func() time.Time
}

// NewSchemeFormatter creates a new SchemeFormatter.
func NewSchemeFormatter() *SchemeFormatter {
	return &SchemeFormatter{now: time.Now}
}

// Format selects the clearing format from the intent's suggested scheme.
// Amount plausibility is never validated here; zero or absent amounts pass
// through uncorrected.
func (f *SchemeFormatter) Format(intent *model.PaymentIntent) model.FormattedPayment {
	switch intent.SuggestedScheme() {
	case valueobject.SchemeSEPA:
		return f.formatSEPA(intent)
	case valueobject.SchemeFasterPayments:
		return f.formatFasterPayments(intent)
	default:
		return model.UnformattedPayment{}
	}
}

func (f *SchemeFormatter) formatSEPA(intent *model.PaymentIntent) model.SEPAPayment {
	currency := intent.Currency()
	if currency == "" {
		currency = model.DefaultCurrency
	}

	now := f.now().UTC()

	return model.SEPAPayment{
		CreditorName:          intent.RecipientName(),
		CreditorIBAN:          intent.IBAN(),
		Amount:                intent.Amount(),
		Currency:              currency,
		RemittanceInformation: intent.Reference(),
		ExecutionDate:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// formatFasterPayments derives the UK account number and sort code from the
// digits of the IBAN string: the account number is the last 8 digits and the
// sort code the 6 digits immediately preceding them. Digit strings shorter
// than 14 yield clipped, possibly empty, substrings — never an error.
func (f *SchemeFormatter) formatFasterPayments(intent *model.PaymentIntent) model.FasterPaymentsPayment {
	digits := digitsOf(intent.IBAN())

	accountStart := len(digits) - 8
	if accountStart < 0 {
		accountStart = 0
	}
	sortStart := len(digits) - 14
	if sortStart < 0 {
		sortStart = 0
	}

	reference := intent.Reference()
	if len(reference) > MaxFasterPaymentsReference {
		reference = reference[:MaxFasterPaymentsReference]
	}

	return model.FasterPaymentsPayment{
		PayeeName:          intent.RecipientName(),
		PayeeAccountNumber: digits[accountStart:],
		SortCode:           digits[sortStart:accountStart],
		Amount:             intent.Amount(),
		Currency:           "GBP",
		Reference:          reference,
		PaymentDateTime:    f.now().UTC(),
	}
}

// digitsOf strips all non-digit characters from s.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
