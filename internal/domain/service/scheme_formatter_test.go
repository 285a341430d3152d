package service

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/model"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/valueobject"
)

func fixedClockFormatter(at time.Time) *SchemeFormatter {
	return &SchemeFormatter{now: func() time.Time { return at }}
}

func formatterIntent(t *testing.T, iban, currency, reference string, scheme valueobject.PaymentScheme) *model.PaymentIntent {
	t.Helper()
	intent, err := model.NewPaymentIntent(
		"John", iban,
		decimal.NullDecimal{Decimal: decimal.NewFromInt(50), Valid: true},
		currency, reference, 0.9, scheme,
	)
	require.NoError(t, err)
	return intent
}

func TestSchemeFormatter_Format_SEPA(t *testing.T) {
	at := time.Date(2026, time.March, 14, 17, 45, 12, 0, time.UTC)
	formatter := fixedClockFormatter(at)

	intent := formatterIntent(t, "DE89370400440532013000", "EUR", "dinner", valueobject.SchemeSEPA)

	formatted := formatter.Format(intent)

	sepa, ok := formatted.(model.SEPAPayment)
	require.True(t, ok)
	assert.Equal(t, "John", sepa.CreditorName)
	assert.Equal(t, "DE89370400440532013000", sepa.CreditorIBAN)
	assert.True(t, sepa.Amount.Decimal.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "EUR", sepa.Currency)
	assert.Equal(t, "dinner", sepa.RemittanceInformation)
	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), sepa.ExecutionDate,
		"execution date is the current UTC day at midnight")
}

func TestSchemeFormatter_Format_FasterPayments(t *testing.T) {
	at := time.Date(2026, time.March, 14, 17, 45, 12, 0, time.UTC)

	t.Run("derives account number and sort code from the IBAN digits", func(t *testing.T) {
		formatter := fixedClockFormatter(at)
		intent := formatterIntent(t, "GB29NWBK60161331926819", "GBP", "rent march", valueobject.SchemeFasterPayments)

		formatted := formatter.Format(intent)

		fps, ok := formatted.(model.FasterPaymentsPayment)
		require.True(t, ok)
		assert.Equal(t, "John", fps.PayeeName)
		assert.Equal(t, "31926819", fps.PayeeAccountNumber)
		assert.Equal(t, "601613", fps.SortCode)
		assert.Equal(t, "GBP", fps.Currency)
		assert.Equal(t, "rent march", fps.Reference)
		assert.Equal(t, at, fps.PaymentDateTime)
	})

	t.Run("clips short digit strings instead of failing", func(t *testing.T) {
		formatter := fixedClockFormatter(at)
		intent := formatterIntent(t, "GB001234567890", "GBP", "", valueobject.SchemeFasterPayments)

		fps := formatter.Format(intent).(model.FasterPaymentsPayment)

		assert.Equal(t, "34567890", fps.PayeeAccountNumber)
		assert.Equal(t, "0012", fps.SortCode)
	})

	t.Run("empty fields for an IBAN with no digits", func(t *testing.T) {
		formatter := fixedClockFormatter(at)
		intent := formatterIntent(t, "", "GBP", "", valueobject.SchemeFasterPayments)

		fps := formatter.Format(intent).(model.FasterPaymentsPayment)

		assert.Empty(t, fps.PayeeAccountNumber)
		assert.Empty(t, fps.SortCode)
	})

	t.Run("forces GBP regardless of the intent currency", func(t *testing.T) {
		formatter := fixedClockFormatter(at)
		intent := formatterIntent(t, "GB29NWBK60161331926819", "EUR", "", valueobject.SchemeFasterPayments)

		fps := formatter.Format(intent).(model.FasterPaymentsPayment)

		assert.Equal(t, "GBP", fps.Currency)
	})

	t.Run("truncates the reference to the scheme limit", func(t *testing.T) {
		formatter := fixedClockFormatter(at)
		long := strings.Repeat("a", 30)
		intent := formatterIntent(t, "GB29NWBK60161331926819", "GBP", long, valueobject.SchemeFasterPayments)

		fps := formatter.Format(intent).(model.FasterPaymentsPayment)

		assert.Equal(t, long[:MaxFasterPaymentsReference], fps.Reference)
		assert.Len(t, fps.Reference, 18)
	})
}

func TestSchemeFormatter_Format_Unknown(t *testing.T) {
	formatter := NewSchemeFormatter()
	intent := formatterIntent(t, "", "EUR", "", valueobject.SchemeUnknown)

	formatted := formatter.Format(intent)

	_, ok := formatted.(model.UnformattedPayment)
	assert.True(t, ok)
	assert.True(t, formatted.Scheme().Equal(valueobject.SchemeUnknown))
}

func TestDigitsOf(t *testing.T) {
	assert.Equal(t, "2960161331926819", digitsOf("GB29NWBK60161331926819"))
	assert.Equal(t, "", digitsOf("NOWHERE"))
	assert.Equal(t, "12345678", digitsOf("12-34-56 78"))
}
