package valueobject

// PaymentScheme represents the regional clearing scheme a payment instruction
// targets.
type PaymentScheme struct {
	value string
}

var (
	SchemeSEPA           = PaymentScheme{"SEPA"}
	SchemeFasterPayments = PaymentScheme{"FasterPayments"}
	SchemeUnknown        = PaymentScheme{"Unknown"}
)

// PaymentSchemeFromString maps a scheme name to a PaymentScheme. The input
// comes from an untrusted source, so anything unrecognized maps to
// SchemeUnknown rather than failing.
func PaymentSchemeFromString(s string) PaymentScheme {
	switch s {
	case "SEPA":
		return SchemeSEPA
	case "FasterPayments":
		return SchemeFasterPayments
	default:
		return SchemeUnknown
	}
}

// String returns the string representation of the payment scheme.
func (s PaymentScheme) String() string {
	return s.value
}

// IsZero returns true if the payment scheme is uninitialized.
func (s PaymentScheme) IsZero() bool {
	return s.value == ""
}

// Equal checks equality with another PaymentScheme.
func (s PaymentScheme) Equal(other PaymentScheme) bool {
	return s.value == other.value
}
