package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Borrower preference buckets used by the match scorer
// ---------------------------------------------------------------------------

// TermPreference is a borrower's stated appetite for loan duration.
type TermPreference struct {
	value string
}

const (
	termPreferenceShort  = "short"
	termPreferenceMedium = "medium"
	termPreferenceLong   = "long"
)

var (
	TermPreferenceShort  = TermPreference{value: termPreferenceShort}
	TermPreferenceMedium = TermPreference{value: termPreferenceMedium}
	TermPreferenceLong   = TermPreference{value: termPreferenceLong}
)

var validTermPreferences = map[string]TermPreference{
	termPreferenceShort:  TermPreferenceShort,
	termPreferenceMedium: TermPreferenceMedium,
	termPreferenceLong:   TermPreferenceLong,
}

// NewTermPreference creates a TermPreference from a raw string.
func NewTermPreference(s string) (TermPreference, error) {
	v, ok := validTermPreferences[s]
	if !ok {
		return TermPreference{}, fmt.Errorf("invalid term preference: %q", s)
	}
	return v, nil
}

// String returns the string representation of the preference.
func (p TermPreference) String() string { return p.value }

// IsZero returns true if the preference has not been initialised.
func (p TermPreference) IsZero() bool { return p.value == "" }

// Matches reports whether a term in months falls inside the preference
// bucket: short <= 36, medium 48-60, long >= 72. Terms between buckets
// match none of them.
func (p TermPreference) Matches(termMonths int) bool {
	switch p.value {
	case termPreferenceShort:
		return termMonths <= 36
	case termPreferenceMedium:
		return termMonths >= 48 && termMonths <= 60
	case termPreferenceLong:
		return termMonths >= 72
	default:
		return false
	}
}

// DownPaymentPreference is a borrower's stated appetite for cash down.
type DownPaymentPreference struct {
	value string
}

const (
	downPaymentMinimal     = "minimal"
	downPaymentStandard    = "standard"
	downPaymentSubstantial = "substantial"
)

var (
	DownPaymentPreferenceMinimal     = DownPaymentPreference{value: downPaymentMinimal}
	DownPaymentPreferenceStandard    = DownPaymentPreference{value: downPaymentStandard}
	DownPaymentPreferenceSubstantial = DownPaymentPreference{value: downPaymentSubstantial}
)

var validDownPaymentPreferences = map[string]DownPaymentPreference{
	downPaymentMinimal:     DownPaymentPreferenceMinimal,
	downPaymentStandard:    DownPaymentPreferenceStandard,
	downPaymentSubstantial: DownPaymentPreferenceSubstantial,
}

// NewDownPaymentPreference creates a DownPaymentPreference from a raw string.
func NewDownPaymentPreference(s string) (DownPaymentPreference, error) {
	v, ok := validDownPaymentPreferences[s]
	if !ok {
		return DownPaymentPreference{}, fmt.Errorf("invalid down payment preference: %q", s)
	}
	return v, nil
}

// String returns the string representation of the preference.
func (p DownPaymentPreference) String() string { return p.value }

// IsZero returns true if the preference has not been initialised.
func (p DownPaymentPreference) IsZero() bool { return p.value == "" }

// Matches reports whether a down payment percentage falls inside the
// preference bucket: minimal <= 10%, standard 10-20%, substantial >= 20%.
func (p DownPaymentPreference) Matches(percent decimal.Decimal) bool {
	ten := decimal.NewFromInt(10)
	twenty := decimal.NewFromInt(20)

	switch p.value {
	case downPaymentMinimal:
		return percent.LessThanOrEqual(ten)
	case downPaymentStandard:
		return percent.GreaterThanOrEqual(ten) && percent.LessThanOrEqual(twenty)
	case downPaymentSubstantial:
		return percent.GreaterThanOrEqual(twenty)
	default:
		return false
	}
}
