package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/financing-service/internal/domain/valueobject"
)

func TestTermPreference_Matches(t *testing.T) {
	tests := []struct {
		pref  valueobject.TermPreference
		term  int
		match bool
	}{
		{valueobject.TermPreferenceShort, 36, true},
		{valueobject.TermPreferenceShort, 37, false},
		{valueobject.TermPreferenceMedium, 48, true},
		{valueobject.TermPreferenceMedium, 60, true},
		{valueobject.TermPreferenceMedium, 42, false},
		{valueobject.TermPreferenceLong, 72, true},
		{valueobject.TermPreferenceLong, 60, false},
		// 42 falls between the short and medium buckets: no preference matches.
		{valueobject.TermPreferenceShort, 42, false},
		{valueobject.TermPreferenceLong, 42, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.match, tt.pref.Matches(tt.term),
			"%s preference vs %d months", tt.pref, tt.term,
		)
	}
}

func TestDownPaymentPreference_Matches(t *testing.T) {
	tests := []struct {
		pref    valueobject.DownPaymentPreference
		percent float64
		match   bool
	}{
		{valueobject.DownPaymentPreferenceMinimal, 5, true},
		{valueobject.DownPaymentPreferenceMinimal, 10, true},
		{valueobject.DownPaymentPreferenceMinimal, 10.01, false},
		{valueobject.DownPaymentPreferenceStandard, 10, true},
		{valueobject.DownPaymentPreferenceStandard, 20, true},
		{valueobject.DownPaymentPreferenceStandard, 25, false},
		{valueobject.DownPaymentPreferenceSubstantial, 20, true},
		{valueobject.DownPaymentPreferenceSubstantial, 19.99, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.match, tt.pref.Matches(decimal.NewFromFloat(tt.percent)),
			"%s preference vs %.2f%%", tt.pref, tt.percent,
		)
	}
}

func TestNewTermPreference(t *testing.T) {
	pref, err := valueobject.NewTermPreference("medium")
	require.NoError(t, err)
	assert.Equal(t, "medium", pref.String())

	_, err = valueobject.NewTermPreference("forever")
	assert.Error(t, err)
}

func TestNewDownPaymentPreference(t *testing.T) {
	pref, err := valueobject.NewDownPaymentPreference("substantial")
	require.NoError(t, err)
	assert.Equal(t, "substantial", pref.String())

	_, err = valueobject.NewDownPaymentPreference("all-cash")
	assert.Error(t, err)
}
