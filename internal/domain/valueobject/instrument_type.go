package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// InstrumentType – immutable value object
// ---------------------------------------------------------------------------

// InstrumentType represents the kind of financing instrument a deal
// structure is built on.
type InstrumentType struct {
	value string
}

const (
	instrumentLoan         = "LOAN"
	instrumentLease        = "LEASE"
	instrumentLineOfCredit = "LINE_OF_CREDIT"
)

var (
	InstrumentLoan         = InstrumentType{value: instrumentLoan}
	InstrumentLease        = InstrumentType{value: instrumentLease}
	InstrumentLineOfCredit = InstrumentType{value: instrumentLineOfCredit}
)

var validInstrumentTypes = map[string]InstrumentType{
	instrumentLoan:         InstrumentLoan,
	instrumentLease:        InstrumentLease,
	instrumentLineOfCredit: InstrumentLineOfCredit,
}

// NewInstrumentType creates an InstrumentType from a raw string.
func NewInstrumentType(s string) (InstrumentType, error) {
	v, ok := validInstrumentTypes[s]
	if !ok {
		return InstrumentType{}, fmt.Errorf("invalid instrument type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the instrument type.
func (i InstrumentType) String() string { return i.value }

// IsZero returns true if the instrument type has not been initialised.
func (i InstrumentType) IsZero() bool { return i.value == "" }

// Equal returns true when both instrument types carry the same value.
func (i InstrumentType) Equal(other InstrumentType) bool {
	return i.value == other.value
}
