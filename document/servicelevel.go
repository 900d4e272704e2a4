package document

import (
	"fmt"
	"time"
)

// ServiceLevel names a lifecycle phase of a stream with an optional
// end-of-life date. The zero value has no EOL set.
type ServiceLevel struct {
	Name string
	// EOL is nil when no end-of-life date has been set.
	EOL *time.Time
}

// NewServiceLevel builds a ServiceLevel with no EOL set.
func NewServiceLevel(name string) ServiceLevel {
	return ServiceLevel{Name: name}
}

// ParseEOLDate parses a "YYYY-MM-DD" date, the only form §4.1.2's date
// decoder accepts. Out-of-range components (month 13, day 32, ...) fail.
func ParseEOLDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid eol date %q: %w", value, err)
	}
	return t, nil
}

// EOLString renders EOL in "YYYY-MM-DD" form, or "" when unset.
func (s ServiceLevel) EOLString() string {
	if s.EOL == nil {
		return ""
	}
	return s.EOL.Format("2006-01-02")
}

// Copy returns an independent copy of s.
func (s ServiceLevel) Copy() ServiceLevel {
	if s.EOL == nil {
		return ServiceLevel{Name: s.Name}
	}
	eol := *s.EOL
	return ServiceLevel{Name: s.Name, EOL: &eol}
}

// Equal reports structural equality.
func (s ServiceLevel) Equal(other ServiceLevel) bool {
	if s.Name != other.Name {
		return false
	}
	if (s.EOL == nil) != (other.EOL == nil) {
		return false
	}
	if s.EOL != nil && !s.EOL.Equal(*other.EOL) {
		return false
	}
	return true
}
