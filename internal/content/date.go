package content

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// MarshalYAML implements the yaml.Marshaler interface
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format(dateLayout), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse(dateLayout, value.Value)
	if err == nil {
		d.Time = t
		return nil
	}

	t, err = time.Parse(time.RFC3339, value.Value)
	if err == nil {
		d.Time = t
		return nil
	}

	return fmt.Errorf("unable to parse date '%s': expected YYYY-MM-DD or RFC3339 format", value.Value)
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// SameDay reports whether both dates name the same calendar day. Each date
// is read in its own location, so a day recorded in IST stays that day.
func (d Date) SameDay(other Date) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// NewDateFromTime truncates t to its calendar day.
func NewDateFromTime(t time.Time) Date {
	y, m, day := t.Date()
	return Date{Time: time.Date(y, m, day, 0, 0, 0, 0, t.Location())}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("time.Parse(%s) > %w", value, err)
	}
	return Date{Time: t}, nil
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}
