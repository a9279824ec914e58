package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of every calendar date.
const DateLayout = "2006-01-02"

// Date is an optional calendar date with no time component. It is stored in
// a nullable DATE column and encoded as "YYYY-MM-DD" or null in JSON.
type Date struct {
	datatypes.Date
	Valid bool
}

// NewDate returns a valid date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{
		Date:  datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)),
		Valid: true,
	}
}

// ParseDate accepts "YYYY-MM-DD" and, for lenient clients, RFC3339
// timestamps, whose time part is dropped.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, s)
		if tsErr != nil {
			return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
		}
		t = ts
	}
	y, m, d := t.Date()
	return NewDate(y, m, d), nil
}

// Time returns the underlying time value.
func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time().Format(DateLayout)
}

// Equal compares calendar days, ignoring location.
func (d Date) Equal(other Date) bool {
	if !d.Valid || !other.Valid {
		return d.Valid == other.Valid
	}
	y1, m1, d1 := d.Time().Date()
	y2, m2, d2 := other.Time().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (d *Date) Scan(value interface{}) error {
	if value == nil {
		*d = Date{}
		return nil
	}
	if err := d.Date.Scan(value); err != nil {
		return err
	}
	d.Valid = true
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Date.Value()
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
