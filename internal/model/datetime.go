package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// dateTimeLayout is the naive (timezone-less) textual form used on the wire
// for created_at/updated_at, e.g. "2024-05-01T09:30:00".
const dateTimeLayout = "2006-01-02T15:04:05"

// DateTime wraps time.Time to serialize DATETIME columns without a timezone
// suffix.  MySQL DATETIME carries no zone information, so the JSON form keeps
// the value exactly as stored instead of appending the RFC 3339 offset that
// time.Time would produce.
type DateTime struct {
	time.Time
}

// MarshalJSON renders the timestamp as a quoted naive date-time string.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateTimeLayout))), nil
}

// UnmarshalJSON parses the quoted naive date-time string produced by
// MarshalJSON.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	d.Time = t
	return nil
}

// Scan implements sql.Scanner.  With parseTime=true the MySQL driver hands
// over time.Time values; the []byte and string cases cover drivers or
// connections that return the raw DATETIME text instead.
func (d *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		d.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("datetime: cannot scan %T", src)
}

// scanString parses the textual DATETIME forms MySQL emits.
func (d *DateTime) scanString(s string) error {
	for _, layout := range []string{"2006-01-02 15:04:05", dateTimeLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("datetime: cannot parse %q", s)
}

// Value implements driver.Valuer so the type also works in query arguments.
func (d DateTime) Value() (driver.Value, error) {
	return d.Time, nil
}
