package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// LocalDateTimeLayout is a timestamp without zone, read in the server's local time.
const LocalDateTimeLayout = "2006-01-02T15:04:05.999999999"

// Timestamp accepts RFC 3339 as well as zone-less "YYYY-MM-DDTHH:MM:SS[.fff]" input.
type Timestamp struct {
	time.Time
}

func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(LocalDateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
