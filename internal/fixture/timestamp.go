package fixture

import (
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the serialized form of every timestamp: ISO-8601 without a
// zone suffix, e.g. "2024-03-12T10:00:00".
const TimeLayout = "2006-01-02T15:04:05"

// Timestamp wraps time.Time so all collections serialize their time values
// in TimeLayout form.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t in a Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Add returns a new Timestamp offset by d.
func (ts Timestamp) Add(d time.Duration) Timestamp {
	return Timestamp{Time: ts.Time.Add(d)}
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(ts.Format(TimeLayout))), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}

	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", s, err)
	}

	ts.Time = t

	return nil
}
