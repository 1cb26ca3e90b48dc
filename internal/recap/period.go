package recap

import (
	"errors"
	"strconv"
	"time"
)

// ErrAmbiguousPeriod marks a record whose timestamp cannot be placed in a
// calendar month. The builder counts these instead of failing the whole
// aggregation.
var ErrAmbiguousPeriod = errors.New("timestamp cannot be classified into a period")

// Period is a (year, month) bucket key.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Classifier maps timestamps to calendar periods in one fixed reporting
// time zone so that every report in the system buckets consistently.
type Classifier struct {
	loc *time.Location
}

func NewClassifier(loc *time.Location) Classifier {
	if loc == nil {
		loc = time.UTC
	}

	return Classifier{loc: loc}
}

// Classify returns the period of t in the reporting zone. Two timestamps
// share a bucket iff they share both year and month.
func (c Classifier) Classify(t time.Time) (Period, error) {
	if t.IsZero() {
		return Period{}, ErrAmbiguousPeriod
	}

	local := t.In(c.loc)

	return Period{Year: local.Year(), Month: local.Month()}, nil
}

// ParseTimestamp accepts the two timestamp encodings the upstream data
// source emits: RFC 3339 strings and epoch seconds.
func ParseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}

	return time.Time{}, ErrAmbiguousPeriod
}
