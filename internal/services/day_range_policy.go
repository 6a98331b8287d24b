package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrDayRangeFromInvalid = errors.New("invalid from date")
	ErrDayRangeToInvalid   = errors.New("invalid to date")
	ErrDayRangeInvalid     = errors.New("invalid date range")
)

// ParseDayRange parses optional YYYY-MM-DD bounds. Empty values leave the
// corresponding side open.
func ParseDayRange(rawFrom string, rawTo string) (*time.Time, *time.Time, error) {
	var from *time.Time
	if fromRaw := strings.TrimSpace(rawFrom); fromRaw != "" {
		parsed, err := ParseDay(fromRaw)
		if err != nil {
			return nil, nil, ErrDayRangeFromInvalid
		}
		from = &parsed
	}

	var to *time.Time
	if toRaw := strings.TrimSpace(rawTo); toRaw != "" {
		parsed, err := ParseDay(toRaw)
		if err != nil {
			return nil, nil, ErrDayRangeToInvalid
		}
		to = &parsed
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrDayRangeInvalid
	}
	return from, to, nil
}
