package models

import (
	"errors"
	"time"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	MinCycleLength  = 21
	MaxCycleLength  = 40
	MinPeriodLength = 2
	MaxPeriodLength = 10
)

var ErrInvalidCycleConfig = errors.New("invalid cycle config")

// CycleConfig is the user-declared baseline. The engine treats it as a
// read-only snapshot for the duration of one computation.
type CycleConfig struct {
	LastPeriodDate      time.Time `json:"last_period_date"`
	AverageCycleLength  int       `json:"average_cycle_length"`
	AveragePeriodLength int       `json:"average_period_length"`
}

func (config CycleConfig) Validate() error {
	if config.LastPeriodDate.IsZero() {
		return ErrInvalidCycleConfig
	}
	if config.AverageCycleLength < MinCycleLength || config.AverageCycleLength > MaxCycleLength {
		return ErrInvalidCycleConfig
	}
	if config.AveragePeriodLength < MinPeriodLength || config.AveragePeriodLength > MaxPeriodLength {
		return ErrInvalidCycleConfig
	}
	return nil
}
