package models

import (
	"errors"
	"strings"
	"time"
)

const (
	FlowNone     = "none"
	FlowSpotting = "spotting"
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
)

// ErrStoredDataCorrupted marks persisted data that cannot be decoded into the
// expected shape. Callers should ask the user to reload rather than retry.
var ErrStoredDataCorrupted = errors.New("stored data corrupted")

type DailyLog struct {
	Date     time.Time `json:"date"`
	Symptoms []string  `json:"symptoms"`
	Mood     string    `json:"mood,omitempty"`
	Flow     string    `json:"flow,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}

func (entry DailyLog) HasFlow() bool {
	flow := strings.TrimSpace(entry.Flow)
	return flow != "" && flow != FlowNone
}

func (entry DailyLog) HasSymptoms() bool {
	for _, symptom := range entry.Symptoms {
		if strings.TrimSpace(symptom) != "" {
			return true
		}
	}
	return false
}

func (entry DailyLog) HasMood() bool {
	return strings.TrimSpace(entry.Mood) != ""
}

func IsValidFlow(flow string) bool {
	switch strings.TrimSpace(flow) {
	case "", FlowNone, FlowSpotting, FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}
