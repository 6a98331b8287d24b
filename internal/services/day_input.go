package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/cyclelens/internal/models"
)

const (
	MaxDayNotesLength   = 2000
	MaxDaySymptoms      = 32
	maxSymptomNameRunes = 80
)

var (
	ErrInvalidDayFlow    = errors.New("invalid day flow")
	ErrInvalidDaySymptom = errors.New("invalid day symptom")
)

type DayEntryInput struct {
	Flow     string
	Mood     string
	Symptoms []string
	Notes    string
}

func NormalizeDayEntryInput(input DayEntryInput) (DayEntryInput, error) {
	input.Flow = strings.ToLower(strings.TrimSpace(input.Flow))
	if !models.IsValidFlow(input.Flow) {
		return input, ErrInvalidDayFlow
	}
	if input.Flow == "" {
		input.Flow = models.FlowNone
	}

	symptoms := cleanLabels(input.Symptoms)
	if len(symptoms) > MaxDaySymptoms {
		return input, ErrInvalidDaySymptom
	}
	for _, symptom := range symptoms {
		if len([]rune(symptom)) > maxSymptomNameRunes {
			return input, ErrInvalidDaySymptom
		}
	}
	input.Symptoms = symptoms
	input.Mood = strings.TrimSpace(input.Mood)
	input.Notes = TrimDayNotes(input.Notes)
	return input, nil
}

func TrimDayNotes(value string) string {
	runes := []rune(value)
	if len(runes) <= MaxDayNotesLength {
		return value
	}
	return string(runes[:MaxDayNotesLength])
}
