package services

import (
	"sort"
	"strings"

	"github.com/terraincognita07/cyclelens/internal/models"
)

const (
	maxSymptomMoodCorrelations  = 5
	minCorrelationCoOccurrences = 2
)

type SymptomMoodCorrelation struct {
	Symptom       string `json:"symptom"`
	Mood          string `json:"mood"`
	CoOccurrences int    `json:"co_occurrences"`
	Percent       int    `json:"percent"`
}

// SymptomMoodCorrelations reports how often a mood was logged on the same day
// as a symptom, as a share of the days that symptom was logged.
func SymptomMoodCorrelations(logs []models.DailyLog) []SymptomMoodCorrelation {
	type pairKey struct {
		symptom string
		mood    string
	}

	symptomDays := make(map[string]int)
	pairCounts := make(map[pairKey]int)
	pairOrder := make([]pairKey, 0)
	for _, entry := range logs {
		symptoms := cleanLabels(entry.Symptoms)
		for _, symptom := range symptoms {
			symptomDays[symptom]++
		}
		mood := strings.TrimSpace(entry.Mood)
		if mood == "" {
			continue
		}
		for _, symptom := range symptoms {
			key := pairKey{symptom: symptom, mood: mood}
			if _, seen := pairCounts[key]; !seen {
				pairOrder = append(pairOrder, key)
			}
			pairCounts[key]++
		}
	}

	correlations := make([]SymptomMoodCorrelation, 0)
	for _, key := range pairOrder {
		count := pairCounts[key]
		if count < minCorrelationCoOccurrences {
			continue
		}
		correlations = append(correlations, SymptomMoodCorrelation{
			Symptom:       key.symptom,
			Mood:          key.mood,
			CoOccurrences: count,
			Percent:       percentOf(count, symptomDays[key.symptom]),
		})
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		if correlations[i].Percent != correlations[j].Percent {
			return correlations[i].Percent > correlations[j].Percent
		}
		return correlations[i].CoOccurrences > correlations[j].CoOccurrences
	})
	if len(correlations) > maxSymptomMoodCorrelations {
		correlations = correlations[:maxSymptomMoodCorrelations]
	}
	return correlations
}
