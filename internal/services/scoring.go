package services

import (
	"math"

	"github.com/terraincognita07/cyclelens/internal/models"
)

type Regularity string

const (
	RegularityVeryRegular   Regularity = "very_regular"
	RegularityRegular       Regularity = "regular"
	RegularityIrregular     Regularity = "irregular"
	RegularityVeryIrregular Regularity = "very_irregular"
)

// Heuristic weights. They are not clinically validated and are pinned by
// tests, including the strict boundaries.
const (
	healthScoreBase               = 85
	healthModerateVariationDays   = 3.0
	healthModerateVariationCost   = 10
	healthHighVariationDays       = 7.0
	healthHighVariationCost       = 15
	healthConcerningSymptomPct    = 50
	healthConcerningSymptomCost   = 20
	healthEstablishedHistory      = 3
	healthEstablishedHistoryBonus = 10
	healthLongHistory             = 6
	healthLongHistoryBonus        = 5

	dataQualityBase             = 50
	dataQualitySymptomWeight    = 25
	dataQualityMoodWeight       = 15
	dataQualityCycleBonusCycles = 3
	dataQualityCycleBonus       = 10

	regularityVeryRegularDays = 2.0
	regularityRegularDays     = 4.0
	regularityIrregularDays   = 7.0
)

var dataQualityVolumeSteps = []struct {
	records int
	bonus   int
}{
	{records: 30, bonus: 20},
	{records: 60, bonus: 15},
	{records: 90, bonus: 10},
}

type ScoringRules struct {
	ConcerningSymptoms []string
}

func DefaultScoringRules() ScoringRules {
	return ScoringRules{
		ConcerningSymptoms: []string{"Severe cramps", "Excessive bleeding", "Intense pain"},
	}
}

func (rules ScoringRules) IsConcerning(name string) bool {
	normalized := models.NormalizeLabel(name)
	for _, candidate := range rules.ConcerningSymptoms {
		if models.NormalizeLabel(candidate) == normalized {
			return true
		}
	}
	return false
}

// ConcerningAbove returns the concerning symptoms whose percent is strictly
// greater than threshold, keeping the input order.
func (rules ScoringRules) ConcerningAbove(frequencies []SymptomFrequency, threshold int) []SymptomFrequency {
	matched := make([]SymptomFrequency, 0)
	for _, frequency := range frequencies {
		if frequency.Percent > threshold && rules.IsConcerning(frequency.Name) {
			matched = append(matched, frequency)
		}
	}
	return matched
}

func HealthScore(variation float64, cycleCount int, frequencies []SymptomFrequency, rules ScoringRules) int {
	score := healthScoreBase
	if variation > healthModerateVariationDays {
		score -= healthModerateVariationCost
	}
	if variation > healthHighVariationDays {
		score -= healthHighVariationCost
	}
	if len(rules.ConcerningAbove(frequencies, healthConcerningSymptomPct)) > 0 {
		score -= healthConcerningSymptomCost
	}
	if cycleCount >= healthEstablishedHistory {
		score += healthEstablishedHistoryBonus
	}
	if cycleCount >= healthLongHistory {
		score += healthLongHistoryBonus
	}
	return clampScore(score)
}

func DataQualityScore(logs []models.DailyLog, cycleCount int) int {
	score := dataQualityBase
	for _, step := range dataQualityVolumeSteps {
		if len(logs) >= step.records {
			score += step.bonus
		}
	}

	if len(logs) > 0 {
		withSymptoms, withMood := 0, 0
		for _, entry := range logs {
			if entry.HasSymptoms() {
				withSymptoms++
			}
			if entry.HasMood() {
				withMood++
			}
		}
		total := float64(len(logs))
		score += int(math.Round(dataQualitySymptomWeight * float64(withSymptoms) / total))
		score += int(math.Round(dataQualityMoodWeight * float64(withMood) / total))
	}

	if cycleCount >= dataQualityCycleBonusCycles {
		score += dataQualityCycleBonus
	}
	return clampScore(score)
}

func ClassifyRegularity(variation float64) Regularity {
	switch {
	case variation <= regularityVeryRegularDays:
		return RegularityVeryRegular
	case variation <= regularityRegularDays:
		return RegularityRegular
	case variation <= regularityIrregularDays:
		return RegularityIrregular
	default:
		return RegularityVeryIrregular
	}
}

func (regularity Regularity) IsIrregular() bool {
	return regularity == RegularityIrregular || regularity == RegularityVeryIrregular
}

func clampScore(score int) int {
	return max(0, min(100, score))
}
