package services

import (
	"time"

	"github.com/terraincognita07/cyclelens/internal/models"
)

const defaultForecastCycles = 3

// FertileWindowOffsets widens the fertile window around the predicted
// ovulation day.
type FertileWindowOffsets struct {
	Before int
	After  int
}

var (
	// ReportFertileWindow backs the next-cycle prediction in the report.
	ReportFertileWindow = FertileWindowOffsets{Before: 3, After: 1}
	// ForecastFertileWindow backs each future cycle forecast.
	ForecastFertileWindow = FertileWindowOffsets{Before: 2, After: 2}
)

type CyclePrediction struct {
	NextPeriod         time.Time
	Ovulation          time.Time
	FertileWindowStart time.Time
	FertileWindowEnd   time.Time
}

type CycleForecast struct {
	Start              time.Time
	End                time.Time
	Ovulation          time.Time
	FertileWindowStart time.Time
	FertileWindowEnd   time.Time
}

type PredictionAccuracy string

const (
	AccuracyHigh    PredictionAccuracy = "high"
	AccuracyMedium  PredictionAccuracy = "medium"
	AccuracyLow     PredictionAccuracy = "low"
	AccuracyVeryLow PredictionAccuracy = "very_low"
)

func PredictNextCycle(config models.CycleConfig, lastPeriod time.Time, window FertileWindowOffsets) CyclePrediction {
	nextPeriod := AddDays(lastPeriod, config.AverageCycleLength)
	ovulation := AddDays(nextPeriod, -lutealPhaseDays)
	return CyclePrediction{
		NextPeriod:         nextPeriod,
		Ovulation:          ovulation,
		FertileWindowStart: AddDays(ovulation, -window.Before),
		FertileWindowEnd:   AddDays(ovulation, window.After),
	}
}

// ForecastCycles projects count cycles forward from lastPeriod. Each forecast
// ends periodDays after it starts.
func ForecastCycles(config models.CycleConfig, lastPeriod time.Time, count int, periodDays int) []CycleForecast {
	if count <= 0 {
		return []CycleForecast{}
	}
	forecasts := make([]CycleForecast, 0, count)
	for index := 1; index <= count; index++ {
		start := AddDays(lastPeriod, config.AverageCycleLength*index)
		ovulation := AddDays(start, config.AverageCycleLength-lutealPhaseDays)
		forecasts = append(forecasts, CycleForecast{
			Start:              start,
			End:                AddDays(start, periodDays),
			Ovulation:          ovulation,
			FertileWindowStart: AddDays(ovulation, -ForecastFertileWindow.Before),
			FertileWindowEnd:   AddDays(ovulation, ForecastFertileWindow.After),
		})
	}
	return forecasts
}

func AccuracyForRegularity(regularity Regularity) PredictionAccuracy {
	switch regularity {
	case RegularityVeryRegular:
		return AccuracyHigh
	case RegularityRegular:
		return AccuracyMedium
	case RegularityIrregular:
		return AccuracyLow
	default:
		return AccuracyVeryLow
	}
}

// EffectivePeriodStart prefers a logged period start over the configured one
// when the log is more recent.
func EffectivePeriodStart(config models.CycleConfig, history []models.DailyLog) time.Time {
	configured := CalendarDay(config.LastPeriodDate)
	if logged, ok := LatestPeriodStart(history); ok && logged.After(configured) {
		return logged
	}
	return configured
}
