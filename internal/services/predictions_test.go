package services

import (
	"testing"

	"github.com/terraincognita07/cyclelens/internal/models"
)

func TestPredictNextCycle(t *testing.T) {
	t.Parallel()

	config := testCycleConfig(t, "2024-01-01", 28, 5)
	prediction := PredictNextCycle(config, config.LastPeriodDate, ReportFertileWindow)

	checks := map[string][2]string{
		"next period":  {FormatDay(prediction.NextPeriod), "2024-01-29"},
		"ovulation":    {FormatDay(prediction.Ovulation), "2024-01-15"},
		"fertile from": {FormatDay(prediction.FertileWindowStart), "2024-01-12"},
		"fertile to":   {FormatDay(prediction.FertileWindowEnd), "2024-01-16"},
	}
	for name, pair := range checks {
		if pair[0] != pair[1] {
			t.Fatalf("expected %s %s, got %s", name, pair[1], pair[0])
		}
	}
}

func TestForecastCycles(t *testing.T) {
	t.Parallel()

	config := testCycleConfig(t, "2024-01-01", 28, 6)
	forecasts := ForecastCycles(config, config.LastPeriodDate, 3, config.AveragePeriodLength)
	if len(forecasts) != 3 {
		t.Fatalf("expected 3 forecasts, got %d", len(forecasts))
	}

	wantStarts := []string{"2024-01-29", "2024-02-26", "2024-03-25"}
	for index, forecast := range forecasts {
		if got := FormatDay(forecast.Start); got != wantStarts[index] {
			t.Fatalf("forecast %d: expected start %s, got %s", index, wantStarts[index], got)
		}
		if got := DaysBetween(forecast.Start, forecast.End); got != config.AveragePeriodLength {
			t.Fatalf("forecast %d: expected end %d days after start, got %d", index, config.AveragePeriodLength, got)
		}
	}

	first := forecasts[0]
	if FormatDay(first.Ovulation) != "2024-02-12" {
		t.Fatalf("expected ovulation 2024-02-12, got %s", FormatDay(first.Ovulation))
	}
	if FormatDay(first.FertileWindowStart) != "2024-02-10" || FormatDay(first.FertileWindowEnd) != "2024-02-14" {
		t.Fatalf("expected fertile window 2024-02-10..2024-02-14, got %s..%s",
			FormatDay(first.FertileWindowStart), FormatDay(first.FertileWindowEnd))
	}

	if got := ForecastCycles(config, config.LastPeriodDate, 0, 5); len(got) != 0 {
		t.Fatalf("expected no forecasts for count 0, got %d", len(got))
	}
}

func TestEffectivePeriodStart(t *testing.T) {
	t.Parallel()

	config := testCycleConfig(t, "2024-01-01", 28, 5)

	newer := []models.DailyLog{flowLog(t, "2024-02-01"), flowLog(t, "2024-02-02")}
	if got := FormatDay(EffectivePeriodStart(config, newer)); got != "2024-02-01" {
		t.Fatalf("expected logged start 2024-02-01, got %s", got)
	}

	older := []models.DailyLog{flowLog(t, "2023-12-01")}
	if got := FormatDay(EffectivePeriodStart(config, older)); got != "2024-01-01" {
		t.Fatalf("expected configured start 2024-01-01, got %s", got)
	}
}

func TestAccuracyForRegularity(t *testing.T) {
	t.Parallel()

	tests := map[Regularity]PredictionAccuracy{
		RegularityVeryRegular:   AccuracyHigh,
		RegularityRegular:       AccuracyMedium,
		RegularityIrregular:     AccuracyLow,
		RegularityVeryIrregular: AccuracyVeryLow,
	}
	for regularity, want := range tests {
		if got := AccuracyForRegularity(regularity); got != want {
			t.Fatalf("AccuracyForRegularity(%s) = %s, want %s", regularity, got, want)
		}
	}
}
