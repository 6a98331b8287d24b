package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/cyclelens/internal/models"
)

var ErrInvalidRecord = errors.New("invalid daily record")

// RecordError fails a single computation and carries the offending record
// for logging.
type RecordError struct {
	Record models.DailyLog
	Reason string
}

func (err *RecordError) Error() string {
	return fmt.Sprintf("%s: %s (date %s)", ErrInvalidRecord, err.Reason, FormatDay(err.Record.Date))
}

func (err *RecordError) Unwrap() error {
	return ErrInvalidRecord
}

// ChangeToken increases every time the underlying store is written.
type ChangeToken int64

type RecordSource interface {
	LoadDailyRecords(ctx context.Context) ([]models.DailyLog, error)
	LoadCycleConfig(ctx context.Context) (*models.CycleConfig, error)
	Revision(ctx context.Context) (int64, error)
}

type AnalyticsOptions struct {
	Rules              ScoringRules
	MinimumRecords     int
	ForecastCycles     int
	ForecastPeriodDays int
}

func DefaultAnalyticsOptions() AnalyticsOptions {
	return AnalyticsOptions{
		Rules:          DefaultScoringRules(),
		MinimumRecords: 5,
		ForecastCycles: defaultForecastCycles,
	}
}

type AnalyticsService struct {
	source  RecordSource
	options AnalyticsOptions
	logger  zerolog.Logger
}

func NewAnalyticsService(source RecordSource, options AnalyticsOptions, logger zerolog.Logger) *AnalyticsService {
	if options.MinimumRecords <= 0 {
		options.MinimumRecords = DefaultAnalyticsOptions().MinimumRecords
	}
	if len(options.Rules.ConcerningSymptoms) == 0 {
		options.Rules = DefaultScoringRules()
	}
	return &AnalyticsService{
		source:  source,
		options: options,
		logger:  logger.With().Str("component", "analytics").Logger(),
	}
}

func (service *AnalyticsService) HasChangedSince(ctx context.Context, token ChangeToken) (bool, ChangeToken, error) {
	revision, err := service.source.Revision(ctx)
	if err != nil {
		return false, token, fmt.Errorf("load revision: %w", err)
	}
	current := ChangeToken(revision)
	return current != token, current, nil
}

// BuildReport reads one snapshot from the source and derives the report from
// it. Missing or corrupted data is reported through the report status; only
// store failures and invalid records return an error.
func (service *AnalyticsService) BuildReport(ctx context.Context, window Window, now time.Time) (AnalyticsReport, error) {
	revision, err := service.source.Revision(ctx)
	if err != nil {
		return AnalyticsReport{}, fmt.Errorf("load revision: %w", err)
	}
	report := emptyReport(window, FormatDay(now), ChangeToken(revision))

	records, err := service.source.LoadDailyRecords(ctx)
	if err != nil {
		return service.failedLoadReport(report, "daily records", err)
	}
	config, err := service.source.LoadCycleConfig(ctx)
	if err != nil {
		return service.failedLoadReport(report, "cycle config", err)
	}
	if err := ValidateRecords(records); err != nil {
		return AnalyticsReport{}, err
	}

	history := sortedByDate(records)
	if len(history) == 0 && config == nil {
		report.Status = ReportStatusNoData
		report.Message = noDataMessage
		return service.finish(report), nil
	}

	windowed := FilterByWindow(history, window, now)
	report.RecordCount = len(windowed)

	var effective *models.CycleConfig
	if config != nil {
		resolved := *config
		resolved.LastPeriodDate = EffectivePeriodStart(*config, history)
		effective = &resolved
		service.applyConfigPredictions(&report, resolved, now)
	}

	if len(windowed) < service.options.MinimumRecords {
		report.Status = ReportStatusInsufficientData
		report.Message = fmt.Sprintf(insufficientDataMessage, service.options.MinimumRecords)
		return service.finish(report), nil
	}

	service.applyAnalysis(&report, windowed, effective)
	report.Status = ReportStatusOK
	return service.finish(report), nil
}

func (service *AnalyticsService) failedLoadReport(report AnalyticsReport, what string, err error) (AnalyticsReport, error) {
	if !errors.Is(err, models.ErrStoredDataCorrupted) {
		return AnalyticsReport{}, fmt.Errorf("load %s: %w", what, err)
	}
	service.logger.Warn().Err(err).Str("source", what).Msg("stored data corrupted")
	report.Status = ReportStatusDataCorrupted
	report.Message = dataCorruptedMessage
	return service.finish(report), nil
}

func (service *AnalyticsService) applyConfigPredictions(report *AnalyticsReport, config models.CycleConfig, now time.Time) {
	report.Prediction = summarizePrediction(PredictNextCycle(config, config.LastPeriodDate, ReportFertileWindow))

	phase := CalculatePhase(now, config)
	report.CurrentPhase = PhaseSummary{
		Phase:      string(phase.Phase),
		DayOfCycle: phase.DayOfCycle,
		Intensity:  phase.Intensity,
	}

	periodDays := service.options.ForecastPeriodDays
	if periodDays <= 0 {
		periodDays = config.AveragePeriodLength
	}
	report.FutureCycles = summarizeForecasts(ForecastCycles(config, config.LastPeriodDate, service.options.ForecastCycles, periodDays))
}

func (service *AnalyticsService) applyAnalysis(report *AnalyticsReport, windowed []models.DailyLog, config *models.CycleConfig) {
	fallbackAverage := models.DefaultCycleLength
	if config != nil {
		fallbackAverage = config.AverageCycleLength
	}

	cycles := ReconstructCycles(windowed, PrimaryCycleBounds)
	lengthStats := BuildLengthStats(CycleLengths(cycles), fallbackAverage)
	frequencies := SymptomFrequencies(windowed)
	trends := SymptomTrends(windowed)
	moods := MoodDistribution(windowed)
	regularity := ClassifyRegularity(lengthStats.Variation)
	healthScore := HealthScore(lengthStats.Variation, len(cycles), frequencies, service.options.Rules)

	report.CycleCount = len(cycles)
	report.AverageCycleLength = roundTo(lengthStats.Average, 1)
	report.CycleVariation = roundTo(lengthStats.Variation, 1)
	report.MinCycleLength = lengthStats.Min
	report.MaxCycleLength = lengthStats.Max
	report.Regularity = regularity
	report.HealthScore = healthScore
	report.DataQualityScore = DataQualityScore(windowed, len(cycles))
	report.TopSymptoms = trends
	report.MoodDistribution = moods
	report.Correlations = SymptomMoodCorrelations(windowed)
	report.MonthlyTrends = MonthlyTrendSeries(windowed)

	insights := GenerateInsights(AnalysisContext{
		RecordCount:       len(windowed),
		CycleCount:        len(cycles),
		Variation:         lengthStats.Variation,
		Regularity:        regularity,
		HealthScore:       healthScore,
		Frequencies:       frequencies,
		SymptomTrends:     trends,
		Moods:             moods,
		ObservedIntervals: ObservedCycleIntervals(windowed),
		Rules:             service.options.Rules,
	})
	report.Insights = insights.Insights
	report.Recommendations = insights.Recommendations
	report.RiskFactors = insights.RiskFactors

	if config != nil {
		report.Prediction.Accuracy = string(AccuracyForRegularity(regularity))
	}
}

func (service *AnalyticsService) finish(report AnalyticsReport) AnalyticsReport {
	service.logger.Debug().
		Str("status", string(report.Status)).
		Str("window", string(report.Window)).
		Int("records", report.RecordCount).
		Int("cycles", report.CycleCount).
		Int64("revision", int64(report.Revision)).
		Msg("analytics report built")
	return report
}

// ValidateRecords enforces the one-record-per-date invariant and rejects
// records without a date.
func ValidateRecords(records []models.DailyLog) error {
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		if record.Date.IsZero() {
			return &RecordError{Record: record, Reason: "missing date"}
		}
		key := FormatDay(record.Date)
		if _, duplicate := seen[key]; duplicate {
			return &RecordError{Record: record, Reason: "duplicate date"}
		}
		seen[key] = struct{}{}
	}
	return nil
}
