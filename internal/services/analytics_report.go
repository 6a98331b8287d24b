package services

type ReportStatus string

const (
	ReportStatusOK               ReportStatus = "ok"
	ReportStatusNoData           ReportStatus = "no_data"
	ReportStatusInsufficientData ReportStatus = "insufficient_data"
	ReportStatusDataCorrupted    ReportStatus = "data_corrupted"
)

// InsufficientDataText stands in for any prediction that needs a cycle
// config when none is stored.
const InsufficientDataText = "insufficient data"

const (
	noDataMessage           = "Start logging your cycle to see analytics."
	insufficientDataMessage = "At least %d logged days in the selected period are needed to build analytics."
	dataCorruptedMessage    = "Stored data appears to be corrupted. Please reload the app."
)

// AnalyticsReport is built fresh on every call and never updated afterwards.
type AnalyticsReport struct {
	Status       ReportStatus `json:"status"`
	Message      string       `json:"message,omitempty"`
	Window       Window       `json:"window"`
	GeneratedFor string       `json:"generated_for"`
	Revision     ChangeToken  `json:"revision"`

	RecordCount        int        `json:"record_count"`
	CycleCount         int        `json:"cycle_count"`
	AverageCycleLength float64    `json:"average_cycle_length"`
	CycleVariation     float64    `json:"cycle_variation"`
	MinCycleLength     int        `json:"min_cycle_length"`
	MaxCycleLength     int        `json:"max_cycle_length"`
	Regularity         Regularity `json:"regularity"`
	HealthScore        int        `json:"health_score"`
	DataQualityScore   int        `json:"data_quality_score"`

	TopSymptoms      []SymptomTrend           `json:"top_symptoms"`
	MoodDistribution []MoodShare              `json:"mood_distribution"`
	Correlations     []SymptomMoodCorrelation `json:"symptom_mood_correlations"`
	MonthlyTrends    []MonthlyTrendPoint      `json:"monthly_trends"`

	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	RiskFactors     []string `json:"risk_factors"`

	Prediction   PredictionSummary `json:"prediction"`
	CurrentPhase PhaseSummary      `json:"current_phase"`
	FutureCycles []ForecastSummary `json:"future_cycles"`
}

type PredictionSummary struct {
	NextPeriod         string `json:"next_period"`
	Ovulation          string `json:"ovulation"`
	FertileWindowStart string `json:"fertile_window_start"`
	FertileWindowEnd   string `json:"fertile_window_end"`
	Accuracy           string `json:"accuracy"`
}

type PhaseSummary struct {
	Phase      string  `json:"phase"`
	DayOfCycle int     `json:"day_of_cycle"`
	Intensity  float64 `json:"intensity"`
}

type ForecastSummary struct {
	Start              string `json:"start"`
	End                string `json:"end"`
	Ovulation          string `json:"ovulation"`
	FertileWindowStart string `json:"fertile_window_start"`
	FertileWindowEnd   string `json:"fertile_window_end"`
}

func (report AnalyticsReport) Available() bool {
	return report.Status == ReportStatusOK
}

func emptyReport(window Window, generatedFor string, revision ChangeToken) AnalyticsReport {
	return AnalyticsReport{
		Window:           window,
		GeneratedFor:     generatedFor,
		Revision:         revision,
		TopSymptoms:      []SymptomTrend{},
		MoodDistribution: []MoodShare{},
		Correlations:     []SymptomMoodCorrelation{},
		MonthlyTrends:    []MonthlyTrendPoint{},
		Insights:         []string{},
		Recommendations:  []string{},
		RiskFactors:      []string{},
		Prediction: PredictionSummary{
			NextPeriod:         InsufficientDataText,
			Ovulation:          InsufficientDataText,
			FertileWindowStart: InsufficientDataText,
			FertileWindowEnd:   InsufficientDataText,
			Accuracy:           InsufficientDataText,
		},
		CurrentPhase: PhaseSummary{Phase: InsufficientDataText},
		FutureCycles: []ForecastSummary{},
	}
}

func summarizePrediction(prediction CyclePrediction) PredictionSummary {
	return PredictionSummary{
		NextPeriod:         FormatDay(prediction.NextPeriod),
		Ovulation:          FormatDay(prediction.Ovulation),
		FertileWindowStart: FormatDay(prediction.FertileWindowStart),
		FertileWindowEnd:   FormatDay(prediction.FertileWindowEnd),
		Accuracy:           InsufficientDataText,
	}
}

func summarizeForecasts(forecasts []CycleForecast) []ForecastSummary {
	summaries := make([]ForecastSummary, 0, len(forecasts))
	for _, forecast := range forecasts {
		summaries = append(summaries, ForecastSummary{
			Start:              FormatDay(forecast.Start),
			End:                FormatDay(forecast.End),
			Ovulation:          FormatDay(forecast.Ovulation),
			FertileWindowStart: FormatDay(forecast.FertileWindowStart),
			FertileWindowEnd:   FormatDay(forecast.FertileWindowEnd),
		})
	}
	return summaries
}
