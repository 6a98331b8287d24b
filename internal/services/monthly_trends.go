package services

import "github.com/terraincognita07/cyclelens/internal/models"

type MonthlyTrendPoint struct {
	Month              string  `json:"month"`
	Records            int     `json:"records"`
	FlowDays           int     `json:"flow_days"`
	SymptomOccurrences int     `json:"symptom_occurrences"`
	CycleCount         int     `json:"cycle_count"`
	AverageCycleLength float64 `json:"average_cycle_length"`
}

// MonthlyTrendSeries attributes each cycle to the month it started in. Cycles
// are rebuilt with TrendCycleBounds, which accept a 20-day gap the primary
// pass rejects.
func MonthlyTrendSeries(logs []models.DailyLog) []MonthlyTrendPoint {
	buckets := bucketByMonth(logs)
	if len(buckets) == 0 {
		return []MonthlyTrendPoint{}
	}

	lengthsByMonth := make(map[string][]int)
	for _, cycle := range ReconstructCycles(logs, TrendCycleBounds) {
		key := cycle.Start.Format("2006-01")
		lengthsByMonth[key] = append(lengthsByMonth[key], cycle.Length)
	}

	series := make([]MonthlyTrendPoint, 0, len(buckets))
	for _, bucket := range buckets {
		lengths := lengthsByMonth[bucket.Key]
		series = append(series, MonthlyTrendPoint{
			Month:              bucket.Key,
			Records:            bucket.Records,
			FlowDays:           bucket.FlowDays,
			SymptomOccurrences: bucket.symptomOccurrences(),
			CycleCount:         len(lengths),
			AverageCycleLength: roundTo(averageInts(lengths), 1),
		})
	}
	return series
}
