package services

import (
	"sort"

	"github.com/terraincognita07/cyclelens/internal/models"
)

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

const (
	maxSymptomTrends   = 10
	trendMonthsPerSide = 3
	trendUpRatio       = 1.2
	trendDownRatio     = 0.8
)

type SymptomFrequency struct {
	Name      string `json:"name"`
	Count     int    `json:"count"`
	TotalDays int    `json:"total_days"`
	Percent   int    `json:"percent"`
}

type SymptomTrend struct {
	Name             string         `json:"name"`
	FrequencyPercent int            `json:"frequency_percent"`
	Trend            TrendDirection `json:"trend"`
	Color            string         `json:"color"`
}

// SymptomFrequencies counts the days each symptom was logged on, in order of
// first appearance in logs.
func SymptomFrequencies(logs []models.DailyLog) []SymptomFrequency {
	totalDays := len(logs)
	if totalDays == 0 {
		return []SymptomFrequency{}
	}

	order := make([]string, 0)
	counts := make(map[string]int)
	for _, entry := range logs {
		for _, name := range cleanLabels(entry.Symptoms) {
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	result := make([]SymptomFrequency, 0, len(order))
	for _, name := range order {
		result = append(result, SymptomFrequency{
			Name:      name,
			Count:     counts[name],
			TotalDays: totalDays,
			Percent:   percentOf(counts[name], totalDays),
		})
	}
	return result
}

func SymptomTrends(logs []models.DailyLog) []SymptomTrend {
	frequencies := SymptomFrequencies(logs)
	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Percent > frequencies[j].Percent
	})
	if len(frequencies) > maxSymptomTrends {
		frequencies = frequencies[:maxSymptomTrends]
	}

	buckets := bucketByMonth(logs)
	trends := make([]SymptomTrend, 0, len(frequencies))
	for _, frequency := range frequencies {
		trends = append(trends, SymptomTrend{
			Name:             frequency.Name,
			FrequencyPercent: frequency.Percent,
			Trend:            symptomTrendDirection(buckets, frequency.Name),
			Color:            models.PresentationColor(frequency.Name),
		})
	}
	return trends
}

type monthBucket struct {
	Key      string
	Records  int
	FlowDays int
	Symptoms map[string]int
}

func (bucket monthBucket) symptomOccurrences() int {
	total := 0
	for _, count := range bucket.Symptoms {
		total += count
	}
	return total
}

func bucketByMonth(logs []models.DailyLog) []monthBucket {
	byKey := make(map[string]*monthBucket)
	for _, entry := range logs {
		key := CalendarDay(entry.Date).Format("2006-01")
		bucket, ok := byKey[key]
		if !ok {
			bucket = &monthBucket{Key: key, Symptoms: make(map[string]int)}
			byKey[key] = bucket
		}
		bucket.Records++
		if entry.HasFlow() {
			bucket.FlowDays++
		}
		for _, name := range cleanLabels(entry.Symptoms) {
			bucket.Symptoms[name]++
		}
	}

	buckets := make([]monthBucket, 0, len(byKey))
	for _, bucket := range byKey {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

// symptomTrendDirection compares the mean monthly count of the newest months
// against the oldest ones, up to three per side. Each side takes at most half
// the months, so the sides never overlap: four months compare two against
// two, and fewer than two months is always stable.
func symptomTrendDirection(buckets []monthBucket, name string) TrendDirection {
	side := min(trendMonthsPerSide, len(buckets)/2)
	if side < 1 {
		return TrendStable
	}

	old := meanSymptomCount(buckets[:side], name)
	recent := meanSymptomCount(buckets[len(buckets)-side:], name)
	return classifyTrend(recent, old)
}

func classifyTrend(recent float64, old float64) TrendDirection {
	switch {
	case recent == 0 && old == 0:
		return TrendStable
	case recent >= old*trendUpRatio:
		return TrendUp
	case recent <= old*trendDownRatio:
		return TrendDown
	default:
		return TrendStable
	}
}

func meanSymptomCount(buckets []monthBucket, name string) float64 {
	if len(buckets) == 0 {
		return 0
	}
	total := 0
	for _, bucket := range buckets {
		total += bucket.Symptoms[name]
	}
	return float64(total) / float64(len(buckets))
}
