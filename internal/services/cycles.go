package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/cyclelens/internal/models"
)

// CycleBounds is the accepted length range, in days, for a reconstructed
// cycle. Gaps outside it are dropped as noise.
type CycleBounds struct {
	Min int
	Max int
}

var (
	// PrimaryCycleBounds backs cycle count, statistics, scoring and insights.
	PrimaryCycleBounds = CycleBounds{Min: 21, Max: 40}
	// TrendCycleBounds backs the monthly trend series only.
	TrendCycleBounds = CycleBounds{Min: 20, Max: 40}
)

func (bounds CycleBounds) Contains(length int) bool {
	return length >= bounds.Min && length <= bounds.Max
}

type Cycle struct {
	Start    time.Time `json:"start"`
	Length   int       `json:"length"`
	Symptoms []string  `json:"symptoms"`
}

func ReconstructCycles(logs []models.DailyLog, bounds CycleBounds) []Cycle {
	sorted := sortedByDate(logs)
	starts := DetectPeriodStarts(sorted)
	if len(starts) < 2 {
		return []Cycle{}
	}

	cycles := make([]Cycle, 0, len(starts)-1)
	for index := 1; index < len(starts); index++ {
		start := starts[index-1]
		nextStart := starts[index]
		length := DaysBetween(start, nextStart)
		if !bounds.Contains(length) {
			continue
		}
		cycles = append(cycles, Cycle{
			Start:    start,
			Length:   length,
			Symptoms: symptomsBetween(sorted, start, nextStart),
		})
	}
	return cycles
}

// DetectPeriodStarts returns the first day of every run of flow records on
// consecutive calendar days, oldest first.
func DetectPeriodStarts(logs []models.DailyLog) []time.Time {
	sorted := sortedByDate(logs)

	starts := make([]time.Time, 0)
	var previousFlowDay time.Time
	for _, entry := range sorted {
		if !entry.HasFlow() {
			continue
		}
		day := CalendarDay(entry.Date)
		if previousFlowDay.IsZero() || DaysBetween(previousFlowDay, day) > 1 {
			starts = append(starts, day)
		}
		previousFlowDay = day
	}
	return starts
}

// ObservedCycleIntervals lists every gap between consecutive period starts
// without applying any bounds.
func ObservedCycleIntervals(logs []models.DailyLog) []int {
	starts := DetectPeriodStarts(logs)
	if len(starts) < 2 {
		return []int{}
	}
	intervals := make([]int, 0, len(starts)-1)
	for index := 1; index < len(starts); index++ {
		intervals = append(intervals, DaysBetween(starts[index-1], starts[index]))
	}
	return intervals
}

func LatestPeriodStart(logs []models.DailyLog) (time.Time, bool) {
	starts := DetectPeriodStarts(logs)
	if len(starts) == 0 {
		return time.Time{}, false
	}
	return starts[len(starts)-1], true
}

func CycleLengths(cycles []Cycle) []int {
	lengths := make([]int, 0, len(cycles))
	for _, cycle := range cycles {
		lengths = append(lengths, cycle.Length)
	}
	return lengths
}

func symptomsBetween(sorted []models.DailyLog, start time.Time, end time.Time) []string {
	collected := make([]string, 0)
	for _, entry := range sorted {
		if !betweenCalendarDaysInclusive(entry.Date, start, end) {
			continue
		}
		collected = append(collected, entry.Symptoms...)
	}
	return cleanLabels(collected)
}

func sortLogsByDate(logs []models.DailyLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		return CalendarDay(logs[i].Date).Before(CalendarDay(logs[j].Date))
	})
}
