package db

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/cyclelens/internal/models"
	"github.com/terraincognita07/cyclelens/internal/services"
)

type dailyLogRow struct {
	Day       string    `gorm:"column:day;primaryKey"`
	Symptoms  string    `gorm:"column:symptoms"`
	Mood      string    `gorm:"column:mood"`
	Flow      string    `gorm:"column:flow"`
	Notes     string    `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (dailyLogRow) TableName() string {
	return "daily_logs"
}

type cycleConfigRow struct {
	ID                  uint      `gorm:"column:id;primaryKey"`
	LastPeriodDate      string    `gorm:"column:last_period_date"`
	AverageCycleLength  int       `gorm:"column:average_cycle_length"`
	AveragePeriodLength int       `gorm:"column:average_period_length"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (cycleConfigRow) TableName() string {
	return "cycle_configs"
}

const cycleConfigRowID = 1

func newDailyLogRow(entry models.DailyLog) (dailyLogRow, error) {
	symptoms := entry.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	encoded, err := json.Marshal(symptoms)
	if err != nil {
		return dailyLogRow{}, fmt.Errorf("encode symptoms: %w", err)
	}

	flow := strings.TrimSpace(entry.Flow)
	if flow == "" {
		flow = models.FlowNone
	}
	return dailyLogRow{
		Day:      services.FormatDay(entry.Date),
		Symptoms: string(encoded),
		Mood:     entry.Mood,
		Flow:     flow,
		Notes:    entry.Notes,
	}, nil
}

func (row dailyLogRow) toModel() (models.DailyLog, error) {
	day, err := services.ParseDay(row.Day)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: daily log day %q", models.ErrStoredDataCorrupted, row.Day)
	}

	symptoms := make([]string, 0)
	if raw := strings.TrimSpace(row.Symptoms); raw != "" {
		if err := json.Unmarshal([]byte(raw), &symptoms); err != nil {
			return models.DailyLog{}, fmt.Errorf("%w: daily log %s symptoms: %v", models.ErrStoredDataCorrupted, row.Day, err)
		}
	}
	if !models.IsValidFlow(row.Flow) {
		return models.DailyLog{}, fmt.Errorf("%w: daily log %s flow %q", models.ErrStoredDataCorrupted, row.Day, row.Flow)
	}

	return models.DailyLog{
		Date:     day,
		Symptoms: symptoms,
		Mood:     row.Mood,
		Flow:     row.Flow,
		Notes:    row.Notes,
	}, nil
}

func (row cycleConfigRow) toModel() (models.CycleConfig, error) {
	lastPeriod, err := services.ParseDay(row.LastPeriodDate)
	if err != nil {
		return models.CycleConfig{}, fmt.Errorf("%w: last period date %q", models.ErrStoredDataCorrupted, row.LastPeriodDate)
	}
	config := models.CycleConfig{
		LastPeriodDate:      lastPeriod,
		AverageCycleLength:  row.AverageCycleLength,
		AveragePeriodLength: row.AveragePeriodLength,
	}
	if err := config.Validate(); err != nil {
		return models.CycleConfig{}, fmt.Errorf("%w: %v", models.ErrStoredDataCorrupted, err)
	}
	return config, nil
}
