package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/cyclelens/internal/models"
)

var (
	ErrDayEntrySaveFailed   = errors.New("save day entry failed")
	ErrDeleteDayFailed      = errors.New("delete day failed")
	ErrSyncLastPeriodFailed = errors.New("sync last period failed")
)

type DayLogRepository interface {
	ListAll(ctx context.Context) ([]models.DailyLog, error)
	ListRange(ctx context.Context, from *time.Time, to *time.Time) ([]models.DailyLog, error)
	Upsert(ctx context.Context, entry models.DailyLog) error
	DeleteByDate(ctx context.Context, day time.Time) (bool, error)
}

type CycleConfigRepository interface {
	Load(ctx context.Context) (*models.CycleConfig, error)
	Save(ctx context.Context, config models.CycleConfig) error
}

type DayService struct {
	logs    DayLogRepository
	configs CycleConfigRepository
}

func NewDayService(logs DayLogRepository, configs CycleConfigRepository) *DayService {
	return &DayService{
		logs:    logs,
		configs: configs,
	}
}

func (service *DayService) FetchLogs(ctx context.Context, from *time.Time, to *time.Time) ([]models.DailyLog, error) {
	return service.logs.ListRange(ctx, from, to)
}

func (service *DayService) UpsertDayEntry(ctx context.Context, day time.Time, input DayEntryInput) (models.DailyLog, error) {
	normalized, err := NormalizeDayEntryInput(input)
	if err != nil {
		return models.DailyLog{}, err
	}

	entry := models.DailyLog{
		Date:     CalendarDay(day),
		Flow:     normalized.Flow,
		Mood:     normalized.Mood,
		Symptoms: normalized.Symptoms,
		Notes:    normalized.Notes,
	}
	if err := service.logs.Upsert(ctx, entry); err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: %v", ErrDayEntrySaveFailed, err)
	}
	if entry.HasFlow() {
		if err := service.RefreshLastPeriodDate(ctx); err != nil {
			return models.DailyLog{}, fmt.Errorf("%w: %v", ErrSyncLastPeriodFailed, err)
		}
	}
	return entry, nil
}

func (service *DayService) DeleteDay(ctx context.Context, day time.Time) (bool, error) {
	deleted, err := service.logs.DeleteByDate(ctx, CalendarDay(day))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrDeleteDayFailed, err)
	}
	return deleted, nil
}

// RefreshLastPeriodDate moves the stored config forward when the log shows a
// newer period start. It never moves the date backwards and never creates a
// config.
func (service *DayService) RefreshLastPeriodDate(ctx context.Context) error {
	config, err := service.configs.Load(ctx)
	if err != nil || config == nil {
		return err
	}
	logs, err := service.logs.ListAll(ctx)
	if err != nil {
		return err
	}
	latest := EffectivePeriodStart(*config, logs)
	if !latest.After(CalendarDay(config.LastPeriodDate)) {
		return nil
	}
	config.LastPeriodDate = latest
	return service.configs.Save(ctx, *config)
}
