package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/cyclelens/internal/models"
)

var (
	ErrSettingsCycleLengthOutOfRange    = errors.New("cycle length out of range")
	ErrSettingsPeriodLengthOutOfRange   = errors.New("period length out of range")
	ErrSettingsPeriodLengthIncompatible = errors.New("period length incompatible with cycle length")
	ErrSettingsCycleStartDateInvalid    = errors.New("last period date invalid")
)

type CycleSettingsInput struct {
	CycleLength        int
	PeriodLength       int
	LastPeriodStartRaw string
}

type SettingsService struct {
	configs CycleConfigRepository
}

func NewSettingsService(configs CycleConfigRepository) *SettingsService {
	return &SettingsService{configs: configs}
}

func (service *SettingsService) LoadCycleConfig(ctx context.Context) (*models.CycleConfig, error) {
	return service.configs.Load(ctx)
}

func (service *SettingsService) SaveCycleSettings(ctx context.Context, input CycleSettingsInput, now time.Time) (models.CycleConfig, error) {
	config, err := ValidateCycleSettings(input, now)
	if err != nil {
		return models.CycleConfig{}, err
	}
	if err := service.configs.Save(ctx, config); err != nil {
		return models.CycleConfig{}, fmt.Errorf("save cycle config: %w", err)
	}
	return config, nil
}

// ValidateCycleSettings rejects a period long enough to hide the
// post-menstrual phase, which needs at least one day between the period and
// the fertile window.
func ValidateCycleSettings(input CycleSettingsInput, now time.Time) (models.CycleConfig, error) {
	if input.CycleLength < models.MinCycleLength || input.CycleLength > models.MaxCycleLength {
		return models.CycleConfig{}, ErrSettingsCycleLengthOutOfRange
	}
	if input.PeriodLength < models.MinPeriodLength || input.PeriodLength > models.MaxPeriodLength {
		return models.CycleConfig{}, ErrSettingsPeriodLengthOutOfRange
	}
	if input.PeriodLength > maxPeriodLengthFor(input.CycleLength) {
		return models.CycleConfig{}, ErrSettingsPeriodLengthIncompatible
	}

	lastPeriod, err := ParseDay(strings.TrimSpace(input.LastPeriodStartRaw))
	if err != nil {
		return models.CycleConfig{}, ErrSettingsCycleStartDateInvalid
	}
	if lastPeriod.After(CalendarDay(now)) {
		return models.CycleConfig{}, ErrSettingsCycleStartDateInvalid
	}

	return models.CycleConfig{
		LastPeriodDate:      lastPeriod,
		AverageCycleLength:  input.CycleLength,
		AveragePeriodLength: input.PeriodLength,
	}, nil
}

func maxPeriodLengthFor(cycleLength int) int {
	return OvulationDayOfCycle(cycleLength) - 4
}
