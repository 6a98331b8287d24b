package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/terraincognita07/cyclelens/internal/models"
)

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()
	day, err := ParseDay(raw)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return day
}

func flowLog(t *testing.T, raw string) models.DailyLog {
	t.Helper()
	return models.DailyLog{Date: mustParseDay(t, raw), Flow: models.FlowMedium}
}

func symptomLog(t *testing.T, raw string, mood string, symptoms ...string) models.DailyLog {
	t.Helper()
	return models.DailyLog{Date: mustParseDay(t, raw), Flow: models.FlowNone, Mood: mood, Symptoms: symptoms}
}

// logsOnDays builds one flowless record per day starting at first.
func logsOnDays(t *testing.T, first string, count int) []models.DailyLog {
	t.Helper()
	start := mustParseDay(t, first)
	logs := make([]models.DailyLog, 0, count)
	for index := 0; index < count; index++ {
		logs = append(logs, models.DailyLog{Date: AddDays(start, index), Flow: models.FlowNone})
	}
	return logs
}

func testCycleConfig(t *testing.T, lastPeriod string, cycleLength int, periodLength int) models.CycleConfig {
	t.Helper()
	return models.CycleConfig{
		LastPeriodDate:      mustParseDay(t, lastPeriod),
		AverageCycleLength:  cycleLength,
		AveragePeriodLength: periodLength,
	}
}

type stubRecordSource struct {
	records     []models.DailyLog
	config      *models.CycleConfig
	revision    int64
	recordsErr  error
	configErr   error
	revisionErr error
}

func (source *stubRecordSource) LoadDailyRecords(context.Context) ([]models.DailyLog, error) {
	return source.records, source.recordsErr
}

func (source *stubRecordSource) LoadCycleConfig(context.Context) (*models.CycleConfig, error) {
	return source.config, source.configErr
}

func (source *stubRecordSource) Revision(context.Context) (int64, error) {
	return source.revision, source.revisionErr
}

type memoryDayLogRepository struct {
	entries   map[string]models.DailyLog
	upsertErr error
}

func newMemoryDayLogRepository(entries ...models.DailyLog) *memoryDayLogRepository {
	repo := &memoryDayLogRepository{entries: make(map[string]models.DailyLog)}
	for _, entry := range entries {
		repo.entries[FormatDay(entry.Date)] = entry
	}
	return repo
}

func (repo *memoryDayLogRepository) ListAll(ctx context.Context) ([]models.DailyLog, error) {
	return repo.ListRange(ctx, nil, nil)
}

func (repo *memoryDayLogRepository) ListRange(_ context.Context, from *time.Time, to *time.Time) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0, len(repo.entries))
	for _, entry := range repo.entries {
		if from != nil && entry.Date.Before(*from) {
			continue
		}
		if to != nil && entry.Date.After(*to) {
			continue
		}
		logs = append(logs, entry)
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date.Before(logs[j].Date)
	})
	return logs, nil
}

func (repo *memoryDayLogRepository) Upsert(_ context.Context, entry models.DailyLog) error {
	if repo.upsertErr != nil {
		return repo.upsertErr
	}
	repo.entries[FormatDay(entry.Date)] = entry
	return nil
}

func (repo *memoryDayLogRepository) DeleteByDate(_ context.Context, day time.Time) (bool, error) {
	key := FormatDay(day)
	if _, ok := repo.entries[key]; !ok {
		return false, nil
	}
	delete(repo.entries, key)
	return true, nil
}

var errStubConfigInvalid = errors.New("stub config invalid")

type memoryCycleConfigRepository struct {
	config *models.CycleConfig
	saves  int
}

func (repo *memoryCycleConfigRepository) Load(context.Context) (*models.CycleConfig, error) {
	if repo.config == nil {
		return nil, nil
	}
	copied := *repo.config
	return &copied, nil
}

func (repo *memoryCycleConfigRepository) Save(_ context.Context, config models.CycleConfig) error {
	if err := config.Validate(); err != nil {
		return errStubConfigInvalid
	}
	repo.config = &config
	repo.saves++
	return nil
}
