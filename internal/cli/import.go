package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/cyclelens/internal/models"
	"github.com/terraincognita07/cyclelens/internal/services"
)

var ErrInvalidImportFile = errors.New("invalid import file")

type importRecord struct {
	Date     string   `json:"date"`
	Flow     string   `json:"flow"`
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type importConfig struct {
	LastPeriodDate      string `json:"last_period_date"`
	AverageCycleLength  int    `json:"average_cycle_length"`
	AveragePeriodLength int    `json:"average_period_length"`
}

type importFile struct {
	Config  *importConfig  `json:"config"`
	Records []importRecord `json:"records"`
}

// ImportData is a decoded import file.
type ImportData struct {
	Config  *models.CycleConfig
	Records []models.DailyLog
}

type ImportStore interface {
	UpsertMany(ctx context.Context, entries []models.DailyLog) error
}

type ConfigStore interface {
	Save(ctx context.Context, config models.CycleConfig) error
}

func LoadImportFile(path string) (ImportData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ImportData{}, fmt.Errorf("read import file: %w", err)
	}
	return DecodeImport(raw)
}

// DecodeImport parses the JSON export layout: an optional "config" object and
// a "records" array with YYYY-MM-DD dates.
func DecodeImport(raw []byte) (ImportData, error) {
	file := importFile{}
	if err := json.Unmarshal(raw, &file); err != nil {
		return ImportData{}, fmt.Errorf("%w: %v", ErrInvalidImportFile, err)
	}

	data := ImportData{Records: make([]models.DailyLog, 0, len(file.Records))}
	for index, record := range file.Records {
		day, err := services.ParseDay(record.Date)
		if err != nil {
			return ImportData{}, fmt.Errorf("%w: record %d date %q", ErrInvalidImportFile, index, record.Date)
		}
		input, err := services.NormalizeDayEntryInput(services.DayEntryInput{
			Flow:     record.Flow,
			Mood:     record.Mood,
			Symptoms: record.Symptoms,
			Notes:    record.Notes,
		})
		if err != nil {
			return ImportData{}, fmt.Errorf("%w: record %s: %v", ErrInvalidImportFile, record.Date, err)
		}
		data.Records = append(data.Records, models.DailyLog{
			Date:     day,
			Flow:     input.Flow,
			Mood:     input.Mood,
			Symptoms: input.Symptoms,
			Notes:    input.Notes,
		})
	}
	if err := services.ValidateRecords(data.Records); err != nil {
		return ImportData{}, fmt.Errorf("%w: %v", ErrInvalidImportFile, err)
	}

	if file.Config != nil {
		lastPeriod, err := services.ParseDay(file.Config.LastPeriodDate)
		if err != nil {
			return ImportData{}, fmt.Errorf("%w: config last_period_date %q", ErrInvalidImportFile, file.Config.LastPeriodDate)
		}
		config := models.CycleConfig{
			LastPeriodDate:      lastPeriod,
			AverageCycleLength:  file.Config.AverageCycleLength,
			AveragePeriodLength: file.Config.AveragePeriodLength,
		}
		if err := config.Validate(); err != nil {
			return ImportData{}, fmt.Errorf("%w: %v", ErrInvalidImportFile, err)
		}
		data.Config = &config
	}
	return data, nil
}

// RunImportCommand writes the file's records and config into the store.
func RunImportCommand(ctx context.Context, logs ImportStore, configs ConfigStore, path string, out io.Writer) error {
	data, err := LoadImportFile(strings.TrimSpace(path))
	if err != nil {
		return err
	}

	if err := logs.UpsertMany(ctx, data.Records); err != nil {
		return fmt.Errorf("import records: %w", err)
	}
	if data.Config != nil {
		if err := configs.Save(ctx, *data.Config); err != nil {
			return fmt.Errorf("import cycle config: %w", err)
		}
	}

	_, err = fmt.Fprintf(out, "Imported %d records (cycle config: %t)\n", len(data.Records), data.Config != nil)
	return err
}
