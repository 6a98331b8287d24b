package services

import (
	"context"

	"github.com/terraincognita07/cyclelens/internal/models"
)

var _ RecordSource = (*staticRecordSource)(nil)

// staticRecordSource serves a fixed snapshot; the CLI uses it for imported
// files that are never persisted.
type staticRecordSource struct {
	records  []models.DailyLog
	config   *models.CycleConfig
	revision int64
}

func NewStaticRecordSource(records []models.DailyLog, config *models.CycleConfig) RecordSource {
	return &staticRecordSource{records: records, config: config}
}

func (source *staticRecordSource) LoadDailyRecords(context.Context) ([]models.DailyLog, error) {
	return source.records, nil
}

func (source *staticRecordSource) LoadCycleConfig(context.Context) (*models.CycleConfig, error) {
	return source.config, nil
}

func (source *staticRecordSource) Revision(context.Context) (int64, error) {
	return source.revision, nil
}
