package db

import (
	"context"
	"errors"
	"time"

	"github.com/terraincognita07/cyclelens/internal/models"
	"github.com/terraincognita07/cyclelens/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDayNotFound = errors.New("day not found")

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

func (repo *DailyLogRepository) ListAll(ctx context.Context) ([]models.DailyLog, error) {
	return repo.ListRange(ctx, nil, nil)
}

// ListRange returns logs ordered by day. Both bounds are inclusive and
// either may be nil.
func (repo *DailyLogRepository) ListRange(ctx context.Context, from *time.Time, to *time.Time) ([]models.DailyLog, error) {
	query := repo.database.WithContext(ctx).Model(&dailyLogRow{})
	if from != nil {
		query = query.Where("day >= ?", services.FormatDay(*from))
	}
	if to != nil {
		query = query.Where("day <= ?", services.FormatDay(*to))
	}

	rows := make([]dailyLogRow, 0)
	if err := query.Order("day ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	logs := make([]models.DailyLog, 0, len(rows))
	for _, row := range rows {
		entry, err := row.toModel()
		if err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, nil
}

func (repo *DailyLogRepository) FindByDate(ctx context.Context, day time.Time) (models.DailyLog, error) {
	row := dailyLogRow{}
	result := repo.database.WithContext(ctx).
		Where("day = ?", services.FormatDay(day)).
		Limit(1).
		Find(&row)
	if result.Error != nil {
		return models.DailyLog{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, ErrDayNotFound
	}
	return row.toModel()
}

func (repo *DailyLogRepository) Upsert(ctx context.Context, entry models.DailyLog) error {
	row, err := newDailyLogRow(entry)
	if err != nil {
		return err
	}

	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"symptoms", "mood", "flow", "notes", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return err
		}
		return bumpRevision(tx)
	})
}

// UpsertMany writes a batch under a single revision bump.
func (repo *DailyLogRepository) UpsertMany(ctx context.Context, entries []models.DailyLog) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]dailyLogRow, 0, len(entries))
	for _, entry := range entries {
		row, err := newDailyLogRow(entry)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"symptoms", "mood", "flow", "notes", "updated_at"}),
		}).CreateInBatches(&rows, 200).Error; err != nil {
			return err
		}
		return bumpRevision(tx)
	})
}

func (repo *DailyLogRepository) DeleteByDate(ctx context.Context, day time.Time) (bool, error) {
	deleted := false
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("day = ?", services.FormatDay(day)).Delete(&dailyLogRow{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return bumpRevision(tx)
	})
	return deleted, err
}
