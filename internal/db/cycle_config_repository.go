package db

import (
	"context"

	"github.com/terraincognita07/cyclelens/internal/models"
	"github.com/terraincognita07/cyclelens/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CycleConfigRepository struct {
	database *gorm.DB
}

func NewCycleConfigRepository(database *gorm.DB) *CycleConfigRepository {
	return &CycleConfigRepository{database: database}
}

// Load returns nil without error when no config has been saved yet.
func (repo *CycleConfigRepository) Load(ctx context.Context) (*models.CycleConfig, error) {
	row := cycleConfigRow{}
	result := repo.database.WithContext(ctx).
		Where("id = ?", cycleConfigRowID).
		Limit(1).
		Find(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	config, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (repo *CycleConfigRepository) Save(ctx context.Context, config models.CycleConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	row := cycleConfigRow{
		ID:                  cycleConfigRowID,
		LastPeriodDate:      services.FormatDay(config.LastPeriodDate),
		AverageCycleLength:  config.AverageCycleLength,
		AveragePeriodLength: config.AveragePeriodLength,
	}
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_period_date", "average_cycle_length", "average_period_length", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return err
		}
		return bumpRevision(tx)
	})
}
