package db

import (
	"context"

	"github.com/terraincognita07/cyclelens/internal/models"
	"github.com/terraincognita07/cyclelens/internal/services"
	"gorm.io/gorm"
)

var (
	_ services.RecordSource          = (*Repositories)(nil)
	_ services.DayLogRepository      = (*DailyLogRepository)(nil)
	_ services.CycleConfigRepository = (*CycleConfigRepository)(nil)
)

type Repositories struct {
	DailyLogs    *DailyLogRepository
	CycleConfigs *CycleConfigRepository
	Revisions    *RevisionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		DailyLogs:    NewDailyLogRepository(database),
		CycleConfigs: NewCycleConfigRepository(database),
		Revisions:    NewRevisionRepository(database),
	}
}

func (repos *Repositories) LoadDailyRecords(ctx context.Context) ([]models.DailyLog, error) {
	return repos.DailyLogs.ListAll(ctx)
}

func (repos *Repositories) LoadCycleConfig(ctx context.Context) (*models.CycleConfig, error) {
	return repos.CycleConfigs.Load(ctx)
}

func (repos *Repositories) Revision(ctx context.Context) (int64, error) {
	return repos.Revisions.Current(ctx)
}
