package db

import (
	"context"

	"gorm.io/gorm"
)

type RevisionRepository struct {
	database *gorm.DB
}

func NewRevisionRepository(database *gorm.DB) *RevisionRepository {
	return &RevisionRepository{database: database}
}

func (repo *RevisionRepository) Current(ctx context.Context) (int64, error) {
	var revision int64
	if err := repo.database.WithContext(ctx).
		Raw(`SELECT revision FROM store_revisions WHERE id = 1`).
		Row().
		Scan(&revision); err != nil {
		return 0, err
	}
	return revision, nil
}

func bumpRevision(tx *gorm.DB) error {
	return tx.Exec(`UPDATE store_revisions SET revision = revision + 1 WHERE id = 1`).Error
}
