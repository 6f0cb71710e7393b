package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sauna-configurator-api/internal/domain"
)

// AdminConfigRepository defines the interface for the global settings row
type AdminConfigRepository interface {
	Get(ctx context.Context) (*domain.AdminConfig, error)
	Save(ctx context.Context, settings datatypes.JSON) (*domain.AdminConfig, error)
}

// adminConfigRepositoryImpl is the GORM implementation of AdminConfigRepository
type adminConfigRepositoryImpl struct {
	db *gorm.DB
}

// NewAdminConfigRepository creates a new instance of AdminConfigRepository
func NewAdminConfigRepository(db *gorm.DB) AdminConfigRepository {
	return &adminConfigRepositoryImpl{db: db}
}

// Get returns the singleton row or gorm.ErrRecordNotFound
func (r *adminConfigRepositoryImpl) Get(ctx context.Context) (*domain.AdminConfig, error) {
	var cfg domain.AdminConfig
	if err := r.db.WithContext(ctx).
		Where("id = ?", domain.AdminConfigSingletonID).
		First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save replaces the stored settings, bumping the version and issuing a new revision
func (r *adminConfigRepositoryImpl) Save(ctx context.Context, settings datatypes.JSON) (*domain.AdminConfig, error) {
	var saved domain.AdminConfig

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.AdminConfig
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", domain.AdminConfigSingletonID).
			First(&current).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			saved = domain.AdminConfig{
				ID:             domain.AdminConfigSingletonID,
				GlobalSettings: settings,
				Version:        1,
				Revision:       uuid.New(),
			}
			return tx.Create(&saved).Error
		case err != nil:
			return err
		}

		current.GlobalSettings = settings
		current.Version++
		current.Revision = uuid.New()
		if err := tx.Save(&current).Error; err != nil {
			return err
		}
		saved = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
