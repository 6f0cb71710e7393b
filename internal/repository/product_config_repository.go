package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sauna-configurator-api/internal/domain"
)

// ProductConfigRepository defines the interface for product config data access
type ProductConfigRepository interface {
	Create(ctx context.Context, record *domain.ProductConfigRecord) error
	FindByID(ctx context.Context, productID string) (*domain.ProductConfigRecord, error)
	FindAll(ctx context.Context) ([]*domain.ProductConfigRecord, error)
	Save(ctx context.Context, record *domain.ProductConfigRecord) error
	Delete(ctx context.Context, productID string) error
	Count(ctx context.Context) (int64, error)
}

// productConfigRepositoryImpl is the GORM implementation of ProductConfigRepository
type productConfigRepositoryImpl struct {
	db *gorm.DB
}

// NewProductConfigRepository creates a new instance of ProductConfigRepository
func NewProductConfigRepository(db *gorm.DB) ProductConfigRepository {
	return &productConfigRepositoryImpl{db: db}
}

// Create inserts a product config; an existing live row with the same id is left untouched.
// A soft deleted row with the same id is purged first.
func (r *productConfigRepositoryImpl) Create(ctx context.Context, record *domain.ProductConfigRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("product_id = ? AND deleted_at IS NOT NULL", record.ProductID).
			Delete(&domain.ProductConfigRecord{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(record).Error
	})
}

// FindByID finds a product config by product id
func (r *productConfigRepositoryImpl) FindByID(ctx context.Context, productID string) (*domain.ProductConfigRecord, error) {
	var record domain.ProductConfigRecord
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindAll lists product configs ordered by product id
func (r *productConfigRepositoryImpl) FindAll(ctx context.Context) ([]*domain.ProductConfigRecord, error) {
	var records []*domain.ProductConfigRecord
	if err := r.db.WithContext(ctx).
		Order("product_id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save writes the whole row; last write wins
func (r *productConfigRepositoryImpl) Save(ctx context.Context, record *domain.ProductConfigRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete soft deletes a product config
func (r *productConfigRepositoryImpl) Delete(ctx context.Context, productID string) error {
	result := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&domain.ProductConfigRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of live product configs
func (r *productConfigRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.ProductConfigRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
