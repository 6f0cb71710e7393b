package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/domain"
)

// MockProductConfigRepository is a mock implementation of ProductConfigRepository
type MockProductConfigRepository struct {
	CreateFunc   func(ctx context.Context, record *domain.ProductConfigRecord) error
	FindByIDFunc func(ctx context.Context, productID string) (*domain.ProductConfigRecord, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.ProductConfigRecord, error)
	SaveFunc     func(ctx context.Context, record *domain.ProductConfigRecord) error
	DeleteFunc   func(ctx context.Context, productID string) error
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *MockProductConfigRepository) Create(ctx context.Context, record *domain.ProductConfigRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *MockProductConfigRepository) FindByID(ctx context.Context, productID string) (*domain.ProductConfigRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, productID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProductConfigRepository) FindAll(ctx context.Context) ([]*domain.ProductConfigRecord, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProductConfigRepository) Save(ctx context.Context, record *domain.ProductConfigRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *MockProductConfigRepository) Delete(ctx context.Context, productID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, productID)
	}
	return nil
}

func (m *MockProductConfigRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// newInMemoryProductRepo wires the mock's funcs to a map so services can be exercised end to end
func newInMemoryProductRepo() *MockProductConfigRepository {
	var mu sync.Mutex
	rows := make(map[string]domain.ProductConfigRecord)
	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	touch := func(record *domain.ProductConfigRecord) {
		tick = tick.Add(time.Second)
		if record.CreatedAt.IsZero() {
			record.CreatedAt = tick
		}
		record.UpdatedAt = tick
	}

	return &MockProductConfigRepository{
		CreateFunc: func(ctx context.Context, record *domain.ProductConfigRecord) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := rows[record.ProductID]; ok {
				return nil
			}
			touch(record)
			rows[record.ProductID] = *record
			return nil
		},
		FindByIDFunc: func(ctx context.Context, productID string) (*domain.ProductConfigRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			record, ok := rows[productID]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return &record, nil
		},
		FindAllFunc: func(ctx context.Context) ([]*domain.ProductConfigRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			ids := make([]string, 0, len(rows))
			for id := range rows {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			records := make([]*domain.ProductConfigRecord, 0, len(ids))
			for _, id := range ids {
				record := rows[id]
				records = append(records, &record)
			}
			return records, nil
		},
		SaveFunc: func(ctx context.Context, record *domain.ProductConfigRecord) error {
			mu.Lock()
			defer mu.Unlock()
			touch(record)
			rows[record.ProductID] = *record
			return nil
		},
		DeleteFunc: func(ctx context.Context, productID string) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := rows[productID]; !ok {
				return gorm.ErrRecordNotFound
			}
			delete(rows, productID)
			return nil
		},
	}
}

// MockAdminConfigRepository is a mock implementation of AdminConfigRepository
type MockAdminConfigRepository struct {
	GetFunc  func(ctx context.Context) (*domain.AdminConfig, error)
	SaveFunc func(ctx context.Context, settings datatypes.JSON) (*domain.AdminConfig, error)
}

func (m *MockAdminConfigRepository) Get(ctx context.Context) (*domain.AdminConfig, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAdminConfigRepository) Save(ctx context.Context, settings datatypes.JSON) (*domain.AdminConfig, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, settings)
	}
	return &domain.AdminConfig{ID: domain.AdminConfigSingletonID, GlobalSettings: settings, Version: 1, Revision: uuid.New()}, nil
}

// newInMemoryAdminRepo keeps a single versioned row
func newInMemoryAdminRepo() *MockAdminConfigRepository {
	var mu sync.Mutex
	var row *domain.AdminConfig
	return &MockAdminConfigRepository{
		GetFunc: func(ctx context.Context) (*domain.AdminConfig, error) {
			mu.Lock()
			defer mu.Unlock()
			if row == nil {
				return nil, gorm.ErrRecordNotFound
			}
			copied := *row
			return &copied, nil
		},
		SaveFunc: func(ctx context.Context, settings datatypes.JSON) (*domain.AdminConfig, error) {
			mu.Lock()
			defer mu.Unlock()
			version := int64(1)
			if row != nil {
				version = row.Version + 1
			}
			row = &domain.AdminConfig{
				ID:             domain.AdminConfigSingletonID,
				GlobalSettings: settings,
				Version:        version,
				Revision:       uuid.New(),
			}
			copied := *row
			return &copied, nil
		},
	}
}

// MockSettingsPublisher records published events
type MockSettingsPublisher struct {
	PublishFunc func(ctx context.Context, event cache.SettingsEvent) error
	Events      []cache.SettingsEvent
}

func (m *MockSettingsPublisher) Publish(ctx context.Context, event cache.SettingsEvent) error {
	m.Events = append(m.Events, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, event)
	}
	return nil
}

// MockCatalogClient is a mock implementation of CatalogClient
type MockCatalogClient struct {
	GetPricesFunc func(ctx context.Context, productIDs []int64) (map[int64]domain.CatalogPrice, error)
	Calls         [][]int64
}

func (m *MockCatalogClient) GetPrices(ctx context.Context, productIDs []int64) (map[int64]domain.CatalogPrice, error) {
	m.Calls = append(m.Calls, append([]int64(nil), productIDs...))
	if m.GetPricesFunc != nil {
		return m.GetPricesFunc(ctx, productIDs)
	}
	return map[int64]domain.CatalogPrice{}, nil
}

// countingResolvedCache wraps a resolved cache and counts hits
type countingResolvedCache struct {
	inner ResolvedConfigCache
	hits  int
	sets  int
}

func (c *countingResolvedCache) Get(ctx context.Context, key string) (*domain.ProductConfig, bool) {
	cfg, ok := c.inner.Get(ctx, key)
	if ok {
		c.hits++
	}
	return cfg, ok
}

func (c *countingResolvedCache) Set(ctx context.Context, key string, cfg *domain.ProductConfig) {
	c.sets++
	c.inner.Set(ctx, key, cfg)
}
