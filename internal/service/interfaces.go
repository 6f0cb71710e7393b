package service

import (
	"context"

	"github.com/google/uuid"

	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/domain"
)

// ResolvedConfigCache stores resolved configurations by input key
type ResolvedConfigCache interface {
	Get(ctx context.Context, key string) (*domain.ProductConfig, bool)
	Set(ctx context.Context, key string, cfg *domain.ProductConfig)
}

// PriceCache stores catalog prices by catalog product id
type PriceCache interface {
	GetMany(ctx context.Context, ids []int64) (map[int64]domain.CatalogPrice, []int64)
	SetMany(ctx context.Context, prices map[int64]domain.CatalogPrice)
}

// SessionStore persists selection sessions
type SessionStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.SelectionSession, error)
	Save(ctx context.Context, session *domain.SelectionSession) error
}

// SettingsPublisher announces global settings changes to other replicas and websocket clients
type SettingsPublisher interface {
	Publish(ctx context.Context, event cache.SettingsEvent) error
}
