package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/dto"
	"sauna-configurator-api/internal/metrics"
	"sauna-configurator-api/internal/repository"
	"sauna-configurator-api/internal/response"
	"sauna-configurator-api/internal/validation"
)

// GlobalSettingsService defines the interface for the cross-product override maps
type GlobalSettingsService interface {
	// Current returns the latest settings snapshot; callers must not mutate it
	Current(ctx context.Context) (*domain.SettingsSnapshot, error)
	ReplaceSettings(ctx context.Context, raw []byte) (*domain.SettingsSnapshot, error)
	PatchSettings(ctx context.Context, req *dto.PatchGlobalSettingsRequest) (*domain.SettingsSnapshot, error)
	// Watch drops the in-process snapshot whenever another replica publishes a newer version.
	// It blocks until ctx is cancelled.
	Watch(ctx context.Context, events <-chan cache.SettingsEvent)
}

// globalSettingsServiceImpl is the implementation of GlobalSettingsService
type globalSettingsServiceImpl struct {
	repo      repository.AdminConfigRepository
	publisher SettingsPublisher
	metrics   *metrics.Metrics
	logger    *zap.Logger

	mu      sync.RWMutex
	current *domain.SettingsSnapshot
}

// NewGlobalSettingsService creates a new instance of GlobalSettingsService
func NewGlobalSettingsService(repo repository.AdminConfigRepository, publisher SettingsPublisher, m *metrics.Metrics, logger *zap.Logger) GlobalSettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &globalSettingsServiceImpl{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Current returns the cached snapshot, loading it on first use.
// Missing settings are an empty snapshot with version 0.
func (s *globalSettingsServiceImpl) Current(ctx context.Context) (*domain.SettingsSnapshot, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current != nil {
		return current, nil
	}

	stored, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.SettingsSnapshot{}, nil
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch global settings", err.Error())
	}

	snapshot, err := stored.Snapshot()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load global settings", err.Error())
	}
	s.remember(snapshot)
	if s.metrics != nil {
		s.metrics.SetSettingsVersion(snapshot.Version)
	}
	return snapshot, nil
}

// ReplaceSettings validates and stores a complete settings document
func (s *globalSettingsServiceImpl) ReplaceSettings(ctx context.Context, raw []byte) (*domain.SettingsSnapshot, error) {
	if err := validation.ValidateGlobalSettings(raw); err != nil {
		return nil, response.NewValidationError("Invalid global settings", err.Error())
	}

	var settings domain.GlobalSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, response.NewValidationError("Invalid global settings", err.Error())
	}
	return s.save(ctx, &settings)
}

// PatchSettings merges the provided maps into the stored settings
func (s *globalSettingsServiceImpl) PatchSettings(ctx context.Context, req *dto.PatchGlobalSettingsRequest) (*domain.SettingsSnapshot, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	merged := current.Settings.Clone()
	patch := &req.GlobalSettings
	merged.StepNames = mergeMap(merged.StepNames, patch.StepNames)
	merged.StepImages = mergeMap(merged.StepImages, patch.StepImages)
	merged.StepSubheaders = mergeMap(merged.StepSubheaders, patch.StepSubheaders)
	merged.StepMoreInfoEnabled = mergeMap(merged.StepMoreInfoEnabled, patch.StepMoreInfoEnabled)
	merged.StepMoreInfoURL = mergeMap(merged.StepMoreInfoURL, patch.StepMoreInfoURL)
	merged.OptionImages = mergeMap(merged.OptionImages, patch.OptionImages)
	merged.OptionTitles = mergeMap(merged.OptionTitles, patch.OptionTitles)
	merged.OptionPipedriveProducts = mergeMap(merged.OptionPipedriveProducts, patch.OptionPipedriveProducts)
	merged.OptionIncluded = mergeMap(merged.OptionIncluded, patch.OptionIncluded)

	for name, keys := range req.Remove {
		if err := removeKeys(merged, name, keys); err != nil {
			return nil, err
		}
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode global settings", err.Error())
	}
	if err := validation.ValidateGlobalSettings(raw); err != nil {
		return nil, response.NewValidationError("Invalid global settings", err.Error())
	}
	return s.save(ctx, merged)
}

// Watch invalidates the cached snapshot on newer versions published elsewhere
func (s *globalSettingsServiceImpl) Watch(ctx context.Context, events <-chan cache.SettingsEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			s.mu.Lock()
			if s.current == nil || event.Version > s.current.Version {
				s.current = nil
				s.logger.Debug("Global settings snapshot invalidated", zap.Int64("version", event.Version))
			}
			s.mu.Unlock()
		}
	}
}

func (s *globalSettingsServiceImpl) save(ctx context.Context, settings *domain.GlobalSettings) (*domain.SettingsSnapshot, error) {
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode global settings", err.Error())
	}

	stored, err := s.repo.Save(ctx, raw)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save global settings", err.Error())
	}

	snapshot := &domain.SettingsSnapshot{
		Version:   stored.Version,
		Revision:  stored.Revision,
		Settings:  *settings.Clone(),
		UpdatedAt: stored.UpdatedAt,
	}
	s.remember(snapshot)

	s.logger.Info("Global settings updated",
		zap.Int64("version", snapshot.Version),
		zap.String("revision", snapshot.Revision.String()),
	)
	if s.metrics != nil {
		s.metrics.RecordSettingsUpdate(snapshot.Version)
	}

	if s.publisher != nil {
		event := cache.SettingsEvent{Type: cache.EventSettingsUpdated, Version: snapshot.Version, Revision: snapshot.Revision}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish settings change", zap.Error(err))
		}
	}
	return snapshot, nil
}

// remember keeps the newest snapshot seen
func (s *globalSettingsServiceImpl) remember(snapshot *domain.SettingsSnapshot) {
	s.mu.Lock()
	if s.current == nil || snapshot.Version >= s.current.Version {
		s.current = snapshot
	}
	s.mu.Unlock()
}

func mergeMap[V any](base, patch map[string]V) map[string]V {
	if len(patch) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]V, len(patch))
	}
	for k, v := range patch {
		base[k] = v
	}
	return base
}

func removeKeys(settings *domain.GlobalSettings, name string, keys []string) error {
	switch name {
	case "stepNames":
		deleteKeys(settings.StepNames, keys)
	case "stepImages":
		deleteKeys(settings.StepImages, keys)
	case "stepSubheaders":
		deleteKeys(settings.StepSubheaders, keys)
	case "stepMoreInfoEnabled":
		deleteKeys(settings.StepMoreInfoEnabled, keys)
	case "stepMoreInfoUrl":
		deleteKeys(settings.StepMoreInfoURL, keys)
	case "optionImages":
		deleteKeys(settings.OptionImages, keys)
	case "optionTitles":
		deleteKeys(settings.OptionTitles, keys)
	case "optionPipedriveProducts":
		deleteKeys(settings.OptionPipedriveProducts, keys)
	case "optionIncluded":
		deleteKeys(settings.OptionIncluded, keys)
	default:
		return response.NewValidationError("Unknown settings map: "+name, "")
	}
	return nil
}

func deleteKeys[V any](m map[string]V, keys []string) {
	for _, key := range keys {
		delete(m, key)
	}
}
