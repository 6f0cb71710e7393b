package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/dto"
	"sauna-configurator-api/internal/response"
)

func TestGlobalSettingsService_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("성공: missing settings are an empty snapshot", func(t *testing.T) {
		svc := NewGlobalSettingsService(newInMemoryAdminRepo(), nil, nil, nil)

		snapshot, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), snapshot.Version)
		assert.Empty(t, snapshot.Settings.StepNames)
	})

	t.Run("실패: repository error", func(t *testing.T) {
		repo := &MockAdminConfigRepository{
			GetFunc: func(ctx context.Context) (*domain.AdminConfig, error) {
				return nil, errors.New("timeout")
			},
		}
		svc := NewGlobalSettingsService(repo, nil, nil, nil)

		_, err := svc.Current(ctx)
		assertAppError(t, err, response.ErrCodeInternal)
	})
}

func TestGlobalSettingsService_ReplaceSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("성공: bumps the version and publishes", func(t *testing.T) {
		publisher := &MockSettingsPublisher{}
		svc := NewGlobalSettingsService(newInMemoryAdminRepo(), publisher, newTestMetrics(), zap.NewNop())

		first, err := svc.ReplaceSettings(ctx, []byte(`{"stepNames":{"heater":"Heat Source"}}`))
		require.NoError(t, err)
		second, err := svc.ReplaceSettings(ctx, []byte(`{"stepNames":{"heater":"Stove"}}`))
		require.NoError(t, err)

		assert.Equal(t, int64(1), first.Version)
		assert.Equal(t, int64(2), second.Version)
		require.Len(t, publisher.Events, 2)
		assert.Equal(t, cache.EventSettingsUpdated, publisher.Events[1].Type)
		assert.Equal(t, second.Revision, publisher.Events[1].Revision)

		current, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Stove", current.Settings.StepNames["heater"])
	})

	t.Run("성공: publish failures do not fail the write", func(t *testing.T) {
		publisher := &MockSettingsPublisher{
			PublishFunc: func(ctx context.Context, event cache.SettingsEvent) error {
				return errors.New("redis down")
			},
		}
		svc := NewGlobalSettingsService(newInMemoryAdminRepo(), publisher, nil, nil)

		_, err := svc.ReplaceSettings(ctx, []byte(`{}`))
		assert.NoError(t, err)
	})

	t.Run("실패: schema violation", func(t *testing.T) {
		svc := NewGlobalSettingsService(newInMemoryAdminRepo(), nil, nil, nil)

		_, err := svc.ReplaceSettings(ctx, []byte(`{"stepNames":{"heater":1}}`))
		assertAppError(t, err, response.ErrCodeValidation)
	})
}

func TestGlobalSettingsService_PatchSettings(t *testing.T) {
	ctx := context.Background()
	svc := NewGlobalSettingsService(newInMemoryAdminRepo(), nil, nil, nil)

	_, err := svc.ReplaceSettings(ctx, []byte(`{"stepNames":{"heater":"Heat Source","lighting":"Lights"},"optionIncluded":{"stones-according-to-heater":true}}`))
	require.NoError(t, err)

	t.Run("성공: merges maps and removes keys", func(t *testing.T) {
		req := &dto.PatchGlobalSettingsRequest{
			GlobalSettings: domain.GlobalSettings{
				StepNames:    map[string]string{"delivery": "Shipping"},
				OptionImages: map[string]string{"cube_wooden-backwall": "/custom.jpg"},
			},
			Remove: map[string][]string{"stepNames": {"lighting"}},
		}

		snapshot, err := svc.PatchSettings(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, int64(2), snapshot.Version)
		assert.Equal(t, map[string]string{"heater": "Heat Source", "delivery": "Shipping"}, snapshot.Settings.StepNames)
		assert.Equal(t, "/custom.jpg", snapshot.Settings.OptionImages["cube_wooden-backwall"])
		assert.True(t, snapshot.Settings.OptionIncluded["stones-according-to-heater"])
	})

	t.Run("실패: unknown map name", func(t *testing.T) {
		_, err := svc.PatchSettings(ctx, &dto.PatchGlobalSettingsRequest{Remove: map[string][]string{"colors": {"x"}}})
		assertAppError(t, err, response.ErrCodeValidation)
	})
}

func TestGlobalSettingsService_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := newInMemoryAdminRepo()
	svc := NewGlobalSettingsService(repo, nil, nil, nil)
	_, err := svc.ReplaceSettings(ctx, []byte(`{"stepNames":{"heater":"Heat Source"}}`))
	require.NoError(t, err)

	// Another replica writes version 2 straight to the database
	_, err = repo.Save(ctx, []byte(`{"stepNames":{"heater":"Stove"}}`))
	require.NoError(t, err)

	events := make(chan cache.SettingsEvent, 1)
	go svc.Watch(ctx, events)
	events <- cache.SettingsEvent{Type: cache.EventSettingsUpdated, Version: 2}

	assert.Eventually(t, func() bool {
		current, err := svc.Current(ctx)
		return err == nil && current.Settings.StepNames["heater"] == "Stove"
	}, time.Second, 10*time.Millisecond)
}
