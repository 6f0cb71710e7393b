package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/dto"
	"sauna-configurator-api/internal/metrics"
	"sauna-configurator-api/internal/pricing"
	"sauna-configurator-api/internal/response"
	"sauna-configurator-api/internal/selection"
)

// SelectionService defines the interface for customer selection sessions
type SelectionService interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*domain.SelectionSession, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.SelectionSession, error)
	PatchSession(ctx context.Context, sessionID uuid.UUID, req *dto.PatchSessionRequest) (*domain.SelectionSession, error)
	UpdateSelection(ctx context.Context, sessionID uuid.UUID, stepID string, optionIDs []string) (*domain.SelectionSession, error)
	ToggleOption(ctx context.Context, sessionID uuid.UUID, stepID, optionID string) (*domain.SelectionSession, error)
	ClearSelections(ctx context.Context, sessionID uuid.UUID) (*domain.SelectionSession, error)
	GetProgress(ctx context.Context, sessionID uuid.UUID) (*dto.SessionProgressResponse, error)
	GetPrices(ctx context.Context, sessionID uuid.UUID) (*dto.ProductPricesResponse, error)
}

// selectionServiceImpl is the implementation of SelectionService
type selectionServiceImpl struct {
	sessions     SessionStore
	configurator ConfiguratorService
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

// NewSelectionService creates a new instance of SelectionService
func NewSelectionService(sessions SessionStore, configurator ConfiguratorService, m *metrics.Metrics, logger *zap.Logger) SelectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &selectionServiceImpl{
		sessions:     sessions,
		configurator: configurator,
		metrics:      m,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateSession starts an empty session for a product
func (s *selectionServiceImpl) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*domain.SelectionSession, error) {
	if _, err := s.configurator.GetResolvedConfig(ctx, req.ProductID); err != nil {
		return nil, err
	}

	now := s.now()
	session := &domain.SelectionSession{
		ID:         uuid.New(),
		ProductID:  req.ProductID,
		Selections: domain.Selections{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Selection session created",
		zap.String("session_id", session.ID.String()),
		zap.String("product_id", session.ProductID),
	)
	if s.metrics != nil {
		s.metrics.IncrementSessionCreated()
	}
	return session, nil
}

// GetSession loads a session
func (s *selectionServiceImpl) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.SelectionSession, error) {
	return s.load(ctx, sessionID)
}

// PatchSession switches the product, which clears the selections, or records a delivery location
func (s *selectionServiceImpl) PatchSession(ctx context.Context, sessionID uuid.UUID, req *dto.PatchSessionRequest) (*domain.SelectionSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.ProductID != nil && *req.ProductID != session.ProductID {
		if _, err := s.configurator.GetResolvedConfig(ctx, *req.ProductID); err != nil {
			return nil, err
		}
		s.logger.Debug("Session switched product, clearing selections",
			zap.String("session_id", session.ID.String()),
			zap.String("from", session.ProductID),
			zap.String("to", *req.ProductID),
		)
		session.ProductID = *req.ProductID
		session.Selections = domain.Selections{}
	}

	if req.DeliveryLocation != nil {
		if *req.DeliveryLocation == "" {
			delete(session.DeliveryLocations, session.ProductID)
		} else {
			if session.DeliveryLocations == nil {
				session.DeliveryLocations = make(map[string]string)
			}
			session.DeliveryLocations[session.ProductID] = *req.DeliveryLocation
		}
	}

	session.UpdatedAt = s.now()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSelection replaces the selection of one step
func (s *selectionServiceImpl) UpdateSelection(ctx context.Context, sessionID uuid.UUID, stepID string, optionIDs []string) (*domain.SelectionSession, error) {
	return s.mutate(ctx, sessionID, func(state *selection.State) error {
		return state.Update(stepID, optionIDs)
	})
}

// ToggleOption selects or deselects one option
func (s *selectionServiceImpl) ToggleOption(ctx context.Context, sessionID uuid.UUID, stepID, optionID string) (*domain.SelectionSession, error) {
	return s.mutate(ctx, sessionID, func(state *selection.State) error {
		return state.Toggle(stepID, optionID)
	})
}

// ClearSelections drops every selection; delivery locations are kept
func (s *selectionServiceImpl) ClearSelections(ctx context.Context, sessionID uuid.UUID) (*domain.SelectionSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Selections = domain.Selections{}
	session.UpdatedAt = s.now()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetProgress reports step completion and the stone line of the selected heater
func (s *selectionServiceImpl) GetProgress(ctx context.Context, sessionID uuid.UUID) (*dto.SessionProgressResponse, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resolved, err := s.configurator.GetResolvedConfig(ctx, session.ProductID)
	if err != nil {
		return nil, err
	}

	state := selection.NewState(resolved.StepData, session.Selections)
	steps := state.Progress(resolved.Steps)

	completed := 0
	for _, step := range steps {
		if step.Complete {
			completed++
		}
	}

	var stones *domain.HeaterStones
	if heater, ok := resolved.StepData[domain.StepHeater]; ok {
		for _, id := range state.Get(domain.StepHeater) {
			if stones = pricing.CalculateHeaterStones(id, heater.Options); stones != nil {
				break
			}
		}
	}

	return &dto.SessionProgressResponse{
		SessionID:      session.ID,
		ProductID:      session.ProductID,
		Steps:          steps,
		CompletedSteps: completed,
		TotalSteps:     len(steps),
		Complete:       len(steps) > 0 && completed == len(steps),
		HeaterStones:   stones,
	}, nil
}

// GetPrices lists the option prices of the session's product, pricing the stone line from its selected heater
func (s *selectionServiceImpl) GetPrices(ctx context.Context, sessionID uuid.UUID) (*dto.ProductPricesResponse, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resolved, err := s.configurator.GetResolvedConfig(ctx, session.ProductID)
	if err != nil {
		return nil, err
	}

	heaterID := selectedHeater(resolved.StepData[domain.StepHeater], session.Selections[domain.StepHeater])
	return s.configurator.GetProductPrices(ctx, session.ProductID, heaterID)
}

func selectedHeater(heater domain.StepData, selected []string) string {
	for _, id := range selected {
		if opt, ok := heater.FindOption(id); ok && !pricing.IsStoneOption(opt) {
			return id
		}
	}
	return ""
}

// mutate applies a change to the session's selections against the current resolved config
func (s *selectionServiceImpl) mutate(ctx context.Context, sessionID uuid.UUID, change func(*selection.State) error) (*domain.SelectionSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resolved, err := s.configurator.GetResolvedConfig(ctx, session.ProductID)
	if err != nil {
		return nil, err
	}

	state := selection.NewState(resolved.StepData, session.Selections)
	if err := change(state); err != nil {
		switch {
		case errors.Is(err, selection.ErrUnknownStep):
			return nil, response.NewValidationError("Unknown step", err.Error())
		case errors.Is(err, selection.ErrUnknownOption):
			return nil, response.NewValidationError("Unknown option", err.Error())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update selection", err.Error())
	}

	session.Selections = state.Snapshot()
	session.UpdatedAt = s.now()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *selectionServiceImpl) load(ctx context.Context, sessionID uuid.UUID) (*domain.SelectionSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, cache.ErrSessionNotFound) {
			return nil, response.NewNotFoundError("Session not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load session", err.Error())
	}
	return session, nil
}

func (s *selectionServiceImpl) save(ctx context.Context, session *domain.SelectionSession) error {
	if err := s.sessions.Save(ctx, session); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to save session", err.Error())
	}
	return nil
}
