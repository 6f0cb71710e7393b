package dto

import (
	"github.com/google/uuid"

	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/selection"
)

// ResolvedConfigResponse is the configuration shown to customers
type ResolvedConfigResponse struct {
	domain.ProductConfig
	// Empty is true when no step survived resolution; the client shows its empty state
	Empty           bool  `json:"empty"`
	SettingsVersion int64 `json:"settingsVersion"`
}

// HeaterStonesResponse represents the stone requirement of a heater
type HeaterStonesResponse struct {
	ProductID string               `json:"productId"`
	HeaterID  string               `json:"heaterId"`
	Stones    *domain.HeaterStones `json:"stones"`
}

// OptionPriceResponse represents the effective price of one option
type OptionPriceResponse struct {
	StepID           string               `json:"stepId"`
	OptionID         string               `json:"optionId"`
	CatalogProductID *int64               `json:"catalogProductId,omitempty"`
	Price            float64              `json:"price"`
	Currency         string               `json:"currency,omitempty"`
	TaxRate          float64              `json:"taxRate,omitempty"`
	Included         bool                 `json:"included"`
	Stones           *domain.HeaterStones `json:"stones,omitempty"`
	Source           string               `json:"source"`
}

// ProductPricesResponse lists option prices of a product
type ProductPricesResponse struct {
	ProductID    string                `json:"productId"`
	PriceSource  string                `json:"priceSource"`
	HeaterID     string                `json:"heaterId,omitempty"`
	HeaterStones *domain.HeaterStones  `json:"heaterStones,omitempty"`
	Options      []OptionPriceResponse `json:"options"`
}

// CreateSessionRequest represents the request to start a selection session
type CreateSessionRequest struct {
	ProductID string `json:"productId" binding:"required,stepid"`
}

// PatchSessionRequest switches the product of a session or records its delivery location
type PatchSessionRequest struct {
	ProductID        *string `json:"productId" binding:"omitempty,stepid"`
	DeliveryLocation *string `json:"deliveryLocation" binding:"omitempty,max=200"`
}

// UpdateSelectionRequest replaces the selected options of one step
type UpdateSelectionRequest struct {
	OptionIDs []string `json:"optionIds" binding:"omitempty,dive,required"`
}

// ToggleOptionRequest toggles one option of a step
type ToggleOptionRequest struct {
	OptionID string `json:"optionId" binding:"required"`
}

// SessionProgressResponse represents the completion state of a session
type SessionProgressResponse struct {
	SessionID      uuid.UUID                `json:"sessionId"`
	ProductID      string                   `json:"productId"`
	Steps          []selection.StepProgress `json:"steps"`
	CompletedSteps int                      `json:"completedSteps"`
	TotalSteps     int                      `json:"totalSteps"`
	Complete       bool                     `json:"complete"`
	HeaterStones   *domain.HeaterStones     `json:"heaterStones,omitempty"`
}
