package dto

import (
	"time"

	"sauna-configurator-api/internal/domain"
)

// ProductConfigSummary represents one row of the admin product list
type ProductConfigSummary struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Family      string    `json:"family"`
	PriceSource string    `json:"priceSource"`
	StepCount   int       `json:"stepCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewProductConfigSummary builds the list row of a product config
func NewProductConfigSummary(cfg *domain.ProductConfig) ProductConfigSummary {
	return ProductConfigSummary{
		ProductID:   cfg.ProductID,
		ProductName: cfg.ProductName,
		Family:      string(cfg.Family),
		PriceSource: string(cfg.PriceSource),
		StepCount:   len(cfg.Steps),
		UpdatedAt:   cfg.UpdatedAt,
	}
}

// CreateProductConfigQuery carries the optional name used when a product config is created lazily
type CreateProductConfigQuery struct {
	Name   string `form:"name" binding:"omitempty,max=255"`
	Family string `form:"family" binding:"omitempty,oneof=cube barrel hiki aisti aura"`
}

// StepPatch represents a partial update of one step and its step data
type StepPatch struct {
	Name          *string          `json:"name" binding:"omitempty,max=100"`
	Title         *string          `json:"title" binding:"omitempty,max=200"`
	Description   *string          `json:"description"`
	Subtext       *string          `json:"subtext"`
	ImageURL      *string          `json:"imageUrl"`
	SelectionType *string          `json:"selectionType" binding:"omitempty,selectiontype"`
	Required      *bool            `json:"required"`
	Options       *[]domain.Option `json:"options"`
}

// PatchProductConfigRequest represents a partial update of a product config
type PatchProductConfigRequest struct {
	ProductName            *string                `json:"productName" binding:"omitempty,min=1,max=255"`
	Family                 *string                `json:"family" binding:"omitempty,oneof=cube barrel hiki aisti aura"`
	MainProductImageURL    *string                `json:"mainProductImageUrl"`
	MainProductPipedriveID *int64                 `json:"mainProductPipedriveId" binding:"omitempty,min=1"`
	Design                 *domain.DesignSettings `json:"design"`
	QuoteSettings          *domain.QuoteSettings  `json:"quoteSettings"`
	PriceSource            *string                `json:"priceSource" binding:"omitempty,pricesource"`
	// StepOrder lists step ids in their new order; unlisted steps are removed
	StepOrder []string             `json:"stepOrder" binding:"omitempty,dive,stepid"`
	Steps     map[string]StepPatch `json:"steps" binding:"omitempty,dive,keys,stepid,endkeys"`
}
