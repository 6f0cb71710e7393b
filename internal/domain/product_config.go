package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PriceSource tells where option prices come from
type PriceSource string

// PriceSource constants
const (
	PriceSourceManual    PriceSource = "manual"
	PriceSourcePipedrive PriceSource = "pipedrive"
)

// DesignSettings holds the configurator look for one product
type DesignSettings struct {
	PrimaryColor    string `json:"primaryColor,omitempty"`
	AccentColor     string `json:"accentColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	LogoURL         string `json:"logoUrl,omitempty"`
	ButtonStyle     string `json:"buttonStyle,omitempty"`
}

// QuoteSettings is consumed by the quote generator
type QuoteSettings struct {
	CompanyName  string  `json:"companyName,omitempty"`
	ContactEmail string  `json:"contactEmail,omitempty"`
	ContactPhone string  `json:"contactPhone,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	VATRate      float64 `json:"vatRate,omitempty"`
	ValidityDays int     `json:"validityDays,omitempty"`
	TermsText    string  `json:"termsText,omitempty"`
}

// ProductConfig is the aggregate root of one product's configurator setup
type ProductConfig struct {
	ProductID              string              `json:"productId"`
	ProductName            string              `json:"productName"`
	Family                 ProductFamily       `json:"family,omitempty"`
	MainProductImageURL    string              `json:"mainProductImageUrl,omitempty"`
	MainProductPipedriveID *int64              `json:"mainProductPipedriveId,omitempty"`
	Steps                  []Step              `json:"steps"`
	StepData               map[string]StepData `json:"stepData"`
	Design                 DesignSettings      `json:"design"`
	QuoteSettings          QuoteSettings       `json:"quoteSettings"`
	PriceSource            PriceSource         `json:"priceSource"`
	UpdatedAt              time.Time           `json:"updatedAt"`
}

// HasStep reports whether the step sequence contains the given id
func (c *ProductConfig) HasStep(stepID string) bool {
	for _, s := range c.Steps {
		if s.ID == stepID {
			return true
		}
	}
	return false
}

// ProductConfigRecord is the persisted row of a ProductConfig
type ProductConfigRecord struct {
	ProductID              string         `gorm:"type:varchar(100);primaryKey" json:"product_id"`
	ProductName            string         `gorm:"type:varchar(255);not null" json:"product_name"`
	Family                 string         `gorm:"type:varchar(50);index:idx_product_configs_family" json:"family"`
	MainProductImageURL    string         `gorm:"type:text" json:"main_product_image_url"`
	MainProductPipedriveID *int64         `gorm:"type:bigint" json:"main_product_pipedrive_id"`
	Steps                  datatypes.JSON `gorm:"type:jsonb" json:"steps"`
	StepData               datatypes.JSON `gorm:"type:jsonb" json:"step_data"`
	Design                 datatypes.JSON `gorm:"type:jsonb" json:"design"`
	QuoteSettings          datatypes.JSON `gorm:"type:jsonb" json:"quote_settings"`
	PriceSource            string         `gorm:"type:varchar(20);not null;default:'manual'" json:"price_source"`
	CreatedAt              time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt              time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for ProductConfigRecord
func (ProductConfigRecord) TableName() string {
	return "product_configs"
}

// NewProductConfigRecord encodes a ProductConfig for persistence
func NewProductConfigRecord(cfg *ProductConfig) (*ProductConfigRecord, error) {
	steps, err := json.Marshal(cfg.Steps)
	if err != nil {
		return nil, fmt.Errorf("encode steps: %w", err)
	}
	stepData, err := json.Marshal(cfg.StepData)
	if err != nil {
		return nil, fmt.Errorf("encode step data: %w", err)
	}
	design, err := json.Marshal(cfg.Design)
	if err != nil {
		return nil, fmt.Errorf("encode design: %w", err)
	}
	quote, err := json.Marshal(cfg.QuoteSettings)
	if err != nil {
		return nil, fmt.Errorf("encode quote settings: %w", err)
	}

	priceSource := cfg.PriceSource
	if priceSource == "" {
		priceSource = PriceSourceManual
	}

	return &ProductConfigRecord{
		ProductID:              cfg.ProductID,
		ProductName:            cfg.ProductName,
		Family:                 string(cfg.Family),
		MainProductImageURL:    cfg.MainProductImageURL,
		MainProductPipedriveID: cfg.MainProductPipedriveID,
		Steps:                  steps,
		StepData:               stepData,
		Design:                 design,
		QuoteSettings:          quote,
		PriceSource:            string(priceSource),
		UpdatedAt:              cfg.UpdatedAt,
	}, nil
}

// ToProductConfig decodes the persisted JSON columns
func (r *ProductConfigRecord) ToProductConfig() (*ProductConfig, error) {
	cfg := &ProductConfig{
		ProductID:              r.ProductID,
		ProductName:            r.ProductName,
		Family:                 ProductFamily(r.Family),
		MainProductImageURL:    r.MainProductImageURL,
		MainProductPipedriveID: r.MainProductPipedriveID,
		PriceSource:            PriceSource(r.PriceSource),
		UpdatedAt:              r.UpdatedAt,
	}

	columns := []struct {
		name string
		raw  []byte
		dst  interface{}
	}{
		{"steps", r.Steps, &cfg.Steps},
		{"step_data", r.StepData, &cfg.StepData},
		{"design", r.Design, &cfg.Design},
		{"quote_settings", r.QuoteSettings, &cfg.QuoteSettings},
	}
	for _, col := range columns {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("decode %s of product %s: %w", col.name, r.ProductID, err)
		}
	}

	if cfg.Steps == nil {
		cfg.Steps = []Step{}
	}
	if cfg.StepData == nil {
		cfg.StepData = map[string]StepData{}
	}
	return cfg, nil
}
