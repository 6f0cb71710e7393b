package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GlobalSettings are cross-product override maps keyed by step id or option id.
// Option keys may carry a family prefix such as "cube_wooden-backwall".
type GlobalSettings struct {
	StepNames               map[string]string `json:"stepNames,omitempty"`
	StepImages              map[string]string `json:"stepImages,omitempty"`
	StepSubheaders          map[string]string `json:"stepSubheaders,omitempty"`
	StepMoreInfoEnabled     map[string]bool   `json:"stepMoreInfoEnabled,omitempty"`
	StepMoreInfoURL         map[string]string `json:"stepMoreInfoUrl,omitempty"`
	OptionImages            map[string]string `json:"optionImages,omitempty"`
	OptionTitles            map[string]string `json:"optionTitles,omitempty"`
	OptionPipedriveProducts map[string]int64  `json:"optionPipedriveProducts,omitempty"`
	OptionIncluded          map[string]bool   `json:"optionIncluded,omitempty"`
}

// SettingsSnapshot is an immutable, versioned copy of the global settings
type SettingsSnapshot struct {
	Version   int64          `json:"version"`
	Revision  uuid.UUID      `json:"revision"`
	Settings  GlobalSettings `json:"settings"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// AdminConfigSingletonID is the primary key of the only admin_configs row
const AdminConfigSingletonID uint = 1

// AdminConfig is the persisted row holding the global settings
type AdminConfig struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	GlobalSettings datatypes.JSON `gorm:"type:jsonb" json:"global_settings"`
	Version        int64          `gorm:"not null;default:0" json:"version"`
	Revision       uuid.UUID      `gorm:"type:uuid" json:"revision"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for AdminConfig
func (AdminConfig) TableName() string {
	return "admin_configs"
}

// Snapshot decodes the stored settings into a versioned snapshot
func (a *AdminConfig) Snapshot() (*SettingsSnapshot, error) {
	snapshot := &SettingsSnapshot{
		Version:   a.Version,
		Revision:  a.Revision,
		UpdatedAt: a.UpdatedAt,
	}
	if len(a.GlobalSettings) > 0 {
		if err := json.Unmarshal(a.GlobalSettings, &snapshot.Settings); err != nil {
			return nil, fmt.Errorf("decode global settings: %w", err)
		}
	}
	return snapshot, nil
}
