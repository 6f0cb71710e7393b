package dto

import "sauna-configurator-api/internal/domain"

// PatchGlobalSettingsRequest merges individual override maps into the stored settings.
// Keys listed in Remove are deleted from the named map after the merge.
type PatchGlobalSettingsRequest struct {
	domain.GlobalSettings
	Remove map[string][]string `json:"remove"`
}

// RegistryResponse represents the registry defaults of one product family
type RegistryResponse struct {
	Family   string                     `json:"family"`
	Steps    []domain.Step              `json:"steps"`
	StepData map[string]domain.StepData `json:"stepData"`
}
