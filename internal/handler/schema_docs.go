package handler

import (
	"sauna-configurator-api/internal/cache"
	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/dto"
	"sauna-configurator-api/internal/selection"
)

// SchemaDocumentation references types that only appear nested or on the websocket,
// so swag emits them into the definitions section.
type SchemaDocumentation struct {
	SettingsEvent       cache.SettingsEvent     `json:"settingsEvent"`
	StepPatch           dto.StepPatch           `json:"stepPatch"`
	OptionPriceResponse dto.OptionPriceResponse `json:"optionPriceResponse"`
	StepProgress        selection.StepProgress  `json:"stepProgress"`
	HeaterStones        domain.HeaterStones     `json:"heaterStones"`
	Option              domain.Option           `json:"option"`
}

// GetSchemaDocumentation is never routed
// @Summary      Schema Documentation (Not a real endpoint)
// @Description  This endpoint does not exist. It's used to document DTO schemas.
// @Tags         internal
// @Produce      json
// @Success      200 {object} SchemaDocumentation
// @Router       /internal/schemas [get]
func GetSchemaDocumentation() {}
