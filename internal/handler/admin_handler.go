package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sauna-configurator-api/internal/domain"
	"sauna-configurator-api/internal/dto"
	"sauna-configurator-api/internal/registry"
	"sauna-configurator-api/internal/response"
	"sauna-configurator-api/internal/service"
	"sauna-configurator-api/internal/validation"
)

// maxAdminPayload bounds PUT bodies of product configs and global settings
const maxAdminPayload = 4 << 20

type AdminHandler struct {
	productConfigService  service.ProductConfigService
	globalSettingsService service.GlobalSettingsService
	registry              *registry.Registry
	logger                *zap.Logger
}

func NewAdminHandler(
	productConfigService service.ProductConfigService,
	globalSettingsService service.GlobalSettingsService,
	reg *registry.Registry,
	logger *zap.Logger,
) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{
		productConfigService:  productConfigService,
		globalSettingsService: globalSettingsService,
		registry:              reg,
		logger:                logger,
	}
}

// ListProductConfigs godoc
// @Summary      제품 구성 목록 조회
// @Description  저장된 모든 제품 구성의 요약을 조회합니다
// @Tags         admin
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.ProductConfigSummary} "제품 구성 목록 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/products [get]
func (h *AdminHandler) ListProductConfigs(c *gin.Context) {
	summaries, err := h.productConfigService.ListProductConfigs(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, summaries)
}

// GetProductConfig godoc
// @Summary      제품 구성 조회
// @Description  제품 구성을 조회합니다. 저장된 구성이 없으면 레지스트리 기본값으로 생성합니다
// @Tags         admin
// @Produce      json
// @Param        productId path string true "Product ID"
// @Param        name query string false "생성 시 사용할 제품 이름"
// @Param        family query string false "생성 시 사용할 제품군" Enums(cube, barrel, hiki, aisti, aura)
// @Success      200 {object} response.SuccessResponse{data=domain.ProductConfig} "제품 구성 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/products/{productId} [get]
func (h *AdminHandler) GetProductConfig(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var query dto.CreateProductConfigQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	cfg, err := h.productConfigService.GetProductConfig(c.Request.Context(), productID, &query)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cfg)
}

// ReplaceProductConfig godoc
// @Summary      제품 구성 교체
// @Description  제품 구성 전체를 교체합니다. 본문은 JSON 스키마로 검증됩니다
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        productId path string true "Product ID"
// @Param        request body domain.ProductConfig true "제품 구성"
// @Success      200 {object} response.SuccessResponse{data=domain.ProductConfig} "제품 구성 교체 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/products/{productId} [put]
func (h *AdminHandler) ReplaceProductConfig(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	raw, ok := readBody(c)
	if !ok {
		return
	}

	cfg, err := h.productConfigService.ReplaceProductConfig(c.Request.Context(), productID, raw)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cfg)
}

// PatchProductConfig godoc
// @Summary      제품 구성 부분 수정
// @Description  제품 이름, 이미지, 디자인, 견적 설정, 가격 출처, 단계 순서와 단계별 내용을 수정합니다
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        productId path string true "Product ID"
// @Param        request body dto.PatchProductConfigRequest true "제품 구성 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.ProductConfig} "제품 구성 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/products/{productId} [patch]
func (h *AdminHandler) PatchProductConfig(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req dto.PatchProductConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	cfg, err := h.productConfigService.PatchProductConfig(c.Request.Context(), productID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cfg)
}

// DeleteProductConfig godoc
// @Summary      제품 구성 삭제
// @Description  제품 구성을 삭제합니다. 다음 조회 시 기본값으로 다시 생성됩니다
// @Tags         admin
// @Produce      json
// @Param        productId path string true "Product ID"
// @Success      204 "제품 구성 삭제 성공"
// @Failure      404 {object} response.ErrorResponse "제품 구성을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/products/{productId} [delete]
func (h *AdminHandler) DeleteProductConfig(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	if err := h.productConfigService.DeleteProductConfig(c.Request.Context(), productID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetGlobalSettings godoc
// @Summary      전역 설정 조회
// @Description  모든 제품에 적용되는 전역 설정과 버전을 조회합니다
// @Tags         admin
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=domain.SettingsSnapshot} "전역 설정 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/global-settings [get]
func (h *AdminHandler) GetGlobalSettings(c *gin.Context) {
	snapshot, err := h.globalSettingsService.Current(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, snapshot)
}

// ReplaceGlobalSettings godoc
// @Summary      전역 설정 교체
// @Description  전역 설정 전체를 교체하고 버전을 올린 뒤 변경을 알립니다
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body domain.GlobalSettings true "전역 설정"
// @Success      200 {object} response.SuccessResponse{data=domain.SettingsSnapshot} "전역 설정 교체 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/global-settings [put]
func (h *AdminHandler) ReplaceGlobalSettings(c *gin.Context) {
	raw, ok := readBody(c)
	if !ok {
		return
	}

	snapshot, err := h.globalSettingsService.ReplaceSettings(c.Request.Context(), raw)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, snapshot)
}

// PatchGlobalSettings godoc
// @Summary      전역 설정 병합
// @Description  전달된 설정 맵을 기존 설정에 병합하고 remove 에 나열된 키를 삭제합니다
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body dto.PatchGlobalSettingsRequest true "전역 설정 병합 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.SettingsSnapshot} "전역 설정 병합 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/global-settings [patch]
func (h *AdminHandler) PatchGlobalSettings(c *gin.Context) {
	var req dto.PatchGlobalSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	snapshot, err := h.globalSettingsService.PatchSettings(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, snapshot)
}

// GetRegistry godoc
// @Summary      레지스트리 기본값 조회
// @Description  제품군의 기본 단계와 단계 데이터를 조회합니다. default 는 제품군이 없는 제품의 기본값입니다
// @Tags         admin
// @Produce      json
// @Param        family path string true "Product family" Enums(default, cube, barrel, hiki, aisti, aura)
// @Success      200 {object} response.SuccessResponse{data=dto.RegistryResponse} "레지스트리 조회 성공"
// @Failure      404 {object} response.ErrorResponse "알 수 없는 제품군"
// @Router       /admin/registry/{family} [get]
func (h *AdminHandler) GetRegistry(c *gin.Context) {
	name := c.Param("family")
	family := domain.ProductFamily(name)
	if name == "default" {
		family = domain.FamilyUnknown
	}

	known := false
	for _, f := range h.registry.Families() {
		if f == family {
			known = true
			break
		}
	}
	if !known {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Unknown product family")
		return
	}

	defaults := h.registry.Defaults(family)
	response.SendSuccess(c, http.StatusOK, dto.RegistryResponse{
		Family:   name,
		Steps:    defaults.Steps,
		StepData: defaults.StepData,
	})
}

// productIDParam reads and validates the productId path parameter
func productIDParam(c *gin.Context) (string, bool) {
	productID := c.Param("productId")
	if !validation.IsStepID(productID) {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid product ID")
		return "", false
	}
	return productID, true
}

// readBody reads a bounded raw JSON body
func readBody(c *gin.Context) ([]byte, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAdminPayload)
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return nil, false
	}
	return raw, true
}
