package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sauna-configurator-api/internal/dto"
	"sauna-configurator-api/internal/response"
	"sauna-configurator-api/internal/service"
	"sauna-configurator-api/internal/validation"
)

type ConfiguratorHandler struct {
	configuratorService service.ConfiguratorService
	selectionService    service.SelectionService
	logger              *zap.Logger
}

func NewConfiguratorHandler(configuratorService service.ConfiguratorService, selectionService service.SelectionService, logger *zap.Logger) *ConfiguratorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfiguratorHandler{
		configuratorService: configuratorService,
		selectionService:    selectionService,
		logger:              logger,
	}
}

// GetResolvedConfig godoc
// @Summary      고객용 제품 구성 조회
// @Description  레지스트리 기본값, 제품 구성, 전역 설정을 병합한 최종 구성을 조회합니다. 단계가 없으면 empty 가 true 입니다
// @Tags         configurator
// @Produce      json
// @Param        productId path string true "Product ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ResolvedConfigResponse} "구성 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /products/{productId}/config [get]
func (h *ConfiguratorHandler) GetResolvedConfig(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	resolved, err := h.configuratorService.GetResolvedConfig(c.Request.Context(), productID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resolved)
}

// GetHeaterStones godoc
// @Summary      히터 스톤 계산
// @Description  선택한 히터에 필요한 스톤 패키지 수와 가격을 계산합니다
// @Tags         configurator
// @Produce      json
// @Param        productId path string true "Product ID"
// @Param        heaterId query string true "Heater option ID"
// @Success      200 {object} response.SuccessResponse{data=dto.HeaterStonesResponse} "스톤 계산 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "히터를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /products/{productId}/heater-stones [get]
func (h *ConfiguratorHandler) GetHeaterStones(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	heaterID := c.Query("heaterId")
	if heaterID == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "heaterId query parameter is required")
		return
	}

	stones, err := h.configuratorService.GetHeaterStones(c.Request.Context(), productID, heaterID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stones)
}

// GetProductPrices godoc
// @Summary      옵션 가격 조회
// @Description  제품 옵션의 유효 가격을 조회합니다. 카탈로그 가격은 캐시에서 읽고 없으면 카탈로그에서 가져옵니다
// @Tags         configurator
// @Produce      json
// @Param        productId path string true "Product ID"
// @Param        heaterId query string false "선택한 히터 옵션 ID (스톤 가격 계산)"
// @Success      200 {object} response.SuccessResponse{data=dto.ProductPricesResponse} "가격 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "히터 옵션을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /products/{productId}/prices [get]
func (h *ConfiguratorHandler) GetProductPrices(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	prices, err := h.configuratorService.GetProductPrices(c.Request.Context(), productID, c.Query("heaterId"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, prices)
}

// CreateSession godoc
// @Summary      선택 세션 생성
// @Description  제품에 대한 빈 선택 세션을 생성합니다
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateSessionRequest true "세션 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=domain.SelectionSession} "세션 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /sessions [post]
func (h *ConfiguratorHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	session, err := h.selectionService.CreateSession(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, session)
}

// GetSession godoc
// @Summary      선택 세션 조회
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.SuccessResponse{data=domain.SelectionSession} "세션 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "세션을 찾을 수 없음"
// @Router       /sessions/{sessionId} [get]
func (h *ConfiguratorHandler) GetSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	session, err := h.selectionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, session)
}

// PatchSession godoc
// @Summary      선택 세션 수정
// @Description  세션의 제품을 바꾸거나 배송 위치를 기록합니다. 제품을 바꾸면 선택이 초기화됩니다
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        request body dto.PatchSessionRequest true "세션 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.SelectionSession} "세션 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "세션을 찾을 수 없음"
// @Router       /sessions/{sessionId} [patch]
func (h *ConfiguratorHandler) PatchSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var req dto.PatchSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	session, err := h.selectionService.PatchSession(c.Request.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, session)
}

// UpdateSelection godoc
// @Summary      단계 선택 변경
// @Description  단계의 선택 옵션을 교체합니다. 단일 선택 단계는 마지막 옵션만 유지합니다
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        stepId path string true "Step ID"
// @Param        request body dto.UpdateSelectionRequest true "선택 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.SelectionSession} "선택 변경 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "세션을 찾을 수 없음"
// @Router       /sessions/{sessionId}/steps/{stepId} [put]
func (h *ConfiguratorHandler) UpdateSelection(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	stepID, ok := stepIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	session, err := h.selectionService.UpdateSelection(c.Request.Context(), sessionID, stepID, req.OptionIDs)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, session)
}

// ToggleOption godoc
// @Summary      옵션 토글
// @Description  단계의 옵션 하나를 선택하거나 해제합니다
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        stepId path string true "Step ID"
// @Param        request body dto.ToggleOptionRequest true "옵션 토글 요청"
// @Success      200 {object} response.SuccessResponse{data=domain.SelectionSession} "옵션 토글 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "세션을 찾을 수 없음"
// @Router       /sessions/{sessionId}/steps/{stepId}/toggle [post]
func (h *ConfiguratorHandler) ToggleOption(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	stepID, ok := stepIDParam(c)
	if !ok {
		return
	}

	var req dto.ToggleOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	session, err := h.selectionService.ToggleOption(c.Request.Context(), sessionID, stepID, req.OptionID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, session)
}

// ClearSelections godoc
// @Summary      선택 초기화
// @Description  세션의 모든 선택을 지웁니다. 배송 위치는 유지됩니다
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.SuccessResponse{data=domain.SelectionSession} "선택 초기화 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "세션을 찾을 수 없음"
// @Router       /sessions/{sessionId}/selections [delete]
func (h *ConfiguratorHandler) ClearSelections(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	session, err := h.selectionService.ClearSelections(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, session)
}

// GetProgress godoc
// @Summary      세션 진행 상황 조회
// @Description  단계별 완료 여부와 선택한 히터의 스톤 계산을 조회합니다
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionProgressResponse} "진행 상황 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "세션을 찾을 수 없음"
// @Router       /sessions/{sessionId}/progress [get]
func (h *ConfiguratorHandler) GetProgress(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	progress, err := h.selectionService.GetProgress(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, progress)
}

// GetSessionPrices godoc
// @Summary      세션 가격 조회
// @Description  세션 제품의 옵션 가격을 조회합니다. 선택한 히터 기준으로 스톤 가격이 계산됩니다
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ProductPricesResponse} "가격 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "세션을 찾을 수 없음"
// @Router       /sessions/{sessionId}/prices [get]
func (h *ConfiguratorHandler) GetSessionPrices(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	prices, err := h.selectionService.GetPrices(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, prices)
}

func sessionIDParam(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid session ID")
		return uuid.Nil, false
	}
	return sessionID, true
}

func stepIDParam(c *gin.Context) (string, bool) {
	stepID := c.Param("stepId")
	if !validation.IsStepID(stepID) {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid step ID")
		return "", false
	}
	return stepID, true
}
