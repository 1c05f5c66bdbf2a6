package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentdesk/agent_closings_app/internal/apperrors"
	portssvc "github.com/agentdesk/agent_closings_app/internal/core/ports/services"
	"github.com/agentdesk/agent_closings_app/internal/dto"
	"github.com/agentdesk/agent_closings_app/internal/middleware"
)

// formulaConfigHandler handles HTTP requests related to formula configuration.
type formulaConfigHandler struct {
	formulaConfigService portssvc.FormulaConfigSvcFacade
}

// newFormulaConfigHandler creates a new formulaConfigHandler.
func newFormulaConfigHandler(fs portssvc.FormulaConfigSvcFacade) *formulaConfigHandler {
	return &formulaConfigHandler{
		formulaConfigService: fs,
	}
}

// RegisterFormulaConfigRoutes registers routes related to formula configs.
func RegisterFormulaConfigRoutes(rg *gin.RouterGroup, formulaConfigService portssvc.FormulaConfigSvcFacade) {
	h := newFormulaConfigHandler(formulaConfigService)

	configs := rg.Group("/formula-configs")
	{
		configs.POST("", h.createFormulaConfig)
		configs.GET("", h.listFormulaConfigs)
		configs.GET("/:formulaConfigID", h.getFormulaConfigByID)
		configs.PUT("/:formulaConfigID", h.updateFormulaConfig)
		configs.DELETE("/:formulaConfigID", h.deleteFormulaConfig)
	}

	providers := rg.Group("/providers")
	{
		providers.GET("/:providerID/formula-configs", h.listFormulaConfigsByProvider)
		providers.PUT("/:providerID/formula-configs", h.bulkUpsertFormulaConfigs)
	}
}

func respondFormulaConfigError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Internal error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func (h *formulaConfigHandler) createFormulaConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFormulaConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFormulaConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("provider_id", req.ProviderID), slog.String("transaction_type_id", req.TransactionTypeID))
	logger.Info("Received request to create formula config")

	config, err := h.formulaConfigService.CreateFormulaConfig(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondFormulaConfigError(c, logger, err, "Failed to create formula config")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFormulaConfigResponse(config))
}

func (h *formulaConfigHandler) listFormulaConfigs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	configs, err := h.formulaConfigService.ListFormulaConfigs(c.Request.Context())
	if err != nil {
		respondFormulaConfigError(c, logger, err, "Failed to list formula configs")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFormulaConfigsResponse(configs))
}

func (h *formulaConfigHandler) getFormulaConfigByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	formulaConfigID := c.Param("formulaConfigID")

	config, err := h.formulaConfigService.GetFormulaConfigByID(c.Request.Context(), formulaConfigID)
	if err != nil {
		respondFormulaConfigError(c, logger.With(slog.String("formula_config_id", formulaConfigID)), err, "Failed to retrieve formula config")
		return
	}

	c.JSON(http.StatusOK, dto.ToFormulaConfigResponse(config))
}

func (h *formulaConfigHandler) updateFormulaConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	formulaConfigID := c.Param("formulaConfigID")

	var req dto.UpdateFormulaConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFormulaConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("formula_config_id", formulaConfigID))
	logger.Info("Received request to update formula config")

	config, err := h.formulaConfigService.UpdateFormulaConfig(c.Request.Context(), formulaConfigID, req, updaterUserID)
	if err != nil {
		respondFormulaConfigError(c, logger, err, "Failed to update formula config")
		return
	}

	c.JSON(http.StatusOK, dto.ToFormulaConfigResponse(config))
}

func (h *formulaConfigHandler) deleteFormulaConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	formulaConfigID := c.Param("formulaConfigID")

	logger = logger.With(slog.String("formula_config_id", formulaConfigID))
	logger.Info("Received request to delete formula config")

	if err := h.formulaConfigService.DeleteFormulaConfig(c.Request.Context(), formulaConfigID); err != nil {
		respondFormulaConfigError(c, logger, err, "Failed to delete formula config")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *formulaConfigHandler) listFormulaConfigsByProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("providerID")

	configs, err := h.formulaConfigService.ListFormulaConfigsByProvider(c.Request.Context(), providerID)
	if err != nil {
		respondFormulaConfigError(c, logger.With(slog.String("provider_id", providerID)), err, "Failed to list formula configs")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFormulaConfigsResponse(configs))
}

func (h *formulaConfigHandler) bulkUpsertFormulaConfigs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("providerID")

	var req dto.BulkUpsertFormulaConfigsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkUpsertFormulaConfigs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("provider_id", providerID))
	logger.Info("Received request to bulk upsert formula configs", slog.Int("entries", len(req.Entries)))

	results, err := h.formulaConfigService.BulkUpsertFormulaConfigs(c.Request.Context(), providerID, req.Entries, updaterUserID)
	if err != nil {
		respondFormulaConfigError(c, logger, err, "Failed to upsert formula configs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
