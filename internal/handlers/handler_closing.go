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

// closingHandler handles HTTP requests for the closing lifecycle and the
// adjustment audit trail.
type closingHandler struct {
	closingService portssvc.ClosingSvcFacade
}

// newClosingHandler creates a new closingHandler.
func newClosingHandler(cs portssvc.ClosingSvcFacade) *closingHandler {
	return &closingHandler{
		closingService: cs,
	}
}

// RegisterClosingRoutes registers routes related to closings.
func RegisterClosingRoutes(rg *gin.RouterGroup, closingService portssvc.ClosingSvcFacade) {
	h := newClosingHandler(closingService)

	closings := rg.Group("/closings")
	{
		closings.POST("", h.createClosing)
		closings.GET("", h.listClosings)
		closings.GET("/:closingID", h.getClosingByID)
		closings.PUT("/:closingID", h.updateClosing)
		closings.DELETE("/:closingID", h.deleteClosing)
		closings.POST("/:closingID/adjustments", h.adjustClosing)
		closings.GET("/:closingID/adjustments", h.listAdjustments)
	}

	shifts := rg.Group("/shifts")
	{
		shifts.PUT("/:shiftID/closings/status", h.setStatusByShift)
	}
}

// respondClosingError maps service errors onto HTTP statuses.
func respondClosingError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
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

func (h *closingHandler) createClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClosing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("provider_id", req.ProviderID), slog.String("closing_date", req.ClosingDate))
	logger.Info("Received request to create closing")

	closing, err := h.closingService.CreateClosing(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondClosingError(c, logger, err, "Failed to create closing")
		return
	}

	c.JSON(http.StatusCreated, dto.ToClosingResponse(closing))
}

func (h *closingHandler) listClosings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListClosingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	closings, err := h.closingService.ListClosings(c.Request.Context(), params)
	if err != nil {
		respondClosingError(c, logger, err, "Failed to list closings")
		return
	}

	c.JSON(http.StatusOK, dto.ToListClosingsResponse(closings))
}

func (h *closingHandler) getClosingByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closingID := c.Param("closingID")

	closing, err := h.closingService.GetClosingByID(c.Request.Context(), closingID)
	if err != nil {
		respondClosingError(c, logger.With(slog.String("closing_id", closingID)), err, "Failed to retrieve closing")
		return
	}

	c.JSON(http.StatusOK, dto.ToClosingResponse(closing))
}

func (h *closingHandler) updateClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closingID := c.Param("closingID")

	var req dto.UpdateClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateClosing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("closing_id", closingID))
	logger.Info("Received request to update closing")

	closing, err := h.closingService.UpdateClosing(c.Request.Context(), closingID, req, updaterUserID)
	if err != nil {
		respondClosingError(c, logger, err, "Failed to update closing")
		return
	}

	c.JSON(http.StatusOK, dto.ToClosingResponse(closing))
}

func (h *closingHandler) deleteClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closingID := c.Param("closingID")

	logger = logger.With(slog.String("closing_id", closingID))
	logger.Info("Received request to delete closing")

	if err := h.closingService.DeleteClosing(c.Request.Context(), closingID); err != nil {
		respondClosingError(c, logger, err, "Failed to delete closing")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *closingHandler) adjustClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closingID := c.Param("closingID")

	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustClosing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	adjusterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Adjuster user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("closing_id", closingID))
	logger.Info("Received request to adjust closing", slog.String("amount", req.Amount.String()))

	closing, err := h.closingService.AdjustClosing(c.Request.Context(), closingID, req, adjusterUserID)
	if err != nil {
		respondClosingError(c, logger, err, "Failed to adjust closing")
		return
	}

	c.JSON(http.StatusCreated, dto.ToClosingResponse(closing))
}

func (h *closingHandler) listAdjustments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closingID := c.Param("closingID")

	adjustments, err := h.closingService.ListAdjustments(c.Request.Context(), closingID)
	if err != nil {
		respondClosingError(c, logger.With(slog.String("closing_id", closingID)), err, "Failed to list adjustments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAdjustmentsResponse(closingID, adjustments))
}

func (h *closingHandler) setStatusByShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	var req dto.SetStatusByShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetStatusByShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("shift_id", shiftID))
	logger.Info("Received request to set closing status by shift", slog.Bool("status", *req.Status))

	updated, err := h.closingService.BulkSetStatusByShift(c.Request.Context(), shiftID, *req.Status)
	if err != nil {
		respondClosingError(c, logger, err, "Failed to update closing status")
		return
	}

	c.JSON(http.StatusOK, dto.SetStatusByShiftResponse{ShiftID: shiftID, Updated: updated})
}
