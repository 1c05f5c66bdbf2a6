package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentdesk/agent_closings_app/internal/core/domain"
	portssvc "github.com/agentdesk/agent_closings_app/internal/core/ports/services"
	"github.com/agentdesk/agent_closings_app/internal/dto"
	"github.com/agentdesk/agent_closings_app/internal/middleware"
	"github.com/agentdesk/agent_closings_app/internal/utils/dates"
)

// calculationHandler handles ad-hoc formula evaluation requests.
type calculationHandler struct {
	calculationService portssvc.CalculationSvcFacade
}

// newCalculationHandler creates a new calculationHandler.
func newCalculationHandler(cs portssvc.CalculationSvcFacade) *calculationHandler {
	return &calculationHandler{
		calculationService: cs,
	}
}

// RegisterCalculationRoutes registers routes related to calculations.
func RegisterCalculationRoutes(rg *gin.RouterGroup, calculationService portssvc.CalculationSvcFacade) {
	h := newCalculationHandler(calculationService)

	calculation := rg.Group("/calculation")
	{
		calculation.GET("", h.computeByCategory)
		calculation.GET("/:providerID", h.computeForProvider)
	}
}

func (h *calculationHandler) computeForProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("providerID")

	var params dto.CalculationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := dates.ValidateRange(params.StartDate, params.EndDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Received request to compute provider result", slog.String("provider_id", providerID))

	result := h.calculationService.ComputeResult(c.Request.Context(), providerID, params.StartDate, params.EndDate)

	c.JSON(http.StatusOK, dto.CalculationResponse{
		ProviderID: providerID,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		Result:     result,
	})
}

func (h *calculationHandler) computeByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	category := c.DefaultQuery("category", domain.CategoryAgent)

	var params dto.CalculationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := dates.ValidateRange(params.StartDate, params.EndDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Received request to compute category results", slog.String("category", category))

	results, err := h.calculationService.ComputeResultsByCategory(c.Request.Context(), category, params.StartDate, params.EndDate)
	if err != nil {
		logger.Error("Failed to compute category results", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute results"})
		return
	}

	c.JSON(http.StatusOK, dto.CategoryCalculationResponse{
		Category:  category,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Results:   results,
	})
}
