package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prompthub/prompthub/internal/enhancer"
	"github.com/prompthub/prompthub/internal/middleware"
	"github.com/prompthub/prompthub/internal/utils"
	"github.com/prompthub/prompthub/models"
	"github.com/prompthub/prompthub/monitoring"
)

type EnhanceHandler struct {
	enhancerService *enhancer.Service
	metrics         *monitoring.Metrics
}

func NewEnhanceHandler(
	enhancerService *enhancer.Service,
	metrics *monitoring.Metrics) *EnhanceHandler {
	return &EnhanceHandler{
		enhancerService: enhancerService,
		metrics:         metrics,
	}
}

// EnhancePrompt handles POST /enhance.
func (h *EnhanceHandler) EnhancePrompt(c *gin.Context) {
	start := time.Now()

	var request models.EnhanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.metrics.RecordEnhance(string(enhancer.ConditionInvalidInput), time.Since(start))
		utils.ProcessGenericBadRequest(c)
		return
	}

	response, err := h.enhancerService.Enhance(c.Request.Context(), request)
	if err != nil {
		condition := enhancer.ConditionOf(err)
		log.Printf("enhance request %s failed (%s): %v", middleware.GetRequestID(c), condition, err)
		h.metrics.RecordEnhance(string(condition), time.Since(start))
		utils.ProcessEnhancerError(c, err)
		return
	}

	h.metrics.RecordEnhance("success", time.Since(start))
	c.JSON(http.StatusOK, response)
}
