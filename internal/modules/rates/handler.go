package rates

import (
	"net/http"
	"strconv"

	"karting/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/rates")
	{
		g.GET("/base-price/:tier", h.BasePrice)
		g.GET("/duration/:tier", h.Duration)
	}
}

func (h *Handler) BasePrice(c *gin.Context) {
	tier, err := strconv.Atoi(c.Param("tier"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Tier must be a number")
		return
	}

	price, err := h.service.BasePrice(c.Request.Context(), tier)
	if err != nil {
		response.Internal(c, "Failed to resolve base price")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tier": tier, "base_price": price})
}

func (h *Handler) Duration(c *gin.Context) {
	tier, err := strconv.Atoi(c.Param("tier"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Tier must be a number")
		return
	}

	minutes, err := h.service.Duration(c.Request.Context(), tier)
	if err != nil {
		response.Internal(c, "Failed to resolve duration")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tier": tier, "duration_minutes": minutes})
}
