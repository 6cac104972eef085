package reports

import (
	"net/http"

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
	g := rg.Group("/reports")
	{
		g.GET("/by-tier", h.ByTier)
		g.GET("/by-band", h.ByBand)
	}
}

func (h *Handler) ByTier(c *gin.Context) {
	report, err := h.service.IncomesByTier(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to build report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}

func (h *Handler) ByBand(c *gin.Context) {
	report, err := h.service.IncomesByBand(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to build report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}
