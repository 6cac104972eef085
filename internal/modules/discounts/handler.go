package discounts

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
	g := rg.Group("/discounts")
	{
		g.GET("/group/:people/:base", h.ForGroupSize)
		g.GET("/visits/:visits/:base", h.ForMonthlyVisits)
		g.GET("/birthday/:birthday/:daymonth/:base", h.ForBirthday)
	}
}

func (h *Handler) ForGroupSize(c *gin.Context) {
	people, err1 := strconv.Atoi(c.Param("people"))
	base, err2 := strconv.Atoi(c.Param("base"))
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "People and base price must be numbers")
		return
	}

	price, err := h.service.ForGroupSize(c.Request.Context(), people, base)
	if err != nil {
		response.Internal(c, "Failed to compute group discount")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"price": price})
}

func (h *Handler) ForMonthlyVisits(c *gin.Context) {
	visits, err1 := strconv.Atoi(c.Param("visits"))
	base, err2 := strconv.Atoi(c.Param("base"))
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Visits and base price must be numbers")
		return
	}

	price, err := h.service.ForMonthlyVisits(c.Request.Context(), visits, base)
	if err != nil {
		response.Internal(c, "Failed to compute visits discount")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"price": price})
}

func (h *Handler) ForBirthday(c *gin.Context) {
	base, err := strconv.Atoi(c.Param("base"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Base price must be a number")
		return
	}

	price, err := h.service.ForBirthday(c.Request.Context(), c.Param("birthday"), c.Param("daymonth"), base)
	if err != nil {
		response.Internal(c, "Failed to compute birthday discount")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"price": price})
}
