package rack

import (
	"errors"
	"net/http"
	"strconv"

	"karting/internal/domain"
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
	g := rg.Group("/rack")
	{
		g.POST("", h.Save)
		g.DELETE("/:id", h.Delete)
		g.GET("/:year/:month", h.EntriesForMonth)
	}
}

// Save exists for manual corrections; the regular path is the booking
// confirm flow.
func (h *Handler) Save(c *gin.Context) {
	var e domain.RackEntry
	if err := c.ShouldBindJSON(&e); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if e.BookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id is required")
		return
	}

	if err := h.service.Upsert(c.Request.Context(), e); err != nil {
		response.Internal(c, "Failed to save rack entry")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entry": e})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	if err := h.service.DeleteByBookingID(c.Request.Context(), id); err != nil {
		response.Internal(c, "Failed to delete rack entry")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *Handler) EntriesForMonth(c *gin.Context) {
	list, err := h.service.EntriesForMonth(c.Request.Context(), c.Param("year"), c.Param("month"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Internal(c, "Failed to list rack entries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entries": list})
}
