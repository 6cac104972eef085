package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"karting/internal/domain"
	"karting/internal/pkg/response"
	"karting/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/bookings")
	{
		g.POST("", h.SaveBooking)
		g.GET("", h.GetConfirmed)
		g.GET("/:id", h.GetByID)
		g.POST("/:id/confirm", h.Confirm)
		g.POST("/:id/cancel", h.Cancel)
		g.GET("/by-date/:date", h.FindByDate)
		g.GET("/by-client/:rut", h.FindByLeadAttendee)
		g.GET("/times/:date", h.OccupiedTimes)
		g.GET("/filter/tier/:status/:month/:tier", h.FilterByTier)
		g.GET("/filter/band/:status/:month/:people", h.FilterByBand)
	}
}

func (h *Handler) SaveBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := validator.Validate(req); details != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", details)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.SaveBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrPricingUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "PRICING_UNAVAILABLE", "Pricing service unavailable, booking was not saved")
		case errors.Is(err, ErrPersistence):
			response.Internal(c, "Failed to persist booking")
		default:
			response.Internal(c, "Failed to save booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Booking not found")
			return
		}
		response.Internal(c, "Failed to get booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Confirm(c *gin.Context) {
	h.transition(c, h.service.ConfirmBooking)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, h.service.CancelBooking)
}

func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, id int64) error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Booking not found")
		case errors.Is(err, ErrAlreadyFinal):
			response.Error(c, http.StatusConflict, "ALREADY_FINAL", "Booking is already confirmed or cancelled")
		case errors.Is(err, ErrScheduleSync):
			response.Error(c, http.StatusBadGateway, "SCHEDULE_SYNC_FAILED", "Booking was updated but the schedule projection failed")
		default:
			response.Internal(c, "Failed to update booking status")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *Handler) GetConfirmed(c *gin.Context) {
	list, err := h.service.GetConfirmed(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) FindByDate(c *gin.Context) {
	list, err := h.service.FindByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Internal(c, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) FindByLeadAttendee(c *gin.Context) {
	list, err := h.service.FindByLeadAttendee(c.Request.Context(), c.Param("rut"))
	if err != nil {
		response.Internal(c, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) OccupiedTimes(c *gin.Context) {
	starts, ends, err := h.service.OccupiedTimes(c.Request.Context(), c.Param("date"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Internal(c, "Failed to list times")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"start_times": starts, "end_times": ends})
}

func (h *Handler) FilterByTier(c *gin.Context) {
	tier, err := strconv.Atoi(c.Param("tier"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Tier must be a number")
		return
	}

	list, err := h.service.FindByStatusMonthTier(c.Request.Context(), domain.BookingStatus(c.Param("status")), c.Param("month"), tier)
	if err != nil {
		response.Internal(c, "Failed to filter bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) FilterByBand(c *gin.Context) {
	people, err := strconv.Atoi(c.Param("people"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "People must be a number")
		return
	}

	list, err := h.service.FindByStatusMonthBand(c.Request.Context(), domain.BookingStatus(c.Param("status")), c.Param("month"), people)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Internal(c, "Failed to filter bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}
