package voucher

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"karting/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/vouchers")
	{
		g.GET("/:id/excel", h.Excel)
		g.GET("/:id/pdf", h.PDF)
		g.POST("/:id/email", h.Email)
	}
}

func (h *Handler) Excel(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	data, name, err := h.service.ExcelVoucher(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.attachment(c, name, xlsxContentType, data)
}

func (h *Handler) PDF(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	data, name, err := h.service.PDFVoucher(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.attachment(c, name, pdfContentType, data)
}

func (h *Handler) Email(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	sent, err := h.service.EmailVoucher(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Booking not found")
		case errors.Is(err, ErrNoRecipients):
			response.Error(c, http.StatusUnprocessableEntity, "NO_RECIPIENTS", "No attendee has an email address")
		case errors.Is(err, ErrDelivery):
			response.Error(c, http.StatusBadGateway, "DELIVERY_FAILED", "Voucher email could not be sent")
		default:
			response.Internal(c, "Failed to email voucher")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recipients": sent})
}

func (h *Handler) bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) renderError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Booking not found")
		return
	}
	response.Internal(c, "Failed to render voucher")
}

func (h *Handler) attachment(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}
