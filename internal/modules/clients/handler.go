package clients

import (
	"errors"
	"net/http"

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
	g := rg.Group("/clients")
	{
		g.POST("", h.Register)
		g.GET("", h.List)
		g.GET("/:rut", h.GetByRUT)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := validator.Validate(req); details != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", details)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	client, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrAlreadyRegistered):
			response.Error(c, http.StatusConflict, "ALREADY_REGISTERED", "Client RUT is already registered")
		default:
			response.Internal(c, "Failed to register client")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"client": client})
}

func (h *Handler) GetByRUT(c *gin.Context) {
	client, err := h.service.GetByRUT(c.Request.Context(), c.Param("rut"))
	if err != nil {
		if errors.Is(err, ErrNotRegistered) {
			response.NotFound(c, "Client is not registered")
			return
		}
		response.Internal(c, "Failed to get client")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": client})
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to list clients")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clients": list})
}
