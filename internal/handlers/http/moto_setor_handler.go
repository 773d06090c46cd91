package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triafrota/tria-backend/internal/handlers/dto"
	"github.com/triafrota/tria-backend/internal/services"
)

// MotoSetorHandler lida com requisições HTTP de alocações de moto em setor
type MotoSetorHandler struct {
	service *services.MotoSetorService
}

// NewMotoSetorHandler cria um novo MotoSetorHandler
func NewMotoSetorHandler(service *services.MotoSetorService) *MotoSetorHandler {
	return &MotoSetorHandler{service: service}
}

// Create aloca uma moto em um setor
func (h *MotoSetorHandler) Create(c *gin.Context) {
	var req dto.MotoSetorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	motoSetor, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMotoSetorResponse(motoSetor))
}

// Update sobrescreve uma alocação existente
func (h *MotoSetorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.MotoSetorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	motoSetor, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMotoSetorResponse(motoSetor))
}

// Delete remove uma alocação
func (h *MotoSetorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetByID busca uma alocação por id
func (h *MotoSetorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	motoSetor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMotoSetorResponse(motoSetor))
}

// List lista todas as alocações
func (h *MotoSetorHandler) List(c *gin.Context) {
	motoSetores, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMotoSetorResponses(motoSetores))
}
