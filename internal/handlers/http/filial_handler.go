package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triafrota/tria-backend/internal/handlers/dto"
	"github.com/triafrota/tria-backend/internal/services"
)

// FilialHandler lida com requisições HTTP de filiais
type FilialHandler struct {
	service *services.FilialService
}

// NewFilialHandler cria um novo FilialHandler
func NewFilialHandler(service *services.FilialService) *FilialHandler {
	return &FilialHandler{service: service}
}

// Create cria uma nova filial
func (h *FilialHandler) Create(c *gin.Context) {
	var req dto.FilialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	filial, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFilialResponse(filial))
}

// Update sobrescreve os campos de uma filial
func (h *FilialHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.FilialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	filial, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFilialResponse(filial))
}

// Delete remove uma filial
func (h *FilialHandler) Delete(c *gin.Context) {
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

// GetByID busca uma filial por id
func (h *FilialHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	filial, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFilialResponse(filial))
}

// List lista todas as filiais
func (h *FilialHandler) List(c *gin.Context) {
	filiais, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFilialResponses(filiais))
}

// SearchByNome busca filiais por fragmento do nome
func (h *FilialHandler) SearchByNome(c *gin.Context) {
	filiais, err := h.service.SearchByNome(c.Request.Context(), c.Param("nome"))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFilialResponses(filiais))
}
