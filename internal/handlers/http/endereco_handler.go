package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triafrota/tria-backend/internal/handlers/dto"
	"github.com/triafrota/tria-backend/internal/services"
)

// EnderecoHandler lida com requisições HTTP de endereços
type EnderecoHandler struct {
	service *services.EnderecoService
}

// NewEnderecoHandler cria um novo EnderecoHandler
func NewEnderecoHandler(service *services.EnderecoService) *EnderecoHandler {
	return &EnderecoHandler{service: service}
}

// Create cria um novo endereço
func (h *EnderecoHandler) Create(c *gin.Context) {
	var req dto.CreateEnderecoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	endereco, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEnderecoResponse(endereco))
}

// Update atualiza parcialmente um endereço: campos omitidos preservam
// o valor atual
func (h *EnderecoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateEnderecoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	endereco, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnderecoResponse(endereco))
}

// Delete remove um endereço
func (h *EnderecoHandler) Delete(c *gin.Context) {
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

// GetByID busca um endereço por id
func (h *EnderecoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	endereco, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnderecoResponse(endereco))
}

// GetByCep busca um endereço pelo CEP
func (h *EnderecoHandler) GetByCep(c *gin.Context) {
	endereco, err := h.service.GetByCep(c.Request.Context(), c.Param("cep"))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnderecoResponse(endereco))
}

// List lista todos os endereços
func (h *EnderecoHandler) List(c *gin.Context) {
	enderecos, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnderecoResponses(enderecos))
}
