package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triafrota/tria-backend/internal/handlers/dto"
	"github.com/triafrota/tria-backend/internal/services"
)

// FuncionarioHandler lida com requisições HTTP de funcionários
type FuncionarioHandler struct {
	service *services.FuncionarioService
}

// NewFuncionarioHandler cria um novo FuncionarioHandler
func NewFuncionarioHandler(service *services.FuncionarioService) *FuncionarioHandler {
	return &FuncionarioHandler{service: service}
}

// Create cria um novo funcionário
func (h *FuncionarioHandler) Create(c *gin.Context) {
	var req dto.FuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	funcionario, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFuncionarioResponse(funcionario))
}

// Update sobrescreve os campos de um funcionário
func (h *FuncionarioHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.FuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	funcionario, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFuncionarioResponse(funcionario))
}

// Delete remove um funcionário
func (h *FuncionarioHandler) Delete(c *gin.Context) {
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

// GetByID busca um funcionário por id
func (h *FuncionarioHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	funcionario, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFuncionarioResponse(funcionario))
}

// List lista todos os funcionários
func (h *FuncionarioHandler) List(c *gin.Context) {
	funcionarios, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFuncionarioResponses(funcionarios))
}

// SearchByNome busca funcionários por fragmento do nome
func (h *FuncionarioHandler) SearchByNome(c *gin.Context) {
	funcionarios, err := h.service.SearchByNome(c.Request.Context(), c.Param("nome"))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFuncionarioResponses(funcionarios))
}

// SearchByCargo busca funcionários por fragmento do cargo
func (h *FuncionarioHandler) SearchByCargo(c *gin.Context) {
	funcionarios, err := h.service.SearchByCargo(c.Request.Context(), c.Param("cargo"))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFuncionarioResponses(funcionarios))
}
