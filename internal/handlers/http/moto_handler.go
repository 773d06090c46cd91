package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/triafrota/tria-backend/internal/handlers/dto"
	"github.com/triafrota/tria-backend/internal/services"
)

// MotoHandler lida com requisições HTTP de motos
type MotoHandler struct {
	service *services.MotoService
}

// NewMotoHandler cria um novo MotoHandler
func NewMotoHandler(service *services.MotoService) *MotoHandler {
	return &MotoHandler{service: service}
}

// Create cria uma nova moto
func (h *MotoHandler) Create(c *gin.Context) {
	var req dto.MotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	moto, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMotoResponse(moto))
}

// Update sobrescreve os campos de uma moto
func (h *MotoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.MotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	moto, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMotoResponse(moto))
}

// Delete remove uma moto
func (h *MotoHandler) Delete(c *gin.Context) {
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

// GetByID busca uma moto por id
func (h *MotoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	moto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMotoResponse(moto))
}

// GetByPlaca busca uma moto pela placa
func (h *MotoHandler) GetByPlaca(c *gin.Context) {
	moto, err := h.service.GetByPlaca(c.Request.Context(), c.Param("placa"))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMotoResponse(moto))
}

// List lista todas as motos
func (h *MotoHandler) List(c *gin.Context) {
	motos, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMotoResponses(motos))
}

// ListFromAno lista as motos com ano maior ou igual ao informado
func (h *MotoHandler) ListFromAno(c *gin.Context) {
	ano, err := strconv.Atoi(c.Param("ano"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "ano", Message: "ano must be a valid integer"},
		}))
		return
	}

	motos, err := h.service.GetFromAno(c.Request.Context(), ano)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMotoResponses(motos))
}

// SearchByModelo busca motos por fragmento do modelo
func (h *MotoHandler) SearchByModelo(c *gin.Context) {
	motos, err := h.service.SearchByModelo(c.Request.Context(), c.Param("modelo"))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMotoResponses(motos))
}
