package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/handlers/dto"
	"github.com/triafrota/tria-backend/internal/services"
)

// AuthHandler lida com registro de usuários e emissão de tokens
type AuthHandler struct {
	service *services.TokenService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(service *services.TokenService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register registra um novo usuário com a senha armazenada em hash bcrypt
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFuncionarioResponse(user))
}

// Login autentica as credenciais e devolve um token JWT. Credenciais
// inválidas respondem sempre o mesmo 401, sem distinguir email
// desconhecido de senha incorreta.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		if errs.Is(err, errors.ErrCredenciaisInvalidas) {
			c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
