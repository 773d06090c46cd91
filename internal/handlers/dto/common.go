package dto

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triafrota/tria-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	Type     string                 `json:"type"`
	Title    string                 `json:"title"`
	Status   int                    `json:"status"`
	Detail   string                 `json:"detail,omitempty"`
	Instance string                 `json:"instance,omitempty"`
	Errors   []ValidationError      `json:"errors,omitempty"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	title := T(c, titleKey, params...)
	detail := T(c, detailKey, params...)

	return ErrorResponse{
		Type:     baseURL + problemType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	}
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/validation-error",
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/not-found",
		"error.not_found.title",
		"error.not_found.detail",
		http.StatusNotFound,
		map[string]interface{}{"Resource": resource},
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/unauthorized",
		"error.unauthorized.title",
		"error.unauthorized.detail",
		http.StatusUnauthorized,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/internal-error",
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

// RespondDomainError mapeia a taxonomia de erros do domínio para a
// resposta HTTP: NotFound vira 404, qualquer outro erro de validação
// (incluindo AlreadyExists) vira 400, e o restante vira 500 genérico.
func RespondDomainError(c *gin.Context, err error) {
	var de errors.DomainError
	if errs.As(err, &de) {
		status := http.StatusBadRequest
		problemType := "/problems/validation-error"
		titleKey := "error.validation.title"

		if errors.IsNotFound(err) {
			status = http.StatusNotFound
			problemType = "/problems/not-found"
			titleKey = "error.not_found.title"
		}

		response := NewErrorResponseI18n(c, problemType, titleKey, de.MessageID(), status, de.Params())
		c.JSON(status, response)
		return
	}

	c.JSON(http.StatusInternalServerError, InternalErrorResponseI18n(c))
}
