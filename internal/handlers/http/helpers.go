package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/triafrota/tria-backend/internal/handlers/dto"
)

// parseID extrai o parâmetro de rota :id como uint; responde 400 e
// retorna false quando o valor não é numérico
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "id", Message: "id must be a positive integer"},
		}))
		return 0, false
	}
	return uint(id), true
}
