package dto

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/triafrota/tria-backend/internal/domain/entities"
)

// RegisterCustomValidators registra as validações de formato do
// domínio no engine de binding do Gin. Deve ser chamado uma vez na
// inicialização.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// cep: exatamente 8 dígitos numéricos, sem separadores
	if err := v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		cep := fl.Field().String()
		if len(cep) != 8 {
			return false
		}
		for _, r := range cep {
			if !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	}); err != nil {
		return err
	}

	// uf: sigla da Unidade Federativa, 2 letras
	if err := v.RegisterValidation("uf", func(fl validator.FieldLevel) bool {
		uf := fl.Field().String()
		if len(uf) != 2 {
			return false
		}
		for _, r := range uf {
			if !unicode.IsLetter(r) {
				return false
			}
		}
		return true
	}); err != nil {
		return err
	}

	// combustivel: membro da enumeração de tipos, sem case
	return v.RegisterValidation("combustivel", func(fl validator.FieldLevel) bool {
		return entities.TipoCombustivelValido(fl.Field().String())
	})
}

// BindingErrors converte os erros do validator em ValidationError
// para o corpo RFC 7807
func BindingErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	result := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		result = append(result, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: fe.Error(),
			Tag:     fe.Tag(),
		})
	}
	return result
}
