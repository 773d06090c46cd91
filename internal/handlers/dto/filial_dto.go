package dto

import (
	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/services"
)

// FilialRequest representa a requisição para criar ou atualizar uma filial
type FilialRequest struct {
	Nome       string `json:"nome" binding:"required,max=100"`
	IdEndereco uint   `json:"id_endereco" binding:"required"`
}

// FilialResponse representa a resposta de uma filial
type FilialResponse struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	IdEndereco uint   `json:"id_endereco"`
}

// ToInput converte a requisição em input do serviço
func (r *FilialRequest) ToInput() services.FilialInput {
	return services.FilialInput{
		Nome:       r.Nome,
		IdEndereco: r.IdEndereco,
	}
}

// ToFilialResponse converte uma entidade Filial para FilialResponse
func ToFilialResponse(filial *entities.Filial) FilialResponse {
	return FilialResponse{
		ID:         filial.ID,
		Nome:       filial.Nome,
		IdEndereco: filial.IdEndereco,
	}
}

// ToFilialResponses converte uma lista de entidades Filial
func ToFilialResponses(filiais []*entities.Filial) []FilialResponse {
	responses := make([]FilialResponse, len(filiais))
	for i, filial := range filiais {
		responses[i] = ToFilialResponse(filial)
	}
	return responses
}
