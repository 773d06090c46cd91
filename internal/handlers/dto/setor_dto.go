package dto

import (
	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/services"
)

// SetorRequest representa a requisição para criar ou atualizar um setor
type SetorRequest struct {
	Nome string `json:"nome" binding:"required,min=3,max=50" example:"Setor de Manutenção"`
}

// SetorResponse representa a resposta de um setor
type SetorResponse struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

// ToInput converte a requisição em input do serviço
func (r *SetorRequest) ToInput() services.SetorInput {
	return services.SetorInput{Nome: r.Nome}
}

// ToSetorResponse converte uma entidade Setor para SetorResponse
func ToSetorResponse(setor *entities.Setor) SetorResponse {
	return SetorResponse{ID: setor.ID, Nome: setor.Nome}
}

// ToSetorResponses converte uma lista de entidades Setor
func ToSetorResponses(setores []*entities.Setor) []SetorResponse {
	responses := make([]SetorResponse, len(setores))
	for i, setor := range setores {
		responses[i] = ToSetorResponse(setor)
	}
	return responses
}
