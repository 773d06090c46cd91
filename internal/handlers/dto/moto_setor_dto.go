package dto

import (
	"time"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/services"
)

// MotoSetorRequest representa a requisição para criar ou atualizar
// uma alocação moto-setor
type MotoSetorRequest struct {
	Data    time.Time `json:"data" binding:"required"`
	Fonte   string    `json:"fonte" binding:"required,min=2,max=100"`
	IdMoto  uint      `json:"id_moto" binding:"required"`
	IdSetor uint      `json:"id_setor" binding:"required"`
}

// MotoSetorResponse representa a resposta de uma alocação moto-setor
type MotoSetorResponse struct {
	ID      uint      `json:"id"`
	Data    time.Time `json:"data"`
	Fonte   string    `json:"fonte"`
	IdMoto  uint      `json:"id_moto"`
	IdSetor uint      `json:"id_setor"`
}

// ToInput converte a requisição em input do serviço
func (r *MotoSetorRequest) ToInput() services.MotoSetorInput {
	return services.MotoSetorInput{
		Data:    r.Data,
		Fonte:   r.Fonte,
		IdMoto:  r.IdMoto,
		IdSetor: r.IdSetor,
	}
}

// ToMotoSetorResponse converte uma entidade MotoSetor
func ToMotoSetorResponse(motoSetor *entities.MotoSetor) MotoSetorResponse {
	return MotoSetorResponse{
		ID:      motoSetor.ID,
		Data:    motoSetor.Data,
		Fonte:   motoSetor.Fonte,
		IdMoto:  motoSetor.IdMoto,
		IdSetor: motoSetor.IdSetor,
	}
}

// ToMotoSetorResponses converte uma lista de entidades MotoSetor
func ToMotoSetorResponses(motoSetores []*entities.MotoSetor) []MotoSetorResponse {
	responses := make([]MotoSetorResponse, len(motoSetores))
	for i, motoSetor := range motoSetores {
		responses[i] = ToMotoSetorResponse(motoSetor)
	}
	return responses
}
