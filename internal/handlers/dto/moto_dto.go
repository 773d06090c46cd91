package dto

import (
	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/services"
)

// MotoRequest representa a requisição para criar ou atualizar uma moto
type MotoRequest struct {
	Placa           string `json:"placa" binding:"required,min=7,max=10" example:"ABC1D23"`
	Modelo          string `json:"modelo" binding:"required,min=2,max=50"`
	Ano             int    `json:"ano" binding:"required,gte=2000,lte=2030"`
	TipoCombustivel string `json:"tipo_combustivel" binding:"required,combustivel" example:"Flex"`
	IdFilial        uint   `json:"id_filial" binding:"required"`
}

// MotoResponse representa a resposta de uma moto
type MotoResponse struct {
	ID              uint   `json:"id"`
	Placa           string `json:"placa"`
	Modelo          string `json:"modelo"`
	Ano             int    `json:"ano"`
	TipoCombustivel string `json:"tipo_combustivel"`
	IdFilial        uint   `json:"id_filial"`
}

// ToInput converte a requisição em input do serviço
func (r *MotoRequest) ToInput() services.MotoInput {
	return services.MotoInput{
		Placa:           r.Placa,
		Modelo:          r.Modelo,
		Ano:             r.Ano,
		TipoCombustivel: r.TipoCombustivel,
		IdFilial:        r.IdFilial,
	}
}

// ToMotoResponse converte uma entidade Moto para MotoResponse
func ToMotoResponse(moto *entities.Moto) MotoResponse {
	return MotoResponse{
		ID:              moto.ID,
		Placa:           moto.Placa,
		Modelo:          moto.Modelo,
		Ano:             moto.Ano,
		TipoCombustivel: moto.TipoCombustivel,
		IdFilial:        moto.IdFilial,
	}
}

// ToMotoResponses converte uma lista de entidades Moto
func ToMotoResponses(motos []*entities.Moto) []MotoResponse {
	responses := make([]MotoResponse, len(motos))
	for i, moto := range motos {
		responses[i] = ToMotoResponse(moto)
	}
	return responses
}
