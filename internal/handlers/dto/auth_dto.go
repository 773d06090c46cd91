package dto

import "github.com/triafrota/tria-backend/internal/services"

// RegisterRequest representa a requisição de registro de usuário
type RegisterRequest struct {
	Nome  string `json:"nome" binding:"required,min=3,max=100"`
	Email string `json:"email" binding:"required,email,max=100"`
	Senha string `json:"senha" binding:"required,min=6,max=50"`
	Cargo string `json:"cargo" binding:"required"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// LoginResponse carrega o token JWT emitido
type LoginResponse struct {
	Token string `json:"token"`
}

// ToInput converte a requisição em input do serviço
func (r *RegisterRequest) ToInput() services.RegisterInput {
	return services.RegisterInput{
		Nome:  r.Nome,
		Email: r.Email,
		Senha: r.Senha,
		Cargo: r.Cargo,
	}
}
