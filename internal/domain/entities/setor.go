package entities

// Setor representa uma área operacional onde motos são alocadas
type Setor struct {
	ID   uint
	Nome string
}
