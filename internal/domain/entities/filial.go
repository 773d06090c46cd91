package entities

// Filial representa uma unidade da frota vinculada a um endereço
type Filial struct {
	ID         uint
	Nome       string
	IdEndereco uint
}
