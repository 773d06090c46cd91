package entities

import "strings"

// Tipos de combustível aceitos para uma Moto
const (
	CombustivelGasolina = "Gasolina"
	CombustivelEtanol   = "Etanol"
	CombustivelFlex     = "Flex"
)

// TiposCombustivel lista os valores permitidos para TipoCombustivel
var TiposCombustivel = []string{CombustivelGasolina, CombustivelEtanol, CombustivelFlex}

// Moto representa uma motocicleta da frota
type Moto struct {
	ID              uint
	Placa           string
	Modelo          string
	Ano             int
	TipoCombustivel string
	IdFilial        uint
}

// NormalizarPlaca aplica a forma canônica de armazenamento da placa
// (maiúscula e sem espaços nas bordas)
func NormalizarPlaca(placa string) string {
	return strings.ToUpper(strings.TrimSpace(placa))
}

// TipoCombustivelValido verifica se o tipo informado pertence à
// enumeração, ignorando maiúsculas/minúsculas
func TipoCombustivelValido(tipo string) bool {
	for _, t := range TiposCombustivel {
		if strings.EqualFold(t, tipo) {
			return true
		}
	}
	return false
}
