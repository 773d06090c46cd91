package entities

import "time"

// MotoSetor registra a alocação de uma moto em um setor, com a data e
// a fonte que originou o registro
type MotoSetor struct {
	ID      uint
	Data    time.Time
	Fonte   string
	IdMoto  uint
	IdSetor uint
}
