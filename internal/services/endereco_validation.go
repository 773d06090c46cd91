package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
)

// ValidarCep exige exatamente 8 dígitos numéricos, sem hífen ou barra
func ValidarCep(cep string) error {
	if strings.TrimSpace(cep) == "" {
		return &errors.EmptyFieldError{Campo: "CEP"}
	}

	if len(cep) != 8 || strings.ContainsAny(cep, "-/") {
		return &errors.InvalidFieldError{Campo: "CEP"}
	}
	for _, r := range cep {
		if !unicode.IsDigit(r) {
			return &errors.InvalidFieldError{Campo: "CEP"}
		}
	}
	return nil
}

// ValidarEndereco orquestra todas as regras de campo do endereço
func ValidarEndereco(endereco *entities.Endereco) error {
	if err := ValidarCep(endereco.Cep); err != nil {
		return err
	}
	if err := validarLogradouro(endereco.Logradouro); err != nil {
		return err
	}
	if err := validarCidade(endereco.Cidade); err != nil {
		return err
	}
	if err := validarNumero(endereco.Numero); err != nil {
		return err
	}
	return validarEstado(endereco.Estado)
}

func validarLogradouro(logradouro string) error {
	if strings.TrimSpace(logradouro) == "" {
		return &errors.EmptyFieldError{Campo: "Logradouro"}
	}
	if n := utf8.RuneCountInString(logradouro); n < 3 || n > 100 {
		return &errors.InvalidLengthError{Campo: "Logradouro", Min: 3, Max: 100}
	}
	return nil
}

func validarCidade(cidade string) error {
	if strings.TrimSpace(cidade) == "" {
		return &errors.EmptyFieldError{Campo: "Cidade"}
	}
	if n := utf8.RuneCountInString(cidade); n < 2 || n > 80 {
		return &errors.InvalidLengthError{Campo: "Cidade", Min: 2, Max: 80}
	}
	return nil
}

func validarNumero(numero string) error {
	if strings.TrimSpace(numero) == "" {
		return &errors.EmptyFieldError{Campo: "Número"}
	}
	if n := utf8.RuneCountInString(numero); n < 1 || n > 10 {
		return &errors.InvalidLengthError{Campo: "Número", Min: 1, Max: 10}
	}
	return nil
}

// validarEstado aceita apenas a sigla da Unidade Federativa (2 letras)
func validarEstado(estado string) error {
	if strings.TrimSpace(estado) == "" {
		return &errors.EmptyFieldError{Campo: "Estado"}
	}
	if utf8.RuneCountInString(estado) != 2 {
		return &errors.InvalidFieldError{Campo: "Estado"}
	}
	for _, r := range estado {
		if !unicode.IsLetter(r) {
			return &errors.InvalidFieldError{Campo: "Estado"}
		}
	}
	return nil
}
