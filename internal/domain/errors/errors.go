package errors

import (
	"errors"
	"fmt"
)

// Erros de autenticação
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	// ErrCredenciaisInvalidas cobre tanto e-mail desconhecido quanto
	// senha incorreta, sem distinguir os dois casos na resposta
	ErrCredenciaisInvalidas = errors.New("error.invalid_credentials")
	ErrTokenInvalido        = errors.New("error.invalid_token")
)

// DomainError é implementado por todos os erros de validação do
// domínio; MessageID e Params alimentam a camada de i18n
type DomainError interface {
	error
	MessageID() string
	Params() map[string]interface{}
}

// EmptyFieldError indica campo obrigatório ausente ou em branco
type EmptyFieldError struct {
	Campo string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("%s não pode estar vazio", e.Campo)
}

func (e *EmptyFieldError) MessageID() string { return "error.empty_field" }

func (e *EmptyFieldError) Params() map[string]interface{} {
	return map[string]interface{}{"Campo": e.Campo}
}

// InvalidLengthError indica campo fora dos limites de tamanho
type InvalidLengthError struct {
	Campo string
	Min   int
	Max   int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s deve ter entre %d e %d caracteres", e.Campo, e.Min, e.Max)
}

func (e *InvalidLengthError) MessageID() string { return "error.invalid_length" }

func (e *InvalidLengthError) Params() map[string]interface{} {
	return map[string]interface{}{"Campo": e.Campo, "Min": e.Min, "Max": e.Max}
}

// InvalidFieldError indica valor malformado ou fora da enumeração
// permitida (estado com mais de 2 letras, CEP fora do formato,
// combustível desconhecido)
type InvalidFieldError struct {
	Campo string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s é inválido", e.Campo)
}

func (e *InvalidFieldError) MessageID() string { return "error.invalid_field" }

func (e *InvalidFieldError) Params() map[string]interface{} {
	return map[string]interface{}{"Campo": e.Campo}
}

// AlreadyExistsError indica violação de unicidade
type AlreadyExistsError struct {
	Campo string
	Valor string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("o valor '%s' para o campo '%s' já está cadastrado", e.Valor, e.Campo)
}

func (e *AlreadyExistsError) MessageID() string { return "error.already_exists" }

func (e *AlreadyExistsError) Params() map[string]interface{} {
	return map[string]interface{}{"Campo": e.Campo, "Valor": e.Valor}
}

// NotFoundError indica entidade ausente ou chave estrangeira pendente
type NotFoundError struct {
	Entidade string
	ID       interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s com id %v não encontrado", e.Entidade, e.ID)
}

func (e *NotFoundError) MessageID() string { return "error.not_found" }

func (e *NotFoundError) Params() map[string]interface{} {
	return map[string]interface{}{"Entidade": e.Entidade, "ID": fmt.Sprint(e.ID)}
}

// IsNotFound responde se err representa uma entidade não encontrada
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAlreadyExists responde se err representa violação de unicidade
func IsAlreadyExists(err error) bool {
	var ae *AlreadyExistsError
	return errors.As(err, &ae)
}

// IsValidation responde se err pertence à taxonomia de validação
// (qualquer kind, exceto NotFound, mapeia para 400 na borda HTTP)
func IsValidation(err error) bool {
	var de DomainError
	return errors.As(err, &de) && !IsNotFound(err)
}
