package entities

// Endereco representa um endereço físico de uma filial
type Endereco struct {
	ID          uint
	Logradouro  string
	Cidade      string
	Estado      string
	Numero      string
	Complemento string
	Cep         string
}
