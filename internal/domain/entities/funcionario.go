package entities

// Funcionario representa um colaborador com acesso à plataforma.
// Senha carrega o hash bcrypt no fluxo de autenticação.
type Funcionario struct {
	ID    uint
	Nome  string
	Cargo string
	Email string
	Senha string
}
