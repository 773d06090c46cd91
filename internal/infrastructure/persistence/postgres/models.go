package postgres

import "time"

// EnderecoModel é o model GORM para endereços
type EnderecoModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Logradouro  string `gorm:"type:varchar(100);not null"`
	Cidade      string `gorm:"type:varchar(80);not null"`
	Estado      string `gorm:"type:varchar(2);not null"`
	Numero      string `gorm:"type:varchar(10);not null"`
	Complemento string `gorm:"type:varchar(50)"`
	Cep         string `gorm:"type:varchar(8);not null;index"`
}

func (EnderecoModel) TableName() string {
	return "enderecos"
}

// FilialModel é o model GORM para filiais
type FilialModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Nome       string `gorm:"type:varchar(100);not null"`
	IdEndereco uint   `gorm:"not null;index"`
}

func (FilialModel) TableName() string {
	return "filiais"
}

// FuncionarioModel é o model GORM para funcionários.
// As colunas seguem o schema legado em caixa alta.
type FuncionarioModel struct {
	ID    uint   `gorm:"column:ID;primaryKey;autoIncrement"`
	Nome  string `gorm:"column:NOME;type:varchar(250);not null"`
	Cargo string `gorm:"column:CARGO;type:varchar(50)"`
	Email string `gorm:"column:EMAIL;type:varchar(100);not null;index"`
	Senha string `gorm:"column:SENHA;type:varchar(100);not null"`
}

func (FuncionarioModel) TableName() string {
	return "FUNCIONARIO"
}

// MotoModel é o model GORM para motos
type MotoModel struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	Placa           string `gorm:"type:varchar(10);not null;index"`
	Modelo          string `gorm:"type:varchar(50);not null"`
	Ano             int    `gorm:"not null"`
	TipoCombustivel string `gorm:"type:varchar(20);not null"`
	IdFilial        uint   `gorm:"not null;index"`
}

func (MotoModel) TableName() string {
	return "motos"
}

// SetorModel é o model GORM para setores
type SetorModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Nome string `gorm:"type:varchar(50);not null"`
}

func (SetorModel) TableName() string {
	return "setores"
}

// MotoSetorModel é o model GORM para alocações moto-setor
type MotoSetorModel struct {
	ID      uint      `gorm:"primaryKey;autoIncrement"`
	Data    time.Time `gorm:"not null"`
	Fonte   string    `gorm:"type:varchar(100);not null"`
	IdMoto  uint      `gorm:"not null;index"`
	IdSetor uint      `gorm:"not null;index"`
}

func (MotoSetorModel) TableName() string {
	return "moto_setores"
}

// ReviewModel é o model GORM para reviews
type ReviewModel struct {
	ID                 uint    `gorm:"primaryKey;autoIncrement"`
	Text               string  `gorm:"type:varchar(500);not null"`
	PredictedSentiment string  `gorm:"type:varchar(20)"`
	SentimentScore     float32 `gorm:""`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
