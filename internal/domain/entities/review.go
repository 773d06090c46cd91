package entities

// Rótulos de sentimento atribuídos pelo classificador
const (
	SentimentoPositivo = "Positivo"
	SentimentoNegativo = "Negativo"
)

// Review é uma avaliação em texto livre com o sentimento previsto
// pelo classificador no momento do cadastro
type Review struct {
	ID                 uint
	Text               string
	PredictedSentiment string
	SentimentScore     float32
}
