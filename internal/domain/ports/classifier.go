package ports

// Sentiment é o resultado bruto de uma inferência do classificador
// binário: Label true indica sentimento positivo, Score é a
// probabilidade atribuída pelo modelo
type Sentiment struct {
	Label bool
	Score float32
}

// SentimentClassifier define a interface para o classificador de
// sentimento pré-treinado. A implementação carrega o artefato do
// modelo uma vez na inicialização e é reutilizada em todas as
// submissões de review.
type SentimentClassifier interface {
	Predict(text string) (Sentiment, error)
}
