package dto

import "github.com/triafrota/tria-backend/internal/domain/entities"

// CreateReviewRequest representa a requisição para criar uma review
type CreateReviewRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}

// ReviewResponse representa a resposta de uma review com o sentimento
// previsto pelo classificador
type ReviewResponse struct {
	ID                 uint    `json:"id"`
	Text               string  `json:"text"`
	PredictedSentiment string  `json:"predicted_sentiment"`
	SentimentScore     float32 `json:"sentiment_score"`
}

// ToReviewResponse converte uma entidade Review para ReviewResponse
func ToReviewResponse(review *entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:                 review.ID,
		Text:               review.Text,
		PredictedSentiment: review.PredictedSentiment,
		SentimentScore:     review.SentimentScore,
	}
}

// ToReviewResponses converte uma lista de entidades Review
func ToReviewResponses(reviews []*entities.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ToReviewResponse(review)
	}
	return responses
}
