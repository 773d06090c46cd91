package services

import (
	"context"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/ports"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// ReviewService classifica o texto de uma review e persiste o
// resultado. A inferência roda de forma síncrona no caminho da
// requisição; uma falha do modelo sobe como erro não tratado.
type ReviewService struct {
	repo       repositories.ReviewRepository
	classifier ports.SentimentClassifier
	logger     ports.Logger
}

// NewReviewService cria um novo ReviewService
func NewReviewService(repo repositories.ReviewRepository, classifier ports.SentimentClassifier, logger ports.Logger) *ReviewService {
	return &ReviewService{repo: repo, classifier: classifier, logger: logger}
}

// Create roda a predição de sentimento sobre o texto e persiste a
// review com o rótulo e o score atribuídos
func (s *ReviewService) Create(ctx context.Context, text string) (*entities.Review, error) {
	sentiment, err := s.classifier.Predict(text)
	if err != nil {
		return nil, err
	}

	predicted := entities.SentimentoNegativo
	if sentiment.Label {
		predicted = entities.SentimentoPositivo
	}

	review := &entities.Review{
		Text:               text,
		PredictedSentiment: predicted,
		SentimentScore:     sentiment.Score,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("review criada",
		"id", review.ID,
		"sentimento", review.PredictedSentiment,
		"score", review.SentimentScore,
	)
	return review, nil
}

// Delete remove uma review existente
func (s *ReviewService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// GetByID busca uma review por id
func (s *ReviewService) GetByID(ctx context.Context, id uint) (*entities.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, &errors.NotFoundError{Entidade: "Review", ID: id}
	}
	return review, nil
}

// GetAll lista todas as reviews
func (s *ReviewService) GetAll(ctx context.Context) ([]*entities.Review, error) {
	return s.repo.List(ctx)
}
