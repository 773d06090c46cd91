package services

import (
	"context"
	"testing"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/ports"
)

// stubClassifier devolve sempre o mesmo resultado, independente do texto
type stubClassifier struct {
	sentiment ports.Sentiment
	err       error
}

func (s stubClassifier) Predict(text string) (ports.Sentiment, error) {
	return s.sentiment, s.err
}

func TestReviewServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("rótulo positivo vira 'Positivo' com o score do modelo", func(t *testing.T) {
		service := NewReviewService(newFakeReviewRepo(), stubClassifier{
			sentiment: ports.Sentiment{Label: true, Score: 0.92},
		}, noopLogger{})

		review, err := service.Create(ctx, "moto excelente, recomendo")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if review.PredictedSentiment != entities.SentimentoPositivo {
			t.Errorf("esperava 'Positivo', obteve '%s'", review.PredictedSentiment)
		}
		if review.SentimentScore != 0.92 {
			t.Errorf("esperava score 0.92, obteve %v", review.SentimentScore)
		}
	})

	t.Run("rótulo negativo vira 'Negativo'", func(t *testing.T) {
		service := NewReviewService(newFakeReviewRepo(), stubClassifier{
			sentiment: ports.Sentiment{Label: false, Score: 0.1},
		}, noopLogger{})

		review, err := service.Create(ctx, "a moto quebrou na primeira semana")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if review.PredictedSentiment != entities.SentimentoNegativo {
			t.Errorf("esperava 'Negativo', obteve '%s'", review.PredictedSentiment)
		}
		if review.SentimentScore != 0.1 {
			t.Errorf("esperava score 0.1, obteve %v", review.SentimentScore)
		}
	})

	t.Run("falha do classificador impede a persistência", func(t *testing.T) {
		repo := newFakeReviewRepo()
		service := NewReviewService(repo, stubClassifier{err: errTest}, noopLogger{})

		if _, err := service.Create(ctx, "qualquer texto"); err == nil {
			t.Fatal("esperava erro do classificador")
		}
		reviews, _ := repo.List(ctx)
		if len(reviews) != 0 {
			t.Errorf("esperava nenhuma review persistida, obteve %d", len(reviews))
		}
	})
}

func TestReviewServiceDelete(t *testing.T) {
	ctx := context.Background()
	service := NewReviewService(newFakeReviewRepo(), stubClassifier{
		sentiment: ports.Sentiment{Label: true, Score: 0.8},
	}, noopLogger{})

	review, err := service.Create(ctx, "muito boa")
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	if err := service.Delete(ctx, review.ID); err != nil {
		t.Fatalf("esperava sucesso na remoção, obteve: %v", err)
	}

	if _, err := service.GetByID(ctx, review.ID); !errors.IsNotFound(err) {
		t.Fatalf("esperava NotFoundError após remoção, obteve: %v", err)
	}
}
