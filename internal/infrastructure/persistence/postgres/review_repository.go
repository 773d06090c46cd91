package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// ReviewRepository implementa repositories.ReviewRepository
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository cria um novo ReviewRepository
func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	model := toReviewModel(review)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	review.ID = model.ID
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*entities.Review, error) {
	var model ReviewModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toReviewEntity(&model), nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&ReviewModel{}, id).Error
}

func (r *ReviewRepository) List(ctx context.Context) ([]*entities.Review, error) {
	var models []*ReviewModel

	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(models))
	for _, model := range models {
		reviews = append(reviews, toReviewEntity(model))
	}
	return reviews, nil
}

// Conversores
func toReviewModel(r *entities.Review) *ReviewModel {
	return &ReviewModel{
		ID:                 r.ID,
		Text:               r.Text,
		PredictedSentiment: r.PredictedSentiment,
		SentimentScore:     r.SentimentScore,
	}
}

func toReviewEntity(m *ReviewModel) *entities.Review {
	return &entities.Review{
		ID:                 m.ID,
		Text:               m.Text,
		PredictedSentiment: m.PredictedSentiment,
		SentimentScore:     m.SentimentScore,
	}
}
