package service

import (
	"context"
	"math"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/repository"
)

type ratingService struct {
	ratingRepo repository.RatingRepository
}

func NewRatingService(ratingRepo repository.RatingRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo}
}

func (s *ratingService) RecordRating(ctx context.Context, raterID, ratedUserID string, rating int32, comment, rentalID string) (*domain.Rating, error) {
	if raterID == "" {
		return nil, domain.NewValidationError("user not authenticated")
	}
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, domain.NewValidationError("rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}
	if raterID == ratedUserID {
		return nil, domain.NewValidationError("you cannot rate yourself")
	}
	if rentalID == "" {
		return nil, domain.NewValidationError("a rating must reference a rental")
	}

	r := &domain.Rating{
		RaterID:     raterID,
		RatedUserID: ratedUserID,
		Rating:      rating,
		Comment:     comment,
		RentalID:    rentalID,
	}
	if err := s.ratingRepo.Create(ctx, r); err != nil {
		return nil, domain.NewDependencyError("record rating", err)
	}
	return r, nil
}

func (s *ratingService) GetAverageRating(ctx context.Context, userID string) (*float64, error) {
	ratings, err := s.ratingRepo.ListByRatedUser(ctx, userID)
	if err != nil {
		return nil, domain.NewDependencyError("load ratings", err)
	}
	if len(ratings) == 0 {
		return nil, nil
	}

	var sum int32
	for _, r := range ratings {
		sum += r.Rating
	}
	avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10
	return &avg, nil
}
