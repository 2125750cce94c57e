package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/repository"

	"github.com/google/uuid"
)

type ratingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.NewString()
	}
	rating.CreatedAt = time.Now().UTC()
	query := `INSERT INTO user_ratings (id, rater_id, rated_user_id, rating, comment, rental_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, rating.ID, rating.RaterID, rating.RatedUserID,
		rating.Rating, nullable(rating.Comment), rating.RentalID, rating.CreatedAt)
	return err
}

func (r *ratingRepository) ListByRatedUser(ctx context.Context, userID string) ([]domain.Rating, error) {
	query := `SELECT id, rater_id, rated_user_id, rating, comment, rental_id, created_at
	          FROM user_ratings WHERE rated_user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		var comment sql.NullString
		if err := rows.Scan(&rt.ID, &rt.RaterID, &rt.RatedUserID, &rt.Rating, &comment, &rt.RentalID, &rt.CreatedAt); err != nil {
			return nil, err
		}
		rt.Comment = comment.String
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}
