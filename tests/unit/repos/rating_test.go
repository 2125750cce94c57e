package repos

import (
	"context"
	"testing"
	"time"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRatingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRatingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rating := &domain.Rating{
			RaterID:     "rater-1",
			RatedUserID: "rated-1",
			Rating:      5,
			Comment:     "Great owner",
			RentalID:    "rental-1",
		}

		mock.ExpectExec("INSERT INTO user_ratings").
			WithArgs(sqlmock.AnyArg(), "rater-1", "rated-1", int32(5), sqlmock.AnyArg(), "rental-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, rating)
		assert.NoError(t, err)
		assert.NotEmpty(t, rating.ID)
	})
}

func TestRatingRepository_ListByRatedUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRatingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "rater_id", "rated_user_id", "rating", "comment", "rental_id", "created_at"}).
			AddRow("rt-1", "rater-1", "rated-1", 4, "Good", "rental-1", now).
			AddRow("rt-2", "rater-2", "rated-1", 5, nil, "rental-2", now)

		mock.ExpectQuery("SELECT (.+) FROM user_ratings WHERE rated_user_id = \\$1").
			WithArgs("rated-1").
			WillReturnRows(rows)

		ratings, err := repo.ListByRatedUser(ctx, "rated-1")
		assert.NoError(t, err)
		assert.Len(t, ratings, 2)
		assert.Equal(t, int32(4), ratings[0].Rating)
		assert.Empty(t, ratings[1].Comment)
	})

	t.Run("No ratings", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_ratings WHERE rated_user_id = \\$1").
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		ratings, err := repo.ListByRatedUser(ctx, "nobody")
		assert.NoError(t, err)
		assert.Empty(t, ratings)
	})
}
