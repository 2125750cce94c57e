package postgres

import (
	"database/sql"

	"rentmate-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProfileRepository
	repository.ItemRepository
	repository.RentalRepository
	repository.RatingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		ProfileRepository: NewProfileRepository(db),
		ItemRepository:    NewItemRepository(db),
		RentalRepository:  NewRentalRepository(db),
		RatingRepository:  NewRatingRepository(db),
	}
}
