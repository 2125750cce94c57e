package repository

import (
	"context"
	"time"

	"rentmate-backend/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.ItemWithImages, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.ItemWithImages, error)
	GetWithImages(ctx context.Context, id string) (*domain.ItemWithImages, error)

	// Image records
	CreateImage(ctx context.Context, image *domain.ItemImage) error
	ListImages(ctx context.Context, itemID string) ([]domain.ItemImage, error)
	DeleteImages(ctx context.Context, itemID string) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	// UpdateStatus performs a conditional transition: the row is updated only
	// when its current status equals from. Returns false when no row matched,
	// which means the rental is absent or already past from.
	UpdateStatus(ctx context.Context, id string, from, to domain.RentalStatus, denialReason string) (bool, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
	ListByRenter(ctx context.Context, renterID string) ([]domain.RentalDetail, error)
	ListByItemOwner(ctx context.Context, ownerID string) ([]domain.RentalDetail, error)
	// GetParties loads the rental's item together with the owner and renter
	// profiles, as needed by the invoice assembler.
	GetParties(ctx context.Context, rentalID string) (*domain.Rental, *domain.Item, *domain.Profile, *domain.Profile, error)
}

type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) error
	ListByRatedUser(ctx context.Context, userID string) ([]domain.Rating, error)
}
