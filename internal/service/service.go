package service

import (
	"context"
	"io"
	"time"

	"rentmate-backend/internal/domain"
)

type RentalService interface {
	CreateRentalRequest(ctx context.Context, renterID, itemID, startDate, endDate string) (*domain.Rental, error)
	ApproveRentalRequest(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)
	DeclineRentalRequest(ctx context.Context, ownerID, rentalID, reason string) (*domain.Rental, error)
	CompleteRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)
	CancelRental(ctx context.Context, renterID, rentalID string) (*domain.Rental, error)
	GetRental(ctx context.Context, userID, rentalID string) (*domain.Rental, error)
	ListRentals(ctx context.Context, renterID string) ([]domain.RentalDetail, error)
	ListLendings(ctx context.Context, ownerID string) ([]domain.RentalDetail, error)
	// SweepExpiredPendingRentals auto-declines every pending rental whose
	// owner-response deadline passed before now. Idempotent; per-rental
	// failures are isolated and reported in the result.
	SweepExpiredPendingRentals(ctx context.Context, now time.Time) (SweepResult, error)
}

// SweepResult summarizes one auto-reject sweep run.
type SweepResult struct {
	Declined int `json:"declined"`
	Skipped  int `json:"skipped"` // resolved by the owner between query and update
	Failed   int `json:"failed"`
}

// ItemInput carries the caller-supplied fields of a new listing.
type ItemInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	PriceUnit   domain.PriceUnit `json:"price_unit"`
	Category    string           `json:"category"`
	Condition   string           `json:"condition"`
	Location    string           `json:"location"`
}

// ImageUpload is one image to store for a new listing.
type ImageUpload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID string, input ItemInput, images []ImageUpload) (*domain.ItemWithImages, error)
	DeleteItem(ctx context.Context, ownerID, itemID string) error
	GetItem(ctx context.Context, itemID string) (*domain.ItemWithImages, error)
	ListItems(ctx context.Context) ([]domain.ItemWithImages, error)
	ListMyItems(ctx context.Context, ownerID string) ([]domain.ItemWithImages, error)
}

type RatingService interface {
	RecordRating(ctx context.Context, raterID, ratedUserID string, rating int32, comment, rentalID string) (*domain.Rating, error)
	// GetAverageRating returns nil when the user has no ratings ("unrated").
	GetAverageRating(ctx context.Context, userID string) (*float64, error)
}

type ProfileService interface {
	SaveProfile(ctx context.Context, userID string, input ProfileInput) (*domain.Profile, error)
	GetProfileSummary(ctx context.Context, userID string) (*domain.ProfileSummary, error)
}

type InvoiceService interface {
	GenerateInvoice(ctx context.Context, rentalID string) (*domain.Invoice, error)
}

type EmailService interface {
	SendRentalRequestNotification(ctx context.Context, ownerEmail, renterName, itemName string) error
	SendRentalApprovalNotification(ctx context.Context, renterEmail, itemName string) error
	SendRentalDeclineNotification(ctx context.Context, renterEmail, itemName, reason string) error
	SendRentalCompletionNotification(ctx context.Context, renterEmail, itemName string, totalPrice float64) error
}
