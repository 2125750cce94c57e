package handlers

import (
	"context"
	"time"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/security"
	"rentmate-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRentalRequest(ctx context.Context, renterID, itemID, startDate, endDate string) (*domain.Rental, error) {
	args := m.Called(ctx, renterID, itemID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ApproveRentalRequest(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, ownerID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) DeclineRentalRequest(ctx context.Context, ownerID, rentalID, reason string) (*domain.Rental, error) {
	args := m.Called(ctx, ownerID, rentalID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CompleteRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, ownerID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CancelRental(ctx context.Context, renterID, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, renterID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, userID, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, userID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context, renterID string) ([]domain.RentalDetail, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalDetail), args.Error(1)
}
func (m *MockRentalService) ListLendings(ctx context.Context, ownerID string) ([]domain.RentalDetail, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalDetail), args.Error(1)
}
func (m *MockRentalService) SweepExpiredPendingRentals(ctx context.Context, now time.Time) (service.SweepResult, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(service.SweepResult), args.Error(1)
}

// MockItemService
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, ownerID string, input service.ItemInput, images []service.ImageUpload) (*domain.ItemWithImages, error) {
	args := m.Called(ctx, ownerID, input, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemWithImages), args.Error(1)
}
func (m *MockItemService) DeleteItem(ctx context.Context, ownerID, itemID string) error {
	args := m.Called(ctx, ownerID, itemID)
	return args.Error(0)
}
func (m *MockItemService) GetItem(ctx context.Context, itemID string) (*domain.ItemWithImages, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemWithImages), args.Error(1)
}
func (m *MockItemService) ListItems(ctx context.Context) ([]domain.ItemWithImages, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemWithImages), args.Error(1)
}
func (m *MockItemService) ListMyItems(ctx context.Context, ownerID string) ([]domain.ItemWithImages, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemWithImages), args.Error(1)
}

// MockRatingService
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) RecordRating(ctx context.Context, raterID, ratedUserID string, rating int32, comment, rentalID string) (*domain.Rating, error) {
	args := m.Called(ctx, raterID, ratedUserID, rating, comment, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}
func (m *MockRatingService) GetAverageRating(ctx context.Context, userID string) (*float64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

// MockProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) SaveProfile(ctx context.Context, userID string, input service.ProfileInput) (*domain.Profile, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileService) GetProfileSummary(ctx context.Context, userID string) (*domain.ProfileSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileSummary), args.Error(1)
}

// MockInvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GenerateInvoice(ctx context.Context, rentalID string) (*domain.Invoice, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// staticValidator authenticates every request as a fixed user. Tokens are
// treated as opaque; "bad" is always rejected.
type staticValidator struct {
	userID string
}

func (v *staticValidator) ValidateToken(token string) (*security.UserClaims, error) {
	if token == "bad" {
		return nil, security.ErrInvalidToken
	}
	return &security.UserClaims{UserID: v.userID}, nil
}
