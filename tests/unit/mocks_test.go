package unit

import (
	"context"
	"io"
	"time"

	"rentmate-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockItemRepo) List(ctx context.Context) ([]domain.ItemWithImages, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemWithImages), args.Error(1)
}
func (m *MockItemRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.ItemWithImages, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemWithImages), args.Error(1)
}
func (m *MockItemRepo) GetWithImages(ctx context.Context, id string) (*domain.ItemWithImages, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemWithImages), args.Error(1)
}
func (m *MockItemRepo) CreateImage(ctx context.Context, image *domain.ItemImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}
func (m *MockItemRepo) ListImages(ctx context.Context, itemID string) ([]domain.ItemImage, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemImage), args.Error(1)
}
func (m *MockItemRepo) DeleteImages(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id string, from, to domain.RentalStatus, denialReason string) (bool, error) {
	args := m.Called(ctx, id, from, to, denialReason)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockRentalRepo) ListByRenter(ctx context.Context, renterID string) ([]domain.RentalDetail, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalDetail), args.Error(1)
}
func (m *MockRentalRepo) ListByItemOwner(ctx context.Context, ownerID string) ([]domain.RentalDetail, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalDetail), args.Error(1)
}
func (m *MockRentalRepo) GetParties(ctx context.Context, rentalID string) (*domain.Rental, *domain.Item, *domain.Profile, *domain.Profile, error) {
	args := m.Called(ctx, rentalID)
	var (
		rental *domain.Rental
		item   *domain.Item
		owner  *domain.Profile
		renter *domain.Profile
	)
	if args.Get(0) != nil {
		rental = args.Get(0).(*domain.Rental)
	}
	if args.Get(1) != nil {
		item = args.Get(1).(*domain.Item)
	}
	if args.Get(2) != nil {
		owner = args.Get(2).(*domain.Profile)
	}
	if args.Get(3) != nil {
		renter = args.Get(3).(*domain.Profile)
	}
	return rental, item, owner, renter, args.Error(4)
}

// MockRatingRepo
type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Create(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}
func (m *MockRatingRepo) ListByRatedUser(ctx context.Context, userID string) ([]domain.Rating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalRequestNotification(ctx context.Context, ownerEmail, renterName, itemName string) error {
	args := m.Called(ctx, ownerEmail, renterName, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalApprovalNotification(ctx context.Context, renterEmail, itemName string) error {
	args := m.Called(ctx, renterEmail, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalDeclineNotification(ctx context.Context, renterEmail, itemName, reason string) error {
	args := m.Called(ctx, renterEmail, itemName, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalCompletionNotification(ctx context.Context, renterEmail, itemName string, totalPrice float64) error {
	args := m.Called(ctx, renterEmail, itemName, totalPrice)
	return args.Error(0)
}

// MockBlobStorage
type MockBlobStorage struct {
	mock.Mock
}

func (m *MockBlobStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, reader, contentType)
	return args.String(0), args.Error(1)
}
func (m *MockBlobStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockBlobStorage) KeyFromURL(url string) string {
	args := m.Called(url)
	return args.String(0)
}
func (m *MockBlobStorage) Open(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
