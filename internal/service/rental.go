package service

import (
	"context"
	"strings"
	"time"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/logger"
	"rentmate-backend/internal/repository"
	"rentmate-backend/internal/utils"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	itemRepo    repository.ItemRepository
	profileRepo repository.ProfileRepository
	emailSvc    EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	itemRepo repository.ItemRepository,
	profileRepo repository.ProfileRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		itemRepo:    itemRepo,
		profileRepo: profileRepo,
		emailSvc:    emailSvc,
	}
}

func (s *rentalService) CreateRentalRequest(ctx context.Context, renterID, itemID, startDateStr, endDateStr string) (*domain.Rental, error) {
	if renterID == "" {
		return nil, domain.NewValidationError("user not authenticated")
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID == renterID {
		return nil, domain.NewValidationError("you cannot rent your own item")
	}

	start, err := utils.ParseDate(startDateStr)
	if err != nil {
		return nil, domain.NewValidationError("%v", err)
	}
	end, err := utils.ParseDate(endDateStr)
	if err != nil {
		return nil, domain.NewValidationError("%v", err)
	}

	// Price is frozen here: the day span includes both endpoints.
	totalPrice, err := utils.TotalPrice(item.Price, start, end)
	if err != nil {
		return nil, domain.NewValidationError("%v", err)
	}

	rental := &domain.Rental{
		ItemID:     itemID,
		RenterID:   renterID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: totalPrice,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, domain.NewDependencyError("create rental", err)
	}

	s.notifyOwner(ctx, item, renterID)

	return rental, nil
}

// notifyOwner emails the item owner about a new request. Best effort: a
// notification failure never fails the request itself.
func (s *rentalService) notifyOwner(ctx context.Context, item *domain.Item, renterID string) {
	owner, err := s.profileRepo.GetByID(ctx, item.OwnerID)
	if err != nil || owner.Email == "" {
		return
	}
	renterName := domain.UnknownUserName
	if renter, err := s.profileRepo.GetByID(ctx, renterID); err == nil && renter.FullName != "" {
		renterName = renter.FullName
	}
	if err := s.emailSvc.SendRentalRequestNotification(ctx, owner.Email, renterName, item.Name); err != nil {
		logger.Warn("Failed to send rental request notification", "item_id", item.ID, "error", err)
	}
}

func (s *rentalService) ApproveRentalRequest(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rental, err := s.authorizeOwner(ctx, ownerID, rentalID)
	if err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, rental, domain.RentalStatusPending, domain.RentalStatusApproved, "")
	if err != nil {
		return nil, err
	}

	s.notifyRenter(ctx, updated, func(email, itemName string) error {
		return s.emailSvc.SendRentalApprovalNotification(ctx, email, itemName)
	})
	return updated, nil
}

func (s *rentalService) DeclineRentalRequest(ctx context.Context, ownerID, rentalID, reason string) (*domain.Rental, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("a reason is required to decline a rental request")
	}

	rental, err := s.authorizeOwner(ctx, ownerID, rentalID)
	if err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, rental, domain.RentalStatusPending, domain.RentalStatusDeclined, reason)
	if err != nil {
		return nil, err
	}

	s.notifyRenter(ctx, updated, func(email, itemName string) error {
		return s.emailSvc.SendRentalDeclineNotification(ctx, email, itemName, reason)
	})
	return updated, nil
}

func (s *rentalService) CompleteRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rental, err := s.authorizeOwner(ctx, ownerID, rentalID)
	if err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, rental, domain.RentalStatusApproved, domain.RentalStatusCompleted, "")
	if err != nil {
		return nil, err
	}

	s.notifyRenter(ctx, updated, func(email, itemName string) error {
		return s.emailSvc.SendRentalCompletionNotification(ctx, email, itemName, updated.TotalPrice)
	})
	return updated, nil
}

func (s *rentalService) CancelRental(ctx context.Context, renterID, rentalID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.RenterID != renterID {
		return nil, domain.NewForbiddenError("only the renter can cancel this rental")
	}

	return s.transition(ctx, rental, rental.Status, domain.RentalStatusCancelled, "")
}

// authorizeOwner loads a rental and checks the caller owns the rented item.
func (s *rentalService) authorizeOwner(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, rental.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, domain.NewForbiddenError("only the item owner can respond to this rental request")
	}
	return rental, nil
}

// transition applies a guarded status change through the conditional update.
// When no row matches, the rental was either removed or concurrently moved
// past from; re-reading distinguishes the two.
func (s *rentalService) transition(ctx context.Context, rental *domain.Rental, from, to domain.RentalStatus, denialReason string) (*domain.Rental, error) {
	if rental.Status != from {
		return nil, &domain.InvalidStateError{From: rental.Status, To: to}
	}
	if !domain.CanTransition(from, to) {
		return nil, &domain.InvalidStateError{From: from, To: to}
	}

	ok, err := s.rentalRepo.UpdateStatus(ctx, rental.ID, from, to, denialReason)
	if err != nil {
		return nil, domain.NewDependencyError("update rental status", err)
	}
	if !ok {
		current, err := s.rentalRepo.GetByID(ctx, rental.ID)
		if err != nil {
			return nil, err
		}
		return nil, &domain.InvalidStateError{From: current.Status, To: to}
	}

	return s.rentalRepo.GetByID(ctx, rental.ID)
}

func (s *rentalService) notifyRenter(ctx context.Context, rental *domain.Rental, send func(email, itemName string) error) {
	renter, err := s.profileRepo.GetByID(ctx, rental.RenterID)
	if err != nil || renter.Email == "" {
		return
	}
	itemName := ""
	if item, err := s.itemRepo.GetByID(ctx, rental.ItemID); err == nil {
		itemName = item.Name
	}
	if err := send(renter.Email, itemName); err != nil {
		logger.Warn("Failed to send rental status notification", "rental_id", rental.ID, "error", err)
	}
}

func (s *rentalService) GetRental(ctx context.Context, userID, rentalID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, rental.ItemID)
	if err != nil {
		return nil, err
	}
	if rental.RenterID != userID && item.OwnerID != userID {
		return nil, domain.NewForbiddenError("rental does not belong to this user")
	}
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, renterID string) ([]domain.RentalDetail, error) {
	return s.rentalRepo.ListByRenter(ctx, renterID)
}

func (s *rentalService) ListLendings(ctx context.Context, ownerID string) ([]domain.RentalDetail, error) {
	return s.rentalRepo.ListByItemOwner(ctx, ownerID)
}

func (s *rentalService) SweepExpiredPendingRentals(ctx context.Context, now time.Time) (SweepResult, error) {
	cutoff := now.Add(-domain.OwnerResponseWindow)

	ids, err := s.rentalRepo.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		return SweepResult{}, domain.NewDependencyError("query expired pending rentals", err)
	}

	var result SweepResult
	for _, id := range ids {
		ok, err := s.rentalRepo.UpdateStatus(ctx, id, domain.RentalStatusPending, domain.RentalStatusDeclined, domain.AutoRejectReason)
		if err != nil {
			// One failed rental must not block the rest of the batch.
			logger.Error("Failed to auto-reject rental", "rental_id", id, "error", err)
			result.Failed++
			continue
		}
		if !ok {
			// The owner responded between the query and the update.
			result.Skipped++
			continue
		}
		result.Declined++
	}

	if result.Declined > 0 || result.Failed > 0 {
		logger.Info("Auto-reject sweep finished",
			"declined", result.Declined, "skipped", result.Skipped, "failed", result.Failed)
	}
	return result, nil
}
