package service

import (
	"context"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/repository"
)

// invoiceDateFormat is the display format for invoice dates.
const invoiceDateFormat = "Jan 2, 2006"

type invoiceService struct {
	rentalRepo repository.RentalRepository
}

func NewInvoiceService(rentalRepo repository.RentalRepository) InvoiceService {
	return &invoiceService{rentalRepo: rentalRepo}
}

// GenerateInvoice assembles a printable invoice from live records. Nothing
// is cached or persisted: regenerating after a status change reflects the
// rental's current status.
func (s *invoiceService) GenerateInvoice(ctx context.Context, rentalID string) (*domain.Invoice, error) {
	rental, item, owner, renter, err := s.rentalRepo.GetParties(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	priceUnit := "fixed"
	if item.PriceUnit == domain.PriceUnitDay {
		priceUnit = "per day"
	}

	return &domain.Invoice{
		InvoiceNumber: domain.InvoiceNumberFor(rental.ID),
		IssueDate:     rental.UpdatedAt.Format(invoiceDateFormat),
		RentalPeriod: domain.InvoicePeriod{
			Start: rental.StartDate.Format(invoiceDateFormat),
			End:   rental.EndDate.Format(invoiceDateFormat),
		},
		Item: domain.InvoiceItem{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			PriceUnit: priceUnit,
		},
		Owner:       domain.InvoiceContactFor(owner),
		Renter:      domain.InvoiceContactFor(renter),
		TotalAmount: rental.TotalPrice,
		Status:      rental.Status,
	}, nil
}
