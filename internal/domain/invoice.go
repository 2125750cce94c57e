package domain

import (
	"fmt"
	"strings"
)

// Invoice is a derived, printable view of a rental. It is assembled on
// demand from live records and never persisted, so a regenerated invoice
// reflects the rental's current status.
type Invoice struct {
	InvoiceNumber string         `json:"invoice_number"`
	IssueDate     string         `json:"issue_date"`
	RentalPeriod  InvoicePeriod  `json:"rental_period"`
	Item          InvoiceItem    `json:"item"`
	Owner         InvoiceContact `json:"owner"`
	Renter        InvoiceContact `json:"renter"`
	TotalAmount   float64        `json:"total_amount"`
	Status        RentalStatus   `json:"status"`
}

type InvoicePeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type InvoiceItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	PriceUnit string  `json:"price_unit"`
}

type InvoiceContact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Location string `json:"location"`
}

// Fallbacks for invoice contact fields the profile never provided.
const (
	ContactNotProvided = "Not provided"
	ContactUnknownName = "Unknown"
)

// InvoiceNumberFor derives the deterministic invoice number from a rental ID:
// the uppercased first 8 characters prefixed "RNT-".
func InvoiceNumberFor(rentalID string) string {
	short := rentalID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("RNT-%s", strings.ToUpper(short))
}

// InvoiceContactFor builds a contact snapshot from a profile, substituting
// display fallbacks for missing fields.
func InvoiceContactFor(p *Profile) InvoiceContact {
	c := InvoiceContact{
		Name:     ContactUnknownName,
		Contact:  ContactNotProvided,
		Location: ContactNotProvided,
	}
	if p == nil {
		return c
	}
	c.ID = p.ID
	if p.FullName != "" {
		c.Name = p.FullName
	}
	if p.PhoneNumber != "" {
		c.Contact = p.PhoneNumber
	}
	if p.Location != "" {
		c.Location = p.Location
	}
	return c
}
