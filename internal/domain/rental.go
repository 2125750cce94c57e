package domain

import (
	"fmt"
	"math"
	"time"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusApproved  RentalStatus = "approved"
	RentalStatusDeclined  RentalStatus = "declined"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// OwnerResponseWindow is how long an owner has to respond to a pending
// rental request before the sweep auto-declines it.
const OwnerResponseWindow = 3 * time.Hour

// AutoRejectReason is the canned denial reason set by the sweep.
const AutoRejectReason = "Auto-rejected: Owner did not respond within 3 hours"

type Rental struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	RenterID  string    `json:"renter_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	// Frozen at request time: item price at that moment times the inclusive
	// day span. Never recomputed from the live item.
	TotalPrice   float64      `json:"total_price"`
	Status       RentalStatus `json:"status"`
	DenialReason string       `json:"denial_reason,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// RentalDetail is a rental joined with its item and the profile of the
// counterpart party (owner for a renter's view, renter for an owner's view).
type RentalDetail struct {
	Rental Rental          `json:"rental"`
	Item   ItemWithImages  `json:"item"`
	Renter *ProfileSummary `json:"renter,omitempty"`
}

// IsTerminal reports whether no further transition is permitted from s.
func (s RentalStatus) IsTerminal() bool {
	switch s {
	case RentalStatusDeclined, RentalStatusCompleted, RentalStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the state machine permits from -> to.
func CanTransition(from, to RentalStatus) bool {
	switch from {
	case RentalStatusPending:
		return to == RentalStatusApproved || to == RentalStatusDeclined || to == RentalStatusCancelled
	case RentalStatusApproved:
		return to == RentalStatusCompleted || to == RentalStatusCancelled
	}
	return false
}

// ExpiresAt returns the owner-response deadline for r.
func (r *Rental) ExpiresAt() time.Time {
	return r.CreatedAt.Add(OwnerResponseWindow)
}

// Countdown describes the remaining owner-response time of a pending rental,
// shaped for UI progress indicators.
type Countdown struct {
	Remaining       time.Duration `json:"-"`
	Text            string        `json:"text"`
	ProgressPercent float64       `json:"progress_percent"`
	ExpiringSoon    bool          `json:"expiring_soon"`
	Expired         bool          `json:"expired"`
}

// ResponseCountdown computes the remaining response time at now for a rental
// created at createdAt. Past the deadline it reports "Expired" and 0%.
func ResponseCountdown(createdAt, now time.Time) Countdown {
	remaining := createdAt.Add(OwnerResponseWindow).Sub(now)
	if remaining <= 0 {
		return Countdown{Text: "Expired", ProgressPercent: 0, ExpiringSoon: true, Expired: true}
	}

	hours := int(remaining / time.Hour)
	minutes := int((remaining % time.Hour) / time.Minute)
	text := fmt.Sprintf("%dm", minutes)
	if hours > 0 {
		text = fmt.Sprintf("%dh %dm", hours, minutes)
	}

	percent := float64(remaining) / float64(OwnerResponseWindow) * 100
	percent = math.Max(0, math.Min(100, percent))

	return Countdown{
		Remaining:       remaining,
		Text:            text,
		ProgressPercent: percent,
		ExpiringSoon:    percent < 30,
	}
}
