package domain

import "time"

type Rating struct {
	ID          string    `json:"id"`
	RaterID     string    `json:"rater_id"`
	RatedUserID string    `json:"rated_user_id"`
	Rating      int32     `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	RentalID    string    `json:"rental_id"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	MinRating = 1
	MaxRating = 5
)
