package domain

import "time"

type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email,omitempty"`
	FullName    string    `json:"full_name"`
	AvatarURL   string    `json:"avatar_url"`
	PhoneNumber string    `json:"phone_number"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// Listing fallbacks for profiles that never filled in their details.
const (
	UnknownUserName   = "Unknown User"
	PlaceholderAvatar = "https://via.placeholder.com/150"
	LocationNotGiven  = "Not specified"
)

// ProfileSummary is the flattened owner/renter block embedded in listings
// and rental views. Rating is nil for users with no ratings ("unrated").
type ProfileSummary struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Avatar string   `json:"avatar"`
	Rating *float64 `json:"rating,omitempty"`
}

// Summarize flattens p into a listing owner block, applying the display
// defaults the UI expects for empty fields.
func (p *Profile) Summarize(rating *float64) ProfileSummary {
	s := ProfileSummary{ID: p.ID, Name: p.FullName, Avatar: p.AvatarURL, Rating: rating}
	if s.Name == "" {
		s.Name = UnknownUserName
	}
	if s.Avatar == "" {
		s.Avatar = PlaceholderAvatar
	}
	return s
}
