package service

import (
	"context"
	"strings"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/repository"
)

// ProfileInput carries the editable fields of the caller's own profile.
type ProfileInput struct {
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	AvatarURL   string `json:"avatar_url"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
}

type profileService struct {
	profileRepo repository.ProfileRepository
	ratingSvc   RatingService
}

func NewProfileService(profileRepo repository.ProfileRepository, ratingSvc RatingService) ProfileService {
	return &profileService{profileRepo: profileRepo, ratingSvc: ratingSvc}
}

func (s *profileService) SaveProfile(ctx context.Context, userID string, input ProfileInput) (*domain.Profile, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user not authenticated")
	}

	p := &domain.Profile{
		ID:          userID,
		Email:       strings.TrimSpace(input.Email),
		FullName:    strings.TrimSpace(input.FullName),
		AvatarURL:   strings.TrimSpace(input.AvatarURL),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Location:    strings.TrimSpace(input.Location),
	}
	if err := s.profileRepo.Upsert(ctx, p); err != nil {
		return nil, domain.NewDependencyError("save profile", err)
	}
	return s.profileRepo.GetByID(ctx, userID)
}

// GetProfileSummary returns the public view of a user: display name, avatar
// and aggregated rating, with the usual fallbacks for missing fields. A user
// who never saved a profile still gets a rendered summary.
func (s *profileService) GetProfileSummary(ctx context.Context, userID string) (*domain.ProfileSummary, error) {
	p, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if !domain.IsNotFound(err) {
			return nil, err
		}
		p = &domain.Profile{ID: userID}
	}

	rating, err := s.ratingSvc.GetAverageRating(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := p.Summarize(rating)
	return &summary, nil
}
