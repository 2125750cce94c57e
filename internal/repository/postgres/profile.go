package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	p := &domain.Profile{}
	var email, fullName, avatarURL, phoneNumber, location sql.NullString
	query := `SELECT id, email, full_name, avatar_url, phone_number, location, created_at FROM profiles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &email, &fullName, &avatarURL, &phoneNumber, &location, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "profile", ID: id}
	}
	if err != nil {
		return nil, err
	}
	p.Email = email.String
	p.FullName = fullName.String
	p.AvatarURL = avatarURL.String
	p.PhoneNumber = phoneNumber.String
	p.Location = location.String
	return p, nil
}

func (r *profileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, email, full_name, avatar_url, phone_number, location, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, full_name = EXCLUDED.full_name,
	              avatar_url = EXCLUDED.avatar_url, phone_number = EXCLUDED.phone_number, location = EXCLUDED.location`
	_, err := r.db.ExecContext(ctx, query, p.ID, nullable(p.Email), nullable(p.FullName), nullable(p.AvatarURL),
		nullable(p.PhoneNumber), nullable(p.Location), time.Now().UTC())
	return err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
