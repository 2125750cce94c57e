package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/repository"

	"github.com/google/uuid"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	rt.Status = domain.RentalStatusPending

	query := `INSERT INTO rentals (id, item_id, renter_id, start_date, end_date, total_price, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.ItemID, rt.RenterID, rt.StartDate, rt.EndDate,
		rt.TotalPrice, rt.Status, rt.CreatedAt, rt.UpdatedAt)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var denialReason sql.NullString
	query := `SELECT id, item_id, renter_id, start_date, end_date, total_price, status, denial_reason, created_at, updated_at
	          FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.ItemID, &rt.RenterID, &rt.StartDate,
		&rt.EndDate, &rt.TotalPrice, &rt.Status, &denialReason, &rt.CreatedAt, &rt.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "rental", ID: id}
	}
	if err != nil {
		return nil, err
	}
	rt.DenialReason = denialReason.String
	return rt, nil
}

// UpdateStatus transitions a rental conditionally: the WHERE clause pins the
// expected current status, so a concurrent approve and auto-decline cannot
// both win.
func (r *rentalRepository) UpdateStatus(ctx context.Context, id string, from, to domain.RentalStatus, denialReason string) (bool, error) {
	query := `UPDATE rentals SET status = $1, denial_reason = $2, updated_at = $3 WHERE id = $4 AND status = $5`
	res, err := r.db.ExecContext(ctx, query, to, nullable(denialReason), time.Now().UTC(), id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *rentalRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `SELECT id FROM rentals WHERE status = $1 AND created_at < $2`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID string) ([]domain.RentalDetail, error) {
	// The counterpart shown to a renter is the item owner.
	query := `SELECT r.id, r.item_id, r.renter_id, r.start_date, r.end_date, r.total_price, r.status, r.denial_reason, r.created_at, r.updated_at,
	       i.owner_id, i.name, i.description, i.price, i.price_unit, i.category, i.condition, i.location, i.created_at, i.updated_at,
	       p.id, p.full_name, p.avatar_url
	FROM rentals r
	JOIN items i ON i.id = r.item_id
	LEFT JOIN profiles p ON p.id = i.owner_id
	WHERE r.renter_id = $1
	ORDER BY r.created_at DESC`
	return r.queryDetails(ctx, query, renterID)
}

func (r *rentalRepository) ListByItemOwner(ctx context.Context, ownerID string) ([]domain.RentalDetail, error) {
	// The counterpart shown to an owner is the renter.
	query := `SELECT r.id, r.item_id, r.renter_id, r.start_date, r.end_date, r.total_price, r.status, r.denial_reason, r.created_at, r.updated_at,
	       i.owner_id, i.name, i.description, i.price, i.price_unit, i.category, i.condition, i.location, i.created_at, i.updated_at,
	       p.id, p.full_name, p.avatar_url
	FROM rentals r
	JOIN items i ON i.id = r.item_id
	LEFT JOIN profiles p ON p.id = r.renter_id
	WHERE i.owner_id = $1
	ORDER BY r.created_at DESC`
	return r.queryDetails(ctx, query, ownerID)
}

func (r *rentalRepository) queryDetails(ctx context.Context, query string, arg any) ([]domain.RentalDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.RentalDetail
	for rows.Next() {
		var d domain.RentalDetail
		var denialReason, description, category, condition, location sql.NullString
		var profileID, profileName, profileAvatar sql.NullString
		if err := rows.Scan(
			&d.Rental.ID, &d.Rental.ItemID, &d.Rental.RenterID, &d.Rental.StartDate, &d.Rental.EndDate,
			&d.Rental.TotalPrice, &d.Rental.Status, &denialReason, &d.Rental.CreatedAt, &d.Rental.UpdatedAt,
			&d.Item.OwnerID, &d.Item.Name, &description, &d.Item.Price, &d.Item.PriceUnit,
			&category, &condition, &location, &d.Item.CreatedAt, &d.Item.UpdatedAt,
			&profileID, &profileName, &profileAvatar,
		); err != nil {
			return nil, err
		}
		d.Rental.DenialReason = denialReason.String
		d.Item.ID = d.Rental.ItemID
		d.Item.Description = description.String
		d.Item.Category = category.String
		d.Item.Condition = condition.String
		d.Item.Location = location.String
		if d.Item.Location == "" {
			d.Item.Location = domain.LocationNotGiven
		}

		counterpart := domain.Profile{ID: profileID.String, FullName: profileName.String, AvatarURL: profileAvatar.String}
		summary := counterpart.Summarize(nil)
		d.Renter = &summary
		d.Item.Owner = domain.ProfileSummary{ID: d.Item.OwnerID}

		images, err := listItemImages(ctx, r.db, d.Rental.ItemID)
		if err != nil {
			return nil, err
		}
		for _, img := range images {
			d.Item.Images = append(d.Item.Images, img.ImageURL)
		}

		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *rentalRepository) GetParties(ctx context.Context, rentalID string) (*domain.Rental, *domain.Item, *domain.Profile, *domain.Profile, error) {
	rt, err := r.GetByID(ctx, rentalID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	item := &domain.Item{}
	var description, category, condition, location sql.NullString
	itemQuery := `SELECT id, owner_id, name, description, price, price_unit, category, condition, location, created_at, updated_at
	              FROM items WHERE id = $1`
	err = r.db.QueryRowContext(ctx, itemQuery, rt.ItemID).Scan(&item.ID, &item.OwnerID, &item.Name,
		&description, &item.Price, &item.PriceUnit, &category, &condition, &location, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil, nil, &domain.NotFoundError{Entity: "item", ID: rt.ItemID}
	}
	if err != nil {
		return nil, nil, nil, nil, err
	}
	item.Description = description.String
	item.Category = category.String
	item.Condition = condition.String
	item.Location = location.String

	profiles := NewProfileRepository(r.db)
	owner, err := profiles.GetByID(ctx, item.OwnerID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, nil, nil, nil, err
	}
	renter, err := profiles.GetByID(ctx, rt.RenterID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, nil, nil, nil, err
	}

	// A missing profile is rendered with contact fallbacks, not an error.
	return rt, item, owner, renter, nil
}
