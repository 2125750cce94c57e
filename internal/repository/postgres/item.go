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

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO items (id, owner_id, name, description, price, price_unit, category, condition, location, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.OwnerID, item.Name, nullable(item.Description),
		item.Price, item.PriceUnit, nullable(item.Category), nullable(item.Condition), nullable(item.Location),
		item.CreatedAt, item.UpdatedAt)
	return err
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	item := &domain.Item{}
	var description, category, condition, location sql.NullString
	query := `SELECT id, owner_id, name, description, price, price_unit, category, condition, location, created_at, updated_at
	          FROM items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.OwnerID, &item.Name, &description,
		&item.Price, &item.PriceUnit, &category, &condition, &location, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "item", ID: id}
	}
	if err != nil {
		return nil, err
	}
	item.Description = description.String
	item.Category = category.String
	item.Condition = condition.String
	item.Location = location.String
	return item, nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Entity: "item", ID: id}
	}
	return nil
}

func (r *itemRepository) List(ctx context.Context) ([]domain.ItemWithImages, error) {
	query := itemListingQuery + ` ORDER BY i.created_at DESC`
	return r.queryListings(ctx, query)
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.ItemWithImages, error) {
	query := itemListingQuery + ` WHERE i.owner_id = $1 ORDER BY i.created_at DESC`
	return r.queryListings(ctx, query, ownerID)
}

func (r *itemRepository) GetWithImages(ctx context.Context, id string) (*domain.ItemWithImages, error) {
	query := itemListingQuery + ` WHERE i.id = $1`
	listings, err := r.queryListings(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, &domain.NotFoundError{Entity: "item", ID: id}
	}
	return &listings[0], nil
}

const itemListingQuery = `SELECT i.id, i.owner_id, i.name, i.description, i.price, i.price_unit, i.category, i.condition, i.location, i.created_at, i.updated_at,
	       p.id, p.full_name, p.avatar_url
	FROM items i
	LEFT JOIN profiles p ON p.id = i.owner_id`

func (r *itemRepository) queryListings(ctx context.Context, query string, args ...any) ([]domain.ItemWithImages, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.ItemWithImages
	for rows.Next() {
		var it domain.ItemWithImages
		var description, category, condition, location sql.NullString
		var profileID, profileName, profileAvatar sql.NullString
		if err := rows.Scan(&it.ID, &it.OwnerID, &it.Name, &description, &it.Price, &it.PriceUnit,
			&category, &condition, &location, &it.CreatedAt, &it.UpdatedAt,
			&profileID, &profileName, &profileAvatar); err != nil {
			return nil, err
		}
		it.Description = description.String
		it.Category = category.String
		it.Condition = condition.String
		it.Location = location.String
		if it.Location == "" {
			it.Location = domain.LocationNotGiven
		}

		owner := domain.Profile{ID: profileID.String, FullName: profileName.String, AvatarURL: profileAvatar.String}
		it.Owner = owner.Summarize(nil)
		if it.Owner.ID == "" {
			it.Owner.ID = it.OwnerID
		}

		images, err := listItemImages(ctx, r.db, it.ID)
		if err != nil {
			return nil, err
		}
		for _, img := range images {
			it.Images = append(it.Images, img.ImageURL)
		}

		listings = append(listings, it)
	}
	return listings, rows.Err()
}

func (r *itemRepository) CreateImage(ctx context.Context, image *domain.ItemImage) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	image.CreatedAt = time.Now().UTC()
	query := `INSERT INTO item_images (id, item_id, image_url, is_primary, position, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, image.ID, image.ItemID, image.ImageURL, image.IsPrimary,
		image.Position, image.CreatedAt)
	return err
}

func (r *itemRepository) ListImages(ctx context.Context, itemID string) ([]domain.ItemImage, error) {
	return listItemImages(ctx, r.db, itemID)
}

func (r *itemRepository) DeleteImages(ctx context.Context, itemID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM item_images WHERE item_id = $1`, itemID)
	return err
}

// listItemImages is shared with the rental repository, which denormalizes
// item images into rental views.
func listItemImages(ctx context.Context, db *sql.DB, itemID string) ([]domain.ItemImage, error) {
	query := `SELECT id, item_id, image_url, is_primary, position, created_at
	          FROM item_images WHERE item_id = $1 ORDER BY is_primary DESC, position ASC`
	rows, err := db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.ItemImage
	for rows.Next() {
		var img domain.ItemImage
		if err := rows.Scan(&img.ID, &img.ItemID, &img.ImageURL, &img.IsPrimary, &img.Position, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
