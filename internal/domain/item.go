package domain

import "time"

type PriceUnit string

const (
	PriceUnitDay    PriceUnit = "day"
	PriceUnitRental PriceUnit = "rental"
)

type Item struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	PriceUnit   PriceUnit `json:"price_unit"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ItemImage struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	ImageURL  string    `json:"image_url"`
	IsPrimary bool      `json:"is_primary"`
	Position  int32     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemWithImages is the denormalized listing view: the item, its image URLs
// in display order (primary first), and a flattened owner summary.
type ItemWithImages struct {
	Item
	Images []string       `json:"images"`
	Owner  ProfileSummary `json:"owner"`
}
