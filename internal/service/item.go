package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/logger"
	"rentmate-backend/internal/repository"
	"rentmate-backend/internal/storage"

	"github.com/google/uuid"
)

type itemService struct {
	itemRepo  repository.ItemRepository
	blobs     storage.BlobStorage
	ratingSvc RatingService
}

func NewItemService(itemRepo repository.ItemRepository, blobs storage.BlobStorage, ratingSvc RatingService) ItemService {
	return &itemService{
		itemRepo:  itemRepo,
		blobs:     blobs,
		ratingSvc: ratingSvc,
	}
}

func validateItemInput(input ItemInput, imageCount int) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return domain.NewValidationError("item name is required")
	case strings.TrimSpace(input.Description) == "":
		return domain.NewValidationError("item description is required")
	case input.Price <= 0:
		return domain.NewValidationError("item price must be a positive number")
	case strings.TrimSpace(input.Category) == "":
		return domain.NewValidationError("item category is required")
	case strings.TrimSpace(input.Condition) == "":
		return domain.NewValidationError("item condition is required")
	case strings.TrimSpace(input.Location) == "":
		return domain.NewValidationError("item location is required")
	case imageCount == 0:
		return domain.NewValidationError("at least one image is required")
	}
	if input.PriceUnit != domain.PriceUnitDay && input.PriceUnit != domain.PriceUnitRental {
		return domain.NewValidationError("price unit must be %q or %q", domain.PriceUnitDay, domain.PriceUnitRental)
	}
	return nil
}

func (s *itemService) CreateItem(ctx context.Context, ownerID string, input ItemInput, images []ImageUpload) (*domain.ItemWithImages, error) {
	if ownerID == "" {
		return nil, domain.NewValidationError("user not authenticated")
	}
	// All validation happens before any side effect.
	if err := validateItemInput(input, len(images)); err != nil {
		return nil, err
	}

	item := &domain.Item{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		PriceUnit:   input.PriceUnit,
		Category:    input.Category,
		Condition:   input.Condition,
		Location:    input.Location,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, domain.NewDependencyError("create item", err)
	}

	urls, err := s.uploadImages(ctx, item.ID, images)
	if err != nil {
		s.compensateCreate(ctx, item.ID, urls)
		return nil, err
	}

	for i, url := range urls {
		img := &domain.ItemImage{
			ItemID:    item.ID,
			ImageURL:  url,
			IsPrimary: i == 0, // first image is primary
			Position:  int32(i),
		}
		if err := s.itemRepo.CreateImage(ctx, img); err != nil {
			s.compensateCreate(ctx, item.ID, urls)
			return nil, domain.NewDependencyError("create image record", err)
		}
	}

	created, err := s.itemRepo.GetWithImages(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	s.fillOwnerRatings(ctx, created)
	return created, nil
}

// uploadImages stores all images in parallel and joins on completion. URLs
// of successful uploads are always returned so a failed join can be
// compensated.
func (s *itemService) uploadImages(ctx context.Context, itemID string, images []ImageUpload) ([]string, error) {
	urls := make([]string, len(images))
	errs := make([]error, len(images))

	var wg sync.WaitGroup
	for i, img := range images {
		wg.Add(1)
		go func(i int, img ImageUpload) {
			defer wg.Done()
			ext := filepath.Ext(img.FileName)
			key := fmt.Sprintf("%s/%s%s", itemID, uuid.NewString(), ext)
			url, err := s.blobs.Upload(ctx, key, img.Reader, img.ContentType)
			if err != nil {
				errs[i] = err
				return
			}
			urls[i] = url
		}(i, img)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return urls, domain.NewDependencyError(fmt.Sprintf("upload image %d", i), err)
		}
	}
	return urls, nil
}

// compensateCreate rolls back a partially created item: uploaded blobs,
// image records, and the item record itself. Each step is best effort.
func (s *itemService) compensateCreate(ctx context.Context, itemID string, urls []string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		key := s.blobs.KeyFromURL(url)
		if key == "" {
			continue
		}
		if err := s.blobs.Delete(ctx, key); err != nil {
			logger.Warn("Failed to clean up uploaded blob", "item_id", itemID, "key", key, "error", err)
		}
	}
	if err := s.itemRepo.DeleteImages(ctx, itemID); err != nil {
		logger.Warn("Failed to clean up image records", "item_id", itemID, "error", err)
	}
	if err := s.itemRepo.Delete(ctx, itemID); err != nil && !domain.IsNotFound(err) {
		logger.Warn("Failed to clean up item record", "item_id", itemID, "error", err)
	}
}

func (s *itemService) DeleteItem(ctx context.Context, ownerID, itemID string) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.OwnerID != ownerID {
		return domain.NewForbiddenError("only the owner can delete this item")
	}

	// Best-effort cascade: blob and image-record failures are logged, never
	// fatal. Only the final item delete surfaces to the caller.
	images, err := s.itemRepo.ListImages(ctx, itemID)
	if err != nil {
		logger.Warn("Failed to list item images for cleanup", "item_id", itemID, "error", err)
	}
	for _, img := range images {
		key := s.blobs.KeyFromURL(img.ImageURL)
		if key == "" {
			continue
		}
		if err := s.blobs.Delete(ctx, key); err != nil {
			logger.Warn("Failed to delete image blob", "item_id", itemID, "key", key, "error", err)
		}
	}
	if err := s.itemRepo.DeleteImages(ctx, itemID); err != nil {
		logger.Warn("Failed to delete image records", "item_id", itemID, "error", err)
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return domain.NewDependencyError("delete item", err)
	}
	return nil
}

func (s *itemService) GetItem(ctx context.Context, itemID string) (*domain.ItemWithImages, error) {
	item, err := s.itemRepo.GetWithImages(ctx, itemID)
	if err != nil {
		return nil, err
	}
	s.fillOwnerRatings(ctx, item)
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]domain.ItemWithImages, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.fillListingRatings(ctx, items)
	return items, nil
}

func (s *itemService) ListMyItems(ctx context.Context, ownerID string) ([]domain.ItemWithImages, error) {
	items, err := s.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.fillListingRatings(ctx, items)
	return items, nil
}

func (s *itemService) fillOwnerRatings(ctx context.Context, item *domain.ItemWithImages) {
	rating, err := s.ratingSvc.GetAverageRating(ctx, item.OwnerID)
	if err != nil {
		logger.Warn("Failed to load owner rating", "owner_id", item.OwnerID, "error", err)
		return
	}
	item.Owner.Rating = rating
}

// fillListingRatings resolves each distinct owner's average once per call.
func (s *itemService) fillListingRatings(ctx context.Context, items []domain.ItemWithImages) {
	cache := make(map[string]*float64)
	for i := range items {
		ownerID := items[i].OwnerID
		rating, ok := cache[ownerID]
		if !ok {
			var err error
			rating, err = s.ratingSvc.GetAverageRating(ctx, ownerID)
			if err != nil {
				logger.Warn("Failed to load owner rating", "owner_id", ownerID, "error", err)
				continue
			}
			cache[ownerID] = rating
		}
		items[i].Owner.Rating = rating
	}
}
