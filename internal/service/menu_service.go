package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/savory/restaurant-service/internal/domain"
	"github.com/savory/restaurant-service/internal/repository"
	apperrors "github.com/savory/restaurant-service/pkg/util"
)

const popularItemLimit = 6

// MenuItemInput carries the writable fields of a menu item.
type MenuItemInput struct {
	Name        string
	Category    string
	Description string
	Price       float64
	Image       string
	Available   bool
	Popular     bool
}

// MenuService manages the menu catalogue.
type MenuService struct {
	menu repository.MenuRepository
}

// NewMenuService builds the service.
func NewMenuService(menu repository.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

// Create adds a new menu item.
func (s *MenuService) Create(ctx context.Context, input MenuItemInput) (*domain.MenuItem, error) {
	if input.Price < 0 {
		return nil, apperrors.NewValidationError("price must be non-negative", nil)
	}
	item := &domain.MenuItem{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Available:   input.Available,
		Popular:     input.Popular,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.menu.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns available items, optionally narrowed by category and a
// case-insensitive search over name and description.
func (s *MenuService) List(ctx context.Context, category, search string) ([]domain.MenuItem, error) {
	return s.menu.List(ctx, repository.MenuFilter{Category: category, Search: search})
}

// Popular returns up to six available items flagged popular.
func (s *MenuService) Popular(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.List(ctx, repository.MenuFilter{PopularOnly: true, Limit: popularItemLimit})
}

// Update overwrites the writable fields of an item.
func (s *MenuService) Update(ctx context.Context, id string, input MenuItemInput) error {
	if input.Price < 0 {
		return apperrors.NewValidationError("price must be non-negative", nil)
	}
	fields := map[string]any{
		"name":        input.Name,
		"category":    input.Category,
		"description": input.Description,
		"price":       input.Price,
		"image":       input.Image,
		"available":   input.Available,
		"popular":     input.Popular,
	}
	if err := s.menu.Update(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("menu item", nil)
		}
		return err
	}
	return nil
}

// Delete removes an item.
func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.menu.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("menu item", nil)
		}
		return err
	}
	return nil
}
