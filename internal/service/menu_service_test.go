package service

import (
	"context"
	"net/http"
	"testing"

	apperrors "github.com/savory/restaurant-service/pkg/util"
)

func TestMenuSearchRespectsAvailability(t *testing.T) {
	menu := newMemMenuRepo()
	svc := NewMenuService(menu)
	ctx := context.Background()

	item, err := svc.Create(ctx, MenuItemInput{
		Name:        "Grilled Salmon",
		Category:    "main-course",
		Description: "Fresh Atlantic salmon with lemon",
		Price:       24.99,
		Available:   true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Case-insensitive substring over name and description.
	for _, search := range []string{"salmon", "SALMON", "lemon"} {
		items, err := svc.List(ctx, "", search)
		if err != nil {
			t.Fatalf("List(%q): %v", search, err)
		}
		if len(items) != 1 || items[0].ID != item.ID {
			t.Errorf("search %q: got %d items, want the created one", search, len(items))
		}
	}

	if items, _ := svc.List(ctx, "", "pizza"); len(items) != 0 {
		t.Errorf("search pizza: got %d items, want 0", len(items))
	}
	if items, _ := svc.List(ctx, "desserts", ""); len(items) != 0 {
		t.Errorf("category desserts: got %d items, want 0", len(items))
	}

	// Marking the item unavailable removes it from every listing.
	if err := svc.Update(ctx, item.ID, MenuItemInput{
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		Price:       item.Price,
		Available:   false,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if items, _ := svc.List(ctx, "", "salmon"); len(items) != 0 {
		t.Errorf("unavailable item still listed")
	}
}

func TestMenuPopularLimit(t *testing.T) {
	menu := newMemMenuRepo()
	svc := NewMenuService(menu)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		if _, err := svc.Create(ctx, MenuItemInput{
			Name:        "Dish " + string(rune('A'+i)),
			Category:    "main-course",
			Description: "d",
			Price:       10,
			Available:   true,
			Popular:     true,
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	items, err := svc.Popular(ctx)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if len(items) != 6 {
		t.Errorf("got %d popular items, want 6", len(items))
	}
}

func TestMenuUpdateMissingItem(t *testing.T) {
	svc := NewMenuService(newMemMenuRepo())
	ctx := context.Background()

	err := svc.Update(ctx, "no-such-id", MenuItemInput{Name: "x", Category: "c", Description: "d", Price: 1})
	if de := apperrors.ToDomainError(err); de == nil || de.HTTPStatus != http.StatusNotFound {
		t.Errorf("got %v, want 404", err)
	}

	err = svc.Delete(ctx, "no-such-id")
	if de := apperrors.ToDomainError(err); de == nil || de.HTTPStatus != http.StatusNotFound {
		t.Errorf("delete: got %v, want 404", err)
	}
}

func TestMenuRejectsNegativePrice(t *testing.T) {
	svc := NewMenuService(newMemMenuRepo())

	_, err := svc.Create(context.Background(), MenuItemInput{Name: "x", Category: "c", Description: "d", Price: -1})
	if de := apperrors.ToDomainError(err); de == nil || de.HTTPStatus != http.StatusBadRequest {
		t.Errorf("got %v, want 400", err)
	}
}
