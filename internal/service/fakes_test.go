package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/savory/restaurant-service/internal/domain"
	"github.com/savory/restaurant-service/internal/repository"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if name, ok := fields["name"].(string); ok {
		user.Name = name
	}
	if phone, ok := fields["phone"].(string); ok {
		user.Phone = phone
	}
	if password, ok := fields["password"].(string); ok {
		user.PasswordHash = password
	}
	return nil
}

func (r *memUserRepo) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

type memMenuRepo struct {
	mu    sync.Mutex
	items map[string]*domain.MenuItem
}

func newMemMenuRepo() *memMenuRepo {
	return &memMenuRepo{items: make(map[string]*domain.MenuItem)}
}

func (r *memMenuRepo) Create(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

// List mirrors the Mongo query: available only, optional category,
// case-insensitive substring match on name or description.
func (r *memMenuRepo) List(_ context.Context, filter repository.MenuFilter) ([]domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MenuItem, 0)
	for _, item := range r.items {
		if !item.Available {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && item.Category != filter.Category {
			continue
		}
		if filter.PopularOnly && !item.Popular {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(item.Name), needle) &&
				!strings.Contains(strings.ToLower(item.Description), needle) {
				continue
			}
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *memMenuRepo) Update(_ context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := fields["name"].(string); ok {
		item.Name = v
	}
	if v, ok := fields["category"].(string); ok {
		item.Category = v
	}
	if v, ok := fields["description"].(string); ok {
		item.Description = v
	}
	if v, ok := fields["price"].(float64); ok {
		item.Price = v
	}
	if v, ok := fields["image"].(string); ok {
		item.Image = v
	}
	if v, ok := fields["available"].(bool); ok {
		item.Available = v
	}
	if v, ok := fields["popular"].(bool); ok {
		item.Popular = v
	}
	return nil
}

func (r *memMenuRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memMenuRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders []*domain.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{}
}

func (r *memOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *order
	r.orders = append(r.orders, &copied)
	return nil
}

func (r *memOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	return r.list(func(*domain.Order) bool { return true }), nil
}

func (r *memOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	return r.list(func(o *domain.Order) bool { return o.UserID == userID }), nil
}

func (r *memOrderRepo) list(keep func(*domain.Order) bool) []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, 0)
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out
}

func (r *memOrderRepo) SetStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

type memReservationRepo struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
}

func newMemReservationRepo() *memReservationRepo {
	return &memReservationRepo{}
}

func (r *memReservationRepo) Create(_ context.Context, reservation *domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *reservation
	r.reservations = append(r.reservations, &copied)
	return nil
}

func (r *memReservationRepo) ListAll(_ context.Context) ([]domain.Reservation, error) {
	return r.list(func(*domain.Reservation) bool { return true }), nil
}

func (r *memReservationRepo) ListByUser(_ context.Context, userID string) ([]domain.Reservation, error) {
	return r.list(func(res *domain.Reservation) bool { return res.UserID == userID }), nil
}

func (r *memReservationRepo) list(keep func(*domain.Reservation) bool) []domain.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Reservation, 0)
	for _, res := range r.reservations {
		if keep(res) {
			out = append(out, *res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *memReservationRepo) SetStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.reservations {
		if res.ID == id {
			res.Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

type memContactRepo struct {
	mu       sync.Mutex
	messages []*domain.ContactMessage
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{}
}

func (r *memContactRepo) Create(_ context.Context, message *domain.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

// failingUserRepo returns the same error from every method, standing in
// for an unreachable datastore.
type failingUserRepo struct {
	err error
}

func (r failingUserRepo) Create(context.Context, *domain.User) error { return r.err }

func (r failingUserRepo) GetByID(context.Context, string) (*domain.User, error) {
	return nil, r.err
}

func (r failingUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, r.err
}

func (r failingUserRepo) UpdateFields(context.Context, string, map[string]any) error {
	return r.err
}
