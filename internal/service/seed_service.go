package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/savory/restaurant-service/internal/auth"
	"github.com/savory/restaurant-service/internal/domain"
	"github.com/savory/restaurant-service/internal/repository"
)

// SeedService loads the demo data set: an admin account, a customer
// account and a starter menu. Seeding is idempotent; existing records
// are never overwritten.
type SeedService struct {
	users      repository.UserRepository
	menu       repository.MenuRepository
	bcryptCost int
	logger     *zap.Logger
}

// NewSeedService builds the service.
func NewSeedService(users repository.UserRepository, menu repository.MenuRepository, bcryptCost int, logger *zap.Logger) *SeedService {
	return &SeedService{users: users, menu: menu, bcryptCost: bcryptCost, logger: logger}
}

type seedUser struct {
	name     string
	email    string
	password string
	phone    string
	role     domain.Role
}

var demoUsers = []seedUser{
	{name: "Admin User", email: "admin@savory.com", password: "savory@admin", phone: "+1234567890", role: domain.RoleAdmin},
	{name: "User", email: "user@savory.com", password: "savory@user", phone: "+1234567891", role: domain.RoleCustomer},
}

var demoMenuItems = []domain.MenuItem{
	{
		Name:        "Grilled Salmon",
		Category:    "main-course",
		Description: "Fresh Atlantic salmon grilled to perfection with herbs and lemon",
		Price:       24.99,
		Image:       "https://images.pexels.com/photos/1516415/pexels-photo-1516415.jpeg?auto=compress&cs=tinysrgb&w=600",
		Available:   true,
		Popular:     true,
	},
	{
		Name:        "Caesar Salad",
		Category:    "starters",
		Description: "Crisp romaine lettuce with parmesan cheese and our signature dressing",
		Price:       12.99,
		Image:       "https://images.pexels.com/photos/2097090/pexels-photo-2097090.jpeg?auto=compress&cs=tinysrgb&w=600",
		Available:   true,
		Popular:     true,
	},
	{
		Name:        "Beef Steak",
		Category:    "main-course",
		Description: "Premium beef steak cooked to your liking with roasted vegetables",
		Price:       32.99,
		Image:       "https://images.pexels.com/photos/769289/pexels-photo-769289.jpeg?auto=compress&cs=tinysrgb&w=600",
		Available:   true,
		Popular:     true,
	},
	{
		Name:        "Chocolate Cake",
		Category:    "desserts",
		Description: "Rich chocolate cake with layers of creamy frosting",
		Price:       8.99,
		Image:       "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg?auto=compress&cs=tinysrgb&w=600",
		Available:   true,
	},
	{
		Name:        "Fresh Orange Juice",
		Category:    "beverages",
		Description: "Freshly squeezed orange juice",
		Price:       4.99,
		Image:       "https://images.pexels.com/photos/96974/pexels-photo-96974.jpeg?auto=compress&cs=tinysrgb&w=600",
		Available:   true,
	},
	{
		Name:        "Chicken Wings",
		Category:    "starters",
		Description: "Spicy buffalo wings served with blue cheese dip",
		Price:       14.99,
		Image:       "https://images.pexels.com/photos/60616/fried-chicken-chicken-fried-crunchy-60616.jpeg?auto=compress&cs=tinysrgb&w=600",
		Available:   true,
		Popular:     true,
	},
}

// Seed creates the demo users and, when the menu is empty, the starter
// menu items.
func (s *SeedService) Seed(ctx context.Context) error {
	for _, demo := range demoUsers {
		if _, err := s.users.GetByEmail(ctx, demo.email); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		hash, err := auth.HashPassword(demo.password, s.bcryptCost)
		if err != nil {
			return err
		}
		user := &domain.User{
			ID:           uuid.NewString(),
			Name:         demo.name,
			Email:        demo.email,
			PasswordHash: hash,
			Phone:        demo.phone,
			Role:         demo.role,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.users.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return err
		}
		s.logger.Info("seeded user", zap.String("email", demo.email), zap.String("role", string(demo.role)))
	}

	count, err := s.menu.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, demo := range demoMenuItems {
		item := demo
		item.ID = uuid.NewString()
		item.CreatedAt = time.Now().UTC()
		if err := s.menu.Create(ctx, &item); err != nil {
			return err
		}
	}
	s.logger.Info("seeded menu items", zap.Int("count", len(demoMenuItems)))
	return nil
}
