package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/google/uuid"
)

type CartRepo interface {
	CreateCart(ctx context.Context, id string) (entities.Cart, error)
	GetCart(ctx context.Context, id string) (entities.Cart, error)
	CartExists(ctx context.Context, id string) (bool, error)
	DeleteCart(ctx context.Context, id string) error
	ListCartItems(ctx context.Context, cartID string) ([]entities.CartItem, error)

	// AddItem adds quantity to an existing line for the same product.
	AddItem(ctx context.Context, cartID string, productID int64, quantity int) (entities.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID string, productID int64, quantity int) (entities.CartItem, error)
	RemoveItem(ctx context.Context, cartID string, productID int64) error
}

type ProductGetter interface {
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
}

type cartService struct {
	logger  *slog.Logger
	repo    CartRepo
	catalog ProductGetter
}

func NewCartService(logger *slog.Logger, repo CartRepo, catalog ProductGetter) *cartService {
	return &cartService{
		logger:  logger.With(slog.String("service", "cart")),
		repo:    repo,
		catalog: catalog,
	}
}

// normalizeCartID returns the canonical form of a cart id. Anything that is
// not a UUID cannot name a cart.
func normalizeCartID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func (s *cartService) CreateCart(ctx context.Context) (entities.Cart, error) {
	cart, err := s.repo.CreateCart(ctx, uuid.NewString())
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}
	s.logger.Debug("cart created", slog.String("cart_id", cart.ID))
	return cart, nil
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (entities.Cart, error) {
	id, ok := normalizeCartID(cartID)
	if !ok {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	return s.repo.GetCart(ctx, id)
}

func (s *cartService) DeleteCart(ctx context.Context, cartID string) error {
	id, ok := normalizeCartID(cartID)
	if !ok {
		return entities.ErrCartNotFound
	}
	return s.repo.DeleteCart(ctx, id)
}

func (s *cartService) ListItems(ctx context.Context, cartID string) ([]entities.CartItem, error) {
	id, err := s.existingCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListCartItems(ctx, id)
}

func (s *cartService) AddItem(ctx context.Context, cartID string, productID int64, quantity int) (entities.CartItem, error) {
	if err := entities.ValidateQuantity(quantity); err != nil {
		return entities.CartItem{}, err
	}

	id, err := s.existingCart(ctx, cartID)
	if err != nil {
		return entities.CartItem{}, err
	}

	if _, err := s.catalog.GetProduct(ctx, productID); err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to get product: %w", err)
	}

	item, err := s.repo.AddItem(ctx, id, productID, quantity)
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to add item: %w", err)
	}
	return item, nil
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, cartID string, productID int64, quantity int) (entities.CartItem, error) {
	if err := entities.ValidateQuantity(quantity); err != nil {
		return entities.CartItem{}, err
	}

	id, ok := normalizeCartID(cartID)
	if !ok {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}

	item, err := s.repo.UpdateItemQuantity(ctx, id, productID, quantity)
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartID string, productID int64) error {
	id, ok := normalizeCartID(cartID)
	if !ok {
		return nil
	}
	if err := s.repo.RemoveItem(ctx, id, productID); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	return nil
}

func (s *cartService) existingCart(ctx context.Context, cartID string) (string, error) {
	id, ok := normalizeCartID(cartID)
	if !ok {
		return "", entities.ErrCartNotFound
	}

	exists, err := s.repo.CartExists(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to check cart: %w", err)
	}
	if !exists {
		return "", entities.ErrCartNotFound
	}
	return id, nil
}
