package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/SergeyBogomolovv/shoppy/pkg/trm"
	"github.com/SergeyBogomolovv/shoppy/pkg/utils"
)

const (
	reasonNoCart    = "No cart with the given ID was found."
	reasonEmptyCart = "The cart is empty."
)

type OrderRepo interface {
	// LockCart must be called inside a transaction.
	LockCart(ctx context.Context, cartID string) error
	ListCartItems(ctx context.Context, cartID string) ([]entities.CartItem, error)
	DeleteCart(ctx context.Context, cartID string) error

	SaveOrder(ctx context.Context, userID int64, status entities.Status) (entities.Order, error)
	SaveItems(ctx context.Context, orderID int64, items []entities.OrderItem) ([]entities.OrderItem, error)

	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	ListOrders(ctx context.Context, userID int64, limit uint64) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entities.Status) error
}

type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (entities.User, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order entities.Order) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	users     UserGetter
	cache     Cache
	publisher EventPublisher
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	users UserGetter,
	cache Cache,
	publisher EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		users:     users,
		cache:     cache,
		publisher: publisher,
	}
}

func orderKey(id int64) string {
	return "order:" + strconv.FormatInt(id, 10)
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// CreateOrder converts a cart into an order in one transaction. Unit prices
// are copied from the current product prices and the cart is deleted last.
// Validation and not-found failures are returned as is, everything else is
// wrapped in ErrTransactionFailed.
func (s *orderService) CreateOrder(ctx context.Context, cartID string, userID int64) (entities.Order, error) {
	id, ok := normalizeCartID(cartID)
	if !ok {
		checkoutsTotal.WithLabelValues("rejected").Inc()
		return entities.Order{}, entities.NewValidationError("cart_id", reasonNoCart)
	}

	start := time.Now()
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.LockCart(ctx, id); err != nil {
			if errors.Is(err, entities.ErrCartNotFound) {
				return entities.NewValidationError("cart_id", reasonNoCart)
			}
			return fmt.Errorf("failed to lock cart: %w", err)
		}

		cartItems, err := s.repo.ListCartItems(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to list cart items: %w", err)
		}
		if len(cartItems) == 0 {
			return entities.NewValidationError("cart_id", reasonEmptyCart)
		}

		if _, err := s.users.GetUserByID(ctx, userID); err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		saved, err := s.repo.SaveOrder(ctx, userID, entities.StatusPreparing)
		if err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		items := make([]entities.OrderItem, 0, len(cartItems))
		for _, ci := range cartItems {
			items = append(items, entities.OrderItem{
				OrderID:   saved.ID,
				Product:   ci.Product,
				UnitPrice: ci.Product.Price,
				Quantity:  ci.Quantity,
			})
		}

		saved.Items, err = s.repo.SaveItems(ctx, saved.ID, items)
		if err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}

		if err := s.repo.DeleteCart(ctx, id); err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}

		order = saved
		return nil
	})
	checkoutDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if entities.IsDomainError(err) {
			checkoutsTotal.WithLabelValues("rejected").Inc()
			return entities.Order{}, err
		}
		checkoutsTotal.WithLabelValues("failed").Inc()
		s.logger.ErrorContext(ctx, "checkout failed", slog.String("cart_id", id), slog.Any("error", err))
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrTransactionFailed, err)
	}

	checkoutsTotal.WithLabelValues("placed").Inc()
	s.logger.Debug("order placed", slog.Int64("order_id", order.ID), slog.String("cart_id", id))

	s.cacheOrder(ctx, order)
	if err := s.publisher.PublishOrderPlaced(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order placed event", slog.Int64("order_id", order.ID), slog.Any("error", err))
	}

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	if data, ok := s.cache.Get(ctx, orderKey(id)); ok {
		orderCacheLookups.WithLabelValues("hit").Inc()
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.Int64("order_id", id), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}
	orderCacheLookups.WithLabelValues("miss").Inc()

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(ctx, order)
	return order, nil
}

// ListOrders returns the orders of userID, or of every user when all is set.
func (s *orderService) ListOrders(ctx context.Context, userID int64, all bool) ([]entities.Order, error) {
	if all {
		userID = 0
	}
	orders, err := s.repo.ListOrders(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets any valid status. There is no transition graph.
// The order is read back in the same transaction and written over any cached
// copy, so readers never see the previous status once this returns.
func (s *orderService) UpdateStatus(ctx context.Context, id int64, rawStatus string) (entities.Order, error) {
	status, err := entities.ParseStatus(rawStatus)
	if err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		reloaded, err := s.repo.GetOrderByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to reload order: %w", err)
		}
		order = reloaded
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(ctx, order)
	s.logger.Debug("order status updated", slog.Int64("order_id", id), slog.String("status", string(status)))
	return order, nil
}

// WarmUpCache loads the most recent orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.ListOrders(ctx, 0, uint64(count))
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(ctx, order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) cacheOrder(ctx context.Context, order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Int64("order_id", order.ID), slog.Any("error", err))
		s.cache.Delete(ctx, orderKey(order.ID))
		return
	}
	s.cache.Set(ctx, orderKey(order.ID), data)
}
