package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/SergeyBogomolovv/shoppy/internal/pgtest"
	"github.com/SergeyBogomolovv/shoppy/internal/repo"
	"github.com/SergeyBogomolovv/shoppy/internal/service"
	mocks "github.com/SergeyBogomolovv/shoppy/internal/service/mocks"
	"github.com/SergeyBogomolovv/shoppy/pkg/cache"
	"github.com/SergeyBogomolovv/shoppy/pkg/trm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// faultyOrderRepo passes every call to the real repository except the one
// named by failOn, which fails after the earlier writes of the checkout ran.
type faultyOrderRepo struct {
	service.OrderRepo
	failOn string
}

var errInjected = errors.New("injected failure")

func (r faultyOrderRepo) SaveItems(ctx context.Context, orderID int64, items []entities.OrderItem) ([]entities.OrderItem, error) {
	if r.failOn == "SaveItems" {
		return nil, errInjected
	}
	return r.OrderRepo.SaveItems(ctx, orderID, items)
}

func (r faultyOrderRepo) DeleteCart(ctx context.Context, cartID string) error {
	if r.failOn == "DeleteCart" {
		return errInjected
	}
	return r.OrderRepo.DeleteCart(ctx, cartID)
}

func TestCheckout_Postgres(t *testing.T) {
	db := pgtest.Open(t)
	fx := pgtest.NewFixtures(t, db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	r := repo.NewPostgresRepo(db)
	publisher := mocks.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil).Maybe()

	carts := service.NewCartService(logger, r, r)
	orders := service.NewOrderService(logger, trm.NewManager(db, nil), r, r, cache.NewLRUCache(100, time.Minute), publisher)

	userID := fx.User()
	p1 := fx.Product("10.00", "USD")
	p2 := fx.Product("5.00", "USD")

	t.Run("places order and snapshots prices", func(t *testing.T) {
		cart, err := carts.CreateCart(ctx)
		require.NoError(t, err)
		_, err = carts.AddItem(ctx, cart.ID, p1, 2)
		require.NoError(t, err)
		_, err = carts.AddItem(ctx, cart.ID, p2, 1)
		require.NoError(t, err)

		order, err := orders.CreateOrder(ctx, cart.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPreparing, order.Status)
		assert.True(t, decimal.NewFromInt(25).Equal(order.Total().Amount))

		_, err = carts.GetCart(ctx, cart.ID)
		assert.ErrorIs(t, err, entities.ErrCartNotFound)

		fx.SetPrice(p1, "99.00")
		stored, err := r.GetOrderByID(ctx, order.ID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(25).Equal(stored.Total().Amount))
		fx.SetPrice(p1, "10.00")
	})

	t.Run("unknown user rolls back and keeps cart", func(t *testing.T) {
		cart, err := carts.CreateCart(ctx)
		require.NoError(t, err)
		_, err = carts.AddItem(ctx, cart.ID, p1, 1)
		require.NoError(t, err)

		before := fx.Count(`SELECT COUNT(*) FROM order_items WHERE product_id = $1`, p1)
		_, err = orders.CreateOrder(ctx, cart.ID, -1)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Equal(t, before, fx.Count(`SELECT COUNT(*) FROM order_items WHERE product_id = $1`, p1))

		got, err := carts.GetCart(ctx, cart.ID)
		require.NoError(t, err)
		assert.Len(t, got.Items, 1)
	})

	for _, failOn := range []string{"SaveItems", "DeleteCart"} {
		t.Run("failing "+failOn+" leaves no partial order", func(t *testing.T) {
			faulty := service.NewOrderService(logger, trm.NewManager(db, nil), faultyOrderRepo{OrderRepo: r, failOn: failOn},
				r, cache.NewLRUCache(100, time.Minute), publisher)
			buyer := fx.User()
			product := fx.Product("3.00", "USD")

			cart, err := carts.CreateCart(ctx)
			require.NoError(t, err)
			_, err = carts.AddItem(ctx, cart.ID, p1, 2)
			require.NoError(t, err)
			_, err = carts.AddItem(ctx, cart.ID, product, 4)
			require.NoError(t, err)

			_, err = faulty.CreateOrder(ctx, cart.ID, buyer)
			assert.ErrorIs(t, err, entities.ErrTransactionFailed)
			assert.ErrorIs(t, err, errInjected)

			assert.Equal(t, 0, fx.Count(`SELECT COUNT(*) FROM orders WHERE user_id = $1`, buyer))
			assert.Equal(t, 0, fx.Count(`SELECT COUNT(*) FROM order_items WHERE product_id = $1`, product))

			got, err := carts.GetCart(ctx, cart.ID)
			require.NoError(t, err)
			require.Len(t, got.Items, 2)
			quantities := map[int64]int{}
			for _, it := range got.Items {
				quantities[it.Product.ID] = it.Quantity
			}
			assert.Equal(t, map[int64]int{p1: 2, product: 4}, quantities)
		})
	}

	t.Run("concurrent checkouts of one cart", func(t *testing.T) {
		cart, err := carts.CreateCart(ctx)
		require.NoError(t, err)
		_, err = carts.AddItem(ctx, cart.ID, p2, 3)
		require.NoError(t, err)

		var placed, rejected atomic.Int32
		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < 2; i++ {
			g.Go(func() error {
				_, err := orders.CreateOrder(gctx, cart.ID, userID)
				var ve *entities.ValidationError
				switch {
				case err == nil:
					placed.Add(1)
				case errors.As(err, &ve) && ve.Field == "cart_id":
					rejected.Add(1)
				default:
					return err
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, int32(1), placed.Load())
		assert.Equal(t, int32(1), rejected.Load())
	})
}
