package repo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/SergeyBogomolovv/shoppy/internal/pgtest"
	"github.com/SergeyBogomolovv/shoppy/internal/repo"
	"github.com/SergeyBogomolovv/shoppy/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepo(t *testing.T) {
	db := pgtest.Open(t)
	fx := pgtest.NewFixtures(t, db)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	productID := fx.Product("10.00", "USD")

	t.Run("add merges quantities into one line", func(t *testing.T) {
		cart, err := r.CreateCart(ctx, uuid.NewString())
		require.NoError(t, err)

		_, err = r.AddItem(ctx, cart.ID, productID, 2)
		require.NoError(t, err)
		item, err := r.AddItem(ctx, cart.ID, productID, 3)
		require.NoError(t, err)

		assert.Equal(t, 5, item.Quantity)
		assert.Equal(t, productID, item.Product.ID)
		assert.Equal(t, 1, fx.Count(`SELECT COUNT(*) FROM cart_items WHERE cart_id = $1`, cart.ID))

		got, err := r.GetCart(ctx, cart.ID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.True(t, decimal.NewFromInt(50).Equal(got.Total().Amount))
	})

	t.Run("add to missing cart or product", func(t *testing.T) {
		_, err := r.AddItem(ctx, uuid.NewString(), productID, 1)
		assert.ErrorIs(t, err, entities.ErrCartNotFound)

		cart, err := r.CreateCart(ctx, uuid.NewString())
		require.NoError(t, err)
		_, err = r.AddItem(ctx, cart.ID, -1, 1)
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})

	t.Run("update and remove items", func(t *testing.T) {
		cart, err := r.CreateCart(ctx, uuid.NewString())
		require.NoError(t, err)

		_, err = r.UpdateItemQuantity(ctx, cart.ID, productID, 4)
		assert.ErrorIs(t, err, entities.ErrCartItemNotFound)

		_, err = r.AddItem(ctx, cart.ID, productID, 1)
		require.NoError(t, err)
		item, err := r.UpdateItemQuantity(ctx, cart.ID, productID, 4)
		require.NoError(t, err)
		assert.Equal(t, 4, item.Quantity)

		require.NoError(t, r.RemoveItem(ctx, cart.ID, productID))
		require.NoError(t, r.RemoveItem(ctx, cart.ID, productID))

		items, err := r.ListCartItems(ctx, cart.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("merged quantity above limit", func(t *testing.T) {
		cart, err := r.CreateCart(ctx, uuid.NewString())
		require.NoError(t, err)

		_, err = r.AddItem(ctx, cart.ID, productID, 32000)
		require.NoError(t, err)

		_, err = r.AddItem(ctx, cart.ID, productID, 1000)
		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "quantity", ve.Field)

		_, err = r.UpdateItemQuantity(ctx, cart.ID, productID, entities.MaxQuantity+1)
		require.ErrorAs(t, err, &ve)

		items, err := r.ListCartItems(ctx, cart.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 32000, items[0].Quantity)
	})

	t.Run("line edits wait for checkout lock", func(t *testing.T) {
		cart, err := r.CreateCart(ctx, uuid.NewString())
		require.NoError(t, err)
		_, err = r.AddItem(ctx, cart.ID, productID, 1)
		require.NoError(t, err)

		updateErr := make(chan error, 1)
		err = trm.NewManager(db, nil).Do(ctx, func(txCtx context.Context) error {
			if err := r.LockCart(txCtx, cart.ID); err != nil {
				return err
			}
			go func() {
				_, err := r.UpdateItemQuantity(ctx, cart.ID, productID, 7)
				updateErr <- err
			}()

			select {
			case err := <-updateErr:
				t.Errorf("update finished while cart was locked: %v", err)
			case <-time.After(200 * time.Millisecond):
			}
			return r.DeleteCart(txCtx, cart.ID)
		})
		require.NoError(t, err)

		select {
		case err := <-updateErr:
			assert.ErrorIs(t, err, entities.ErrCartItemNotFound)
		case <-time.After(5 * time.Second):
			t.Fatal("update still blocked after checkout committed")
		}
		assert.Equal(t, 0, fx.Count(`SELECT COUNT(*) FROM cart_items WHERE cart_id = $1`, cart.ID))
	})

	t.Run("delete cascades to items", func(t *testing.T) {
		cart, err := r.CreateCart(ctx, uuid.NewString())
		require.NoError(t, err)
		_, err = r.AddItem(ctx, cart.ID, productID, 1)
		require.NoError(t, err)

		require.NoError(t, r.DeleteCart(ctx, cart.ID))
		assert.Equal(t, 0, fx.Count(`SELECT COUNT(*) FROM cart_items WHERE cart_id = $1`, cart.ID))

		_, err = r.GetCart(ctx, cart.ID)
		assert.ErrorIs(t, err, entities.ErrCartNotFound)
		assert.ErrorIs(t, r.DeleteCart(ctx, cart.ID), entities.ErrCartNotFound)

		exists, err := r.CartExists(ctx, cart.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestOrderRepo(t *testing.T) {
	db := pgtest.Open(t)
	fx := pgtest.NewFixtures(t, db)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	userID := fx.User()
	productID := fx.Product("100.00", "USD")

	t.Run("saved order keeps unit price snapshot", func(t *testing.T) {
		order, err := r.SaveOrder(ctx, userID, entities.StatusPreparing)
		require.NoError(t, err)
		assert.NotZero(t, order.ID)
		assert.False(t, order.PlacedAt.IsZero())

		product, err := r.GetProduct(ctx, productID)
		require.NoError(t, err)
		items := []entities.OrderItem{{Product: product, UnitPrice: product.Price, Quantity: 2}}
		saved, err := r.SaveItems(ctx, order.ID, items)
		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.NotZero(t, saved[0].ID)
		assert.Equal(t, order.ID, saved[0].OrderID)

		fx.SetPrice(productID, "200.00")

		got, err := r.GetOrderByID(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.True(t, decimal.NewFromInt(200).Equal(got.Total().Amount))
		assert.True(t, decimal.NewFromInt(200).Equal(got.Items[0].Product.Price.Amount))
		assert.True(t, decimal.NewFromInt(100).Equal(got.Items[0].UnitPrice.Amount))
		assert.Equal(t, entities.StatusPreparing, got.Status)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := r.SaveOrder(ctx, -1, entities.StatusPreparing)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("update status and list", func(t *testing.T) {
		order, err := r.SaveOrder(ctx, userID, entities.StatusPreparing)
		require.NoError(t, err)

		require.NoError(t, r.UpdateStatus(ctx, order.ID, entities.StatusSent))
		assert.ErrorIs(t, r.UpdateStatus(ctx, -1, entities.StatusSent), entities.ErrOrderNotFound)

		orders, err := r.ListOrders(ctx, userID, 0)
		require.NoError(t, err)
		require.NotEmpty(t, orders)
		assert.Equal(t, order.ID, orders[0].ID)
		assert.Equal(t, entities.StatusSent, orders[0].Status)
		for _, o := range orders {
			assert.Equal(t, userID, o.UserID)
		}

		_, err = r.GetOrderByID(ctx, -1)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("rolled back transaction leaves nothing behind", func(t *testing.T) {
		before := fx.Count(`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID)
		errBoom := errors.New("boom")

		err := trm.NewManager(db, nil).Do(ctx, func(ctx context.Context) error {
			if _, err := r.SaveOrder(ctx, userID, entities.StatusPreparing); err != nil {
				return err
			}
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, before, fx.Count(`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID))
	})
}

func TestProductRepo(t *testing.T) {
	db := pgtest.Open(t)
	fx := pgtest.NewFixtures(t, db)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	cheap := fx.Product("1.00", "USD")
	pricey := fx.Product("999.00", "USD")

	product, err := r.GetProduct(ctx, cheap)
	require.NoError(t, err)
	assert.Equal(t, "USD", product.Price.Currency)
	assert.NotZero(t, product.Brand.ID)

	_, err = r.GetProduct(ctx, -1)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)

	gte := decimal.NewFromInt(500)
	products, err := r.ListProducts(ctx, entities.ProductFilter{
		PriceGTE: &gte,
		Ordering: entities.OrderByPriceDesc,
		Limit:    100,
	})
	require.NoError(t, err)
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		assert.True(t, p.Price.Amount.GreaterThanOrEqual(gte))
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, pricey)
	assert.NotContains(t, ids, cheap)

	products, err = r.ListProducts(ctx, entities.ProductFilter{BrandID: product.Brand.ID})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, cheap, products[0].ID)

	_, err = db.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, product.Brand.ID)
	assert.Error(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, product.Category.ID)
	assert.Error(t, err)
	_, err = r.GetProduct(ctx, cheap)
	assert.NoError(t, err)
}

func TestUserRepo(t *testing.T) {
	db := pgtest.Open(t)
	fx := pgtest.NewFixtures(t, db)
	r := repo.NewPostgresRepo(db)

	id := fx.User()
	user, err := r.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	_, err = r.GetUserByID(context.Background(), -1)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}
