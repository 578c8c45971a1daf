package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var cartItemColumns = append([]string{"ci.id AS item_id", "ci.cart_id", "ci.quantity"}, productColumns...)

func (r *postgresRepo) cartItemsQuery() sq.SelectBuilder {
	return joinCatalog(r.qb.Select(cartItemColumns...).
		From("cart_items ci").
		Join("products p ON p.id = ci.product_id"))
}

func (r *postgresRepo) CreateCart(ctx context.Context, id string) (entities.Cart, error) {
	query, args := r.qb.Insert("carts").
		Columns("id").
		Values(id).
		Suffix("RETURNING id, created_at").
		MustSql()

	var cart Cart
	if err := r.getContext(ctx, &cart, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}
	return CartToEntity(cart, nil), nil
}

func (r *postgresRepo) GetCart(ctx context.Context, id string) (entities.Cart, error) {
	query, args := r.qb.Select("id", "created_at").
		From("carts").
		Where(sq.Eq{"id": id}).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	items, err := r.selectCartItems(ctx, id)
	if err != nil {
		return entities.Cart{}, err
	}
	return CartToEntity(cart, items), nil
}

func (r *postgresRepo) CartExists(ctx context.Context, id string) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("carts").
		Where(sq.Eq{"id": id}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check cart: %w", err)
	}
	return exists, nil
}

// LockCart takes a row lock on the cart for the rest of the surrounding
// transaction. A concurrent checkout of the same cart blocks here until the
// first one commits, then sees the cart gone.
func (r *postgresRepo) LockCart(ctx context.Context, id string) error {
	query, args := r.qb.Select("id").
		From("carts").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		MustSql()

	var locked string
	err := r.getContext(ctx, &locked, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrCartNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock cart: %w", err)
	}
	return nil
}

// DeleteCart removes the cart, its items go with it via ON DELETE CASCADE.
func (r *postgresRepo) DeleteCart(ctx context.Context, id string) error {
	query, args := r.qb.Delete("carts").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	if affected == 0 {
		return entities.ErrCartNotFound
	}
	return nil
}

func (r *postgresRepo) ListCartItems(ctx context.Context, cartID string) ([]entities.CartItem, error) {
	items, err := r.selectCartItems(ctx, cartID)
	if err != nil {
		return nil, err
	}

	result := make([]entities.CartItem, 0, len(items))
	for _, it := range items {
		result = append(result, CartItemToEntity(it))
	}
	return result, nil
}

func (r *postgresRepo) selectCartItems(ctx context.Context, cartID string) ([]CartItem, error) {
	query, args := r.cartItemsQuery().
		Where(sq.Eq{"ci.cart_id": cartID}).
		OrderBy("ci.id").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}
	return items, nil
}

func (r *postgresRepo) getCartItem(ctx context.Context, cartID string, productID int64) (entities.CartItem, error) {
	query, args := r.cartItemsQuery().
		Where(sq.Eq{"ci.cart_id": cartID, "ci.product_id": productID}).
		MustSql()

	var item CartItem
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to get cart item: %w", err)
	}
	return CartItemToEntity(item), nil
}

// lockCartShared holds the cart row in share mode for the rest of the
// statement, so line edits wait for a running checkout and see its result.
const lockCartShared = "WITH locked AS (SELECT id FROM carts WHERE id = ? FOR SHARE)"

var errQuantityRange = entities.NewValidationError("quantity",
	fmt.Sprintf("Ensure this value is less than or equal to %d.", entities.MaxQuantity))

// AddItem inserts a line or, when the product is already in the cart, adds
// quantity to the existing line.
func (r *postgresRepo) AddItem(ctx context.Context, cartID string, productID int64, quantity int) (entities.CartItem, error) {
	query, args := r.qb.Insert("cart_items").
		Prefix(lockCartShared, cartID).
		Columns("cart_id", "product_id", "quantity").
		Select(sq.Select("id").
			Column("?::bigint", productID).
			Column("?::integer", quantity).
			From("locked")).
		Suffix("ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		switch {
		case isForeignKeyViolation(err, "cart_items_product_id_fkey"):
			return entities.CartItem{}, entities.ErrProductNotFound
		case isCheckViolation(err, "cart_items_quantity_check"):
			return entities.CartItem{}, errQuantityRange
		}
		return entities.CartItem{}, fmt.Errorf("failed to add cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to add cart item: %w", err)
	}
	if affected == 0 {
		return entities.CartItem{}, entities.ErrCartNotFound
	}

	return r.getCartItem(ctx, cartID, productID)
}

func (r *postgresRepo) UpdateItemQuantity(ctx context.Context, cartID string, productID int64, quantity int) (entities.CartItem, error) {
	query, args := r.qb.Update("cart_items").
		Prefix(lockCartShared, cartID).
		Set("quantity", quantity).
		Where(sq.Eq{"product_id": productID}).
		Where("cart_id IN (SELECT id FROM locked)").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		if isCheckViolation(err, "cart_items_quantity_check") {
			return entities.CartItem{}, errQuantityRange
		}
		return entities.CartItem{}, fmt.Errorf("failed to update cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to update cart item: %w", err)
	}
	if affected == 0 {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}

	return r.getCartItem(ctx, cartID, productID)
}

// RemoveItem is idempotent: removing a missing line is not an error.
func (r *postgresRepo) RemoveItem(ctx context.Context, cartID string, productID int64) error {
	query, args := r.qb.Delete("cart_items").
		Prefix(lockCartShared, cartID).
		Where(sq.Eq{"product_id": productID}).
		Where("cart_id IN (SELECT id FROM locked)").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}
