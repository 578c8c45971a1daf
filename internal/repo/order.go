package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderItemColumns = append([]string{
	"oi.id AS item_id", "oi.order_id", "oi.quantity", "oi.unit_price", "oi.unit_price_currency",
}, productColumns...)

// SaveOrder inserts the order header. Id and placed_at are assigned by the database.
func (r *postgresRepo) SaveOrder(ctx context.Context, userID int64, status entities.Status) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("user_id", "status").
		Values(userID, string(status)).
		Suffix("RETURNING id, user_id, placed_at, status").
		MustSql()

	var order Order
	if err := r.getContext(ctx, &order, query, args...); err != nil {
		if isForeignKeyViolation(err, "orders_user_id_fkey") {
			return entities.Order{}, entities.ErrUserNotFound
		}
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	return OrderToEntity(order, nil), nil
}

// SaveItems writes all lines of an order with a single statement and returns
// them with their assigned ids.
func (r *postgresRepo) SaveItems(ctx context.Context, orderID int64, items []entities.OrderItem) ([]entities.OrderItem, error) {
	if len(items) == 0 {
		return []entities.OrderItem{}, nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "unit_price", "unit_price_currency").
		Suffix("RETURNING id")

	for _, it := range items {
		q = q.Values(
			orderID,
			it.Product.ID,
			it.Quantity,
			it.UnitPrice.Amount,
			it.UnitPrice.Currency,
		)
	}

	query, args := q.MustSql()

	var ids []int64
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to save items: %w", err)
	}
	if len(ids) != len(items) {
		return nil, fmt.Errorf("failed to save items: inserted %d of %d", len(ids), len(items))
	}

	saved := make([]entities.OrderItem, len(items))
	for i, it := range items {
		it.ID = ids[i]
		it.OrderID = orderID
		saved[i] = it
	}
	return saved, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.qb.Select("id", "user_id", "placed_at", "status").
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	itemsMap, err := r.selectOrderItems(ctx, []int64{id})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, itemsMap[id]), nil
}

// ListOrders returns orders newest first. A zero userID lists orders of
// every user, a zero limit returns all rows.
func (r *postgresRepo) ListOrders(ctx context.Context, userID int64, limit uint64) ([]entities.Order, error) {
	q := r.qb.Select("id", "user_id", "placed_at", "status").
		From("orders").
		OrderBy("placed_at DESC", "id DESC")
	if userID > 0 {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	itemsMap, err := r.selectOrderItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

func (r *postgresRepo) selectOrderItems(ctx context.Context, orderIDs []int64) (map[int64][]OrderItem, error) {
	query, args := joinCatalog(r.qb.Select(orderItemColumns...).
		From("order_items oi").
		Join("products p ON p.id = oi.product_id")).
		Where(sq.Eq{"oi.order_id": orderIDs}).
		OrderBy("oi.id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[int64][]OrderItem, len(orderIDs))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}
	return itemsMap, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status entities.Status) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
