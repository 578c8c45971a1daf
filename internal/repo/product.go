package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var productColumns = []string{
	"p.id", "p.title", "p.description", "p.price", "p.price_currency", "p.color", "p.size",
	"b.id AS brand_id", "b.name AS brand_name", "c.id AS category_id", "c.name AS category_name",
}

// joinCatalog adds the brand and category joins to a query that selects from "products p".
func joinCatalog(b sq.SelectBuilder) sq.SelectBuilder {
	return b.Join("brands b ON b.id = p.brand_id").
		Join("categories c ON c.id = p.category_id")
}

func (r *postgresRepo) GetProduct(ctx context.Context, id int64) (entities.Product, error) {
	query, args := joinCatalog(r.qb.Select(productColumns...).From("products p")).
		Where(sq.Eq{"p.id": id}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	q := joinCatalog(r.qb.Select(productColumns...).From("products p"))

	if f.BrandID > 0 {
		q = q.Where(sq.Eq{"p.brand_id": f.BrandID})
	}
	if f.CategoryID > 0 {
		q = q.Where(sq.Eq{"p.category_id": f.CategoryID})
	}
	if f.Color != "" {
		q = q.Where(sq.Eq{"p.color": f.Color})
	}
	if f.PriceGTE != nil {
		q = q.Where(sq.GtOrEq{"p.price": *f.PriceGTE})
	}
	if f.PriceLTE != nil {
		q = q.Where(sq.LtOrEq{"p.price": *f.PriceLTE})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"p.title": pattern},
			sq.ILike{"p.description": pattern},
		})
	}

	switch f.Ordering {
	case entities.OrderByPriceAsc:
		q = q.OrderBy("p.price ASC", "p.id DESC")
	case entities.OrderByPriceDesc:
		q = q.OrderBy("p.price DESC", "p.id DESC")
	default:
		q = q.OrderBy("p.id DESC")
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	query, args := q.MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}
