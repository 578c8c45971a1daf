package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type Catalog interface {
	ProductGetter
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
}

type productService struct {
	catalog Catalog
}

func NewProductService(catalog Catalog) *productService {
	return &productService{catalog: catalog}
}

func (s *productService) GetProduct(ctx context.Context, id int64) (entities.Product, error) {
	return s.catalog.GetProduct(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	if f.Limit == 0 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.PriceGTE != nil && f.PriceLTE != nil && f.PriceGTE.GreaterThan(*f.PriceLTE) {
		return nil, entities.NewValidationError("price", "Lower bound is greater than upper bound.")
	}

	products, err := s.catalog.ListProducts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
