package entities

import "github.com/shopspring/decimal"

type Brand struct {
	ID   int64
	Name string
}

type Category struct {
	ID   int64
	Name string
}

type Product struct {
	ID          int64
	Title       string
	Description string
	Price       Money
	Color       string
	Size        string
	Brand       Brand
	Category    Category
}

type ProductOrdering string

const (
	OrderByNewest    ProductOrdering = ""
	OrderByPriceAsc  ProductOrdering = "price"
	OrderByPriceDesc ProductOrdering = "-price"
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	BrandID    int64
	CategoryID int64
	Color      string
	PriceGTE   *decimal.Decimal
	PriceLTE   *decimal.Decimal
	Search     string
	Ordering   ProductOrdering
	Limit      uint64
	Offset     uint64
}
