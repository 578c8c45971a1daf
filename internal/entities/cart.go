package entities

import (
	"fmt"
	"time"
)

// MaxQuantity bounds a single cart or order line.
const MaxQuantity = 32767

// ValidateQuantity checks a requested line quantity.
func ValidateQuantity(quantity int) error {
	switch {
	case quantity < 1:
		return NewValidationError("quantity", "Ensure this value is greater than or equal to 1.")
	case quantity > MaxQuantity:
		return NewValidationError("quantity", fmt.Sprintf("Ensure this value is less than or equal to %d.", MaxQuantity))
	}
	return nil
}

type CartItem struct {
	ID       int64
	CartID   string
	Product  Product
	Quantity int
}

// LineTotal is computed from the product's current price.
func (i CartItem) LineTotal() Money {
	return i.Product.Price.Times(i.Quantity)
}

type Cart struct {
	ID        string
	CreatedAt time.Time
	Items     []CartItem
}

func (c Cart) Total() Money {
	return Total(c.Items)
}
