package handler

import (
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
)

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is the full catalog representation.
type Product struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         string   `json:"price"`
	PriceCurrency string   `json:"price_currency"`
	Size          string   `json:"size"`
	Color         string   `json:"color"`
	Brand         Brand    `json:"brand"`
	Category      Category `json:"category"`
}

// SimpleProduct is embedded in cart and order lines.
type SimpleProduct struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}

type CartItem struct {
	ID            int64         `json:"id"`
	Product       SimpleProduct `json:"product"`
	Quantity      int           `json:"quantity"`
	PriceCurrency string        `json:"price_currency"`
	TotalPrice    string        `json:"total_price"`
}

type Cart struct {
	ID            string     `json:"id"`
	Items         []CartItem `json:"items"`
	PriceCurrency string     `json:"price_currency"`
	TotalPrice    string     `json:"total_price"`
}

type OrderItem struct {
	ID                int64         `json:"id"`
	Product           SimpleProduct `json:"product"`
	UnitPrice         string        `json:"unit_price"`
	UnitPriceCurrency string        `json:"unit_price_currency"`
	Quantity          int           `json:"quantity"`
	TotalPrice        string        `json:"total_price"`
}

type Order struct {
	ID            int64       `json:"id"`
	User          int64       `json:"user"`
	PlacedAt      time.Time   `json:"placed_at"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items"`
	PriceCurrency string      `json:"price_currency"`
	TotalPrice    string      `json:"total_price"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1,lte=32767"`
}

// AddCartItemResponse echoes the merged line.
type AddCartItemResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1,lte=32767"`
}

type CreateOrderRequest struct {
	CartID string `json:"cart_id" validate:"required"`
}

type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

// StatusEvent is the payload of an order status message.
type StatusEvent struct {
	OrderID int64  `json:"order_id" validate:"required,gt=0"`
	Status  string `json:"status" validate:"required"`
}

func amount(m entities.Money) string {
	return m.Amount.StringFixed(2)
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         amount(p.Price),
		PriceCurrency: p.Price.Currency,
		Size:          p.Size,
		Color:         p.Color,
		Brand:         Brand{ID: p.Brand.ID, Name: p.Brand.Name},
		Category:      Category{ID: p.Category.ID, Name: p.Category.Name},
	}
}

func SimpleProductEntityToJSON(p entities.Product) SimpleProduct {
	return SimpleProduct{ID: p.ID, Title: p.Title, Price: amount(p.Price)}
}

func CartItemEntityToJSON(i entities.CartItem) CartItem {
	total := i.LineTotal()
	return CartItem{
		ID:            i.ID,
		Product:       SimpleProductEntityToJSON(i.Product),
		Quantity:      i.Quantity,
		PriceCurrency: total.Currency,
		TotalPrice:    amount(total),
	}
}

func CartEntityToJSON(c entities.Cart) Cart {
	total := c.Total()
	cart := Cart{
		ID:            c.ID,
		Items:         make([]CartItem, 0, len(c.Items)),
		PriceCurrency: total.Currency,
		TotalPrice:    amount(total),
	}
	for _, it := range c.Items {
		cart.Items = append(cart.Items, CartItemEntityToJSON(it))
	}
	return cart
}

func OrderItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ID:                i.ID,
		Product:           SimpleProductEntityToJSON(i.Product),
		UnitPrice:         amount(i.UnitPrice),
		UnitPriceCurrency: i.UnitPrice.Currency,
		Quantity:          i.Quantity,
		TotalPrice:        amount(i.LineTotal()),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	total := o.Total()
	order := Order{
		ID:            o.ID,
		User:          o.UserID,
		PlacedAt:      o.PlacedAt,
		Status:        string(o.Status),
		Items:         make([]OrderItem, 0, len(o.Items)),
		PriceCurrency: total.Currency,
		TotalPrice:    amount(total),
	}
	for _, it := range o.Items {
		order.Items = append(order.Items, OrderItemEntityToJSON(it))
	}
	return order
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func ProductsEntityToJSON(products []entities.Product) []Product {
	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	return res
}
