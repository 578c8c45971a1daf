package repo

import (
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `db:"id"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	Price        decimal.Decimal `db:"price"`
	Currency     string          `db:"price_currency"`
	Color        string          `db:"color"`
	Size         string          `db:"size"`
	BrandID      int64           `db:"brand_id"`
	BrandName    string          `db:"brand_name"`
	CategoryID   int64           `db:"category_id"`
	CategoryName string          `db:"category_name"`
}

type Cart struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type CartItem struct {
	ItemID   int64  `db:"item_id"`
	CartID   string `db:"cart_id"`
	Quantity int    `db:"quantity"`
	Product
}

type Order struct {
	ID       int64     `db:"id"`
	UserID   int64     `db:"user_id"`
	PlacedAt time.Time `db:"placed_at"`
	Status   string    `db:"status"`
}

type OrderItem struct {
	ItemID            int64           `db:"item_id"`
	OrderID           int64           `db:"order_id"`
	Quantity          int             `db:"quantity"`
	UnitPrice         decimal.Decimal `db:"unit_price"`
	UnitPriceCurrency string          `db:"unit_price_currency"`
	Product
}

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       entities.NewMoney(p.Price, p.Currency),
		Color:       p.Color,
		Size:        p.Size,
		Brand:       entities.Brand{ID: p.BrandID, Name: p.BrandName},
		Category:    entities.Category{ID: p.CategoryID, Name: p.CategoryName},
	}
}

func CartItemToEntity(i CartItem) entities.CartItem {
	return entities.CartItem{
		ID:       i.ItemID,
		CartID:   i.CartID,
		Product:  ProductToEntity(i.Product),
		Quantity: i.Quantity,
	}
}

func CartToEntity(c Cart, items []CartItem) entities.Cart {
	cart := entities.Cart{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Items:     make([]entities.CartItem, 0, len(items)),
	}
	for _, it := range items {
		cart.Items = append(cart.Items, CartItemToEntity(it))
	}
	return cart
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ItemID,
		OrderID:   i.OrderID,
		Product:   ProductToEntity(i.Product),
		UnitPrice: entities.NewMoney(i.UnitPrice, i.UnitPriceCurrency),
		Quantity:  i.Quantity,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:       o.ID,
		UserID:   o.UserID,
		PlacedAt: o.PlacedAt,
		Status:   entities.Status(o.Status),
		Items:    make([]entities.OrderItem, 0, len(items)),
	}
	for _, it := range items {
		order.Items = append(order.Items, OrderItemToEntity(it))
	}
	return order
}

func UserToEntity(u User) entities.User {
	return entities.User{ID: u.ID, Username: u.Username, Email: u.Email}
}
