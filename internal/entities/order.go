package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"
)

type Status string

const (
	StatusPreparing Status = "preparing"
	StatusPrepared  Status = "prepared"
	StatusSent      Status = "sent"
	StatusCanceled  Status = "canceled"
	StatusReferred  Status = "referred"
	StatusDelivered Status = "delivered"
)

var statuses = []Status{
	StatusPreparing, StatusPrepared, StatusSent,
	StatusCanceled, StatusReferred, StatusDelivered,
}

func (s Status) Valid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", NewValidationError("status", fmt.Sprintf("%q is not a valid choice.", raw))
	}
	return s, nil
}

type OrderItem struct {
	ID      int64
	OrderID int64
	Product Product
	// UnitPrice is copied from the product when the order is placed and
	// never recomputed afterwards.
	UnitPrice Money
	Quantity  int
}

func (i OrderItem) LineTotal() Money {
	return i.UnitPrice.Times(i.Quantity)
}

type Order struct {
	ID       int64
	UserID   int64
	PlacedAt time.Time
	Status   Status
	Items    []OrderItem
}

func (o Order) Total() Money {
	return Total(o.Items)
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Product{})
}
