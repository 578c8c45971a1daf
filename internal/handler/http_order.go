package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/SergeyBogomolovv/shoppy/internal/middleware"
	"github.com/SergeyBogomolovv/shoppy/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, cartID string, userID int64) (entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	ListOrders(ctx context.Context, userID int64, all bool) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, rawStatus string) (entities.Order, error)
}

type OrderHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	svc       OrderService
	jwtSecret string
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, jwtSecret string) *OrderHandler {
	return &OrderHandler{
		logger:    logger.With(slog.String("handler", "order")),
		validate:  newValidator(),
		svc:       svc,
		jwtSecret: jwtSecret,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(middleware.Auth(h.jwtSecret))
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{order_id}", h.GetOrderByID)
		r.With(middleware.RequireStaff).Patch("/{order_id}", h.UpdateOrder)
	})
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _ := middleware.IdentityFromContext(ctx)

	var req CreateOrderRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	order, err := h.svc.CreateOrder(ctx, req.CartID, id.UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _ := middleware.IdentityFromContext(ctx)

	orders, err := h.svc.ListOrders(ctx, id.UserID, id.Staff)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list orders")
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrderByID hides orders of other users behind a 404 unless the caller is staff.
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _ := middleware.IdentityFromContext(ctx)

	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()
	start := time.Now()
	defer func() { orderRequestDuration.Observe(time.Since(start).Seconds()) }()

	orderID, ok := int64Param(r, "order_id")
	if !ok {
		orderRequestTotal.WithLabelValues("not_found").Inc()
		utils.WriteError(w, entities.ErrOrderNotFound.Error(), http.StatusNotFound)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			orderRequestTotal.WithLabelValues("not_found").Inc()
		} else {
			orderRequestTotal.WithLabelValues("error").Inc()
		}
		writeServiceError(ctx, h.logger, w, err, "failed to get order")
		return
	}
	if !id.Staff && order.UserID != id.UserID {
		orderRequestTotal.WithLabelValues("not_found").Inc()
		utils.WriteError(w, entities.ErrOrderNotFound.Error(), http.StatusNotFound)
		return
	}

	orderRequestTotal.WithLabelValues("success").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := int64Param(r, "order_id")
	if !ok {
		utils.WriteError(w, entities.ErrOrderNotFound.Error(), http.StatusNotFound)
		return
	}

	var req UpdateOrderRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	order, err := h.svc.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
