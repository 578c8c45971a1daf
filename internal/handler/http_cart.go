package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/SergeyBogomolovv/shoppy/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	CreateCart(ctx context.Context) (entities.Cart, error)
	GetCart(ctx context.Context, cartID string) (entities.Cart, error)
	DeleteCart(ctx context.Context, cartID string) error
	ListItems(ctx context.Context, cartID string) ([]entities.CartItem, error)
	AddItem(ctx context.Context, cartID string, productID int64, quantity int) (entities.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID string, productID int64, quantity int) (entities.CartItem, error)
	RemoveItem(ctx context.Context, cartID string, productID int64) error
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/carts", func(r chi.Router) {
		r.Post("/", h.CreateCart)
		r.Route("/{cart_id}", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.DeleteCart)
			r.Get("/items", h.ListItems)
			r.Post("/items", h.AddItem)
			r.Patch("/items/{product_id}", h.UpdateItem)
			r.Delete("/items/{product_id}", h.RemoveItem)
		})
	})
}

func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.CreateCart(r.Context())
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to create cart")
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusCreated)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.GetCart(r.Context(), chi.URLParam(r, "cart_id"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get cart")
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCart(r.Context(), chi.URLParam(r, "cart_id")); err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to delete cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context(), chi.URLParam(r, "cart_id"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list cart items")
		return
	}

	res := make([]CartItem, 0, len(items))
	for _, it := range items {
		res = append(res, CartItemEntityToJSON(it))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	item, err := h.svc.AddItem(r.Context(), chi.URLParam(r, "cart_id"), req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to add cart item")
		return
	}

	res := AddCartItemResponse{ID: item.ID, ProductID: item.Product.ID, Quantity: item.Quantity}
	utils.WriteJSON(w, res, http.StatusCreated)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := int64Param(r, "product_id")
	if !ok {
		utils.WriteError(w, entities.ErrCartItemNotFound.Error(), http.StatusNotFound)
		return
	}

	var req UpdateCartItemRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	item, err := h.svc.UpdateItemQuantity(r.Context(), chi.URLParam(r, "cart_id"), productID, req.Quantity)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to update cart item")
		return
	}
	utils.WriteJSON(w, CartItemEntityToJSON(item), http.StatusOK)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := int64Param(r, "product_id")
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), chi.URLParam(r, "cart_id"), productID); err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to remove cart item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
