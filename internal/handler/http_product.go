package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/SergeyBogomolovv/shoppy/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ProductService interface {
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
}

type ProductHandler struct {
	logger *slog.Logger
	svc    ProductService
}

func NewProductHandler(logger *slog.Logger, svc ProductService) *ProductHandler {
	return &ProductHandler{
		logger: logger.With(slog.String("handler", "product")),
		svc:    svc,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{product_id}", h.GetProduct)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "product_id")
	if !ok {
		utils.WriteError(w, entities.ErrProductNotFound.Error(), http.StatusNotFound)
		return
	}

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get product")
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, fields := parseProductFilter(r.URL.Query())
	if len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	products, err := h.svc.ListProducts(r.Context(), filter)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list products")
		return
	}
	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

var (
	colors    = map[string]bool{"none": true, "red": true, "green": true, "blue": true}
	orderings = map[string]entities.ProductOrdering{
		"":       entities.OrderByNewest,
		"price":  entities.OrderByPriceAsc,
		"-price": entities.OrderByPriceDesc,
	}
)

// parseProductFilter reads the catalog query string. Invalid values are
// returned as field errors.
func parseProductFilter(q url.Values) (entities.ProductFilter, map[string]string) {
	var f entities.ProductFilter
	fields := make(map[string]string)

	parseID := func(key string, dst *int64) {
		if raw := q.Get(key); raw != "" {
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || v <= 0 {
				fields[key] = "Enter a number."
				return
			}
			*dst = v
		}
	}
	parsePrice := func(key string) *decimal.Decimal {
		raw := q.Get(key)
		if raw == "" {
			return nil
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			fields[key] = "Enter a number."
			return nil
		}
		return &v
	}
	parseUint := func(key string, dst *uint64) {
		if raw := q.Get(key); raw != "" {
			v, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				fields[key] = "Enter a valid integer."
				return
			}
			*dst = v
		}
	}

	parseID("brand_id", &f.BrandID)
	parseID("category_id", &f.CategoryID)
	f.PriceGTE = parsePrice("price__gte")
	f.PriceLTE = parsePrice("price__lte")
	parseUint("limit", &f.Limit)
	parseUint("offset", &f.Offset)

	if color := q.Get("color"); color != "" {
		if !colors[color] {
			fields["color"] = "Select a valid choice."
		}
		f.Color = color
	}

	ordering, ok := orderings[q.Get("ordering")]
	if !ok {
		fields["ordering"] = "Select a valid choice."
	}
	f.Ordering = ordering
	f.Search = q.Get("search")

	return f, fields
}
