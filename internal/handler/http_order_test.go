package handler_test

import (
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/SergeyBogomolovv/shoppy/internal/handler"
	mocks "github.com/SergeyBogomolovv/shoppy/internal/handler/mocks"
	"github.com/SergeyBogomolovv/shoppy/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef"

func authHeader(t *testing.T, userID int64, staff bool) http.Header {
	t.Helper()
	claims := middleware.Claims{
		Staff: staff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return http.Header{"Authorization": {"Bearer " + token}}
}

func newOrderRouter(t *testing.T) (*mocks.MockOrderService, chi.Router) {
	t.Helper()
	svc := mocks.NewMockOrderService(t)
	r := chi.NewRouter()
	handler.NewOrderHandler(discardLogger(), svc, testSecret).Init(r)
	return svc, r
}

func placedOrder() entities.Order {
	return entities.Order{
		ID:       10,
		UserID:   7,
		PlacedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Status:   entities.StatusPreparing,
		Items: []entities.OrderItem{
			{ID: 1, OrderID: 10, Quantity: 2, UnitPrice: usd("10.00"), Product: entities.Product{ID: 1, Title: "Mug", Price: usd("12.00")}},
			{ID: 2, OrderID: 10, Quantity: 1, UnitPrice: usd("5.00"), Product: entities.Product{ID: 2, Title: "Pen", Price: usd("5.00")}},
		},
	}
}

func TestOrderHandler_RequiresAuth(t *testing.T) {
	_, r := newOrderRouter(t)

	rr := do(r, http.MethodGet, "/orders", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"cart_id":"` + testCartID + `"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, testCartID, int64(7)).Return(placedOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"total_price":"25.00"`,
		},
		{
			name:         "missing cart id",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"cart_id":"required"`,
		},
		{
			name: "empty cart",
			body: `{"cart_id":"` + testCartID + `"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, testCartID, int64(7)).
					Return(entities.Order{}, entities.NewValidationError("cart_id", "The cart is empty.")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"cart_id":"The cart is empty."`,
		},
		{
			name: "transaction failed",
			body: `{"cart_id":"` + testCartID + `"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, testCartID, int64(7)).
					Return(entities.Order{}, errors.Join(entities.ErrTransactionFailed, errors.New("db error"))).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newOrderRouter(t)
			tc.mockBehavior(svc)

			rr := do(r, http.MethodPost, "/orders", tc.body, authHeader(t, 7, false))

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		userID       int64
		staff        bool
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "owner",
			orderID: "10",
			userID:  7,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(placedOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"unit_price":"10.00"`,
		},
		{
			name:    "other user",
			orderID: "10",
			userID:  8,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(placedOrder(), nil).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "staff sees any order",
			orderID: "10",
			userID:  1,
			staff:   true,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(placedOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"user":7`,
		},
		{
			name:    "not found",
			orderID: "99",
			userID:  7,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(99)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "malformed id",
			orderID:      "abc",
			userID:       7,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusNotFound,
			wantBody:     `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "10",
			userID:  7,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newOrderRouter(t)
			tc.mockBehavior(svc)

			rr := do(r, http.MethodGet, "/orders/"+tc.orderID, "", authHeader(t, tc.userID, tc.staff))

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	svc, r := newOrderRouter(t)
	svc.EXPECT().ListOrders(mock.Anything, int64(7), false).Return([]entities.Order{placedOrder()}, nil).Once()
	svc.EXPECT().ListOrders(mock.Anything, int64(1), true).Return(nil, nil).Once()

	rr := do(r, http.MethodGet, "/orders", "", authHeader(t, 7, false))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":10`)

	rr = do(r, http.MethodGet, "/orders", "", authHeader(t, 1, true))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	t.Run("forbidden for customers", func(t *testing.T) {
		_, r := newOrderRouter(t)

		rr := do(r, http.MethodPatch, "/orders/10", `{"status":"sent"}`, authHeader(t, 7, false))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("staff updates status", func(t *testing.T) {
		svc, r := newOrderRouter(t)
		updated := placedOrder()
		updated.Status = entities.StatusSent
		svc.EXPECT().UpdateStatus(mock.Anything, int64(10), "sent").Return(updated, nil).Once()

		rr := do(r, http.MethodPatch, "/orders/10", `{"status":"sent"}`, authHeader(t, 1, true))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"sent"`)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, r := newOrderRouter(t)
		svc.EXPECT().UpdateStatus(mock.Anything, int64(10), "lost").
			Return(entities.Order{}, entities.NewValidationError("status", `"lost" is not a valid choice.`)).Once()

		rr := do(r, http.MethodPatch, "/orders/10", `{"status":"lost"}`, authHeader(t, 1, true))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"fields":{"status"`)
	})
}
