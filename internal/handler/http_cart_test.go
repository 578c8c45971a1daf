package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/SergeyBogomolovv/shoppy/internal/handler"
	mocks "github.com/SergeyBogomolovv/shoppy/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartRouter(t *testing.T) (*mocks.MockCartService, chi.Router) {
	t.Helper()
	svc := mocks.NewMockCartService(t)
	r := chi.NewRouter()
	handler.NewCartHandler(discardLogger(), svc).Init(r)
	return svc, r
}

func TestCartHandler_CreateCart(t *testing.T) {
	svc, r := newCartRouter(t)
	svc.EXPECT().CreateCart(mock.Anything).Return(entities.Cart{ID: testCartID}, nil).Once()

	rr := do(r, http.MethodPost, "/carts", "", nil)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"`+testCartID+`","items":[],"price_currency":"IRR","total_price":"0.00"}`, rr.Body.String())
}

func TestCartHandler_GetCart(t *testing.T) {
	cart := entities.Cart{
		ID: testCartID,
		Items: []entities.CartItem{
			{ID: 1, CartID: testCartID, Quantity: 2, Product: entities.Product{ID: 1, Title: "Mug", Price: usd("10.00")}},
			{ID: 2, CartID: testCartID, Quantity: 1, Product: entities.Product{ID: 2, Title: "Pen", Price: usd("5.00")}},
		},
	}

	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().GetCart(mock.Anything, testCartID).Return(cart, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_price":"25.00"`,
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().GetCart(mock.Anything, testCartID).Return(entities.Cart{}, entities.ErrCartNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"cart not found"`,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().GetCart(mock.Anything, testCartID).Return(entities.Cart{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newCartRouter(t)
			tc.mockBehavior(svc)

			rr := do(r, http.MethodGet, "/carts/"+testCartID, "", nil)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestCartHandler_DeleteCart(t *testing.T) {
	svc, r := newCartRouter(t)
	svc.EXPECT().DeleteCart(mock.Anything, testCartID).Return(nil).Once()
	svc.EXPECT().DeleteCart(mock.Anything, "missing").Return(entities.ErrCartNotFound).Once()

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/carts/"+testCartID, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/carts/missing", "", nil).Code)
}

func TestCartHandler_AddItem(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"product_id":1,"quantity":2}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddItem(mock.Anything, testCartID, int64(1), 2).
					Return(entities.CartItem{ID: 9, Quantity: 5, Product: entities.Product{ID: 1}}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":9,"product_id":1,"quantity":5}`,
		},
		{
			name:         "zero quantity",
			body:         `{"product_id":1,"quantity":0}`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"message":"invalid request","fields":{"quantity":"required"}}`,
		},
		{
			name:         "quantity above limit",
			body:         `{"product_id":1,"quantity":40000}`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"message":"invalid request","fields":{"quantity":"lte"}}`,
		},
		{
			name:         "malformed body",
			body:         `{"product_id":`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"message":"invalid request body"}`,
		},
		{
			name: "unknown product",
			body: `{"product_id":404,"quantity":1}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddItem(mock.Anything, testCartID, int64(404), 1).
					Return(entities.CartItem{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"product not found"}`,
		},
		{
			name: "business validation",
			body: `{"product_id":1,"quantity":1}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddItem(mock.Anything, testCartID, int64(1), 1).
					Return(entities.CartItem{}, entities.NewValidationError("quantity", "too many")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"invalid request","fields":{"quantity":"too many"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newCartRouter(t)
			tc.mockBehavior(svc)

			rr := do(r, http.MethodPost, "/carts/"+testCartID+"/items", tc.body, nil)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.JSONEq(t, tc.wantBody, rr.Body.String())
		})
	}
}

func TestCartHandler_UpdateItem(t *testing.T) {
	svc, r := newCartRouter(t)
	svc.EXPECT().UpdateItemQuantity(mock.Anything, testCartID, int64(1), 4).
		Return(entities.CartItem{ID: 3, Quantity: 4, Product: entities.Product{ID: 1, Title: "Mug", Price: usd("10.00")}}, nil).Once()
	svc.EXPECT().UpdateItemQuantity(mock.Anything, testCartID, int64(2), 1).
		Return(entities.CartItem{}, entities.ErrCartItemNotFound).Once()

	rr := do(r, http.MethodPatch, "/carts/"+testCartID+"/items/1", `{"quantity":4}`, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total_price":"40.00"`)

	rr = do(r, http.MethodPatch, "/carts/"+testCartID+"/items/2", `{"quantity":1}`, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"cart item not found"}`, rr.Body.String())

	rr = do(r, http.MethodPatch, "/carts/"+testCartID+"/items/abc", `{"quantity":1}`, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	svc, r := newCartRouter(t)
	svc.EXPECT().RemoveItem(mock.Anything, testCartID, int64(1)).Return(nil).Once()

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/carts/"+testCartID+"/items/1", "", nil).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/carts/"+testCartID+"/items/abc", "", nil).Code)
}

func TestCartHandler_ListItems(t *testing.T) {
	svc, r := newCartRouter(t)
	svc.EXPECT().ListItems(mock.Anything, testCartID).Return(nil, nil).Once()

	rr := do(r, http.MethodGet, "/carts/"+testCartID+"/items", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
