package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/shopspring/decimal"
)

const testCartID = "6f1c4d2e-8a3b-4c5d-9e7f-0a1b2c3d4e5f"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func usd(amount string) entities.Money {
	return entities.NewMoney(decimal.RequireFromString(amount), "USD")
}

type router interface {
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

func do(r router, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
