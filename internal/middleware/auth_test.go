package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims middleware.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(subject string, staff bool, ttl time.Duration) middleware.Claims {
	return middleware.Claims{
		Staff: staff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestAuth(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantID     middleware.Identity
	}{
		{
			name:       "valid token",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor("7", false, time.Hour)),
			wantStatus: http.StatusOK,
			wantID:     middleware.Identity{UserID: 7},
		},
		{
			name:       "staff token",
			header:     "bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor("1", true, time.Hour)),
			wantStatus: http.StatusOK,
			wantID:     middleware.Identity{UserID: 1, Staff: true},
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor("7", false, -time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("another-secret-key"), claimsFor("7", false, time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non numeric subject",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor("alice", false, time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unexpected signing method",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), claimsFor("7", false, time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got middleware.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = middleware.IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			middleware.Auth(testSecret)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantID, got)
			}
		})
	}
}

func TestRequireStaff(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := middleware.RequireStaff(next)

	testCases := []struct {
		name       string
		identity   *middleware.Identity
		wantStatus int
	}{
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
		{name: "customer", identity: &middleware.Identity{UserID: 7}, wantStatus: http.StatusForbidden},
		{name: "staff", identity: &middleware.Identity{UserID: 1, Staff: true}, wantStatus: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/orders/1", nil)
			if tc.identity != nil {
				req = req.WithContext(middleware.WithIdentity(req.Context(), *tc.identity))
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
