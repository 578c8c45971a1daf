package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/shoppy/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are issued by the identity provider. Subject holds the numeric user id.
type Claims struct {
	Staff bool `json:"staff,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the acting user of a request.
type Identity struct {
	UserID int64
	Staff  bool
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

var errMissingToken = errors.New("missing bearer token")

// ParseToken validates an HS256 token and returns the identity it carries.
func ParseToken(tokenString string, secret []byte) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return Identity{}, fmt.Errorf("invalid subject %q", claims.Subject)
	}
	return Identity{UserID: userID, Staff: claims.Staff}, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:], nil
	}
	return "", errMissingToken
}

// Auth rejects requests without a valid bearer token and stores the caller's
// Identity in the request context.
func Auth(secret string) func(next http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				utils.WriteError(w, "authentication credentials were not provided", http.StatusUnauthorized)
				return
			}

			id, err := ParseToken(token, key)
			if err != nil {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireStaff must run after Auth.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		if !ok {
			utils.WriteError(w, "authentication credentials were not provided", http.StatusUnauthorized)
			return
		}
		if !id.Staff {
			utils.WriteError(w, "you do not have permission to perform this action", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
