package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/SergeyBogomolovv/shoppy/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var notFoundErrors = []error{
	entities.ErrCartNotFound,
	entities.ErrCartItemNotFound,
	entities.ErrProductNotFound,
	entities.ErrOrderNotFound,
	entities.ErrUserNotFound,
}

// newValidator reports request fields under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// writeServiceError maps domain errors to 400/404 and logs everything else as a 500.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		utils.WriteFieldErrors(w, map[string]string{ve.Field: ve.Reason})
		return
	}

	if errors.Is(err, entities.ErrNotFound) {
		message := entities.ErrNotFound.Error()
		for _, target := range notFoundErrors {
			if errors.Is(err, target) {
				message = target.Error()
				break
			}
		}
		utils.WriteError(w, message, http.StatusNotFound)
		return
	}

	logger.ErrorContext(ctx, msg, slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}

// int64Param parses a positive numeric path parameter.
func int64Param(r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) bool {
	if err := utils.DecodeBody(r, dst); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := v.Struct(dst); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}
