package handler

import (
	"net/http"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// httpError maps a service error onto the response status; the message is
// always the wrapped error text.
func httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrInvalidLineItem):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrOverReturn),
		errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrInactive):
		code = http.StatusForbidden
	}
	return echo.NewHTTPError(code, err.Error())
}
