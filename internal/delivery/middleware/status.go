package middleware

import (
	"net/http"

	domainerrors "locator/internal/domain/errors"
	"locator/internal/errors"

	"github.com/labstack/echo/v4"
)

// StatusFromError predicts the status the central error handler will write for err.
func StatusFromError(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
