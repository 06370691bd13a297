package http

import (
	"errors"
	"net/http"

	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/domain/model/quote"
	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform failure body for every endpoint: success is
// always false, error carries a stable machine tag, and message is the
// user-facing text.
type errorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
}

// respondError maps domain and application errors to HTTP status codes and
// error tags in one place so every handler reports failures identically.
func respondError(ctx echo.Context, err error) error {
	var pausedErr *commands.OrdersPausedError
	if errors.As(err, &pausedErr) {
		message := pausedErr.Message
		if message == "" {
			message = "orders are paused"
		}
		return ctx.JSON(http.StatusServiceUnavailable, errorResponse{
			Error:   "orders_paused",
			Message: message,
		})
	}

	var incompleteErr *quote.IncompleteAddressError
	if errors.As(err, &incompleteErr) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "incomplete_address",
			Message: "incomplete address",
			Missing: incompleteErr.Missing,
		})
	}

	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	}

	if errors.Is(err, order.ErrInvalidTransition) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "invalid_transition",
			Message: err.Error(),
		})
	}
	if errors.Is(err, order.ErrOrderAlreadyFinalized) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "order_already_finalized",
			Message: err.Error(),
		})
	}
	if errors.Is(err, services.ErrGeocodeFailed) || errors.Is(err, services.ErrRouteFailed) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "quote_failed",
			Message: err.Error(),
		})
	}

	var validationErrs validator.ValidationErrors
	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.As(err, &validationErrs) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	}

	if errors.Is(err, services.ErrPricingMisconfigured) {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "pricing_misconfigured",
			Message: "delivery pricing is not configured",
		})
	}

	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: "internal server error",
	})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Error:   "validation_error",
		Message: message,
	})
}
