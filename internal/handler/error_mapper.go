package handler

import (
	"errors"

	"github.com/packwise/api/internal/model"
	"github.com/packwise/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// Validation errors are built as ProblemDetails at the source
	var problem *model.ProblemDetails
	if errors.As(err, &problem) {
		return problem
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotListOwner):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrItemNotFound):
		return model.NewNotFoundError("item")
	case errors.Is(err, service.ErrCategoryNotFound):
		return model.NewNotFoundError("category")
	case errors.Is(err, service.ErrConditionNotFound):
		return model.NewNotFoundError("condition")
	case errors.Is(err, service.ErrListNotFound):
		return model.NewNotFoundError("packing list")
	case errors.Is(err, service.ErrListItemNotFound):
		return model.NewNotFoundError("packing list item")
	case errors.Is(err, service.ErrSuggestedItemUnknown),
		errors.Is(err, service.ErrUnknownCondition):
		// These carry detail the client needs verbatim: the offending
		// name and, for conditions, the "any" precondition.
		return model.NewNotFoundErrorWithDetail(err.Error())

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrItemNameExists),
		errors.Is(err, service.ErrCategoryNameExists),
		errors.Is(err, service.ErrConditionNameExists):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrUnknownCurrency):
		return model.NewValidationError([]model.FieldError{{Field: "currency", Message: err.Error()}})

	// ===== Upstream Errors → 502 =====
	case errors.Is(err, service.ErrCurrencyUnavailable):
		return model.NewBadGatewayError(err.Error())
	}

	return model.NewInternalError("internal server error")
}
