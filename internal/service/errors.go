package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// ===== Catalog Errors =====
var (
	ErrItemNotFound         = errors.New("item not found")
	ErrItemNameExists       = errors.New("an item with this name already exists")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameExists   = errors.New("a category with this name already exists")
	ErrConditionNotFound    = errors.New("condition not found")
	ErrConditionNameExists  = errors.New("a condition with this name already exists")
	ErrSuggestedItemUnknown = errors.New("suggested item not found in catalog")
)

// ===== Packing List Errors =====
var (
	ErrListNotFound     = errors.New("packing list not found")
	ErrListItemNotFound = errors.New("packing list item not found")
	ErrNotListOwner     = errors.New("not authorized to access this packing list")
)

// ===== Suggestion Errors =====
var (
	ErrUnknownCondition = errors.New("unknown condition")
)

// ===== Currency Errors =====
var (
	ErrCurrencyUnavailable = errors.New("currency service unavailable")
	ErrUnknownCurrency     = errors.New("unknown currency code")
)
