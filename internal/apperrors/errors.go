package apperrors

import "errors"

// ErrNotFound indicates that a referenced resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCategoryType indicates a budget was created against a non-expense category.
var ErrInvalidCategoryType = errors.New("budget only allowed for expense categories")

// ErrDependencyUnavailable indicates the datastore could not be reached or a query failed.
var ErrDependencyUnavailable = errors.New("datastore unavailable")
