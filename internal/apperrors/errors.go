package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the authenticated user may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is in a state that rejects the operation.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected failure the caller cannot act on.
var ErrInternal = errors.New("internal error")
