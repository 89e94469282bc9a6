package user

import (
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

var (
	ErrNotFound = apperrors.NotFound("user")

	// ErrEmailDuplicate surfaces the store's unique-index violation; the
	// service never pre-checks (SELECT-then-INSERT races).
	ErrEmailDuplicate = apperrors.Conflict("a user with this email already exists")

	ErrInvalidCredentials = apperrors.New(apperrors.KindForbidden, "invalid email or password")
)
