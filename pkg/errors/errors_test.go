package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "failed to query books")

	assert.Equal(t, KindInternal, err.Kind)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsKindThroughWrapping(t *testing.T) {
	base := NotFound("book")
	wrapped := fmt.Errorf("loading detail: %w", base)

	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindConflict))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestGetFallsBackToInternal(t *testing.T) {
	appErr := Get(errors.New("boom"))
	assert.Equal(t, KindInternal, appErr.Kind)
	require.NotNil(t, appErr.Err)

	conflict := Conflict("still referenced")
	assert.Same(t, conflict, Get(fmt.Errorf("wrapped: %w", conflict)))
}

func TestValidationCarriesFields(t *testing.T) {
	err := Validation(map[string][]string{
		"title": {"this field is required"},
		"price": {"a valid decimal is required"},
	})
	assert.Equal(t, KindValidation, err.Kind)
	assert.Len(t, err.Fields, 2)
	assert.Equal(t, []string{"this field is required"}, err.Fields["title"])
}
