package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("catalog.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "catalog.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: catalog.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("catalog.toml", 0, stdErrors.New("eof"))
	require.Equal(t, "parse error: catalog.toml: eof", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("items[1].category", `unknown category "hat"`, nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "items[1].category", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown category")
	require.Equal(t, `validation error: items[1].category: unknown category "hat"`, err.Error())
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "catalog is empty", nil)
	require.Equal(t, "validation error: catalog is empty", err.Error())
}

func TestNotFoundErrorFormatsIdentity(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("item", 42)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "item", notFound.Kind)
	require.Equal(t, "42", notFound.ID)
	require.Equal(t, "item 42 not found", err.Error())
}

func TestNilReceiversRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var notFound *NotFoundError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, notFound.Error())
}
