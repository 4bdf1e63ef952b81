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
	err := NewParseError("prism.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "prism.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: prism.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("prism.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: prism.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("elements[1].name", "duplicate element name", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "elements[1].name", validationErr.Field)
	require.Contains(t, err.Error(), "duplicate element name")
}

func TestInvalidConfigurationCarriesKindFieldAndValue(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("compose card: %w", UnknownVariant("shadow", "huge"))

	var invalid *InvalidConfigurationError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, KindUnknownVariant, invalid.Kind)
	require.Equal(t, "shadow", invalid.Field)
	require.Equal(t, "huge", invalid.Value)
	require.Contains(t, err.Error(), `invalid configuration [unknown-variant]: shadow: "huge"`)
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var invalid *InvalidConfigurationError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, invalid.Error())
	require.Nil(t, parseErr.Unwrap())
}
