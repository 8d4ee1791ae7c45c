package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldTypeError(t *testing.T) {
	var err error = &FieldTypeError{Code: 11, Field: "price", Offset: 57}

	require.ErrorIs(t, err, ErrUnsupportedFieldType)
	require.Equal(t, `unsupported field type: code 11 for field "price" at byte offset 57`, err.Error())

	wrapped := fmt.Errorf("decode item section: %w", err)
	require.ErrorIs(t, wrapped, ErrUnsupportedFieldType)

	var fte *FieldTypeError
	require.True(t, errors.As(wrapped, &fte))
	require.Equal(t, int32(11), fte.Code)
}
