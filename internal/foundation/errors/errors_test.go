package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errCause = errors.New("front matter requires title and date")

func TestClassifiedError(t *testing.T) {
	t.Run("Builder sets every field", func(t *testing.T) {
		err := WrapError(errCause, CategoryConfig, "invalid configuration").
			Fatal().
			WithContext("file", "site.json").
			Build()

		require.Equal(t, CategoryConfig, err.Category())
		require.Equal(t, SeverityFatal, err.Severity())
		require.Equal(t, "invalid configuration", err.Message())
		require.Equal(t, errCause, err.Cause())

		file, exists := err.Context().GetString("file")
		require.True(t, exists)
		require.Equal(t, "site.json", file)
	})

	t.Run("Wrapping keeps the cause reachable", func(t *testing.T) {
		err := WrapError(errCause, CategoryValidation, "invalid post").
			WithContext("file", "a.md").
			Build()

		require.ErrorIs(t, err, errCause)
		require.Equal(t, "[validation:error] invalid post: front matter requires title and date", err.Error())
		require.Equal(t, "invalid post (file=a.md): front matter requires title and date", err.Detail())
	})

	t.Run("Detection through wrapping", func(t *testing.T) {
		err := fmt.Errorf("build: %w", ConfigError(nil, "bad config").Build())

		ce, ok := AsClassified(err)
		require.True(t, ok)
		require.Equal(t, "bad config", ce.Detail())
		require.True(t, HasCategory(err, CategoryConfig))
		require.False(t, HasCategory(err, CategoryValidation))
		require.False(t, HasCategory(errors.New("plain"), CategoryConfig))
	})
}

func TestErrorBuilder_Constructors(t *testing.T) {
	tests := []struct {
		name     string
		builder  *ErrorBuilder
		category ErrorCategory
		severity ErrorSeverity
	}{
		{"ConfigError", ConfigError(errCause, "test"), CategoryConfig, SeverityFatal},
		{"NotFoundError", NotFoundError(errCause, "test"), CategoryNotFound, SeverityFatal},
		{"ValidationError", ValidationError(errCause, "test"), CategoryValidation, SeverityFatal},
		{"RenderError", RenderError(errCause, "test"), CategoryRender, SeverityFatal},
		{"FileSystemError", FileSystemError(errCause, "test"), CategoryFileSystem, SeverityFatal},
		{"InternalError", InternalError(errCause, "test"), CategoryInternal, SeverityFatal},
		{"RuntimeError", RuntimeError(context.Canceled, "test"), CategoryRuntime, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.builder.Build()
			require.Equal(t, tt.category, err.Category())
			require.Equal(t, tt.severity, err.Severity())
			require.NotNil(t, err.Cause())
		})
	}
}

func TestErrorContext(t *testing.T) {
	var ctx ErrorContext
	ctx = ctx.Set("key1", "value1")
	ctx = ctx.Set("key2", 42)

	value1, exists1 := ctx.GetString("key1")
	require.True(t, exists1)
	require.Equal(t, "value1", value1)

	value2, exists2 := ctx.Get("key2")
	require.True(t, exists2)
	require.Equal(t, 42, value2)

	_, isString := ctx.GetString("key2")
	require.False(t, isString)

	_, exists3 := ctx.Get("nonexistent")
	require.False(t, exists3)
}
