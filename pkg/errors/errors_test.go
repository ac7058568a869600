// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and classification helpers

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/confgen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "configuration_error",
			code:    errors.ErrConfiguration,
			message: "invalid template path",
			wantStr: "[CONFIGURATION] invalid template path",
		},
		{
			name:    "render_error",
			code:    errors.ErrRender,
			message: "bad syntax",
			wantStr: "[RENDER] bad syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownEnvironment, "unknown environment %q", "qa")
	assert.Equal(t, `unknown environment "qa"`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileWrite, "cannot write")

		assert.Equal(t, errors.ErrFileWrite, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[FILE_WRITE] cannot write: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrValidation, "missing").
		WithDetail("template", "app.conf.tmpl").
		WithDetails(map[string]interface{}{
			"missing":  []string{"port"},
			"provided": []string{"host"},
		})

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "app.conf.tmpl", details["template"])
	assert.Equal(t, []string{"port"}, details["missing"])
	assert.Equal(t, []string{"host"}, details["provided"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrValidation, "error 1")
	err2 := errors.New(errors.ErrValidation, "error 2")
	err3 := errors.New(errors.ErrRender, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(fmt.Errorf("outer: %w", err1), err2))
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"confgen_error", errors.New(errors.ErrRender, "x"), errors.ErrRender},
		{"wrapped_with_fmt", fmt.Errorf("ctx: %w", errors.New(errors.ErrDirCreate, "x")), errors.ErrDirCreate},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.GetErrorCode(tt.err))
		})
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		configuration bool
		validation    bool
		render        bool
	}{
		{"configuration", errors.New(errors.ErrConfiguration, "x"), true, false, false},
		{"config_parse", errors.New(errors.ErrConfigParse, "x"), true, false, false},
		{"validation", errors.New(errors.ErrValidation, "x"), false, true, false},
		{"unknown_environment", errors.New(errors.ErrUnknownEnvironment, "x"), false, true, false},
		{"render", errors.New(errors.ErrRender, "x"), false, false, true},
		{"plain", stderrors.New("x"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.configuration, errors.IsConfiguration(tt.err))
			assert.Equal(t, tt.validation, errors.IsValidation(tt.err))
			assert.Equal(t, tt.render, errors.IsRender(tt.err))
		})
	}
}

func TestUnknownEnvironmentIsValidationFamily(t *testing.T) {
	bare := errors.Newf(errors.ErrUnknownEnvironment, "unknown environment %q", "qa")
	assert.True(t, errors.IsValidation(bare))
	assert.False(t, errors.IsErrorCode(bare, errors.ErrValidation))
	assert.False(t, stderrors.Is(bare, errors.New(errors.ErrValidation, "")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileRead, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfiguration, "failed to load variables")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfiguration))

	var middle *errors.ConfgenError
	require.True(t, stderrors.As(configErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrFileRead, middle.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}
