package middleware_test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/middleware"
)

type paymentForm struct {
	Amount float64 `validate:"required,gt=0"`
	Email  string  `validate:"required,email"`
	Method string  `validate:"required,oneof=CASH CARD"`
}

func TestBindingErrorDetail(t *testing.T) {
	validate := validator.New()

	t.Run("flattens validator errors into messages", func(t *testing.T) {
		err := validate.Struct(paymentForm{Amount: -5, Email: "not-an-email", Method: "BARTER"})
		require.Error(t, err)

		detail := middleware.BindingErrorDetail(err)
		assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
		assert.Equal(t, "Validation failed", detail.Message)

		messages, ok := detail.Details.([]string)
		require.True(t, ok)
		assert.Contains(t, messages, "Amount must be greater than 0")
		assert.Contains(t, messages, "Email must be a valid email address")
		assert.Contains(t, messages, "Method must be one of: CASH CARD")
	})

	t.Run("reports missing required fields", func(t *testing.T) {
		err := validate.Struct(paymentForm{})
		require.Error(t, err)

		detail := middleware.BindingErrorDetail(err)
		messages, ok := detail.Details.([]string)
		require.True(t, ok)
		assert.Contains(t, messages, "Amount is required")
	})

	t.Run("non-validator errors become a format error", func(t *testing.T) {
		detail := middleware.BindingErrorDetail(errors.New("unexpected EOF"))
		assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
		assert.Equal(t, "Invalid request format", detail.Message)
		assert.Equal(t, "unexpected EOF", detail.Details)
	})
}
