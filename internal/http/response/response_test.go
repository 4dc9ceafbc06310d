package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/paytracker/internal/ledger"
)

func TestOKWithData(t *testing.T) {
	resp := OKWithData(map[string]any{"id": "abc"})
	assert.Equal(t, StatusOK, resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("boom")
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "boom", resp.Error)
}

func TestValidationError_Messages(t *testing.T) {
	type req struct {
		Name string  `validate:"required"`
		Rate float64 `validate:"required,gt=0"`
		Date string  `validate:"required,datetime=2006-01-02"`
	}

	err := validator.New().Struct(req{Rate: -1, Date: "31-12-2025"})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Name is a required field")
	assert.Contains(t, resp.Error, "field Rate must be greater than 0")
	assert.Contains(t, resp.Error, "format 2006-01-02")
}

func TestFieldErrors(t *testing.T) {
	errs := ledger.ValidationErrors{
		{Field: "name", Reason: "name is required"},
		{Field: "rate", Reason: "rate must be greater than 0"},
	}

	resp := FieldErrors(errs)
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "field name: name is required, field rate: rate must be greater than 0", resp.Error)
}
