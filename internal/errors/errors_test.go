package errors_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	autherror "github.com/angusyg/mean-stack/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *autherror.ApiError
		wantName   string
		wantCode   string
		wantStatus int
	}{
		{
			name:       "api error",
			err:        autherror.NewApiError(autherror.CodeInternalError, "boom"),
			wantName:   "ApiError",
			wantCode:   autherror.CodeInternalError,
			wantStatus: fiber.StatusInternalServerError,
		},
		{
			name:       "unauthorized access",
			err:        autherror.NewUnauthorizedAccessError(autherror.CodeBadLogin, "Bad login"),
			wantName:   "UnauthorizedAccessError",
			wantCode:   autherror.CodeBadLogin,
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "forbidden operation",
			err:        autherror.NewForbiddenOperationError(),
			wantName:   "ForbiddenOperationError",
			wantCode:   autherror.CodeForbiddenOperation,
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "not found resource",
			err:        autherror.NewNotFoundResourceError("/api/nowhere"),
			wantName:   "NotFoundResourceError",
			wantCode:   autherror.CodeResourceNotFound,
			wantStatus: fiber.StatusNotFound,
		},
		{
			name:       "bad request",
			err:        autherror.NewBadRequestError(autherror.CodeInvalidInput, "invalid input"),
			wantName:   "BadRequestError",
			wantCode:   autherror.CodeInvalidInput,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.err.Name)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.StatusCode)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestApiError_Error(t *testing.T) {
	err := autherror.NewUnauthorizedAccessError(autherror.CodeBadPassword, "Bad password")

	assert.Equal(t, "Bad password", err.Error())
}

func TestNotFoundResourceError_Message(t *testing.T) {
	err := autherror.NewNotFoundResourceError("/api/ghost")

	assert.Equal(t, "Resource '/api/ghost' not found", err.Message)
}

func TestSentinels(t *testing.T) {
	t.Run("errors.Is matches", func(t *testing.T) {
		wrapped := fmt.Errorf("verify: %w", autherror.ErrJwtTokenExpired)

		assert.ErrorIs(t, wrapped, autherror.ErrJwtTokenExpired)
		assert.NotErrorIs(t, wrapped, autherror.ErrJwtTokenSignature)
	})

	t.Run("errors.As extracts", func(t *testing.T) {
		var apiErr *autherror.ApiError
		require.True(t, errors.As(fmt.Errorf("auth: %w", autherror.ErrNoJwtToken), &apiErr))
		assert.Equal(t, autherror.CodeMissingToken, apiErr.Code)
		assert.Equal(t, fiber.StatusUnauthorized, apiErr.StatusCode)
	})
}

// The status code drives the HTTP status only and must stay out of the body.
func TestApiError_JSONShape(t *testing.T) {
	body, err := json.Marshal(autherror.NewForbiddenOperationError())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))

	assert.Equal(t, "ForbiddenOperationError", fields["name"])
	assert.Equal(t, autherror.CodeForbiddenOperation, fields["code"])
	assert.Equal(t, "Operation is not allowed", fields["message"])
	assert.NotContains(t, fields, "statusCode")
	assert.NotContains(t, fields, "StatusCode")
}
