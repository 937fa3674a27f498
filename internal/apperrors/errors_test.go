package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *ServiceError
		code       string
		errType    ErrorType
		message    string
		statusCode int
	}{
		{
			name:       "invalid parameter",
			err:        NewInvalidParameterError("The user id %s is invalid", "-100"),
			code:       CodeInvalidParameter,
			errType:    Client,
			message:    "The user id -100 is invalid",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "not found",
			err:        NewResourceNotFoundError("The related user info for user id %d is not found", 7),
			code:       CodeResourceNotFound,
			errType:    Client,
			message:    "The related user info for user id 7 is not found",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "invalid credentials",
			err:        NewInvalidCredentialsError(),
			code:       CodeInvalidCredentials,
			errType:    Client,
			message:    "The username or password is invalid",
			statusCode: http.StatusUnauthorized,
		},
		{
			name:       "unauthorized",
			err:        NewUnauthorizedError(),
			code:       CodeUnauthorized,
			errType:    Client,
			message:    "Unauthorized",
			statusCode: http.StatusUnauthorized,
		},
		{
			name:       "internal",
			err:        NewInternalError(),
			code:       CodeInternalError,
			errType:    Unknown,
			message:    "Internal server error",
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.errType, tt.err.Type)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.Equal(t, tt.message, tt.err.Error())
			assert.Equal(t, tt.statusCode, tt.err.StatusCode)
		})
	}
}

func TestServiceError_Is(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewResourceNotFoundError("missing"))

	assert.True(t, errors.Is(wrapped, ErrResourceNotFound))
	assert.False(t, errors.Is(wrapped, ErrInvalidParameter))
	assert.False(t, errors.Is(errors.New("plain"), ErrResourceNotFound))

	var svcErr *ServiceError
	assert.True(t, errors.As(wrapped, &svcErr))
	assert.Equal(t, "missing", svcErr.Message)
}
