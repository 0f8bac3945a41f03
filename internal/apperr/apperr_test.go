package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errBase = errors.New("base")

func TestAppError(t *testing.T) {
	testCases := []struct {
		name            string
		err             *AppError
		expectedCode    codes.Code
		expectedMessage string
		expectedError   string
	}{
		{
			name:            "new without wrapped error",
			err:             New(codes.Unavailable, "try later"),
			expectedCode:    codes.Unavailable,
			expectedMessage: "try later",
			expectedError:   "try later",
		},
		{
			name:            "not found",
			err:             NotFound("file", "/a", errBase),
			expectedCode:    codes.NotFound,
			expectedMessage: "file '/a' not found",
			expectedError:   "file '/a' not found: base",
		},
		{
			name:            "already exists",
			err:             AlreadyExists("file", "/a", errBase),
			expectedCode:    codes.AlreadyExists,
			expectedMessage: "file '/a' already exists",
			expectedError:   "file '/a' already exists: base",
		},
		{
			name:            "resource exhausted",
			err:             ResourceExhausted("cannot create file", errBase),
			expectedCode:    codes.ResourceExhausted,
			expectedMessage: "cannot create file: base",
			expectedError:   "cannot create file: base: base",
		},
		{
			name:            "internal hides the cause",
			err:             Internal(errBase),
			expectedCode:    codes.Internal,
			expectedMessage: "an unexpected internal error occurred",
			expectedError:   "an unexpected internal error occurred: base",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedCode, tc.err.Code)
			assert.Equal(t, tc.expectedMessage, tc.err.Message)
			assert.EqualError(t, tc.err, tc.expectedError)
			assert.Equal(t, tc.expectedCode, status.Code(tc.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("file", "/a", errBase))

	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, err, errBase)
}
