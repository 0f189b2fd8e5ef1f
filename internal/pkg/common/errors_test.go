package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorMessage(t *testing.T) {
	e := NewError("SOME_CODE", "高層訊息", http.StatusTeapot, nil)
	assert.Equal(t, "高層訊息", e.Error())
	assert.Equal(t, "SOME_CODE", e.Code)
	assert.Equal(t, http.StatusTeapot, e.Status)
}

func TestCustomErrorWrapsOriginal(t *testing.T) {
	cause := errors.New("connection refused")
	e := NewError("SOME_CODE", "高層訊息", http.StatusBadGateway, cause)
	assert.Equal(t, "connection refused", e.Error())
}

func TestPredefinedErrors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrInvalidRequest.Status)
	assert.Equal(t, ErrCodeInvalidRequest, ErrInvalidRequest.Code)
	assert.Equal(t, http.StatusInternalServerError, ErrInternalError.Status)
	assert.Equal(t, http.StatusGatewayTimeout, ErrGatewayTimeout.Status)
	assert.Equal(t, http.StatusBadGateway, ErrUpstreamFailure.Status)
	assert.Equal(t, ErrCodeUpstreamFailure, ErrUpstreamFailure.Code)
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("欄位缺漏")))
	assert.False(t, IsValidationError(errors.New("other")))
	assert.Equal(t, "欄位缺漏", NewValidationError("欄位缺漏").Error())
}
