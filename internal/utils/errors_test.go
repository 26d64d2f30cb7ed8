package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus_CodeMapping(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeTimeout, http.StatusGatewayTimeout},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		err := E(c.code, "Op", "message", nil)
		assert.Equal(t, c.want, HTTPStatus(err), string(c.code))
	}
}

func TestHTTPStatus_Fallbacks(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestIsCode_UnwrapsThroughWrapping(t *testing.T) {
	inner := E(CodeTimeout, "Inner", "deadline exceeded", nil)
	assert.True(t, IsCode(inner, CodeTimeout))
	assert.False(t, IsCode(inner, CodeInternal))
	assert.False(t, IsCode(errors.New("plain"), CodeTimeout))
}
