package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, Conflict.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFound.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, Invalid.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized.HTTPStatus())
	assert.Equal(t, http.StatusForbidden, Forbidden.HTTPStatus())
	// expired credentials are an auth failure on the wire
	assert.Equal(t, http.StatusUnauthorized, Expired.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Internal.HTTPStatus())
}

func TestSentinelMatching(t *testing.T) {
	sentinel := New(NotFound, "User not found")

	assert.ErrorIs(t, New(NotFound, "User not found"), sentinel)
	assert.NotErrorIs(t, New(NotFound, "Post not found"), sentinel)
	assert.NotErrorIs(t, New(Conflict, "User not found"), sentinel)
	assert.NotErrorIs(t, errors.New("User not found"), sentinel)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Internal, "lookup failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, Internal, KindOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindOfUntyped(t *testing.T) {
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
}
