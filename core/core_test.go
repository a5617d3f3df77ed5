package core_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkvaulthq/linkvault/core"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind core.Kind
		want int
	}{
		{core.KindInvalidInput, http.StatusBadRequest},
		{core.KindInvalidOrExpired, http.StatusBadRequest},
		{core.KindInvalidCredentials, http.StatusBadRequest},
		{core.KindUnauthorized, http.StatusUnauthorized},
		{core.KindForbidden, http.StatusForbidden},
		{core.KindNotFound, http.StatusNotFound},
		{core.KindConflict, http.StatusConflict},
		{core.KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, core.HTTPStatus(core.NewError(tc.kind, "x")))
	}

	assert.Equal(t, http.StatusInternalServerError, core.HTTPStatus(errors.New("plain")))
}

func TestHTTPStatusWrapped(t *testing.T) {
	t.Parallel()

	inner := core.NewError(core.KindNotFound, "User not found")
	wrapped := fmt.Errorf("lookup: %w", inner)
	assert.Equal(t, http.StatusNotFound, core.HTTPStatus(wrapped))
	assert.Equal(t, "User not found", core.ClientMessage(wrapped))
}

func TestClientMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error exposes its message", func(t *testing.T) {
		t.Parallel()
		err := core.NewError(core.KindConflict, "User already exists")
		assert.Equal(t, "User already exists", core.ClientMessage(err))
	})

	t.Run("internal cause never leaks", func(t *testing.T) {
		t.Parallel()
		err := core.WrapError(core.KindInternal, "Internal server error", errors.New("pq: connection refused"))
		assert.Equal(t, "Internal server error", core.ClientMessage(err))
		assert.NotContains(t, core.ClientMessage(err), "pq:")
	})

	t.Run("plain error becomes opaque", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal server error", core.ClientMessage(errors.New("boom")))
	})
}

func TestRespondError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	core.RespondError(rec, core.NewError(core.KindInvalidCredentials, "Invalid email or password"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body core.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid email or password", body.Message)
}

func TestRespondJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	core.RespondJSON(rec, http.StatusCreated, "User created", map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "User created", body.Message)
	assert.Equal(t, "abc", body.Data["id"])
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Email string `json:"email"`
	}

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.c"}`))
		r.Header.Set("Content-Type", "application/json")

		var p payload
		require.NoError(t, core.DecodeJSON(r, &p))
		assert.Equal(t, "a@b.c", p.Email)
	})

	t.Run("empty body leaves zero value", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("Content-Type", "application/json")

		var p payload
		require.NoError(t, core.DecodeJSON(r, &p))
		assert.Empty(t, p.Email)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		r.Header.Set("Content-Type", "application/json")

		var p payload
		err := core.DecodeJSON(r, &p)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, core.HTTPStatus(err))
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=a"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var p payload
		err := core.DecodeJSON(r, &p)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, core.HTTPStatus(err))
	})

	t.Run("content type with charset parameter", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"x@y.z"}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var p payload
		require.NoError(t, core.DecodeJSON(r, &p))
		assert.Equal(t, "x@y.z", p.Email)
	})
}
