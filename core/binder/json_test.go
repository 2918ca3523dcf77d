package binder_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/bindkit/core/binder"
	"github.com/forgeworks/bindkit/core/binding"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	cfg := binder.DefaultConfig()
	p := binding.Param[createUserRequest]("request")

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "application/json",
			`{"name":"Ada","email":"ada@example.com","age":36}`)
		out := binder.JSON[createUserRequest](cfg)(ctx, p)
		require.Equal(t, http.StatusOK, out.Status)
		require.True(t, out.Present)
		assert.Equal(t, "Ada", out.Value.Name)
		assert.Equal(t, 36, out.Value.Age)
	})

	t.Run("charset parameter in content type is accepted", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "application/json; charset=utf-8", `{"name":"Ada"}`)
		out := binder.JSON[createUserRequest](cfg)(ctx, p)
		assert.Equal(t, http.StatusOK, out.Status)
	})

	t.Run("missing content type declines with 415", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "", `{"name":"Ada"}`)
		out := binder.JSON[createUserRequest](cfg)(ctx, p)
		assert.Equal(t, http.StatusUnsupportedMediaType, out.Status)
	})

	t.Run("wrong media type declines with 415", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "text/plain", `{"name":"Ada"}`)
		out := binder.JSON[createUserRequest](cfg)(ctx, p)
		assert.Equal(t, http.StatusUnsupportedMediaType, out.Status)
	})

	t.Run("malformed body declines with 400", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "application/json", `{"name":`)
		out := binder.JSON[createUserRequest](cfg)(ctx, p)
		assert.Equal(t, http.StatusBadRequest, out.Status)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "application/json", `{"name":"Ada","rank":1}`)
		out := binder.JSON[createUserRequest](cfg)(ctx, p)
		assert.Equal(t, http.StatusBadRequest, out.Status)
	})

	t.Run("trailing data is rejected", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "application/json", `{"name":"Ada"}{"name":"Eve"}`)
		out := binder.JSON[createUserRequest](cfg)(ctx, p)
		assert.Equal(t, http.StatusBadRequest, out.Status)
	})

	t.Run("empty body declines with 400 for required parameter", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "application/json", "")
		out := binder.JSON[createUserRequest](cfg)(ctx, p)
		assert.Equal(t, http.StatusBadRequest, out.Status)
	})

	t.Run("empty body succeeds without value for optional parameter", func(t *testing.T) {
		t.Parallel()

		optional := binding.Param[createUserRequest]("request", binding.AttrOptional, "true")
		ctx := bodyContext(t, http.MethodPost, "application/json", "")
		out := binder.JSON[createUserRequest](cfg)(ctx, optional)
		assert.Equal(t, http.StatusOK, out.Status)
		assert.False(t, out.Present)
	})

	t.Run("oversized body declines with 413", func(t *testing.T) {
		t.Parallel()

		small := binder.Config{MaxJSONSize: 16}
		ctx := bodyContext(t, http.MethodPost, "application/json",
			`{"name":"`+strings.Repeat("a", 64)+`"}`)
		out := binder.JSON[createUserRequest](small)(ctx, p)
		assert.Equal(t, http.StatusRequestEntityTooLarge, out.Status)
	})

	t.Run("string fields are sanitized", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "application/json",
			`{"name":"Ada\r\nSet-Cookie: x"}`)
		out := binder.JSON[createUserRequest](cfg)(ctx, p)
		require.Equal(t, http.StatusOK, out.Status)
		assert.Equal(t, "AdaSet-Cookie: x", out.Value.Name)
	})
}
