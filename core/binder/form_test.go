package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/bindkit/core/binder"
	"github.com/forgeworks/bindkit/core/binding"
	"github.com/forgeworks/bindkit/core/handler"
	"github.com/forgeworks/bindkit/core/registry"
)

type updateProfileRequest struct {
	Name     string   `form:"name"`
	Tags     []string `form:"tags"`
	Public   bool     `form:"public"`
	Internal string   `form:"-"`
}

func TestForm(t *testing.T) {
	t.Parallel()

	cfg := binder.DefaultConfig()
	p := binding.Param[updateProfileRequest]("request")

	t.Run("urlencoded form", func(t *testing.T) {
		t.Parallel()

		form := url.Values{
			"name":   {"Ada"},
			"tags":   {"go", "web"},
			"public": {"on"},
		}
		ctx := bodyContext(t, http.MethodPost, "application/x-www-form-urlencoded", form.Encode())
		out := binder.Form[updateProfileRequest](cfg)(ctx, p)
		require.Equal(t, http.StatusOK, out.Status)

		assert.Equal(t, "Ada", out.Value.Name)
		assert.Equal(t, []string{"go", "web"}, out.Value.Tags)
		assert.True(t, out.Value.Public)
	})

	t.Run("missing content type declines with 415", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "", "name=Ada")
		out := binder.Form[updateProfileRequest](cfg)(ctx, p)
		assert.Equal(t, http.StatusUnsupportedMediaType, out.Status)
	})

	t.Run("non-form media type declines with 415", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "application/json", `{"name":"Ada"}`)
		out := binder.Form[updateProfileRequest](cfg)(ctx, p)
		assert.Equal(t, http.StatusUnsupportedMediaType, out.Status)
	})

	t.Run("invalid multipart boundary declines with 400", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "multipart/form-data; boundary=bad\rboundary", "ignored")
		out := binder.Form[updateProfileRequest](cfg)(ctx, p)
		assert.Equal(t, http.StatusBadRequest, out.Status)
	})
}

type profilePath struct {
	UserID   int    `path:"id"`
	Username string `path:"username"`
}

func TestPath(t *testing.T) {
	t.Parallel()

	params := map[string]string{"id": "7", "username": "ada"}
	extractor := func(r *http.Request, name string) string {
		return params[name]
	}

	pathContext := func(t *testing.T) *handler.Context {
		t.Helper()
		r := httptest.NewRequest(http.MethodGet, "/users/7/profile/ada", nil)
		return handler.NewContext(httptest.NewRecorder(), r,
			handler.WithServices(registry.New()),
			handler.WithParams(params),
		)
	}

	t.Run("scalar path value", func(t *testing.T) {
		t.Parallel()

		out := binder.Path[int](extractor)(pathContext(t), binding.Param[int]("id"))
		require.Equal(t, http.StatusOK, out.Status)
		assert.Equal(t, 7, out.Value)
	})

	t.Run("struct path values", func(t *testing.T) {
		t.Parallel()

		out := binder.Path[profilePath](extractor)(pathContext(t), binding.Param[profilePath]("request"))
		require.Equal(t, http.StatusOK, out.Status)
		assert.Equal(t, 7, out.Value.UserID)
		assert.Equal(t, "ada", out.Value.Username)
	})

	t.Run("context params as extractor", func(t *testing.T) {
		t.Parallel()

		ctxExtractor := func(r *http.Request, name string) string {
			return params[name]
		}
		ctx := pathContext(t)
		assert.Equal(t, "7", ctx.Param("id"))

		out := binder.Path[int](ctxExtractor)(ctx, binding.Param[int]("id"))
		assert.Equal(t, http.StatusOK, out.Status)
	})

	t.Run("missing required value declines with 400", func(t *testing.T) {
		t.Parallel()

		out := binder.Path[int](extractor)(pathContext(t), binding.Param[int]("missing"))
		assert.Equal(t, http.StatusBadRequest, out.Status)
	})

	t.Run("missing optional value succeeds without value", func(t *testing.T) {
		t.Parallel()

		p := binding.Param[int]("missing", binding.AttrOptional, "true")
		out := binder.Path[int](extractor)(pathContext(t), p)
		assert.Equal(t, http.StatusOK, out.Status)
		assert.False(t, out.Present)
	})

	t.Run("conversion failure declines with 400", func(t *testing.T) {
		t.Parallel()

		out := binder.Path[int](extractor)(pathContext(t), binding.Param[int]("username"))
		assert.Equal(t, http.StatusBadRequest, out.Status)
	})

	t.Run("nil extractor declines with 500", func(t *testing.T) {
		t.Parallel()

		out := binder.Path[int](nil)(pathContext(t), binding.Param[int]("id"))
		assert.Equal(t, http.StatusInternalServerError, out.Status)
	})
}

func TestDefault_Dispatch(t *testing.T) {
	t.Parallel()

	cfg := binder.DefaultConfig()

	t.Run("json content type binds body", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "application/json", `{"name":"Ada"}`)
		out := binder.Default[createUserRequest](cfg)(ctx, binding.Param[createUserRequest]("request"))
		require.Equal(t, http.StatusOK, out.Status)
		assert.Equal(t, "Ada", out.Value.Name)
	})

	t.Run("form content type binds form", func(t *testing.T) {
		t.Parallel()

		ctx := bodyContext(t, http.MethodPost, "application/x-www-form-urlencoded", "name=Ada")
		out := binder.Default[updateProfileRequest](cfg)(ctx, binding.Param[updateProfileRequest]("request"))
		require.Equal(t, http.StatusOK, out.Status)
		assert.Equal(t, "Ada", out.Value.Name)
	})

	t.Run("no body binds query", func(t *testing.T) {
		t.Parallel()

		out := binder.Default[int](cfg)(queryContext(t, "/?id=42"), binding.Param[int]("id"))
		require.Equal(t, http.StatusOK, out.Status)
		assert.Equal(t, 42, out.Value)
	})

	t.Run("pinned source overrides request shape", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/?id=42", nil)
		r.Header.Set("Content-Type", "application/json")
		ctx := handler.NewContext(httptest.NewRecorder(), r, handler.WithServices(registry.New()))

		p := binding.Param[int]("id", binding.AttrSource, "query")
		out := binder.Default[int](cfg)(ctx, p)
		require.Equal(t, http.StatusOK, out.Status)
		assert.Equal(t, 42, out.Value)
	})
}
