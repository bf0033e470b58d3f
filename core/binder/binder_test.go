package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validbind/core/binder"
)

func TestQuery(t *testing.T) {
	type SearchRequest struct {
		Query    string   `query:"q"`
		Page     int      `query:"page"`
		Tags     []string `query:"tags"`
		Active   *bool    `query:"active"`
		Fallback string
		Internal string `query:"-"`
	}

	t.Run("binds all supported kinds", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/search?q=golang&page=3&tags=a&tags=b&active=true&fallback=x&internal=nope", nil)

		var req SearchRequest
		require.NoError(t, binder.Query()(r, &req))

		assert.Equal(t, "golang", req.Query)
		assert.Equal(t, 3, req.Page)
		assert.Equal(t, []string{"a", "b"}, req.Tags)
		require.NotNil(t, req.Active)
		assert.True(t, *req.Active)
		assert.Equal(t, "x", req.Fallback, "untagged field binds by lowercased name")
		assert.Empty(t, req.Internal)
	})

	t.Run("comma separated slice", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/search?tags=go,web,%20api", nil)

		var req SearchRequest
		require.NoError(t, binder.Query()(r, &req))
		assert.Equal(t, []string{"go", "web", "api"}, req.Tags)
	})

	t.Run("missing params leave zero values", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/search", nil)

		var req SearchRequest
		require.NoError(t, binder.Query()(r, &req))
		assert.Zero(t, req.Page)
		assert.Nil(t, req.Active)
	})

	t.Run("type mismatch wraps sentinel", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/search?page=abc", nil)

		var req SearchRequest
		err := binder.Query()(r, &req)
		assert.ErrorIs(t, err, binder.ErrDeserializeQuery)
	})

	t.Run("strips control characters", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/search?q="+url.QueryEscape("a\r\nb\x00c"), nil)

		var req SearchRequest
		require.NoError(t, binder.Query()(r, &req))
		assert.Equal(t, "abc", req.Query)
	})
}

func TestJSON(t *testing.T) {
	type CreateRequest struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	newJSONRequest := func(body string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		return r
	}

	t.Run("binds valid body", func(t *testing.T) {
		var req CreateRequest
		require.NoError(t, binder.JSON()(newJSONRequest(`{"name":"Ada","age":36}`), &req))
		assert.Equal(t, "Ada", req.Name)
		assert.Equal(t, 36, req.Age)
	})

	t.Run("content type with charset", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Ada"}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var req CreateRequest
		assert.NoError(t, binder.JSON()(r, &req))
	})

	t.Run("missing content type", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`))

		var req CreateRequest
		assert.ErrorIs(t, binder.JSON()(r, &req), binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "text/plain")

		var req CreateRequest
		assert.ErrorIs(t, binder.JSON()(r, &req), binder.ErrUnsupportedMediaType)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		var req CreateRequest
		err := binder.JSON()(newJSONRequest(`{"name":"Ada","nope":1}`), &req)
		assert.ErrorIs(t, err, binder.ErrDeserializeJSON)
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		var req CreateRequest
		err := binder.JSON()(newJSONRequest(`{"name":"Ada"}{"again":true}`), &req)
		assert.ErrorIs(t, err, binder.ErrDeserializeJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		var req CreateRequest
		err := binder.JSON()(newJSONRequest(""), &req)
		assert.ErrorIs(t, err, binder.ErrDeserializeJSON)
	})

	t.Run("body over limit", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("x", 100) + `"}`

		var req CreateRequest
		err := binder.JSONLimited(64)(newJSONRequest(body), &req)
		assert.ErrorIs(t, err, binder.ErrDeserializeJSON)
	})

	t.Run("strips control characters from strings", func(t *testing.T) {
		var req CreateRequest
		require.NoError(t, binder.JSON()(newJSONRequest(`{"name":"a\r\nb"}`), &req))
		assert.Equal(t, "ab", req.Name)
	})
}

func TestForm(t *testing.T) {
	type UploadRequest struct {
		Title  string                  `form:"title"`
		Tags   []string                `form:"tags"`
		Avatar *multipart.FileHeader   `file:"avatar"`
		Docs   []*multipart.FileHeader `file:"docs"`
	}

	t.Run("urlencoded", func(t *testing.T) {
		form := url.Values{"title": {"hello"}, "tags": {"a", "b"}}
		r := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req UploadRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "hello", req.Title)
		assert.Equal(t, []string{"a", "b"}, req.Tags)
	})

	t.Run("multipart with files", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("title", "report"))

		fw, err := w.CreateFormFile("avatar", "../../etc/passwd")
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r := httptest.NewRequest(http.MethodPost, "/upload", &buf)
		r.Header.Set("Content-Type", w.FormDataContentType())

		var req UploadRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "report", req.Title)
		require.NotNil(t, req.Avatar)
		assert.Equal(t, "passwd", req.Avatar.Filename, "uploaded filename is reduced to its base")
	})

	t.Run("missing content type", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/upload", nil)

		var req UploadRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")

		var req UploadRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrUnsupportedMediaType)
	})
}

func TestPath(t *testing.T) {
	type ProfileRequest struct {
		UserID string `path:"id"`
		Page   int    `path:"page"`
	}

	params := map[string]string{"id": "u-42", "page": "7"}
	paramFunc := func(_ *http.Request, name string) string { return params[name] }

	t.Run("binds path segments", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/users/u-42/7", nil)

		var req ProfileRequest
		require.NoError(t, binder.Path(paramFunc)(r, &req))
		assert.Equal(t, "u-42", req.UserID)
		assert.Equal(t, 7, req.Page)
	})

	t.Run("nil param func", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/users/u-42", nil)

		var req ProfileRequest
		assert.ErrorIs(t, binder.Path(nil)(r, &req), binder.ErrDeserializePath)
	})

	t.Run("conversion failure wraps sentinel", func(t *testing.T) {
		bad := func(_ *http.Request, name string) string { return "nan" }
		r := httptest.NewRequest(http.MethodGet, "/users/nan", nil)

		var req ProfileRequest
		assert.ErrorIs(t, binder.Path(bad)(r, &req), binder.ErrDeserializePath)
	})
}
