package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL, Token: "test-token"}, nil)
}

func listRequest(arrayField string) domain.ListRequest {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("limit", "10")
	return domain.ListRequest{Path: "/api/reviews", ArrayField: arrayField, Query: q}
}

func TestFetchPageDataMetaEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(`{"data":[{"id":"r1"},{"id":"r2"}],"meta":{"total":95,"pages":10}}`))
	})

	page, err := c.FetchPage(context.Background(), listRequest("reviews"))
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 95, page.TotalCount)
	assert.Equal(t, 10, page.PageCount)
}

func TestFetchPageItemsTotalEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":"a"}],"total":21,"pages":3}`))
	})

	page, err := c.FetchPage(context.Background(), listRequest(""))
	require.NoError(t, err)
	assert.Equal(t, 21, page.TotalCount)
	assert.Equal(t, 3, page.PageCount)
}

func TestFetchPageNamedArrayField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reviews":[{"id":"a"},{"id":"b"},{"id":"c"}]}`))
	})

	page, err := c.FetchPage(context.Background(), listRequest("reviews"))
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	// No meta: total derived from items, pages from ceil(total/limit).
	assert.Equal(t, 3, page.TotalCount)
	assert.Equal(t, 1, page.PageCount)
}

func TestFetchPageBareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"x"},{"id":"y"}]`))
	})

	page, err := c.FetchPage(context.Background(), listRequest("reviews"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, page.IDs())
}

func TestFetchPageIntrospectionFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"results":[{"id":"z"}],"total":1}`))
	})

	page, err := c.FetchPage(context.Background(), listRequest(""))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "z", page.Items[0].ID())
}

func TestFetchPageNoArrayAnywhere(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	})

	_, err := c.FetchPage(context.Background(), listRequest(""))
	assert.Error(t, err)
}

func TestFetchPageErrorBodyMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid date range"}`))
	})

	_, err := c.FetchPage(context.Background(), listRequest(""))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid date range", apiErr.Message)
	assert.False(t, apiErr.Retryable())
}

func TestFetchPageGenericErrorFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	})

	_, err := c.FetchPage(context.Background(), listRequest(""))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
	assert.True(t, apiErr.Retryable())
}

func TestFetchPageUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.FetchPage(context.Background(), listRequest(""))
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestDoDecodesUpdatedEntity(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":"p1","status":"APPROVED"}`))
	})

	rec, err := c.Do(context.Background(), http.MethodPut, "/api/products/p1/approve", map[string]string{"reason": "ok"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "APPROVED", rec.Status())
}

func TestDoToleratesEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec, err := c.Do(context.Background(), http.MethodDelete, "/api/products/p1", nil)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestDoSurfacesAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"already published"}`))
	})

	_, err := c.Do(context.Background(), http.MethodPost, "/api/articles/a1/publish", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "already published", apiErr.Message)
}
