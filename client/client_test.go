package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(t *testing.T, data any) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{"success": true, "data": data})
	require.NoError(t, err)
	return body
}

func TestClient_GetCaching(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(envelope(t, []Category{{ID: 1, Name: "Engineering"}}))
	}))
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	first, err := c.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Engineering", first[0].Name)

	second, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, int64(1), hits.Load(), "second read must come from the cache")
}

func TestClient_CacheTTLExpiry(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write(envelope(t, []Tag{{ID: 1, Name: "Go"}}))
	}))
	defer server.Close()

	c := New(server.URL, WithCacheTTL(30*time.Millisecond))
	ctx := context.Background()

	_, err := c.Tags(ctx)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = c.Tags(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), hits.Load(), "expired entry must be refetched")
}

func TestClient_MutationInvalidatesResource(t *testing.T) {
	var listHits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			listHits.Add(1)
			_, _ = w.Write(envelope(t, []Category{{ID: 1, Name: "Engineering"}}))
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write(envelope(t, Category{ID: 2, Name: "Design"}))
		}
	}))
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	_, err := c.Categories(ctx)
	require.NoError(t, err)
	_, err = c.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), listHits.Load())

	_, err = c.CreateCategory(ctx, "Design")
	require.NoError(t, err)

	_, err = c.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), listHits.Load(), "mutation must drop the cached list")
}

func TestClient_MutationKeepsOtherResourcesCached(t *testing.T) {
	var tagHits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == apiPrefix+"/tags":
			tagHits.Add(1)
			_, _ = w.Write(envelope(t, []Tag{{ID: 1, Name: "Go"}}))
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write(envelope(t, Category{ID: 2, Name: "Design"}))
		default:
			_, _ = w.Write(envelope(t, []Category{}))
		}
	}))
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	_, err := c.Tags(ctx)
	require.NoError(t, err)

	_, err = c.CreateCategory(ctx, "Design")
	require.NoError(t, err)

	_, err = c.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tagHits.Load(), "unrelated resource must stay cached")
}

func TestClient_UnauthorizedClearsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"token expired"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("stale-token")

	_, err := c.Me(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Message)

	assert.Empty(t, c.Token(), "401 must clear the stored token")
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write(envelope(t, User{ID: 1, Name: "Admin"}))
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("abc123")

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_LoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write(envelope(t, LoginResponse{Token: "fresh-token", User: User{ID: 1}}))
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "fresh-token", result.Token)
	assert.Equal(t, "fresh-token", c.Token())
}

func TestClient_APIErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"record not found"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.BlogPostByID(context.Background(), 999)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "record not found", apiErr.Message)
}

func TestResourcePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/blogposts", "/api/v1/blogposts"},
		{"/api/v1/blogposts/7", "/api/v1/blogposts"},
		{"/api/v1/blogposts/7/publish", "/api/v1/blogposts"},
		{"/api/v1/newsletter/bulk", "/api/v1/newsletter"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resourcePath(tt.path), tt.path)
	}
}

func TestResponseCache(t *testing.T) {
	cache := newResponseCache(time.Minute)

	cache.set("GET /api/v1/tags", []byte("a"))
	cache.set("GET /api/v1/tags?page=2", []byte("b"))
	cache.set("GET /api/v1/categories", []byte("c"))

	_, found := cache.get("GET /api/v1/tags")
	assert.True(t, found)

	cache.invalidate("/api/v1/tags")

	_, found = cache.get("GET /api/v1/tags")
	assert.False(t, found)
	_, found = cache.get("GET /api/v1/tags?page=2")
	assert.False(t, found)
	_, found = cache.get("GET /api/v1/categories")
	assert.True(t, found)

	cache.clear()
	_, found = cache.get("GET /api/v1/categories")
	assert.False(t, found)
}
