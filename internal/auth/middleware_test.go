package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTokenFromHeader(t *testing.T) {
	t.Run("valid bearer token", func(t *testing.T) {
		token, err := ExtractTokenFromHeader("Bearer abc123")
		require.NoError(t, err)
		assert.Equal(t, "abc123", token)
	})

	t.Run("case insensitive scheme", func(t *testing.T) {
		token, err := ExtractTokenFromHeader("bearer abc123")
		require.NoError(t, err)
		assert.Equal(t, "abc123", token)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := ExtractTokenFromHeader("")
		assert.Error(t, err)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		_, err := ExtractTokenFromHeader("Basic abc123")
		assert.Error(t, err)
	})
}

func TestUserClaimsContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserClaims(ctx)
	assert.False(t, ok)

	claims := &UserClaims{UID: "user-1", Email: "owner@shop.test"}
	ctx = WithUserClaims(ctx, claims)

	got, ok := GetUserClaims(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", got.UID)

	uid, ok := GetUserID(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", uid)
}

func TestRequireUserAccess(t *testing.T) {
	ctx := WithUserClaims(context.Background(), &UserClaims{UID: "user-1"})

	t.Run("own resources", func(t *testing.T) {
		claims, err := RequireUserAccess(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UID)
	})

	t.Run("empty requested user falls back to caller", func(t *testing.T) {
		_, err := RequireUserAccess(ctx, "")
		assert.NoError(t, err)
	})

	t.Run("someone else's resources", func(t *testing.T) {
		_, err := RequireUserAccess(ctx, "user-2")
		assert.Error(t, err)
	})

	t.Run("unauthenticated context", func(t *testing.T) {
		_, err := RequireUserAccess(context.Background(), "user-1")
		assert.Error(t, err)
	})
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	handler := Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/expenses", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareAllowsPublicEndpoints(t *testing.T) {
	reached := false
	handler := Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, reached)
}

func TestLocalDevMiddleware(t *testing.T) {
	var got *UserClaims
	handler := LocalDevMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetUserClaims(r.Context())
	}))

	t.Run("default identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/expenses", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		require.NotNil(t, got)
		assert.Equal(t, "local-dev-user", got.UID)
	})

	t.Run("impersonation header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/expenses", nil)
		req.Header.Set("X-Debug-Impersonate-User", "alice")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		require.NotNil(t, got)
		assert.Equal(t, "alice", got.UID)
	})
}

func TestNormalizePageSize(t *testing.T) {
	assert.Equal(t, int32(100), NormalizePageSize(0))
	assert.Equal(t, int32(100), NormalizePageSize(-5))
	assert.Equal(t, int32(50), NormalizePageSize(50))
	assert.Equal(t, int32(1000), NormalizePageSize(5000))
}

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange("2024-01-01", "2024-06-30")
	require.NoError(t, err)
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, 2024, start.Year())

	start, end, err = ParseDateRange("", "")
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)

	_, _, err = ParseDateRange("yesterday", "")
	assert.Error(t, err)
}
