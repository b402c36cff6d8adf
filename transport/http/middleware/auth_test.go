package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"streakhub/infras/jwt"
	jwtMocks "streakhub/infras/jwt/mocks"
	otelMocks "streakhub/infras/otel/mocks"
	"streakhub/permissions"
	"streakhub/shared/cache"
	cacheMocks "streakhub/shared/cache/mocks"
	"streakhub/shared/constant"
	"streakhub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type authMocks struct {
	jwt   *jwtMocks.MockJWT
	cache *cacheMocks.MockRedisCache
}

func newAuthMiddleware(t *testing.T) (middleware.AuthRole, *authMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &authMocks{
		jwt:   jwtMocks.NewMockJWT(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	return middleware.NewAuthRoleMiddleware(m.jwt, otelMocks.NewOtel(), permissions.Get(), m.cache), m
}

// serveAuthed sends a request through a router guarded by the auth
// middleware and reports the user ID the handler saw, if it ran.
func serveAuthed(t *testing.T, authMiddleware middleware.AuthRole, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotUserID string

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(authMiddleware.Auth)
		r.Get("/todos", func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = r.Context().Value(constant.ContextKeyUserID).(string)
			w.WriteHeader(http.StatusOK)
		})
	})

	request := httptest.NewRequest(http.MethodGet, "/v1/todos", nil)
	if header != "" {
		request.Header.Set(constant.RequestHeaderAuthorization, header)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder, gotUserID
}

func TestAuthMiddleware(t *testing.T) {
	claims := &jwt.Claims{
		UserID:   "user-1",
		Username: "alice",
		TokenID:  "token-1",
	}

	t.Run("rejects a denylisted token", func(t *testing.T) {
		authMiddleware, m := newAuthMiddleware(t)

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(claims, nil)
		m.cache.EXPECT().
			Get(gomock.Any(), constant.CacheKeyTokenDenylist+"token-1", gomock.Any()).
			Return(nil)

		recorder, gotUserID := serveAuthed(t, authMiddleware, "Bearer valid-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Token has been revoked")
		assert.Empty(t, gotUserID)
	})

	t.Run("accepts a token absent from the denylist", func(t *testing.T) {
		authMiddleware, m := newAuthMiddleware(t)

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(claims, nil)
		m.cache.EXPECT().
			Get(gomock.Any(), constant.CacheKeyTokenDenylist+"token-1", gomock.Any()).
			Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))

		recorder, gotUserID := serveAuthed(t, authMiddleware, "Bearer valid-token")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "user-1", gotUserID)
	})

	t.Run("allows the request through when the cache is unreachable", func(t *testing.T) {
		authMiddleware, m := newAuthMiddleware(t)

		m.jwt.EXPECT().
			ValidateToken("valid-token", jwt.AccessToken).
			Return(claims, nil)
		m.cache.EXPECT().
			Get(gomock.Any(), constant.CacheKeyTokenDenylist+"token-1", gomock.Any()).
			Return(errors.New("dial tcp: connection refused"))

		recorder, gotUserID := serveAuthed(t, authMiddleware, "Bearer valid-token")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "user-1", gotUserID)
	})

	t.Run("rejects a missing authorization header", func(t *testing.T) {
		authMiddleware, _ := newAuthMiddleware(t)

		recorder, _ := serveAuthed(t, authMiddleware, "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Missing authorization header")
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		authMiddleware, m := newAuthMiddleware(t)

		m.jwt.EXPECT().
			ValidateToken("bad-token", jwt.AccessToken).
			Return(nil, jwt.ErrInvalidToken)

		recorder, _ := serveAuthed(t, authMiddleware, "Bearer bad-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid token")
	})

	t.Run("skips configured public routes", func(t *testing.T) {
		authMiddleware, _ := newAuthMiddleware(t)

		router := chi.NewRouter()
		router.Route("/v1", func(r chi.Router) {
			r.Use(authMiddleware.Auth)
			r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})

		request := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
