package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtutil "edurev/backend/app/jwt"
	"edurev/backend/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator map[string]*jwtutil.Claims

func (f fakeValidator) Validate(_ context.Context, token string) (*jwtutil.Claims, error) {
	if token == "broken" {
		return nil, errors.New("redis down")
	}
	c, ok := f[token]
	if !ok {
		return nil, services.ErrAuthRequired
	}
	return c, nil
}

func newMux(a *Auth) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /users/{id}", a.RequireSelf(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))
	return mux
}

func do(h http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireSelf(t *testing.T) {
	a := &Auth{Enforce: true, Sessions: fakeValidator{"t1": {UserID: 1}}}
	mux := newMux(a)

	assert.Equal(t, http.StatusTeapot, do(mux, "/users/1", "t1").Code)
	assert.Equal(t, http.StatusUnauthorized, do(mux, "/users/1", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(mux, "/users/1", "unknown").Code)
	assert.Equal(t, http.StatusForbidden, do(mux, "/users/2", "t1").Code)
	assert.Equal(t, http.StatusTeapot, do(mux, "/users/abc", "t1").Code, "handler decides on bad ids")

	rec := do(mux, "/users/1", "broken")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Server error"}`, rec.Body.String())
}

func TestRequireSelf_NotEnforced(t *testing.T) {
	mux := newMux(&Auth{Enforce: false})
	assert.Equal(t, http.StatusTeapot, do(mux, "/users/2", "").Code)
}

func TestRequireAuth_StoresClaims(t *testing.T) {
	a := &Auth{Enforce: true, Sessions: fakeValidator{"t1": {UserID: 5, Role: "student"}}}
	var got *jwtutil.Claims
	h := a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClaims(r.Context())
	}))
	do(h, "/", "t1")
	require.NotNil(t, got)
	assert.Equal(t, uint(5), got.UserID)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, BearerToken(req))
	req.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, BearerToken(req))
	req.Header.Set("Authorization", "Bearer abc ")
	assert.Equal(t, "abc", BearerToken(req))
}

func TestCORS(t *testing.T) {
	called := false
	h := CORS("https://app.example, https://admin.example", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodOptions, "/api/users/1", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
	assert.False(t, called)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://admin.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.True(t, called)
	assert.Equal(t, "https://admin.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AnyOrigin(t *testing.T) {
	h := CORS("", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
