package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	jwtutil "edurev/backend/app/jwt"
	"edurev/backend/app/services"
	"edurev/backend/global"
)

type ctxKey int

const ClaimsKey ctxKey = 1

// SessionValidator resolves a bearer token to the claims of a live session.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*jwtutil.Claims, error)
}

type Auth struct {
	Sessions SessionValidator
	// Enforce turns RequireAuth and RequireSelf into pass-throughs when false.
	Enforce bool
}

func BearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Enforce {
			next.ServeHTTP(w, r)
			return
		}
		token := BearerToken(r)
		if token == "" {
			writeError(w, services.ErrAuthRequired)
			return
		}
		claims, err := a.Sessions.Validate(r.Context(), token)
		if err != nil {
			var se *services.Error
			if !errors.As(err, &se) {
				global.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("session validation failed")
				se = services.ErrInternal
			}
			writeError(w, se)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSelf lets a request through only when the session belongs to the user
// named by the {id} path value. Unparseable ids are left to the handler.
func (a *Auth) RequireSelf(next http.Handler) http.Handler {
	return a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Enforce {
			next.ServeHTTP(w, r)
			return
		}
		id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
		if err == nil {
			if claims := GetClaims(r.Context()); claims == nil || uint64(claims.UserID) != id {
				writeError(w, services.ErrForbidden)
				return
			}
		}
		next.ServeHTTP(w, r)
	}))
}

func writeError(w http.ResponseWriter, e *services.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Kind.Status())
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": e.Message})
}
