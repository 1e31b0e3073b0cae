package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORS allows the configured origins (comma separated, "*" for any) to call the API
// with a bearer token.
func CORS(origins string, next http.Handler) http.Handler {
	var allowed []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}).Handler(next)
}
