package router

import (
	"net/http"

	"edurev/backend/app/controllers"
	"edurev/backend/app/middleware"
)

type Controllers struct {
	HTTP       *controllers.HTTPController
	Auth       *controllers.AuthController
	Users      *controllers.UserController
	Assistant  *controllers.AssistantController
	Summarizer *controllers.SummarizerController
}

func NewRouter(c Controllers, mw *middleware.Auth) *http.ServeMux {
	mux := http.NewServeMux()
	// public
	mux.HandleFunc("GET /{$}", c.HTTP.Root)
	mux.HandleFunc("GET /healthz", c.HTTP.Health)
	mux.HandleFunc("POST /api/signup", c.Auth.Signup)
	mux.HandleFunc("POST /api/login", c.Auth.Login)
	mux.HandleFunc("POST /api/logout", c.Auth.Logout)

	// profile, owner only when sessions are enforced
	mux.Handle("GET /api/users/{id}", mw.RequireSelf(http.HandlerFunc(c.Users.Get)))
	mux.Handle("PUT /api/users/{id}", mw.RequireSelf(http.HandlerFunc(c.Users.Update)))

	// learning tools
	mux.HandleFunc("POST /api/ask", c.Assistant.Ask)
	mux.HandleFunc("GET /api/summarize/chapters", c.Summarizer.Chapters)
	mux.HandleFunc("POST /api/summarize", c.Summarizer.Summarize)

	return mux
}
