package controllers

import (
	"context"
	"net/http"

	"edurev/backend/app/dto"
)

type HTTPController struct {
	// Ping checks the backing store; nil means always healthy.
	Ping func(ctx context.Context) error
}

func NewHTTPController(ping func(ctx context.Context) error) *HTTPController {
	return &HTTPController{Ping: ping}
}

func (c *HTTPController) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("server is running"))
}

func (c *HTTPController) Health(w http.ResponseWriter, r *http.Request) {
	if c.Ping != nil {
		if err := c.Ping(r.Context()); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, dto.Response{Success: true, Message: "ok"})
}
