package ui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edurev/backend/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret1" {
			writeJSON(w, http.StatusUnauthorized, dto.Response{Message: "Invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, dto.LoginResponse{
			Response: dto.Response{Success: true, Message: "Login successful"},
			User:     dto.Identity{UserID: 7, FullName: "Jane Doe", Email: req.Email, Role: "student"},
			Token:    "tok",
		})
	})
	mux.HandleFunc("PUT /api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, dto.Response{Message: "Authentication required"})
			return
		}
		var req dto.UpdateUserRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "7", r.PathValue("id"))
		writeJSON(w, http.StatusOK, dto.Response{Success: true, Message: "User updated successfully"})
	})
	mux.HandleFunc("GET /api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.UserResponse{Response: dto.Response{Success: true}, User: dto.Identity{UserID: 7, FullName: "Jane Smith"}})
	})
	mux.HandleFunc("GET /api/summarize/chapters", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.ChaptersResponse{Response: dto.Response{Success: true}, Chapters: []dto.ChapterRef{{ID: "1", Title: "Demand"}}})
	})
	mux.HandleFunc("POST /api/summarize", func(w http.ResponseWriter, r *http.Request) {
		var req dto.SummarizeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Chapter != "1" {
			writeJSON(w, http.StatusBadRequest, dto.Response{Message: "Invalid chapter number"})
			return
		}
		writeJSON(w, http.StatusOK, dto.SummarizeResponse{Response: dto.Response{Success: true}, Chapter: dto.ChapterRef{ID: "1"}, Summary: "- notes"})
	})
	mux.HandleFunc("POST /api/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.Response{Success: true})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_LoginStoresSession(t *testing.T) {
	c := NewClient(fakeAPI(t).URL + "/")
	ctx := context.Background()

	_, err := c.Login(ctx, "jane@x.com", "nope")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.Empty(t, c.Token())

	user, err := c.Login(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.UserID)
	assert.Equal(t, "tok", c.Token())
	assert.Equal(t, user, c.User())
}

func TestClient_UpdateProfileSendsToken(t *testing.T) {
	c := NewClient(fakeAPI(t).URL)
	ctx := context.Background()

	_, err := c.UpdateProfile(ctx, 7, dto.UpdateUserRequest{FullName: "Jane Smith"})
	require.Error(t, err)
	assert.Equal(t, "Authentication required", err.Error())

	_, err = c.Login(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)
	msg, err := c.UpdateProfile(ctx, 7, dto.UpdateUserRequest{FullName: "Jane Smith"})
	require.NoError(t, err)
	assert.Equal(t, "User updated successfully", msg)

	user, err := c.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", user.FullName)

	require.NoError(t, c.Logout(ctx))
	assert.Empty(t, c.Token())
}

func TestClient_Summaries(t *testing.T) {
	c := NewClient(fakeAPI(t).URL)
	ctx := context.Background()

	chapters, err := c.Chapters(ctx)
	require.NoError(t, err)
	require.Len(t, chapters, 1)

	text, err := c.Summarize(ctx, chapters[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "- notes", text)

	_, err = c.Summarize(ctx, "99")
	assert.EqualError(t, err, "Invalid chapter number")
}

func TestAPIError_FallbackMessage(t *testing.T) {
	assert.Equal(t, "request failed (502)", (&APIError{Status: 502}).Error())
}

func TestClient_TimeoutOutlastsSummaries(t *testing.T) {
	assert.GreaterOrEqual(t, NewClient("http://x").HTTP.Timeout, 2*time.Minute)
	assert.Equal(t, DefaultTimeout, NewClientWithTimeout("http://x", 0).HTTP.Timeout)
	assert.Equal(t, 10*time.Minute, NewClientWithTimeout("http://x", 10*time.Minute).HTTP.Timeout)
}

func TestClient_WaitsForSlowSummary(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/summarize", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		writeJSON(w, http.StatusOK, dto.SummarizeResponse{Response: dto.Response{Success: true}, Summary: "- slow"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	text, err := NewClientWithTimeout(srv.URL, time.Second).Summarize(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "- slow", text)

	_, err = NewClientWithTimeout(srv.URL, 50*time.Millisecond).Summarize(context.Background(), "1")
	require.Error(t, err)
}
