package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AssistantService forwards questions to the retrieval-augmented answer service.
type AssistantService struct {
	url    string
	client *http.Client
}

func NewAssistantService(url string, timeout time.Duration) *AssistantService {
	return &AssistantService{url: url, client: &http.Client{Timeout: timeout}}
}

func (s *AssistantService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}
	if s.url == "" {
		return "", newError(KindUpstream, "RAG request failed: no endpoint configured")
	}

	body, _ := json.Marshal(map[string]string{"question": question})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build rag request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", newError(KindUpstream, "RAG request failed: "+err.Error())
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newError(KindUpstream, "RAG request failed: "+err.Error())
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", newError(KindUpstream, fmt.Sprintf("RAG request failed: %s", resp.Status))
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", ErrInvalidRAGBody
	}
	for _, key := range []string{"answer", "message"} {
		if v, ok := payload[key].(string); ok && v != "" {
			return v, nil
		}
	}
	return string(bytes.TrimSpace(raw)), nil
}
