package controllers

import (
	"net/http"

	"edurev/backend/app/dto"
	"edurev/backend/app/services"
)

type SummarizerController struct{ Summarizer *services.SummarizerService }

func NewSummarizerController(s *services.SummarizerService) *SummarizerController {
	return &SummarizerController{Summarizer: s}
}

// Chapters GET /api/summarize/chapters
func (c *SummarizerController) Chapters(w http.ResponseWriter, r *http.Request) {
	chapters := c.Summarizer.Chapters()
	refs := make([]dto.ChapterRef, 0, len(chapters))
	for _, ch := range chapters {
		refs = append(refs, dto.ChapterRef{ID: ch.ID, Title: ch.Title})
	}
	writeJSON(w, http.StatusOK, dto.ChaptersResponse{Response: dto.Response{Success: true}, Chapters: refs})
}

// Summarize POST /api/summarize
func (c *SummarizerController) Summarize(w http.ResponseWriter, r *http.Request) {
	var req dto.SummarizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ch, summary, err := c.Summarizer.Summarize(r.Context(), string(req.Chapter))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SummarizeResponse{
		Response: dto.Response{Success: true},
		Chapter:  dto.ChapterRef{ID: ch.ID, Title: ch.Title},
		Summary:  summary,
	})
}
