package controllers

import (
	"net/http"

	"edurev/backend/app/dto"
	"edurev/backend/app/services"
)

type AssistantController struct{ Assistant *services.AssistantService }

func NewAssistantController(a *services.AssistantService) *AssistantController {
	return &AssistantController{Assistant: a}
}

// Ask POST /api/ask
func (c *AssistantController) Ask(w http.ResponseWriter, r *http.Request) {
	var req dto.AskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	answer, err := c.Assistant.Ask(r.Context(), req.Question)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.AskResponse{Response: dto.Response{Success: true}, Answer: answer})
}
