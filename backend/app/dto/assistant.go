package dto

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	Response
	Answer string `json:"answer"`
}
