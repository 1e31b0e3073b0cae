package dto

import (
	"bytes"
	"encoding/json"
)

type ChapterRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ChaptersResponse struct {
	Response
	Chapters []ChapterRef `json:"chapters"`
}

// ChapterID accepts both "7" and 7 on the wire.
type ChapterID string

func (c *ChapterID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = ChapterID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = ChapterID(n.String())
	return nil
}

type SummarizeRequest struct {
	Chapter ChapterID `json:"chapter"`
}

type SummarizeResponse struct {
	Response
	Chapter ChapterRef `json:"chapter"`
	Summary string     `json:"summary"`
}
