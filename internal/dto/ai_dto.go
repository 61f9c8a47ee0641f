package dto

import "github.com/google/uuid"

type TranscribeRequest struct {
	AudioWebmBase64 string `json:"audioWebmBase64" validate:"required"`
}

type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}

type SummariseRequest struct {
	Transcript      string   `json:"transcript" validate:"required,min=5"`
	Confidence      *float64 `json:"confidence"`
	DurationSeconds *int     `json:"durationSeconds"`
}

// SummaryTodo mirrors the JSON shape the completion provider is asked
// to return.
type SummaryTodo struct {
	Title string  `json:"title"`
	DueAt *string `json:"due_at"`
}

type SummariseResponse struct {
	Summary      string        `json:"summary"`
	Todos        []SummaryTodo `json:"todos"`
	TodosCount   int           `json:"todosCount"`
	TranscriptId uuid.UUID     `json:"transcriptId"`
}

type PolishAdviceRequest struct {
	Text string `json:"text" validate:"required,min=5"`
}

type PolishAdviceResponse struct {
	Polished string `json:"polished"`
}
