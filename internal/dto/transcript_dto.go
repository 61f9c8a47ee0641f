package dto

import "github.com/google/uuid"

type CreateTranscriptRequest struct {
	Text            string   `json:"text" validate:"required"`
	Provider        string   `json:"provider"`
	Confidence      *float64 `json:"confidence"`
	DurationSeconds *int     `json:"duration_seconds"`
}

type CreateTranscriptResponse struct {
	Id uuid.UUID `json:"id"`
}

type TranscriptResponse struct {
	Id              uuid.UUID `json:"id"`
	Text            string    `json:"text"`
	Provider        string    `json:"provider"`
	Confidence      *float64  `json:"confidence"`
	DurationSeconds *int      `json:"duration_seconds"`
	CreatedAt       string    `json:"created_at"`
}

type ListTranscriptsResponse struct {
	Items []*TranscriptResponse `json:"items"`
	Count int                   `json:"count"`
}
