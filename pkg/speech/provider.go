package speech

import "context"

// SpeechProvider converts recorded audio into text.
type SpeechProvider interface {
	// Transcribe sends the raw audio bytes (webm) and returns the text.
	Transcribe(ctx context.Context, audio []byte) (string, error)

	// Name is the provider tag stored on transcripts.
	Name() string
}
