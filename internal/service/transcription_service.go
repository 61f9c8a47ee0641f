package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"regexp"
	"strings"

	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/pkg/logger"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/repository/unitofwork"
	"chambers-practice-be/pkg/llm"
	"chambers-practice-be/pkg/speech"

	"github.com/google/uuid"
)

const summarySystemPrompt = `You are an assistant for a criminal barrister. ` +
	`Given a dictated transcript, respond with a JSON object of the form ` +
	`{"summary": "...", "todos": [{"title": "...", "due_at": "YYYY-MM-DD" or null}]}. ` +
	`The summary is a concise attendance note of the hearing. Each todo is a ` +
	`concrete follow-up action mentioned in the transcript. Respond with JSON only.`

const polishSystemPrompt = `You are an assistant for a criminal barrister. ` +
	`Rewrite the following advice text in clear, formal prose suitable for an ` +
	`attendance note sent to instructing solicitors. Preserve every substantive ` +
	`point. Respond with the rewritten text only.`

var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type ITranscriptionService interface {
	Transcribe(ctx context.Context, req *dto.TranscribeRequest) (*dto.TranscribeResponse, error)
	Summarise(ctx context.Context, req *dto.SummariseRequest) (*dto.SummariseResponse, error)
	PolishAdvice(ctx context.Context, req *dto.PolishAdviceRequest) (*dto.PolishAdviceResponse, error)
}

type transcriptionService struct {
	uowFactory unitofwork.RepositoryFactory
	ownerId    uuid.UUID
	speech     speech.SpeechProvider
	completion llm.LLMProvider
	log        logger.ILogger
}

func NewTranscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	ownerId uuid.UUID,
	speechProvider speech.SpeechProvider,
	completion llm.LLMProvider,
	log logger.ILogger,
) ITranscriptionService {
	return &transcriptionService{
		uowFactory: uowFactory,
		ownerId:    ownerId,
		speech:     speechProvider,
		completion: completion,
		log:        log,
	}
}

func (s *transcriptionService) Transcribe(ctx context.Context, req *dto.TranscribeRequest) (*dto.TranscribeResponse, error) {
	audio, err := base64.StdEncoding.DecodeString(req.AudioWebmBase64)
	if err != nil {
		return nil, serverutils.NewValidationError("audioWebmBase64 is not valid base64")
	}
	if len(audio) == 0 {
		return nil, serverutils.NewValidationError("Audio payload is empty")
	}

	text, err := s.speech.Transcribe(ctx, audio)
	if err != nil {
		return nil, serverutils.NewUpstreamError("Transcription failed", err)
	}
	return &dto.TranscribeResponse{Transcript: text}, nil
}

// summaryPayload is the shape the completion model is instructed to emit.
type summaryPayload struct {
	Summary string            `json:"summary"`
	Todos   []dto.SummaryTodo `json:"todos"`
}

// Summarise persists the raw transcript before asking the model for a
// summary: the dictation must survive even when the completion side is
// down. Todo creation afterwards is best effort.
func (s *transcriptionService) Summarise(ctx context.Context, req *dto.SummariseRequest) (*dto.SummariseResponse, error) {
	transcript := &entity.Transcript{
		Id:              uuid.New(),
		OwnerId:         s.ownerId,
		Text:            req.Transcript,
		Provider:        s.speech.Name(),
		Confidence:      req.Confidence,
		DurationSeconds: req.DurationSeconds,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TranscriptRepository().Create(ctx, transcript); err != nil {
		return nil, serverutils.NewStoreError("Saving transcript failed", err)
	}

	payload, err := s.requestSummary(ctx, req.Transcript)
	if err != nil {
		return nil, serverutils.NewUpstreamError("Summarisation failed", err)
	}

	todos := sanitiseTodos(payload.Todos)
	s.insertTodos(ctx, todos)

	return &dto.SummariseResponse{
		Summary:      payload.Summary,
		Todos:        todos,
		TodosCount:   len(todos),
		TranscriptId: transcript.Id,
	}, nil
}

func (s *transcriptionService) PolishAdvice(ctx context.Context, req *dto.PolishAdviceRequest) (*dto.PolishAdviceResponse, error) {
	history := []llm.Message{
		{Role: "system", Content: polishSystemPrompt},
		{Role: "user", Content: req.Text},
	}
	polished, err := s.completion.Chat(ctx, history)
	if err != nil {
		return nil, serverutils.NewUpstreamError("Polish failed", err)
	}
	return &dto.PolishAdviceResponse{Polished: strings.TrimSpace(polished)}, nil
}

// requestSummary asks for strict JSON first; some models reject the
// response-format parameter, so a parse or transport failure earns one
// retry without it before giving up.
func (s *transcriptionService) requestSummary(ctx context.Context, transcript string) (*summaryPayload, error) {
	history := []llm.Message{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: transcript},
	}

	payload, strictErr := s.chatForSummary(ctx, history, llm.WithJSONMode())
	if strictErr == nil {
		return payload, nil
	}
	s.log.Warn("transcription_service", "Strict JSON summary failed, retrying relaxed", map[string]interface{}{
		"error": strictErr.Error(),
	})

	payload, relaxedErr := s.chatForSummary(ctx, history)
	if relaxedErr != nil {
		return nil, relaxedErr
	}
	return payload, nil
}

func (s *transcriptionService) chatForSummary(ctx context.Context, history []llm.Message, opts ...llm.Option) (*summaryPayload, error) {
	raw, err := s.completion.Chat(ctx, history, opts...)
	if err != nil {
		return nil, err
	}

	var payload summaryPayload
	if err := json.Unmarshal([]byte(extractJSON(raw)), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// extractJSON trims markdown fences and surrounding chatter that models
// sometimes wrap around a JSON body.
func extractJSON(raw string) string {
	trimmed := strings.TrimSpace(raw)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		return trimmed[start : end+1]
	}
	return trimmed
}

// sanitiseTodos drops entries without a title and due dates that are not
// plain YYYY-MM-DD.
func sanitiseTodos(todos []dto.SummaryTodo) []dto.SummaryTodo {
	clean := make([]dto.SummaryTodo, 0, len(todos))
	for _, todo := range todos {
		title := strings.TrimSpace(todo.Title)
		if title == "" {
			continue
		}
		item := dto.SummaryTodo{Title: title}
		if todo.DueAt != nil && dueDatePattern.MatchString(*todo.DueAt) {
			item.DueAt = todo.DueAt
		}
		clean = append(clean, item)
	}
	return clean
}

func (s *transcriptionService) insertTodos(ctx context.Context, todos []dto.SummaryTodo) {
	if len(todos) == 0 {
		return
	}

	entities := make([]*entity.Todo, 0, len(todos))
	for _, todo := range todos {
		e := &entity.Todo{
			Id:      uuid.New(),
			OwnerId: s.ownerId,
			Title:   todo.Title,
			Status:  entity.TodoStatusOpen,
			Source:  entity.TodoSourceTranscript,
		}
		if todo.DueAt != nil {
			if due, err := parseDate(*todo.DueAt); err == nil {
				e.DueAt = &due
			}
		}
		entities = append(entities, e)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TodoRepository().CreateMany(ctx, entities); err != nil {
		s.log.Warn("transcription_service", "Todo insert after summarise failed", map[string]interface{}{
			"error": err.Error(),
			"count": len(entities),
		})
	}
}
