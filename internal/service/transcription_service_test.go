package service

import (
	"context"
	"errors"
	"testing"

	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/pkg/logger"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/repository/specification"
	"chambers-practice-be/internal/repository/unitofwork"
	"chambers-practice-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpeech struct {
	text string
	err  error
}

func (f *fakeSpeech) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return f.text, f.err
}

func (f *fakeSpeech) Name() string { return "fake-speech" }

// fakeLLM returns responses in order, one per Chat call.
type fakeLLM struct {
	responses []string
	errs      []error
	calls     int
	jsonModes []bool
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}
	f.jsonModes = append(f.jsonModes, options.JSONMode)

	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func newTranscriptionHarness(t *testing.T, speechProvider *fakeSpeech, completion *fakeLLM) (ITranscriptionService, unitofwork.RepositoryFactory, uuid.UUID) {
	t.Helper()
	factory := newTestFactory(t)
	ownerId := uuid.New()
	svc := NewTranscriptionService(factory, ownerId, speechProvider, completion, logger.NewNopLogger())
	return svc, factory, ownerId
}

func TestTranscribeDecodesAudio(t *testing.T) {
	svc, _, _ := newTranscriptionHarness(t, &fakeSpeech{text: "the hearing was adjourned"}, &fakeLLM{})

	res, err := svc.Transcribe(context.Background(), &dto.TranscribeRequest{
		AudioWebmBase64: "aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, "the hearing was adjourned", res.Transcript)
}

func TestTranscribeRejectsBadBase64(t *testing.T) {
	svc, _, _ := newTranscriptionHarness(t, &fakeSpeech{}, &fakeLLM{})

	_, err := svc.Transcribe(context.Background(), &dto.TranscribeRequest{
		AudioWebmBase64: "not valid!!!",
	})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestTranscribeUpstreamFailureIs502(t *testing.T) {
	svc, _, _ := newTranscriptionHarness(t, &fakeSpeech{err: errors.New("whisper down")}, &fakeLLM{})

	_, err := svc.Transcribe(context.Background(), &dto.TranscribeRequest{
		AudioWebmBase64: "aGVsbG8=",
	})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Status)
}

func TestSummariseHappyPath(t *testing.T) {
	completion := &fakeLLM{responses: []string{
		`{"summary": "Sentence adjourned for reports.", "todos": [
			{"title": "Chase pre-sentence report", "due_at": "2026-09-15"},
			{"title": "", "due_at": "2026-09-16"},
			{"title": "Email solicitors", "due_at": "soon"}
		]}`,
	}}
	svc, factory, ownerId := newTranscriptionHarness(t, &fakeSpeech{}, completion)
	ctx := context.Background()

	res, err := svc.Summarise(ctx, &dto.SummariseRequest{Transcript: "long dictation about the hearing"})
	require.NoError(t, err)

	assert.Equal(t, "Sentence adjourned for reports.", res.Summary)
	require.Len(t, res.Todos, 2, "untitled todo must be dropped")
	assert.Equal(t, 2, res.TodosCount)
	assert.Equal(t, "Chase pre-sentence report", res.Todos[0].Title)
	require.NotNil(t, res.Todos[0].DueAt)
	assert.Nil(t, res.Todos[1].DueAt, "malformed due date must be dropped")

	uow := factory.NewUnitOfWork(ctx)
	stored, err := uow.TranscriptRepository().FindOne(ctx,
		specification.ByID{ID: res.TranscriptId},
		specification.OwnedBy{OwnerID: ownerId},
	)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "long dictation about the hearing", stored.Text)

	todos, err := uow.TodoRepository().FindAll(ctx, specification.OwnedBy{OwnerID: ownerId})
	require.NoError(t, err)
	require.Len(t, todos, 2)
	for _, todo := range todos {
		assert.Equal(t, entity.TodoSourceTranscript, todo.Source)
		assert.Equal(t, entity.TodoStatusOpen, todo.Status)
	}
}

func TestSummariseRetriesWithoutJSONMode(t *testing.T) {
	completion := &fakeLLM{
		responses: []string{
			"", // strict call fails
			"Sure! Here is the JSON you asked for:\n```json\n{\"summary\": \"Trial listed.\", \"todos\": []}\n```",
		},
		errs: []error{errors.New("response_format not supported"), nil},
	}
	svc, _, _ := newTranscriptionHarness(t, &fakeSpeech{}, completion)

	res, err := svc.Summarise(context.Background(), &dto.SummariseRequest{Transcript: "dictation text here"})
	require.NoError(t, err)
	assert.Equal(t, "Trial listed.", res.Summary)
	assert.Empty(t, res.Todos)

	require.Equal(t, 2, completion.calls)
	assert.True(t, completion.jsonModes[0], "first attempt uses strict JSON mode")
	assert.False(t, completion.jsonModes[1], "retry relaxes the response format")
}

func TestSummariseDoubleFailureIs502ButTranscriptSurvives(t *testing.T) {
	completion := &fakeLLM{
		responses: []string{"not json", "still not json"},
	}
	svc, factory, ownerId := newTranscriptionHarness(t, &fakeSpeech{}, completion)
	ctx := context.Background()

	_, err := svc.Summarise(ctx, &dto.SummariseRequest{Transcript: "dictation text here"})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Status)

	// The dictation must be stored even though summarisation failed.
	uow := factory.NewUnitOfWork(ctx)
	transcripts, err := uow.TranscriptRepository().FindAll(ctx, specification.OwnedBy{OwnerID: ownerId})
	require.NoError(t, err)
	require.Len(t, transcripts, 1)
	assert.Equal(t, "dictation text here", transcripts[0].Text)
}

func TestPolishAdvice(t *testing.T) {
	completion := &fakeLLM{responses: []string{"  The defendant was advised that...  "}}
	svc, _, _ := newTranscriptionHarness(t, &fakeSpeech{}, completion)

	res, err := svc.PolishAdvice(context.Background(), &dto.PolishAdviceRequest{Text: "told him about appeal"})
	require.NoError(t, err)
	assert.Equal(t, "The defendant was advised that...", res.Polished)
}
