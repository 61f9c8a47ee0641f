package service

import (
	"context"
	"testing"

	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTodoService(t *testing.T) ITodoService {
	t.Helper()
	return NewTodoService(newTestFactory(t), uuid.New())
}

func TestTodoLifecycle(t *testing.T) {
	svc := newTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateTodoRequest{
		Title: "Draft grounds of appeal",
		DueAt: "2026-09-30",
	})
	require.NoError(t, err)

	list, err := svc.List(ctx, &dto.ListTodosQuery{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, entity.TodoStatusOpen, list.Items[0].Status)
	assert.Equal(t, entity.TodoSourceManual, list.Items[0].Source)
	assert.Equal(t, "2026-09-30", list.Items[0].DueAt)

	_, err = svc.UpdateStatus(ctx, &dto.UpdateTodoRequest{Id: created.Id, Status: entity.TodoStatusDone})
	require.NoError(t, err)

	open, err := svc.List(ctx, &dto.ListTodosQuery{Status: entity.TodoStatusOpen})
	require.NoError(t, err)
	assert.Empty(t, open.Items)

	done, err := svc.List(ctx, &dto.ListTodosQuery{Status: entity.TodoStatusDone})
	require.NoError(t, err)
	assert.Len(t, done.Items, 1)

	_, err = svc.Delete(ctx, created.Id)
	require.NoError(t, err)

	list, err = svc.List(ctx, &dto.ListTodosQuery{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestTodoCreateRejectsBadDueDate(t *testing.T) {
	svc := newTodoService(t)

	_, err := svc.Create(context.Background(), &dto.CreateTodoRequest{
		Title: "Chase listing office",
		DueAt: "next tuesday",
	})
	require.Error(t, err)
}

func TestTodoUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateTodoRequest{Title: "Chase listing office"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, &dto.UpdateTodoRequest{Id: created.Id, Status: "snoozed"})
	require.Error(t, err)
}

func TestTodoDeleteUnknownIs404(t *testing.T) {
	svc := newTodoService(t)

	_, err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}
