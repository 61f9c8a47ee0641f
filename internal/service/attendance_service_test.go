package service

import (
	"context"
	"testing"
	"time"

	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/pkg/logger"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceService(t *testing.T) (IAttendanceNoteService, IDirectoryService, unitofwork.RepositoryFactory, uuid.UUID) {
	t.Helper()
	factory := newTestFactory(t)
	ownerId := uuid.New()
	log := logger.NewNopLogger()
	dirService := NewDirectoryService(factory, ownerId, nil, log)
	noteService := NewAttendanceNoteService(factory, ownerId, dirService, log)
	return noteService, dirService, factory, ownerId
}

func strPtr(s string) *string { return &s }

func TestCreateNoteAppliesDefaults(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "  Jordan ",
		ClientLastName:  "Blake",
	})
	require.NoError(t, err)

	shown, err := svc.Show(ctx, res.Id, false)
	require.NoError(t, err)
	assert.Equal(t, "Jordan", shown.Item.ClientFirstName)
	assert.Equal(t, entity.NoteStatusDraft, shown.Item.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), shown.Item.CourtDate)
	assert.False(t, shown.Item.Archived)
}

func TestCreateNoteRejectsBlankNames(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)

	_, err := svc.Create(context.Background(), &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "   ",
		ClientLastName:  "Blake",
	})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestCreateNoteRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)

	_, err := svc.Create(context.Background(), &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
		Status:          "pending",
	})
	require.Error(t, err)
}

func TestCreateNoteEnrichesDirectory(t *testing.T) {
	svc, dirService, _, _ := newAttendanceService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
		Coram:           "HHJ Example",
		LawFirm:         "Smith & Co",
		CourtName:       "Snaresbrook Crown Court",
	})
	require.NoError(t, err)

	judges, err := dirService.List(ctx, entity.DirectoryTypeJudges)
	require.NoError(t, err)
	assert.Contains(t, judges.Items, "HHJ Example")

	firms, err := dirService.List(ctx, entity.DirectoryTypeLawFirms)
	require.NoError(t, err)
	assert.Contains(t, firms.Items, "Smith & Co")
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		ok   bool
	}{
		{"draft to final", entity.NoteStatusDraft, entity.NoteStatusFinal, true},
		{"final to sent", entity.NoteStatusFinal, entity.NoteStatusSent, true},
		{"draft to sent skips final", entity.NoteStatusDraft, entity.NoteStatusSent, false},
		{"sent back to draft", entity.NoteStatusSent, entity.NoteStatusDraft, false},
		{"final back to draft", entity.NoteStatusFinal, entity.NoteStatusDraft, false},
		{"same to same is a no-op", entity.NoteStatusFinal, entity.NoteStatusFinal, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, _ := newAttendanceService(t)
			ctx := context.Background()

			created, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
				ClientFirstName: "Jordan",
				ClientLastName:  "Blake",
				Status:          tc.from,
			})
			require.NoError(t, err)

			_, err = svc.Update(ctx, &dto.UpdateAttendanceNoteRequest{
				Id:     created.Id,
				Action: "status",
				Status: tc.to,
			})

			shown, showErr := svc.Show(ctx, created.Id, false)
			require.NoError(t, showErr)

			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, shown.Item.Status)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.from, shown.Item.Status, "rejected transition must not change stored status")
			}
		})
	}
}

func TestArchiveIsIdempotent(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		res, err := svc.Update(ctx, &dto.UpdateAttendanceNoteRequest{Id: created.Id, Action: "archive"})
		require.NoError(t, err)
		assert.True(t, res.Ok)
	}

	shown, err := svc.Show(ctx, created.Id, false)
	require.NoError(t, err)
	assert.True(t, shown.Item.Archived)
	assert.Equal(t, entity.NoteStatusDraft, shown.Item.Status, "archive must not touch status")
}

func TestListFilters(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)
	ctx := context.Background()

	draft, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Ann", ClientLastName: "Draft",
	})
	require.NoError(t, err)
	final, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Ben", ClientLastName: "Final", Status: entity.NoteStatusFinal,
	})
	require.NoError(t, err)
	archived, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Cat", ClientLastName: "Gone",
	})
	require.NoError(t, err)
	_, err = svc.Update(ctx, &dto.UpdateAttendanceNoteRequest{Id: archived.Id, Action: "archive"})
	require.NoError(t, err)

	ids := func(res *dto.ListAttendanceNotesResponse) []uuid.UUID {
		out := make([]uuid.UUID, len(res.Items))
		for i, item := range res.Items {
			out[i] = item.Id
		}
		return out
	}

	// Default: non-archived only.
	res, err := svc.List(ctx, &dto.ListAttendanceNotesQuery{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{draft.Id, final.Id}, ids(res))
	assert.Equal(t, 2, res.Count)

	// archived=1: archived only.
	res, err = svc.List(ctx, &dto.ListAttendanceNotesQuery{Archived: "1"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{archived.Id}, ids(res))

	// archived=all: everything.
	res, err = svc.List(ctx, &dto.ListAttendanceNotesQuery{Archived: "all"})
	require.NoError(t, err)
	assert.Len(t, res.Items, 3)

	// status filter.
	res, err = svc.List(ctx, &dto.ListAttendanceNotesQuery{Status: entity.NoteStatusFinal})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{final.Id}, ids(res))
}

func TestExpenseReplaceOnSave(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
		Expenses: []dto.ExpenseInput{
			{Type: "Travel", Amount: 12.50},
			{Type: "Parking", Amount: 3.25},
		},
	})
	require.NoError(t, err)

	shown, err := svc.Show(ctx, created.Id, true)
	require.NoError(t, err)
	require.Len(t, shown.Expenses, 2)

	// Resubmitting a single line displaces both stored ones.
	_, err = svc.Update(ctx, &dto.UpdateAttendanceNoteRequest{
		Id:       created.Id,
		Expenses: &[]dto.ExpenseInput{{Type: "Lunch", Amount: 8.00}},
	})
	require.NoError(t, err)

	shown, err = svc.Show(ctx, created.Id, true)
	require.NoError(t, err)
	require.Len(t, shown.Expenses, 1)
	assert.Equal(t, "Lunch", shown.Expenses[0].ExpenseType)

	// Empty array clears; nil leaves the set alone.
	_, err = svc.Update(ctx, &dto.UpdateAttendanceNoteRequest{Id: created.Id, Expenses: &[]dto.ExpenseInput{}})
	require.NoError(t, err)
	shown, err = svc.Show(ctx, created.Id, true)
	require.NoError(t, err)
	assert.Empty(t, shown.Expenses)

	_, err = svc.Update(ctx, &dto.UpdateAttendanceNoteRequest{Id: created.Id, CourtName: strPtr("Southwark Crown Court")})
	require.NoError(t, err)
	shown, err = svc.Show(ctx, created.Id, true)
	require.NoError(t, err)
	assert.Empty(t, shown.Expenses)
}

func TestUpdateInvalidExpenseLeavesNoteUntouched(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
		CourtName:       "Original Court",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, &dto.UpdateAttendanceNoteRequest{
		Id:        created.Id,
		CourtName: strPtr("New Court"),
		Expenses:  &[]dto.ExpenseInput{{Type: "", Amount: -1}},
	})
	require.Error(t, err)

	shown, err := svc.Show(ctx, created.Id, false)
	require.NoError(t, err)
	assert.Equal(t, "Original Court", shown.Item.CourtName)
}

func TestUpdatePatchIgnoresStatusField(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
	})
	require.NoError(t, err)

	// A plain field patch carrying a status must not change it.
	_, err = svc.Update(ctx, &dto.UpdateAttendanceNoteRequest{
		Id:     created.Id,
		Status: entity.NoteStatusSent,
	})
	require.NoError(t, err)

	shown, err := svc.Show(ctx, created.Id, false)
	require.NoError(t, err)
	assert.Equal(t, entity.NoteStatusDraft, shown.Item.Status)
}

func TestShowUnknownNoteIs404(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)

	_, err := svc.Show(context.Background(), uuid.New(), false)
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestUpdateUnknownNoteIs404(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)

	_, err := svc.Update(context.Background(), &dto.UpdateAttendanceNoteRequest{
		Id:     uuid.New(),
		Action: "archive",
	})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestCreateRejectsInvalidExpense(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
		Expenses: []dto.ExpenseInput{
			{Type: "Travel", Amount: 12.50},
			{Type: "  ", Amount: 3.25},
		},
	})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	// Validation runs before any write: no note may exist.
	list, err := svc.List(ctx, &dto.ListAttendanceNotesQuery{Archived: "all"})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}
