package service

import (
	"context"
	"testing"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectoryService(t *testing.T, seeds map[string][]string) IDirectoryService {
	t.Helper()
	return NewDirectoryService(newTestFactory(t), uuid.New(), seeds, logger.NewNopLogger())
}

func TestDirectoryRejectsUnknownType(t *testing.T) {
	svc := newDirectoryService(t, nil)

	_, err := svc.List(context.Background(), "planets")
	require.Error(t, err)

	_, err = svc.Add(context.Background(), "planets", "Mars")
	require.Error(t, err)
}

func TestDirectoryAddIsDeduplicated(t *testing.T) {
	svc := newDirectoryService(t, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Add(ctx, entity.DirectoryTypeJudges, "HHJ Example")
		require.NoError(t, err)
	}

	res, err := svc.List(ctx, entity.DirectoryTypeJudges)
	require.NoError(t, err)
	assert.Equal(t, []string{"HHJ Example"}, res.Items)
}

func TestDirectorySeedsMergeFirst(t *testing.T) {
	seeds := map[string][]string{
		entity.DirectoryTypeCourtrooms: {"Snaresbrook Crown Court"},
	}
	svc := newDirectoryService(t, seeds)
	ctx := context.Background()

	_, err := svc.Add(ctx, entity.DirectoryTypeCourtrooms, "Southwark Crown Court")
	require.NoError(t, err)

	// A stored value equal to a seed must not appear twice.
	_, err = svc.Add(ctx, entity.DirectoryTypeCourtrooms, "Snaresbrook Crown Court")
	require.NoError(t, err)

	res, err := svc.List(ctx, entity.DirectoryTypeCourtrooms)
	require.NoError(t, err)
	assert.Equal(t, []string{"Snaresbrook Crown Court", "Southwark Crown Court"}, res.Items)
}

func TestDirectoryRemove(t *testing.T) {
	svc := newDirectoryService(t, nil)
	ctx := context.Background()

	_, err := svc.Add(ctx, entity.DirectoryTypeContra, "Ms Opponent")
	require.NoError(t, err)
	_, err = svc.Remove(ctx, entity.DirectoryTypeContra, "Ms Opponent")
	require.NoError(t, err)

	res, err := svc.List(ctx, entity.DirectoryTypeContra)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestEnrichFromNoteSkipsEmptyFields(t *testing.T) {
	svc := newDirectoryService(t, nil)
	ctx := context.Background()

	svc.EnrichFromNote(ctx, &entity.AttendanceNote{
		Coram:       "HHJ Example",
		HearingType: "  ",
	})

	judges, err := svc.List(ctx, entity.DirectoryTypeJudges)
	require.NoError(t, err)
	assert.Equal(t, []string{"HHJ Example"}, judges.Items)

	hearings, err := svc.List(ctx, entity.DirectoryTypeHearingTypes)
	require.NoError(t, err)
	assert.Empty(t, hearings.Items)
}
