package service

import (
	"context"
	"testing"

	"chambers-practice-be/internal/config"
	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/pkg/logger"
	"chambers-practice-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to      string
	subject string
	body    string
	err     error
}

func (m *fakeMailer) SendReport(toEmail, subject, htmlBody string) error {
	m.to = toEmail
	m.subject = subject
	m.body = htmlBody
	return m.err
}

func testChambers() config.ChambersConfig {
	return config.ChambersConfig{
		Name:          "23ES Chambers",
		Email:         "clerks@23es.com",
		PhoneLondon:   "020 7413 0353",
		CounselName:   "A Barrister",
		CounselMobile: "07700 900000",
	}
}

func newReportHarness(t *testing.T) (IReportService, IAttendanceNoteService, *fakeMailer) {
	t.Helper()
	factory := newTestFactory(t)
	ownerId := uuid.New()
	log := logger.NewNopLogger()
	dirService := NewDirectoryService(factory, ownerId, nil, log)
	noteService := NewAttendanceNoteService(factory, ownerId, dirService, log)
	mail := &fakeMailer{}
	reportService := NewReportService(factory, ownerId, testChambers(), mail)
	return reportService, noteService, mail
}

func TestRenderPageEscapesHostileInput(t *testing.T) {
	reportService, noteService, _ := newReportHarness(t)
	ctx := context.Background()

	created, err := noteService.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
		AdviceText:      `<script>alert(1)</script> & "quotes"`,
	})
	require.NoError(t, err)

	html, err := reportService.RenderPage(ctx, created.Id, false, false)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&amp;")
}

func TestRenderPageContent(t *testing.T) {
	reportService, noteService, _ := newReportHarness(t)
	ctx := context.Background()

	created, err := noteService.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
		CourtName:       "Snaresbrook Crown Court",
		CourtDate:       "2026-03-09",
		Expenses: []dto.ExpenseInput{
			{Type: "Travel", Amount: 12.50},
			{Type: "Parking", Amount: 3.25},
		},
	})
	require.NoError(t, err)

	html, err := reportService.RenderPage(ctx, created.Id, true, false)
	require.NoError(t, err)

	assert.Contains(t, html, "Rex v Blake")
	assert.Contains(t, html, "09/03/2026")
	assert.Contains(t, html, "£12.50")
	assert.Contains(t, html, "£15.75")
	assert.Contains(t, html, "23ES Chambers")
	assert.NotContains(t, html, "07700 900000", "mobile only appears when requested")

	withMobile, err := reportService.RenderPage(ctx, created.Id, true, true)
	require.NoError(t, err)
	assert.Contains(t, withMobile, "07700 900000")
}

func TestRenderEmailVariantHasNoScriptOrStylesheet(t *testing.T) {
	reportService, noteService, _ := newReportHarness(t)
	ctx := context.Background()

	created, err := noteService.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
	})
	require.NoError(t, err)

	html, err := reportService.RenderEmail(ctx, created.Id, false)
	require.NoError(t, err)

	assert.Contains(t, html, "Rex v Blake")
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "<link")
	assert.NotContains(t, html, "window.print")
}

func TestRenderUnknownNoteIs404(t *testing.T) {
	reportService, _, _ := newReportHarness(t)

	_, err := reportService.RenderPage(context.Background(), uuid.New(), false, false)
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestEmailReportSendsEmailVariant(t *testing.T) {
	reportService, noteService, mail := newReportHarness(t)
	ctx := context.Background()

	created, err := noteService.Create(ctx, &dto.CreateAttendanceNoteRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Blake",
	})
	require.NoError(t, err)

	res, err := reportService.EmailReport(ctx, &dto.EmailReportRequest{
		Id: created.Id,
		To: "solicitor@example.com",
	})
	require.NoError(t, err)
	assert.True(t, res.Ok)
	assert.Equal(t, "solicitor@example.com", mail.to)
	assert.Contains(t, mail.subject, "Rex v Blake")
	assert.Contains(t, mail.body, "Rex v Blake")
	assert.NotContains(t, mail.body, "<script")
}
