package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNoteService struct {
	listRes   *dto.ListAttendanceNotesResponse
	showRes   *dto.ShowAttendanceNoteResponse
	createRes *dto.CreateAttendanceNoteResponse
	err       error

	showIncludeExpenses bool
}

func (s *stubNoteService) List(ctx context.Context, query *dto.ListAttendanceNotesQuery) (*dto.ListAttendanceNotesResponse, error) {
	return s.listRes, s.err
}

func (s *stubNoteService) Show(ctx context.Context, id uuid.UUID, includeExpenses bool) (*dto.ShowAttendanceNoteResponse, error) {
	s.showIncludeExpenses = includeExpenses
	return s.showRes, s.err
}

func (s *stubNoteService) Create(ctx context.Context, req *dto.CreateAttendanceNoteRequest) (*dto.CreateAttendanceNoteResponse, error) {
	return s.createRes, s.err
}

func (s *stubNoteService) Update(ctx context.Context, req *dto.UpdateAttendanceNoteRequest) (*dto.OkResponse, error) {
	return &dto.OkResponse{Ok: true}, s.err
}

func newTestApp(svc *stubNoteService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewHealthController().RegisterRoutes(api)
	NewAttendanceNoteController(svc).RegisterRoutes(api)
	return app
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(&stubNoteService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Contains(t, body, "present")
}

func TestUnhandledMethodIs405(t *testing.T) {
	app := newTestApp(&stubNoteService{})

	resp, err := app.Test(httptest.NewRequest("PUT", "/api/attendance-notes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestCreateValidatesBody(t *testing.T) {
	app := newTestApp(&stubNoteService{createRes: &dto.CreateAttendanceNoteResponse{Id: uuid.New()}})

	// Missing client names fails validation.
	req := httptest.NewRequest("POST", "/api/attendance-notes", strings.NewReader(`{"court_name": "Snaresbrook"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "error")

	// Valid payload is created.
	req = httptest.NewRequest("POST", "/api/attendance-notes", strings.NewReader(`{"client_first_name": "Jordan", "client_last_name": "Blake"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestServiceErrorMapsToStatus(t *testing.T) {
	app := newTestApp(&stubNoteService{err: serverutils.NewNotFoundError("Attendance note not found")})

	req := httptest.NewRequest("GET", "/api/attendance-notes?id="+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Attendance note not found", body["error"])
}

type stubReportService struct {
	includeExpenses bool
	includeMobile   bool
	emailVariant    bool
}

func (s *stubReportService) RenderPage(ctx context.Context, id uuid.UUID, includeExpenses, includeMobile bool) (string, error) {
	s.includeExpenses = includeExpenses
	s.includeMobile = includeMobile
	return "<html></html>", nil
}

func (s *stubReportService) RenderEmail(ctx context.Context, id uuid.UUID, includeExpenses bool) (string, error) {
	s.includeExpenses = includeExpenses
	s.emailVariant = true
	return "<div></div>", nil
}

func (s *stubReportService) EmailReport(ctx context.Context, req *dto.EmailReportRequest) (*dto.OkResponse, error) {
	return &dto.OkResponse{Ok: true}, nil
}

func TestReportRenderQueryFlags(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		expenses bool
		mobile   bool
	}{
		{"documented names", "include_expenses=1&include_mobile=1", true, true},
		{"short aliases", "expenses=1&mobile=1", true, true},
		{"flags omitted", "", false, false},
		{"documented name wins over alias", "include_expenses=0&expenses=1", false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubReportService{}
			app := fiber.New()
			app.Use(serverutils.ErrorHandlerMiddleware())
			NewReportController(svc).RegisterRoutes(app.Group("/api"))

			url := "/api/attendance-note-html?id=" + uuid.NewString()
			if tc.query != "" {
				url += "&" + tc.query
			}
			resp, err := app.Test(httptest.NewRequest("GET", url, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tc.expenses, svc.includeExpenses)
			assert.Equal(t, tc.mobile, svc.includeMobile)
		})
	}
}

func TestShowAcceptsIncludeExpensesFlag(t *testing.T) {
	svc := &stubNoteService{showRes: &dto.ShowAttendanceNoteResponse{Item: &dto.AttendanceNoteResponse{}}}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/attendance-notes?id="+uuid.NewString()+"&include_expenses=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, svc.showIncludeExpenses)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/attendance-notes?id="+uuid.NewString()+"&expenses=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, svc.showIncludeExpenses)
}
