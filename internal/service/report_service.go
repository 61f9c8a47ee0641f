package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"chambers-practice-be/internal/config"
	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/pkg/mailer"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/repository/specification"
	"chambers-practice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReportService interface {
	// RenderPage produces the printable report: a full HTML document
	// with toolbar, stylesheet and copy helpers.
	RenderPage(ctx context.Context, id uuid.UUID, includeExpenses, includeMobile bool) (string, error)

	// RenderEmail produces the email-safe variant of the same content:
	// inline styles only, no stylesheet, no script.
	RenderEmail(ctx context.Context, id uuid.UUID, includeExpenses bool) (string, error)

	EmailReport(ctx context.Context, req *dto.EmailReportRequest) (*dto.OkResponse, error)
}

type reportService struct {
	uowFactory unitofwork.RepositoryFactory
	ownerId    uuid.UUID
	chambers   config.ChambersConfig
	mail       mailer.IEmailService
}

func NewReportService(uowFactory unitofwork.RepositoryFactory, ownerId uuid.UUID, chambers config.ChambersConfig, mail mailer.IEmailService) IReportService {
	return &reportService{
		uowFactory: uowFactory,
		ownerId:    ownerId,
		chambers:   chambers,
		mail:       mail,
	}
}

type reportExpense struct {
	Type   string
	Amount string
}

type reportData struct {
	CaseTitle       string
	ClientFull      string
	CourtName       string
	Coram           string
	Contra          string
	HearingType     string
	CourtDate       string
	NextStepsDate   string
	Instructed      string
	Counsel         string
	Outcome         string
	Remand          string
	Advice          string
	Closing         string
	Status          string
	IncludeExpenses bool
	Expenses        []reportExpense
	Total           string
	ChambersName    string
	ChambersEmail   string
	ChambersPhone   string
	ChambersAddr    string
	CounselMobile   string
	GeneratedAt     string
}

func (s *reportService) RenderPage(ctx context.Context, id uuid.UUID, includeExpenses, includeMobile bool) (string, error) {
	data, err := s.assemble(ctx, id, includeExpenses, includeMobile)
	if err != nil {
		return "", err
	}
	return renderTemplate(pageTemplate, data)
}

func (s *reportService) RenderEmail(ctx context.Context, id uuid.UUID, includeExpenses bool) (string, error) {
	data, err := s.assemble(ctx, id, includeExpenses, false)
	if err != nil {
		return "", err
	}
	return renderTemplate(emailTemplate, data)
}

func (s *reportService) EmailReport(ctx context.Context, req *dto.EmailReportRequest) (*dto.OkResponse, error) {
	data, err := s.assemble(ctx, req.Id, req.IncludeExpenses, false)
	if err != nil {
		return nil, err
	}
	body, err := renderTemplate(emailTemplate, data)
	if err != nil {
		return nil, err
	}

	subject := "Attendance Note — " + data.CaseTitle
	if err := s.mail.SendReport(req.To, subject, body); err != nil {
		return nil, serverutils.NewUpstreamError("Email send failed", err)
	}
	return &dto.OkResponse{Ok: true}, nil
}

func (s *reportService) assemble(ctx context.Context, id uuid.UUID, includeExpenses, includeMobile bool) (*reportData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.AttendanceNoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{OwnerID: s.ownerId},
	)
	if err != nil {
		return nil, serverutils.NewStoreError("Read failed", err)
	}
	if note == nil {
		return nil, serverutils.NewNotFoundError("Attendance note not found")
	}

	var expenses []*entity.ExpenseLine
	if includeExpenses {
		expenses, err = uow.ExpenseRepository().FindAll(ctx,
			specification.OwnedBy{OwnerID: s.ownerId},
			specification.ByAttendanceNote{NoteID: id},
			specification.OrderBy{Field: "created_at"},
		)
		if err != nil {
			return nil, serverutils.NewStoreError("Read expenses failed", err)
		}
	}

	data := &reportData{
		CaseTitle:       "Rex v " + note.ClientLastName,
		ClientFull:      note.ClientFullName(),
		CourtName:       note.CourtName,
		Coram:           note.Coram,
		Contra:          note.Contra,
		HearingType:     note.HearingType,
		CourtDate:       dateUK(&note.CourtDate),
		NextStepsDate:   dateUK(note.NextStepsDate),
		Instructed:      instructedBy(note.LawFirm, note.LawyerName),
		Counsel:         s.chambers.CounselName,
		Outcome:         note.Outcome,
		Remand:          note.Remand,
		Advice:          note.AdviceText,
		Closing:         note.ClosingText,
		Status:          strings.ToUpper(note.Status),
		IncludeExpenses: includeExpenses,
		ChambersName:    s.chambers.Name,
		ChambersEmail:   s.chambers.Email,
		ChambersPhone:   s.chambers.PhoneLondon,
		ChambersAddr:    s.chambers.Address,
		GeneratedAt:     time.Now().Format("02 Jan 2006 15:04"),
	}
	if includeMobile {
		data.CounselMobile = s.chambers.CounselMobile
	}

	var total float64
	for _, line := range expenses {
		data.Expenses = append(data.Expenses, reportExpense{
			Type:   line.ExpenseType,
			Amount: fmt.Sprintf("£%.2f", line.Amount),
		})
		total += line.Amount
	}
	if total > 0 {
		data.Total = fmt.Sprintf("£%.2f", total)
	}

	return data, nil
}

func renderTemplate(tmpl *template.Template, data *reportData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

func instructedBy(firm, lawyer string) string {
	if firm != "" && lawyer != "" {
		return firm + " — " + lawyer
	}
	return firm + lawyer
}

func dateUK(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
