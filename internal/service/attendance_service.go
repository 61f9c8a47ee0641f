package service

import (
	"context"
	"strings"
	"time"

	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/pkg/logger"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/repository/specification"
	"chambers-practice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type IAttendanceNoteService interface {
	List(ctx context.Context, query *dto.ListAttendanceNotesQuery) (*dto.ListAttendanceNotesResponse, error)
	Show(ctx context.Context, id uuid.UUID, includeExpenses bool) (*dto.ShowAttendanceNoteResponse, error)
	Create(ctx context.Context, req *dto.CreateAttendanceNoteRequest) (*dto.CreateAttendanceNoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateAttendanceNoteRequest) (*dto.OkResponse, error)
}

type attendanceNoteService struct {
	uowFactory       unitofwork.RepositoryFactory
	ownerId          uuid.UUID
	directoryService IDirectoryService
	log              logger.ILogger
}

func NewAttendanceNoteService(
	uowFactory unitofwork.RepositoryFactory,
	ownerId uuid.UUID,
	directoryService IDirectoryService,
	log logger.ILogger,
) IAttendanceNoteService {
	return &attendanceNoteService{
		uowFactory:       uowFactory,
		ownerId:          ownerId,
		directoryService: directoryService,
		log:              log,
	}
}

func (s *attendanceNoteService) List(ctx context.Context, query *dto.ListAttendanceNotesQuery) (*dto.ListAttendanceNotesResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	specs := []specification.Specification{
		specification.OwnedBy{OwnerID: s.ownerId},
	}
	if query.Status != "" {
		specs = append(specs, specification.ByStatus{Status: query.Status})
	}
	switch strings.ToLower(query.Archived) {
	case "1", "true":
		specs = append(specs, specification.ArchivedOnly{})
	case "all":
		// no archived filter
	default:
		specs = append(specs, specification.NotArchived{})
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.LimitTo{Limit: limit},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.AttendanceNoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, serverutils.NewStoreError("List failed", err)
	}

	items := make([]*dto.AttendanceNoteResponse, len(notes))
	for i, note := range notes {
		items[i] = toNoteResponse(note)
	}
	return &dto.ListAttendanceNotesResponse{Items: items, Count: len(items)}, nil
}

func (s *attendanceNoteService) Show(ctx context.Context, id uuid.UUID, includeExpenses bool) (*dto.ShowAttendanceNoteResponse, error) {
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

	res := &dto.ShowAttendanceNoteResponse{Item: toNoteResponse(note)}

	if includeExpenses {
		lines, err := uow.ExpenseRepository().FindAll(ctx,
			specification.OwnedBy{OwnerID: s.ownerId},
			specification.ByAttendanceNote{NoteID: id},
			specification.OrderBy{Field: "created_at"},
		)
		if err != nil {
			return nil, serverutils.NewStoreError("Read expenses failed", err)
		}
		res.Expenses = make([]*dto.ExpenseResponse, len(lines))
		for i, line := range lines {
			res.Expenses[i] = &dto.ExpenseResponse{
				ExpenseType: line.ExpenseType,
				Amount:      line.Amount,
				CreatedAt:   line.CreatedAt.Format(time.RFC3339),
			}
		}
	}

	return res, nil
}

func (s *attendanceNoteService) Create(ctx context.Context, req *dto.CreateAttendanceNoteRequest) (*dto.CreateAttendanceNoteResponse, error) {
	firstName := strings.TrimSpace(req.ClientFirstName)
	lastName := strings.TrimSpace(req.ClientLastName)
	if firstName == "" || lastName == "" {
		return nil, serverutils.NewValidationError("client_first_name and client_last_name are required")
	}

	status := req.Status
	if status == "" {
		status = entity.NoteStatusDraft
	}
	if !isNoteStatus(status) {
		return nil, serverutils.NewValidationError("Invalid status")
	}

	courtDate := time.Now()
	if req.CourtDate != "" {
		parsed, err := parseDate(req.CourtDate)
		if err != nil {
			return nil, serverutils.NewValidationError("court_date must be YYYY-MM-DD")
		}
		courtDate = parsed
	}

	var nextSteps *time.Time
	if req.NextStepsDate != "" {
		parsed, err := parseDate(req.NextStepsDate)
		if err != nil {
			return nil, serverutils.NewValidationError("next_steps_date must be YYYY-MM-DD")
		}
		nextSteps = &parsed
	}

	if err := validateExpenseInputs(req.Expenses); err != nil {
		return nil, err
	}

	note := entity.AttendanceNote{
		Id:              uuid.New(),
		OwnerId:         s.ownerId,
		ClientFirstName: firstName,
		ClientLastName:  lastName,
		CourtName:       req.CourtName,
		CourtDate:       courtDate,
		NextStepsDate:   nextSteps,
		Coram:           req.Coram,
		Contra:          req.Contra,
		LawFirm:         req.LawFirm,
		LawyerName:      req.LawyerName,
		HearingType:     req.HearingType,
		Outcome:         req.Outcome,
		Remand:          req.Remand,
		AdviceText:      req.AdviceText,
		ClosingText:     req.ClosingText,
		Status:          status,
		Archived:        false,
		CreatedAt:       time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AttendanceNoteRepository().Create(ctx, &note); err != nil {
		return nil, serverutils.NewStoreError("Create failed", err)
	}

	// Expense persistence is best-effort on create: a failure here is
	// logged and the note creation still succeeds (accepted
	// inconsistency window).
	if len(req.Expenses) > 0 {
		lines := s.buildExpenseLines(note.Id, req.Expenses)
		if err := uow.ExpenseRepository().CreateMany(ctx, lines); err != nil {
			s.log.Warn("attendance", "Expense insert failed on create", map[string]interface{}{
				"note_id": note.Id,
				"error":   err.Error(),
			})
		}
	}

	s.directoryService.EnrichFromNote(ctx, &note)

	return &dto.CreateAttendanceNoteResponse{Id: note.Id}, nil
}

func (s *attendanceNoteService) Update(ctx context.Context, req *dto.UpdateAttendanceNoteRequest) (*dto.OkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.AttendanceNoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{OwnerID: s.ownerId},
	)
	if err != nil {
		return nil, serverutils.NewStoreError("Read failed", err)
	}
	if note == nil {
		return nil, serverutils.NewNotFoundError("Attendance note not found")
	}

	switch req.Action {
	case "status":
		return s.transitionStatus(ctx, uow, note, req.Status)
	case "archive":
		return s.archive(ctx, uow, note)
	case "":
		return s.patchFields(ctx, uow, note, req)
	default:
		return nil, serverutils.NewValidationError("Invalid action")
	}
}

// transitionStatus enforces the forward-only lifecycle. A rejected
// transition leaves the stored status untouched.
func (s *attendanceNoteService) transitionStatus(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.AttendanceNote, next string) (*dto.OkResponse, error) {
	next = strings.TrimSpace(next)
	if !isNoteStatus(next) {
		return nil, serverutils.NewValidationError("Invalid status")
	}
	if !note.CanTransitionTo(next) {
		return nil, serverutils.NewValidationError("Illegal status transition: " + note.Status + " -> " + next)
	}

	note.Status = next
	if err := uow.AttendanceNoteRepository().Update(ctx, note); err != nil {
		return nil, serverutils.NewStoreError("Status update failed", err)
	}

	s.directoryService.EnrichFromNote(ctx, note)

	return &dto.OkResponse{Ok: true}, nil
}

// archive is idempotent: archiving an archived note succeeds and leaves
// it archived. Status is untouched; the note stays readable and
// exportable but drops out of default listings.
func (s *attendanceNoteService) archive(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.AttendanceNote) (*dto.OkResponse, error) {
	note.Archived = true
	if err := uow.AttendanceNoteRepository().Update(ctx, note); err != nil {
		return nil, serverutils.NewStoreError("Archive failed", err)
	}
	return &dto.OkResponse{Ok: true}, nil
}

func (s *attendanceNoteService) patchFields(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.AttendanceNote, req *dto.UpdateAttendanceNoteRequest) (*dto.OkResponse, error) {
	if req.ClientFirst != nil {
		v := strings.TrimSpace(*req.ClientFirst)
		if v == "" {
			return nil, serverutils.NewValidationError("client_first_name cannot be empty")
		}
		note.ClientFirstName = v
	}
	if req.ClientLast != nil {
		v := strings.TrimSpace(*req.ClientLast)
		if v == "" {
			return nil, serverutils.NewValidationError("client_last_name cannot be empty")
		}
		note.ClientLastName = v
	}
	if req.CourtDate != nil {
		parsed, err := parseDate(*req.CourtDate)
		if err != nil {
			return nil, serverutils.NewValidationError("court_date must be YYYY-MM-DD")
		}
		note.CourtDate = parsed
	}
	if req.NextStepsDate != nil {
		if *req.NextStepsDate == "" {
			note.NextStepsDate = nil
		} else {
			parsed, err := parseDate(*req.NextStepsDate)
			if err != nil {
				return nil, serverutils.NewValidationError("next_steps_date must be YYYY-MM-DD")
			}
			note.NextStepsDate = &parsed
		}
	}
	if req.CourtName != nil {
		note.CourtName = *req.CourtName
	}
	if req.LawFirm != nil {
		note.LawFirm = *req.LawFirm
	}
	if req.LawyerName != nil {
		note.LawyerName = *req.LawyerName
	}
	if req.HearingType != nil {
		note.HearingType = *req.HearingType
	}
	if req.Coram != nil {
		note.Coram = *req.Coram
	}
	if req.Contra != nil {
		note.Contra = *req.Contra
	}
	if req.Outcome != nil {
		note.Outcome = *req.Outcome
	}
	if req.Remand != nil {
		note.Remand = *req.Remand
	}
	if req.AdviceText != nil {
		note.AdviceText = *req.AdviceText
	}
	if req.ClosingText != nil {
		note.ClosingText = *req.ClosingText
	}
	// Status changes only travel through action=status so the
	// transition rules cannot be sidestepped by a field patch.

	if req.Expenses != nil {
		if err := validateExpenseInputs(*req.Expenses); err != nil {
			return nil, err
		}
	}

	if err := uow.AttendanceNoteRepository().Update(ctx, note); err != nil {
		return nil, serverutils.NewStoreError("Update failed", err)
	}

	// Replace-on-save: the submitted expense set displaces whatever was
	// stored. An empty array is an idempotent clear. Delete and reinsert
	// run in one transaction so a failed insert cannot strip the note of
	// its existing lines.
	if req.Expenses != nil {
		if err := uow.Begin(ctx); err != nil {
			return nil, serverutils.NewStoreError("Expense replace failed", err)
		}
		if err := uow.ExpenseRepository().DeleteByNote(ctx, s.ownerId, note.Id); err != nil {
			uow.Rollback()
			return nil, serverutils.NewStoreError("Expense replace failed", err)
		}
		lines := s.buildExpenseLines(note.Id, *req.Expenses)
		if err := uow.ExpenseRepository().CreateMany(ctx, lines); err != nil {
			uow.Rollback()
			return nil, serverutils.NewStoreError("Expense replace failed", err)
		}
		if err := uow.Commit(); err != nil {
			return nil, serverutils.NewStoreError("Expense replace failed", err)
		}
	}

	return &dto.OkResponse{Ok: true}, nil
}

// validateExpenseInputs rejects entries with a blank type or a
// non-positive amount. Both the create and update paths run it before
// any write.
func validateExpenseInputs(inputs []dto.ExpenseInput) error {
	for _, in := range inputs {
		if strings.TrimSpace(in.Type) == "" || in.Amount <= 0 {
			return serverutils.NewValidationError("each expense needs a type and an amount > 0")
		}
	}
	return nil
}

func (s *attendanceNoteService) buildExpenseLines(noteId uuid.UUID, inputs []dto.ExpenseInput) []*entity.ExpenseLine {
	lines := make([]*entity.ExpenseLine, 0, len(inputs))
	for _, in := range inputs {
		lines = append(lines, &entity.ExpenseLine{
			Id:               uuid.New(),
			OwnerId:          s.ownerId,
			AttendanceNoteId: noteId,
			ExpenseType:      strings.TrimSpace(in.Type),
			Amount:           in.Amount,
			CreatedAt:        time.Now(),
		})
	}
	return lines
}

func toNoteResponse(note *entity.AttendanceNote) *dto.AttendanceNoteResponse {
	nextSteps := ""
	if note.NextStepsDate != nil {
		nextSteps = note.NextStepsDate.Format("2006-01-02")
	}
	return &dto.AttendanceNoteResponse{
		Id:              note.Id,
		ClientFirstName: note.ClientFirstName,
		ClientLastName:  note.ClientLastName,
		CourtName:       note.CourtName,
		CourtDate:       note.CourtDate.Format("2006-01-02"),
		NextStepsDate:   nextSteps,
		Coram:           note.Coram,
		Contra:          note.Contra,
		LawFirm:         note.LawFirm,
		LawyerName:      note.LawyerName,
		HearingType:     note.HearingType,
		Outcome:         note.Outcome,
		Remand:          note.Remand,
		AdviceText:      note.AdviceText,
		ClosingText:     note.ClosingText,
		Status:          note.Status,
		Archived:        note.Archived,
		CreatedAt:       note.CreatedAt.Format(time.RFC3339),
	}
}

func isNoteStatus(status string) bool {
	switch status {
	case entity.NoteStatusDraft, entity.NoteStatusFinal, entity.NoteStatusSent:
		return true
	}
	return false
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}
