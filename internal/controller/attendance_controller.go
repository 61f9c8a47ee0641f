package controller

import (
	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAttendanceNoteController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type attendanceNoteController struct {
	noteService service.IAttendanceNoteService
}

func NewAttendanceNoteController(noteService service.IAttendanceNoteService) IAttendanceNoteController {
	return &attendanceNoteController{
		noteService: noteService,
	}
}

func (c *attendanceNoteController) RegisterRoutes(r fiber.Router) {
	r.Get("/attendance-notes", c.Get)
	r.Post("/attendance-notes", c.Create)
	r.Patch("/attendance-notes", c.Update)
	r.All("/attendance-notes", methodNotAllowed)
}

// Get serves both the list and the single read: ?id= switches to a
// single note, ?include_expenses=1 attaches its expense lines.
func (c *attendanceNoteController) Get(ctx *fiber.Ctx) error {
	if idParam := ctx.Query("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return serverutils.NewValidationError("id must be a uuid")
		}
		res, err := c.noteService.Show(ctx.Context(), id, queryFlag(ctx, "include_expenses", "expenses"))
		if err != nil {
			return err
		}
		return ctx.JSON(res)
	}

	query := &dto.ListAttendanceNotesQuery{
		Status:   ctx.Query("status"),
		Archived: ctx.Query("archived"),
		Limit:    ctx.QueryInt("limit"),
	}
	res, err := c.noteService.List(ctx.Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *attendanceNoteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAttendanceNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *attendanceNoteController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateAttendanceNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func methodNotAllowed(ctx *fiber.Ctx) error {
	return serverutils.NewMethodNotAllowedError()
}

func isTruthy(value string) bool {
	return value == "1" || value == "true"
}

// queryFlag reads a boolean query parameter, accepting a short alias
// alongside the documented name.
func queryFlag(ctx *fiber.Ctx, name, alias string) bool {
	if v := ctx.Query(name); v != "" {
		return isTruthy(v)
	}
	return isTruthy(ctx.Query(alias))
}
