package controller

import (
	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITranscriptController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type transcriptController struct {
	transcriptService service.ITranscriptService
}

func NewTranscriptController(transcriptService service.ITranscriptService) ITranscriptController {
	return &transcriptController{
		transcriptService: transcriptService,
	}
}

func (c *transcriptController) RegisterRoutes(r fiber.Router) {
	r.Get("/transcripts", c.List)
	r.Post("/transcripts", c.Create)
	r.Delete("/transcripts", c.Delete)
	r.All("/transcripts", methodNotAllowed)
}

func (c *transcriptController) List(ctx *fiber.Ctx) error {
	res, err := c.transcriptService.List(ctx.Context(), ctx.QueryInt("limit"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *transcriptController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTranscriptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.transcriptService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *transcriptController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Query("id"))
	if err != nil {
		return serverutils.NewValidationError("id must be a uuid")
	}

	res, err := c.transcriptService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
