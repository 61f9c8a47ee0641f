package controller

import (
	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	Transcribe(ctx *fiber.Ctx) error
	Summarise(ctx *fiber.Ctx) error
	PolishAdvice(ctx *fiber.Ctx) error
}

type aiController struct {
	transcriptionService service.ITranscriptionService
}

func NewAiController(transcriptionService service.ITranscriptionService) IAiController {
	return &aiController{
		transcriptionService: transcriptionService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	r.Post("/transcribe", c.Transcribe)
	r.All("/transcribe", methodNotAllowed)
	r.Post("/summarise", c.Summarise)
	r.All("/summarise", methodNotAllowed)
	r.Post("/polish-advice", c.PolishAdvice)
	r.All("/polish-advice", methodNotAllowed)
}

func (c *aiController) Transcribe(ctx *fiber.Ctx) error {
	var req dto.TranscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.transcriptionService.Transcribe(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *aiController) Summarise(ctx *fiber.Ctx) error {
	var req dto.SummariseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.transcriptionService.Summarise(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *aiController) PolishAdvice(ctx *fiber.Ctx) error {
	var req dto.PolishAdviceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.transcriptionService.PolishAdvice(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
