package controller

import (
	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDirectoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type directoryController struct {
	directoryService service.IDirectoryService
}

func NewDirectoryController(directoryService service.IDirectoryService) IDirectoryController {
	return &directoryController{
		directoryService: directoryService,
	}
}

func (c *directoryController) RegisterRoutes(r fiber.Router) {
	r.Get("/directory", c.List)
	r.Post("/directory", c.Add)
	r.Delete("/directory", c.Remove)
	r.All("/directory", methodNotAllowed)
}

func (c *directoryController) List(ctx *fiber.Ctx) error {
	res, err := c.directoryService.List(ctx.Context(), ctx.Query("type"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *directoryController) Add(ctx *fiber.Ctx) error {
	var req dto.DirectoryMutationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.directoryService.Add(ctx.Context(), req.Type, req.Value)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *directoryController) Remove(ctx *fiber.Ctx) error {
	var req dto.DirectoryMutationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.directoryService.Remove(ctx.Context(), req.Type, req.Value)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
