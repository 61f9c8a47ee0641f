package controller

import (
	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITodoController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type todoController struct {
	todoService service.ITodoService
}

func NewTodoController(todoService service.ITodoService) ITodoController {
	return &todoController{
		todoService: todoService,
	}
}

func (c *todoController) RegisterRoutes(r fiber.Router) {
	r.Get("/todos", c.List)
	r.Post("/todos", c.Create)
	r.Patch("/todos", c.Update)
	r.Delete("/todos", c.Delete)
	r.All("/todos", methodNotAllowed)
}

func (c *todoController) List(ctx *fiber.Ctx) error {
	query := &dto.ListTodosQuery{
		Status: ctx.Query("status"),
		Limit:  ctx.QueryInt("limit"),
	}
	res, err := c.todoService.List(ctx.Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *todoController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTodoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.todoService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *todoController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateTodoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.todoService.UpdateStatus(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *todoController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Query("id"))
	if err != nil {
		return serverutils.NewValidationError("id must be a uuid")
	}

	res, err := c.todoService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
