package controller

import (
	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Render(ctx *fiber.Ctx) error
	Email(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	r.Get("/attendance-note-html", c.Render)
	r.All("/attendance-note-html", methodNotAllowed)
	r.Post("/email-report", c.Email)
	r.All("/email-report", methodNotAllowed)
}

// Render returns the report as text/html. ?variant=email selects the
// inline-style body for pasting into a mail client; ?include_mobile=1
// adds the counsel mobile number to the footer.
func (c *reportController) Render(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Query("id"))
	if err != nil {
		return serverutils.NewValidationError("id must be a uuid")
	}
	includeExpenses := queryFlag(ctx, "include_expenses", "expenses")

	var html string
	if ctx.Query("variant") == "email" {
		html, err = c.reportService.RenderEmail(ctx.Context(), id, includeExpenses)
	} else {
		html, err = c.reportService.RenderPage(ctx.Context(), id, includeExpenses, queryFlag(ctx, "include_mobile", "mobile"))
	}
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(html)
}

func (c *reportController) Email(ctx *fiber.Ctx) error {
	var req dto.EmailReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reportService.EmailReport(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
