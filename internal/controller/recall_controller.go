package controller

import (
	"active-recall-be/internal/dto"
	"active-recall-be/internal/pkg/serverutils"
	"active-recall-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRecallController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type recallController struct {
	recallService service.IRecallService
}

func NewRecallController(recallService service.IRecallService) IRecallController {
	return &recallController{
		recallService: recallService,
	}
}

func (c *recallController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/recall")
	h.Post("analyze", c.Analyze)
	h.Get("history/:id", c.History)
	h.Get("session/:id", c.Show)
}

func (c *recallController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRecallRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recallService.Analyze(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze recall", res))
}

func (c *recallController) History(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	includeSubsections := ctx.QueryBool("include_subsections", false)

	res, err := c.recallService.HistoryBySection(ctx.Context(), id, includeSubsections)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list recall history", res))
}

func (c *recallController) Show(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	res, err := c.recallService.Show(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show recall session", res))
}
