package controller

import (
	"active-recall-be/internal/dto"
	"active-recall-be/internal/pkg/serverutils"
	"active-recall-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	ListBySection(ctx *fiber.Ctx) error
	CheckAnswer(ctx *fiber.Ctx) error
	ClearBySection(ctx *fiber.Ctx) error
}

type quizController struct {
	quizService service.IQuizService
}

func NewQuizController(quizService service.IQuizService) IQuizController {
	return &quizController{
		quizService: quizService,
	}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quiz")
	h.Post("generate", c.Generate)
	h.Get("section/:id", c.ListBySection)
	h.Post("check", c.CheckAnswer)
	h.Delete("section/:id/clear", c.ClearBySection)
}

func (c *quizController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quizService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate questions", res))
}

func (c *quizController) ListBySection(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	includeSubsections := ctx.QueryBool("include_subsections", false)

	res, err := c.quizService.ListBySection(ctx.Context(), id, includeSubsections)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list questions", res))
}

func (c *quizController) CheckAnswer(ctx *fiber.Ctx) error {
	var req dto.CheckAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quizService.CheckAnswer(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check answer", res))
}

func (c *quizController) ClearBySection(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	includeSubsections := ctx.QueryBool("include_subsections", false)

	if err := c.quizService.ClearBySection(ctx.Context(), id, includeSubsections); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear questions", nil))
}
