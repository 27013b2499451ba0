package controller

import (
	"strconv"

	"active-recall-be/internal/dto"
	"active-recall-be/internal/pkg/serverutils"
	"active-recall-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISectionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Reorder(ctx *fiber.Ctx) error
	ExportAll(ctx *fiber.Ctx) error
	ExportOne(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
}

type sectionController struct {
	sectionService service.ISectionService
}

func NewSectionController(sectionService service.ISectionService) ISectionController {
	return &sectionController{
		sectionService: sectionService,
	}
}

func (c *sectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	// Static segments must register before the :id wildcard
	h.Get("/export/all", c.ExportAll)
	h.Get("/export/:id", c.ExportOne)
	h.Post("/import", c.Import)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/reorder", c.Reorder)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid section id")
	}
	return id, nil
}

func (c *sectionController) List(ctx *fiber.Ctx) error {
	flat := ctx.QueryBool("flat", false)

	res, err := c.sectionService.List(ctx.Context(), flat)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sections", res))
}

func (c *sectionController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.sectionService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show section", res))
}

func (c *sectionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sectionService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create section", res))
}

func (c *sectionController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sectionService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update section", res))
}

func (c *sectionController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.sectionService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete section", nil))
}

func (c *sectionController) Reorder(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	// new_order arrives as a query param; a JSON body works too
	var newOrder *int
	if q := ctx.Query("new_order"); q != "" {
		n, convErr := strconv.Atoi(q)
		if convErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid new_order")
		}
		newOrder = &n
	} else {
		var body struct {
			NewOrder *int `json:"new_order"`
		}
		if err := ctx.BodyParser(&body); err == nil {
			newOrder = body.NewOrder
		}
	}
	if newOrder == nil {
		return fiber.NewError(fiber.StatusBadRequest, "new_order is required")
	}

	if err := c.sectionService.Reorder(ctx.Context(), id, *newOrder); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success reorder section", nil))
}

func (c *sectionController) ExportAll(ctx *fiber.Ctx) error {
	res, err := c.sectionService.ExportAll(ctx.Context())
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename=notes_export.json`)
	return ctx.JSON(res)
}

func (c *sectionController) ExportOne(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, filename, err := c.sectionService.ExportOne(ctx.Context(), id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return ctx.JSON(res)
}

func (c *sectionController) Import(ctx *fiber.Ctx) error {
	var req dto.ImportSectionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sectionService.Import(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success import sections", res))
}
