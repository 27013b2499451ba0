package controller

import (
	"active-recall-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
}

type healthController struct {
	healthService service.IHealthService
}

func NewHealthController(healthService service.IHealthService) IHealthController {
	return &healthController{
		healthService: healthService,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Check)
}

// Check reports service liveness and the model backend's reachability. The
// response is always 200; a down backend shows up as ollama.running=false.
func (c *healthController) Check(ctx *fiber.Ctx) error {
	return ctx.JSON(c.healthService.Check(ctx.Context()))
}
