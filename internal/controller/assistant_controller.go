package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-policyintel-be/internal/dto"
	"ai-policyintel-be/internal/pkg/serverutils"
	"ai-policyintel-be/internal/service"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	AskSmart(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("ask", c.Ask)
	h.Post("ask-smart", c.AskSmart)
	h.Post("search", c.Search)
}

func (c *assistantController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.assistantService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer query", res))
}

func (c *assistantController) AskSmart(ctx *fiber.Ctx) error {
	var req dto.SmartAskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.assistantService.AskSmart(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer smart query", res))
}

// Search answers with the raw hit array, no envelope. Debug tooling scripted
// against this exact shape.
func (c *assistantController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.assistantService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
