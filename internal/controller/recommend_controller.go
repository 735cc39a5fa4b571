package controller

import (
	"github.com/gofiber/fiber/v2"

	"naeilum-be/internal/dto"
	"naeilum-be/internal/pkg/serverutils"
	"naeilum-be/internal/service"
)

type IRecommendController interface {
	RegisterRoutes(r fiber.Router)
	Recommend(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	Selection(ctx *fiber.Ctx) error
}

type recommendController struct {
	service service.IRecommendService
}

func NewRecommendController(service service.IRecommendService) IRecommendController {
	return &recommendController{service: service}
}

func (c *recommendController) RegisterRoutes(r fiber.Router) {
	r.Post("/recommend", c.Recommend)
	r.Post("/select", c.Select)
	r.Get("/selection", c.Selection)
}

func (c *recommendController) Recommend(ctx *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "no data provided")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	sessionID := ctx.Locals(serverutils.SessionLocalsKey).(string)
	res, err := c.service.Recommend(ctx.Context(), sessionID, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *recommendController) Select(ctx *fiber.Ctx) error {
	var req dto.SelectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "no data provided")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	sessionID := ctx.Locals(serverutils.SessionLocalsKey).(string)
	res, err := c.service.Select(ctx.Context(), sessionID, *req.Index)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *recommendController) Selection(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals(serverutils.SessionLocalsKey).(string)
	res, err := c.service.Selected(ctx.Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
