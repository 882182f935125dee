package controller

import (
	"ai-mockinterview-be/internal/dto"
	"ai-mockinterview-be/internal/pkg/serverutils"
	"ai-mockinterview-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type interviewController struct {
	interviewService service.IInterviewService
	jwt              fiber.Handler
}

func NewInterviewController(interviewService service.IInterviewService, jwt fiber.Handler) IInterviewController {
	return &interviewController{
		interviewService: interviewService,
		jwt:              jwt,
	}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")
	h.Use(c.jwt)
	h.Post("start", c.Start)
	h.Post("answer", c.Answer)
	h.Get("history/:id", c.History)
	h.Delete("reset", c.Reset)
}

func (c *interviewController) Start(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.interviewService.Start(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start interview", res))
}

func (c *interviewController) Answer(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.SubmitAnswer(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit answer", res))
}

func (c *interviewController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.interviewService.History(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show history", res))
}

func (c *interviewController) Reset(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.interviewService.Reset(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset interview", res))
}
