package controller

import (
	"strconv"

	"ai-course-assistant-be/internal/dto"
	"ai-course-assistant-be/internal/pkg/serverutils"
	"ai-course-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Answer(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	SwitchProvider(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("answer", c.Answer)
	h.Get("history", c.GetHistory)
	h.Post("provider", c.SwitchProvider)
}

func (c *chatController) Answer(ctx *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Answer(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Answer generated", res))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "0"))
	req := dto.GetHistoryRequest{
		UserId: ctx.Query("user_id"),
		ChatId: ctx.Query("chat_id"),
		Limit:  limit,
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.GetHistory(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

func (c *chatController) SwitchProvider(ctx *fiber.Ctx) error {
	var req dto.SwitchProviderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SwitchProvider(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Provider switched", res))
}
