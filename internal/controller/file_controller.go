package controller

import (
	"ai-course-assistant-be/internal/dto"
	"ai-course-assistant-be/internal/pkg/serverutils"
	"ai-course-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type fileController struct {
	ingestionService service.IIngestionService
}

func NewFileController(ingestionService service.IIngestionService) IFileController {
	return &fileController{
		ingestionService: ingestionService,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/file/v1")
	h.Post("upload", c.Upload)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	var req dto.UploadFilesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestionService.Upload(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Files processed", res))
}
