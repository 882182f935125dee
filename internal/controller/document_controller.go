package controller

import (
	"io"
	"strings"

	"ai-mockinterview-be/internal/dto"
	"ai-mockinterview-be/internal/pkg/serverutils"
	"ai-mockinterview-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadSize = 2 * 1024 * 1024 // 2MB

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
	jwt             fiber.Handler
}

func NewDocumentController(documentService service.IDocumentService, jwt fiber.Handler) IDocumentController {
	return &documentController{
		documentService: documentService,
		jwt:             jwt,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(c.jwt)
	h.Post("upload", c.Upload)
	h.Get("list", c.List)
	h.Delete(":id", c.Delete)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file provided")
	}
	if fileHeader.Size > maxUploadSize {
		return fiber.NewError(fiber.StatusBadRequest, "File exceeds the 2MB limit")
	}
	if !strings.EqualFold(fileHeader.Header.Get("Content-Type"), "application/pdf") {
		return fiber.NewError(fiber.StatusBadRequest, "Only PDF files are allowed")
	}

	req := dto.UploadDocumentRequest{Type: ctx.FormValue("type")}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.documentService.Upload(ctx.Context(), userId, req.Type, fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Document uploaded successfully", res))
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.documentService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list documents", res))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.documentService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Document deleted successfully", nil))
}
