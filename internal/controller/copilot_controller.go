package controller

import (
	"io"

	"askaprilai-be/internal/dto"
	"askaprilai-be/internal/pkg/apperror"
	"askaprilai-be/internal/pkg/serverutils"
	"askaprilai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

var allowedUploadTypes = map[string]struct{}{
	"text/plain":      {},
	"application/pdf": {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/html": {},
}

type ICopilotController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Continue(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
}

type copilotController struct {
	copilotService service.ICopilotService
}

func NewCopilotController(copilotService service.ICopilotService) ICopilotController {
	return &copilotController{
		copilotService: copilotService,
	}
}

func (c *copilotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/copilot")
	h.Post("start", c.Start)
	h.Post("continue", c.Continue)
	h.Get("status/:conversationId", c.Status)
	h.Get("download/:conversationId", c.Download)
	h.Post("upload", c.Upload)
}

func (c *copilotController) Start(ctx *fiber.Ctx) error {
	var req dto.StartConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.copilotService.Start(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *copilotController) Continue(ctx *fiber.Ctx) error {
	var req dto.ContinueConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.copilotService.Continue(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *copilotController) Status(ctx *fiber.Ctx) error {
	res, err := c.copilotService.Status(ctx.Context(), ctx.Params("conversationId"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *copilotController) Download(ctx *fiber.Ctx) error {
	format := ctx.Query("format", "html")

	res, err := c.copilotService.Download(ctx.Context(), ctx.Params("conversationId"), format)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, res.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return ctx.Send(res.Body)
}

func (c *copilotController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("document")
	if err != nil {
		return apperror.Validation("No file uploaded")
	}

	if fileHeader.Size > maxUploadSize {
		return apperror.Validation("File too large, maximum size is 10MB")
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if _, ok := allowedUploadTypes[contentType]; !ok {
		return apperror.UnsupportedFormat("Invalid file type. Please upload PDF, Word, HTML, or text files.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperror.Validation("Could not read uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return apperror.Validation("Could not read uploaded file")
	}

	res, err := c.copilotService.StartFromUpload(
		ctx.Context(),
		fileHeader.Filename,
		string(content),
		ctx.FormValue("documentType"),
		ctx.FormValue("improvementGoals"),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
