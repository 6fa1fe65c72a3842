package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"ai-policyintel-be/internal/pkg/apperror"
	"ai-policyintel-be/internal/pkg/serverutils"
	"ai-policyintel-be/internal/service"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type documentController struct {
	ingestionService service.IIngestionService
}

func NewDocumentController(ingestionService service.IIngestionService) IDocumentController {
	return &documentController{
		ingestionService: ingestionService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Post("upload", c.Upload)
	h.Get("", c.List)
	h.Delete("", c.Clear)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return apperror.Validation("multipart form with a 'files' field is required")
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		// Single-file clients send the field as "file".
		headers = form.File["file"]
	}
	if len(headers) == 0 {
		return apperror.Validation("no files provided")
	}

	files := make([]service.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return apperror.Validation("failed to open uploaded file " + header.Filename)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return apperror.Validation("failed to read uploaded file " + header.Filename)
		}
		files = append(files, service.UploadFile{
			FileName: header.Filename,
			Data:     data,
		})
	}

	res, err := c.ingestionService.Ingest(ctx.Context(), files)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload documents", res))
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	res := c.ingestionService.ListDocuments(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success list documents", res))
}

func (c *documentController) Clear(ctx *fiber.Ctx) error {
	res, err := c.ingestionService.ClearAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear documents", res))
}
