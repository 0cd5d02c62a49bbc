package documentController

import (
	"scholarhub/middleware"
	"scholarhub/services"
	"scholarhub/validators/documentValidator"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	documents *services.DocumentService
}

func New(documents *services.DocumentService) *Controller {
	return &Controller{documents: documents}
}

func (h *Controller) Upload(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUpload").(*documentValidator.UploadDocumentRequest)

	res, err := h.documents.Upload(c.UserContext(), middleware.CurrentUserID(c), services.UploadRequest{
		Kind:     reqData.Kind,
		Filename: reqData.Filename,
		MimeType: reqData.MimeType,
		Content:  reqData.Content,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Document uploaded successfully.", res)
}

func (h *Controller) List(c *fiber.Ctx) error {
	docs, err := h.documents.List(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documents fetched successfully.", docs)
}
