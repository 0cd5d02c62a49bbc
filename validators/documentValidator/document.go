package documentValidator

import (
	"io"
	"strings"

	"scholarhub/middleware"
	"scholarhub/models"

	"github.com/gofiber/fiber/v2"
)

const maxUploadBytes = 10 << 20

type UploadDocumentRequest struct {
	Kind     string
	Filename string
	MimeType string
	Content  []byte
}

// UploadDocument reads a multipart form with a "kind" field and a "file" part.
func UploadDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		kind := strings.ToLower(strings.TrimSpace(c.FormValue("kind")))
		if kind != models.DocumentTranscript && kind != models.DocumentCertificate {
			errors["kind"] = "Kind must be 'transcript' or 'certificate'!"
		}

		file, err := c.FormFile("file")
		if err != nil {
			errors["file"] = "File is required!"
		} else if file.Size == 0 {
			errors["file"] = "File must not be empty!"
		} else if file.Size > maxUploadBytes {
			errors["file"] = "File must be at most 10MB!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		f, err := file.Open()
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read file!", nil)
		}
		defer f.Close()
		content, err := io.ReadAll(f)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read file!", nil)
		}

		c.Locals("validatedUpload", &UploadDocumentRequest{
			Kind:     kind,
			Filename: file.Filename,
			MimeType: file.Header.Get("Content-Type"),
			Content:  content,
		})
		return c.Next()
	}
}
