package handler

import (
	"errors"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"jobsearchapi/internal/config"
	"jobsearchapi/internal/model"
	"jobsearchapi/internal/scrape"
	"jobsearchapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// translate transport concerns only; business rules live in the services.
func RegisterRoutes(app *fiber.App, cfg *config.AppConfig, docSvc service.DocumentService, jobSvc service.JobSearchService, analysisSvc service.JobAnalysisService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to " + cfg.AppName,
			"docs":    "/docs",
		})
	})

	// Health checks the upload root, the only stateful dependency.
	app.Get("/health", func(c *fiber.Ctx) error {
		info, err := os.Stat(cfg.Upload.Root)
		if err != nil || !info.IsDir() {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "document store unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	api := app.Group(cfg.APIPrefix)

	// Upload document endpoint (multipart/form-data, field name: file)
	api.Post("/documents/upload/:document_type", func(c *fiber.Ctx) error {
		docType, err := model.ParseDocumentType(c.Params("document_type"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DOCUMENT_TYPE", "document type must be one of: "+strings.Join(typeNames(), ", "))
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := docSvc.Save(c.UserContext(), f, docType, fh.Filename, fh.Header.Get("Content-Type"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFileTooLarge):
				return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file size exceeds maximum limit")
			case errors.Is(err, service.ErrUnsupportedType):
				return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "file type is not allowed")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	})

	// List must be registered before the :filename route so "list" is not
	// captured as a filename.
	api.Get("/documents/list", func(c *fiber.Ctx) error {
		var filter *model.DocumentType
		if raw := c.Query("document_type"); raw != "" {
			docType, err := model.ParseDocumentType(raw)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DOCUMENT_TYPE", "document type must be one of: "+strings.Join(typeNames(), ", "))
			}
			filter = &docType
		}

		res, err := docSvc.List(c.UserContext(), filter)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	})

	api.Get("/documents/:filename", func(c *fiber.Ctx) error {
		doc, err := docSvc.Get(c.UserContext(), c.Params("filename"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			case errors.Is(err, service.ErrFilenameRequired):
				return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "filename is required")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(doc)
	})

	api.Delete("/documents/:filename", func(c *fiber.Ctx) error {
		removed, err := docSvc.Delete(c.UserContext(), c.Params("filename"))
		if err != nil {
			if errors.Is(err, service.ErrFilenameRequired) {
				return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "filename is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if !removed {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
		}
		return c.JSON(fiber.Map{"success": true, "message": "document deleted successfully"})
	})

	api.Post("/jobs/search", func(c *fiber.Ctx) error {
		var req model.JobSearchRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		res, err := jobSvc.Search(c.UserContext(), req)
		if err != nil {
			if errors.Is(err, service.ErrQueryRequired) {
				return writeError(c, fiber.StatusBadRequest, "QUERY_REQUIRED", "search query cannot be empty")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	})

	api.Post("/applications/analyze", func(c *fiber.Ctx) error {
		var req model.ApplicationRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		if strings.TrimSpace(req.JobURL) == "" {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "job_url is required")
		}

		res, err := analysisSvc.Analyze(c.UserContext(), req.JobURL)
		if err != nil {
			if errors.Is(err, scrape.ErrNotJobPosting) {
				return writeError(c, fiber.StatusUnprocessableEntity, "NOT_A_JOB_POSTING", "url does not appear to be a job posting")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	})
}

func typeNames() []string {
	types := model.DocumentTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
