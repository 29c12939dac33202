package integrity

import (
	"errors"

	"foodfunk/core/logger"
	"foodfunk/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/sources", h.HandleSourcesCheck)
}

func section(v any, err error) any {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return fiber.Map{"status": "disabled"}
	case err != nil:
		return fiber.Map{"status": "error", "error": err.Error()}
	}
	return v
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the storage, database and source checks.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]any)

	report["storage"] = section(h.service.CheckStorage(ctx))
	report["database"] = section(h.service.CheckDatabase())
	report["sources"] = h.service.CheckSources(ctx)

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the shared property file.
// @Summary Check Storage Object
// @Description Checks that the property file exists in the bucket and defines every table. Optionally uploads the defaults.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Upload the default property file"
// @Success 200 {object} checks.ObjectReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 501 {object} map[string]string "Storage disabled"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStorage(c.UserContext())
	if err != nil {
		return h.fail(c, l, "Storage check failed", err)
	}

	if len(report.Missing) > 0 {
		l.Warn("Property file is incomplete", zap.Bool("exists", report.Exists), zap.Strings("missing", report.Missing))

		if fix {
			if report.Exists {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":   "Refusing to overwrite an existing property file",
					"missing": report.Missing,
				})
			}
			if err := h.service.FixStorage(c.UserContext()); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to upload property file",
					"details": err.Error(),
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  report.Missing,
			})
		}
	}

	return c.JSON(report)
}

// HandleDatabaseCheck checks and optionally migrates the override table.
// @Summary Check Database Schema
// @Description Checks that property_overrides has the columns database sources read. Optionally migrates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Migrate the table"
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 501 {object} map[string]string "Database disabled"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckDatabase()
	if err != nil {
		return h.fail(c, l, "Schema check failed", err)
	}

	if report.Status != "ok" && fix {
		l.Info("Migrating property_overrides", zap.Strings("missing", report.MissingColumns))
		if err := h.service.FixDatabase(c.UserContext()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to migrate schema",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"fixed":  report.MissingColumns,
		})
	}

	return c.JSON(report)
}

// HandleSourcesCheck validates every property source.
// @Summary Check Property Sources
// @Description Loads every source of every table and lists entries that do not decode.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string][]checks.SourceReport "Sources Report"
// @Router /integrity/sources [get]
func (h *Handler) HandleSourcesCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckSources(c.UserContext()))
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	if errors.Is(err, ErrNotConfigured) {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
