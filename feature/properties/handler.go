package properties

import (
	"errors"
	"net/url"

	"foodfunk/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for property tables.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the property routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/properties")
	group.Get("/", h.HandleListTables)
	group.Get("/:table", h.HandleExport)
	group.Get("/:table/:key", h.HandleResolve)
	group.Post("/:table/reload", h.HandleReload)
}

// HandleListTables lists the bound tables.
// @Summary List Tables
// @Tags properties
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /properties [get]
func (h *Handler) HandleListTables(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tables": h.service.Tables()})
}

// HandleExport returns every configured entry of a table.
// @Summary Export Table
// @Tags properties
// @Produce json
// @Param table path string true "Table name (e.g. 'rot')"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /properties/{table} [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	entries, err := h.service.Export(c.Params("table"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(entries)
}

// HandleResolve resolves a raw key against a table.
// @Summary Resolve Key
// @Description Resolve "id" or "id@meta" against a table, falling back from id@meta to id.
// @Tags properties
// @Produce json
// @Param table path string true "Table name (e.g. 'preserving')"
// @Param key path string true "Key (e.g. 'minecraft:fish@1')"
// @Success 200 {object} Resolution
// @Failure 404 {object} map[string]string
// @Router /properties/{table}/{key} [get]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("key"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid key"})
	}

	res, err := h.service.ResolveKey(c.Params("table"), key)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleReload reloads a table from its sources.
// @Summary Reload Table
// @Tags properties
// @Produce json
// @Param table path string true "Table name"
// @Success 200 {object} source.Report
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /properties/{table}/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	report, err := h.service.Reload(c.UserContext(), c.Params("table"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrUnknownTable) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Property request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
