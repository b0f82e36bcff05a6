package stock

import (
	"errors"

	"order-manager/core/logger"
	"order-manager/core/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stock items.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the stock routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/stock-items")
	group.Get("/", h.HandleListItems)
	group.Get("/:code", h.HandleGetItem)
	group.Post("/", h.HandleCreateItem)
	group.Put("/:code", h.HandleUpdateItem)
	group.Delete("/:code", h.HandleDeleteItem)
}

// HandleListItems returns every stock item.
// @Summary List Stock Items
// @Tags stock
// @Produce json
// @Success 200 {array} models.StockItem "Stock Items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stock-items [get]
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	items, err := h.service.ListItems(c.Context())
	if err != nil {
		l.Error("Stock item listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

// HandleGetItem returns one stock item by code.
// @Summary Get Stock Item
// @Tags stock
// @Produce json
// @Param code path string true "Item Code"
// @Success 200 {object} models.StockItem "Stock Item"
// @Failure 404 {object} map[string]string "Item Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stock-items/{code} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	code := c.Params("code")
	l := logger.WithRayID(h.service.logger, c)

	item, err := h.service.GetItem(c.Context(), code)
	if err != nil {
		return h.serviceError(c, l, "Stock item lookup failed", code, err)
	}
	return c.JSON(item)
}

// HandleCreateItem stores a new stock item.
// @Summary Create Stock Item
// @Tags stock
// @Accept json
// @Produce json
// @Param item body ItemInput true "Stock Item"
// @Success 201 {object} models.StockItem "Created Stock Item"
// @Failure 400 {object} map[string]string "Invalid Payload"
// @Failure 409 {object} map[string]string "Code Already Exists"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stock-items [post]
func (h *Handler) HandleCreateItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var input ItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	item, err := h.service.CreateItem(c.Context(), input)
	if err != nil {
		return h.serviceError(c, l, "Stock item creation failed", input.Code, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateItem overwrites an existing stock item.
// @Summary Update Stock Item
// @Tags stock
// @Accept json
// @Produce json
// @Param code path string true "Item Code"
// @Param item body ItemInput true "Stock Item"
// @Success 200 {object} models.StockItem "Updated Stock Item"
// @Failure 400 {object} map[string]string "Invalid Payload"
// @Failure 404 {object} map[string]string "Item Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stock-items/{code} [put]
func (h *Handler) HandleUpdateItem(c *fiber.Ctx) error {
	code := c.Params("code")
	l := logger.WithRayID(h.service.logger, c)

	var input ItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	item, err := h.service.UpdateItem(c.Context(), code, input)
	if err != nil {
		return h.serviceError(c, l, "Stock item update failed", code, err)
	}
	return c.JSON(item)
}

// HandleDeleteItem removes one stock item by code.
// @Summary Delete Stock Item
// @Tags stock
// @Produce json
// @Param code path string true "Item Code"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Item Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stock-items/{code} [delete]
func (h *Handler) HandleDeleteItem(c *fiber.Ctx) error {
	code := c.Params("code")
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.DeleteItem(c.Context(), code); err != nil {
		return h.serviceError(c, l, "Stock item deletion failed", code, err)
	}
	return c.JSON(fiber.Map{"code": code, "status": "deleted"})
}

func (h *Handler) serviceError(c *fiber.Ctx, l *zap.Logger, msg, code string, err error) error {
	var ve *validate.Error
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	case errors.Is(err, ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "stock item " + code + " not found"})
	case errors.Is(err, ErrItemExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error(msg, zap.String("code", code), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
