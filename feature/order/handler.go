package order

import (
	"errors"

	"order-manager/core/logger"
	"order-manager/feature/order/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for orders.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the order routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/orders")
	group.Get("/", h.HandleListOrders)
	group.Get("/:order_no", h.HandleGetOrder)
	group.Post("/:order_no/reconcile", h.HandleReconcile)
	group.Delete("/:order_no", h.HandleDeleteOrder)
	group.Get("/:order_no/snapshot", h.HandleGetSnapshot)
}

// HandleListOrders returns one summary per order.
// @Summary List Orders
// @Description Get a summary of every order: header fields, line count, last update.
// @Tags orders
// @Produce json
// @Success 200 {array} models.OrderSummary "Order Summaries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders [get]
func (h *Handler) HandleListOrders(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summaries, err := h.service.ListOrders(c.Context())
	if err != nil {
		l.Error("Order listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(summaries)
}

// HandleGetOrder returns all lines of one order.
// @Summary Get Order
// @Description Get every line of a single order, sorted by line id.
// @Tags orders
// @Produce json
// @Param order_no path string true "Order Number"
// @Success 200 {array} models.OrderLine "Order Lines"
// @Failure 404 {object} map[string]string "Order Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders/{order_no} [get]
func (h *Handler) HandleGetOrder(c *fiber.Ctx) error {
	orderNo := c.Params("order_no")
	l := logger.WithRayID(h.service.logger, c)

	lines, err := h.service.GetOrder(c.Context(), orderNo)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "order " + orderNo + " not found",
			})
		}
		l.Error("Order lookup failed", zap.String("order_no", orderNo), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(lines)
}

// HandleReconcile reconciles a submitted line set against one order.
// @Summary Reconcile Order Lines
// @Description Apply a full line set to an order: new lines are inserted, lines with ids are updated, flagged lines are deleted, all in one transaction.
// @Tags orders
// @Accept json
// @Produce json
// @Param order_no path string true "Order Number"
// @Param lines body []map[string]interface{} true "Submitted Lines"
// @Success 200 {object} reconcile.Result "Reconciliation Result"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 404 {object} map[string]string "Line Not Found"
// @Failure 409 {object} map[string]string "Write Conflict"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders/{order_no}/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	orderNo := c.Params("order_no")
	l := logger.WithRayID(h.service.logger, c)

	var payload []map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "request body must be a JSON array of line objects",
		})
	}

	res, err := h.service.Reconcile(c.Context(), orderNo, reconcile.ItemsFromMaps(payload))
	if err != nil {
		return h.reconcileError(c, l, orderNo, err)
	}
	return c.JSON(res)
}

// reconcileError maps reconciliation failures onto HTTP statuses.
func (h *Handler) reconcileError(c *fiber.Ctx, l *zap.Logger, orderNo string, err error) error {
	var (
		ve *reconcile.ValidationError
		nf *reconcile.NotFoundError
		ce *reconcile.ConflictError
	)
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": nf.Error()})
	case errors.As(err, &ce):
		l.Warn("Reconciliation conflict", zap.String("order_no", orderNo), zap.Error(ce))
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": ce.Error()})
	default:
		l.Error("Reconciliation failed", zap.String("order_no", orderNo), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// HandleDeleteOrder removes every line of one order.
// @Summary Delete Order
// @Description Delete all lines of a single order.
// @Tags orders
// @Produce json
// @Param order_no path string true "Order Number"
// @Success 200 {object} map[string]interface{} "Deleted Line Count"
// @Failure 404 {object} map[string]string "Order Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders/{order_no} [delete]
func (h *Handler) HandleDeleteOrder(c *fiber.Ctx) error {
	orderNo := c.Params("order_no")
	l := logger.WithRayID(h.service.logger, c)

	deleted, err := h.service.DeleteOrder(c.Context(), orderNo)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "order " + orderNo + " not found",
			})
		}
		l.Error("Order deletion failed", zap.String("order_no", orderNo), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"order_no": orderNo, "deleted": deleted})
}

// HandleGetSnapshot returns the archived snapshot of one order.
// @Summary Get Order Snapshot
// @Description Get the JSON snapshot archived after the order's last reconciliation.
// @Tags orders
// @Produce json
// @Param order_no path string true "Order Number"
// @Success 200 {object} Snapshot "Archived Snapshot"
// @Failure 404 {object} map[string]string "Snapshot Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders/{order_no}/snapshot [get]
func (h *Handler) HandleGetSnapshot(c *fiber.Ctx) error {
	orderNo := c.Params("order_no")
	l := logger.WithRayID(h.service.logger, c)

	snap, err := h.service.GetSnapshot(c.Context(), orderNo)
	if err != nil {
		if errors.Is(err, ErrSnapshotsDisabled) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": ErrSnapshotsDisabled.Error(),
			})
		}
		l.Error("Snapshot lookup failed", zap.String("order_no", orderNo), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "snapshot for order " + orderNo + " not found",
		})
	}
	return c.JSON(snap)
}
