package customer

import (
	"errors"

	"order-manager/core/logger"
	"order-manager/core/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for customers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the customer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/customers")
	group.Get("/", h.HandleListCustomers)
	group.Get("/:code", h.HandleGetCustomer)
	group.Post("/", h.HandleCreateCustomer)
	group.Put("/:code", h.HandleUpdateCustomer)
	group.Delete("/:code", h.HandleDeleteCustomer)
}

// HandleListCustomers returns every customer.
// @Summary List Customers
// @Tags customers
// @Produce json
// @Success 200 {array} models.Customer "Customers"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers [get]
func (h *Handler) HandleListCustomers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	customers, err := h.service.ListCustomers(c.Context())
	if err != nil {
		l.Error("Customer listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(customers)
}

// HandleGetCustomer returns one customer by code.
// @Summary Get Customer
// @Tags customers
// @Produce json
// @Param code path string true "Customer Code"
// @Success 200 {object} models.Customer "Customer"
// @Failure 404 {object} map[string]string "Customer Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers/{code} [get]
func (h *Handler) HandleGetCustomer(c *fiber.Ctx) error {
	code := c.Params("code")
	l := logger.WithRayID(h.service.logger, c)

	cust, err := h.service.GetCustomer(c.Context(), code)
	if err != nil {
		return h.serviceError(c, l, "Customer lookup failed", code, err)
	}
	return c.JSON(cust)
}

// HandleCreateCustomer stores a new customer.
// @Summary Create Customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body CustomerInput true "Customer"
// @Success 201 {object} models.Customer "Created Customer"
// @Failure 400 {object} map[string]string "Invalid Payload"
// @Failure 409 {object} map[string]string "Code Already Exists"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers [post]
func (h *Handler) HandleCreateCustomer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var input CustomerInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	cust, err := h.service.CreateCustomer(c.Context(), input)
	if err != nil {
		return h.serviceError(c, l, "Customer creation failed", input.Code, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cust)
}

// HandleUpdateCustomer overwrites an existing customer.
// @Summary Update Customer
// @Tags customers
// @Accept json
// @Produce json
// @Param code path string true "Customer Code"
// @Param customer body CustomerInput true "Customer"
// @Success 200 {object} models.Customer "Updated Customer"
// @Failure 400 {object} map[string]string "Invalid Payload"
// @Failure 404 {object} map[string]string "Customer Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers/{code} [put]
func (h *Handler) HandleUpdateCustomer(c *fiber.Ctx) error {
	code := c.Params("code")
	l := logger.WithRayID(h.service.logger, c)

	var input CustomerInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	cust, err := h.service.UpdateCustomer(c.Context(), code, input)
	if err != nil {
		return h.serviceError(c, l, "Customer update failed", code, err)
	}
	return c.JSON(cust)
}

// HandleDeleteCustomer removes one customer by code.
// @Summary Delete Customer
// @Tags customers
// @Produce json
// @Param code path string true "Customer Code"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Customer Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers/{code} [delete]
func (h *Handler) HandleDeleteCustomer(c *fiber.Ctx) error {
	code := c.Params("code")
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.DeleteCustomer(c.Context(), code); err != nil {
		return h.serviceError(c, l, "Customer deletion failed", code, err)
	}
	return c.JSON(fiber.Map{"code": code, "status": "deleted"})
}

func (h *Handler) serviceError(c *fiber.Ctx, l *zap.Logger, msg, code string, err error) error {
	var ve *validate.Error
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	case errors.Is(err, ErrCustomerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "customer " + code + " not found"})
	case errors.Is(err, ErrCustomerExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error(msg, zap.String("code", code), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
