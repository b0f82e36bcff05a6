package profile

import (
	"errors"

	"order-manager/core/logger"
	"order-manager/core/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for profiles.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the profile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/profiles")
	group.Get("/:kind", h.HandleGetProfile)
	group.Put("/:kind", h.HandleUpsertProfile)
}

// HandleGetProfile returns the stored profile of one kind.
// @Summary Get Profile
// @Description Get the admin, distributor, or corporate profile in its normalized form.
// @Tags profiles
// @Produce json
// @Param kind path string true "Profile Kind" Enums(admin, distributor, corporate)
// @Success 200 {object} models.Profile "Profile"
// @Failure 400 {object} map[string]string "Unknown Kind"
// @Failure 404 {object} map[string]string "Profile Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /profiles/{kind} [get]
func (h *Handler) HandleGetProfile(c *fiber.Ctx) error {
	kind := c.Params("kind")
	l := logger.WithRayID(h.service.logger, c)

	p, err := h.service.GetProfile(c.Context(), kind)
	if err != nil {
		return h.serviceError(c, l, "Profile lookup failed", kind, err)
	}
	return c.JSON(p)
}

// HandleUpsertProfile stores the profile of one kind.
// @Summary Upsert Profile
// @Description Create or overwrite the admin, distributor, or corporate profile.
// @Tags profiles
// @Accept json
// @Produce json
// @Param kind path string true "Profile Kind" Enums(admin, distributor, corporate)
// @Param profile body ProfileInput true "Profile"
// @Success 200 {object} models.Profile "Stored Profile"
// @Failure 400 {object} map[string]string "Invalid Payload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /profiles/{kind} [put]
func (h *Handler) HandleUpsertProfile(c *fiber.Ctx) error {
	kind := c.Params("kind")
	l := logger.WithRayID(h.service.logger, c)

	var input ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	p, err := h.service.UpsertProfile(c.Context(), kind, input)
	if err != nil {
		return h.serviceError(c, l, "Profile upsert failed", kind, err)
	}
	return c.JSON(p)
}

func (h *Handler) serviceError(c *fiber.Ctx, l *zap.Logger, msg, kind string, err error) error {
	var ve *validate.Error
	switch {
	case errors.Is(err, ErrUnknownKind):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown profile kind " + kind})
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	case errors.Is(err, ErrProfileNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": kind + " profile not found"})
	default:
		l.Error(msg, zap.String("kind", kind), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
