package handler

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/core/auth"
	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/core/logger"
	"storefront-checkout/internal/core/server"
	"storefront-checkout/internal/features/addresses/domain"
	"storefront-checkout/internal/features/addresses/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AddressHandler handles HTTP requests for saved shipping addresses.
type AddressHandler struct {
	service *service.AddressService
}

// NewAddressHandler creates a new instance of AddressHandler.
func NewAddressHandler(service *service.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

// Register mounts the address routes.
func (h *AddressHandler) Register(r fiber.Router) {
	r.Get("/addresses", h.List)
	r.Post("/addresses", h.Create)
	r.Delete("/addresses/:id", h.Delete)
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Fields holds per-field validation messages.
	Fields map[string]string `json:"fields,omitempty"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// List returns the saved addresses.
// @Summary List saved addresses
// @Tags addresses
// @Produce json
// @Success 200 {array} domain.ShippingAddress
// @Failure 401 {object} auth.ErrorResponse
// @Router /addresses [get]
func (h *AddressHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext(), auth.FromCtx(c))
	if err != nil {
		return h.fail(c, "list", err)
	}
	return c.JSON(nonNil(list))
}

// Create saves a new address and returns the refreshed list.
// @Summary Save a shipping address
// @Description At most 4 addresses may be saved.
// @Tags addresses
// @Accept json
// @Produce json
// @Param address body domain.ShippingAddress true "Address"
// @Success 201 {array} domain.ShippingAddress
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /addresses [post]
func (h *AddressHandler) Create(c *fiber.Ctx) error {
	var input domain.ShippingAddress
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body", RayID: server.RayID(c)})
	}
	input.ID = 0

	list, err := h.service.Create(c.UserContext(), auth.FromCtx(c), input)
	if err != nil {
		return h.fail(c, "create", err)
	}
	return c.Status(http.StatusCreated).JSON(nonNil(list))
}

// Delete removes a saved address and returns the refreshed list.
// @Summary Delete a shipping address
// @Tags addresses
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {array} domain.ShippingAddress
// @Failure 404 {object} ErrorResponse
// @Router /addresses/{id} [delete]
func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid address id", RayID: server.RayID(c)})
	}

	list, err := h.service.Delete(c.UserContext(), auth.FromCtx(c), int64(id))
	if err != nil {
		return h.fail(c, "delete", err)
	}
	return c.JSON(nonNil(list))
}

func (h *AddressHandler) fail(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, auth.ErrLoginRequired) {
		return auth.LoginPrompt(c)
	}

	rayID := server.RayID(c)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Message: "Please fix the highlighted fields",
			Fields:  verr.Fields,
			RayID:   rayID,
		})
	}

	status := http.StatusBadGateway
	msg := "Could not load addresses, please try again"

	switch {
	case errors.Is(err, service.ErrAddressLimitReached):
		status = http.StatusConflict
		msg = err.Error()
	case errors.Is(err, service.ErrAddressNotFound):
		status = http.StatusNotFound
		msg = "Address not found"
	case httpclient.IsStatus(err, http.StatusBadRequest), httpclient.IsStatus(err, http.StatusUnprocessableEntity):
		status = http.StatusBadRequest
		msg = "The store rejected this address"
	case errors.Is(err, httpclient.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
		msg = "Store is temporarily unavailable"
	}

	logger.ForRequest(rayID).Error("Address operation failed", zap.String("op", op), zap.Error(err))

	return c.Status(status).JSON(ErrorResponse{Message: msg, RayID: rayID})
}

func nonNil(list []domain.ShippingAddress) []domain.ShippingAddress {
	if list == nil {
		return []domain.ShippingAddress{}
	}
	return list
}
