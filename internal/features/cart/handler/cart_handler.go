package handler

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/core/auth"
	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/core/logger"
	"storefront-checkout/internal/core/server"
	"storefront-checkout/internal/features/cart/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CartHandler handles HTTP requests for the active cart.
type CartHandler struct {
	store *service.CartStore
}

// NewCartHandler creates a new instance of CartHandler.
func NewCartHandler(store *service.CartStore) *CartHandler {
	return &CartHandler{store: store}
}

// Register mounts the cart routes.
func (h *CartHandler) Register(r fiber.Router) {
	r.Get("/cart", h.GetCart)
	r.Post("/cart/items", h.AddItem)
	r.Patch("/cart/items/:id", h.UpdateItem)
	r.Delete("/cart/items/:id", h.DeleteItem)
}

// AddItemRequest is the body of POST /cart/items.
type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// UpdateItemRequest is the body of PATCH /cart/items/{id}.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// GetCart returns the current cart snapshot.
// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} domain.CartSnapshot
// @Failure 401 {object} auth.ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	snap, err := h.store.Get(c.UserContext(), auth.FromCtx(c))
	if err != nil {
		return h.fail(c, "get", err)
	}
	return c.JSON(snap)
}

// AddItem adds a product to the cart.
// @Summary Add product to cart
// @Description Adds units of a product; an existing line for the product is incremented.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Product and quantity"
// @Success 200 {object} domain.CartSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} auth.ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body", RayID: server.RayID(c)})
	}

	snap, err := h.store.AddToCart(c.UserContext(), auth.FromCtx(c), req.ProductID, req.Quantity)
	if err != nil {
		return h.fail(c, "add", err)
	}
	return c.JSON(snap)
}

// UpdateItem changes the quantity of a cart line.
// @Summary Update cart line quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Cart line ID"
// @Param item body UpdateItemRequest true "New quantity"
// @Success 200 {object} domain.CartSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	lineID, err := c.ParamsInt("id")
	if err != nil || lineID <= 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid cart line id", RayID: server.RayID(c)})
	}

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body", RayID: server.RayID(c)})
	}

	snap, err := h.store.UpdateQuantity(c.UserContext(), auth.FromCtx(c), int64(lineID), req.Quantity)
	if err != nil {
		return h.fail(c, "update", err)
	}
	return c.JSON(snap)
}

// DeleteItem removes a cart line.
// @Summary Remove cart line
// @Tags cart
// @Produce json
// @Param id path int true "Cart line ID"
// @Success 200 {object} domain.CartSnapshot
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) DeleteItem(c *fiber.Ctx) error {
	lineID, err := c.ParamsInt("id")
	if err != nil || lineID <= 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid cart line id", RayID: server.RayID(c)})
	}

	snap, err := h.store.DeleteFromCart(c.UserContext(), auth.FromCtx(c), int64(lineID))
	if err != nil {
		return h.fail(c, "delete", err)
	}
	return c.JSON(snap)
}

func (h *CartHandler) fail(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, auth.ErrLoginRequired) {
		return auth.LoginPrompt(c)
	}

	rayID := server.RayID(c)
	status := http.StatusBadGateway
	msg := "Could not update cart, please try again"

	switch {
	case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrInvalidProduct):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, service.ErrLineNotFound):
		status = http.StatusNotFound
		msg = "Cart line not found"
	case httpclient.IsStatus(err, http.StatusBadRequest), httpclient.IsStatus(err, http.StatusUnprocessableEntity):
		status = http.StatusBadRequest
		msg = "The store rejected this change"
	case errors.Is(err, httpclient.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
		msg = "Store is temporarily unavailable"
	}

	logger.ForRequest(rayID).Error("Cart operation failed", zap.String("op", op), zap.Error(err))

	return c.Status(status).JSON(ErrorResponse{Message: msg, RayID: rayID})
}
