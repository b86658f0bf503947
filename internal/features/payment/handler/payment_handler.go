package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"storefront-checkout/internal/core/auth"
	"storefront-checkout/internal/core/logger"
	"storefront-checkout/internal/core/server"
	"storefront-checkout/internal/features/payment/domain"
	"storefront-checkout/internal/features/payment/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// autoSubmit is the page that performs the browser form post to the gateway.
var autoSubmit = template.Must(template.New("handoff").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting to payment</title></head>
<body onload="document.forms[0].submit()">
<form method="POST" action="{{.URL}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

// PaymentHandler serves the payment catalog and the handoff navigation.
type PaymentHandler struct {
	service *service.HandoffService
}

// NewPaymentHandler creates a new instance of PaymentHandler.
func NewPaymentHandler(service *service.HandoffService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Register mounts the payment routes.
func (h *PaymentHandler) Register(r fiber.Router) {
	r.Get("/checkout/payment-methods", h.ListMethods)
	r.Get("/payments/:orderId", h.GetHandoff)
	r.Get("/payments/:orderId/redirect", h.Redirect)
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// ListMethods returns the payment method catalog.
// @Summary List payment methods
// @Tags payment
// @Produce json
// @Success 200 {array} domain.Method
// @Router /checkout/payment-methods [get]
func (h *PaymentHandler) ListMethods(c *fiber.Ctx) error {
	return c.JSON(h.service.Methods())
}

// GetHandoff returns the pending handoff of an order.
// @Summary Get payment handoff
// @Tags payment
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} domain.Handoff
// @Failure 401 {object} auth.ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payments/{orderId} [get]
func (h *PaymentHandler) GetHandoff(c *fiber.Ctx) error {
	handoff, err := h.lookup(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(handoff)
}

// Redirect performs the full page navigation to the payment provider.
// @Summary Navigate to payment
// @Description Auto-submitting form for form posts, 302 for plain redirects.
// @Tags payment
// @Produce html
// @Param orderId path string true "Order ID"
// @Success 200 {string} string "auto-submitting form"
// @Success 302 {string} string "redirect"
// @Failure 404 {object} ErrorResponse
// @Router /payments/{orderId}/redirect [get]
func (h *PaymentHandler) Redirect(c *fiber.Ctx) error {
	handoff, err := h.lookup(c)
	if err != nil {
		return h.fail(c, err)
	}

	if handoff.Kind != domain.HandoffFormPost {
		return c.Redirect(handoff.URL, http.StatusFound)
	}

	var page bytes.Buffer
	if err := autoSubmit.Execute(&page, handoff); err != nil {
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(page.Bytes())
}

func (h *PaymentHandler) lookup(c *fiber.Ctx) (*domain.Handoff, error) {
	p := auth.FromCtx(c)
	if err := p.Require(); err != nil {
		return nil, err
	}
	return h.service.Get(c.UserContext(), p.UserID(), c.Params("orderId"))
}

func (h *PaymentHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, auth.ErrLoginRequired) {
		return auth.LoginPrompt(c)
	}

	rayID := server.RayID(c)
	if errors.Is(err, service.ErrHandoffNotFound) {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Message: "No pending payment for this order", RayID: rayID})
	}

	logger.ForRequest(rayID).Error("Payment handoff failed", zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Message: "Could not start payment", RayID: rayID})
}
