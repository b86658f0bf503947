package handler

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/core/auth"
	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/core/logger"
	"storefront-checkout/internal/core/server"
	addresses "storefront-checkout/internal/features/addresses/service"
	"storefront-checkout/internal/features/checkout/domain"
	"storefront-checkout/internal/features/checkout/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CheckoutHandler handles HTTP requests for checkout sessions.
type CheckoutHandler struct {
	service *service.CheckoutService
}

// NewCheckoutHandler creates a new instance of CheckoutHandler.
func NewCheckoutHandler(service *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// Register mounts the checkout routes.
func (h *CheckoutHandler) Register(r fiber.Router) {
	r.Get("/checkout/delivery-partners", h.ListDeliveryPartners)

	s := r.Group("/checkout/sessions")
	s.Post("/", h.CreateSession)
	s.Get("/:id", h.GetSession)
	s.Delete("/:id", h.DiscardSession)

	s.Put("/:id/address", h.SetAddress)
	s.Put("/:id/recipient", h.SetRecipient)
	s.Put("/:id/delivery", h.SetDelivery)
	s.Put("/:id/payment", h.SetPaymentMethod)

	s.Put("/:id/step", h.GoToStep)
	s.Post("/:id/step/next", h.NextStep)
	s.Post("/:id/step/prev", h.PrevStep)

	s.Post("/:id/promo", h.ApplyPromo)
	s.Delete("/:id/promo", h.ClearPromo)

	s.Get("/:id/review", h.Review)
	s.Post("/:id/submit", h.Submit)
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Field names the offending sub-form field.
	Field string `json:"field,omitempty"`
	// Wells lists the review sections that still need attention.
	Wells map[domain.Well]string `json:"wells,omitempty"`
	// First is the section the UI should scroll to.
	First domain.Well `json:"first,omitempty"`
	// OrderID is set when the order exists despite the failure.
	OrderID string `json:"order_id,omitempty"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// SessionResponse is a session with its step progress.
type SessionResponse struct {
	Session  *domain.CheckoutState `json:"session"`
	Progress map[domain.Step]bool  `json:"progress"`
	// Moved is set by navigation requests.
	Moved *bool `json:"moved,omitempty"`
}

// AddressRequest selects a saved address; 0 clears the selection.
type AddressRequest struct {
	AddressID int64 `json:"address_id"`
}

// PaymentRequest selects a payment method; empty clears it.
type PaymentRequest struct {
	Method string `json:"method"`
}

// StepRequest names the step to jump to.
type StepRequest struct {
	Step domain.Step `json:"step"`
}

// PromoRequest carries a promo code.
type PromoRequest struct {
	Code string `json:"code"`
}

// SubmitResponse is returned once the order is placed.
type SubmitResponse struct {
	*service.SubmitResult
	// RedirectURL is the page that performs the payment navigation.
	RedirectURL string `json:"redirect_url"`
}

func respond(state *domain.CheckoutState) SessionResponse {
	return SessionResponse{Session: state, Progress: state.Progress()}
}

// ListDeliveryPartners returns the delivery partner catalog.
// @Summary List delivery partners
// @Tags checkout
// @Produce json
// @Success 200 {array} domain.DeliveryPartner
// @Router /checkout/delivery-partners [get]
func (h *CheckoutHandler) ListDeliveryPartners(c *fiber.Ctx) error {
	return c.JSON(h.service.DeliveryPartners())
}

// CreateSession starts a checkout session.
// @Summary Start checkout
// @Tags checkout
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 401 {object} auth.ErrorResponse
// @Router /checkout/sessions [post]
func (h *CheckoutHandler) CreateSession(c *fiber.Ctx) error {
	state, err := h.service.Create(c.UserContext(), auth.FromCtx(c))
	if err != nil {
		return h.fail(c, "create", err)
	}
	return c.Status(http.StatusCreated).JSON(respond(state))
}

// GetSession returns a checkout session.
// @Summary Get checkout session
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/sessions/{id} [get]
func (h *CheckoutHandler) GetSession(c *fiber.Ctx) error {
	state, err := h.service.Get(c.UserContext(), auth.FromCtx(c), c.Params("id"))
	if err != nil {
		return h.fail(c, "get", err)
	}
	return c.JSON(respond(state))
}

// DiscardSession abandons a checkout session.
// @Summary Leave checkout
// @Tags checkout
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /checkout/sessions/{id} [delete]
func (h *CheckoutHandler) DiscardSession(c *fiber.Ctx) error {
	if err := h.service.Discard(c.UserContext(), auth.FromCtx(c), c.Params("id")); err != nil {
		return h.fail(c, "discard", err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// SetAddress selects the shipping address.
// @Summary Set shipping address
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body AddressRequest true "Saved address"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/sessions/{id}/address [put]
func (h *CheckoutHandler) SetAddress(c *fiber.Ctx) error {
	var req AddressRequest
	if err := c.BodyParser(&req); err != nil || req.AddressID < 0 {
		return h.badRequest(c)
	}

	state, err := h.service.SetAddress(c.UserContext(), auth.FromCtx(c), c.Params("id"), req.AddressID)
	if err != nil {
		return h.fail(c, "set_address", err)
	}
	return c.JSON(respond(state))
}

// SetRecipient replaces the recipient.
// @Summary Set recipient
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body domain.Recipient true "Recipient"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /checkout/sessions/{id}/recipient [put]
func (h *CheckoutHandler) SetRecipient(c *fiber.Ctx) error {
	var req domain.Recipient
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c)
	}

	state, err := h.service.SetRecipient(c.UserContext(), auth.FromCtx(c), c.Params("id"), req)
	if err != nil {
		return h.fail(c, "set_recipient", err)
	}
	return c.JSON(respond(state))
}

// SetDelivery replaces the delivery selection.
// @Summary Set delivery
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body service.DeliveryInput true "Delivery"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /checkout/sessions/{id}/delivery [put]
func (h *CheckoutHandler) SetDelivery(c *fiber.Ctx) error {
	var req service.DeliveryInput
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c)
	}

	state, err := h.service.SetDelivery(c.UserContext(), auth.FromCtx(c), c.Params("id"), req)
	if err != nil {
		return h.fail(c, "set_delivery", err)
	}
	return c.JSON(respond(state))
}

// SetPaymentMethod selects the payment method.
// @Summary Set payment method
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body PaymentRequest true "Payment method"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /checkout/sessions/{id}/payment [put]
func (h *CheckoutHandler) SetPaymentMethod(c *fiber.Ctx) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c)
	}

	state, err := h.service.SetPaymentMethod(c.UserContext(), auth.FromCtx(c), c.Params("id"), req.Method)
	if err != nil {
		return h.fail(c, "set_payment", err)
	}
	return c.JSON(respond(state))
}

// GoToStep jumps to a step whose prerequisites are complete.
// @Summary Go to step
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body StepRequest true "Target step"
// @Success 200 {object} SessionResponse
// @Router /checkout/sessions/{id}/step [put]
func (h *CheckoutHandler) GoToStep(c *fiber.Ctx) error {
	var req StepRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c)
	}

	state, moved, err := h.service.GoToStep(c.UserContext(), auth.FromCtx(c), c.Params("id"), req.Step)
	return h.navigated(c, "goto_step", state, moved, err)
}

// NextStep advances when the current step is complete.
// @Summary Next step
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Router /checkout/sessions/{id}/step/next [post]
func (h *CheckoutHandler) NextStep(c *fiber.Ctx) error {
	state, moved, err := h.service.NextStep(c.UserContext(), auth.FromCtx(c), c.Params("id"))
	return h.navigated(c, "next_step", state, moved, err)
}

// PrevStep moves back one step.
// @Summary Previous step
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Router /checkout/sessions/{id}/step/prev [post]
func (h *CheckoutHandler) PrevStep(c *fiber.Ctx) error {
	state, moved, err := h.service.PrevStep(c.UserContext(), auth.FromCtx(c), c.Params("id"))
	return h.navigated(c, "prev_step", state, moved, err)
}

func (h *CheckoutHandler) navigated(c *fiber.Ctx, op string, state *domain.CheckoutState, moved bool, err error) error {
	if err != nil {
		return h.fail(c, op, err)
	}
	resp := respond(state)
	resp.Moved = &moved
	return c.JSON(resp)
}

// ApplyPromo applies a promo code.
// @Summary Apply promo code
// @Description An unknown code is rejected and clears any applied promo.
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body PromoRequest true "Promo code"
// @Success 200 {object} domain.Totals
// @Failure 400 {object} ErrorResponse
// @Router /checkout/sessions/{id}/promo [post]
func (h *CheckoutHandler) ApplyPromo(c *fiber.Ctx) error {
	var req PromoRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c)
	}

	totals, err := h.service.ApplyPromo(c.UserContext(), auth.FromCtx(c), c.Params("id"), req.Code)
	if err != nil {
		return h.fail(c, "apply_promo", err)
	}
	return c.JSON(totals)
}

// ClearPromo removes the applied promo code.
// @Summary Remove promo code
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Totals
// @Router /checkout/sessions/{id}/promo [delete]
func (h *CheckoutHandler) ClearPromo(c *fiber.Ctx) error {
	totals, err := h.service.ClearPromo(c.UserContext(), auth.FromCtx(c), c.Params("id"))
	if err != nil {
		return h.fail(c, "clear_promo", err)
	}
	return c.JSON(totals)
}

// Review returns everything the review step shows.
// @Summary Review order
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} service.Review
// @Router /checkout/sessions/{id}/review [get]
func (h *CheckoutHandler) Review(c *fiber.Ctx) error {
	review, err := h.service.Review(c.UserContext(), auth.FromCtx(c), c.Params("id"))
	if err != nil {
		return h.fail(c, "review", err)
	}
	return c.JSON(review)
}

// Submit places the order.
// @Summary Place order
// @Description Validates the session, posts the order and prepares the payment handoff.
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} SubmitResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /checkout/sessions/{id}/submit [post]
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	result, err := h.service.Submit(c.UserContext(), auth.FromCtx(c), c.Params("id"))
	if err != nil {
		return h.fail(c, "submit", err)
	}
	return c.Status(http.StatusCreated).JSON(SubmitResponse{
		SubmitResult: result,
		RedirectURL:  "/payments/" + result.OrderID + "/redirect",
	})
}

func (h *CheckoutHandler) badRequest(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body", RayID: server.RayID(c)})
}

func (h *CheckoutHandler) fail(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, auth.ErrLoginRequired) {
		return auth.LoginPrompt(c)
	}

	rayID := server.RayID(c)
	resp := ErrorResponse{Message: "Checkout failed, please try again", RayID: rayID}
	status := http.StatusInternalServerError

	var (
		verr       *domain.ValidationError
		ferr       *domain.FieldError
		handoffErr *service.HandoffError
		apiErr     *httpclient.APIError
	)

	switch {
	case errors.As(err, &verr):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Message: "Please complete the highlighted sections",
			Wells:   verr.Wells,
			First:   verr.First,
			RayID:   rayID,
		})
	case errors.As(err, &ferr):
		status = http.StatusBadRequest
		resp.Message = ferr.Field + " " + ferr.Message
		resp.Field = ferr.Field
	case errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
		resp.Message = "Checkout session not found"
	case errors.Is(err, addresses.ErrAddressNotFound):
		status = http.StatusNotFound
		resp.Message = "Address not found"
	case errors.Is(err, service.ErrSubmissionInProgress):
		status = http.StatusConflict
		resp.Message = "Your order is already being placed"
	case errors.Is(err, service.ErrEmptyCart):
		status = http.StatusBadRequest
		resp.Message = "Your cart is empty"
	case errors.Is(err, domain.ErrUnknownPromo):
		status = http.StatusBadRequest
		resp.Message = "Promo code is not valid"
		resp.Field = "code"
	case errors.Is(err, domain.ErrUnknownPartner):
		status = http.StatusBadRequest
		resp.Message = "Delivery partner is not available"
		resp.Field = "partner_id"
	case errors.As(err, &handoffErr):
		status = http.StatusBadGateway
		resp.Message = "Your order was placed but payment could not start"
		resp.OrderID = handoffErr.OrderID
	case errors.Is(err, httpclient.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
		resp.Message = "Store is temporarily unavailable"
	case errors.As(err, &apiErr):
		status = http.StatusBadGateway
		if apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
			resp.Message = "The store rejected this order"
		}
	}

	if status >= http.StatusInternalServerError {
		logger.ForRequest(rayID).Error("Checkout operation failed", zap.String("op", op), zap.Error(err))
	} else {
		logger.ForRequest(rayID).Debug("Checkout request rejected", zap.String("op", op), zap.Error(err))
	}

	return c.Status(status).JSON(resp)
}
