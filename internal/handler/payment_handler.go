package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"artisticdb/internal/auth"
	"artisticdb/internal/errors"
	"artisticdb/internal/model"
	"artisticdb/internal/service"
)

// PaymentHandler serves payment intents and receipts.
type PaymentHandler struct {
	svc service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreateIntentRequest holds a price in major currency units. Both JSON
// numbers and numeric strings are accepted.
type CreateIntentRequest struct {
	Price decimal.NullDecimal `json:"price" swaggertype:"number"`
}

// CreateIntentResponse carries the secret the client confirms the charge with.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentRequest is the receipt a client submits after confirming a charge.
type PaymentRequest struct {
	UserEmail       string          `json:"user_email" validate:"required,email"`
	UserName        string          `json:"user_name"`
	TransactionID   string          `json:"transaction_id" validate:"required"`
	Price           decimal.Decimal `json:"price" swaggertype:"number"`
	ClassName       string          `json:"class_name"`
	ClassImage      string          `json:"class_image"`
	InstructorEmail string          `json:"instructor_email"`
}

// CreatePaymentIntent godoc
// @Summary Create a payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIntentRequest true "Price"
// @Success 200 {object} CreateIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req CreateIntentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if !req.Price.Valid {
		return toHTTPError(errors.ErrInvalidPrice)
	}

	secret, err := h.svc.CreateIntent(c.Request().Context(), req.Price.Decimal)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, CreateIntentResponse{ClientSecret: secret})
}

// RecordPayment godoc
// @Summary Record a confirmed payment
// @Description The transaction must be a succeeded intent for exactly the recorded price.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Receipt"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user/payments-details [post]
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req PaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := auth.RequireOwner(c, req.UserEmail); err != nil {
		return err
	}

	res, err := h.svc.Record(c.Request().Context(), &model.Payment{
		UserEmail:       req.UserEmail,
		UserName:        req.UserName,
		TransactionID:   req.TransactionID,
		Price:           req.Price.InexactFloat64(),
		ClassName:       req.ClassName,
		ClassImage:      req.ClassImage,
		InstructorEmail: req.InstructorEmail,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListPayments godoc
// @Summary List the caller's payments, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {array} model.Payment
// @Failure 403 {object} errors.ErrorResponse
// @Router /user/payments/{email} [get]
// @Router /user/enrolled-classes/{email} [get]
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}
	if _, err := auth.RequireOwner(c, email); err != nil {
		return err
	}

	payments, err := h.svc.ListByUser(c.Request().Context(), email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, nonNil(payments))
}
