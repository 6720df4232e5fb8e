package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"artisticdb/internal/auth"
	"artisticdb/internal/service"
)

// CartHandler serves a user's cart.
type CartHandler struct {
	svc service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// AddToCartRequest names the cart owner.
type AddToCartRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RemoveFromCartRequest names the cart entry to drop.
type RemoveFromCartRequest struct {
	Email string `query:"email" validate:"required,email"`
	Name  string `query:"name" validate:"required"`
}

// AddToCart godoc
// @Summary Copy a class into the caller's cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Param request body AddToCartRequest true "Cart owner"
// @Success 200 {object} model.InsertResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /add-to-cart/{id} [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := auth.RequireOwner(c, req.Email); err != nil {
		return err
	}

	res, err := h.svc.Add(c.Request().Context(), c.Param("id"), req.Email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListCart godoc
// @Summary List the caller's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {array} model.CartItem
// @Failure 403 {object} errors.ErrorResponse
// @Router /user/added-carts/{email} [get]
func (h *CartHandler) ListCart(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}
	if _, err := auth.RequireOwner(c, email); err != nil {
		return err
	}

	items, err := h.svc.List(c.Request().Context(), email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, nonNil(items))
}

// RemoveFromCart godoc
// @Summary Remove a class from the caller's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param email query string true "User email"
// @Param name query string true "Class name"
// @Success 200 {object} model.DeleteResult
// @Failure 403 {object} errors.ErrorResponse
// @Router /user/delete-cart [delete]
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	var req RemoveFromCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := auth.RequireOwner(c, req.Email); err != nil {
		return err
	}

	res, err := h.svc.Remove(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}
