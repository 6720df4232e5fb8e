package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"artisticdb/internal/auth"
	"artisticdb/internal/errors"
	"artisticdb/internal/model"
	"artisticdb/internal/service"
)

// ClassHandler serves class listings and moderation.
type ClassHandler struct {
	svc service.ClassService
}

// NewClassHandler creates a new class handler.
func NewClassHandler(svc service.ClassService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

// CreateClassRequest is the payload an instructor submits for a new class.
type CreateClassRequest struct {
	Name           string  `json:"class_name" validate:"required"`
	Image          string  `json:"class_image"`
	InstructorName string  `json:"instructor_name"`
	AvailableSeats int     `json:"available_seats" validate:"gte=0"`
	Price          float64 `json:"price" validate:"gte=0"`
}

// EnrollRequest names the class a seat is taken in.
type EnrollRequest struct {
	Name string `json:"name" validate:"required"`
}

// FeedbackRequest carries moderator feedback.
type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

// ListClasses godoc
// @Summary List all classes
// @Tags classes
// @Produce json
// @Success 200 {array} model.Class
// @Failure 500 {object} errors.ErrorResponse
// @Router /classes [get]
func (h *ClassHandler) ListClasses(c echo.Context) error {
	classes, err := h.svc.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, nonNil(classes))
}

// ListInstructorClasses godoc
// @Summary List classes owned by an instructor
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param email path string true "Instructor email"
// @Success 200 {array} model.Class
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes/{email} [get]
func (h *ClassHandler) ListInstructorClasses(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}
	if _, err := auth.RequireOwner(c, email); err != nil {
		return err
	}

	classes, err := h.svc.ListByInstructor(c.Request().Context(), email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, nonNil(classes))
}

// CreateClass godoc
// @Summary Create a class
// @Description New classes start pending until an admin approves them.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "Instructor email"
// @Param request body CreateClassRequest true "Class"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /class-add/{email} [post]
func (h *ClassHandler) CreateClass(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}
	if _, err := auth.RequireOwner(c, email); err != nil {
		return err
	}

	var req CreateClassRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.svc.Create(c.Request().Context(), email, model.ClassDetails{
		Name:           req.Name,
		Image:          req.Image,
		InstructorName: req.InstructorName,
		AvailableSeats: model.Count(req.AvailableSeats),
		Price:          model.Price(req.Price),
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// Enroll godoc
// @Summary Take one seat in a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EnrollRequest true "Class name"
// @Success 200 {object} model.UpdateResult
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /class-update [patch]
func (h *ClassHandler) Enroll(c echo.Context) error {
	var req EnrollRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.svc.ReserveSeat(c.Request().Context(), req.Name)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// SetFeedback godoc
// @Summary Attach moderator feedback to a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Param request body FeedbackRequest true "Feedback"
// @Success 200 {object} model.UpdateResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /class-feedback/{id} [patch]
func (h *ClassHandler) SetFeedback(c echo.Context) error {
	var req FeedbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.svc.SetFeedback(c.Request().Context(), c.Param("id"), req.Feedback)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// Approve godoc
// @Summary Approve a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} model.UpdateResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /class-approved/{id} [patch]
func (h *ClassHandler) Approve(c echo.Context) error {
	return h.setStatus(c, model.ClassStatusApproved)
}

// Deny godoc
// @Summary Deny a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} model.UpdateResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /class-denied/{id} [patch]
func (h *ClassHandler) Deny(c echo.Context) error {
	return h.setStatus(c, model.ClassStatusDenied)
}

func (h *ClassHandler) setStatus(c echo.Context, status model.ClassStatus) error {
	res, err := h.svc.SetStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// DeleteClass godoc
// @Summary Delete a class
// @Description Admins may delete any class, instructors only their own.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} model.DeleteResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /class-delete/{id} [delete]
func (h *ClassHandler) DeleteClass(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	role, hasRole := auth.RoleFrom(c)
	if !ok || !hasRole {
		return toHTTPError(errors.ErrRoleRequired)
	}

	res, err := h.svc.Delete(c.Request().Context(), c.Param("id"), claims.Email, role)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
