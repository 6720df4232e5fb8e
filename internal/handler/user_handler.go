package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"artisticdb/internal/auth"
	"artisticdb/internal/model"
	"artisticdb/internal/service"
)

// UserHandler bundles user and role endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRequest is the profile stored on first sign-in.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo"`
}

// RegisterUser godoc
// @Summary Register a user
// @Description Registering an email that already exists changes nothing.
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Profile"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user := &model.User{Name: req.Name, Email: req.Email, Photo: req.Photo}
	res, created, err := h.svc.Register(c.Request().Context(), user)
	if err != nil {
		return toHTTPError(err)
	}
	if !created {
		return c.JSON(http.StatusOK, map[string]string{"message": "user already exist"})
	}
	return c.JSON(http.StatusOK, model.InsertResult{Acknowledged: res.Acknowledged, InsertedID: res.UpsertedID})
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, nonNil(users))
}

// IsUser godoc
// @Summary Report whether the caller is a registered user
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errors.ErrorResponse
// @Router /manage-user/newUser/{email} [get]
func (h *UserHandler) IsUser(c echo.Context) error {
	return h.roleCheck(c, model.RoleUser, "IsUser")
}

// IsInstructor godoc
// @Summary Report whether the caller is an instructor
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errors.ErrorResponse
// @Router /manage-user/instructor/{email} [get]
func (h *UserHandler) IsInstructor(c echo.Context) error {
	return h.roleCheck(c, model.RoleInstructor, "instructor")
}

// IsAdmin godoc
// @Summary Report whether the caller is an admin
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errors.ErrorResponse
// @Router /manage-user/admin/{email} [get]
func (h *UserHandler) IsAdmin(c echo.Context) error {
	return h.roleCheck(c, model.RoleAdmin, "admin")
}

func (h *UserHandler) roleCheck(c echo.Context, role model.Role, key string) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}
	if _, err := auth.RequireOwner(c, email); err != nil {
		return err
	}

	ok, err := h.svc.HasRole(c.Request().Context(), email, role)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{key: ok})
}

// PromoteInstructor godoc
// @Summary Promote a user to instructor
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.UpdateResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user-roll/{id} [patch]
func (h *UserHandler) PromoteInstructor(c echo.Context) error {
	return h.promote(c, model.RoleInstructor)
}

// PromoteAdmin godoc
// @Summary Promote a user to admin
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.UpdateResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user-admin/{id} [patch]
func (h *UserHandler) PromoteAdmin(c echo.Context) error {
	return h.promote(c, model.RoleAdmin)
}

func (h *UserHandler) promote(c echo.Context, role model.Role) error {
	res, err := h.svc.Promote(c.Request().Context(), c.Param("id"), role)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}
