package auth

import (
	"context"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"artisticdb/internal/errors"
	"artisticdb/internal/model"
)

// OwnerMatches reports whether the verified identity is the target identity.
// Emails compare case-insensitively; an empty target never matches.
func OwnerMatches(claims *Claims, target string) bool {
	if claims == nil {
		return false
	}
	target = model.NormalizeEmail(target)
	return target != "" && model.NormalizeEmail(claims.Email) == target
}

// RequireOwner is the guard clause for self-scoped handlers. Handlers must
// return its error before doing anything else.
func RequireOwner(c echo.Context, target string) (*Claims, error) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthorized.Error(),
			Code:  "UNAUTHORIZED",
		})
	}
	if !OwnerMatches(claims, target) {
		return nil, echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
			Error: errors.ErrForbidden.Error(),
			Code:  "FORBIDDEN_ACCESS",
		})
	}
	return claims, nil
}

// RoleLookup resolves the stored role of a user by email.
type RoleLookup interface {
	RoleOf(ctx context.Context, email string) (model.Role, error)
}

// RoleContextKey is where RequireRole stores the caller's resolved role.
const RoleContextKey = "role"

// RequireRole admits only callers whose stored role is one of roles. It must
// run after Middleware.
func RequireRole(lookup RoleLookup, roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: errors.ErrUnauthorized.Error(),
					Code:  "UNAUTHORIZED",
				})
			}

			role, err := lookup.RoleOf(c.Request().Context(), claims.Email)
			if err != nil && !errors.Is(err, errors.ErrUserNotFound) {
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
			}
			if err != nil || !slices.Contains(roles, role) {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: errors.ErrRoleRequired.Error(),
					Code:  "ROLE_REQUIRED",
				})
			}

			c.Set(RoleContextKey, role)
			return next(c)
		}
	}
}

// RoleFrom returns the role resolved by RequireRole.
func RoleFrom(c echo.Context) (model.Role, bool) {
	role, ok := c.Get(RoleContextKey).(model.Role)
	return role, ok
}
