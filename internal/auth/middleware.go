package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"artisticdb/internal/errors"
)

// ClaimsContextKey is where the verifier stores *Claims on the echo context.
const ClaimsContextKey = "claims"

// Middleware verifies the bearer token on protected routes. A request with
// no Authorization header is rejected with 401; a header that does not
// yield a valid token is rejected with 403.
func Middleware(validator TokenValidator) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ClaimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return validator.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: errors.ErrUnauthorized.Error(),
					Code:  "UNAUTHORIZED",
				}).SetInternal(err)
			}
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: errors.ErrInvalidToken.Error(),
				Code:  "FORBIDDEN",
			}).SetInternal(err)
		},
	})
}

// ClaimsFrom returns the verified claims attached by Middleware.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ClaimsContextKey).(*Claims)
	return claims, ok && claims != nil
}
