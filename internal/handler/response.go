package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"artisticdb/internal/errors"
)

// toHTTPError converts a service error into the JSON error envelope.
func toHTTPError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

func badRequest(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "INVALID_REQUEST",
	}).SetInternal(err)
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		}).SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	return nil
}

// emailParam returns the decoded :email path segment. Echo matches routes on
// the raw path, so an address sent as a%40x.com arrives still escaped.
func emailParam(c echo.Context) (string, error) {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		return "", badRequest(err)
	}
	return email, nil
}
