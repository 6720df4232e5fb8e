package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"artisticdb/internal/auth"
	"artisticdb/internal/errors"
)

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	IssueToken(identity auth.Identity) (string, error)
}

// AuthHandler handles token issuance.
type AuthHandler struct {
	issuer TokenIssuer
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(issuer TokenIssuer) *AuthHandler {
	return &AuthHandler{issuer: issuer}
}

// TokenRequest is the identity the client has already authenticated with
// its identity provider.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken godoc
// @Summary Issue an identity token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Identity"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /JWT-Token [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.issuer.IssueToken(auth.Identity{Email: req.Email, Name: req.Name, Photo: req.Photo})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to issue token",
			Code:  "TOKEN_ISSUE_FAILED",
		}).SetInternal(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
