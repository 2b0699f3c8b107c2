package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"hostelms/internal/auth"
	"hostelms/internal/errors"
)

// CurrentIdentity extracts the authenticated caller from the context
// populated by the JWT middleware.
func CurrentIdentity(c echo.Context) (*auth.Identity, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, errors.Auth("user not authenticated")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, errors.Auth("invalid token")
	}
	return claims.Identity(), nil
}
