package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDKey is the echo context key holding the verified owner id.
const userIDKey = "userID"

// ExtractUser runs after the JWT middleware has stored validated *Claims under
// "user". It checks that the embedded id is a structurally valid uuid and makes
// it available to downstream handlers for the remainder of the request.
func ExtractUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("user").(*Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}
		id, err := claims.UserUUID()
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID")
		}
		c.Set(userIDKey, id)
		return next(c)
	}
}

// UserID returns the authenticated owner id set by ExtractUser.
func UserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(userIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
