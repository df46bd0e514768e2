package middleware

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderAdminSecret carries the shared write secret.
const HeaderAdminSecret = "X-Admin-Secret"

// AdminSecret gates write endpoints behind the shared admin secret.
// The secret may arrive in the X-Admin-Secret header or as a "secret"
// field in the JSON body; the body is restored so handlers can bind it
// again. A server without a configured secret refuses all writes with
// a 500 rather than letting them through.
func AdminSecret(configured string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if configured == "" {
				return echo.NewHTTPError(http.StatusInternalServerError, "Server configuration error")
			}

			provided := c.Request().Header.Get(HeaderAdminSecret)
			if provided == "" {
				provided = secretFromBody(c)
			}

			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			return next(c)
		}
	}
}

func secretFromBody(c echo.Context) string {
	if c.Request().Body == nil {
		return ""
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return ""
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Secret string `json:"secret"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Secret
}
