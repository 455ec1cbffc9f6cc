package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// PartnerKey is set on the context once a partner call authenticated
const PartnerKey = "partner"

// PartnerAuth checks the shared partner secret. The secret may be sent as
// "Authorization: Bearer <secret>" or as the bare header value.
func PartnerAuth(secret string) echo.MiddlewareFunc {
	if secret == "" {
		panic("PartnerAuth requires a non-empty secret")
	}
	expected := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if header == "" {
				return utils.UnauthorizedResponse(c, apperrors.CauseMissingAuth, "Authorization header is required")
			}

			token := header
			if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
				token = strings.TrimSpace(rest)
			}

			if subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
				return utils.UnauthorizedResponse(c, apperrors.CauseInvalidToken, "Invalid API token")
			}

			c.Set(PartnerKey, true)
			return next(c)
		}
	}
}
