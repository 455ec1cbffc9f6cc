package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	jwtpkg "github.com/mrshoofer/mrshoofer/internal/pkg/jwt"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

const (
	// AdminIDKey holds the authenticated admin id (string)
	AdminIDKey = "admin_id"
	// SuperAdminKey holds whether the admin is a superadmin (bool)
	SuperAdminKey = "is_super_admin"
)

// AdminJWT validates the console session token and exposes its claims
func AdminJWT(cfg models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(cfg.Secret),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwtpkg.AdminClaims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			if claims, ok := token.Claims.(*jwtpkg.AdminClaims); ok {
				c.Set(AdminIDKey, claims.AdminID)
				c.Set(SuperAdminKey, claims.SuperAdmin)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return utils.UnauthorizedResponse(c, apperrors.CauseMissingAuth, "Authorization header is required")
			}
			return utils.UnauthorizedResponse(c, apperrors.CauseInvalidToken, "Invalid or expired session")
		},
	})
}

// RequireSuperAdmin must run after AdminJWT
func RequireSuperAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if super, _ := c.Get(SuperAdminKey).(bool); !super {
				return utils.ForbiddenResponse(c, "Superadmin access required")
			}
			return next(c)
		}
	}
}
