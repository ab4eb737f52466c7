package middleware

import (
	"strings"

	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/ImperialKoi/Candit/pkg/response"
	"github.com/ImperialKoi/Candit/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

// CreateAuthMiddleware validates the bearer token and stores the parsed
// token under "user" for utils.ExtractTokenUser.
func CreateAuthMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errs.ErrNotLoggedIn
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set("user", token)

			return next(c)
		}
	}
}

func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, _, _, isAdmin := utils.ExtractTokenUser(c)
		if !isAdmin {
			return response.WriteErrorResponse(c, errs.ErrNoPermission, nil)
		}

		return next(c)
	}
}
