package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func CreateJWTToken(userID int64, userName string, externalID string, isAdmin bool, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["name"] = userName
	claims["externalID"] = externalID
	claims["isAdmin"] = isAdmin
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

func ExtractTokenUser(c echo.Context) (int64, string, string, bool) {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, "", "", false
	}

	if user.Valid {
		claims := user.Claims.(jwt.MapClaims)
		userID := claims["userID"].(float64)
		name, _ := claims["name"].(string)
		externalID, _ := claims["externalID"].(string)
		isAdmin, _ := claims["isAdmin"].(bool)
		return int64(userID), name, externalID, isAdmin
	}
	return 0, "", "", false
}
