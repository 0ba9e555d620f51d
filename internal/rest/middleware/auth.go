package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

// AuthMiddleware verifies an HS256 bearer token signed with secret and puts
// its "id" claim into the context as "user_id".
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
			return
		}

		userID, err := parseUserID(tokenString, key)
		if err != nil {
			logrus.Debugf("rejecting token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Invalid token"))
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func parseUserID(tokenString string, key []byte) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", errors.New("token has no id claim")
	}
	return id, nil
}
