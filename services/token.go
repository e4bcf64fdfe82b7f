package services

import (
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues a token naming the acting owner identity.
func GenerateJWT(userID string) (string, error) {
	expirationTime := time.Now().Add(time.Duration(utils.JWTExpirationTime) * time.Second)

	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     "noter",
		"iat":     time.Now().Unix(),
		"exp":     expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}
