package services

import (
	"os"
	"testing"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWT(t *testing.T) {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()

	tokenString, err := GenerateJWT("2")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("token invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", token.Claims)
	}
	if claims["user_id"] != "2" {
		t.Errorf("user_id claim = %v", claims["user_id"])
	}
	if claims["iss"] != "noter" {
		t.Errorf("iss claim = %v", claims["iss"])
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Error("exp claim missing")
	}
}
