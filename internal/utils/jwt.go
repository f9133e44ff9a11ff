package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

// GenerateAdminJWT emite o token de sessão do painel admin (24h).
func GenerateAdminJWT(username string) (string, int64, error) {
	expires := time.Now().Add(sessionTTL)

	claims := jwt.MapClaims{
		"username": username,
		"exp":      expires.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", 0, err
	}
	return signed, expires.UnixMilli(), nil
}

// ParseAdminJWT valida o token e devolve o username e o tempo restante.
func ParseAdminJWT(tokenString string) (string, time.Duration, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return "", 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", 0, fmt.Errorf("claims inválidas")
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return "", 0, fmt.Errorf("username ausente nas claims")
	}

	remaining := time.Duration(0)
	if exp, ok := claims["exp"].(float64); ok {
		remaining = time.Until(time.Unix(int64(exp), 0))
		if remaining <= 0 {
			return "", 0, fmt.Errorf("token expirado")
		}
	}

	return username, remaining, nil
}
