package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios del gateway.
// El navegador nunca recibe el token del backend: la cookie solo referencia
// la sesión local por su ID, con el tipo de usuario para decisiones rápidas
// de ruteo sin tocar el store.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id"`
	Tipo      string `json:"tipo"` // "pos" | "inventario"
}

// Generate genera el token firmado de la cookie de sesión del gateway.
func Generate(secret, sessionID, tipo, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		SessionID: sessionID,
		Tipo:      tipo,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Parse valida el token de la cookie y devuelve sessionID y tipo.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (sessionID, tipo string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("token: secret vacío")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.SessionID, claims.Tipo, nil
}
