package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más la identidad de sesión de la
// aplicación. El token viaja en una cookie HttpOnly, no en un header Bearer.
type Claims struct {
	jwt.RegisteredClaims
	UsuarioID string `json:"usuario_id"`
	Nombre    string `json:"nombre"`
}

// Generate genera un token de sesión firmado (HS256) con usuarioID y nombre.
func Generate(secret, usuarioID, nombre, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   usuarioID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UsuarioID: usuarioID,
		Nombre:    nombre,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida el token y devuelve usuarioID y nombre. Retorna error si el
// token es inválido, expirado o con firma incorrecta.
func Parse(secret, tokenString string) (usuarioID, nombre string, err error) {
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
	return claims.UsuarioID, claims.Nombre, nil
}
