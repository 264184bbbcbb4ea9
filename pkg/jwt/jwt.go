package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade IsAdmin para que el middleware pueda autorizar rutas de administrador
// con el snapshot del token, sin releer el rol de la DB.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}

// signingMethod mapea el identificador de algoritmo configurado (ALGORITHM) al
// método de firma HMAC correspondiente. Solo se reconoce la familia HS*.
func signingMethod(algorithm string) (*jwt.SigningMethodHMAC, error) {
	switch algorithm {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("jwt: algoritmo no soportado: %s", algorithm)
	}
}

// Generate genera un token firmado con subject (id de usuario), is_admin y
// expiración absoluta now+expMinutes.
func Generate(secret, algorithm, userID string, isAdmin bool, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	method, err := signingMethod(algorithm)
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		IsAdmin: isAdmin,
	}
	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve userID (subject) e is_admin.
// Retorna error si el token es inválido, expirado, con firma incorrecta o firmado
// con un método distinto al configurado. La validación es puramente estructural:
// nunca consulta la base de datos.
func Parse(secret, algorithm, tokenString string) (userID string, isAdmin bool, err error) {
	if secret == "" {
		return "", false, fmt.Errorf("jwt: secret vacío")
	}
	method, err := signingMethod(algorithm)
	if err != nil {
		return "", false, err
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != method.Alg() {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", false, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", false, fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return "", false, fmt.Errorf("token sin subject")
	}
	return claims.Subject, claims.IsAdmin, nil
}
