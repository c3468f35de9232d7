package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// hs256KeyLen is the minimum key length for HS256 (256 bits).
const hs256KeyLen = 32

// JWTSecret is the derived signing key, computed once at startup.
var JWTSecret []byte

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Default for development only; must be overridden in deployments.
		secret = "your-256-bit-secret"
	}
	JWTSecret = deriveKey(secret)
}

// deriveKey treats the configured secret as raw key material. Secrets shorter
// than 32 bytes are zero-padded rather than rejected, so tokens issued by
// earlier deployments under the same short secret keep verifying.
func deriveKey(secret string) []byte {
	keyBytes := []byte(secret)
	if len(keyBytes) >= hs256KeyLen {
		return keyBytes
	}
	padded := make([]byte, hs256KeyLen)
	copy(padded, keyBytes)
	return padded
}

func tokenLifetime() time.Duration {
	if v := os.Getenv("JWT_EXPIRY_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return 24 * time.Hour
}

// GenerateToken issues an HS256 token with the username as subject.
func GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime())),
		Issuer:    "canteen-backend",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

// ParseToken verifies signature and expiry and returns the subject username.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}
