package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity-provider subject of the signed-in user. The
// subject is what the directory lookup resolves to an internal user record;
// no internal id is ever embedded in a token.
type Claims struct {
	Subject string `json:"uid"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// Config holds token signing parameters.
type Config struct {
	Secret        string
	AccessExpiry  time.Duration
	Issuer        string
	SigningMethod jwt.SigningMethod
}

// DefaultConfig returns the signing configuration used by the API.
func DefaultConfig(secret string, expiry time.Duration) *Config {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Config{
		Secret:        secret,
		AccessExpiry:  expiry,
		Issuer:        "huddle-api",
		SigningMethod: jwt.SigningMethodHS256,
	}
}

// GenerateToken issues a session token for the given identity-provider
// subject.
func GenerateToken(subject, email string, cfg *Config) (string, error) {
	if cfg == nil {
		return "", errors.New("jwt config is required")
	}

	now := time.Now()
	claims := &Claims{
		Subject: subject,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
		},
	}

	token := jwt.NewWithClaims(cfg.SigningMethod, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken parses and verifies a session token.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}
