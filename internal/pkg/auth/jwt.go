// internal/pkg/auth/jwt.go
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/your-org/storefront-gateway/internal/config"
)

// Claims represents the JWT claims issued by the remote auth service. The
// gateway validates tokens with the shared secret but never issues them.
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// JWTValidator validates access tokens issued by the auth service
type JWTValidator struct {
	config *config.Config
}

// NewJWTValidator creates a new JWT validator
func NewJWTValidator(cfg *config.Config) *JWTValidator {
	return &JWTValidator{config: cfg}
}

// ValidateToken validates and parses a JWT token
func (j *JWTValidator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if j.config.JWT.Issuer != "" {
		issuer, err := claims.GetIssuer()
		if err != nil || issuer != j.config.JWT.Issuer {
			return nil, fmt.Errorf("invalid token issuer")
		}
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts a JWT token from an Authorization header
func ExtractTokenFromHeader(authHeader string) string {
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}
