package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for tokens that fail signature
	// verification, are expired, or carry malformed claims.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the payload embedded in issued tokens. Downstream handlers
// trust it as-is for the token lifetime; there is no database re-lookup.
type Claims struct {
	Username    string    `json:"username"`
	CreatedDate time.Time `json:"createdDate"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies the session tokens issued at login.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a new JWT service with the given signing secret
// and token lifetime.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken issues a signed token embedding the username and the
// account creation timestamp.
func (s *JWTService) GenerateToken(username string, createdDate time.Time) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:    username,
		CreatedDate: createdDate,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies the signature and expiry of a token and returns
// its decoded claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
