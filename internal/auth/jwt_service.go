package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"artisticdb/internal/model"
)

// DefaultTokenExpiry is the lifetime of an issued identity token.
const DefaultTokenExpiry = time.Hour

var (
	errMissingEmail     = errors.New("identity email is required")
	errUnexpectedMethod = errors.New("unexpected signing method")
)

// Identity is the client-supplied payload a token is issued for.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// Claims represents JWT claims.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
	jwt.RegisteredClaims
}

// TokenValidator is the read side of JWTService used by the verifier middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret. A
// non-positive ttl falls back to DefaultTokenExpiry.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenExpiry
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueToken signs a time-limited token asserting identity.
func (s *JWTService) IssueToken(identity Identity) (string, error) {
	email := model.NormalizeEmail(identity.Email)
	if email == "" {
		return "", errMissingEmail
	}

	now := s.now()
	claims := &Claims{
		Email: email,
		Name:  identity.Name,
		Photo: identity.Photo,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedMethod
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Email == "" {
		return nil, errMissingEmail
	}

	return claims, nil
}
