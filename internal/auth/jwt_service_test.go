package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", 0)

	token, err := svc.IssueToken(Identity{Email: " A@X.com ", Name: "Ann"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Ann", claims.Name)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_IssueRequiresEmail(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.IssueToken(Identity{Name: "nobody"})
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestJWTService_ValidateRejects(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	expired := NewJWTService("test-secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.IssueToken(Identity{Email: "a@x.com"})
	require.NoError(t, err)

	otherSecret, err := NewJWTService("other-secret", time.Hour).IssueToken(Identity{Email: "a@x.com"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Email: "a@x.com"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired beyond one hour", expiredToken},
		{"signed by a different secret", otherSecret},
		{"alg none", unsigned},
		{"no expiry", noExpiry},
		{"garbage", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
