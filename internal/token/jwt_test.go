package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndVerify(t *testing.T) {
	j := NewJWT("test-secret")
	userID := uuid.New()

	signed, err := j.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	got, err := j.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_Verify_WrongSecret(t *testing.T) {
	signed, err := NewJWT("secret-a").Generate(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("secret-b").Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Verify_Garbage(t *testing.T) {
	_, err := NewJWT("secret").Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Verify_Expired(t *testing.T) {
	secret := "secret"
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
		},
		UserID: uuid.New(),
	})
	signed, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewJWT(secret).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Verify_MissingUserID(t *testing.T) {
	secret := "secret"
	now := time.Now()
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	signed, err := anonymous.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewJWT(secret).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
