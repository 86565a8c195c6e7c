package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	j := NewJWTToken(&Config{SigningKey: "secret"})
	token, err := j.CreateToken(TokenObject{UserID: 42, Role: RoleVendor, Verified: true}, time.Hour)
	require.NoError(t, err)

	got, err := j.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, RoleVendor, got.Role)
	assert.True(t, got.Verified)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	j := NewJWTToken(&Config{SigningKey: "secret"})
	token, err := j.CreateToken(TokenObject{UserID: 1, Role: RoleClient}, -time.Minute)
	require.NoError(t, err)

	_, err = j.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	token, err := NewJWTToken(&Config{SigningKey: "a"}).CreateToken(TokenObject{UserID: 1, Role: RoleClient}, time.Hour)
	require.NoError(t, err)

	_, err = NewJWTToken(&Config{SigningKey: "b"}).VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsUnknownRole(t *testing.T) {
	j := NewJWTToken(&Config{SigningKey: "secret"})
	token, err := j.CreateToken(TokenObject{UserID: 1, Role: "ROOT"}, time.Hour)
	require.NoError(t, err)

	_, err = j.VerifyToken(token)
	assert.Error(t, err)
}
