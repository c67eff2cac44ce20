package utils

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lyra-school/lyra-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = models.Session{ID: 1712000000000, Name: "Ana", Email: "ana@escola.br", Role: models.RoleProfessor}

func TestSessionTokenCodec_RoundTrip(t *testing.T) {
	c := NewSessionTokenCodec("secret", "lyra-client")

	token, err := c.Encode(testSession)
	require.NoError(t, err)

	got, err := c.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, testSession, got)
}

func TestSessionTokenCodec_NoExpiry(t *testing.T) {
	c := NewSessionTokenCodec("secret", "lyra-client")

	token, err := c.Encode(testSession)
	require.NoError(t, err)

	claims := &SessionClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
	assert.Equal(t, "1712000000000", claims.Subject)
}

func TestSessionTokenCodec_EncodeInvalidParams(t *testing.T) {
	_, err := NewSessionTokenCodec("", "iss").Encode(testSession)
	assert.ErrorIs(t, err, ErrInvalidSessionTokenParams)

	_, err = NewSessionTokenCodec("key", "").Encode(testSession)
	assert.ErrorIs(t, err, ErrInvalidSessionTokenParams)
}

func TestSessionTokenCodec_DecodeRejects(t *testing.T) {
	c := NewSessionTokenCodec("secret", "lyra-client")
	valid, err := c.Encode(testSession)
	require.NoError(t, err)

	otherKey, err := NewSessionTokenCodec("other", "lyra-client").Encode(testSession)
	require.NoError(t, err)

	otherIssuer, err := NewSessionTokenCodec("secret", "someone-else").Encode(testSession)
	require.NoError(t, err)

	noID, err := c.Encode(models.Session{Email: "x@y.z"})
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := map[string]string{
		"garbage":      "not a token",
		"empty":        "",
		"wrong key":    otherKey,
		"wrong issuer": otherIssuer,
		"tampered":     tampered,
		"missing id":   noID,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.Decode(token)
			assert.ErrorIs(t, err, ErrInvalidSessionToken)
		})
	}
}

func TestSessionTokenCodec_UnknownRoleDecodesAsStudent(t *testing.T) {
	c := NewSessionTokenCodec("secret", "lyra-client")

	token, err := c.Encode(models.Session{ID: 7, Email: "a@b.c", Role: "superuser"})
	require.NoError(t, err)

	got, err := c.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, got.Role)
}
