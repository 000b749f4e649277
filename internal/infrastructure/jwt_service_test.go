package infrastructure

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Issue("ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", subject)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.Issue("ana@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongKey(t *testing.T) {
	issuer := NewJWTService("key-a", time.Hour)
	verifier := NewJWTService("key-b", time.Hour)

	token, err := issuer.Issue("ana@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MutatedToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Issue("ana@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Tamper with the payload; the signature no longer matches.
	mutated := parts[0] + "." + parts[1] + "x." + parts[2]
	_, err = svc.Verify(mutated)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Tamper with the signature.
	mutated = parts[0] + "." + parts[1] + "." + parts[2] + "x"
	_, err = svc.Verify(mutated)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MalformedInput(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := svc.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerify_RejectsUnsignedAlg(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "ana@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
