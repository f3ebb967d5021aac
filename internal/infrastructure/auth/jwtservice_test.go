package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/shared/config"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{
		Secret:           "test-secret",
		AccessExpMinutes: 15,
	})

	token, expiresIn, err := svc.Issue(42, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(15*60), expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(&config.JWTConfig{Secret: "secret-a", AccessExpMinutes: 15})
	verifier := NewJWTService(&config.JWTConfig{Secret: "secret-b", AccessExpMinutes: 15})

	token, _, err := issuer.Issue(1, "user")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "secret", AccessExpMinutes: 15})

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}
