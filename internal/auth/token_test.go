package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	tokens := NewTokenManager("secret", "user-service", time.Minute)

	token, err := tokens.Generate("ops")
	require.NoError(t, err)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", subject)
}

func TestVerifyRejects(t *testing.T) {
	tokens := NewTokenManager("secret", "user-service", time.Minute)

	otherSecret, err := NewTokenManager("other", "user-service", time.Minute).Generate("ops")
	require.NoError(t, err)
	otherIssuer, err := NewTokenManager("secret", "someone-else", time.Minute).Generate("ops")
	require.NoError(t, err)
	expired, err := NewTokenManager("secret", "user-service", -time.Minute).Generate("ops")
	require.NoError(t, err)
	noSubject, err := tokens.Generate("")
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"other secret": otherSecret,
		"other issuer": otherIssuer,
		"expired":      expired,
		"no subject":   noSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
