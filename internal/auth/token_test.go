package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PANATARA/chorebank/internal/auth"
)

func TestTokens_AccessRoundTrip(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour, time.Hour)
	userID := uuid.New()

	raw, err := tokens.IssueAccess(userID)
	require.NoError(t, err)

	got, err := tokens.ParseAccess(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokens_InviteRoundTrip(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour, time.Hour)
	familyID := uuid.New()

	raw, err := tokens.IssueInvite(familyID)
	require.NoError(t, err)

	got, err := tokens.ParseInvite(raw)
	require.NoError(t, err)
	assert.Equal(t, familyID, got)
}

func TestTokens_Expired(t *testing.T) {
	tokens := auth.NewTokens("test-secret", -time.Minute, -time.Minute)

	raw, err := tokens.IssueAccess(uuid.New())
	require.NoError(t, err)

	_, err = tokens.ParseAccess(raw)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokens_WrongSecret(t *testing.T) {
	issuer := auth.NewTokens("secret-a", time.Hour, time.Hour)
	verifier := auth.NewTokens("secret-b", time.Hour, time.Hour)

	raw, err := issuer.IssueAccess(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ParseAccess(raw)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokens_Garbage(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour, time.Hour)

	_, err := tokens.ParseAccess("not-a-token")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
