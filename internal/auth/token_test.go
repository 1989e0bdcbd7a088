package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
)

func TestManagerIssueAndVerify(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.Issue(domain.User{ID: 42, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := manager.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), identity.UserID)
	require.Equal(t, "alice", identity.Username)
}

func TestManagerVerifyEmptyToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.Verify("")
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestManagerVerifyWrongSecret(t *testing.T) {
	issuer := NewManager("one-secret", time.Hour)
	verifier := NewManager("another-secret", time.Hour)

	token, err := issuer.Issue(domain.User{ID: 42, Username: "alice"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManagerVerifyExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.Issue(domain.User{ID: 42, Username: "alice"})
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestManagerVerifyGarbageToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
