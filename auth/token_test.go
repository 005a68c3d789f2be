package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)
	accountID := primitive.NewObjectID()

	token, err := svc.Issue(accountID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewService([]byte("test-secret"), -time.Minute)

	token, err := svc.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongKey(t *testing.T) {
	issuer := NewService([]byte("the-real-secret"), time.Hour)
	verifier := NewService([]byte("some-other-secret"), time.Hour)

	token, err := issuer.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", token)
	}
}

func TestIssueUsesConfiguredTTL(t *testing.T) {
	svc := NewService([]byte("test-secret"), 2*time.Hour)
	accountID := primitive.NewObjectID()

	token, err := svc.Issue(accountID)
	require.NoError(t, err)

	// Still valid well past the seconds-scale expiries the old service used.
	time.Sleep(10 * time.Millisecond)
	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}
