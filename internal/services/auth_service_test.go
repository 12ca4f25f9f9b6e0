package services

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "activity-tracker.com/activity-tracker/internal/errors"
	repository "activity-tracker.com/activity-tracker/internal/repositories"
	"activity-tracker.com/activity-tracker/internal/testutil"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	issued := time.UnixMilli(1705312800000)
	token := EncodeSessionToken("user-1", issued)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1:1705312800000", string(raw))

	userID, err := DecodeSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestDecodeSessionToken_Rejects(t *testing.T) {
	for _, token := range []string{
		"",
		"%%%not-base64",
		base64.StdEncoding.EncodeToString([]byte("no-separator")),
		base64.StdEncoding.EncodeToString([]byte(":123")),
		base64.StdEncoding.EncodeToString([]byte("user:yesterday")),
	} {
		_, err := DecodeSessionToken(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated, token)
	}
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	service := NewAuthService(repository.NewUserRepository(testutil.NewDB(t)))
	ctx := context.Background()

	session, err := service.Signup(ctx, " Dana@Example.com ", "Dana", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", session.Email)

	userID, err := DecodeSessionToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, userID)

	_, err = service.Signup(ctx, "dana@example.com", "Dana", "secret1")
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)

	loggedIn, err := service.Login(ctx, "DANA@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, session.UserID, loggedIn.UserID)

	_, err = service.Login(ctx, "dana@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = service.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_SignupValidation(t *testing.T) {
	service := NewAuthService(repository.NewUserRepository(testutil.NewDB(t)))
	ctx := context.Background()

	_, err := service.Signup(ctx, "", "Dana", "secret1")
	assert.ErrorIs(t, err, apperrors.ErrEmailRequired)

	_, err = service.Signup(ctx, "d@example.com", "", "secret1")
	assert.ErrorIs(t, err, apperrors.ErrNameRequired)

	_, err = service.Signup(ctx, "d@example.com", "Dana", "")
	assert.ErrorIs(t, err, apperrors.ErrPasswordRequired)

	_, err = service.Signup(ctx, "d@example.com", "Dana", "12345")
	assert.ErrorIs(t, err, apperrors.ErrPasswordTooShort)

	_, err = service.Signup(ctx, "d@example.com", "Dana", strings.Repeat("x", 80))
	assert.ErrorIs(t, err, apperrors.ErrPasswordTooLong)

	_, err = service.Signup(ctx, "d@example.com", "Dana", strings.Repeat("x", 72))
	assert.NoError(t, err, "72 bytes is the bcrypt limit")
}

func TestAuthService_LoginWithoutPassword(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "assignee@example.com", "Assignee")
	service := NewAuthService(repository.NewUserRepository(db))

	_, err := service.Login(context.Background(), "assignee@example.com", "anything")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
