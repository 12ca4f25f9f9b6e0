package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "activity-tracker.com/activity-tracker/internal/errors"
	model "activity-tracker.com/activity-tracker/internal/models"
	repository "activity-tracker.com/activity-tracker/internal/repositories"
)

const (
	minPasswordLength = 6
	// bcrypt only accepts inputs up to 72 bytes.
	maxPasswordLength = 72
)

type AuthService struct {
	users *repository.UserRepository
	now   func() time.Time
}

// Session is what the auth endpoints hand back to the client.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Token  string `json:"token"`
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users, now: time.Now}
}

func (s *AuthService) Signup(ctx context.Context, email, name, password string) (*Session, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	switch {
	case email == "":
		return nil, apperrors.ErrEmailRequired
	case name == "":
		return nil, apperrors.ErrNameRequired
	case password == "":
		return nil, apperrors.ErrPasswordRequired
	case len(password) < minPasswordLength:
		return nil, apperrors.ErrPasswordTooShort
	case len(password) > maxPasswordLength:
		return nil, apperrors.ErrPasswordTooLong
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("signup: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Email:          email,
		Name:           name,
		HashedPassword: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	return s.sessionFor(user), nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user.HashedPassword == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.sessionFor(user), nil
}

func (s *AuthService) sessionFor(user *model.User) *Session {
	return &Session{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Token:  EncodeSessionToken(user.ID, s.now()),
	}
}

// EncodeSessionToken builds the cookie value: base64("{userId}:{unixMillis}").
// The token is not signed.
func EncodeSessionToken(userID string, issuedAt time.Time) string {
	raw := fmt.Sprintf("%s:%d", userID, issuedAt.UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeSessionToken extracts the user id from a session token.
func DecodeSessionToken(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", apperrors.ErrUnauthenticated
	}

	userID, issued, ok := strings.Cut(string(raw), ":")
	if !ok || userID == "" {
		return "", apperrors.ErrUnauthenticated
	}
	if _, err := strconv.ParseInt(issued, 10, 64); err != nil {
		return "", apperrors.ErrUnauthenticated
	}
	return userID, nil
}
