package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/storage"
	"syllabus-tracker/backend/utils"
)

// Login and session errors. ErrInvalidCredentials text is shown to the user.
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrNoSession          = errors.New("no user is logged in")
)

const demoPassword = "password"

const demoAvatar = "/placeholder.svg?height=32&width=32"

var demoUsers = map[string]models.User{
	"faculty@example.com": {
		ID:     "1",
		Name:   "Dr. Sarah Johnson",
		Email:  "faculty@example.com",
		Role:   models.RoleFaculty,
		Avatar: demoAvatar,
	},
	"student@example.com": {
		ID:     "2",
		Name:   "John Smith",
		Email:  "student@example.com",
		Role:   models.RoleStudent,
		Avatar: demoAvatar,
	},
}

// AuthService is the mock identity provider: two fixed accounts sharing one
// password, and a single persisted session.
type AuthService struct {
	kv           storage.KV
	delay        time.Duration
	passwordHash []byte
	log          *slog.Logger
}

// NewAuthService hashes the demo password once. delay is applied to every login.
func NewAuthService(kv storage.KV, delay time.Duration, logger *slog.Logger) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash demo password")
	}
	if logger == nil {
		logger = utils.DiscardLogger()
	}
	return &AuthService{kv: kv, delay: delay, passwordHash: hash, log: logger}, nil
}

// Login waits the simulated network delay, checks the credentials and
// persists the session. Unknown email and wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	user, ok := demoUsers[email]
	if !ok || bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		s.log.Warn("login.failed", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := s.saveSession(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("login.ok", "uid", user.ID, "role", user.Role)
	return &user, nil
}

// Logout drops the persisted session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.kv.Delete(ctx, storage.SessionKey)
}

// CurrentUser returns the persisted session user, or nil when logged out.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, ok, err := s.kv.Get(ctx, storage.SessionKey)
	if err != nil || !ok {
		return nil, err
	}
	var user models.User
	if err := sonic.Unmarshal(raw, &user); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	return &user, nil
}

// UpdateProfile merges the non-empty fields of req into the session user.
func (s *AuthService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSession
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if err := s.saveSession(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) saveSession(ctx context.Context, user models.User) error {
	raw, err := sonic.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	return s.kv.Set(ctx, storage.SessionKey, raw)
}

// Sleep waits d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
