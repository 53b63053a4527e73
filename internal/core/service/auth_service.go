package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	activity ports.ActivityRepository
	log      zerolog.Logger
	now      func() time.Time
	compare  func(hash, password []byte) error
}

// dummyHash is compared against when the username is unknown so both login
// failures cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("wishlist-placeholder"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
})

// NewAuthService returns an AuthService. activity may be nil to disable the
// audit trail.
func NewAuthService(users ports.UserRepository, activity ports.ActivityRepository, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		activity: activity,
		log:      log,
		now:      time.Now,
		compare:  bcrypt.CompareHashAndPassword,
	}
}

// Register validates the form, hashes the password and stores the account.
// Rules are checked in order and the first violation is returned.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	hired, err := s.validateRegistration(in)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		DateHired:    hired,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	recordActivity(ctx, s.activity, s.log, &domain.Activity{
		UserID:   created.ID,
		Type:     domain.ActivityUserRegistered,
		TargetID: created.ID,
		Message:  "registered as " + created.Username,
	})

	return created, nil
}

func (s *AuthService) validateRegistration(in ports.RegisterInput) (time.Time, error) {
	if utf8.RuneCountInString(in.Password) < domain.MinPasswordLength {
		return time.Time{}, domain.ErrPasswordTooShort
	}
	if len(in.Password) > domain.MaxPasswordBytes {
		return time.Time{}, domain.ErrPasswordTooLong
	}
	if utf8.RuneCountInString(in.Username) < domain.MinUsernameLength {
		return time.Time{}, domain.ErrUsernameTooShort
	}

	hired, err := time.Parse(domain.HireDateLayout, in.DateHired)
	if err != nil {
		return time.Time{}, domain.ErrHireDateNotToday
	}
	if today := s.now().Format(domain.HireDateLayout); hired.Format(domain.HireDateLayout) != today {
		return time.Time{}, domain.ErrHireDateNotToday
	}

	if utf8.RuneCountInString(in.Username) > domain.MaxUsernameLength ||
		utf8.RuneCountInString(in.Name) > domain.MaxNameLength {
		return time.Time{}, domain.ErrFieldTooLong
	}
	return hired, nil
}

// Login verifies the credentials. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.compare(dummyHash(), []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if s.compare([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
