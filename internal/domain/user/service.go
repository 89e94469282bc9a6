package user

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// Service owns the account rules that do not belong to a single entity:
// credential hashing and verification, email and password policy.
type Service interface {
	// Register creates a customer account. Email uniqueness is enforced by
	// the store's unique index, not an application-level pre-check.
	Register(ctx context.Context, name, email, password string) (*User, error)

	// Login returns the user when the email exists and the password
	// matches, ErrInvalidCredentials otherwise.
	Login(ctx context.Context, email, password string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService creates the user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (s *service) Register(ctx context.Context, name, email, password string) (*User, error) {
	fields := map[string][]string{}
	if len(name) < 2 || len(name) > 100 {
		fields["name"] = append(fields["name"], "must be between 2 and 100 characters")
	}
	if !emailPattern.MatchString(email) {
		fields["email"] = append(fields["email"], "enter a valid email address")
	}
	if len(password) < 8 || len(password) > 72 {
		fields["password"] = append(fields["password"], "must be between 8 and 72 characters")
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	u := NewUser(name, email, string(hash))
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			// Same answer for unknown email and wrong password.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
