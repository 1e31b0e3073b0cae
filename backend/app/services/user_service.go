package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"edurev/backend/app/models"
	"edurev/backend/app/repo"
)

// UserStore is the persistence the user flows need. repo.UserRepository implements it.
type UserStore interface {
	CountByEmail(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	ApplyChanges(ctx context.Context, id uint, changes models.UserChanges) error
}

type SignupInput struct {
	FullName string
	Email    string
	Password string
	Role     string
}

// UpdateInput carries the optional fields of a profile update.
type UpdateInput struct {
	FullName           string
	CurrentPassword    string
	NewPassword        string
	ConfirmNewPassword string
}

type UserService struct {
	users  UserStore
	hasher Hasher
}

func NewUserService(users UserStore, hasher Hasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	name := strings.TrimSpace(in.FullName)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, ErrMissingSignupFields
	}
	role := models.Role(strings.ToLower(strings.TrimSpace(in.Role)))
	if role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	count, err := s.users.CountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("count users by email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailInUse
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{FullName: name, Email: email, PasswordHash: hash, Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	ok, err := s.hasher.Matches(u.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return u, nil
}

// UpdateProfile validates the request against the stored record and writes the
// resulting change-set once. Any validation failure leaves the record untouched.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, in UpdateInput) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	var changes models.UserChanges
	if name := strings.TrimSpace(in.FullName); name != "" {
		changes.FullName = &name
	}

	// Passwords are trimmed only to detect blanks; they are verified and hashed as typed.
	if strings.TrimSpace(in.NewPassword) != "" {
		if strings.TrimSpace(in.CurrentPassword) == "" {
			return ErrCurrentPasswordRequired
		}
		ok, err := s.hasher.Matches(u.PasswordHash, in.CurrentPassword)
		if err != nil {
			return fmt.Errorf("compare password: %w", err)
		}
		if !ok {
			return ErrCurrentPasswordIncorrect
		}
		if in.ConfirmNewPassword != in.NewPassword {
			return ErrPasswordMismatch
		}
		hash, err := s.hasher.Hash(in.NewPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		changes.PasswordHash = &hash
	}

	if changes.Empty() {
		return ErrNothingToUpdate
	}
	if err := s.users.ApplyChanges(ctx, u.ID, changes); err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return nil
}
