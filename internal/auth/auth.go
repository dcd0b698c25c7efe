package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidRole        = errors.New("role must be Manager or Clerk")
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// Service handles operator account management and login. Passwords are
// bcrypt-hashed; a failed lookup and a failed password compare are
// indistinguishable to the caller.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Login verifies credentials and returns the account's role.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.verify(ctx, username, password)
	if err != nil {
		s.log.Warn("login failed", zap.String("username", username))
		return "", err
	}
	s.log.Info("login succeeded",
		zap.String("username", user.Username),
		zap.String("role", user.Role))
	return user.Role, nil
}

// CreateAccount validates and inserts a new operator account.
func (s *Service) CreateAccount(ctx context.Context, username, password, role string) (*model.User, error) {
	if len(username) < minUsernameLength {
		return nil, ErrUsernameTooShort
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if role != model.RoleManager && role != model.RoleClerk {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	err = s.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	s.log.Info("account created",
		zap.String("username", user.Username),
		zap.String("role", user.Role))
	return &user, nil
}

// DeleteAccount removes an account after verifying its own credentials.
func (s *Service) DeleteAccount(ctx context.Context, username, password string) error {
	user, err := s.verify(ctx, username, password)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&model.User{}, user.ID).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info("account deleted", zap.String("username", username))
	return nil
}

func (s *Service) verify(ctx context.Context, username, password string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
