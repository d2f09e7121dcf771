package services

import (
	"errors"
	"fmt"

	"github.com/keitamori/miniblog/internal/models"
	"github.com/keitamori/miniblog/internal/repository"
	"github.com/keitamori/miniblog/internal/security"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already in use")
	ErrEmailTaken           = errors.New("email already in use")
	ErrDuplicateUser        = errors.New("username or email already in use")
	ErrInvalidCredentials   = errors.New("email or password is incorrect")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo repository.UserRepository
	hashCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hashCost: security.DefaultCost,
	}
}

// NewAuthServiceWithCost creates an AuthService with an explicit bcrypt cost.
// Tests use the minimum cost to stay fast.
func NewAuthServiceWithCost(userRepo repository.UserRepository, cost int) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hashCost: cost,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user. Username is checked before email, first match
// wins. The pre-checks are advisory: two concurrent registrations can both
// pass them, so the unique indexes are the authority and their violation is
// converted to ErrDuplicateUser rather than surfaced as a raw store failure.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	digest, err := security.HashPasswordWithCost(input.Password, s.hashCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: digest,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns the authenticated user. Unknown
// email and wrong password both come back as ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user and cascades to the user's articles and comments.
func (s *AuthService) DeleteUser(id uint64) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
