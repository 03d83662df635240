package account

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"auction-backend/internal/auctionerrors"
	"auction-backend/internal/auth"
	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// Service implements account management and login for admins and clients
type Service struct {
	repo           repository.AuctionDB
	tokens         *auth.TokenIssuer
	protectedEmail string // bootstrap admin account that cannot be deleted
}

// NewService creates a new account Service instance
func NewService(repo repository.AuctionDB, tokens *auth.TokenIssuer, protectedEmail string) *Service {
	return &Service{
		repo:           repo,
		tokens:         tokens,
		protectedEmail: protectedEmail,
	}
}

// CreateUserInput carries the fields for a new account
type CreateUserInput struct {
	Email         string
	Password      string
	CompanyName   string
	Role          string
	DepositStatus string
	IsActive      *bool
}

// UpdateUserInput carries optional field updates; nil fields are unchanged
type UpdateUserInput struct {
	Email         *string
	Password      *string
	CompanyName   *string
	Role          *string
	DepositStatus *string
	IsActive      *bool
}

// Login authenticates an account of the given role and issues a token.
// Lookup, role and password failures are indistinguishable to the caller.
func (s *Service) Login(email, password, role string, now time.Time) (model.User, string, error) {
	if email == "" || password == "" {
		return model.User{}, "", fmt.Errorf("service: %w - email and password required", auctionerrors.ErrInvalidInput)
	}

	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: login for %s: %w", email, auctionerrors.ErrInvalidCredentials)
	}
	if user.Role != role {
		return model.User{}, "", fmt.Errorf("service: login for %s: %w", email, auctionerrors.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, "", fmt.Errorf("service: login for %s: %w", email, auctionerrors.ErrInvalidCredentials)
	}
	if role == model.RoleClient && !user.IsActive {
		return model.User{}, "", fmt.Errorf("service: login for %s: %w", email, auctionerrors.ErrAccountInactive)
	}

	token, err := s.tokens.Issue(user, now)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to issue token for %s: %w", email, err)
	}

	lastLogin := now.UTC()
	user.LastLogin = &lastLogin
	if err := s.repo.UpdateUser(user); err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to record login for %s: %w", email, err)
	}

	return user, token, nil
}

// CreateUser creates a new account with a hashed password
func (s *Service) CreateUser(input CreateUserInput) (model.User, error) {
	if input.Email == "" || input.Password == "" {
		return model.User{}, fmt.Errorf("service: %w - email and password required", auctionerrors.ErrInvalidInput)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to hash password for %s: %w", input.Email, err)
	}

	user := model.User{
		UserID:        utils.GenerateID(),
		Email:         input.Email,
		PasswordHash:  hash,
		CompanyName:   input.CompanyName,
		Role:          input.Role,
		DepositStatus: input.DepositStatus,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
	if user.Role == "" {
		user.Role = model.RoleClient
	}
	if user.DepositStatus == "" {
		user.DepositStatus = model.DepositPending
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.CreateUser(user); err != nil {
		return model.User{}, fmt.Errorf("service: failed to create user %s: %w", input.Email, err)
	}
	return user, nil
}

// GetUser returns a single account
func (s *Service) GetUser(userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// ListUsers returns all accounts
func (s *Service) ListUsers() ([]model.User, error) {
	users, err := s.repo.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies the non-nil fields of input to an existing account
func (s *Service) UpdateUser(userID string, input UpdateUserInput) (model.User, error) {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}

	if input.Email != nil && *input.Email != "" {
		user.Email = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("service: failed to hash password for %s: %w", userID, err)
		}
		user.PasswordHash = hash
	}
	if input.CompanyName != nil {
		user.CompanyName = *input.CompanyName
	}
	if input.Role != nil && *input.Role != "" {
		user.Role = *input.Role
	}
	if input.DepositStatus != nil && *input.DepositStatus != "" {
		user.DepositStatus = *input.DepositStatus
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateUser(user); err != nil {
		return model.User{}, fmt.Errorf("service: failed to update user %s: %w", userID, err)
	}
	return user, nil
}

// DeleteUser removes an account. The bootstrap admin is protected.
func (s *Service) DeleteUser(userID string) error {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	if s.protectedEmail != "" && user.Email == s.protectedEmail {
		return fmt.Errorf("service: %s is the bootstrap admin: %w", user.Email, auctionerrors.ErrProtectedAccount)
	}
	if err := s.repo.DeleteUser(userID); err != nil {
		return fmt.Errorf("service: failed to delete user %s: %w", userID, err)
	}
	return nil
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
