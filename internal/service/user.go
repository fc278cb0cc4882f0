package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
	"blogapi/internal/domain/repositories"
	"blogapi/internal/domain/services"
	"blogapi/internal/permissions"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// userService implements the UserService interface
type userService struct {
	userRepo       repositories.UserRepository
	tokens         *auth.TokenManager
	passwordPolicy auth.PasswordPolicy
	logger         *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	passwordPolicy auth.PasswordPolicy,
	logger *slog.Logger,
) services.UserService {
	return &userService{
		userRepo:       userRepo,
		tokens:         tokens,
		passwordPolicy: passwordPolicy,
		logger:         logger,
	}
}

// Register creates a new non-staff account. The service-level uniqueness
// checks give good error messages; the storage unique constraints remain
// the authoritative backstop against the concurrent-registration race.
func (s *userService) Register(ctx context.Context, identity models.Identity, req *services.RegisterRequest) (*models.User, error) {
	if err := permissions.Evaluate(identity, permissions.ResourceUser, permissions.ActionCreate); err != nil {
		return nil, err
	}

	if err := s.validateRegisterRequest(req); err != nil {
		return nil, fieldErrors(err)
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	taken, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &domain.FieldErrors{Fields: map[string]string{
			"username": "a user with this username already exists",
		}}
	}

	inUse, err := s.userRepo.EmailExists(ctx, email, "")
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, &domain.FieldErrors{Fields: map[string]string{
			"email": "a user with this email already exists",
		}}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsStaff:      false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		"id", user.ID,
		"username", user.Username,
	)

	return user, nil
}

// Login verifies credentials and issues a token pair. Unknown username and
// wrong password produce the same error.
func (s *userService) Login(ctx context.Context, req *services.LoginRequest) (*models.TokenPair, error) {
	if req.Username == "" || req.Password == "" {
		return nil, &domain.ValidationError{Message: "username and password are required"}
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.UnauthorizedError{Message: "no active account found with the given credentials"}
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, &domain.UnauthorizedError{Message: "no active account found with the given credentials"}
	}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "id", user.ID, "username", user.Username)

	return pair, nil
}

// Refresh exchanges a valid refresh token for a new access token. The user
// record is re-read so a staff flag change takes effect on refresh.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", &domain.UnauthorizedError{Message: "token is invalid or expired"}
	}

	user, err := s.userRepo.GetByID(ctx, claims.GetUserID())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.UnauthorizedError{Message: "token is invalid or expired"}
		}
		return "", err
	}

	return s.tokens.IssueAccess(user)
}

// GetProfile returns the caller's own record. No other user's profile is
// reachable through this path.
func (s *userService) GetProfile(ctx context.Context, identity models.Identity) (*models.User, error) {
	if err := permissions.Evaluate(identity, permissions.ResourceProfile, permissions.ActionRetrieve); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, identity.UserID)
}

// UpdateProfile edits the caller's own record. The email uniqueness check
// excludes the caller, so resubmitting one's own unchanged email is an
// idempotent no-op.
func (s *userService) UpdateProfile(ctx context.Context, identity models.Identity, req *services.UpdateProfileRequest) (*models.User, error) {
	if err := permissions.Evaluate(identity, permissions.ResourceProfile, permissions.ActionUpdate); err != nil {
		return nil, err
	}

	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fieldErrors(err)
	}

	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		inUse, err := s.userRepo.EmailExists(ctx, email, user.ID)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, &domain.FieldErrors{Fields: map[string]string{
				"email": "a user with this email already exists",
			}}
		}
		user.Email = email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "id", user.ID)

	return user, nil
}

// validateRegisterRequest validates a registration request. The password
// length floor is enforced here before delegating to the policy
// collaborator.
func (s *userService) validateRegisterRequest(req *services.RegisterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username,
			validation.Required,
			validation.Length(1, config.MaxUsernameLength),
		),
		validation.Field(&req.Email,
			validation.Required,
			validation.Length(1, config.MaxEmailLength),
			is.EmailFormat,
		),
		validation.Field(&req.Password,
			validation.Required,
			validation.Length(config.MinPasswordLength, 0),
			validation.By(s.passwordPolicyRule),
		),
	)
}

// validateUpdateRequest validates a profile update request
func (s *userService) validateUpdateRequest(req *services.UpdateProfileRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email,
			validation.Length(1, config.MaxEmailLength),
			is.EmailFormat,
		),
		validation.Field(&req.FirstName, validation.Length(0, config.MaxNameLength)),
		validation.Field(&req.LastName, validation.Length(0, config.MaxNameLength)),
	)
}

func (s *userService) passwordPolicyRule(value interface{}) error {
	password, ok := value.(string)
	if !ok {
		return errors.New("password must be a string")
	}
	return s.passwordPolicy.Validate(password)
}
