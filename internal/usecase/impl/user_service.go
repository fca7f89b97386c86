// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "advisor/internal/delivery/context"
	"advisor/internal/domain/entity"
	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/domain/repository"
	"advisor/internal/domain/service"
	"advisor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and signs the new user in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// bcrypt is CPU-bound, keep it out of the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user id")
	}

	newUser := &entity.User{
		ID:           userID,
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to look up email")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(createErr, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return srv.issueToken(newUser)
}

// Login verifies credentials and returns a fresh access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return srv.issueToken(user)
}

func (srv *userService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		ExpiresIn:   int64(srv.tokenService.AccessTokenTTL().Seconds()),
		User:        user,
	}, nil
}

// GetProfile returns the account behind userID.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}
