package handler

import (
	"log/slog"
	"net/http"
	"time"

	"advisor/internal/delivery/api/response"
	deliverycontext "advisor/internal/delivery/context"
	"advisor/internal/domain/entity"
	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for registering an account
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public projection of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

func toAuthResponse(output *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   output.ExpiresIn,
		User:        toUserResponse(output.User),
	}
}

// Register handles account registration
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output))
}

// Login handles credential login
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// GetProfile returns the resolved caller's account
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUserUnknown)
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
