package impl

import (
	"context"
	"testing"
	"time"

	"advisor/internal/domain/entity"
	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/domain/repository"
	mockRepo "advisor/internal/mocks/repository"
	mockSvc "advisor/internal/mocks/service"
	"advisor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// runInTx makes the transaction manager run the callback against txUserRepo.
func runInTx(t *testing.T, txManager *mockRepo.MockTransactionManager, txUserRepo *mockRepo.MockUserRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "  Test@Example.com ",
		Password: "Password123!",
	}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	runInTx(t, fx.txManager, txUserRepo)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	txUserRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID != uuid.Nil && u.Email == "test@example.com" && u.PasswordHash == "hashed_password"
		})).
		Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID")).Return("access-token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, int64(900), output.ExpiresIn)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "Test User", output.User.Name)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Dup", Email: "dup@example.com", Password: "Password123!"}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	runInTx(t, fx.txManager, txUserRepo)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	txUserRepo.EXPECT().FindByEmail(ctx, "dup@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_DuplicateOnInsert(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Dup", Email: "dup@example.com", Password: "Password123!"}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	runInTx(t, fx.txManager, txUserRepo)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	txUserRepo.EXPECT().FindByEmail(ctx, "dup@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	input := &usecase.RegisterUserInput{Name: "x", Email: "x@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	_, err := fx.service.Register(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID).Return("access-token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(time.Hour)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "TEST@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, int64(3600), output.ExpiresIn)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "me@example.com", Name: "Me"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
