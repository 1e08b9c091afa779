package impl

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/mocks"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mocks.MockUserRepository
	hasher       *mocks.MockPasswordHasher
	tokenService *mocks.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	tokenService := new(mocks.MockTokenService)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_SignUp_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{Username: "josip", Password: "nikolić"}

	fx.userRepo.On("FindByUsername", ctx, "josip").
		Return(nil, domainerrors.ErrUserNotFound).Once()
	fx.hasher.On("RandomSalt").Return("a1b2c3", nil)
	fx.hasher.On("Hash", "nikolić", "a1b2c3").Return("hashed")
	fx.userRepo.On("Insert", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = "64f0c0ffee00000000000001"
		}).
		Return(nil)

	// SignUp logs the fresh user in before returning.
	fx.userRepo.On("FindByUsername", ctx, "josip").
		Return(&entity.User{
			ID:           "64f0c0ffee00000000000001",
			Username:     "josip",
			PasswordHash: "hashed",
			Salt:         "a1b2c3",
		}, nil).Once()
	fx.hasher.On("Verify", "nikolić", "a1b2c3", "hashed").Return(true)
	fx.tokenService.On("Issue", "64f0c0ffee00000000000001", "josip").
		Return("signed.token", nil)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.Token)
	fx.userRepo.AssertExpectations(t)
	fx.hasher.AssertExpectations(t)
	fx.tokenService.AssertExpectations(t)
}

func TestUserService_SignUp_EmptyCredentials(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	for _, input := range []*usecase.SignUpInput{
		{Username: "", Password: "secret"},
		{Username: "josip", Password: ""},
		{Username: "", Password: ""},
	} {
		output, err := fx.service.SignUp(ctx, input)

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyCredentials)
	}

	fx.userRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUserService_SignUp_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "josip").
		Return(&entity.User{ID: "64f0c0ffee00000000000001", Username: "josip"}, nil)

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Username: "josip", Password: "secret"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	fx.userRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

// The availability check and the insert are not atomic; a duplicate key on
// insert must surface the same username-taken kind.
func TestUserService_SignUp_InsertRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "josip").
		Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.On("RandomSalt").Return("a1b2c3", nil)
	fx.hasher.On("Hash", "secret", "a1b2c3").Return("hashed")
	fx.userRepo.On("Insert", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUsernameTaken.WrapMessage("insert user"))

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Username: "josip", Password: "secret"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "josip").
		Return(&entity.User{
			ID:           "64f0c0ffee00000000000001",
			Username:     "josip",
			PasswordHash: "hashed",
			Salt:         "a1b2c3",
		}, nil)
	fx.hasher.On("Verify", "nikolić", "a1b2c3", "hashed").Return(true)
	fx.tokenService.On("Issue", "64f0c0ffee00000000000001", "josip").
		Return("signed.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "josip", Password: "nikolić"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.Token)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "ghost").
		Return(nil, domainerrors.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "secret"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

// Wrong passwords and unknown usernames are indistinguishable to the caller.
func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "josip").
		Return(&entity.User{
			ID:           "64f0c0ffee00000000000001",
			Username:     "josip",
			PasswordHash: "hashed",
			Salt:         "a1b2c3",
		}, nil)
	fx.hasher.On("Verify", "wrong", "a1b2c3", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "josip", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestUserService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find user")
	fx.userRepo.On("FindByUsername", ctx, "josip").Return(nil, dbErr)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "josip", Password: "secret"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.NotErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "josip").
		Return(&entity.User{
			ID:           "64f0c0ffee00000000000001",
			Username:     "josip",
			PasswordHash: "oldhash",
			Salt:         "oldsalt",
		}, nil)
	fx.hasher.On("Verify", "oldpass", "oldsalt", "oldhash").Return(true)
	fx.hasher.On("RandomSalt").Return("newsalt", nil)
	fx.hasher.On("Hash", "newpass", "newsalt").Return("newhash")
	fx.userRepo.On("UpdateCredentials", ctx, "josip", "newsalt", "newhash").
		Return(&entity.User{
			ID:           "64f0c0ffee00000000000001",
			Username:     "josip",
			PasswordHash: "newhash",
			Salt:         "newsalt",
		}, nil)

	info, err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Username:    "josip",
		OldPassword: "oldpass",
		NewPassword: "newpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "64f0c0ffee00000000000001", info.ID)
	assert.Equal(t, "josip", info.Username)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_ChangePassword_WrongOldPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "josip").
		Return(&entity.User{
			ID:           "64f0c0ffee00000000000001",
			Username:     "josip",
			PasswordHash: "oldhash",
			Salt:         "oldsalt",
		}, nil)
	fx.hasher.On("Verify", "wrong", "oldsalt", "oldhash").Return(false)

	info, err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Username:    "josip",
		OldPassword: "wrong",
		NewPassword: "newpass",
	})

	require.Error(t, err)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.userRepo.AssertNotCalled(t, "UpdateCredentials", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_ChangePassword_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "ghost").
		Return(nil, domainerrors.ErrUserNotFound)

	info, err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Username:    "ghost",
		OldPassword: "old",
		NewPassword: "new",
	})

	require.Error(t, err)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, "64f0c0ffee00000000000001").
		Return(&entity.User{
			ID:       "64f0c0ffee00000000000001",
			Username: "josip",
			Liked: []entity.LikeRef{
				{UserID: "64f0c0ffee00000000000002"},
			},
			LikedBy: []entity.LikeRef{
				{UserID: "64f0c0ffee00000000000002"},
				{UserID: "64f0c0ffee00000000000003"},
			},
		}, nil)

	profile, err := fx.service.GetProfile(ctx, "64f0c0ffee00000000000001")

	require.NoError(t, err)
	assert.Equal(t, "josip", profile.Username)
	assert.Equal(t, []string{"64f0c0ffee00000000000002"}, profile.Liked)
	assert.Equal(t, []string{"64f0c0ffee00000000000002", "64f0c0ffee00000000000003"}, profile.LikedBy)
	assert.Equal(t, 1, profile.LikedCount)
	assert.Equal(t, 2, profile.LikedByCount)
}

func TestUserService_GetProfile_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, "64f0c0ffee00000000000009").
		Return(nil, domainerrors.ErrUserNotFound)

	profile, err := fx.service.GetProfile(ctx, "64f0c0ffee00000000000009")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
