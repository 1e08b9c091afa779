// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
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

// SignUp creates a new user with a fresh salt and hash, then immediately
// logs the new user in and returns the session token.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrEmptyCredentials.WrapMessage("sign-up requires username and password")
	}

	srv.log(ctx).Info("Starting sign-up", slog.String("username", input.Username))

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, domainerrors.ErrUsernameTaken.WrapMessage("sign-up failed")
	}
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	salt, err := srv.hasher.RandomSalt()
	if err != nil {
		srv.log(ctx).Error("Failed to generate salt during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate salt")
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: srv.hasher.Hash(input.Password, salt),
		Salt:         salt,
		Liked:        []entity.LikeRef{},
		LikedBy:      []entity.LikeRef{},
	}

	// Insert maps a duplicate username to the username-taken kind, which
	// also covers the race between the availability check and the insert.
	if err := srv.userRepo.Insert(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to insert user during sign-up", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("User signed up", slog.String("userID", newUser.ID))

	return srv.Login(ctx, &usecase.LoginInput{Username: input.Username, Password: input.Password})
}

// Login verifies credentials and issues a session token. Unknown username
// and failed verification surface the same error kind so callers cannot
// probe which part was wrong.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Verify(input.Password, user.Salt, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID))

	return &usecase.TokenOutput{Token: token}, nil
}

// ChangePassword verifies the old password and rotates salt and hash in a
// single aggregate write.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*usecase.UserInfo, error) {
	srv.log(ctx).Info("Starting password change", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("password change failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Verify(input.OldPassword, user.Salt, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password change failed")
	}

	salt, err := srv.hasher.RandomSalt()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	updated, err := srv.userRepo.UpdateCredentials(ctx, input.Username, salt, srv.hasher.Hash(input.NewPassword, salt))
	if err != nil {
		srv.log(ctx).Error("Failed to update credentials", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("Password changed", slog.String("userID", updated.ID))

	return &usecase.UserInfo{ID: updated.ID, Username: updated.Username}, nil
}

// GetProfile resolves a user by ID and projects both sides of their like
// relationships.
func (srv *userService) GetProfile(ctx context.Context, userID string) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &usecase.ProfileOutput{
		ID:           user.ID,
		Username:     user.Username,
		Liked:        refIDs(user.Liked),
		LikedBy:      refIDs(user.LikedBy),
		LikedCount:   len(user.Liked),
		LikedByCount: len(user.LikedBy),
	}, nil
}

func refIDs(refs []entity.LikeRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.UserID)
	}

	return ids
}
