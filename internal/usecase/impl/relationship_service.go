package impl

import (
	"context"
	"log/slog"

	deliverycontext "pulse/internal/delivery/context"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// relationshipService implements the RelationshipUsecase interface.
//
// The reciprocal state lives in two independently stored aggregates, and the
// deployment offers no cross-aggregate transactions, so every like/unlike is
// a best-effort dual write: the counterpart's likedBy side is written first,
// then the initiator's liked side. The idempotency checks make a retry of a
// partially applied operation converge instead of double-applying; a crash
// between the two writes leaves a one-sided like until such a retry.
//
// No ordering is guaranteed across concurrent calls on the same pair. Both
// aggregates are re-fetched before every write; no cached view is mutated
// and written back blind.
type relationshipService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// RelationshipServiceParams holds dependencies for relationshipService, injected by Fx.
type RelationshipServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewRelationshipService is the constructor for relationshipService.
func NewRelationshipService(params RelationshipServiceParams) usecase.RelationshipUsecase {
	return &relationshipService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *relationshipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Like records that liker likes target. Liking an already-liked user is a
// defined success that mutates nothing.
func (srv *relationshipService) Like(ctx context.Context, likerID, targetID string) error {
	if likerID == targetID {
		return domainerrors.ErrValidationFailed.WrapMessage("users cannot like themselves")
	}

	liker, err := srv.userRepo.FindByID(ctx, likerID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve liker")
	}

	if liker.HasLiked(targetID) {
		srv.log(ctx).Debug("Like already recorded", slog.String("likerID", likerID), slog.String("targetID", targetID))

		return nil
	}

	target, err := srv.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve like target")
	}

	// Counterpart side first: if the process dies between the two writes,
	// the initiator's side still reads "not liked" and a retry converges.
	target.AddLikedBy(liker.ID)
	if err := srv.userRepo.Save(ctx, target); err != nil {
		return errors.Wrap(err, "failed to save like target")
	}

	liker.AddLiked(target.ID)
	if err := srv.userRepo.Save(ctx, liker); err != nil {
		return errors.Wrap(err, "failed to save liker")
	}

	srv.log(ctx).Debug("Like recorded", slog.String("likerID", likerID), slog.String("targetID", targetID))

	return nil
}

// Unlike removes a previously recorded like. Unliking a user who was never
// liked is a defined success that mutates nothing.
func (srv *relationshipService) Unlike(ctx context.Context, likerID, targetID string) error {
	if likerID == targetID {
		return domainerrors.ErrValidationFailed.WrapMessage("users cannot unlike themselves")
	}

	liker, err := srv.userRepo.FindByID(ctx, likerID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve liker")
	}

	if !liker.HasLiked(targetID) {
		srv.log(ctx).Debug("No like to remove", slog.String("likerID", likerID), slog.String("targetID", targetID))

		return nil
	}

	target, err := srv.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve unlike target")
	}

	target.RemoveLikedBy(liker.ID)
	if err := srv.userRepo.Save(ctx, target); err != nil {
		return errors.Wrap(err, "failed to save unlike target")
	}

	liker.RemoveLiked(target.ID)
	if err := srv.userRepo.Save(ctx, liker); err != nil {
		return errors.Wrap(err, "failed to save liker")
	}

	srv.log(ctx).Debug("Like removed", slog.String("likerID", likerID), slog.String("targetID", targetID))

	return nil
}
