package usecase

import (
	"context"
)

// RelationshipUsecase defines the like/unlike operations over pairs of users.
//
// Both operations maintain the reciprocity invariant: after a successful
// call, the target appears in the liker's liked set exactly when the liker
// appears in the target's likedBy set. Already-liked and not-liked calls are
// defined successes (no-ops), not errors.
type RelationshipUsecase interface {
	// Like records that the user identified by likerID likes the user
	// identified by targetID.
	Like(ctx context.Context, likerID, targetID string) error

	// Unlike removes a previously recorded like.
	Unlike(ctx context.Context, likerID, targetID string) error
}
