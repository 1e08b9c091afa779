package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// RankingUsecase produces the most-liked view of the user base.
type RankingUsecase interface {
	// MostLiked returns every user with the size of their likedBy set,
	// ordered by that size descending. An empty user base yields an empty
	// sequence, which is a valid result.
	MostLiked(ctx context.Context) ([]entity.Ranking, error)
}
