package impl

import (
	"context"
	"log/slog"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// rankingService implements the RankingUsecase interface by delegating the
// counting and ordering to the store's aggregation.
type rankingService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// RankingServiceParams holds dependencies for rankingService, injected by Fx.
type RankingServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewRankingService is the constructor for rankingService.
func NewRankingService(params RankingServiceParams) usecase.RankingUsecase {
	return &rankingService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// MostLiked returns every user ordered by the size of their likedBy set,
// descending. Callers must not depend on the order of equal counts.
func (srv *rankingService) MostLiked(ctx context.Context) ([]entity.Ranking, error) {
	rankings, err := srv.userRepo.MostLiked(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load most liked users")
	}

	return rankings, nil
}
