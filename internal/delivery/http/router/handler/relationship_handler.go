package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// rankingResponse is one row of the most-liked view.
type rankingResponse struct {
	Username   string `json:"username"`
	LikedCount int    `json:"likedCount"`
}

// RelationshipHandler holds dependencies for like/unlike and ranking handlers.
type RelationshipHandler struct {
	relationships usecase.RelationshipUsecase
	ranking       usecase.RankingUsecase
	logger        *slog.Logger
}

// NewRelationshipHandler is the constructor for RelationshipHandler, injected by Fx.
func NewRelationshipHandler(
	relationships usecase.RelationshipUsecase,
	ranking usecase.RankingUsecase,
	logger *slog.Logger,
) *RelationshipHandler {
	return &RelationshipHandler{
		relationships: relationships,
		ranking:       ranking,
		logger:        logger,
	}
}

// Like records a like from the authenticated user to the user in the path.
func (h *RelationshipHandler) Like(c echo.Context) error {
	likerID, _ := c.Get(middleware.KeyUserID).(string)
	targetID := c.Param("id")

	if err := h.relationships.Like(c.Request().Context(), likerID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Like recorded")
}

// Unlike removes a like from the authenticated user to the user in the path.
func (h *RelationshipHandler) Unlike(c echo.Context) error {
	likerID, _ := c.Get(middleware.KeyUserID).(string)
	targetID := c.Param("id")

	if err := h.relationships.Unlike(c.Request().Context(), likerID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Like removed")
}

// MostLiked returns every user ordered by how many users like them.
func (h *RelationshipHandler) MostLiked(c echo.Context) error {
	rankings, err := h.ranking.MostLiked(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	rows := make([]rankingResponse, 0, len(rankings))
	for _, r := range rankings {
		rows = append(rows, rankingResponse{Username: r.Username, LikedCount: r.LikedCount})
	}

	return response.Success(c, http.StatusOK, rows, "")
}
