package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
	"github.com/heartmarshall/typespeed-backend/internal/service/progress"
)

type leaderboardService interface {
	Leaderboard(ctx context.Context, input progress.LeaderboardInput) ([]domain.LeaderboardEntry, error)
}

// LeaderboardHandler serves the ranking read API.
type LeaderboardHandler struct {
	svc leaderboardService
	log *slog.Logger
}

// NewLeaderboardHandler creates a LeaderboardHandler.
func NewLeaderboardHandler(svc leaderboardService, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc, log: logger.With("handler", "leaderboard")}
}

// Top handles GET /api/leaderboard/{board}?limit=N.
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	input := progress.LeaderboardInput{Kind: r.PathValue("board")}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, r, h.log, domain.NewValidationError("limit", "must be between 1 and 100"), "")
			return
		}
		input.Limit = n
	}

	entries, err := h.svc.Leaderboard(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err, "Leaderboard not found")
		return
	}

	out := make([]leaderboardEntryView, len(entries))
	for i, e := range entries {
		out[i] = leaderboardEntryView{
			Rank:     e.Rank,
			UserID:   e.UserID.String(),
			Username: e.Username,
			Score:    e.Score,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
