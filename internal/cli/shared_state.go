package cli

import (
	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App   *App
	Board domain.Board

	// Tracker is owned by this TUI session and dies with it.
	Tracker   *domain.CompletionTracker
	SessionID string
	Logger    *zap.Logger

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	logger := app.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &SharedState{
		App:       app,
		Board:     app.Board,
		Tracker:   domain.NewCompletionTracker(app.Board.Schedule),
		SessionID: id,
		Logger:    logger.With(zap.String("session", id)),
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
