package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	MessageEngineWon   = " I WIN   "
	MessageOpponentWon = "YOU   WIN"
)

type statsRepo interface {
	Increment(ctx context.Context, outcome string) error
	GetAll(ctx context.Context) (map[string]int64, error)
}

// Result is the outcome of one engine turn.
type Result struct {
	Status entity.GameStatus
	Board  string
	Move   int
}

// Message - maps the result to the text shown to the caller.
func (that *Result) Message() string {
	switch that.Status {
	case entity.StatusAutomatedSideWon:
		return MessageEngineWon
	case entity.StatusOpponentWon:
		return MessageOpponentWon
	default:
		return that.Board
	}
}

type NextMove struct {
	logger *slog.Logger
	stats  statsRepo
}

func NewNextMove(logger *slog.Logger, stats statsRepo) *NextMove {
	return &NextMove{
		logger: logger.With("component", "next_move"),
		stats:  stats,
	}
}

// Play - loads the encoded board and makes one move for the engine.
func (that *NextMove) Play(ctx context.Context, encoded string) (*Result, error) {
	log := that.logger.With("method", "Play", "board", encoded)

	board, err := entity.ParseBoard(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}

	status, err := board.Pick()
	if err != nil {
		return nil, fmt.Errorf("failed to pick: %w", err)
	}

	result := &Result{
		Status: status,
		Board:  board.String(),
		Move:   -1,
	}

	if move, ok := board.LastMove(); ok {
		result.Move = move
	}

	log.Debug("move made", "status", status.String(), "move", result.Move, "result", result.Board)

	if err = that.stats.Increment(ctx, status.String()); err != nil {
		log.Error("failed to record outcome", "error", err)
	}

	return result, nil
}

// Stats - returns how many turns ended with each status.
func (that *NextMove) Stats(ctx context.Context) (map[string]int64, error) {
	stats, err := that.stats.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}
