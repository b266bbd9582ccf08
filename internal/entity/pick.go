package entity

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Rand is the source used for the random fallback move.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // it's ok
}

type lineOutcome int

const (
	outcomeNothing lineOutcome = iota
	outcomeCanWin
	outcomeOpponentCouldWin
)

// Pick - makes one move for the engine and returns the resulting status.
// A board that is already decided is returned untouched.
func (that *Board) Pick() (GameStatus, error) {
	return that.PickWith(globalRand{})
}

// PickWith - same as Pick, with an explicit source for the random move.
func (that *Board) PickWith(rnd Rand) (GameStatus, error) {
	if status := that.EvaluateStatus(); status.IsTerminal() {
		return status, nil
	}

	if that.makeCrucialMove() {
		return that.EvaluateStatus(), nil
	}

	return that.makeRandomMove(rnd)
}

// makeCrucialMove - takes the first line in scan order that either side
// could complete next turn. A block found before a win is played first.
func (that *Board) makeCrucialMove() bool {
	for _, line := range Lines {
		if that.checkLine(line) == outcomeNothing {
			continue
		}

		for _, i := range line {
			if !that.cells[i].IsOwned() {
				that.place(i)
				return true
			}
		}
	}

	return false
}

func (that *Board) makeRandomMove(rnd Rand) (GameStatus, error) {
	free := that.freeCells()
	if len(free) == 0 {
		return StatusInProgress, apperror.ErrNoMoveAvailable
	}

	that.place(free[rnd.IntN(len(free))])

	return that.EvaluateStatus(), nil
}

func (that *Board) checkLine(line [3]int) lineOutcome {
	ours, theirs := that.countLine(line)

	if ours+theirs != 2 {
		return outcomeNothing
	}

	switch {
	case ours == 2:
		return outcomeCanWin
	case theirs == 2:
		return outcomeOpponentCouldWin
	default:
		return outcomeNothing
	}
}
