package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 9

// Lines are the winning triples: rows, then columns, then diagonals.
// The order is the scan order used by status evaluation and move selection.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds nine cells in row-major order and the side played by the engine.
type Board struct {
	cells [BoardSize]Cell
	ours  Side

	lastMove int
}

// NewBoard - creates an empty board where the engine plays X.
func NewBoard() *Board {
	return &Board{
		ours:     SideX,
		lastMove: -1,
	}
}

// ParseBoard - creates a board and loads it from the 9-char encoding.
func ParseBoard(input string) (*Board, error) {
	board := NewBoard()

	if err := board.ReadFromString(input); err != nil {
		return nil, err
	}

	return board, nil
}

// ReadFromString - populates the board from an encoding like "XO-X-----".
// '-' leaves a cell free, 'X' marks it for X and any other char marks it for O.
func (that *Board) ReadFromString(input string) error {
	if len(input) != BoardSize {
		return fmt.Errorf("%w: got %d", apperror.ErrWrongLength, len(input))
	}

	for i := range len(input) {
		if input[i] == MarkEmpty {
			continue
		}

		owner := SideO
		if input[i] == MarkX {
			owner = SideX
		}

		if err := that.cells[i].Assign(owner); err != nil {
			panic(fmt.Errorf("read cell %d: %w", i, err))
		}
	}

	return nil
}

func (that *Board) String() string {
	var buf [BoardSize]byte
	for i := range that.cells {
		buf[i] = that.cells[i].Char()
	}

	return string(buf[:])
}

// Ours - returns the side the engine plays.
func (that *Board) Ours() Side {
	return that.ours
}

// LastMove - returns the cell placed by the last Pick, if any.
func (that *Board) LastMove() (int, bool) {
	return that.lastMove, that.lastMove >= 0
}

func (that *Board) freeCells() []int {
	free := make([]int, 0, BoardSize)
	for i := range that.cells {
		if !that.cells[i].IsOwned() {
			free = append(free, i)
		}
	}

	return free
}

func (that *Board) place(cell int) {
	if err := that.cells[cell].Assign(that.ours); err != nil {
		panic(fmt.Errorf("place cell %d: %w", cell, err))
	}

	that.lastMove = cell
}
