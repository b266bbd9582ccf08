package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestNewBoard(t *testing.T) {
	// When: create a new board
	board := NewBoard()

	// Then: all cells are free and the engine plays X
	assert.Equal(t, "---------", board.String())
	assert.Equal(t, SideX, board.Ours())

	_, moved := board.LastMove()
	assert.False(t, moved)
}

func TestBoard_ReadFromString(t *testing.T) {
	t.Run("Round trip keeps the encoding", func(t *testing.T) {
		inputs := []string{
			"---------",
			"XXXXXXXXX",
			"OOOOOOOOO",
			"XO-OX-X-O",
			"-X-O-X-O-",
		}

		for _, input := range inputs {
			// When: the board is loaded and serialized back
			board, err := ParseBoard(input)
			require.NoError(t, err)

			// Then: the encoding is the same
			assert.Equal(t, input, board.String())
		}
	})

	t.Run("Unknown characters become O", func(t *testing.T) {
		// Given: an encoding with lowercase and foreign chars
		board, err := ParseBoard("xo?X-----")

		// Then: everything that is not 'X' or '-' is owned by O
		require.NoError(t, err)
		assert.Equal(t, "OOOX-----", board.String())
	})

	t.Run("Error on wrong length", func(t *testing.T) {
		inputs := []string{
			"",
			"X",
			"XOXOXOXO",
			"XOXOXOXOXO",
			strings.Repeat("-", 100),
		}

		for _, input := range inputs {
			// When: the encoding is not 9 chars long
			var err error
			require.NotPanics(t, func() {
				err = NewBoard().ReadFromString(input)
			})

			// Then: ErrWrongLength is returned
			require.ErrorIs(t, err, apperror.ErrWrongLength)
		}
	})

	t.Run("ParseBoard returns nil board on error", func(t *testing.T) {
		board, err := ParseBoard("XOXOXOXOXO")

		require.ErrorIs(t, err, apperror.ErrWrongLength)
		assert.Nil(t, board)
	})

	t.Run("Panics when reading over an owned cell", func(t *testing.T) {
		// Given: a board that is already populated
		board, err := ParseBoard("X--------")
		require.NoError(t, err)

		// Then: reading again over the owned cell is an invariant violation
		assert.Panics(t, func() {
			_ = board.ReadFromString("O--------")
		})
	})
}
