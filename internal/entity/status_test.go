package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_EvaluateStatus(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  GameStatus
	}{
		{name: "Empty board", board: "---------", want: StatusInProgress},
		{name: "Ongoing game", board: "XO--X---O", want: StatusInProgress},
		{name: "X wins on a row", board: "XXX-O-O--", want: StatusAutomatedSideWon},
		{name: "X wins on a column", board: "-XO-XO-X-", want: StatusAutomatedSideWon},
		{name: "X wins on a diagonal", board: "O-X-X-XO-", want: StatusAutomatedSideWon},
		{name: "O wins on a row", board: "X-X---OOO", want: StatusOpponentWon},
		{name: "O wins on a column", board: "OX-OX-O--", want: StatusOpponentWon},
		{name: "O wins on a diagonal", board: "OXX-O-X-O", want: StatusOpponentWon},
		{name: "Full board with a winner is not a draw", board: "XOXOXOXOX", want: StatusAutomatedSideWon},
		{name: "Draw", board: "XOXXOOOXX", want: StatusDraw},
		{name: "Draw with O to move last", board: "OXOOXXXOO", want: StatusDraw},
		{name: "Our line first in scan order wins", board: "XXXOOO---", want: StatusAutomatedSideWon},
		{name: "Opponent first in scan order wins", board: "OOOXXX---", want: StatusOpponentWon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board
			board, err := ParseBoard(tt.board)
			require.NoError(t, err)

			// When: the status is evaluated
			status := board.EvaluateStatus()

			// Then: it matches the expected status
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestGameStatus_String(t *testing.T) {
	assert.Equal(t, "in_progress", StatusInProgress.String())
	assert.Equal(t, "automated_side_won", StatusAutomatedSideWon.String())
	assert.Equal(t, "opponent_won", StatusOpponentWon.String())
	assert.Equal(t, "draw", StatusDraw.String())

	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusDraw.IsTerminal())
}
