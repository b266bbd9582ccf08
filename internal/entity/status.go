package entity

type GameStatus int

const (
	StatusInProgress GameStatus = iota
	StatusAutomatedSideWon
	StatusOpponentWon
	StatusDraw
)

func (that GameStatus) String() string {
	switch that {
	case StatusAutomatedSideWon:
		return "automated_side_won"
	case StatusOpponentWon:
		return "opponent_won"
	case StatusDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// IsTerminal - reports whether the game is over.
func (that GameStatus) IsTerminal() bool {
	return that != StatusInProgress
}

// EvaluateStatus - checks lines in scan order and returns on the first
// completed one. A full board without a completed line is a draw.
func (that *Board) EvaluateStatus() GameStatus {
	for _, line := range Lines {
		ours, theirs := that.countLine(line)

		if theirs == 3 {
			return StatusOpponentWon
		} else if ours == 3 {
			return StatusAutomatedSideWon
		}
	}

	// the game will continue while any cell is free
	for i := range that.cells {
		if !that.cells[i].IsOwned() {
			return StatusInProgress
		}
	}

	return StatusDraw
}

func (that *Board) countLine(line [3]int) (int, int) {
	var ours, theirs int

	for _, i := range line {
		switch {
		case that.cells[i].OwnedBy(that.ours):
			ours++
		case that.cells[i].IsOwned():
			theirs++
		}
	}

	return ours, theirs
}
