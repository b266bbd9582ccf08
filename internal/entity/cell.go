package entity

import "github.com/rocketscienceinc/tictactoe-engine/internal/apperror"

// Cell is a single board position. Once owned it stays owned.
type Cell struct {
	owned bool
	owner Side
}

// Assign - sets the owner of an unowned cell.
func (that *Cell) Assign(owner Side) error {
	if that.owned {
		return apperror.ErrCellOwned
	}

	that.owned = true
	that.owner = owner

	return nil
}

func (that *Cell) IsOwned() bool {
	return that.owned
}

func (that *Cell) OwnedBy(side Side) bool {
	return that.owned && that.owner == side
}

// Char - returns the encoding of the cell: '-', 'X' or 'O'.
func (that *Cell) Char() byte {
	if !that.owned {
		return MarkEmpty
	}

	return that.owner.Mark()
}
