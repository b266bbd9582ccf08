package apperror

import "errors"

var (
	ErrWrongLength     = errors.New("invalid board string, must be 9 chars long")
	ErrCellOwned       = errors.New("cell is already owned")
	ErrNoMoveAvailable = errors.New("no free cells to pick")
)
