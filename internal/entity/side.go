package entity

// Side identifies one of the two players.
type Side int

const (
	SideX Side = iota
	SideO
)

const (
	MarkX     = 'X'
	MarkO     = 'O'
	MarkEmpty = '-'
)

func (that Side) Opponent() Side {
	if that == SideX {
		return SideO
	}
	return SideX
}

func (that Side) Mark() byte {
	if that == SideX {
		return MarkX
	}
	return MarkO
}

func (that Side) String() string {
	return string(that.Mark())
}
