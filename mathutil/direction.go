package mathutil

// Direction is a horizontal movement intent.
type Direction int

const (
	None Direction = iota
	Left
	Right
)

// DirectionOf maps a signed horizontal component to a Direction.
func DirectionOf(x float64) Direction {
	switch {
	case x < 0:
		return Left
	case x > 0:
		return Right
	}
	return None
}

// FacingDirection is Right for facingRight, else Left.
func FacingDirection(facingRight bool) Direction {
	if facingRight {
		return Right
	}
	return Left
}

// Opposite flips Left and Right; None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

// Sign is -1 for Left, +1 for Right and 0 for None.
func (d Direction) Sign() float64 {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
