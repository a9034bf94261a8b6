package chess

// Grid offsets of the eight ray directions. North points towards rank 8.
const (
	North     = -GridWidth
	South     = GridWidth
	East      = 1
	West      = -1
	NorthEast = North + East
	NorthWest = North + West
	SouthEast = South + East
	SouthWest = South + West
)

// Directions lists all ray directions, clockwise from North.
var Directions = [8]int{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// OrthogonalDirections are the rook directions.
var OrthogonalDirections = [4]int{North, East, South, West}

// DiagonalDirections are the bishop directions.
var DiagonalDirections = [4]int{NorthEast, SouthEast, SouthWest, NorthWest}

// KnightOffsets are the eight knight leaps.
var KnightOffsets = [8]int{
	2*North + West, 2*North + East,
	North + 2*West, North + 2*East,
	South + 2*West, South + 2*East,
	2*South + West, 2*South + East,
}

// IsDiagonal reports whether dir is one of the bishop directions.
func IsDiagonal(dir int) bool {
	switch dir {
	case NorthEast, NorthWest, SouthEast, SouthWest:
		return true
	}
	return false
}

// IsOrthogonal reports whether dir is one of the rook directions.
func IsOrthogonal(dir int) bool {
	switch dir {
	case North, South, East, West:
		return true
	}
	return false
}

// PawnPush returns the forward direction of a colour's pawns.
func PawnPush(c Colour) int {
	if c == White {
		return North
	}
	return South
}

// PawnCaptures returns the two capture directions of a colour's pawns.
func PawnCaptures(c Colour) [2]int {
	if c == White {
		return [2]int{NorthWest, NorthEast}
	}
	return [2]int{SouthWest, SouthEast}
}

// PawnStartRank returns the rank a colour's pawns start on.
func PawnStartRank(c Colour) int {
	if c == White {
		return 2
	}
	return 7
}

// PromotionRank returns the rank on which a colour's pawns promote.
func PromotionRank(c Colour) int {
	if c == White {
		return 8
	}
	return 1
}

// HomeRank returns the back rank of a colour.
func HomeRank(c Colour) int {
	if c == White {
		return 1
	}
	return 8
}
