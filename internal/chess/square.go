package chess

import "fmt"

// Square is an index into the padded 10x12 grid.
type Square int

// Constants for grid dimensions.
const (
	BoardSize  = 8
	GridWidth  = 10
	GridHeight = 12
	GridSize   = GridWidth * GridHeight

	// NoSquare marks an absent square (no en-passant victim, no king).
	NoSquare Square = -1
)

// ToMailbox maps the 64 playable squares (a8 = 0 ... h1 = 63) to grid indices.
var ToMailbox = [64]Square{
	21, 22, 23, 24, 25, 26, 27, 28,
	31, 32, 33, 34, 35, 36, 37, 38,
	41, 42, 43, 44, 45, 46, 47, 48,
	51, 52, 53, 54, 55, 56, 57, 58,
	61, 62, 63, 64, 65, 66, 67, 68,
	71, 72, 73, 74, 75, 76, 77, 78,
	81, 82, 83, 84, 85, 86, 87, 88,
	91, 92, 93, 94, 95, 96, 97, 98,
}

// ToBoard maps grid indices back to playable squares, -1 for padding.
var ToBoard = [GridSize]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, 0, 1, 2, 3, 4, 5, 6, 7, -1,
	-1, 8, 9, 10, 11, 12, 13, 14, 15, -1,
	-1, 16, 17, 18, 19, 20, 21, 22, 23, -1,
	-1, 24, 25, 26, 27, 28, 29, 30, 31, -1,
	-1, 32, 33, 34, 35, 36, 37, 38, 39, -1,
	-1, 40, 41, 42, 43, 44, 45, 46, 47, -1,
	-1, 48, 49, 50, 51, 52, 53, 54, 55, -1,
	-1, 56, 57, 58, 59, 60, 61, 62, 63, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// SquareAt returns the grid index of a file (0 = a) and rank (1..8).
func SquareAt(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 1 || rank > BoardSize {
		return NoSquare
	}
	return Square((GridHeight-2-rank)*GridWidth + file + 1)
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'0')), nil
}

// MustParseSquare is ParseSquare for literals; it panics on bad input.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// IsInside reports whether the index is a playable square.
func (s Square) IsInside() bool {
	return s >= 0 && s < GridSize && ToBoard[s] != -1
}

// File returns the file of the square, 0 for the a-file.
func (s Square) File() int {
	return int(s)%GridWidth - 1
}

// Rank returns the rank of the square, 1..8.
func (s Square) Rank() int {
	return GridHeight - 2 - int(s)/GridWidth
}

// FileLetter returns 'a'..'h'.
func (s Square) FileLetter() byte {
	return byte('a' + s.File())
}

// String returns algebraic coordinates, or "-" for a non-playable index.
func (s Square) String() string {
	if !s.IsInside() {
		return "-"
	}
	return string([]byte{s.FileLetter(), byte('0' + s.Rank())})
}
