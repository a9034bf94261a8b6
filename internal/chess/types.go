// Package chess provides the board representation, pieces and reversible
// actions of the rules engine.
package chess

import "math"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents the kind of content of a grid cell.
type PieceType int

const (
	Off   PieceType = iota // Off the board (padding cell)
	Empty                  // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a piece type.
func (t PieceType) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter of either case.
// Returns Empty when the letter is not a piece.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// Unmoved is the FirstMove value of a rook or king that has never moved.
const Unmoved uint32 = math.MaxUint32

// Piece is the content of a single grid cell.
// FirstMove is only meaningful for rooks and kings: it holds the turn on which
// the piece first moved, or Unmoved.
type Piece struct {
	Type      PieceType
	Colour    Colour
	FirstMove uint32
}

var (
	// OffPiece fills the padding cells.
	OffPiece = Piece{Type: Off}
	// EmptyPiece fills unoccupied playable cells.
	EmptyPiece = Piece{Type: Empty}
)

// NewPiece creates a piece that has not moved yet.
func NewPiece(colour Colour, t PieceType) Piece {
	p := Piece{Type: t, Colour: colour}
	if t == Rook || t == King {
		p.FirstMove = Unmoved
	}
	return p
}

// W creates a white piece.
func W(t PieceType) Piece {
	return NewPiece(White, t)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return NewPiece(Black, t)
}

// IsPiece reports whether the cell holds an actual piece.
func (p Piece) IsPiece() bool {
	return p.Type >= Pawn
}

// IsEmpty reports whether the cell is an unoccupied playable square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// IsOff reports whether the cell is padding.
func (p Piece) IsOff() bool {
	return p.Type == Off
}

// HasMoved reports whether a rook or king has been stamped with a first move.
func (p Piece) HasMoved() bool {
	return p.FirstMove != Unmoved
}

// IsSliding reports whether the piece moves along rays.
func (p Piece) IsSliding() bool {
	switch p.Type {
	case Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// HasDirection reports whether a sliding piece may travel along dir.
func (p Piece) HasDirection(dir int) bool {
	switch p.Type {
	case Bishop:
		return IsDiagonal(dir)
	case Rook:
		return IsOrthogonal(dir)
	case Queen:
		return IsDiagonal(dir) || IsOrthogonal(dir)
	default:
		return false
	}
}

// AttackOffsets returns the fixed offsets a non-sliding piece attacks.
// Sliding pieces and non-pieces return nil.
func (p Piece) AttackOffsets() []int {
	switch p.Type {
	case Pawn:
		caps := PawnCaptures(p.Colour)
		return caps[:]
	case Knight:
		return KnightOffsets[:]
	case King:
		return Directions[:]
	default:
		return nil
	}
}

// Attacks reports whether a non-sliding piece attacks the square vector away.
func (p Piece) Attacks(vector int) bool {
	for _, off := range p.AttackOffsets() {
		if off == vector {
			return true
		}
	}
	return false
}

// FENLetter returns the piece letter, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && p.IsPiece() {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if !p.IsPiece() {
		return p.Type.String()
	}
	return p.Colour.String() + " " + p.Type.String()
}
