package engine

import "github.com/lgbarn/mailbox-chess/internal/chess"

// GameStatus classifies a position for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the status name.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsInCheck returns true if the given colour's king is attacked.
// A colour without a king is never in check.
func IsInCheck(b *chess.Board, colour chess.Colour) bool {
	king := b.King(colour)
	if king == chess.NoSquare {
		return false
	}
	return SquareAttacked(b, king, colour.Opposite(), chess.NoSquare)
}

// Status reports whether the side to move is in check, mated or stalemated.
func Status(b *chess.Board) (GameStatus, error) {
	moves, err := LegalMoves(b)
	if err != nil {
		return Ongoing, err
	}
	inCheck := IsInCheck(b, b.SideToMove())
	switch {
	case len(moves) == 0 && inCheck:
		return Checkmate, nil
	case len(moves) == 0:
		return Stalemate, nil
	case inCheck:
		return Check, nil
	default:
		return Ongoing, nil
	}
}
