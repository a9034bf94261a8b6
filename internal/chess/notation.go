package chess

import "strings"

// Castle notation.
const (
	KingsideCastleString  = "O-O"
	QueensideCastleString = "O-O-O"
)

// Notation renders the action as a short algebraic string: piece letter
// (file letter for pawn captures, nothing for pawn pushes), "x" for captures,
// destination square. The board is consulted only when the mover was not
// recorded at generation time; both pre- and post-apply boards work.
// Moves are not disambiguated.
func (a Action) Notation(b *Board) string {
	if a.Kind == KindCastle {
		if a.RookFrom.File() > a.From.File() {
			return KingsideCastleString
		}
		return QueensideCastleString
	}

	mover := a.Mover
	if mover < Pawn && b != nil {
		mover = b.PieceAt(a.From).Type
		if mover < Pawn {
			mover = b.PieceAt(a.To).Type
		}
	}
	if a.Kind == KindPromote {
		mover = Pawn
	}

	var sb strings.Builder
	switch {
	case mover == Pawn:
		if a.IsCapture() {
			sb.WriteByte(a.From.FileLetter())
		}
	case mover >= Pawn:
		sb.WriteByte(mover.Letter())
	default:
		sb.WriteByte('?')
	}
	if a.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(a.To.String())
	if a.Kind == KindPromote {
		sb.WriteByte('=')
		sb.WriteByte(a.Promotion.Letter())
	}
	return sb.String()
}

// UCI renders the action in long algebraic form, e.g. "e2e4", "e7e8q",
// "e1g1" for a castle.
func (a Action) UCI() string {
	s := a.From.String() + a.To.String()
	if a.Kind == KindPromote {
		s += strings.ToLower(string(a.Promotion.Letter()))
	}
	return s
}

// String returns the long algebraic form.
func (a Action) String() string {
	return a.UCI()
}
