package chess

import (
	"fmt"

	"github.com/lgbarn/mailbox-chess/internal/errors"
)

// ActionKind tags the variant of an Action.
type ActionKind int

const (
	KindMove ActionKind = iota
	KindCapture
	KindCastle
	KindPromote
)

// String returns the variant name.
func (k ActionKind) String() string {
	switch k {
	case KindMove:
		return "Move"
	case KindCapture:
		return "Capture"
	case KindCastle:
		return "Castle"
	case KindPromote:
		return "Promote"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is a reversible board mutation. It is a closed union over the
// ActionKind variants; every consumer switches on Kind.
//
// Captured is filled when the action executes, so the record kept in the
// board history holds everything needed to undo it.
type Action struct {
	Kind ActionKind

	// From and To are the squares of the moving piece (the king for a castle).
	From Square
	To   Square

	// Mover is the type of the moving piece when known at generation time.
	Mover PieceType

	// Victim is the square of a pawn taken en passant, NoSquare otherwise.
	Victim Square

	// RookFrom and RookTo are the rook leg of a castle.
	RookFrom Square
	RookTo   Square

	// Base is the wrapped variant of a Promote (KindMove or KindCapture).
	Base ActionKind
	// Promotion is the piece type a pawn becomes.
	Promotion PieceType

	// Captured holds the piece removed by a capture once executed.
	Captured Piece

	stampedMover bool
	stampedRook  bool
}

// NewMove creates a quiet move onto an empty square.
func NewMove(from, to Square, mover PieceType) Action {
	return Action{Kind: KindMove, From: from, To: to, Mover: mover, Victim: NoSquare,
		RookFrom: NoSquare, RookTo: NoSquare}
}

// NewCapture creates a capture of the piece standing on to.
func NewCapture(from, to Square, mover PieceType) Action {
	return Action{Kind: KindCapture, From: from, To: to, Mover: mover, Victim: NoSquare,
		RookFrom: NoSquare, RookTo: NoSquare}
}

// NewEnPassant creates a pawn capture onto the skipped square to, removing
// the pawn standing on victim.
func NewEnPassant(from, to, victim Square) Action {
	return Action{Kind: KindCapture, From: from, To: to, Mover: Pawn, Victim: victim,
		RookFrom: NoSquare, RookTo: NoSquare}
}

// NewCastle creates a castle moving both king and rook.
func NewCastle(kingFrom, kingTo, rookFrom, rookTo Square) Action {
	return Action{Kind: KindCastle, From: kingFrom, To: kingTo, Mover: King, Victim: NoSquare,
		RookFrom: rookFrom, RookTo: rookTo}
}

// Start returns the origin square of the moving piece.
func (a Action) Start() Square {
	return a.From
}

// Target returns the landing square of the moving piece.
func (a Action) Target() Square {
	return a.To
}

// IsCapture reports whether the action removes an opposing piece.
func (a Action) IsCapture() bool {
	return a.Kind == KindCapture || (a.Kind == KindPromote && a.Base == KindCapture)
}

// IsEnPassant reports whether the action is an en-passant capture.
func (a Action) IsEnPassant() bool {
	return a.Kind == KindCapture && a.Victim != NoSquare
}

// DoubleForward returns the en-passant record created by a pawn double push.
func (a Action) DoubleForward() (EnPassant, bool) {
	if a.Kind != KindMove || a.Mover != Pawn {
		return EnPassant{}, false
	}
	diff := a.To - a.From
	if diff != 2*North && diff != 2*South {
		return EnPassant{}, false
	}
	return EnPassant{Skipped: (a.From + a.To) / 2, Landing: a.To}, true
}

// AsPromotion expands a pawn move or capture into one Promote per piece a
// pawn may become. Castles and promotions cannot be promoted again.
func (a Action) AsPromotion(colour Colour) ([]Action, error) {
	switch a.Kind {
	case KindMove, KindCapture:
	default:
		return nil, &errors.MoveError{
			Err: errors.ErrInvalidMove, Start: a.From.String(), End: a.To.String(),
			Reason: fmt.Sprintf("cannot call AsPromotion on %s", a.Kind),
		}
	}
	out := make([]Action, 0, 4)
	for _, t := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		p := a
		p.Kind = KindPromote
		p.Base = a.Kind
		p.Promotion = t
		out = append(out, p)
	}
	return out, nil
}

// execute performs the action and returns the record to keep for undo.
func (a Action) execute(b *Board) (Action, error) {
	switch a.Kind {
	case KindMove:
		if target := b.PieceAt(a.To); target.IsPiece() {
			return a, a.moveError(errors.ErrInvalidMove,
				fmt.Sprintf("%s would be captured during a movement", target))
		}
		if _, err := b.MovePiece(a.From, a.To); err != nil {
			return a, err
		}
		return a, nil

	case KindCapture:
		return a.executeCapture(b)

	case KindCastle:
		if !b.PieceAt(a.From).IsPiece() || !b.PieceAt(a.RookFrom).IsPiece() {
			return a, a.moveError(errors.ErrInvalidMove, "castle without king and rook")
		}
		if !b.PieceAt(a.To).IsEmpty() || !b.PieceAt(a.RookTo).IsEmpty() {
			return a, a.moveError(errors.ErrInvalidMove, "castle destination is occupied")
		}
		if _, err := b.MovePiece(a.From, a.To); err != nil {
			return a, err
		}
		if _, err := b.MovePiece(a.RookFrom, a.RookTo); err != nil {
			b.MovePiece(a.To, a.From) //nolint:errcheck // reverting the leg that just succeeded
			return a, err
		}
		return a, nil

	case KindPromote:
		base := a
		base.Kind = a.Base
		if base.Kind != KindMove && base.Kind != KindCapture {
			return a, errors.Invariantf("promotion wraps %s", base.Kind)
		}
		if p := b.PieceAt(a.From); p.Type != Pawn {
			return a, a.moveError(errors.ErrInvalidMove, fmt.Sprintf("%s cannot promote", p))
		}
		done, err := base.execute(b)
		if err != nil {
			return a, err
		}
		pawn := b.cells[a.To]
		promoted := Piece{Type: a.Promotion, Colour: pawn.Colour}
		b.cells[a.To] = promoted
		a.Captured = done.Captured
		return a, nil

	default:
		return a, errors.Invariantf("unknown action kind %d", int(a.Kind))
	}
}

func (a Action) executeCapture(b *Board) (Action, error) {
	attacker := b.PieceAt(a.From)
	if !attacker.IsPiece() {
		return a, a.moveError(errors.ErrInvalidMove, "start is empty")
	}
	if a.Victim != NoSquare {
		victim := b.PieceAt(a.Victim)
		if !victim.IsPiece() || victim.Colour == attacker.Colour {
			return a, errors.Invariantf("en passant %s-%s finds no victim on %s", a.From, a.To, a.Victim)
		}
		if !b.PieceAt(a.To).IsEmpty() {
			return a, a.moveError(errors.ErrInvalidMove, "en passant destination is occupied")
		}
		if _, err := b.MovePiece(a.From, a.To); err != nil {
			return a, err
		}
		a.Captured = b.RemovePiece(a.Victim)
		return a, nil
	}

	defender := b.PieceAt(a.To)
	if !defender.IsPiece() || defender.Colour == attacker.Colour {
		return a, errors.Invariantf("capture %s-%s finds no defender", a.From, a.To)
	}
	captured, err := b.MovePiece(a.From, a.To)
	if err != nil {
		return a, err
	}
	a.Captured = captured
	return a, nil
}

// undo inverts an executed action.
func (a Action) undo(b *Board) error {
	switch a.Kind {
	case KindMove:
		return a.relocateBack(b, a.To, a.From)

	case KindCapture:
		if !a.Captured.IsPiece() {
			return errors.Invariantf("capture %s-%s has no captured piece to restore", a.From, a.To)
		}
		if err := a.relocateBack(b, a.To, a.From); err != nil {
			return err
		}
		at := a.To
		if a.Victim != NoSquare {
			at = a.Victim
		}
		return b.AddPiece(at, a.Captured)

	case KindCastle:
		if err := a.relocateBack(b, a.To, a.From); err != nil {
			return err
		}
		return a.relocateBack(b, a.RookTo, a.RookFrom)

	case KindPromote:
		promoted := b.PieceAt(a.To)
		if promoted.Type != a.Promotion {
			return errors.Invariantf("promotion on %s finds %s", a.To, promoted)
		}
		b.cells[a.To] = Piece{Type: Pawn, Colour: promoted.Colour}
		base := a
		base.Kind = a.Base
		return base.undo(b)

	default:
		return errors.Invariantf("unknown action kind %d", int(a.Kind))
	}
}

// relocateBack moves a piece back onto a square that must be empty.
func (a Action) relocateBack(b *Board, from, to Square) error {
	if !b.PieceAt(from).IsPiece() {
		return errors.Invariantf("undo of %s-%s finds no piece on %s", a.From, a.To, from)
	}
	if occupant := b.PieceAt(to); !occupant.IsEmpty() {
		return errors.Invariantf("undo of %s-%s finds %s on %s", a.From, a.To, occupant, to)
	}
	_, err := b.MovePiece(from, to)
	return err
}

func (a Action) moveError(err error, reason string) error {
	return &errors.MoveError{Err: err, Start: a.From.String(), End: a.To.String(), Reason: reason}
}
