package chess

import (
	"strings"

	"github.com/lgbarn/mailbox-chess/internal/errors"
)

// EnPassant records a pawn double push: the square it skipped and the square
// it landed on. It is valid for one ply only.
type EnPassant struct {
	Skipped Square
	Landing Square
}

// Board represents a chess position together with the history of actions
// that led to it from the imported position.
type Board struct {
	// Padded grid; padding cells hold OffPiece.
	cells [GridSize]Piece

	// Turn counter; odd turns belong to White, even turns to Black.
	turn uint32

	// King squares indexed by Colour.
	kings [2]Square

	// En-passant record of the last applied action.
	enPassant    EnPassant
	hasEnPassant bool

	// En-passant record of the imported position, restored once the
	// history is fully undone.
	startEnPassant    EnPassant
	hasStartEnPassant bool

	history []Action
}

// NewBoard creates an empty board: playable squares empty, White to move.
func NewBoard() *Board {
	b := &Board{
		turn:  1,
		kings: [2]Square{NoSquare, NoSquare},
	}
	for i := range b.cells {
		if ToBoard[i] == -1 {
			b.cells[i] = OffPiece
		} else {
			b.cells[i] = EmptyPiece
		}
	}
	return b
}

// PieceAt returns the content of a grid cell. Indices outside the grid read
// as padding.
func (b *Board) PieceAt(sq Square) Piece {
	if sq < 0 || sq >= GridSize {
		return OffPiece
	}
	return b.cells[sq]
}

// MovePiece relocates the piece on start to end and returns whatever stood on
// end (EmptyPiece if nothing). The board is unchanged on error.
func (b *Board) MovePiece(start, end Square) (Piece, error) {
	current := b.PieceAt(start)
	if !current.IsPiece() {
		return EmptyPiece, &errors.MoveError{
			Err: errors.ErrInvalidMove, Start: start.String(), End: end.String(),
			Reason: "start is empty",
		}
	}
	if !end.IsInside() {
		return EmptyPiece, &errors.MoveError{
			Err: errors.ErrInvalidRemoval, Start: start.String(), End: end.String(),
			Reason: "cannot add a piece outside the board",
		}
	}
	removed := b.cells[end]
	b.cells[end] = current
	b.cells[start] = EmptyPiece
	return removed, nil
}

// AddPiece places a piece on an empty playable square.
func (b *Board) AddPiece(sq Square, p Piece) error {
	if !sq.IsInside() {
		return &errors.RemovalError{
			Err: errors.ErrInvalidRemoval, Square: sq.String(),
			Reason: "cannot add a piece outside the board",
		}
	}
	if b.cells[sq].IsPiece() {
		return &errors.RemovalError{
			Err: errors.ErrInvalidRemoval, Square: sq.String(),
			Reason: "cannot add a piece to a non empty square",
		}
	}
	if !p.IsPiece() {
		return &errors.RemovalError{
			Err: errors.ErrInvalidRemoval, Square: sq.String(),
			Reason: "cannot add " + p.Type.String(),
		}
	}
	b.cells[sq] = p
	if p.Type == King {
		b.kings[p.Colour] = sq
	}
	return nil
}

// RemovePiece empties a playable square and returns what stood there.
// Padding and empty squares return EmptyPiece.
func (b *Board) RemovePiece(sq Square) Piece {
	if !sq.IsInside() || !b.cells[sq].IsPiece() {
		return EmptyPiece
	}
	p := b.cells[sq]
	b.cells[sq] = EmptyPiece
	if p.Type == King && b.kings[p.Colour] == sq {
		b.kings[p.Colour] = NoSquare
	}
	return p
}

// MarkMoved stamps a rook or king as having moved before the imported
// position, which removes its castling eligibility permanently.
func (b *Board) MarkMoved(sq Square) {
	p := b.PieceAt(sq)
	if p.Type == Rook || p.Type == King {
		p.FirstMove = 0
		b.cells[sq] = p
	}
}

// Ray walks from sq along dir and returns the first occupied square.
// ok is false when the ray leaves the board first.
func (b *Board) Ray(sq Square, dir int) (Square, Piece, bool) {
	for pos := sq + Square(dir); ; pos += Square(dir) {
		p := b.PieceAt(pos)
		switch {
		case p.IsOff():
			return NoSquare, OffPiece, false
		case p.IsPiece():
			return pos, p, true
		}
	}
}

// Turn returns the turn counter.
func (b *Board) Turn() uint32 {
	return b.turn
}

// SetTurn sets the turn counter of an imported position.
func (b *Board) SetTurn(turn uint32) {
	b.turn = turn
}

// SideToMove derives the colour to move from the turn parity.
func (b *Board) SideToMove() Colour {
	if b.turn&1 == 0 {
		return Black
	}
	return White
}

// King returns the king square of a colour, NoSquare if none is tracked.
func (b *Board) King(c Colour) Square {
	return b.kings[c]
}

// EnPassant returns the current en-passant record.
func (b *Board) EnPassant() (EnPassant, bool) {
	return b.enPassant, b.hasEnPassant
}

// SetEnPassant seeds the en-passant record of an imported position.
func (b *Board) SetEnPassant(ep EnPassant) {
	b.enPassant, b.hasEnPassant = ep, true
	b.startEnPassant, b.hasStartEnPassant = ep, true
}

// History returns a copy of the applied actions, oldest first.
func (b *Board) History() []Action {
	out := make([]Action, len(b.history))
	copy(out, b.history)
	return out
}

// LastAction returns the most recent applied action.
func (b *Board) LastAction() (Action, bool) {
	if len(b.history) == 0 {
		return Action{}, false
	}
	return b.history[len(b.history)-1], true
}

// Apply executes an action and records it. On error the board is left as it
// was and nothing is recorded.
func (b *Board) Apply(a Action) error {
	done, err := a.execute(b)
	if err != nil {
		return err
	}

	b.hasEnPassant = false
	moved := b.cells[done.To]
	if done.Mover < Pawn {
		done.Mover = moved.Type
		if done.Kind == KindPromote {
			done.Mover = Pawn
		}
	}
	switch moved.Type {
	case King:
		b.kings[moved.Colour] = done.To
		done.stampedMover = b.stamp(done.To)
	case Rook:
		done.stampedMover = b.stamp(done.To)
	case Pawn:
		if done.Kind == KindMove {
			b.enPassant, b.hasEnPassant = done.DoubleForward()
		}
	}
	if done.Kind == KindCastle {
		done.stampedRook = b.stamp(done.RookTo)
	}

	b.history = append(b.history, done)
	b.turn++
	return nil
}

// stamp sets the first-move marker of an unmoved piece to the current turn.
func (b *Board) stamp(sq Square) bool {
	p := b.cells[sq]
	if p.FirstMove != Unmoved {
		return false
	}
	p.FirstMove = b.turn
	b.cells[sq] = p
	return true
}

// UndoLast reverts the most recent action.
func (b *Board) UndoLast() error {
	n := len(b.history)
	if n == 0 {
		return &errors.MoveError{Err: errors.ErrInvalidMove, Reason: "no action to undo"}
	}
	last := b.history[n-1]
	if err := last.undo(b); err != nil {
		return err
	}

	moved := b.cells[last.From]
	if last.stampedMover {
		moved.FirstMove = Unmoved
		b.cells[last.From] = moved
	}
	if moved.Type == King {
		b.kings[moved.Colour] = last.From
	}
	if last.stampedRook {
		rook := b.cells[last.RookFrom]
		rook.FirstMove = Unmoved
		b.cells[last.RookFrom] = rook
	}

	b.history = b.history[:n-1]
	b.turn--

	b.hasEnPassant = false
	if top, ok := b.LastAction(); ok {
		if top.Mover == Pawn && top.Kind == KindMove {
			b.enPassant, b.hasEnPassant = top.DoubleForward()
		}
	} else if b.hasStartEnPassant {
		b.enPassant, b.hasEnPassant = b.startEnPassant, true
	}
	return nil
}

// Placement pairs a playable square with its content.
type Placement struct {
	Square Square
	Piece  Piece
}

// Placements lists all 64 playable squares from a8 to h1.
func (b *Board) Placements() []Placement {
	out := make([]Placement, 0, len(ToMailbox))
	for _, sq := range ToMailbox {
		out = append(out, Placement{Square: sq, Piece: b.cells[sq]})
	}
	return out
}

// Clone creates a deep copy of the board, history included.
func (b *Board) Clone() *Board {
	c := *b
	c.history = make([]Action, len(b.history), cap(b.history))
	copy(c.history, b.history)
	return &c
}

// Snapshot captures all observable board state for comparisons.
type Snapshot struct {
	Cells        [GridSize]Piece
	Turn         uint32
	Kings        [2]Square
	EnPassant    EnPassant
	HasEnPassant bool
	HistoryLen   int
}

// Snapshot returns the current observable state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Cells:        b.cells,
		Turn:         b.turn,
		Kings:        b.kings,
		EnPassant:    b.enPassant,
		HasEnPassant: b.hasEnPassant,
		HistoryLen:   len(b.history),
	}
}

// String renders the board as an 8x8 diagram, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for i, sq := range ToMailbox {
		p := b.cells[sq]
		if p.IsPiece() {
			sb.WriteByte(p.FENLetter())
		} else {
			sb.WriteByte('.')
		}
		if i%BoardSize == BoardSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
