// Package engine provides legal move generation, check detection, position
// import/export and move-path enumeration on top of the chess board.
package engine

import (
	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/errors"
)

// Pin describes a piece pinned to its own king.
type Pin struct {
	// Axis is the direction from the king towards the pinned piece.
	Axis int
	// Locked marks a piece pinned along more than one axis; it cannot move.
	Locked bool
}

// AttackData is the per-position analysis of the side to move: which of its
// pieces are pinned, how many enemy pieces give check, and which squares a
// non-king move must land on to resolve a single check.
type AttackData struct {
	King   chess.Square
	Colour chess.Colour
	Pins   map[chess.Square]Pin
	Checks int

	resolve [chess.GridSize]bool
}

// InCheck reports whether the king is attacked.
func (d *AttackData) InCheck() bool {
	return d.Checks > 0
}

// DoubleCheck reports whether two pieces attack the king at once.
func (d *AttackData) DoubleCheck() bool {
	return d.Checks > 1
}

// Resolves reports whether a non-king move landing on sq is compatible with
// the current check state.
func (d *AttackData) Resolves(sq chess.Square) bool {
	return d.Checks == 0 || d.resolve[sq]
}

// IsPinned reports whether the piece on sq is pinned.
func (d *AttackData) IsPinned(sq chess.Square) bool {
	_, ok := d.Pins[sq]
	return ok
}

// allows reports whether the piece on from may travel along dir.
func (d *AttackData) allows(from chess.Square, dir int) bool {
	pin, ok := d.Pins[from]
	if !ok {
		return true
	}
	if pin.Locked {
		return false
	}
	return dir == pin.Axis || dir == -pin.Axis
}

func (d *AttackData) pin(sq chess.Square, axis int) {
	if existing, ok := d.Pins[sq]; ok {
		if existing.Axis != axis {
			existing.Locked = true
			d.Pins[sq] = existing
		}
		return
	}
	d.Pins[sq] = Pin{Axis: axis}
}

// ComputeAttackData analyses the position from the king of the side to move.
// A missing or misplaced king is an internal invariant failure.
func ComputeAttackData(b *chess.Board) (AttackData, error) {
	colour := b.SideToMove()
	king := b.King(colour)
	if p := b.PieceAt(king); p.Type != chess.King || p.Colour != colour {
		return AttackData{}, errors.Invariantf("%s king not found (tracked on %s)", colour, king)
	}

	data := AttackData{
		King:   king,
		Colour: colour,
		Pins:   make(map[chess.Square]Pin),
	}

	for _, dir := range chess.Directions {
		first, p, ok := b.Ray(king, dir)
		if !ok {
			continue
		}
		if p.Colour == colour {
			if _, behind, ok := b.Ray(first, dir); ok && behind.Colour != colour && behind.HasDirection(dir) {
				data.pin(first, dir)
			}
			continue
		}
		if !attacksAlong(p, first, king, dir) {
			continue
		}
		data.Checks++
		for sq := king + chess.Square(dir); ; sq += chess.Square(dir) {
			data.resolve[sq] = true
			if sq == first {
				break
			}
		}
	}

	for _, off := range chess.KnightOffsets {
		sq := king + chess.Square(off)
		if p := b.PieceAt(sq); p.Type == chess.Knight && p.Colour != colour {
			data.Checks++
			data.resolve[sq] = true
		}
	}
	return data, nil
}

// attacksAlong reports whether the piece on from, found walking from target
// along dir, attacks target.
func attacksAlong(p chess.Piece, from, target chess.Square, dir int) bool {
	if p.IsSliding() {
		return p.HasDirection(dir)
	}
	return p.Attacks(int(target - from))
}

// view is a board as seen with a few cells substituted, used to test a move
// for king safety without executing it.
type view struct {
	b      *chess.Board
	vacant [2]chess.Square
	filled chess.Square
	piece  chess.Piece
}

func (v view) at(sq chess.Square) chess.Piece {
	if sq == v.filled {
		return v.piece
	}
	if sq == v.vacant[0] || sq == v.vacant[1] {
		return chess.EmptyPiece
	}
	return v.b.PieceAt(sq)
}

func (v view) attacked(target chess.Square, by chess.Colour) bool {
	for _, dir := range chess.Directions {
		for sq := target + chess.Square(dir); ; sq += chess.Square(dir) {
			p := v.at(sq)
			if p.IsOff() {
				break
			}
			if p.IsEmpty() {
				continue
			}
			if p.Colour == by && attacksAlong(p, sq, target, dir) {
				return true
			}
			break
		}
	}
	for _, off := range chess.KnightOffsets {
		if p := v.at(target + chess.Square(off)); p.Type == chess.Knight && p.Colour == by {
			return true
		}
	}
	return false
}

// SquareAttacked reports whether any piece of colour by attacks target.
// The piece on ignore, if any, is treated as absent so a king cannot shield
// the squares behind it from a slider.
func SquareAttacked(b *chess.Board, target chess.Square, by chess.Colour, ignore chess.Square) bool {
	return view{b: b, vacant: [2]chess.Square{ignore, chess.NoSquare}, filled: chess.NoSquare}.attacked(target, by)
}

// CanKingMove reports whether the king of colour standing on from may step to
// to: the destination must be on the board, not hold a friendly piece, and
// not be attacked once the king has left from.
func CanKingMove(b *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	target := b.PieceAt(to)
	if target.IsOff() || (target.IsPiece() && target.Colour == colour) {
		return false
	}
	return !SquareAttacked(b, to, colour.Opposite(), from)
}

// exposesKing reports whether moving the piece on from to to while removing the
// piece on captured leaves the king of colour attacked. Used for en passant,
// where two squares on the king's rank may empty at once.
func exposesKing(b *chess.Board, colour chess.Colour, king, from, to, captured chess.Square) bool {
	v := view{
		b:      b,
		vacant: [2]chess.Square{from, captured},
		filled: to,
		piece:  b.PieceAt(from),
	}
	return v.attacked(king, colour.Opposite())
}
