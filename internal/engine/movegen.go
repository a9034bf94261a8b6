package engine

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/mailbox-chess/internal/chess"
)

// MoveList is the set of legal actions of a position.
type MoveList []chess.Action

// ByOrigin groups the actions by the square of the moving piece.
func (l MoveList) ByOrigin() map[chess.Square][]chess.Action {
	out := make(map[chess.Square][]chess.Action)
	for _, a := range l {
		out[a.Start()] = append(out[a.Start()], a)
	}
	return out
}

// Origins returns the squares that have at least one legal action, a8 first.
func (l MoveList) Origins() []chess.Square {
	origins := maps.Keys(l.ByOrigin())
	sort.Slice(origins, func(i, j int) bool { return origins[i] < origins[j] })
	return origins
}

// Notations renders every action in short algebraic form.
func (l MoveList) Notations(b *chess.Board) []string {
	out := make([]string, len(l))
	for i, a := range l {
		out[i] = a.Notation(b)
	}
	return out
}

// Find returns the action with the given long algebraic form.
func (l MoveList) Find(uci string) (chess.Action, bool) {
	for _, a := range l {
		if a.UCI() == uci {
			return a, true
		}
	}
	return chess.Action{}, false
}

// generator accumulates the legal actions of one position.
type generator struct {
	b      *chess.Board
	data   AttackData
	colour chess.Colour
	moves  MoveList
}

// LegalMoves returns every legal action of the side to move. An error is only
// returned when the board breaks an internal invariant.
func LegalMoves(b *chess.Board) (MoveList, error) {
	data, err := ComputeAttackData(b)
	if err != nil {
		return nil, err
	}
	g := &generator{
		b:      b,
		data:   data,
		colour: data.Colour,
		moves:  make(MoveList, 0, 48),
	}

	g.kingMoves()
	if data.DoubleCheck() {
		return g.moves, nil
	}
	g.castles()

	for _, sq := range chess.ToMailbox {
		p := b.PieceAt(sq)
		if !p.IsPiece() || p.Colour != g.colour {
			continue
		}
		switch p.Type {
		case chess.Pawn:
			if err := g.pawnMoves(sq); err != nil {
				return nil, err
			}
		case chess.Knight:
			g.knightMoves(sq)
		case chess.Bishop, chess.Rook, chess.Queen:
			g.slidingMoves(sq, p)
		}
	}
	return g.moves, nil
}

// add appends a move or capture onto to, depending on what stands there.
func (g *generator) add(from, to chess.Square, mover chess.PieceType) {
	if g.b.PieceAt(to).IsPiece() {
		g.moves = append(g.moves, chess.NewCapture(from, to, mover))
		return
	}
	g.moves = append(g.moves, chess.NewMove(from, to, mover))
}

func (g *generator) kingMoves() {
	from := g.data.King
	for _, dir := range chess.Directions {
		to := from + chess.Square(dir)
		if CanKingMove(g.b, g.colour, from, to) {
			g.add(from, to, chess.King)
		}
	}
}

func (g *generator) knightMoves(from chess.Square) {
	// A knight never stays on its pin axis.
	if g.data.IsPinned(from) {
		return
	}
	for _, off := range chess.KnightOffsets {
		to := from + chess.Square(off)
		target := g.b.PieceAt(to)
		if target.IsOff() || (target.IsPiece() && target.Colour == g.colour) {
			continue
		}
		if g.data.Resolves(to) {
			g.add(from, to, chess.Knight)
		}
	}
}

func (g *generator) slidingMoves(from chess.Square, p chess.Piece) {
	for _, dir := range chess.Directions {
		if !p.HasDirection(dir) || !g.data.allows(from, dir) {
			continue
		}
		for to := from + chess.Square(dir); ; to += chess.Square(dir) {
			target := g.b.PieceAt(to)
			if target.IsOff() {
				break
			}
			if target.IsEmpty() {
				if g.data.Resolves(to) {
					g.moves = append(g.moves, chess.NewMove(from, to, p.Type))
				}
				continue
			}
			if target.Colour != g.colour && g.data.Resolves(to) {
				g.moves = append(g.moves, chess.NewCapture(from, to, p.Type))
			}
			break
		}
	}
}
