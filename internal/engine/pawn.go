package engine

import "github.com/lgbarn/mailbox-chess/internal/chess"

// pawnMoves generates pushes, captures, en passant and promotions.
func (g *generator) pawnMoves(from chess.Square) error {
	push := chess.PawnPush(g.colour)

	one := from + chess.Square(push)
	if g.b.PieceAt(one).IsEmpty() && g.data.allows(from, push) {
		if g.data.Resolves(one) {
			if err := g.addPawn(chess.NewMove(from, one, chess.Pawn)); err != nil {
				return err
			}
		}
		two := one + chess.Square(push)
		if from.Rank() == chess.PawnStartRank(g.colour) && g.b.PieceAt(two).IsEmpty() && g.data.Resolves(two) {
			g.moves = append(g.moves, chess.NewMove(from, two, chess.Pawn))
		}
	}

	for _, dir := range chess.PawnCaptures(g.colour) {
		to := from + chess.Square(dir)
		target := g.b.PieceAt(to)
		if !target.IsPiece() || target.Colour == g.colour {
			continue
		}
		if g.data.allows(from, dir) && g.data.Resolves(to) {
			if err := g.addPawn(chess.NewCapture(from, to, chess.Pawn)); err != nil {
				return err
			}
		}
	}

	g.enPassant(from)
	return nil
}

// addPawn appends a pawn action, expanded into promotions on the last rank.
func (g *generator) addPawn(a chess.Action) error {
	if a.Target().Rank() != chess.PromotionRank(g.colour) {
		g.moves = append(g.moves, a)
		return nil
	}
	promotions, err := a.AsPromotion(g.colour)
	if err != nil {
		return err
	}
	g.moves = append(g.moves, promotions...)
	return nil
}

// enPassant adds the en-passant capture of from if the last action was a
// double push next to it. Both the capturing and the captured pawn leave
// their squares, so the capture is tested against the full attack picture
// instead of the pin and check tables.
func (g *generator) enPassant(from chess.Square) {
	ep, ok := g.b.EnPassant()
	if !ok {
		return
	}
	victim := g.b.PieceAt(ep.Landing)
	if victim.Type != chess.Pawn || victim.Colour == g.colour || !g.b.PieceAt(ep.Skipped).IsEmpty() {
		return
	}
	for _, dir := range chess.PawnCaptures(g.colour) {
		if from+chess.Square(dir) != ep.Skipped {
			continue
		}
		if exposesKing(g.b, g.colour, g.data.King, from, ep.Skipped, ep.Landing) {
			return
		}
		g.moves = append(g.moves, chess.NewEnPassant(from, ep.Skipped, ep.Landing))
		return
	}
}
