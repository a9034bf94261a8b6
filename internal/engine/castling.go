package engine

import "github.com/lgbarn/mailbox-chess/internal/chess"

// castles adds the castles available to the side to move. The king must be
// unmoved on its home square and not in check; the rook must be unmoved on the
// corner of the same rank with nothing in between; the squares the king
// crosses and lands on must not be attacked.
func (g *generator) castles() {
	if g.data.InCheck() {
		return
	}
	from := g.data.King
	home := chess.HomeRank(g.colour)
	if from != chess.SquareAt(4, home) || g.b.PieceAt(from).HasMoved() {
		return
	}

	enemy := g.colour.Opposite()
	for _, side := range [2]struct {
		dir    int
		corner chess.Square
	}{
		{chess.East, chess.SquareAt(7, home)},
		{chess.West, chess.SquareAt(0, home)},
	} {
		rookSq, rook, ok := g.b.Ray(from, side.dir)
		if !ok || rookSq != side.corner {
			continue
		}
		if rook.Type != chess.Rook || rook.Colour != g.colour || rook.HasMoved() {
			continue
		}
		transit := from + chess.Square(side.dir)
		to := transit + chess.Square(side.dir)
		if SquareAttacked(g.b, transit, enemy, from) || SquareAttacked(g.b, to, enemy, from) {
			continue
		}
		g.moves = append(g.moves, chess.NewCastle(from, to, rookSq, transit))
	}
}
