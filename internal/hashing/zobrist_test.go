package hashing_test

import (
	"testing"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/engine"
	"github.com/lgbarn/mailbox-chess/internal/hashing"
)

func mustFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func play(t *testing.T, board *chess.Board, ucis ...string) {
	t.Helper()
	for _, uci := range ucis {
		moves, err := engine.LegalMoves(board)
		if err != nil {
			t.Fatal(err)
		}
		m, ok := moves.Find(uci)
		if !ok {
			t.Fatalf("%s is not legal in %s", uci, engine.BoardToFEN(board))
		}
		if err := board.Apply(m); err != nil {
			t.Fatal(err)
		}
	}
}

func TestHashDeterministic(t *testing.T) {
	a := engine.NewInitialBoard()
	b := engine.NewInitialBoard()
	if hashing.Hash(a) != hashing.Hash(b) {
		t.Error("same position should hash equal")
	}
	if hashing.Hash(a) == 0 {
		t.Error("initial position should not hash to zero")
	}
}

func TestHashTranspositions(t *testing.T) {
	a := engine.NewInitialBoard()
	play(t, a, "g1f3", "g8f6", "b1c3", "b8c6")
	b := engine.NewInitialBoard()
	play(t, b, "b1c3", "b8c6", "g1f3", "g8f6")

	if hashing.Hash(a) != hashing.Hash(b) {
		t.Error("transposed move orders should reach the same hash")
	}
}

func TestHashDistinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{
			name: "side to move",
			a:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			b:    "4k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name: "en passant record",
			a:    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			b:    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name: "castling rights",
			a:    "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			b:    "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1",
		},
		{
			name: "piece colour",
			a:    "4k3/8/8/8/8/8/3P4/4K3 w - - 0 1",
			b:    "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1",
		},
		{
			name: "piece type",
			a:    "4k3/8/8/8/8/8/3N4/4K3 w - - 0 1",
			b:    "4k3/8/8/8/8/8/3B4/4K3 w - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hashing.Hash(mustFEN(t, tt.a)) == hashing.Hash(mustFEN(t, tt.b)) {
				t.Errorf("%q and %q should hash differently", tt.a, tt.b)
			}
		})
	}
}

func TestHashIgnoresTurnNumber(t *testing.T) {
	a := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	b := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 40")
	if hashing.Hash(a) != hashing.Hash(b) {
		t.Error("the fullmove number should not change the hash")
	}
}

func TestHashRestoredByUndo(t *testing.T) {
	board := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := hashing.Hash(board)
	play(t, board, "e1g1", "b4c3", "a2a4", "a6b5")
	if hashing.Hash(board) == before {
		t.Fatal("hash unchanged after four plies")
	}
	for i := 0; i < 4; i++ {
		if err := board.UndoLast(); err != nil {
			t.Fatal(err)
		}
	}
	if hashing.Hash(board) != before {
		t.Error("undoing every ply should restore the hash")
	}
}

func TestHashKingReturnLosesCastling(t *testing.T) {
	board := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	before := hashing.Hash(board)
	play(t, board, "e1f1", "e8f8", "f1e1", "f8e8")
	if hashing.Hash(board) == before {
		t.Error("kings that moved and came back should not hash like unmoved kings")
	}
}
