package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/errors"
	"github.com/lgbarn/mailbox-chess/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(t *testing.T, b *chess.Board)
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(t *testing.T, b *chess.Board) {
				testutil.AssertEqual(t, b.PieceAt(testutil.Sq(t, "e1")), chess.W(chess.King))
				testutil.AssertEqual(t, b.PieceAt(testutil.Sq(t, "e8")), chess.B(chess.King))
				testutil.AssertEqual(t, b.PieceAt(testutil.Sq(t, "a8")), chess.B(chess.Rook))
				testutil.AssertEqual(t, b.PieceAt(testutil.Sq(t, "d2")), chess.W(chess.Pawn))
				testutil.AssertEqual(t, b.King(chess.White), testutil.Sq(t, "e1"))
				testutil.AssertEqual(t, b.Turn(), uint32(1))
				testutil.AssertEqual(t, b.SideToMove(), chess.White)
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/R3K2R",
			checkFn: func(t *testing.T, b *chess.Board) {
				testutil.AssertEqual(t, b.Turn(), uint32(1))
				testutil.AssertFalse(t, b.PieceAt(testutil.Sq(t, "a1")).HasMoved(), "a1 rook unmoved")
				testutil.AssertFalse(t, b.PieceAt(testutil.Sq(t, "e8")).HasMoved(), "e8 king unmoved")
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(t *testing.T, b *chess.Board) {
				testutil.AssertEqual(t, b.SideToMove(), chess.Black)
				testutil.AssertEqual(t, b.Turn(), uint32(2))
				ep, ok := b.EnPassant()
				testutil.AssertTrue(t, ok, "en-passant record")
				testutil.AssertEqual(t, ep, chess.EnPassant{Skipped: testutil.Sq(t, "e3"), Landing: testutil.Sq(t, "e4")})
			},
		},
		{
			name: "fullmove number",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			checkFn: func(t *testing.T, b *chess.Board) {
				testutil.AssertEqual(t, b.Turn(), uint32(3))
				testutil.AssertEqual(t, b.SideToMove(), chess.White)
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
			checkFn: func(t *testing.T, b *chess.Board) {
				testutil.AssertFalse(t, b.PieceAt(testutil.Sq(t, "e1")).HasMoved(), "e1")
				testutil.AssertFalse(t, b.PieceAt(testutil.Sq(t, "h1")).HasMoved(), "h1")
				testutil.AssertTrue(t, b.PieceAt(testutil.Sq(t, "a1")).HasMoved(), "a1")
				testutil.AssertFalse(t, b.PieceAt(testutil.Sq(t, "e8")).HasMoved(), "e8")
				testutil.AssertFalse(t, b.PieceAt(testutil.Sq(t, "a8")).HasMoved(), "a8")
				testutil.AssertTrue(t, b.PieceAt(testutil.Sq(t, "h8")).HasMoved(), "h8")
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(t *testing.T, b *chess.Board) {
				for _, name := range []string{"a1", "e1", "h1", "a8", "e8", "h8"} {
					testutil.AssertTrue(t, b.PieceAt(testutil.Sq(t, name)).HasMoved(), name)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoardFromFEN(tt.fen)
			testutil.RequireNoError(t, err)
			tt.checkFn(t, b)
		})
	}
}

func TestNewBoardFromFENErrors(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		offset int
	}{
		{"empty string", "", 0},
		{"bad character", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX", 42},
		{"rank too short", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", 16},
		{"digit out of range", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR", 18},
		{"rank overflow with pieces", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", 8},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR", 41},
		{"nine ranks", "rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR", 36},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3", 18},
		{"no black king", "8/8/8/8/8/8/8/4K3", 17},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x", 20},
		{"bad castling letter", "4k3/8/8/8/8/8/8/4K3 w X", 22},
		{"bad en passant square", "4k3/8/8/8/8/8/8/4K3 w - e4", 24},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 w - e6", 24},
		{"bad halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x", 26},
		{"bad fullmove number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", 28},
		{"fullmove reaching the unmoved marker", "4k3/8/8/8/8/8/8/4K3 w - - 0 2147483648", 28},
		{"fullmove wrapping the turn counter", "4k3/8/8/8/8/8/8/4K3 w - - 0 2147483649", 28},
		{"fullmove above the limit", "4k3/8/8/8/8/8/8/4K3 b - - 0 1073741825", 28},
		{"too many fields", "4k3/8/8/8/8/8/8/4K3 w - - 0 1 extra", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidBoard)
			var pe *errors.ParseError
			if !stderrors.As(err, &pe) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			testutil.AssertEqual(t, pe.Offset, tt.offset, "offset in %q", tt.fen)
		})
	}
}

func TestNewBoardFromFENLargeFullmove(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1073741824")
	testutil.AssertEqual(t, b.Turn(), uint32(2*(MaxFullmove-1)+2))

	moves, err := LegalMoves(b)
	testutil.RequireNoError(t, err)
	kingStep, ok := moves.Find("e8f8")
	testutil.AssertTrue(t, ok, "e8f8 listed")
	testutil.RequireNoError(t, b.Apply(kingStep))
	testutil.AssertTrue(t, b.PieceAt(testutil.Sq(t, "f8")).HasMoved(), "king stamped as moved")
	testutil.AssertEqual(t, BoardToFEN(b), "r4k1r/8/8/8/8/8/8/R3K2R w KQ - 0 1073741825")
}

func TestBoardToFEN(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 8",
	}
	for _, fen := range fens {
		b := mustFEN(t, fen)
		testutil.AssertEqual(t, BoardToFEN(b), fen)
	}
}

func TestBoardToFENAfterMoves(t *testing.T) {
	b := NewInitialBoard()
	for _, uci := range []string{"e2e4", "c7c5", "g1f3"} {
		moves, err := LegalMoves(b)
		testutil.RequireNoError(t, err)
		m, ok := moves.Find(uci)
		testutil.AssertTrue(t, ok, "%s listed", uci)
		testutil.RequireNoError(t, b.Apply(m))
	}
	testutil.AssertEqual(t, BoardToFEN(b), "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2")

	moves, _ := LegalMoves(b)
	pawn, ok := moves.Find("d7d6")
	testutil.AssertTrue(t, ok, "d7d6 listed")
	testutil.RequireNoError(t, b.Apply(pawn))
	moves, _ = LegalMoves(b)
	bishop, _ := moves.Find("f1e2")
	testutil.RequireNoError(t, b.Apply(bishop))
	moves, _ = LegalMoves(b)
	kingStep, ok := moves.Find("e8d7")
	testutil.AssertTrue(t, ok, "e8d7 listed")
	testutil.RequireNoError(t, b.Apply(kingStep))
	testutil.AssertEqual(t, BoardToFEN(b), "rnbq1bnr/pp1kpppp/3p4/2p5/4P3/5N2/PPPPBPPP/RNBQK2R w KQ - 0 4")
}
