package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxFullmove bounds the fullmove number so the turn counter can never reach
// chess.Unmoved during play.
const MaxFullmove = 1 << 30

// fenField is one whitespace separated field with its offset in the input.
type fenField struct {
	text   string
	offset int
}

func splitFEN(fen string) []fenField {
	var fields []fenField
	start := -1
	for i, r := range fen {
		if unicode.IsSpace(r) {
			if start >= 0 {
				fields = append(fields, fenField{fen[start:i], start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, fenField{fen[start:], start})
	}
	return fields
}

func fenError(offset int, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidBoard, Offset: offset, Expected: expected, Got: got}
}

// NewBoardFromFEN creates a board from a FEN string. Only the piece placement
// field is required. When the castling field is present, kings and rooks
// without a matching right are marked as already moved; when absent, every
// king and rook is considered unmoved.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	fields := splitFEN(fen)
	if len(fields) == 0 {
		return nil, fenError(0, "piece placement", "empty string")
	}
	if len(fields) > 6 {
		return nil, fenError(fields[6].offset, "at most 6 fields", fields[6].text)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, fields[0]); err != nil {
		return nil, err
	}

	black := false
	if len(fields) > 1 {
		switch fields[1].text {
		case "w":
		case "b":
			black = true
			board.SetTurn(2)
		default:
			return nil, fenError(fields[1].offset, "side to move w or b", strconv.Quote(fields[1].text))
		}
	}
	if len(fields) > 2 {
		if err := parseCastlingRights(board, fields[2]); err != nil {
			return nil, err
		}
	}
	if len(fields) > 3 {
		if err := parseEnPassant(board, fields[3], black); err != nil {
			return nil, err
		}
	}
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4].text); err != nil || n < 0 {
			return nil, fenError(fields[4].offset, "halfmove clock", strconv.Quote(fields[4].text))
		}
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5].text)
		if err != nil || n < 1 || n > MaxFullmove {
			return nil, fenError(fields[5].offset, "fullmove number", strconv.Quote(fields[5].text))
		}
		turn := uint32(2*(n-1) + 1)
		if black {
			turn++
		}
		board.SetTurn(turn)
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(board *chess.Board, field fenField) error {
	rank := chess.BoardSize
	file := 0

	for i := 0; i < len(field.text); i++ {
		c := field.text[i]
		offset := field.offset + i
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fenError(offset, fmt.Sprintf("8 squares in rank %d", rank), strconv.Itoa(file))
			}
			rank--
			file = 0
			if rank < 1 {
				return fenError(offset, "8 ranks", "extra rank")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fenError(offset, fmt.Sprintf("8 squares in rank %d", rank), strconv.Itoa(file))
			}
		default:
			t := chess.PieceTypeFromLetter(c)
			if t == chess.Empty {
				return fenError(offset, "piece letter or digit", strconv.QuoteRune(rune(c)))
			}
			if file >= chess.BoardSize {
				return fenError(offset, fmt.Sprintf("8 squares in rank %d", rank), strconv.Itoa(file+1))
			}
			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			if t == chess.King && board.King(colour) != chess.NoSquare {
				return fenError(offset, "one king per colour", "second "+colour.String()+" king")
			}
			if err := board.AddPiece(chess.SquareAt(file, rank), chess.NewPiece(colour, t)); err != nil {
				return errors.Wrapf(err, "offset %d", offset)
			}
			file++
		}
	}

	end := field.offset + len(field.text)
	if file != chess.BoardSize {
		return fenError(end, fmt.Sprintf("8 squares in rank %d", rank), strconv.Itoa(file))
	}
	if rank != 1 {
		return fenError(end, "8 ranks", strconv.Itoa(chess.BoardSize-rank+1))
	}
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if board.King(colour) == chess.NoSquare {
			return fenError(end, colour.String()+" king", "none")
		}
	}
	return nil
}

// castlingRight links a castling letter to the king and rook it keeps unmoved.
type castlingRight struct {
	letter byte
	colour chess.Colour
	corner int
}

var castlingRights = []castlingRight{
	{'K', chess.White, 7},
	{'Q', chess.White, 0},
	{'k', chess.Black, 7},
	{'q', chess.Black, 0},
}

// parseCastlingRights stamps every king and rook not backed by a right as
// moved before the imported position.
func parseCastlingRights(board *chess.Board, field fenField) error {
	keep := make(map[chess.Square]bool)
	if field.text != "-" {
		for i := 0; i < len(field.text); i++ {
			var right *castlingRight
			for j := range castlingRights {
				if castlingRights[j].letter == field.text[i] {
					right = &castlingRights[j]
				}
			}
			if right == nil {
				return fenError(field.offset+i, "castling right KQkq or -", strconv.QuoteRune(rune(field.text[i])))
			}
			home := chess.HomeRank(right.colour)
			keep[chess.SquareAt(4, home)] = true
			keep[chess.SquareAt(right.corner, home)] = true
		}
	}

	for _, p := range board.Placements() {
		if (p.Piece.Type == chess.King || p.Piece.Type == chess.Rook) && !keep[p.Square] {
			board.MarkMoved(p.Square)
		}
	}
	return nil
}

// parseEnPassant seeds the en-passant record from the target square field.
// The pawn that just double pushed must stand in front of the target square.
func parseEnPassant(board *chess.Board, field fenField, blackToMove bool) error {
	if field.text == "-" {
		return nil
	}
	skipped, err := chess.ParseSquare(field.text)
	if err != nil {
		return fenError(field.offset, "en passant square or -", strconv.Quote(field.text))
	}

	// The side that just moved is the one not to move.
	pusher := chess.Black
	if blackToMove {
		pusher = chess.White
	}
	if skipped.Rank() != skippedRank(pusher) {
		return fenError(field.offset, fmt.Sprintf("en passant square on rank %d", skippedRank(pusher)), field.text)
	}
	landing := skipped + chess.Square(chess.PawnPush(pusher))
	if p := board.PieceAt(landing); p.Type != chess.Pawn || p.Colour != pusher {
		return fenError(field.offset, pusher.String()+" pawn on "+landing.String(), p.String())
	}
	board.SetEnPassant(chess.EnPassant{Skipped: skipped, Landing: landing})
	return nil
}

// skippedRank returns the rank a double push of colour jumps over.
func skippedRank(c chess.Colour) int {
	if c == chess.White {
		return 3
	}
	return 6
}

// BoardToFEN converts a board to a FEN string. Castling rights are derived
// from the first-move markers of the kings and corner rooks.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if board.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	if ep, ok := board.EnPassant(); ok {
		sb.WriteString(ep.Skipped.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " 0 %d", (board.Turn()+1)/2)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	emptyCount := 0
	for i, p := range board.Placements() {
		if p.Piece.IsPiece() {
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Piece.FENLetter())
		} else {
			emptyCount++
		}
		if i%chess.BoardSize == chess.BoardSize-1 {
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			if i < 63 {
				sb.WriteByte('/')
			}
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, right := range castlingRights {
		home := chess.HomeRank(right.colour)
		king := board.PieceAt(chess.SquareAt(4, home))
		rook := board.PieceAt(chess.SquareAt(right.corner, home))
		if king.Type != chess.King || king.Colour != right.colour || king.HasMoved() {
			continue
		}
		if rook.Type != chess.Rook || rook.Colour != right.colour || rook.HasMoved() {
			continue
		}
		sb.WriteByte(right.letter)
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, err := NewBoardFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return board
}
