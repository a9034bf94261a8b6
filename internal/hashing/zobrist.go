// Package hashing provides Zobrist position keys and the node-count cache
// used by cached enumeration.
package hashing

import (
	"golang.org/x/exp/rand"

	"github.com/lgbarn/mailbox-chess/internal/chess"
)

// Zobrist keys for pieces, unmoved kings and rooks, en passant and side to move.
var (
	zobristPiece     [2][chess.NumPieceTypes][64]uint64
	zobristUnmoved   [64]uint64 // XORed for a king or rook that has not moved
	zobristEnPassant [64]uint64 // indexed by the skipped square
	zobristSide      uint64     // XORed when Black is to move
)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so keys are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := range zobristPiece {
		for t := chess.Pawn; t < chess.NumPieceTypes; t++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][t][sq] = rnd.Uint64()
			}
		}
	}
	for sq := 0; sq < 64; sq++ {
		zobristUnmoved[sq] = rnd.Uint64()
	}
	for sq := 0; sq < 64; sq++ {
		zobristEnPassant[sq] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash computes the Zobrist key of a position. Two boards with the same
// placement, side to move, castling eligibility and en-passant record hash
// equal; the turn number and history do not contribute.
func Hash(b *chess.Board) uint64 {
	var key uint64

	for i, sq := range chess.ToMailbox {
		p := b.PieceAt(sq)
		if !p.IsPiece() {
			continue
		}
		key ^= zobristPiece[p.Colour][p.Type][i]
		if (p.Type == chess.King || p.Type == chess.Rook) && !p.HasMoved() {
			key ^= zobristUnmoved[i]
		}
	}

	if b.SideToMove() == chess.Black {
		key ^= zobristSide
	}

	if ep, ok := b.EnPassant(); ok {
		key ^= zobristEnPassant[chess.ToBoard[ep.Skipped]]
	}

	return key
}
