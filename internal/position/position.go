//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package position

import (
	"fmt"

	"github.com/frankkopp/franky-core/internal/assert"
	. "github.com/frankkopp/franky-core/internal/types"
)

// UndoRecord captures everything MakeMove mutates so UnmakeMove can
// reverse it exactly: the captured piece (if any, and the
// square it sat on — which differs from the move's destination for en
// passant), the prior castling rights, en passant target, halfmove clock
// and Zobrist key, and the move itself.
type UndoRecord struct {
	Move           Move
	Captured       Piece
	CapturedSquare Square
	Castling       CastlingRights
	EnPassant      Square
	HalfmoveClock  uint32
	ZobristKey     Key
}

// Position is the authoritative game state: the board, side to
// move, castling rights, en passant target, halfmove clock, fullmove
// number, an incrementally maintained Zobrist key, and the undo-record
// history needed to roll back any sequence of MakeMove calls in reverse
// order.
type Position struct {
	board          Board
	sideToMove     Color
	castling       CastlingRights
	enPassant      Square
	halfmoveClock  uint32
	fullmoveNumber uint32
	key            Key

	history []UndoRecord

	// externalHistory holds Zobrist keys of positions reached before this
	// Position's own history begins: the core exposes the hook
	// (HistoryKeys) but leaves its population to the driver.
	externalHistory []Key
}

// Placement describes one occupied square, used by NewPosition for
// direct field-assignment construction.
type Placement struct {
	Square Square
	Piece  Piece
}

// NewStartPosition returns the standard chess starting position.
func NewStartPosition() *Position {
	placements := make([]Placement, 0, 32)
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		placements = append(placements,
			Placement{MakeSquare(f, 0), MakePiece(White, backRank[f])},
			Placement{MakeSquare(f, 1), MakePiece(White, Pawn)},
			Placement{MakeSquare(f, 6), MakePiece(Black, Pawn)},
			Placement{MakeSquare(f, 7), MakePiece(Black, backRank[f])},
		)
	}
	pos, err := NewPosition(placements, White, CastlingAll, SqNone, 0, 1)
	if err != nil {
		// the hardcoded starting position can never violate an invariant.
		panic(fmt.Sprintf("position: invalid built-in starting position: %v", err))
	}
	return pos
}

// NewPosition constructs a Position directly from its fields, validating
// every structural invariant. Returns ErrInvalidPosition, never panics,
// on malformed input.
func NewPosition(placements []Placement, sideToMove Color, castling CastlingRights, ep Square, halfmoveClock, fullmoveNumber uint32) (*Position, error) {
	p := &Position{
		sideToMove:     sideToMove,
		castling:       castling,
		enPassant:      ep,
		halfmoveClock:  halfmoveClock,
		fullmoveNumber: fullmoveNumber,
	}
	seen := make(map[Square]bool, len(placements))
	for _, pl := range placements {
		if !pl.Square.IsValid() {
			return nil, fmt.Errorf("%w: square %v out of range", ErrInvalidPosition, pl.Square)
		}
		if seen[pl.Square] {
			return nil, fmt.Errorf("%w: duplicate placement on %v", ErrInvalidPosition, pl.Square)
		}
		seen[pl.Square] = true
		p.board.SetPiece(pl.Square, pl.Piece)
	}
	if err := p.checkInvariants(); err != nil {
		return nil, err
	}
	p.key = computeKey(&p.board, p.sideToMove, p.castling, p.enPassant)
	return p, nil
}

// checkInvariants enforces the structural rules that a
// constructor (rather than make/unmake) must guard against.
func (p *Position) checkInvariants() error {
	whiteKings, blackKings := 0, 0
	for sq := Square(0); sq < 64; sq++ {
		piece := p.board.PieceAt(sq)
		if piece.IsEmpty() {
			continue
		}
		if piece.TypeOf() == King {
			if piece.ColorOf() == White {
				whiteKings++
			} else {
				blackKings++
			}
		}
		if piece.TypeOf() == Pawn && (sq.Rank() == 0 || sq.Rank() == 7) {
			return fmt.Errorf("%w: pawn on back rank %v", ErrInvalidPosition, sq)
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return fmt.Errorf("%w: expected exactly one king per color, got white=%d black=%d", ErrInvalidPosition, whiteKings, blackKings)
	}
	if p.enPassant != SqNone {
		if !p.enPassant.IsValid() {
			return fmt.Errorf("%w: en passant target %v out of range", ErrInvalidPosition, p.enPassant)
		}
		if !p.board.IsEmpty(p.enPassant) {
			return fmt.Errorf("%w: en passant target %v is occupied", ErrInvalidPosition, p.enPassant)
		}
	}
	return nil
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Castling returns the current castling rights.
func (p *Position) Castling() CastlingRights { return p.castling }

// EnPassant returns the en passant target square, or SqNone if none.
func (p *Position) EnPassant() Square { return p.enPassant }

// HalfmoveClock returns the count of plies since the last pawn move or capture.
func (p *Position) HalfmoveClock() uint32 { return p.halfmoveClock }

// FullmoveNumber returns the current full move number.
func (p *Position) FullmoveNumber() uint32 { return p.fullmoveNumber }

// Key returns the incrementally maintained Zobrist key.
func (p *Position) Key() Key { return p.key }

// Board gives read access to the piece array and attack queries.
func (p *Position) Board() *Board { return &p.board }

// HistoryDepth returns the number of moves that can currently be unmade.
func (p *Position) HistoryDepth() int { return len(p.history) }

// SetExternalHistory seeds the repetition-detection hook with the
// Zobrist keys of positions reached before this Position's own history
// begins.
func (p *Position) SetExternalHistory(keys []Key) {
	p.externalHistory = append([]Key(nil), keys...)
}

// HistoryKeys returns every position key reachable from this Position:
// the seeded external history, the key before each move still on the
// undo stack, and the current key.
func (p *Position) HistoryKeys() []Key {
	keys := make([]Key, 0, len(p.externalHistory)+len(p.history)+1)
	keys = append(keys, p.externalHistory...)
	for _, u := range p.history {
		keys = append(keys, u.ZobristKey)
	}
	keys = append(keys, p.key)
	return keys
}

// IsCheck reports whether the side to move is currently attacked.
func (p *Position) IsCheck() bool {
	return p.board.IsSquareAttacked(p.board.KingSquare(p.sideToMove), p.sideToMove.Flip())
}

// IsDrawByRule reports a 50-move or threefold-repetition draw.
func (p *Position) IsDrawByRule() bool {
	if p.halfmoveClock >= 100 {
		return true
	}
	matches := 0
	for _, k := range p.externalHistory {
		if k == p.key {
			matches++
		}
	}
	for _, u := range p.history {
		if u.ZobristKey == p.key {
			matches++
		}
	}
	return matches >= 2
}

// MakeMove mutates the position to reflect m and pushes an
// UndoRecord. The caller is responsible for only passing legal moves —
// legality pre-checking lives at the external interface (movegen /
// engine layer), not here, so this stays allocation-free on the hot
// path.
func (p *Position) MakeMove(m Move) {
	from, to, flag := m.From(), m.To(), m.Flag()
	us := p.sideToMove
	moving := p.board.PieceAt(from)
	if assert.DEBUG {
		assert.Assert(!moving.IsEmpty(), "MakeMove: no piece on origin square %v", from)
		assert.Assert(moving.ColorOf() == us, "MakeMove: piece on %v belongs to %v, not side to move %v", from, moving.ColorOf(), us)
	}

	capturedSq := to
	var captured Piece
	switch {
	case flag == EnPassant:
		capturedSq = MakeSquare(to.File(), from.Rank())
		captured = p.board.PieceAt(capturedSq)
	case flag.IsCapture():
		captured = p.board.PieceAt(to)
	}

	undo := UndoRecord{
		Move:           m,
		Captured:       captured,
		CapturedSquare: capturedSq,
		Castling:       p.castling,
		EnPassant:      p.enPassant,
		HalfmoveClock:  p.halfmoveClock,
		ZobristKey:     p.key,
	}

	// 1. remove any captured piece.
	if captured != PieceNone {
		p.key ^= pieceKey(captured, capturedSq)
		p.board.Clear(capturedSq)
	}

	// 2. move the mover, promoting if required.
	p.board.Clear(from)
	p.key ^= pieceKey(moving, from)
	movedPiece := moving
	if flag.IsPromotion() {
		movedPiece = MakePiece(us, flag.PromotedPieceType())
	}
	p.board.SetPiece(to, movedPiece)
	p.key ^= pieceKey(movedPiece, to)

	// 3. castling moves the rook too.
	if flag == CastleKingside || flag == CastleQueenside {
		rookFrom, rookTo := castlingRookSquares(us, flag)
		rook := p.board.PieceAt(rookFrom)
		p.board.Clear(rookFrom)
		p.key ^= pieceKey(rook, rookFrom)
		p.board.SetPiece(rookTo, rook)
		p.key ^= pieceKey(rook, rookTo)
	}

	// 4. castling rights never get re-enabled, only cleared.
	newCastling := clearCastlingOnMove(p.castling, from, to, moving)
	if newCastling != p.castling {
		p.key ^= castlingKey(p.castling)
		p.key ^= castlingKey(newCastling)
		p.castling = newCastling
	}

	// 5. en passant target.
	p.key ^= enPassantKey(p.enPassant)
	newEP := SqNone
	if flag == DoublePawnPush {
		newEP = MakeSquare(from.File(), (from.Rank()+to.Rank())/2)
	}
	p.enPassant = newEP
	p.key ^= enPassantKey(p.enPassant)

	// 6. halfmove clock.
	if moving.TypeOf() == Pawn || captured != PieceNone {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	// 7. fullmove number increments after black moves.
	if us == Black {
		p.fullmoveNumber++
	}

	// 8/9. side to move toggle, folded into the key XOR.
	p.key ^= sideToMoveKey()
	p.sideToMove = us.Flip()

	p.history = append(p.history, undo)
}

// UnmakeMove pops and reverses the most recent MakeMove. Returns
// ErrUnmakeUnderflow if there is nothing to undo.
func (p *Position) UnmakeMove() error {
	n := len(p.history)
	if n == 0 {
		return ErrUnmakeUnderflow
	}
	undo := p.history[n-1]
	p.history = p.history[:n-1]

	m := undo.Move
	from, to, flag := m.From(), m.To(), m.Flag()
	mover := p.sideToMove.Flip()

	if mover == Black {
		p.fullmoveNumber--
	}
	p.sideToMove = mover

	movedPiece := p.board.PieceAt(to)
	p.board.Clear(to)
	if flag.IsPromotion() {
		movedPiece = MakePiece(mover, Pawn)
	}
	p.board.SetPiece(from, movedPiece)

	if flag == CastleKingside || flag == CastleQueenside {
		rookFrom, rookTo := castlingRookSquares(mover, flag)
		rook := p.board.PieceAt(rookTo)
		p.board.Clear(rookTo)
		p.board.SetPiece(rookFrom, rook)
	}

	if undo.Captured != PieceNone {
		p.board.SetPiece(undo.CapturedSquare, undo.Captured)
	}

	p.castling = undo.Castling
	p.enPassant = undo.EnPassant
	p.halfmoveClock = undo.HalfmoveClock
	p.key = undo.ZobristKey
	if assert.DEBUG {
		assert.Assert(p.key == computeKey(&p.board, p.sideToMove, p.castling, p.enPassant),
			"UnmakeMove: zobrist key %v does not match recomputed key after undoing %v", p.key, m)
	}
	return nil
}

// castlingRookSquares returns the rook's home and destination squares
// for a castling move by color c.
func castlingRookSquares(c Color, flag MoveFlag) (from, to Square) {
	if c == White {
		if flag == CastleKingside {
			return SqH1, SqF1
		}
		return SqA1, SqD1
	}
	if flag == CastleKingside {
		return SqH8, SqF8
	}
	return SqA8, SqD8
}

// clearCastlingOnMove clears castling rights when the king moves, or
// when a rook's home square is vacated or captured into.
func clearCastlingOnMove(rights CastlingRights, from, to Square, moving Piece) CastlingRights {
	if moving.TypeOf() == King {
		rights = rights.Clear(BothFor(moving.ColorOf()))
	}
	rights = clearRookHome(rights, from)
	rights = clearRookHome(rights, to)
	return rights
}

func clearRookHome(rights CastlingRights, sq Square) CastlingRights {
	switch sq {
	case SqA1:
		return rights.Clear(WhiteQueenside)
	case SqH1:
		return rights.Clear(WhiteKingside)
	case SqA8:
		return rights.Clear(BlackQueenside)
	case SqH8:
		return rights.Clear(BlackKingside)
	default:
		return rights
	}
}
