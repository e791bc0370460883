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

// Package position implements the chess board and game state: a 64-cell piece array with cached occupancy summaries,
// the authoritative Position wrapping it with side-to-move, castling
// rights, en passant target and an incrementally maintained Zobrist key.
package position

import (
	. "github.com/frankkopp/franky-core/internal/types"
)

// knightOffsets and kingOffsets are the (file, rank) deltas for
// non-sliding pieces.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// bishopDirs and rookDirs are the ray directions for sliding pieces.
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Board is the 64-cell piece array plus cached per-color occupancy
// bitboards. Occupancy is a cache: SetPiece/Clear keep
// it consistent with the array at every observable point, never the
// other way around.
type Board struct {
	squares       [64]Piece
	occupiedBy    [ColorLength]uint64
	occupiedAll   uint64
	kingSq        [ColorLength]Square
}

// PieceAt returns the piece on sq, or PieceNone if empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq] == PieceNone
}

// SetPiece places piece p on sq. sq must currently be empty; callers that
// need to overwrite (captures) must Clear first.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.squares[sq] = p
	bit := uint64(1) << uint(sq)
	b.occupiedBy[p.ColorOf()] |= bit
	b.occupiedAll |= bit
	if p.TypeOf() == King {
		b.kingSq[p.ColorOf()] = sq
	}
}

// Clear empties sq, which must currently hold a piece.
func (b *Board) Clear(sq Square) {
	p := b.squares[sq]
	b.squares[sq] = PieceNone
	bit := uint64(1) << uint(sq)
	b.occupiedBy[p.ColorOf()] &^= bit
	b.occupiedAll &^= bit
}

// KingSquare returns the square of color's king. O(1) via the cache kept
// current by SetPiece.
func (b *Board) KingSquare(c Color) Square {
	return b.kingSq[c]
}

// OccupiedByColor returns the occupancy bitboard for one color.
func (b *Board) OccupiedByColor(c Color) uint64 {
	return b.occupiedBy[c]
}

// OccupiedAll returns the occupancy bitboard for both colors.
func (b *Board) OccupiedAll() uint64 {
	return b.occupiedAll
}

// IsSquareAttacked reports whether any piece of byColor pseudo-attacks sq,
// respecting ray blockers for sliders. Pawn attacks are the diagonal
// squares only — a pawn never "attacks" the square it could push to.
func (b *Board) IsSquareAttacked(sq Square, byColor Color) bool {
	// pawns: look from sq backwards along the attacker's capture diagonals
	pawnRankDir := 1
	if byColor == Black {
		pawnRankDir = -1
	}
	for _, df := range [2]int{-1, 1} {
		from := sq.To(df, -pawnRankDir)
		if from == SqNone {
			continue
		}
		p := b.squares[from]
		if p.ColorOf() == byColor && p.TypeOf() == Pawn && !p.IsEmpty() {
			return true
		}
	}

	for _, o := range knightOffsets {
		from := sq.To(o[0], o[1])
		if from == SqNone {
			continue
		}
		p := b.squares[from]
		if !p.IsEmpty() && p.ColorOf() == byColor && p.TypeOf() == Knight {
			return true
		}
	}

	for _, o := range kingOffsets {
		from := sq.To(o[0], o[1])
		if from == SqNone {
			continue
		}
		p := b.squares[from]
		if !p.IsEmpty() && p.ColorOf() == byColor && p.TypeOf() == King {
			return true
		}
	}

	if b.rayAttacked(sq, byColor, bishopDirs, Bishop, Queen) {
		return true
	}
	if b.rayAttacked(sq, byColor, rookDirs, Rook, Queen) {
		return true
	}
	return false
}

func (b *Board) rayAttacked(sq Square, byColor Color, dirs [4][2]int, pt1, pt2 PieceType) bool {
	for _, d := range dirs {
		cur := sq
		for {
			cur = cur.To(d[0], d[1])
			if cur == SqNone {
				break
			}
			p := b.squares[cur]
			if p.IsEmpty() {
				continue
			}
			if p.ColorOf() == byColor && (p.TypeOf() == pt1 || p.TypeOf() == pt2) {
				return true
			}
			break
		}
	}
	return false
}
