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

// Package movegen produces legal moves for a position: first
// every pseudo-legal move per piece kind, then a king-safety filter that
// makes and unmakes each candidate to discard moves that leave the mover
// in check. It also realizes the higher parts of the external control
// surface that need legal-move information — Apply, Undo,
// GenerateLegal, IsCheckmate, IsStalemate — since those can't live on
// position.Position itself without an import cycle back into this
// package.
package movegen

import (
	"errors"

	"github.com/frankkopp/franky-core/internal/position"
	. "github.com/frankkopp/franky-core/internal/types"
)

// ErrIllegalMove is returned by Apply when the given move is not present
// in GenerateLegal's result.
var ErrIllegalMove = errors.New("movegen: illegal move")

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

var promotionFlags = [4]MoveFlag{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}
var promotionCaptureFlags = [4]MoveFlag{PromoteQueenCapture, PromoteRookCapture, PromoteBishopCapture, PromoteKnightCapture}

// GenerateLegal returns every move legal in the strict chess sense.
// An empty result means checkmate (if IsCheckmate) or stalemate
// otherwise.
func GenerateLegal(p *position.Position) []Move {
	pseudo := generatePseudoLegal(p, false)
	legal := make([]Move, 0, len(pseudo))
	us := p.SideToMove()
	for _, m := range pseudo {
		p.MakeMove(m)
		if !p.Board().IsSquareAttacked(p.Board().KingSquare(us), us.Flip()) {
			legal = append(legal, m)
		}
		_ = p.UnmakeMove()
	}
	return legal
}

// GenerateLegalCaptures returns only legal captures and promotions, used
// by quiescence search.
func GenerateLegalCaptures(p *position.Position) []Move {
	pseudo := generatePseudoLegal(p, true)
	legal := make([]Move, 0, len(pseudo))
	us := p.SideToMove()
	for _, m := range pseudo {
		p.MakeMove(m)
		if !p.Board().IsSquareAttacked(p.Board().KingSquare(us), us.Flip()) {
			legal = append(legal, m)
		}
		_ = p.UnmakeMove()
	}
	return legal
}

// IsCheckmate reports whether the side to move is in check with no legal moves.
func IsCheckmate(p *position.Position) bool {
	return p.IsCheck() && len(GenerateLegal(p)) == 0
}

// IsStalemate reports whether the side to move is not in check but has no legal moves.
func IsStalemate(p *position.Position) bool {
	return !p.IsCheck() && len(GenerateLegal(p)) == 0
}

// Apply pre-checks m against LegalMoves before calling p.MakeMove, so an
// illegal move is rejected without corrupting state.
func Apply(p *position.Position, m Move) error {
	bare := m.Bare()
	for _, lm := range GenerateLegal(p) {
		if lm.Bare() == bare {
			p.MakeMove(lm)
			return nil
		}
	}
	return ErrIllegalMove
}

// Undo reverses the most recent Apply.
func Undo(p *position.Position) error {
	return p.UnmakeMove()
}

// generatePseudoLegal produces every pseudo-legal move, or (if
// capturesOnly) only captures and promotions, without any king-safety
// filtering — that is the caller's job.
func generatePseudoLegal(p *position.Position, capturesOnly bool) []Move {
	moves := make([]Move, 0, 48)
	b := p.Board()
	us := p.SideToMove()

	for sq := Square(0); sq < 64; sq++ {
		piece := b.PieceAt(sq)
		if piece.IsEmpty() || piece.ColorOf() != us {
			continue
		}
		switch piece.TypeOf() {
		case Pawn:
			genPawnMoves(p, sq, capturesOnly, &moves)
		case Knight:
			genOffsetMoves(b, sq, us, knightOffsets, capturesOnly, &moves)
		case King:
			genOffsetMoves(b, sq, us, kingOffsets, capturesOnly, &moves)
		case Bishop:
			genSlidingMoves(b, sq, us, bishopDirs, capturesOnly, &moves)
		case Rook:
			genSlidingMoves(b, sq, us, rookDirs, capturesOnly, &moves)
		case Queen:
			genSlidingMoves(b, sq, us, bishopDirs, capturesOnly, &moves)
			genSlidingMoves(b, sq, us, rookDirs, capturesOnly, &moves)
		}
	}
	if !capturesOnly {
		genCastling(p, &moves)
	}
	return moves
}

func genOffsetMoves(b *position.Board, from Square, us Color, offsets [8][2]int, capturesOnly bool, moves *[]Move) {
	for _, o := range offsets {
		to := from.To(o[0], o[1])
		if to == SqNone {
			continue
		}
		target := b.PieceAt(to)
		if !target.IsEmpty() {
			if target.ColorOf() != us {
				*moves = append(*moves, NewMove(from, to, Capture))
			}
			continue
		}
		if !capturesOnly {
			*moves = append(*moves, NewMove(from, to, Quiet))
		}
	}
}

func genSlidingMoves(b *position.Board, from Square, us Color, dirs [4][2]int, capturesOnly bool, moves *[]Move) {
	for _, d := range dirs {
		to := from
		for {
			to = to.To(d[0], d[1])
			if to == SqNone {
				break
			}
			target := b.PieceAt(to)
			if target.IsEmpty() {
				if !capturesOnly {
					*moves = append(*moves, NewMove(from, to, Quiet))
				}
				continue
			}
			if target.ColorOf() != us {
				*moves = append(*moves, NewMove(from, to, Capture))
			}
			break
		}
	}
}

func genPawnMoves(p *position.Position, from Square, capturesOnly bool, moves *[]Move) {
	b := p.Board()
	us := p.SideToMove()
	rankDir := 1
	startRank, lastRank := 1, 7
	if us == Black {
		rankDir = -1
		startRank, lastRank = 6, 0
	}

	push := from.To(0, rankDir)
	if push != SqNone && b.IsEmpty(push) {
		if !capturesOnly || push.Rank() == lastRank {
			emitPawnAdvance(from, push, lastRank, Quiet, moves)
		}
		if from.Rank() == startRank {
			dbl := from.To(0, 2*rankDir)
			if dbl != SqNone && b.IsEmpty(dbl) && !capturesOnly {
				*moves = append(*moves, NewMove(from, dbl, DoublePawnPush))
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := from.To(df, rankDir)
		if to == SqNone {
			continue
		}
		if to == p.EnPassant() {
			*moves = append(*moves, NewMove(from, to, EnPassant))
			continue
		}
		target := b.PieceAt(to)
		if !target.IsEmpty() && target.ColorOf() != us {
			emitPawnAdvance(from, to, lastRank, Capture, moves)
		}
	}
}

// emitPawnAdvance appends either the plain quiet/capture move, or — when
// the destination is on the last rank — the four promotion variants.
func emitPawnAdvance(from, to Square, lastRank int, baseFlag MoveFlag, moves *[]Move) {
	if to.Rank() != lastRank {
		*moves = append(*moves, NewMove(from, to, baseFlag))
		return
	}
	flags := promotionFlags
	if baseFlag == Capture {
		flags = promotionCaptureFlags
	}
	for _, f := range flags {
		*moves = append(*moves, NewMove(from, to, f))
	}
}

func genCastling(p *position.Position, moves *[]Move) {
	us := p.SideToMove()
	b := p.Board()
	opp := us.Flip()
	rank := 0
	if us == Black {
		rank = 7
	}
	kingSq := MakeSquare(4, rank)
	if b.KingSquare(us) != kingSq {
		return
	}
	if p.IsCheck() {
		return
	}

	if p.Castling().Has(KingsideFor(us)) {
		f, g := MakeSquare(5, rank), MakeSquare(6, rank)
		if b.IsEmpty(f) && b.IsEmpty(g) &&
			!b.IsSquareAttacked(f, opp) && !b.IsSquareAttacked(g, opp) {
			*moves = append(*moves, NewMove(kingSq, g, CastleKingside))
		}
	}
	if p.Castling().Has(QueensideFor(us)) {
		d, c, bb := MakeSquare(3, rank), MakeSquare(2, rank), MakeSquare(1, rank)
		if b.IsEmpty(d) && b.IsEmpty(c) && b.IsEmpty(bb) &&
			!b.IsSquareAttacked(d, opp) && !b.IsSquareAttacked(c, opp) {
			*moves = append(*moves, NewMove(kingSq, c, CastleQueenside))
		}
	}
}
