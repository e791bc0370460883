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

// Package evaluator computes a static centipawn score for a position:
// material, piece-square tables and an isolated-pawn penalty form the
// baseline; mobility and king-safety are additive heuristics layered
// on top.
package evaluator

import (
	"github.com/frankkopp/franky-core/internal/config"
	"github.com/frankkopp/franky-core/internal/position"
	. "github.com/frankkopp/franky-core/internal/types"
)

// Evaluator holds no per-call state; it is a thin namespace kept as a
// struct (rather than free functions) so a caller can later cache
// per-position scratch data without changing the call sites.
type Evaluator struct{}

// NewEvaluator constructs an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns a centipawn score from the side-to-move's
// perspective. Mate and stalemate scores are not produced here — the
// search layer detects the empty legal-move set and substitutes its
// own mate/draw score.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	score := whiteCentricScore(p)
	if p.SideToMove() == Black {
		return Value(-score)
	}
	return Value(score)
}

func whiteCentricScore(p *position.Position) int32 {
	b := p.Board()
	var score int32

	for sq := Square(0); sq < 64; sq++ {
		piece := b.PieceAt(sq)
		if piece.IsEmpty() {
			continue
		}
		pstSq := sq
		sign := int32(1)
		if piece.ColorOf() == Black {
			sign = -1
			pstSq = mirror(sq)
		}
		score += sign * PieceTypeValue[piece.TypeOf()]
		score += sign * int32(pst[piece.TypeOf()][pstSq])
	}

	if config.Settings.Eval.UseIsolatedPawnPenalty {
		score -= int32(config.Settings.Eval.IsolatedPawnPenalty) * countIsolatedPawns(b, White)
		score += int32(config.Settings.Eval.IsolatedPawnPenalty) * countIsolatedPawns(b, Black)
	}
	if config.Settings.Eval.UseMobility {
		score += int32(config.Settings.Eval.MobilityBonus) * (countMobility(b, White) - countMobility(b, Black))
	}
	if config.Settings.Eval.UseKingSafety {
		score -= kingShieldPenalty(b, White)
		score += kingShieldPenalty(b, Black)
	}

	return score
}

// countIsolatedPawns counts pawns of c with no friendly pawn on an
// adjacent file.
func countIsolatedPawns(b *position.Board, c Color) int32 {
	var filesWithPawns [8]bool
	var pawnSquares []Square
	for sq := Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.ColorOf() != c || p.TypeOf() != Pawn {
			continue
		}
		filesWithPawns[sq.File()] = true
		pawnSquares = append(pawnSquares, sq)
	}
	var isolated int32
	for _, sq := range pawnSquares {
		f := sq.File()
		leftOK := f > 0 && filesWithPawns[f-1]
		rightOK := f < 7 && filesWithPawns[f+1]
		if !leftOK && !rightOK {
			isolated++
		}
	}
	return isolated
}
