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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/franky-core/internal/position"
	. "github.com/frankkopp/franky-core/internal/types"
)

// capturePosition sets up a White rook on a1 that can capture a Black
// piece sitting on a7 (off the back rank, so a Pawn victim stays legal),
// plus an idle White king and an idle Black king so the position is
// structurally valid.
func capturePosition(t *testing.T, victim PieceType) *position.Position {
	t.Helper()
	p, err := position.NewPosition([]position.Placement{
		{SqA1, MakePiece(White, Rook)},
		{SqG1, MakePiece(White, King)},
		{SqA7, MakePiece(Black, victim)},
		{SqG8, MakePiece(Black, King)},
	}, White, CastlingNone, SqNone, 0, 1)
	require.NoError(t, err)
	return p
}

func TestOrderMovesPutsTTAndPVFirst(t *testing.T) {
	p := capturePosition(t, Pawn)
	tt := NewMove(SqG1, SqG2, Quiet)
	pv := NewMove(SqG1, SqH1, Quiet)
	quiet := NewMove(SqA1, SqB1, Quiet)
	moves := []Move{quiet, pv, tt}

	ordered := orderMoves(p, moves, tt, pv, [2]Move{MoveNone, MoveNone})

	assert.Equal(t, tt.Bare(), ordered[0].Bare())
	assert.Equal(t, pv.Bare(), ordered[1].Bare())
	assert.Equal(t, quiet.Bare(), ordered[2].Bare())
}

// TestOrderMovesRanksCapturesAboveKillersAndQuiets regression-tests the
// priority scale: every capture, regardless of victim, must sort before
// any killer move or plain quiet move.
func TestOrderMovesRanksCapturesAboveKillersAndQuiets(t *testing.T) {
	for _, victim := range []PieceType{Pawn, Knight, Bishop, Rook, Queen} {
		p := capturePosition(t, victim)
		capture := NewMove(SqA1, SqA7, Capture)
		killer := NewMove(SqG1, SqH2, Quiet)
		quiet := NewMove(SqG1, SqF1, Quiet)
		moves := []Move{quiet, killer, capture}

		ordered := orderMoves(p, moves, MoveNone, MoveNone, [2]Move{killer, MoveNone})

		assert.Equal(t, capture.Bare(), ordered[0].Bare(),
			"capture of %v must be ordered before killer/quiet moves", victim)
	}
}

func TestMvvLvaPenaltyPrefersHigherValueVictim(t *testing.T) {
	pawnVictim := mvvLvaPenalty(capturePosition(t, Pawn), NewMove(SqA1, SqA7, Capture))
	queenVictim := mvvLvaPenalty(capturePosition(t, Queen), NewMove(SqA1, SqA7, Capture))
	assert.Less(t, queenVictim, pawnVictim, "capturing a queen must rank ahead of capturing a pawn")
}

func TestMvvLvaPenaltyStaysBelowKillerPriority(t *testing.T) {
	for _, victim := range []PieceType{Pawn, Knight, Bishop, Rook, Queen} {
		p := capturePosition(t, victim)
		penalty := mvvLvaPenalty(p, NewMove(SqA1, SqA7, Capture))
		assert.Less(t, priorityCapture+penalty, priorityKiller1,
			"capture priority for victim %v must stay below priorityKiller1", victim)
	}
}

// TestOrderMovesStableForQuiets checks that equally-prioritized quiets
// keep their generator order, satisfying the "keep the first one
// explored" tie-break rule.
func TestOrderMovesStableForQuiets(t *testing.T) {
	p := capturePosition(t, Pawn)
	a := NewMove(SqG1, SqH1, Quiet)
	b := NewMove(SqG1, SqF1, Quiet)
	moves := []Move{a, b}

	ordered := orderMoves(p, moves, MoveNone, MoveNone, [2]Move{MoveNone, MoveNone})

	assert.Equal(t, a.Bare(), ordered[0].Bare())
	assert.Equal(t, b.Bare(), ordered[1].Bare())
}
