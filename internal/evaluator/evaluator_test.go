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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/franky-core/internal/config"
	"github.com/frankkopp/franky-core/internal/position"
	. "github.com/frankkopp/franky-core/internal/types"
)

func init() {
	config.Setup()
}

// TestEvaluateStartPositionIsSymmetric checks the evaluator's
// symmetry property: the standard starting position is materially and
// positionally even, so it must score exactly zero regardless of whose
// turn it is.
func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	e := NewEvaluator()
	p := position.NewStartPosition()
	assert.Equal(t, Value(0), e.Evaluate(p))
}

// TestEvaluateSideToMoveFlip constructs an asymmetric position and its
// color-swapped mirror and checks that each, evaluated from its own side
// to move, gives the same score — the general form of the symmetry
// property when material isn't even.
func TestEvaluateSideToMoveFlip(t *testing.T) {
	e := NewEvaluator()
	whiteUp, err := position.NewPosition([]position.Placement{
		{SqE1, MakePiece(White, King)},
		{SqE8, MakePiece(Black, King)},
		{SqD4, MakePiece(White, Queen)},
	}, White, CastlingNone, SqNone, 0, 1)
	require.NoError(t, err)

	blackUp, err := position.NewPosition([]position.Placement{
		{SqE8, MakePiece(Black, King)},
		{SqE1, MakePiece(White, King)},
		{SqD5, MakePiece(Black, Queen)},
	}, Black, CastlingNone, SqNone, 0, 1)
	require.NoError(t, err)

	scoreWhite := e.Evaluate(whiteUp)
	scoreBlack := e.Evaluate(blackUp)
	assert.Equal(t, scoreWhite, scoreBlack, "a material-up side to move should score the same regardless of color")
}

func TestCountIsolatedPawns(t *testing.T) {
	b := &position.Board{}
	b.SetPiece(SqA2, MakePiece(White, Pawn))
	b.SetPiece(SqC2, MakePiece(White, Pawn))
	b.SetPiece(SqE2, MakePiece(White, Pawn))
	b.SetPiece(SqF2, MakePiece(White, Pawn))
	assert.Equal(t, int32(2), countIsolatedPawns(b, White))
}

func TestCountMobilityEmptyBoardRook(t *testing.T) {
	b := &position.Board{}
	b.SetPiece(SqD4, MakePiece(White, Rook))
	assert.Equal(t, int32(14), countMobility(b, White))
}
