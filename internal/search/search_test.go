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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/franky-core/internal/config"
	"github.com/frankkopp/franky-core/internal/movegen"
	"github.com/frankkopp/franky-core/internal/position"
	"github.com/frankkopp/franky-core/internal/transpositiontable"
	. "github.com/frankkopp/franky-core/internal/types"
)

func init() {
	config.Setup()
}

func TestSearchRejectsUnconfiguredLimits(t *testing.T) {
	e := NewEngine(1)
	_, err := e.Search(position.NewStartPosition(), Limits{})
	assert.ErrorIs(t, err, ErrConfiguration)
}

// TestSearchFindsMateInOne builds a back-rank mate-in-one and checks
// that a shallow search finds it and reports a mate score.
func TestSearchFindsMateInOne(t *testing.T) {
	p, err := position.NewPosition([]position.Placement{
		{SqG1, MakePiece(White, King)},
		{SqF2, MakePiece(White, Pawn)},
		{SqG2, MakePiece(White, Pawn)},
		{SqH2, MakePiece(White, Pawn)},
		{SqA1, MakePiece(White, Rook)},
		{SqH8, MakePiece(Black, King)},
		{SqG7, MakePiece(Black, Pawn)},
		{SqH7, MakePiece(Black, Pawn)},
	}, White, CastlingNone, SqNone, 0, 1)
	require.NoError(t, err)

	e := NewEngine(4)
	result, err := e.Search(p, Limits{MaxDepth: 3})
	require.NoError(t, err)

	assert.Equal(t, NewMove(SqA1, SqA8, Quiet), result.BestMove.Bare())
	assert.True(t, result.Score.IsMateScore())
	assert.True(t, result.Score > 0)
}

// TestSearchFromStartPositionProducesLegalMove smoke-tests a shallow
// search from the opening position: it must terminate, return a
// nonzero-depth result, and the chosen move must actually be legal.
func TestSearchFromStartPositionProducesLegalMove(t *testing.T) {
	p := position.NewStartPosition()
	e := NewEngine(4)
	result, err := e.Search(p, Limits{MaxDepth: 3})
	require.NoError(t, err)
	require.Greater(t, result.DepthReached, 0)

	found := false
	for _, m := range movegen.GenerateLegal(p) {
		if m.Bare() == result.BestMove.Bare() {
			found = true
			break
		}
	}
	assert.True(t, found, "search must return a legal move")
}

// TestSearchHonorsTimeLimit checks the anytime property: a very short
// time budget still returns a result rather than blocking or erroring.
func TestSearchHonorsTimeLimit(t *testing.T) {
	p := position.NewStartPosition()
	e := NewEngine(4)
	result, err := e.Search(p, Limits{MaxTime: 10 * time.Millisecond})
	require.NoError(t, err)
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestSearchRejectsReentrantCall(t *testing.T) {
	e := NewEngine(1)
	e.sem.TryAcquire(1)
	_, err := e.Search(position.NewStartPosition(), Limits{MaxDepth: 1})
	assert.ErrorIs(t, err, ErrSearchRunning)
}

func TestClearHashEmptiesTable(t *testing.T) {
	e := NewEngine(1)
	p := position.NewStartPosition()
	_, err := e.Search(p, Limits{MaxDepth: 2})
	require.NoError(t, err)
	e.ClearHash()

	result, _, _ := e.tt.Probe(p.Key(), 2, -ValueInfinite, ValueInfinite, 0)
	assert.Equal(t, transpositiontable.NoHit, result)
}
