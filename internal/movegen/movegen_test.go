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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/franky-core/internal/position"
	. "github.com/frankkopp/franky-core/internal/types"
)

// TestPerftStartPosition cross-checks move generation against the
// well-known perft node counts for the standard starting position.
func TestPerftStartPosition(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		p := position.NewStartPosition()
		assert.Equal(t, c.nodes, Perft(p, c.depth), "perft(%d)", c.depth)
	}
}

func TestGenerateLegalStartPositionCount(t *testing.T) {
	p := position.NewStartPosition()
	assert.Len(t, GenerateLegal(p), 20)
}

// TestNoSelfCheck builds a pinned-knight position and checks that the
// pin is honored: moving the knight off the pin line is filtered out by
// legality, even though it is pseudo-legal.
func TestNoSelfCheck(t *testing.T) {
	p, err := position.NewPosition([]position.Placement{
		{SqE1, MakePiece(White, King)},
		{SqE8, MakePiece(Black, King)},
		{SqE4, MakePiece(White, Knight)},
		{SqE5, MakePiece(Black, Rook)},
	}, White, CastlingNone, SqNone, 0, 1)
	require.NoError(t, err)

	for _, m := range GenerateLegal(p) {
		if m.From() == SqE4 {
			assert.Equal(t, SqE5, m.To(), "pinned knight may only capture the pinning piece")
		}
	}
}

func TestIsCheckmateBackRankMate(t *testing.T) {
	p, err := position.NewPosition([]position.Placement{
		{SqG1, MakePiece(White, King)},
		{SqA8, MakePiece(Black, Rook)},
		{SqF2, MakePiece(White, Pawn)},
		{SqG2, MakePiece(White, Pawn)},
		{SqH2, MakePiece(White, Pawn)},
		{SqH8, MakePiece(Black, King)},
	}, Black, CastlingNone, SqNone, 0, 1)
	require.NoError(t, err)
	p.MakeMove(NewMove(SqA8, SqA1, Quiet))

	assert.True(t, IsCheckmate(p))
	assert.False(t, IsStalemate(p))
}

func TestIsStalemate(t *testing.T) {
	p, err := position.NewPosition([]position.Placement{
		{SqA1, MakePiece(White, King)},
		{SqC2, MakePiece(Black, King)},
		{SqB3, MakePiece(Black, Queen)},
	}, White, CastlingNone, SqNone, 0, 1)
	require.NoError(t, err)

	assert.False(t, p.IsCheck())
	assert.True(t, IsStalemate(p))
	assert.False(t, IsCheckmate(p))
}

// TestCastlingThroughCheckIsIllegal covers the edge case where the
// castling king would pass through an attacked square, which must be
// excluded even though the destination itself is safe.
func TestCastlingThroughCheckIsIllegal(t *testing.T) {
	p, err := position.NewPosition([]position.Placement{
		{SqE1, MakePiece(White, King)},
		{SqH1, MakePiece(White, Rook)},
		{SqE8, MakePiece(Black, King)},
		{SqF8, MakePiece(Black, Rook)},
	}, White, WhiteKingside, SqNone, 0, 1)
	require.NoError(t, err)

	for _, m := range GenerateLegal(p) {
		assert.NotEqual(t, CastleKingside, m.Flag(), "king may not castle through an attacked square")
	}
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	p := position.NewStartPosition()
	err := Apply(p, NewMove(SqE1, SqE2, Quiet))
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestApplyAndUndo(t *testing.T) {
	p := position.NewStartPosition()
	keyBefore := p.Key()
	require.NoError(t, Apply(p, NewMove(SqE2, SqE4, DoublePawnPush)))
	assert.Equal(t, Black, p.SideToMove())
	require.NoError(t, Undo(p))
	assert.Equal(t, keyBefore, p.Key())
}
