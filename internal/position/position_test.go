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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/franky-core/internal/types"
)

func TestNewStartPosition(t *testing.T) {
	p := NewStartPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAll, p.Castling())
	assert.Equal(t, SqNone, p.EnPassant())
	assert.Equal(t, uint32(0), p.HalfmoveClock())
	assert.Equal(t, uint32(1), p.FullmoveNumber())
	assert.Equal(t, MakePiece(White, Rook), p.Board().PieceAt(SqA1))
	assert.Equal(t, MakePiece(Black, King), p.Board().PieceAt(SqE8))
	assert.Equal(t, computeKey(&p.board, p.sideToMove, p.castling, p.enPassant), p.Key())
}

func TestNewPositionRejectsTwoKings(t *testing.T) {
	_, err := NewPosition([]Placement{
		{SqE1, MakePiece(White, King)},
		{SqE2, MakePiece(White, King)},
		{SqE8, MakePiece(Black, King)},
	}, White, CastlingNone, SqNone, 0, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestNewPositionRejectsPawnOnBackRank(t *testing.T) {
	_, err := NewPosition([]Placement{
		{SqE1, MakePiece(White, King)},
		{SqE8, MakePiece(Black, King)},
		{SqA1, MakePiece(White, Pawn)},
	}, White, CastlingNone, SqNone, 0, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

// TestMakeUnmakeRoundtrip plays e2e4 from the starting position and
// checks that MakeMove followed by UnmakeMove restores every observable
// field, including the incrementally maintained Zobrist key.
func TestMakeUnmakeRoundtrip(t *testing.T) {
	p := NewStartPosition()
	keyBefore := p.Key()
	sideBefore := p.SideToMove()
	castlingBefore := p.Castling()

	m := NewMove(SqE2, SqE4, DoublePawnPush)
	p.MakeMove(m)
	assert.NotEqual(t, keyBefore, p.Key())
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, SqE3, p.EnPassant())

	require.NoError(t, p.UnmakeMove())
	assert.Equal(t, keyBefore, p.Key())
	assert.Equal(t, sideBefore, p.SideToMove())
	assert.Equal(t, castlingBefore, p.Castling())
	assert.Equal(t, SqNone, p.EnPassant())
	assert.Equal(t, MakePiece(White, Pawn), p.Board().PieceAt(SqE2))
	assert.True(t, p.Board().IsEmpty(SqE4))
}

func TestUnmakeUnderflow(t *testing.T) {
	p := NewStartPosition()
	err := p.UnmakeMove()
	assert.ErrorIs(t, err, ErrUnmakeUnderflow)
}

// TestEnPassantCapture exercises the one make/unmake path where the
// captured piece does not sit on the move's destination square.
func TestEnPassantCapture(t *testing.T) {
	p := NewStartPosition()
	p.MakeMove(NewMove(SqE2, SqE4, DoublePawnPush))
	p.MakeMove(NewMove(SqA7, SqA6, Quiet))
	p.MakeMove(NewMove(SqE4, SqE5, Quiet))
	p.MakeMove(NewMove(SqD7, SqD5, DoublePawnPush))

	keyBeforeCapture := p.Key()
	p.MakeMove(NewMove(SqE5, SqD6, EnPassant))
	assert.True(t, p.Board().IsEmpty(SqD5))
	assert.Equal(t, MakePiece(White, Pawn), p.Board().PieceAt(SqD6))

	require.NoError(t, p.UnmakeMove())
	assert.Equal(t, keyBeforeCapture, p.Key())
	assert.Equal(t, MakePiece(Black, Pawn), p.Board().PieceAt(SqD5))
	assert.True(t, p.Board().IsEmpty(SqD6))
}

// TestCastlingRightsClearedByRookCapture checks that capturing an
// untouched rook on its home square clears that side's castling right,
// even though the king never moved.
func TestCastlingRightsClearedByRookCapture(t *testing.T) {
	p, err := NewPosition([]Placement{
		{SqE1, MakePiece(White, King)},
		{SqE8, MakePiece(Black, King)},
		{SqH8, MakePiece(Black, Rook)},
		{SqH1, MakePiece(White, Rook)},
		{SqG7, MakePiece(White, Bishop)},
	}, White, CastlingAll, SqNone, 0, 1)
	require.NoError(t, err)

	p.MakeMove(NewMove(SqG7, SqH8, Capture))
	assert.False(t, p.Castling().Has(BlackKingside))
	assert.True(t, p.Castling().Has(WhiteKingside))
}

func TestIsDrawByRuleFiftyMove(t *testing.T) {
	p := NewStartPosition()
	assert.False(t, p.IsDrawByRule())
	p.halfmoveClock = 100
	assert.True(t, p.IsDrawByRule())
}

func TestIsDrawByRuleThreefoldRepetition(t *testing.T) {
	p := NewStartPosition()
	for i := 0; i < 2; i++ {
		p.MakeMove(NewMove(SqG1, SqF3, Quiet))
		p.MakeMove(NewMove(SqG8, SqF6, Quiet))
		p.MakeMove(NewMove(SqF3, SqG1, Quiet))
		p.MakeMove(NewMove(SqF6, SqG8, Quiet))
	}
	assert.True(t, p.IsDrawByRule())
}
