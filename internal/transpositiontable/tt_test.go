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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/franky-core/internal/position"
	. "github.com/frankkopp/franky-core/internal/types"
)

func TestStoreAndProbeExactScore(t *testing.T) {
	tt := New(1)
	key := position.Key(0x1234)
	tt.Store(key, 6, 150, BoundExact, NewMove(SqE2, SqE4, DoublePawnPush), 0)

	result, score, move := tt.Probe(key, 6, -ValueInfinite, ValueInfinite, 0)
	assert.Equal(t, UsableScore, result)
	assert.Equal(t, Value(150), score)
	assert.Equal(t, NewMove(SqE2, SqE4, DoublePawnPush), move)
}

func TestProbeMissReturnsNoHit(t *testing.T) {
	tt := New(1)
	result, _, move := tt.Probe(position.Key(0xDEAD), 4, -ValueInfinite, ValueInfinite, 0)
	assert.Equal(t, NoHit, result)
	assert.Equal(t, MoveNone, move)
}

// TestProbeShallowEntryGivesMoveHint checks that an entry recorded at a
// shallower depth than requested still returns its best move for move
// ordering, without being trusted as a usable score.
func TestProbeShallowEntryGivesMoveHint(t *testing.T) {
	tt := New(1)
	key := position.Key(0x5678)
	bestMove := NewMove(SqG1, SqF3, Quiet)
	tt.Store(key, 2, 10, BoundExact, bestMove, 0)

	result, _, move := tt.Probe(key, 8, -ValueInfinite, ValueInfinite, 0)
	assert.Equal(t, MoveHint, result)
	assert.Equal(t, bestMove, move)
}

// TestMateScoreTranslation checks that a mate score stored at one ply is
// correctly translated back when probed at a different ply.
func TestMateScoreTranslation(t *testing.T) {
	tt := New(1)
	key := position.Key(0x9999)
	// Mate six plies from the root, seen at ply 2: four plies from the node.
	mateSeenAtPly2 := Mate - 6
	tt.Store(key, 4, mateSeenAtPly2, BoundExact, MoveNone, 2)

	// The same node reached at ply 4 is mate eight plies from the root.
	_, score, _ := tt.Probe(key, 4, -ValueInfinite, ValueInfinite, 4)
	assert.Equal(t, Mate-8, score)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := New(1)
	key := position.Key(0xABCD)
	tt.Store(key, 4, 20, BoundExact, MoveNone, 0)
	tt.Clear()

	result, _, _ := tt.Probe(key, 4, -ValueInfinite, ValueInfinite, 0)
	assert.Equal(t, NoHit, result)
}

func TestResizeZero(t *testing.T) {
	tt := New(0)
	assert.Equal(t, 0, tt.Capacity())
}
