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

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/franky-core/internal/config"
	"github.com/frankkopp/franky-core/internal/movegen"
	"github.com/frankkopp/franky-core/internal/search"
	. "github.com/frankkopp/franky-core/internal/types"
)

func init() {
	config.Setup()
}

func TestNewGameStartsAtStandardPosition(t *testing.T) {
	p := NewGame()
	assert.Len(t, p.LegalMoves(), 20)
	assert.False(t, p.IsCheck())
	assert.False(t, p.IsCheckmate())
	assert.False(t, p.IsStalemate())
}

func TestApplyAndUndoRoundtrip(t *testing.T) {
	p := NewGame()
	keyBefore := p.Raw().Key()

	require.NoError(t, p.Apply(NewMove(SqE2, SqE4, DoublePawnPush)))
	assert.NotEqual(t, keyBefore, p.Raw().Key())

	require.NoError(t, p.Undo())
	assert.Equal(t, keyBefore, p.Raw().Key())
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	p := NewGame()
	err := p.Apply(NewMove(SqA1, SqA5, Quiet))
	assert.ErrorIs(t, err, movegen.ErrIllegalMove)
}

func TestSearchEngineStopViaContext(t *testing.T) {
	se := NewSearchEngine(1)
	p := NewGame()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result, err := se.Search(ctx, p, search.Limits{Infinite: true})
	require.NoError(t, err)
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestSearchEngineClearHash(t *testing.T) {
	se := NewSearchEngine(1)
	p := NewGame()
	_, err := se.Search(context.Background(), p, search.Limits{MaxDepth: 2})
	require.NoError(t, err)
	se.ClearHash()
}
