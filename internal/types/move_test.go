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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveEncodeDecode(t *testing.T) {
	m := NewMove(SqE2, SqE4, DoublePawnPush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, DoublePawnPush, m.Flag())
	assert.False(t, m.IsCapture())
}

func TestMoveWithOrderValueDoesNotChangeIdentity(t *testing.T) {
	m := NewMove(SqG1, SqF3, Quiet)
	ordered := m.WithOrderValue(200)
	assert.Equal(t, uint8(200), ordered.OrderValue())
	assert.Equal(t, m.From(), ordered.From())
	assert.Equal(t, m.To(), ordered.To())
	assert.Equal(t, m, ordered.Bare())
	assert.NotEqual(t, m, ordered)
}

func TestMoveFlagIsCapture(t *testing.T) {
	assert.True(t, NewMove(SqD4, SqE5, Capture).IsCapture())
	assert.True(t, NewMove(SqD5, SqE6, EnPassant).IsCapture())
	assert.True(t, NewMove(SqB7, SqA8, PromoteQueenCapture).IsCapture())
	assert.False(t, NewMove(SqD4, SqD5, Quiet).IsCapture())
}

func TestMoveStringFormat(t *testing.T) {
	assert.Equal(t, "e2e4", NewMove(SqE2, SqE4, DoublePawnPush).String())
	assert.Equal(t, "b7a8q", NewMove(SqB7, SqA8, PromoteQueenCapture).String())
	assert.Equal(t, "0000", MoveNone.String())
}

func TestValueMateScore(t *testing.T) {
	mateInTwo := Mate - 3
	assert.True(t, mateInTwo.IsMateScore())
	assert.False(t, Value(500).IsMateScore())
	assert.Equal(t, 2, mateInTwo.MateIn())
}
