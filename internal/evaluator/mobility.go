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
	"github.com/frankkopp/franky-core/internal/position"
	. "github.com/frankkopp/franky-core/internal/types"
)

var knightStep = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}
var bishopRay = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookRay = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// countMobility counts pseudo-legal destination squares available to
// color's knights, bishops, rooks and queens, ignoring king safety to
// stay allocation-free on the eval hot path.
func countMobility(b *position.Board, c Color) int32 {
	var n int32
	for sq := Square(0); sq < 64; sq++ {
		piece := b.PieceAt(sq)
		if piece.IsEmpty() || piece.ColorOf() != c {
			continue
		}
		switch piece.TypeOf() {
		case Knight:
			n += countOffsetMoves(b, sq, c, knightStep)
		case Bishop:
			n += countRayMoves(b, sq, c, bishopRay)
		case Rook:
			n += countRayMoves(b, sq, c, rookRay)
		case Queen:
			n += countRayMoves(b, sq, c, bishopRay)
			n += countRayMoves(b, sq, c, rookRay)
		}
	}
	return n
}

func countOffsetMoves(b *position.Board, from Square, us Color, offsets [8][2]int) int32 {
	var n int32
	for _, o := range offsets {
		to := from.To(o[0], o[1])
		if to == SqNone {
			continue
		}
		if target := b.PieceAt(to); target.IsEmpty() || target.ColorOf() != us {
			n++
		}
	}
	return n
}

func countRayMoves(b *position.Board, from Square, us Color, dirs [4][2]int) int32 {
	var n int32
	for _, d := range dirs {
		to := from
		for {
			to = to.To(d[0], d[1])
			if to == SqNone {
				break
			}
			target := b.PieceAt(to)
			if target.IsEmpty() {
				n++
				continue
			}
			if target.ColorOf() != us {
				n++
			}
			break
		}
	}
	return n
}
