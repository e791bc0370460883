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
	"github.com/frankkopp/franky-core/internal/config"
	"github.com/frankkopp/franky-core/internal/position"
	. "github.com/frankkopp/franky-core/internal/types"
)

// kingShieldPenalty charges a penalty for each missing shield pawn in
// front of a castled king. Only
// applies once the king has actually moved to a wing, to avoid punishing
// a king still on its home square mid-opening.
func kingShieldPenalty(b *position.Board, c Color) int32 {
	rank := 0
	shieldRank := 1
	if c == Black {
		rank = 7
		shieldRank = 6
	}
	king := b.KingSquare(c)
	if king.Rank() != rank {
		return 0
	}

	var shieldFiles []int
	switch king.File() {
	case 6, 7: // kingside castled (g or h file)
		shieldFiles = []int{5, 6, 7}
	case 0, 1, 2: // queenside castled
		shieldFiles = []int{0, 1, 2}
	default:
		return 0
	}

	missing := int32(0)
	for _, f := range shieldFiles {
		sq := MakeSquare(f, shieldRank)
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.TypeOf() != Pawn || p.ColorOf() != c {
			missing++
		}
	}
	return missing * int32(config.Settings.Eval.KingShieldPenalty)
}
