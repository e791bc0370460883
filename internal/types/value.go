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

// Value is a centipawn evaluation score, always from the perspective of
// whoever the caller considers "to move".
type Value int32

const (
	// ValueDraw is the score of a known draw (stalemate, 50-move, repetition).
	ValueDraw Value = 0

	// Mate is set far outside any evaluator output so mate-distance scores
	// never collide with material/positional scores.
	Mate Value = 30000

	// MateThreshold bounds the reserved mate-distance window
	// [Mate-512, Mate] and its negative mirror.
	MateThreshold Value = Mate - 512

	// ValueInfinite is a sentinel strictly outside any legal score, used
	// as the initial alpha-beta window bound.
	ValueInfinite Value = Mate + 1

	// ValueNone marks "no evaluation available".
	ValueNone Value = Mate + 2
)

// IsMateScore reports whether v falls in the reserved mate-distance window.
func (v Value) IsMateScore() bool {
	return v >= MateThreshold || v <= -MateThreshold
}

// MateIn returns the number of full moves to mate implied by a mate score,
// positive if this side mates, negative if it is mated. Meaningless for
// non-mate scores.
func (v Value) MateIn() int {
	if v > 0 {
		return int(Mate-v+1) / 2
	}
	return -int(Mate+v) / 2
}
