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

package config

// searchConfiguration tunes the search.
type searchConfiguration struct {
	// AspirationWindow is the +/- centipawn half-width opened around the
	// previous iteration's score for depth >= 3.
	AspirationWindow int32
	// MinAspirationDepth is the first depth at which aspiration windows
	// are used; earlier depths use a full window.
	MinAspirationDepth int
	// UseKillerMoves toggles the killer-move ordering heuristic.
	UseKillerMoves bool
	// NodesBetweenTimeChecks is the node interval of an extra stop check
	// in negamax and quiescence; shouldStop, which also reads the clock,
	// already runs at every node entry.
	NodesBetweenTimeChecks uint64
	// UseNullMove reserves a toggle for a future null-move pruning pass;
	// negamax does not implement null-move pruning yet, so this has no
	// effect today.
	UseNullMove bool
	// LazyEvalThreshold reserves a centipawn margin for a future
	// lazy-evaluation cutoff (skip the expensive evaluator passes once
	// material alone is far outside the alpha-beta window); unused today.
	LazyEvalThreshold int32
}

func setupSearchDefaults(s *searchConfiguration) {
	s.AspirationWindow = 50
	s.MinAspirationDepth = 3
	s.UseKillerMoves = true
	s.NodesBetweenTimeChecks = 2048
	s.UseNullMove = false
	s.LazyEvalThreshold = 0
}

// ttConfiguration tunes the transposition table.
type ttConfiguration struct {
	// DefaultSizeMB is used by search.NewEngine when the caller passes a
	// size <= 0.
	DefaultSizeMB int
}

func setupTTDefaults(t *ttConfiguration) {
	t.DefaultSizeMB = 64
}
