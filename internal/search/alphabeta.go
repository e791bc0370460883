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
	"github.com/frankkopp/franky-core/internal/config"
	"github.com/frankkopp/franky-core/internal/movegen"
	"github.com/frankkopp/franky-core/internal/transpositiontable"
	. "github.com/frankkopp/franky-core/internal/types"
)

// maxPly bounds the triangular PV table and killer table. No legal chess
// line runs this deep; it exists purely as a fixed array size.
const maxPly = 128

// negamax implements one alpha-beta step with integrated
// quiescence, TT probe/store, and PV/killer bookkeeping. alpha and beta
// are from the perspective of the side to move at this node; the return
// value is too (negamax sign convention).
func (e *Engine) negamax(depth, ply int, alpha, beta Value) Value {
	e.pvLength[ply] = ply

	if ply > 0 && e.pos.IsDrawByRule() {
		return ValueDraw
	}

	if e.shouldStop() {
		e.aborted = true
		return 0
	}

	var ttMove Move
	if result, score, move := e.tt.Probe(e.pos.Key(), depth, alpha, beta, ply); result != transpositiontable.NoHit {
		ttMove = move
		if result == transpositiontable.UsableScore {
			return score
		}
	}

	if depth <= 0 {
		return e.quiescence(ply, alpha, beta)
	}

	e.statistics.Nodes++
	if e.statistics.Nodes%config.Settings.Search.NodesBetweenTimeChecks == 0 && e.shouldStop() {
		e.aborted = true
		return 0
	}

	moves := movegen.GenerateLegal(e.pos)
	if len(moves) == 0 {
		if e.pos.IsCheck() {
			return -Mate + Value(ply)
		}
		return ValueDraw
	}

	var pvMove Move
	if ply < maxPly && e.pvLength[0] > ply {
		pvMove = e.pv[0][ply]
	}
	var killers [2]Move
	if config.Settings.Search.UseKillerMoves && ply < maxPly {
		killers = e.killers[ply]
	}
	ordered := orderMoves(e.pos, moves, ttMove, pvMove, killers)

	originalAlpha := alpha
	bestScore := -ValueInfinite
	bestMove := MoveNone

	for _, m := range ordered {
		e.pos.MakeMove(m)
		score := -e.negamax(depth-1, ply+1, -beta, -alpha)
		_ = e.pos.UnmakeMove()

		if e.aborted {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			e.updatePV(ply, m)
			if score >= beta {
				e.tt.Store(e.pos.Key(), depth, beta, transpositiontable.BoundLower, m, ply)
				if !m.IsCapture() && config.Settings.Search.UseKillerMoves && ply < maxPly {
					e.storeKiller(ply, m)
				}
				e.statistics.NodesPruned++
				return beta
			}
		}
	}

	bound := transpositiontable.BoundUpper
	if alpha > originalAlpha {
		bound = transpositiontable.BoundExact
	}
	e.tt.Store(e.pos.Key(), depth, alpha, bound, bestMove, ply)
	return alpha
}

// quiescence extends search along capture and promotion lines until the position is
// quiet, bounding explosive tactical sequences the fixed-depth cutoff
// would otherwise misjudge. The stand-pat score lets a side
// that has no good capture stop here rather than being forced to capture.
func (e *Engine) quiescence(ply int, alpha, beta Value) Value {
	if e.shouldStop() {
		e.aborted = true
		return 0
	}
	e.statistics.Nodes++
	e.statistics.QuiescenceNodes++
	if e.statistics.Nodes%config.Settings.Search.NodesBetweenTimeChecks == 0 && e.shouldStop() {
		e.aborted = true
		return 0
	}

	standPat := e.eval.Evaluate(e.pos)
	if standPat >= beta {
		e.statistics.NodesPruned++
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := movegen.GenerateLegalCaptures(e.pos)
	ordered := orderMoves(e.pos, captures, MoveNone, MoveNone, [2]Move{MoveNone, MoveNone})

	for _, m := range ordered {
		e.pos.MakeMove(m)
		score := -e.quiescence(ply+1, -beta, -alpha)
		_ = e.pos.UnmakeMove()

		if e.aborted {
			return 0
		}
		if score >= beta {
			e.statistics.NodesPruned++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// updatePV splices the child's continuation onto this ply's line, the
// standard triangular-table technique.
func (e *Engine) updatePV(ply int, m Move) {
	if ply >= maxPly {
		return
	}
	e.pv[ply][ply] = m
	for next := ply + 1; next < e.pvLength[ply+1] && next < maxPly; next++ {
		e.pv[ply][next] = e.pv[ply+1][next]
	}
	e.pvLength[ply] = e.pvLength[ply+1]
	if e.pvLength[ply] <= ply {
		e.pvLength[ply] = ply + 1
	}
}

// storeKiller records a quiet beta-cutoff move in the two-slot killer
// table for this ply, demoting the existing primary killer rather than
// discarding it.
func (e *Engine) storeKiller(ply int, m Move) {
	bare := m.Bare()
	if e.killers[ply][0].Bare() == bare {
		return
	}
	e.killers[ply][1] = e.killers[ply][0]
	e.killers[ply][0] = bare
}
