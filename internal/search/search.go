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

// Package search implements iterative-deepening negamax alpha-beta with
// aspiration windows, quiescence search, a transposition table, killer
// moves and a triangular PV table. Engine is the external
// control surface and is not safe for concurrent
// Search calls — golang.org/x/sync/semaphore guards re-entrancy.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/franky-core/internal/config"
	"github.com/frankkopp/franky-core/internal/evaluator"
	myLogging "github.com/frankkopp/franky-core/internal/logging"
	"github.com/frankkopp/franky-core/internal/position"
	"github.com/frankkopp/franky-core/internal/transpositiontable"
	. "github.com/frankkopp/franky-core/internal/types"
	"github.com/frankkopp/franky-core/internal/util"
)

// Engine owns the transposition table, evaluator, and all per-search
// scratch state. Create one per game, not one per search call, so the
// TT survives between moves.
type Engine struct {
	tt   *transpositiontable.Table
	eval *evaluator.Evaluator
	log  *logging.Logger

	sem *semaphore.Weighted

	stopFlag util.AtomicBool
	aborted  bool

	pos *position.Position

	deadline   time.Time
	hasDline   bool
	limits     Limits
	startTime  time.Time

	statistics Statistics

	pv       [maxPly][maxPly]Move
	pvLength [maxPly]int
	killers  [maxPly][2]Move
}

// NewEngine builds an Engine with a transposition table sized in
// megabytes. ttSizeMB <= 0 falls back to the configured default.
func NewEngine(ttSizeMB int) *Engine {
	if ttSizeMB <= 0 {
		ttSizeMB = config.Settings.TT.DefaultSizeMB
	}
	return &Engine{
		tt:   transpositiontable.New(ttSizeMB),
		eval: evaluator.NewEvaluator(),
		log:  myLogging.GetLog("search"),
		sem:  semaphore.NewWeighted(1),
	}
}

// ClearHash empties the transposition table.
func (e *Engine) ClearHash() {
	e.tt.Clear()
}

// Stop requests the current Search call to return as soon as the next
// node-entry poll observes it. Safe to call from any goroutine.
func (e *Engine) Stop() {
	e.stopFlag.Set(true)
}

// Search runs iterative deepening with aspiration windows from pos until Limits is satisfied or Stop is called. It
// returns ErrConfiguration if limits names no budget, and ErrSearchRunning
// if another Search call on this Engine has not yet returned.
func (e *Engine) Search(pos *position.Position, limits Limits) (*Result, error) {
	if !limits.IsConfigured() {
		return nil, ErrConfiguration
	}
	if !e.sem.TryAcquire(1) {
		return nil, ErrSearchRunning
	}
	defer e.sem.Release(1)

	e.pos = pos
	e.limits = limits
	e.stopFlag.Set(false)
	e.aborted = false
	e.statistics = Statistics{}
	e.pv = [maxPly][maxPly]Move{}
	e.pvLength = [maxPly]int{}
	e.killers = [maxPly][2]Move{}
	e.startTime = time.Now()
	e.hasDline = limits.MaxTime > 0
	if e.hasDline {
		e.deadline = e.startTime.Add(limits.MaxTime)
	}

	e.tt.NewSearch()

	result := &Result{}
	maxDepth := limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = maxPly - 1
	}
	maxDepth = util.Min(maxDepth, maxPly-1)

	var lastScore Value
	for depth := 1; depth <= maxDepth; depth++ {
		score, ok := e.searchIteration(depth, lastScore)
		if !ok {
			break
		}
		lastScore = score
		result.Score = score
		result.DepthReached = depth
		result.BestMove = e.pv[0][0]
		result.PrincipalVariation = append([]Move(nil), e.pv[0][:e.pvLength[0]]...)

		if limits.MaxNodes > 0 && e.statistics.Nodes >= limits.MaxNodes {
			break
		}
		if score.IsMateScore() && !limits.Infinite {
			break
		}
	}

	e.statistics.Elapsed = time.Since(e.startTime)
	e.statistics.DepthReached = result.DepthReached
	e.statistics.Aborted = e.aborted
	e.statistics.TTProbes = e.tt.Stats.Probes
	e.statistics.TTHits = e.tt.Stats.Hits
	result.Statistics = e.statistics
	return result, nil
}

// searchIteration runs one depth of iterative deepening with an
// aspiration window re-search rule: depths below MinAspirationDepth use
// a full window; later depths open a narrow window around the previous
// score and, on each failure, re-search with the failed bound widened
// straight to infinity (fail-low reopens [-inf, beta], fail-high reopens
// [alpha, +inf]) rather than progressively widening, so there are at
// most two re-searches per depth. ok is false when
// the iteration was aborted before producing a usable result (time/node
// budget exhausted or Stop called) — the caller then keeps the previous
// iteration's result, preserving the anytime property.
func (e *Engine) searchIteration(depth int, lastScore Value) (Value, bool) {
	if depth < config.Settings.Search.MinAspirationDepth {
		score := e.negamax(depth, 0, -ValueInfinite, ValueInfinite)
		return score, !e.aborted
	}

	window := Value(config.Settings.Search.AspirationWindow)
	alpha := lastScore - window
	beta := lastScore + window

	for {
		score := e.negamax(depth, 0, alpha, beta)
		if e.aborted {
			return score, false
		}
		if score <= alpha {
			e.statistics.AspirationResearches++
			alpha = -ValueInfinite
			continue
		}
		if score >= beta {
			e.statistics.AspirationResearches++
			beta = ValueInfinite
			continue
		}
		return score, true
	}
}

// shouldStop is polled at node entry: the atomic stop flag, a
// wall-clock deadline, or a node-count ceiling all trigger cooperative
// cancellation. Infinite searches ignore the node/time budget and stop
// only via Stop().
func (e *Engine) shouldStop() bool {
	if e.stopFlag.Get() {
		return true
	}
	if e.limits.Infinite {
		return false
	}
	if e.hasDline && time.Now().After(e.deadline) {
		return true
	}
	if e.limits.MaxNodes > 0 && e.statistics.Nodes >= e.limits.MaxNodes {
		return true
	}
	return false
}
