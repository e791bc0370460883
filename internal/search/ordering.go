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
	"sort"

	"github.com/frankkopp/franky-core/internal/position"
	. "github.com/frankkopp/franky-core/internal/types"
)

// Move ordering priorities: lower sorts earlier.
const (
	priorityTT       = 0
	priorityPV       = 1
	priorityCapture  = 10 // + MVV-LVA adjustment, stays below priorityKiller
	priorityKiller1  = 500
	priorityKiller2  = 501
	priorityQuiet    = 1000
)

type scoredMove struct {
	move     Move
	priority int
}

// orderMoves sorts pseudo-legal-filtered moves by TT best move, then the
// previous iteration's PV move at this ply, then MVV-LVA captures, then
// killer moves, then remaining quiets. Sorting is stable so equally-prioritized moves (in
// particular all untagged quiets) keep their generator order, satisfying
// the "keep the first one explored" tie-break rule.
func orderMoves(pos *position.Position, moves []Move, ttMove, pvMove Move, killers [2]Move) []Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, priority: priorityOf(pos, m, ttMove, pvMove, killers)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].priority < scored[j].priority
	})
	out := make([]Move, len(scored))
	for i, s := range scored {
		out[i] = s.move
	}
	return out
}

func priorityOf(pos *position.Position, m, ttMove, pvMove Move, killers [2]Move) int {
	bare := m.Bare()
	if ttMove != MoveNone && bare == ttMove.Bare() {
		return priorityTT
	}
	if pvMove != MoveNone && bare == pvMove.Bare() {
		return priorityPV
	}
	if m.IsCapture() {
		return priorityCapture + mvvLvaPenalty(pos, m)
	}
	if killers[0] != MoveNone && bare == killers[0].Bare() {
		return priorityKiller1
	}
	if killers[1] != MoveNone && bare == killers[1].Bare() {
		return priorityKiller2
	}
	return priorityQuiet
}

// mvvLvaPenalty ranks captures by most-valuable-victim, least-valuable-
// attacker: a higher-value victim produces a smaller (earlier) penalty,
// and among equal victims a lower-value attacker produces a smaller
// penalty. The result is deliberately tiny (0-99): added to
// priorityCapture it must keep every capture below priorityKiller1, so
// captures always sort before killers and quiets, per the move-ordering
// priority chain.
func mvvLvaPenalty(pos *position.Position, m Move) int {
	victimSq := m.To()
	if m.Flag() == EnPassant {
		victimSq = MakeSquare(m.To().File(), m.From().Rank())
	}
	victim := int(PieceTypeValue[pos.Board().PieceAt(victimSq).TypeOf()]) / 100
	attacker := int(PieceTypeValue[pos.Board().PieceAt(m.From()).TypeOf()]) / 100
	// Victim rank dominates (spread by 10); attacker rank only breaks
	// ties among captures of the same victim. Ranks run roughly 0-9, so
	// the whole expression stays in 0-99.
	return (9-victim)*10 + attacker
}
