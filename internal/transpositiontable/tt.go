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

// Package transpositiontable implements a fixed-capacity associative
// cache of previously searched positions keyed by Zobrist hash. It is
// not thread safe; the search engine owns one instance and must not
// mutate it from more than one goroutine concurrently.
package transpositiontable

import (
	"math"
	"math/bits"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/franky-core/internal/assert"
	myLogging "github.com/frankkopp/franky-core/internal/logging"
	"github.com/frankkopp/franky-core/internal/position"
	. "github.com/frankkopp/franky-core/internal/types"
)

var out = message.NewPrinter(language.German)

const bytesPerMB = 1024 * 1024

// ProbeResult tags what Probe found.
type ProbeResult uint8

const (
	NoHit ProbeResult = iota
	UsableScore
	MoveHint
)

// Stats counts TT usage for the search statistics surface.
type Stats struct {
	Probes      uint64
	Hits        uint64
	Collisions  uint64
	Overwrites  uint64
}

// Table is the fixed-size transposition table.
type Table struct {
	log   *logging.Logger
	data  []Entry
	mask  uint64
	age   uint16
	Stats Stats
}

// New creates a Table sized from a byte budget. Capacity is rounded
// down to a power of two so key%capacity becomes a cheap mask.
func New(sizeInMByte int) *Table {
	t := &Table{log: myLogging.GetLog("tt")}
	t.Resize(sizeInMByte)
	return t
}

// Resize clears the table and re-sizes it to the given byte budget.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte <= 0 {
		t.data = nil
		t.mask = 0
		return
	}
	totalBytes := uint64(sizeInMByte) * bytesPerMB
	entries := totalBytes / EntrySize
	if entries == 0 {
		t.data = nil
		t.mask = 0
		return
	}
	capacity := uint64(1) << uint(bits.Len64(entries)-1)
	t.data = make([]Entry, capacity)
	t.mask = capacity - 1
	t.log.Info(out.Sprintf("TT resized to %d entries (%d MB requested)", capacity, sizeInMByte))
}

// Clear empties every slot without changing capacity.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.age = 0
}

// NewSearch bumps the generation counter used by the replacement policy.
func (t *Table) NewSearch() {
	t.age++
}

func (t *Table) index(key position.Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns a three-way probe result: a depth-sufficient
// usable bound returns UsableScore, any other hit returns MoveHint to
// prime move ordering, and a miss returns NoHit. Mate scores are
// translated from "distance from this node" storage form back into
// "distance from the root at ply" before being handed to the caller.
func (t *Table) Probe(key position.Key, depth int, alpha, beta Value, ply int) (ProbeResult, Value, Move) {
	if len(t.data) == 0 {
		return NoHit, 0, MoveNone
	}
	t.Stats.Probes++
	e := &t.data[t.index(key)]
	if e.Key != key {
		return NoHit, 0, MoveNone
	}
	t.Stats.Hits++
	if int(e.Depth) >= depth {
		score := scoreFromTT(e.Score, ply)
		switch e.Bound {
		case BoundExact:
			return UsableScore, score, e.BestMove
		case BoundLower:
			if score >= beta {
				return UsableScore, score, e.BestMove
			}
		case BoundUpper:
			if score <= alpha {
				return UsableScore, score, e.BestMove
			}
		}
	}
	return MoveHint, 0, e.BestMove
}

// Store replaces the slot for key per the depth-preferred / age-aware
// replacement policy. Mate scores are translated to "distance
// from this node" form so a stored entry is still correct when revisited
// at a different ply.
func (t *Table) Store(key position.Key, depth int, score Value, bound Bound, best Move, ply int) {
	if len(t.data) == 0 {
		return
	}
	if assert.DEBUG {
		assert.Assert(bound != BoundNone, "Store: entry for %v stored with BoundNone", key)
	}
	e := &t.data[t.index(key)]
	if e.Key != 0 && e.Key != key {
		t.Stats.Collisions++
	}
	if e.Key == key || e.Key == 0 || int(e.Depth) <= depth || e.Age != t.age {
		if e.Key != 0 {
			t.Stats.Overwrites++
		}
		e.Key = key
		e.Depth = int16(depth)
		e.Score = scoreToTT(score, ply)
		e.Bound = bound
		if best != MoveNone {
			e.BestMove = best.Bare()
		}
		e.Age = t.age
	}
}

// scoreToTT converts an absolute mate score into a ply-independent
// "distance from this node" value before storing it.
func scoreToTT(score Value, ply int) Value {
	if score >= MateThreshold {
		return score + Value(ply)
	}
	if score <= -MateThreshold {
		return score - Value(ply)
	}
	return score
}

// scoreFromTT reverses scoreToTT when reading a stored mate score back
// at a (possibly different) ply.
func scoreFromTT(score Value, ply int) Value {
	if score >= MateThreshold {
		return score - Value(ply)
	}
	if score <= -MateThreshold {
		return score + Value(ply)
	}
	return score
}

// Capacity returns the number of slots in the table.
func (t *Table) Capacity() int {
	return len(t.data)
}

// SizeMB reports the approximate memory footprint.
func (t *Table) SizeMB() float64 {
	return float64(len(t.data)*EntrySize) / math.Max(1, bytesPerMB)
}
