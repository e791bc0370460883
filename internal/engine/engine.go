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

// Package engine is the external control surface: a
// thin Position wrapper (Apply/Undo/LegalMoves/IsCheckmate/IsStalemate)
// and a SearchEngine wrapper around the search package's iterative
// deepening — the seam a future UCI or CLI driver sits behind without
// reaching into internal/position, internal/movegen or internal/search
// directly. Nothing here owns I/O; that is left to the driver.
package engine

import (
	"context"
	"fmt"

	"github.com/frankkopp/franky-core/internal/movegen"
	"github.com/frankkopp/franky-core/internal/position"
	"github.com/frankkopp/franky-core/internal/search"
	. "github.com/frankkopp/franky-core/internal/types"
)

// Position wraps position.Position with the legality-aware operations
// (Apply, Undo, LegalMoves, IsCheckmate, IsStalemate) that must live in
// movegen rather than on Position itself, to avoid an
// import cycle (movegen already imports position).
type Position struct {
	inner *position.Position
}

// NewGame returns a Position set to the standard starting array.
func NewGame() *Position {
	return &Position{inner: position.NewStartPosition()}
}

// NewPosition builds a Position from explicit placements, delegating
// every invariant check to position.NewPosition.
func NewPosition(placements []position.Placement, sideToMove Color, castling CastlingRights, ep Square, halfmoveClock, fullmoveNumber uint32) (*Position, error) {
	p, err := position.NewPosition(placements, sideToMove, castling, ep, halfmoveClock, fullmoveNumber)
	if err != nil {
		return nil, err
	}
	return &Position{inner: p}, nil
}

// Raw exposes the underlying position.Position for callers (evaluator,
// search) that need the lower-level type directly.
func (p *Position) Raw() *position.Position { return p.inner }

// LegalMoves returns every legal move from the current position.
func (p *Position) LegalMoves() []Move {
	return movegen.GenerateLegal(p.inner)
}

// Apply plays m if it is legal, or returns movegen.ErrIllegalMove.
func (p *Position) Apply(m Move) error {
	return movegen.Apply(p.inner, m)
}

// Undo reverses the most recent Apply. Returns
// position.ErrUnmakeUnderflow if nothing has been applied.
func (p *Position) Undo() error {
	return movegen.Undo(p.inner)
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool { return p.inner.IsCheck() }

// IsCheckmate reports checkmate.
func (p *Position) IsCheckmate() bool { return movegen.IsCheckmate(p.inner) }

// IsStalemate reports stalemate.
func (p *Position) IsStalemate() bool { return movegen.IsStalemate(p.inner) }

// IsDrawByRule reports a 50-move or threefold-repetition draw.
func (p *Position) IsDrawByRule() bool { return p.inner.IsDrawByRule() }

// SetExternalHistory seeds repetition detection with keys from before
// this Position's own history began.
func (p *Position) SetExternalHistory(keys []position.Key) {
	p.inner.SetExternalHistory(keys)
}

// SearchEngine wraps search.Engine with context-aware cancellation, the
// glue a UCI "stop" command or a CLI's Ctrl-C handler needs without
// touching search internals.
type SearchEngine struct {
	inner *search.Engine
}

// NewSearchEngine constructs a SearchEngine with a transposition table
// sized in megabytes; ttSizeMB <= 0 uses the configured default.
func NewSearchEngine(ttSizeMB int) *SearchEngine {
	return &SearchEngine{inner: search.NewEngine(ttSizeMB)}
}

// Search runs the given position to the given limits. If ctx is
// cancelled before the search completes, Stop is invoked automatically
// so Search still returns the anytime-best result found so far.
func (s *SearchEngine) Search(ctx context.Context, pos *Position, limits search.Limits) (*search.Result, error) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.inner.Stop()
		case <-done:
		}
	}()
	result, err := s.inner.Search(pos.inner, limits)
	if err != nil {
		return nil, fmt.Errorf("engine: search failed: %w", err)
	}
	return result, nil
}

// Stop requests the current Search call to return early.
func (s *SearchEngine) Stop() { s.inner.Stop() }

// ClearHash empties the transposition table.
func (s *SearchEngine) ClearHash() { s.inner.ClearHash() }
