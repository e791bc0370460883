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

import "fmt"

// MoveFlag tags a Move with the special rule it represents. Promotion
// flags double as "promote to this piece type", so they also carry the
// promoted kind.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	Capture
	DoublePawnPush
	EnPassant
	CastleKingside
	CastleQueenside
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
	PromoteKnightCapture
	PromoteBishopCapture
	PromoteRookCapture
	PromoteQueenCapture
)

// IsPromotion reports whether the flag denotes a promotion move, capture
// or not.
func (f MoveFlag) IsPromotion() bool {
	return f >= PromoteKnight && f <= PromoteQueenCapture
}

// IsCapture reports whether applying a move with this flag removes an
// enemy piece (plain captures, en passant and promotion-captures).
func (f MoveFlag) IsCapture() bool {
	return f == Capture || f == EnPassant || (f >= PromoteKnightCapture && f <= PromoteQueenCapture)
}

// PromotedPieceType returns the piece type a promotion flag promotes to.
// Only meaningful when IsPromotion() is true.
func (f MoveFlag) PromotedPieceType() PieceType {
	switch f {
	case PromoteKnight, PromoteKnightCapture:
		return Knight
	case PromoteBishop, PromoteBishopCapture:
		return Bishop
	case PromoteRook, PromoteRookCapture:
		return Rook
	case PromoteQueen, PromoteQueenCapture:
		return Queen
	default:
		return PtNone
	}
}

// Move is a compact (from, to, flag) move record. Two 8-bit squares and
// an 8-bit flag fit a single uint32 with room left over for the search's
// move-ordering sort key in a packed move encoding.
type Move uint32

const (
	MoveNone Move = 0

	fromShift  = 8
	flagShift  = 16
	valueShift = 24

	toMask    = 0x000000FF
	fromMask  = 0x0000FF00
	flagMask  = 0x00FF0000
	valueMask = 0xFF000000
)

// NewMove encodes a move from its components.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(to) | Move(from)<<fromShift | Move(flag)<<flagShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// Flag returns the move's special-rule tag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m & flagMask) >> flagShift)
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Flag().IsCapture()
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag().IsPromotion()
}

// WithOrderValue returns a copy of the move carrying a move-ordering sort
// key in its high byte. The key never affects From/To/Flag decoding.
func (m Move) WithOrderValue(v uint8) Move {
	return (m &^ valueMask) | Move(v)<<valueShift
}

// OrderValue returns the move-ordering sort key set by WithOrderValue.
func (m Move) OrderValue() uint8 {
	return uint8((m & valueMask) >> valueShift)
}

// Bare strips the move-ordering sort key, useful for equality comparisons
// against moves pulled from the transposition table or PV.
func (m Move) Bare() Move {
	return m &^ valueMask
}

// String renders the move in long algebraic notation, e.g. "e2e4" or
// "e7e8q". The core never parses this format; it exists for logs and
// tests only, since a UCI-style boundary owns move text elsewhere.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if pt := m.Flag().PromotedPieceType(); pt != PtNone {
		s += pt.String()
	}
	return s
}

// GoString supports %#v formatting in debug logs.
func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s)", m.String())
}
