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

// Piece is a (color, kind) pair packed into a single byte so an empty
// square is trivially distinguishable from any occupied one.
//
//	bit 3    color (0 = white, 1 = black)
//	bits 0-2 piece type
type Piece int8

const (
	PieceNone Piece = 0
)

// MakePiece packs a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int8(c)<<3 | int8(pt))
}

// TypeOf returns the piece type, ignoring color.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0b0111)
}

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	if p&0b1000 != 0 {
		return Black
	}
	return White
}

// IsEmpty reports whether the square this piece came from holds nothing.
func (p Piece) IsEmpty() bool {
	return p == PieceNone
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	s := p.TypeOf().String()
	if p.ColorOf() == White {
		return string(rune(s[0]) - 32)
	}
	return s
}
