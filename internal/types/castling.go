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

// CastlingRights packs the four independent castling booleans
// into a 4-bit set. Rights only ever clear, never re-set.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	CastlingNone = CastlingRights(0)
	CastlingAll  = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether all bits of mask are set.
func (c CastlingRights) Has(mask CastlingRights) bool {
	return c&mask == mask
}

// Clear returns c with the bits in mask cleared.
func (c CastlingRights) Clear(mask CastlingRights) CastlingRights {
	return c &^ mask
}

func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	s := ""
	if c.Has(WhiteKingside) {
		s += "K"
	}
	if c.Has(WhiteQueenside) {
		s += "Q"
	}
	if c.Has(BlackKingside) {
		s += "k"
	}
	if c.Has(BlackQueenside) {
		s += "q"
	}
	return s
}

// KingsideFor and QueensideFor select the relevant right for a color.
func KingsideFor(c Color) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

func QueensideFor(c Color) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// BothFor selects both castling rights belonging to a color.
func BothFor(c Color) CastlingRights {
	return KingsideFor(c) | QueensideFor(c)
}
