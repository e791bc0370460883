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

package position

import (
	"math/rand"

	. "github.com/frankkopp/franky-core/internal/types"
)

// Key is a 64-bit Zobrist hash identifying a position.
type Key uint64

// zobrist is the fixed random table used to build and incrementally
// update Key values. Seeded deterministically so the same binary always
// produces the same keys for the same positions (important for
// transposition-table stability across runs).
var zobrist struct {
	piece    [ColorLength][PieceTypeLength][64]Key
	castling [16]Key
	enPassantFile [8]Key
	sideToMove    Key
}

func init() {
	r := rand.New(rand.NewSource(0xC0FFEE))
	next := func() Key {
		return Key(r.Uint64())
	}
	for c := 0; c < ColorLength; c++ {
		for pt := 0; pt < PieceTypeLength; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobrist.piece[c][pt][sq] = next()
			}
		}
	}
	for i := range zobrist.castling {
		zobrist.castling[i] = next()
	}
	for i := range zobrist.enPassantFile {
		zobrist.enPassantFile[i] = next()
	}
	zobrist.sideToMove = next()
}

func pieceKey(p Piece, sq Square) Key {
	return zobrist.piece[p.ColorOf()][p.TypeOf()][sq]
}

func castlingKey(c CastlingRights) Key {
	return zobrist.castling[c]
}

func enPassantKey(sq Square) Key {
	if sq == SqNone {
		return 0
	}
	return zobrist.enPassantFile[sq.File()]
}

func sideToMoveKey() Key {
	return zobrist.sideToMove
}

// computeKey recomputes a position's Zobrist key from scratch. Used to
// seed the key in NewPosition and to cross-check the incrementally
// maintained key; the hot path never calls this.
func computeKey(b *Board, side Color, castling CastlingRights, ep Square) Key {
	var k Key
	for sq := Square(0); sq < 64; sq++ {
		if p := b.PieceAt(sq); p != PieceNone {
			k ^= pieceKey(p, sq)
		}
	}
	k ^= castlingKey(castling)
	k ^= enPassantKey(ep)
	if side == Black {
		k ^= sideToMoveKey()
	}
	return k
}
