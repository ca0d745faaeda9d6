//
// MilkyGo - chess engine in GO for learning purposes
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
	"github.com/frankkopp/MilkyGo/internal/types"
)

// fingerprint layout: 32 bytes packed board (two squares per byte,
// 4 bits each: 1 bit color, 3 bits kind, 0 for empty), then one byte
// side to move, one byte castling rights and one byte en passant
// file (0xFF when none).
const fingerprintLen = types.BoardSize*types.BoardSize/2 + 3

const noEnPassantFile = 0xFF

// Fingerprint returns a canonical compact encoding of the position
// used as transposition table key. Two positions have an equal
// fingerprint iff every square holds the same (color, kind), the side
// to move is the same and castling rights and the en passant target
// are identical.
func (p *Position) Fingerprint() string {
	var b [fingerprintLen]byte
	for y := 0; y < types.BoardSize; y++ {
		for x := 0; x < types.BoardSize; x++ {
			var code byte
			if pc := p.board[y][x]; pc != nil {
				code = byte(pc.Kind)
				if pc.Color == types.Black {
					code |= 0b1000
				}
			}
			idx := (y*types.BoardSize + x) / 2
			if x%2 == 1 {
				b[idx] |= code << 4
			} else {
				b[idx] = code
			}
		}
	}
	b[32] = byte(p.next)
	b[33] = p.castlingRights()
	if p.lastDoublePush != nil {
		b[34] = byte(p.lastDoublePush.X)
	} else {
		b[34] = noEnPassantFile
	}
	return string(b[:])
}

// castlingRights packs the four castling rights into one byte:
// bit 0 white king side, bit 1 white queen side, bit 2 black king
// side, bit 3 black queen side. A right is present while the king and
// the corresponding corner rook have not moved.
func (p *Position) castlingRights() byte {
	var rights byte
	if p.hasCastlingRight(types.White, 7) {
		rights |= 1 << 0
	}
	if p.hasCastlingRight(types.White, 0) {
		rights |= 1 << 1
	}
	if p.hasCastlingRight(types.Black, 7) {
		rights |= 1 << 2
	}
	if p.hasCastlingRight(types.Black, 0) {
		rights |= 1 << 3
	}
	return rights
}

func (p *Position) hasCastlingRight(c types.Color, rookX int) bool {
	if p.players[c].King.HasMoved {
		return false
	}
	backY := 0
	if c == types.White {
		backY = types.BoardSize - 1
	}
	rook := p.board[backY][rookX]
	return rook != nil && rook.Color == c && rook.Kind == types.Rook && !rook.HasMoved
}
