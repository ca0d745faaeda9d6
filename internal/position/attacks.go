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

// IsAttacked determines if any live piece of the given color could
// capture the square on its next move. This is a pseudo legality
// question - whether such a capture would leave the attacker's own
// king in check is ignored. The check radiates from the query square:
// the two pawn attack squares, the knight and king offsets and the
// eight sliding rays.
func (p *Position) IsAttacked(x, y int, by types.Color) bool {
	// pawns - an attacking pawn stands one rank against its moving
	// direction from the query square
	pawnY := y - by.Direction()
	for _, dx := range [2]int{-1, 1} {
		px := x + dx
		if types.IsOnBoard(px, pawnY) {
			attacker := p.board[pawnY][px]
			if attacker != nil && attacker.Color == by && attacker.Kind == types.Pawn {
				return true
			}
		}
	}
	// knights
	for _, d := range types.KnightDeltas {
		nx, ny := x+d.X, y+d.Y
		if types.IsOnBoard(nx, ny) {
			attacker := p.board[ny][nx]
			if attacker != nil && attacker.Color == by && attacker.Kind == types.Knight {
				return true
			}
		}
	}
	// the enemy king
	for _, d := range types.KingDeltas {
		kx, ky := x+d.X, y+d.Y
		if types.IsOnBoard(kx, ky) {
			attacker := p.board[ky][kx]
			if attacker != nil && attacker.Color == by && attacker.Kind == types.King {
				return true
			}
		}
	}
	// orthogonal rays - first occupied square decides
	for _, d := range types.OrthogonalDeltas {
		for dist := 1; ; dist++ {
			rx, ry := x+dist*d.X, y+dist*d.Y
			if !types.IsOnBoard(rx, ry) {
				break
			}
			attacker := p.board[ry][rx]
			if attacker != nil {
				if attacker.Color == by &&
					(attacker.Kind == types.Rook || attacker.Kind == types.Queen) {
					return true
				}
				break
			}
		}
	}
	// diagonal rays
	for _, d := range types.DiagonalDeltas {
		for dist := 1; ; dist++ {
			rx, ry := x+dist*d.X, y+dist*d.Y
			if !types.IsOnBoard(rx, ry) {
				break
			}
			attacker := p.board[ry][rx]
			if attacker != nil {
				if attacker.Color == by &&
					(attacker.Kind == types.Bishop || attacker.Kind == types.Queen) {
					return true
				}
				break
			}
		}
	}
	return false
}

// IsCheck determines if the king of the given color is attacked by
// the opposite color.
func (p *Position) IsCheck(c types.Color) bool {
	king := p.players[c].King
	return p.IsAttacked(king.X, king.Y, c.Flip())
}
