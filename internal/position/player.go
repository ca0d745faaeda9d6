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

// Player holds one side's fixed roster of 16 pieces and a pointer to
// its king. Captured pieces stay in the roster with IsLive == false.
// The king pointer aims into the roster and stays valid for the
// position's lifetime - the king is never captured.
type Player struct {
	Color  types.Color
	Pieces [types.PiecesPerSide]Piece
	King   *Piece
}

// LivePieceCount returns the number of pieces of this player still on
// the board.
func (pl *Player) LivePieceCount() int {
	count := 0
	for i := range pl.Pieces {
		if pl.Pieces[i].IsLive {
			count++
		}
	}
	return count
}
