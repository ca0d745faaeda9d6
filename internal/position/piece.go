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

// Piece is a single chess piece. Pieces are owned by their player's
// roster and never move in memory - only their coordinates, kind
// (pawn promotion), HasMoved and IsLive flags mutate over a game.
type Piece struct {
	Color    types.Color
	Kind     types.PieceKind
	X, Y     int
	HasMoved bool
	IsLive   bool
}

// SquareString returns the algebraic notation of the piece's square
func (pc *Piece) SquareString() string {
	return types.SquareString(pc.X, pc.Y)
}

// String returns a short representation like "White Rook a1"
func (pc *Piece) String() string {
	return pc.Color.String() + " " + pc.Kind.String() + " " + pc.SquareString()
}
