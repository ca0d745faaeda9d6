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
	"strings"

	"github.com/frankkopp/MilkyGo/internal/types"
)

// Move is a fully reversible move record. Together with the mover's
// previous HasMoved flag and the previous double-push pawn captured
// during DoMove it holds everything UndoMove needs to restore the
// position exactly. The captured piece's own coordinates at capture
// time identify its square - for en passant that square is not the
// move's to-square.
type Move struct {
	FromX, FromY int
	ToX, ToY     int
	Piece        *Piece
	Captured     *Piece
	Promotion    types.PieceKind

	// recorded at creation resp. during DoMove for exact undo
	hadMoved       bool
	prevDoublePush *Piece
}

// NewMove creates a move of the given piece to the target square.
// captured may be nil, promotion may be KindNone.
func NewMove(piece *Piece, toX, toY int, captured *Piece, promotion types.PieceKind) *Move {
	return &Move{
		FromX:     piece.X,
		FromY:     piece.Y,
		ToX:       toX,
		ToY:       toY,
		Piece:     piece,
		Captured:  captured,
		Promotion: promotion,
		hadMoved:  piece.HasMoved,
	}
}

// IsCapture returns true if the move captures a piece
func (m *Move) IsCapture() bool {
	return m.Captured != nil
}

// String returns the move in coordinate notation, e.g. "e2e4" or
// "a7a8Q" for a promotion.
func (m *Move) String() string {
	var sb strings.Builder
	sb.WriteString(types.SquareString(m.FromX, m.FromY))
	sb.WriteString(types.SquareString(m.ToX, m.ToY))
	if m.Promotion != types.KindNone {
		sb.WriteString(m.Promotion.Char())
	}
	return sb.String()
}
