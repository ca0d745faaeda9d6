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

package movegen

import (
	"errors"

	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/types"
)

// Named failure kinds for moves entered by a collaborator (e.g. the
// terminal interface). None of them leaves the position changed.
var (
	// ErrNoPiece - the from-square is empty
	ErrNoPiece = errors.New("no piece on the selected square")
	// ErrWrongColor - the piece on the from-square does not belong to the side to move
	ErrWrongColor = errors.New("piece belongs to the opponent")
	// ErrInvalidTarget - the piece cannot reach the target square
	ErrInvalidTarget = errors.New("piece cannot reach the target square")
	// ErrPromotionRequired - a pawn reaches the last rank and no promotion kind was given
	ErrPromotionRequired = errors.New("promotion kind required")
	// ErrWouldSelfCheck - the move would leave the own king in check
	ErrWouldSelfCheck = errors.New("move would leave own king in check")
)

// MakeUserMove resolves the given coordinates and promotion kind
// against the side to move's pseudo legal moves and applies the
// matching move. Returns the applied move or one of the named
// failure kinds. On error the position is unchanged.
func (mg *Movegen) MakeUserMove(p *position.Position, fromX, fromY, toX, toY int, promotion types.PieceKind) (*position.Move, error) {
	piece := p.GetPiece(fromX, fromY)
	if piece == nil {
		return nil, ErrNoPiece
	}
	if piece.Color != p.NextPlayer() {
		return nil, ErrWrongColor
	}
	if piece.Kind == types.Pawn &&
		(toY == 0 || toY == types.BoardSize-1) &&
		promotion == types.KindNone {
		return nil, ErrPromotionRequired
	}
	pseudo := mg.PseudoLegalMoves(p, piece.Color)
	for _, m := range *pseudo {
		if m.Piece == piece && m.ToX == toX && m.ToY == toY && m.Promotion == promotion {
			if !p.DoMove(m) {
				return nil, ErrWouldSelfCheck
			}
			return m, nil
		}
	}
	return nil, ErrInvalidTarget
}
