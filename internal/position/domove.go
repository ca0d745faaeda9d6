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
	"github.com/frankkopp/MilkyGo/internal/util"
)

// DoMove applies the move to the position and reports whether it is
// legal. A move is legal if it does not leave the mover's king in
// check; an illegal move is rolled back completely before returning
// false. Castling moves are additionally rejected when the square the
// king crosses is attacked - the move generator does not verify this.
func (p *Position) DoMove(m *Move) bool {
	mover := m.Piece

	// castling - the crossed square must not be attacked. Checked
	// before any mutation so a rejection leaves no trace.
	castling := mover.Kind == types.King && !m.hadMoved && util.Abs(m.ToX-m.FromX) == 2
	if castling {
		crossedX := (m.FromX + m.ToX) / 2
		if p.IsAttacked(crossedX, m.FromY, mover.Color.Flip()) {
			return false
		}
	}

	// capture
	if m.Captured != nil {
		m.Captured.IsLive = false
	}

	// move the piece
	p.board[m.FromY][m.FromX] = nil
	p.board[m.ToY][m.ToX] = mover
	mover.X = m.ToX
	mover.Y = m.ToY
	mover.HasMoved = true

	// castling moves the rook to the square the king crossed
	if castling {
		if m.ToX == 2 {
			rook := p.board[m.ToY][0]
			rook.X = 3
			rook.HasMoved = true
			p.board[m.ToY][0] = nil
			p.board[m.ToY][3] = rook
		} else {
			rook := p.board[m.ToY][7]
			rook.X = 5
			rook.HasMoved = true
			p.board[m.ToY][7] = nil
			p.board[m.ToY][5] = rook
		}
	}

	// pawn promotion
	if m.Promotion != types.KindNone {
		mover.Kind = m.Promotion
	}

	// en passant bookkeeping - remember the previous double-push pawn
	// in the move for undo and record a new one on a two-square pawn
	// advance
	m.prevDoublePush = p.lastDoublePush
	if mover.Kind == types.Pawn && util.Abs(m.ToY-m.FromY) == 2 {
		p.lastDoublePush = mover
	} else {
		p.lastDoublePush = nil
	}

	// in an en passant capture the captured pawn does not stand on the
	// to-square and its own square must be cleared
	if m.Captured != nil && m.ToY != m.Captured.Y {
		p.board[m.Captured.Y][m.Captured.X] = nil
	}

	p.next = p.next.Flip()

	// the mover must not leave its own king in check
	if p.IsCheck(mover.Color) {
		p.UndoMove(m)
		return false
	}
	return true
}

// UndoMove reverses a move done with DoMove and restores the position
// exactly - coordinates, HasMoved flags, roster liveness, the en
// passant state and the side to move.
func (p *Position) UndoMove(m *Move) {
	mover := m.Piece

	if m.Captured != nil {
		m.Captured.IsLive = true
	}

	p.board[m.FromY][m.FromX] = mover
	p.board[m.ToY][m.ToX] = nil
	if m.Captured != nil {
		// restores to the captured piece's own square which differs
		// from the to-square in en passant
		p.board[m.Captured.Y][m.Captured.X] = m.Captured
	}
	mover.X = m.FromX
	mover.Y = m.FromY
	mover.HasMoved = m.hadMoved

	// castling rook unshift
	if mover.Kind == types.King && !m.hadMoved && util.Abs(m.ToX-m.FromX) == 2 {
		if m.ToX == 2 {
			rook := p.board[m.ToY][3]
			rook.X = 0
			rook.HasMoved = false
			p.board[m.ToY][3] = nil
			p.board[m.ToY][0] = rook
		} else {
			rook := p.board[m.ToY][5]
			rook.X = 7
			rook.HasMoved = false
			p.board[m.ToY][5] = nil
			p.board[m.ToY][7] = rook
		}
	}

	// promotion reverts to a pawn
	if m.Promotion != types.KindNone {
		mover.Kind = types.Pawn
	}

	p.lastDoublePush = m.prevDoublePush
	p.next = p.next.Flip()
}
