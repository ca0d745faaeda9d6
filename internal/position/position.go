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

// Package position represents the complete state of a chess game -
// the 8x8 board, the two players with their piece rosters, the side
// to move and the en passant state. It implements making and
// unmaking moves with exact undo, the attack oracle and the position
// fingerprint used as transposition table key.
package position

import (
	"strings"

	"github.com/frankkopp/MilkyGo/internal/types"
)

// Position is the single mutable game state of the engine. The board
// grid holds weak references into the players' rosters; both stay
// valid for the position's lifetime. A Position must not be copied by
// value as the board and king pointers aim into the player arrays -
// use Clone() instead.
type Position struct {
	board          [types.BoardSize][types.BoardSize]*Piece
	players        [types.ColorLength]Player
	next           types.Color
	lastDoublePush *Piece
}

// startKindOrder is the piece layout of the two back rank rows, back
// rank first.
var startKindOrder = [types.PiecesPerSide]types.PieceKind{
	types.Rook, types.Knight, types.Bishop, types.Queen,
	types.King, types.Bishop, types.Knight, types.Rook,
	types.Pawn, types.Pawn, types.Pawn, types.Pawn,
	types.Pawn, types.Pawn, types.Pawn, types.Pawn,
}

// NewPosition creates a position with the standard chess starting
// setup and white to move.
func NewPosition() *Position {
	p := &Position{
		next: types.White,
	}
	p.players[types.Black].Color = types.Black
	p.players[types.White].Color = types.White
	for i, kind := range startKindOrder {
		x := i % types.BoardSize
		blackY := i / types.BoardSize
		whiteY := types.BoardSize - i/types.BoardSize - 1
		black := &p.players[types.Black].Pieces[i]
		white := &p.players[types.White].Pieces[i]
		*black = Piece{Color: types.Black, Kind: kind, X: x, Y: blackY, IsLive: true}
		*white = Piece{Color: types.White, Kind: kind, X: x, Y: whiteY, IsLive: true}
		if kind == types.King {
			p.players[types.Black].King = black
			p.players[types.White].King = white
		}
		p.board[blackY][x] = black
		p.board[whiteY][x] = white
	}
	return p
}

// GetPiece returns the piece on the given square or nil
func (p *Position) GetPiece(x, y int) *Piece {
	return p.board[y][x]
}

// PlayerOf returns the player of the given color
func (p *Position) PlayerOf(c types.Color) *Player {
	return &p.players[c]
}

// NextPlayer returns the color of the side to move
func (p *Position) NextPlayer() types.Color {
	return p.next
}

// SetNextPlayer sets the side to move. Used when setting up
// non-standard positions.
func (p *Position) SetNextPlayer(c types.Color) {
	p.next = c
}

// LastDoublePush returns the pawn which advanced two squares on the
// immediately preceding ply or nil. This is the complete en passant
// state of the position.
func (p *Position) LastDoublePush() *Piece {
	return p.lastDoublePush
}

// LivePieceCount returns the total number of pieces on the board
func (p *Position) LivePieceCount() int {
	return p.players[types.Black].LivePieceCount() + p.players[types.White].LivePieceCount()
}

// RelocatePiece teleports a piece to the given square and marks it as
// moved. The target square must be empty. Used when setting up
// non-standard positions, not for playing moves.
func (p *Position) RelocatePiece(pc *Piece, x, y int) {
	p.board[pc.Y][pc.X] = nil
	pc.X = x
	pc.Y = y
	pc.HasMoved = true
	p.board[y][x] = pc
}

// RemovePiece takes a piece off the board and marks it as captured.
// Used when setting up non-standard positions.
func (p *Position) RemovePiece(pc *Piece) {
	p.board[pc.Y][pc.X] = nil
	pc.IsLive = false
}

// Clone returns a deep copy of the position with all internal
// references fixed up to aim into the copy's own rosters.
func (p *Position) Clone() *Position {
	c := &Position{
		players: p.players,
		next:    p.next,
	}
	for color := types.Black; color < types.ColorLength; color++ {
		pl := &c.players[color]
		for i := range pl.Pieces {
			pc := &pl.Pieces[i]
			if pc.Kind == types.King {
				pl.King = pc
			}
			if pc.IsLive {
				c.board[pc.Y][pc.X] = pc
			}
			if p.lastDoublePush == &p.players[color].Pieces[i] {
				c.lastDoublePush = pc
			}
		}
	}
	return c
}

// StringBoard returns an ASCII representation of the board from
// white's point of view with upper case white and lower case black
// pieces.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	for y := 0; y < types.BoardSize; y++ {
		sb.WriteString("+---+---+---+---+---+---+---+---+\n")
		for x := 0; x < types.BoardSize; x++ {
			sb.WriteString("| ")
			pc := p.board[y][x]
			switch {
			case pc == nil:
				sb.WriteString(" ")
			case pc.Color == types.White:
				sb.WriteString(pc.Kind.Char())
			default:
				sb.WriteString(strings.ToLower(pc.Kind.Char()))
			}
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	return sb.String()
}

// String returns the board plus the side to move
func (p *Position) String() string {
	return p.StringBoard() + p.next.String() + " to move\n"
}
