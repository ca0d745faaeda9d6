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

// Package movegen contains the move generation for a chess position -
// pseudo legal and legal move lists, the terminal state oracle and
// the perft test driver.
package movegen

import (
	"github.com/frankkopp/MilkyGo/internal/movelist"
	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/types"
	"github.com/frankkopp/MilkyGo/internal/util"
)

// Movegen generates moves for a given position. The instance keeps
// reusable buffers for generation; the returned lists are fresh and
// may outlive the generating call. Moves reference pieces of the
// position they were generated for.
//  Create a new instance with NewMoveGen()
type Movegen struct {
	captures movelist.MoveList
	quiet    movelist.MoveList
}

// NewMoveGen creates a new instance of a move generator
func NewMoveGen() *Movegen {
	return &Movegen{
		captures: make(movelist.MoveList, 0, 64),
		quiet:    make(movelist.MoveList, 0, 128),
	}
}

// PseudoLegalMoves generates all pseudo legal moves for the given
// color - moves which obey the movement rules but may leave the own
// king in check. Captures are listed before non-captures. Castling is
// emitted when king and rook have not moved and the squares between
// them are empty; whether the king's transit square is attacked is
// left to move execution.
func (mg *Movegen) PseudoLegalMoves(p *position.Position, c types.Color) *movelist.MoveList {
	mg.captures.Clear()
	mg.quiet.Clear()

	player := p.PlayerOf(c)
	for i := range player.Pieces {
		piece := &player.Pieces[i]
		if !piece.IsLive {
			continue
		}
		switch piece.Kind {
		case types.Pawn:
			mg.generatePawnMoves(p, piece)
		case types.Knight:
			mg.generateStepperMoves(p, piece, types.KnightDeltas[:])
		case types.King:
			mg.generateStepperMoves(p, piece, types.KingDeltas[:])
			mg.generateCastlingMoves(p, piece)
		case types.Rook:
			mg.generateSliderMoves(p, piece, types.OrthogonalDeltas[:])
		case types.Bishop:
			mg.generateSliderMoves(p, piece, types.DiagonalDeltas[:])
		case types.Queen:
			mg.generateSliderMoves(p, piece, types.OrthogonalDeltas[:])
			mg.generateSliderMoves(p, piece, types.DiagonalDeltas[:])
		}
	}

	moves := movelist.NewMoveList(mg.captures.Len() + mg.quiet.Len())
	moves.PushList(&mg.captures)
	moves.PushList(&mg.quiet)
	return moves
}

// LegalMoves generates all legal moves for the given color by
// applying and undoing each pseudo legal move.
func (mg *Movegen) LegalMoves(p *position.Position, c types.Color) *movelist.MoveList {
	pseudo := mg.PseudoLegalMoves(p, c)
	legal := movelist.NewMoveList(pseudo.Len())
	for _, m := range *pseudo {
		if p.DoMove(m) {
			p.UndoMove(m)
			legal.PushBack(m)
		}
	}
	return legal
}

// HasLegalMove determines if the given color has at least one legal
// move in the position.
func (mg *Movegen) HasLegalMove(p *position.Position, c types.Color) bool {
	pseudo := mg.PseudoLegalMoves(p, c)
	for _, m := range *pseudo {
		if p.DoMove(m) {
			p.UndoMove(m)
			return true
		}
	}
	return false
}

// GameState classifies the position for the given color: InPlay when
// a legal move exists, otherwise Loss when the player is in check
// (checkmate) and Draw when not (stalemate).
func (mg *Movegen) GameState(p *position.Position, c types.Color) types.GameState {
	if mg.HasLegalMove(p, c) {
		return types.InPlay
	}
	if p.IsCheck(c) {
		return types.Loss
	}
	return types.Draw
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

func (mg *Movegen) push(m *position.Move) {
	if m.IsCapture() {
		mg.captures.PushBack(m)
	} else {
		mg.quiet.PushBack(m)
	}
}

// generatePawnMoves emits pushes, double pushes, diagonal captures,
// promotions and the en passant capture for one pawn.
func (mg *Movegen) generatePawnMoves(p *position.Position, piece *position.Piece) {
	dir := piece.Color.Direction()

	// double push - both the intermediate and the target square must
	// be empty and the pawn on its starting rank
	if !piece.HasMoved &&
		p.GetPiece(piece.X, piece.Y+dir) == nil &&
		p.GetPiece(piece.X, piece.Y+2*dir) == nil {
		mg.push(position.NewMove(piece, piece.X, piece.Y+2*dir, nil, types.KindNone))
	}

	// single push and diagonal captures, once per promotion kind on
	// the last rank
	toY := piece.Y + dir
	promotions := []types.PieceKind{types.KindNone}
	if toY == 0 || toY == types.BoardSize-1 {
		promotions = types.PromotionKinds[:]
	}
	for _, promo := range promotions {
		if p.GetPiece(piece.X, toY) == nil {
			mg.push(position.NewMove(piece, piece.X, toY, nil, promo))
		}
		for _, dx := range [2]int{-1, 1} {
			toX := piece.X + dx
			if !types.IsOnBoard(toX, toY) {
				continue
			}
			target := p.GetPiece(toX, toY)
			if target != nil && target.Color != piece.Color {
				mg.push(position.NewMove(piece, toX, toY, target, promo))
			}
		}
	}

	// en passant - the opposing pawn double-pushed past us on the
	// preceding ply and stands on an adjacent file of the same rank
	ldp := p.LastDoublePush()
	if ldp != nil && ldp.Color != piece.Color &&
		ldp.Y == piece.Y && util.Abs(ldp.X-piece.X) == 1 {
		mg.push(position.NewMove(piece, ldp.X, piece.Y+dir, ldp, types.KindNone))
	}
}

// generateStepperMoves emits moves for pieces moving a single step
// (knight and king).
func (mg *Movegen) generateStepperMoves(p *position.Position, piece *position.Piece, deltas []types.Delta) {
	for _, d := range deltas {
		toX, toY := piece.X+d.X, piece.Y+d.Y
		if !types.IsOnBoard(toX, toY) {
			continue
		}
		target := p.GetPiece(toX, toY)
		if target == nil {
			mg.push(position.NewMove(piece, toX, toY, nil, types.KindNone))
		} else if target.Color != piece.Color {
			mg.push(position.NewMove(piece, toX, toY, target, types.KindNone))
		}
	}
}

// generateSliderMoves emits moves along rays for bishop, rook and
// queen. Each empty square is a move, the first occupied square is a
// capture iff it holds an enemy piece and ends the ray.
func (mg *Movegen) generateSliderMoves(p *position.Position, piece *position.Piece, deltas []types.Delta) {
	for _, d := range deltas {
		for dist := 1; ; dist++ {
			toX, toY := piece.X+dist*d.X, piece.Y+dist*d.Y
			if !types.IsOnBoard(toX, toY) {
				break
			}
			target := p.GetPiece(toX, toY)
			if target != nil {
				if target.Color != piece.Color {
					mg.push(position.NewMove(piece, toX, toY, target, types.KindNone))
				}
				break
			}
			mg.push(position.NewMove(piece, toX, toY, nil, types.KindNone))
		}
	}
}

// generateCastlingMoves emits the two-file king moves for castling.
// Conditions checked here: king unmoved and not in check, corner rook
// of the own color present and unmoved, squares strictly between king
// and rook empty. The transit square attack test happens in DoMove.
func (mg *Movegen) generateCastlingMoves(p *position.Position, king *position.Piece) {
	if king.HasMoved || p.IsCheck(king.Color) {
		return
	}
	y := king.Y

	// queen side - b, c and d file squares must be empty
	if mg.castleRook(p, king, 0) != nil &&
		p.GetPiece(1, y) == nil && p.GetPiece(2, y) == nil && p.GetPiece(3, y) == nil {
		mg.push(position.NewMove(king, 2, y, nil, types.KindNone))
	}
	// king side - f and g file squares must be empty
	if mg.castleRook(p, king, 7) != nil &&
		p.GetPiece(5, y) == nil && p.GetPiece(6, y) == nil {
		mg.push(position.NewMove(king, 6, y, nil, types.KindNone))
	}
}

// castleRook returns the unmoved own rook on the given corner file or
// nil.
func (mg *Movegen) castleRook(p *position.Position, king *position.Piece, rookX int) *position.Piece {
	rook := p.GetPiece(rookX, king.Y)
	if rook != nil && rook.Color == king.Color && rook.Kind == types.Rook && !rook.HasMoved {
		return rook
	}
	return nil
}
