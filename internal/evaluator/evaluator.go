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

// Package evaluator contains structures and functions to calculate
// the static value of a quiescent chess position to be used in the
// engine search.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/MilkyGo/internal/config"
	myLogging "github.com/frankkopp/MilkyGo/internal/logging"
	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/types"
)

// Evaluator calculates a scalar static evaluation of a position as
// the difference of two single player scores. A single player score
// sums material (dominant by at least an order of magnitude),
// center preference of the occupied squares and mobility and threat
// bonuses gathered by walking each sliding piece's rays and each
// knight's reach. The evaluation is deterministic, bounded and
// depends only on the current board - never on move history.
//  Create a new instance with NewEvaluator()
type Evaluator struct {
	log *logging.Logger
}

// centerPreference is the symmetric per-file and per-rank weight
// vector preferring central squares.
var centerPreference = [types.BoardSize]types.Value{0, 1, 2, 3, 3, 2, 1, 0}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
	}
}

// Evaluate returns the position value as the difference of the two
// single player scores - positive favors max.
func (e *Evaluator) Evaluate(p *position.Position, max, min types.Color) types.Value {
	return e.RatePlayer(p, max) - e.RatePlayer(p, min)
}

// RatePlayer calculates the single player score of one side.
func (e *Evaluator) RatePlayer(p *position.Position, c types.Color) types.Value {
	ev := &config.Settings.Eval
	var score types.Value

	player := p.PlayerOf(c)
	for i := range player.Pieces {
		piece := &player.Pieces[i]
		if !piece.IsLive {
			continue
		}

		score += types.Value(ev.MaterialFactor * piece.Kind.MaterialWeight())

		// the king carries neither material nor positional weight
		if piece.Kind == types.King {
			continue
		}

		score += types.Value(ev.CenterBonus) * (centerPreference[piece.X] + centerPreference[piece.Y])

		switch piece.Kind {
		case types.Pawn:
			// pawns away from the board edge weigh in a little more
			if piece.X > 0 && piece.X < types.BoardSize-1 {
				score += types.Value(ev.CenterBonus) * centerPreference[piece.X]
			}
		case types.Knight:
			score += e.rateKnight(p, piece)
		case types.Bishop:
			score += e.rateRays(p, piece, types.DiagonalDeltas[:])
		case types.Rook:
			score += e.rateRays(p, piece, types.OrthogonalDeltas[:])
		case types.Queen:
			score += e.rateRays(p, piece, types.DiagonalDeltas[:])
			score += e.rateRays(p, piece, types.OrthogonalDeltas[:])
		}
	}
	return score
}

// rateKnight accrues a bonus for every reachable square with an extra
// weight when the square holds an enemy piece.
func (e *Evaluator) rateKnight(p *position.Position, piece *position.Piece) types.Value {
	ev := &config.Settings.Eval
	var score types.Value
	for _, d := range types.KnightDeltas {
		x, y := piece.X+d.X, piece.Y+d.Y
		if !types.IsOnBoard(x, y) {
			continue
		}
		score += types.Value(ev.KnightReachBonus)
		target := p.GetPiece(x, y)
		if target != nil && target.Color != piece.Color {
			score += types.Value(ev.KnightThreatBonus * target.Kind.MaterialWeight())
		}
	}
	return score
}

// rateRays walks the given rays of a sliding piece. Every empty
// square contributes a center bonus; the first occupied square ends
// the ray and contributes a threat bonus proportional to the attacked
// piece's material weight when it holds an enemy piece.
func (e *Evaluator) rateRays(p *position.Position, piece *position.Piece, deltas []types.Delta) types.Value {
	ev := &config.Settings.Eval
	var score types.Value
	for _, d := range deltas {
		for dist := 1; ; dist++ {
			x, y := piece.X+dist*d.X, piece.Y+dist*d.Y
			if !types.IsOnBoard(x, y) {
				break
			}
			target := p.GetPiece(x, y)
			if target != nil {
				if target.Color != piece.Color {
					score += types.Value(ev.ThreatBonus * target.Kind.MaterialWeight())
				}
				break
			}
			score += types.Value(ev.RayCenterBonus) * (centerPreference[x] + centerPreference[y]) / 2
		}
	}
	return score
}
