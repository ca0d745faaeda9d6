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

package search

import (
	"sort"

	"github.com/frankkopp/MilkyGo/internal/config"
	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/transpositiontable"
	"github.com/frankkopp/MilkyGo/internal/types"
)

// ratedMove pairs a move with its rating for move ordering
type ratedMove struct {
	move   *position.Move
	rating types.Value
}

// sortRated sorts best move first, stable so equal ratings keep the
// generation order
func sortRated(rated []ratedMove) {
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].rating > rated[j].rating
	})
}

// negamax is the recursive alpha beta search kernel. max is the side
// to move at this node, color is -1 when min maximizes seen from the
// root. A node is a leaf when the nominal depth is exhausted or when
// it is within the last two plies and the previous move was quiet -
// capture chains near the leaves are searched one ply further to
// avoid horizon blunders. Results are memoized in the transposition
// table under the position fingerprint with exact, lower bound or
// upper bound flags.
func (s *Search) negamax(p *position.Position, max, min types.Color, depth int, alpha, beta types.Value, color int, lastWasCapture bool) types.Value {
	alphaOrig := alpha

	// transposition probe - use ratings of equal or deeper searches
	// of this very position
	var key string
	useTT := s.tt != nil
	if useTT {
		key = p.Fingerprint()
		if e, ok := s.tt.Probe(key); ok && e.Depth >= depth {
			switch e.Flag {
			case transpositiontable.FlagExact:
				return e.Rating
			case transpositiontable.FlagLower:
				if e.Rating > alpha {
					alpha = e.Rating
				}
			case transpositiontable.FlagUpper:
				if e.Rating < beta {
					beta = e.Rating
				}
			}
			// window check after the bound update, not before
			if alpha >= beta {
				return e.Rating
			}
		}
	}

	// leaf
	if depth == 0 ||
		(config.Settings.Search.UseQuiescence && depth <= 2 && !lastWasCapture) {
		s.statistics.LeafNodes++
		return types.Value(color) * s.eval.Evaluate(p, max, min)
	}

	// expand - filter legal moves and rate them by their one-ply
	// evaluation delta for move ordering
	pseudo := s.mg.PseudoLegalMoves(p, max)
	rated := make([]ratedMove, 0, pseudo.Len())
	for _, m := range *pseudo {
		if p.DoMove(m) {
			rated = append(rated, ratedMove{move: m, rating: s.eval.Evaluate(p, max, min)})
			p.UndoMove(m)
		}
	}
	sortRated(rated)

	rating := types.ValueNA
	for _, rm := range rated {
		p.DoMove(rm.move)
		s.nodesVisited++
		value := -s.negamax(p, min, max, depth-1, -beta, -alpha, -color, rm.move.IsCapture())
		p.UndoMove(rm.move)

		if value > rating {
			rating = value
		}
		if rating > alpha {
			alpha = rating
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			break
		}
	}

	// no legal move - mate when in check, stalemate otherwise. The
	// mate rating grows with the remaining depth so shorter mates
	// beat longer mates.
	if len(rated) == 0 {
		if p.IsCheck(max) {
			rating = -(types.ValueCheckMate + types.Value(depth))
		} else {
			rating = types.ValueDraw
		}
	}

	// transposition store
	if useTT {
		flag := transpositiontable.FlagExact
		if rating <= alphaOrig {
			flag = transpositiontable.FlagUpper
		} else if rating >= beta {
			flag = transpositiontable.FlagLower
		}
		s.tt.Put(key, rating, depth, flag)
	}
	return rating
}
