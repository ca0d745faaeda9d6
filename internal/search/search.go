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

// Package search implements the adversarial search of the engine -
// iterative deepening negamax with alpha beta pruning, a per-search
// transposition table, root move ordering across iterations and a
// one-ply quiescence extension on captures.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/MilkyGo/internal/config"
	"github.com/frankkopp/MilkyGo/internal/evaluator"
	myLogging "github.com/frankkopp/MilkyGo/internal/logging"
	"github.com/frankkopp/MilkyGo/internal/movegen"
	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/transpositiontable"
	"github.com/frankkopp/MilkyGo/internal/types"
	"github.com/frankkopp/MilkyGo/internal/util"
)

var out = message.NewPrinter(language.German)

// MaxDepth is the hard limit for the iterative deepening depth
const MaxDepth = 64

// Search represents the data structure for a chess engine search.
// The search mutates the position it is given exclusively for its
// lifetime via do/undo move pairs and restores it on completion.
//  Create a new instance with NewSearch()
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	mg   *movegen.Movegen
	eval *evaluator.Evaluator
	tt   *transpositiontable.TtTable

	// previous search
	lastSearchResult *Result
	hasResult        bool

	// current search state
	stopFlag     bool
	startTime    time.Time
	timeLimit    time.Duration
	nodesVisited uint64
	statistics   Statistics
}

// Statistics holds counters gathered during a search
type Statistics struct {
	LeafNodes             uint64
	BetaCuts              uint64
	CurrentIterationDepth int
}

// String returns a readable representation of the statistics
func (st *Statistics) String() string {
	return out.Sprintf("leaf nodes %d beta cuts %d last iteration depth %d",
		st.LeafNodes, st.BetaCuts, st.CurrentIterationDepth)
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewSearch creates a new Search instance.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		mg:            movegen.NewMoveGen(),
		eval:          evaluator.NewEvaluator(),
	}
}

// StartSearch starts the search for the given color on a copy of the
// given position in a separate goroutine. The search can be stopped
// with StopSearch() and observed with IsSearching(). The best move of
// the returned result references the internal copy - collaborators
// re-apply it by its coordinates.
func (s *Search) StartSearch(p *position.Position, c types.Color, sl Limits) {
	// acquire init phase lock
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	// run search
	go s.run(p.Clone(), c, sl)
	// wait until search is running and initialization is done
	// before returning to caller
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible. The stop
// is observed between root moves and iterations; the result of the
// last fully completed depth is kept. Blocks until the search has
// stopped.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// IsSearching checks if search is running
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until a running search has stopped
func (s *Search) WaitWhileSearching() {
	// get and release semaphore. Will block if search is running
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// LastSearchResult returns the result of the last completed search
func (s *Search) LastSearchResult() *Result {
	return s.lastSearchResult
}

// HasResult returns true if a search has completed since creation
func (s *Search) HasResult() bool {
	return s.hasResult
}

// NodesVisited returns the number of nodes visited in the last search
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// SuggestMove runs a search synchronously and returns its result -
// the best legal move for the given color with its rating and the
// depth reached. The position itself is left unchanged.
func (s *Search) SuggestMove(p *position.Position, c types.Color, sl Limits) *Result {
	s.StartSearch(p, c, sl)
	s.WaitWhileSearching()
	return s.lastSearchResult
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// run is called by StartSearch() in a separate goroutine. It runs the
// actual search until a search limit is reached or the search has
// been stopped by StopSearch().
func (s *Search) run(p *position.Position, c types.Color, sl Limits) {
	// check if there is already a search running
	// and if not grab the isRunning semaphore
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		s.initSemaphore.Release(1)
		return
	}
	// release the running semaphore after the search has ended
	defer func() {
		s.isRunning.Release(1)
	}()

	s.startTime = time.Now()
	s.stopFlag = false
	s.hasResult = false
	s.nodesVisited = 0
	s.statistics = Statistics{}

	// time limit only used with time control
	s.timeLimit = 0
	if sl.TimeControl {
		s.timeLimit = sl.MoveTime
	}

	// the transposition table lives for the duration of this search
	if config.Settings.Search.UseTT {
		s.tt = transpositiontable.NewTtTable()
	} else {
		s.tt = nil
	}

	// release the init phase lock to signal the calling go routine
	// waiting in StartSearch() to return
	s.initSemaphore.Release(1)

	result := s.iterativeDeepening(p, c, sl)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodesVisited

	s.log.Info(out.Sprintf("Search finished after %s", result.SearchTime))
	s.log.Info(out.Sprintf("Search depth was %d with %d nodes visited. NPS = %d nps",
		result.Depth, s.nodesVisited, util.Nps(s.nodesVisited, result.SearchTime)))
	s.slog.Debugf("Search stats: %s", s.statistics.String())
	if s.tt != nil {
		s.slog.Debug(s.tt.String())
	}
	s.log.Infof("Search result: %s", result.String())

	// save result until overwritten by the next search
	s.lastSearchResult = result
	s.hasResult = true
	s.stopFlag = true
}

// stopConditions checks if the search must stop - either by explicit
// stop or because the wall clock budget is used up. Checked between
// root moves and between iterations.
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.timeLimit > 0 && time.Since(s.startTime) >= s.timeLimit {
		return true
	}
	return false
}

// iterativeDeepening runs the root search with increasing depth
// starting at 2 until the wall clock budget expires or the maximum
// depth is reached. Root moves are pre-rated by their one-ply
// evaluation delta and re-sorted after each completed iteration so
// the next iteration searches the best known moves first. When time
// expires mid-iteration the partial scores are discarded and the
// result of the last fully completed depth stands.
func (s *Search) iterativeDeepening(p *position.Position, c types.Color, sl Limits) *Result {
	opp := c.Flip()

	rootMoves := s.mg.LegalMoves(p, c)
	if rootMoves.Len() == 0 {
		// mate or stalemate - the caller should have checked the
		// game state before asking for a move
		s.log.Warning("Search called on a position without legal moves")
		return &Result{BestValue: types.ValueNA}
	}

	// pre-rate root moves by their one-ply evaluation delta
	rated := make([]ratedMove, 0, rootMoves.Len())
	for _, m := range *rootMoves {
		p.DoMove(m)
		s.nodesVisited++
		rated = append(rated, ratedMove{move: m, rating: s.eval.Evaluate(p, c, opp)})
		p.UndoMove(m)
	}
	sortRated(rated)

	maxDepth := MaxDepth
	if !sl.TimeControl {
		if sl.Depth > 0 {
			maxDepth = sl.Depth
		} else {
			maxDepth = s.depthFromPieceCount(p)
		}
	}

	// depth 1 fallback in case not even the first iteration finishes
	result := &Result{BestMove: rated[0].move, BestValue: rated[0].rating, Depth: 1}

	iterScores := make([]types.Value, len(rated))
	for depth := 2; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth
		alpha := types.ValueMin
		beta := types.ValueMax
		bestValue := types.ValueNA
		var bestMove *position.Move
		completed := true

		for i := range rated {
			if s.stopConditions() {
				completed = false
				break
			}
			m := rated[i].move
			p.DoMove(m)
			s.nodesVisited++
			value := -s.negamax(p, opp, c, depth-1, -beta, -alpha, -1, m.IsCapture())
			p.UndoMove(m)

			iterScores[i] = value
			if value > bestValue {
				bestValue = value
				bestMove = m
			}
			if value > alpha {
				alpha = value
			}
			// a forced mate cannot be improved by searching deeper
			if value >= types.ValueCheckMate {
				return &Result{BestMove: m, BestValue: value, Depth: depth}
			}
		}

		if !completed {
			// discard the partial scores of this depth
			break
		}

		for i := range rated {
			rated[i].rating = iterScores[i]
		}
		if config.Settings.Search.UseRootMoveSort {
			sortRated(rated)
		}
		result = &Result{BestMove: bestMove, BestValue: bestValue, Depth: depth}

		if s.stopConditions() {
			break
		}
	}
	return result
}

// depthFromPieceCount selects a fixed search depth from the number of
// live pieces - deeper searches become affordable as the board
// empties.
func (s *Search) depthFromPieceCount(p *position.Position) int {
	count := p.LivePieceCount()
	switch {
	case count > 24:
		return 4
	case count > 12:
		return 5
	default:
		return 6
	}
}
