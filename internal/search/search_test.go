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

package search_test

import (
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/MilkyGo/internal/config"
	"github.com/frankkopp/MilkyGo/internal/logging"
	"github.com/frankkopp/MilkyGo/internal/movegen"
	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/search"
	"github.com/frankkopp/MilkyGo/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func playMoves(t *testing.T, p *position.Position, moves ...string) {
	mg := movegen.NewMoveGen()
	for _, ms := range moves {
		fx, fy, ok1 := types.ParseSquare(ms[0:2])
		tx, ty, ok2 := types.ParseSquare(ms[2:4])
		assert.True(t, ok1 && ok2)
		_, err := mg.MakeUserMove(p, fx, fy, tx, ty, types.KindNone)
		assert.NoError(t, err, "move %s", ms)
	}
}

func TestSuggestMoveReturnsLegalMove(t *testing.T) {
	s := search.NewSearch()
	p := position.NewPosition()
	before := p.Fingerprint()

	result := s.SuggestMove(p, types.White, search.Limits{Depth: 3})
	assert.NotNil(t, result)
	assert.NotNil(t, result.BestMove)
	assert.Equal(t, 3, result.Depth)
	assert.True(t, result.Nodes > 0)

	// the position the caller handed in is untouched
	assert.Equal(t, before, p.Fingerprint())

	// the suggested move must be applicable
	mg := movegen.NewMoveGen()
	best := result.BestMove
	_, err := mg.MakeUserMove(p, best.FromX, best.FromY, best.ToX, best.ToY, best.Promotion)
	assert.NoError(t, err)
}

func TestSearchDeterminism(t *testing.T) {
	p := position.NewPosition()
	playMoves(t, p, "e2e4", "e7e5")

	r1 := search.NewSearch().SuggestMove(p, types.White, search.Limits{Depth: 4})
	r2 := search.NewSearch().SuggestMove(p, types.White, search.Limits{Depth: 4})

	assert.Equal(t, r1.BestMove.String(), r2.BestMove.String())
	assert.Equal(t, r1.BestValue, r2.BestValue)
	assert.Equal(t, r1.Depth, r2.Depth)
}

func TestFindsMateInOne(t *testing.T) {
	// scholar's mate one ply before the final queen strike
	p := position.NewPosition()
	playMoves(t, p, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6")

	s := search.NewSearch()
	result := s.SuggestMove(p, types.White, search.Limits{TimeControl: true, MoveTime: 500 * time.Millisecond})
	assert.NotNil(t, result.BestMove)
	assert.Equal(t, "h5f7", result.BestMove.String())
	assert.True(t, result.BestValue >= types.ValueCheckMate)
}

func TestTimeBudgetIsHonored(t *testing.T) {
	s := search.NewSearch()
	p := position.NewPosition()

	budget := 300 * time.Millisecond
	start := time.Now()
	result := s.SuggestMove(p, types.White, search.Limits{TimeControl: true, MoveTime: budget})
	elapsed := time.Since(start)

	assert.NotNil(t, result.BestMove)
	assert.True(t, result.Depth >= 2)
	// stop is voluntary between root moves so allow some slack
	assert.True(t, elapsed < 10*budget, "search ran %s with a budget of %s", elapsed, budget)
}

func TestStopSearch(t *testing.T) {
	s := search.NewSearch()
	p := position.NewPosition()

	s.StartSearch(p, types.White, search.Limits{TimeControl: true, MoveTime: time.Minute})
	assert.True(t, s.IsSearching())
	time.Sleep(50 * time.Millisecond)
	s.StopSearch()
	assert.False(t, s.IsSearching())
	assert.True(t, s.HasResult())
	assert.NotNil(t, s.LastSearchResult().BestMove)
}

func TestFixedDepthFromPieceCount(t *testing.T) {
	s := search.NewSearch()
	p := position.NewPosition()

	// no budget and no depth - the search picks a depth from the
	// piece count
	result := s.SuggestMove(p, types.White, search.Limits{})
	assert.NotNil(t, result.BestMove)
	assert.Equal(t, 4, result.Depth)
}
