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
	"fmt"
	"time"

	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/types"
)

// Limits holds the restrictions for a search - either a wall clock
// budget (TimeControl with MoveTime) or a fixed depth. When neither
// is given the search selects a fixed depth from the number of live
// pieces.
type Limits struct {
	MoveTime    time.Duration
	Depth       int
	TimeControl bool
}

// Result holds the outcome of a search - the best root move of the
// last fully completed iteration, its rating from the searched
// player's point of view and the depth reached.
type Result struct {
	BestMove   *position.Move
	BestValue  types.Value
	Depth      int
	SearchTime time.Duration
	Nodes      uint64
}

// String returns a readable representation of the search result
func (r *Result) String() string {
	move := "none"
	if r.BestMove != nil {
		move = r.BestMove.String()
	}
	return fmt.Sprintf("best move = %s (value=%d) depth = %d time = %d ms nodes = %d",
		move, r.BestValue, r.Depth, r.SearchTime.Milliseconds(), r.Nodes)
}
