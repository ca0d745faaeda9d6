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

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Transposition Table
	UseTT bool

	// Quiescence extension through capture chains near the leaves
	UseQuiescence bool

	// Re-sort root moves between iterations by their latest scores
	UseRootMoveSort bool

	// Default search limits for the console game when no command line
	// options are given. MoveTimeMs == 0 switches to the fixed depth
	// heuristic based on the number of live pieces.
	MoveTimeMs int
	Depth      int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseTT = true
	Settings.Search.UseQuiescence = true
	Settings.Search.UseRootMoveSort = true

	Settings.Search.MoveTimeMs = 2_000
	Settings.Search.Depth = 0
}

// setupSearch does nothing - the search defaults are set in init() and
// overwritten by the config file
func setupSearch() {

}
