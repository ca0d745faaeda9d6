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

package types

// Value is the score type for position evaluations and search
// ratings. Positive values favor the player the rating was requested
// for. Static evaluations stay within (-ValueCheckMate, ValueCheckMate);
// mate ratings exceed ValueCheckMate by the remaining search depth so
// shorter mates rate higher.
type Value int32

// Value constants
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueCheckMate Value = 900_000
	ValueMax       Value = 1_000_000
	ValueMin       Value = -ValueMax
	// ValueNA marks an unset value (outside any reachable rating)
	ValueNA Value = -2_000_000
)

// IsCheckMateValue returns true if the value indicates a forced mate
// for either side.
func (v Value) IsCheckMateValue() bool {
	return v >= ValueCheckMate || v <= -ValueCheckMate
}
