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

// Package movelist provides a simple list collection for chess move
// records to be used by the move generator and the search.
package movelist

import (
	"strings"

	"github.com/frankkopp/MilkyGo/internal/position"
)

// MoveList is a list of move records
type MoveList []*position.Move

// NewMoveList creates a new move list with the given capacity
func NewMoveList(capacity int) *MoveList {
	ml := make(MoveList, 0, capacity)
	return &ml
}

// PushBack appends a move to the end of the list
func (ml *MoveList) PushBack(m *position.Move) {
	*ml = append(*ml, m)
}

// PushList appends all moves of the given list
func (ml *MoveList) PushList(other *MoveList) {
	*ml = append(*ml, *other...)
}

// Len returns the number of moves in the list
func (ml *MoveList) Len() int {
	return len(*ml)
}

// At returns the move at index i
func (ml *MoveList) At(i int) *position.Move {
	return (*ml)[i]
}

// Clear removes all moves from the list keeping the capacity
func (ml *MoveList) Clear() {
	*ml = (*ml)[:0]
}

// String returns the moves in coordinate notation separated by spaces
func (ml *MoveList) String() string {
	var sb strings.Builder
	for i, m := range *ml {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
