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

// BoardSize is the width and height of the chess board.
const BoardSize = 8

// PiecesPerSide is the fixed roster size of each player.
const PiecesPerSide = 16

// Board coordinates are a pair (x, y) with x the file (0=a .. 7=h)
// and y the row index from black's back rank down, so y=0 is rank 8
// and y=7 is rank 1.

// IsOnBoard checks if the coordinates denote a square on the board
func IsOnBoard(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// SquareString returns the algebraic notation of the coordinates
// (e.g. 4,6 => "e2"). Returns "-" for off board coordinates.
func SquareString(x, y int) string {
	if !IsOnBoard(x, y) {
		return "-"
	}
	return string(rune('a'+x)) + string(rune('1'+(BoardSize-y-1)))
}

// ParseSquare converts algebraic notation (e.g. "e2") into board
// coordinates. Returns ok == false if the string does not denote a
// square.
func ParseSquare(s string) (x, y int, ok bool) {
	if len(s) != 2 {
		return 0, 0, false
	}
	x = int(s[0] - 'a')
	y = BoardSize - int(s[1]-'1') - 1
	if !IsOnBoard(x, y) {
		return 0, 0, false
	}
	return x, y, true
}
