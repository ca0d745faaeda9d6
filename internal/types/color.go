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

// Package types contains the basic data types of the chess domain used
// throughout the engine - colors, piece kinds, board coordinates, game
// states and score values.
package types

// Color represents the two sides of a chess game.
//  Black Color = 0
//  White Color = 1
type Color int8

// Color constants
const (
	Black Color = iota
	White
	ColorLength
)

// Flip returns the opposite color
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if the color is a valid chess color
func (c Color) IsValid() bool {
	return c == Black || c == White
}

// Direction returns the forward direction on the y axis for pawns of
// this color. Black pawns move toward higher y, white pawns toward
// lower y (y=0 is black's back rank).
func (c Color) Direction() int {
	if c == Black {
		return 1
	}
	return -1
}

// PromotionRank returns the y coordinate a pawn of this color
// promotes on.
func (c Color) PromotionRank() int {
	if c == Black {
		return 7
	}
	return 0
}

var colorToString = [2]string{"Black", "White"}

// String returns a string representation of color as "Black" or "White"
func (c Color) String() string {
	return colorToString[c]
}
