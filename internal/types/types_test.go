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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFlip(t *testing.T) {
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, Black, White.Flip())
}

func TestColorDirection(t *testing.T) {
	// black pawns move toward higher y, white toward lower y
	assert.Equal(t, 1, Black.Direction())
	assert.Equal(t, -1, White.Direction())
	assert.Equal(t, 7, Black.PromotionRank())
	assert.Equal(t, 0, White.PromotionRank())
}

func TestPieceKindWeights(t *testing.T) {
	assert.Equal(t, 1, Pawn.MaterialWeight())
	assert.Equal(t, 3, Knight.MaterialWeight())
	assert.Equal(t, 3, Bishop.MaterialWeight())
	assert.Equal(t, 5, Rook.MaterialWeight())
	assert.Equal(t, 9, Queen.MaterialWeight())
	assert.Equal(t, 0, King.MaterialWeight())
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a8", SquareString(0, 0))
	assert.Equal(t, "h1", SquareString(7, 7))
	assert.Equal(t, "e2", SquareString(4, 6))
	assert.Equal(t, "-", SquareString(8, 0))
}

func TestParseSquare(t *testing.T) {
	x, y, ok := ParseSquare("e2")
	assert.True(t, ok)
	assert.Equal(t, 4, x)
	assert.Equal(t, 6, y)

	x, y, ok = ParseSquare("a1")
	assert.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 7, y)

	_, _, ok = ParseSquare("i9")
	assert.False(t, ok)
	_, _, ok = ParseSquare("e")
	assert.False(t, ok)
}

func TestParseSquareRoundTrip(t *testing.T) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			s := SquareString(x, y)
			px, py, ok := ParseSquare(s)
			assert.True(t, ok)
			assert.Equal(t, x, px)
			assert.Equal(t, y, py)
		}
	}
}

func TestValueCheckMate(t *testing.T) {
	assert.True(t, ValueCheckMate.IsCheckMateValue())
	assert.True(t, (-ValueCheckMate - 5).IsCheckMateValue())
	assert.False(t, ValueDraw.IsCheckMateValue())
}
