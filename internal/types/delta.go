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

// Delta is a coordinate offset used for piece movement and attack
// detection.
type Delta struct {
	X, Y int
}

// KnightDeltas are the eight L-shaped knight offsets.
var KnightDeltas = [8]Delta{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// KingDeltas are the eight adjacent king offsets.
var KingDeltas = [8]Delta{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	{0, 1}, {0, -1}, {-1, 0}, {1, 0},
}

// OrthogonalDeltas are the four rook/queen ray directions.
var OrthogonalDeltas = [4]Delta{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
}

// DiagonalDeltas are the four bishop/queen ray directions.
var DiagonalDeltas = [4]Delta{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}
