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

type evalConfiguration struct {
	// Material weight multiplier. Material values are the classical
	// pawn units (1,3,3,5,9) times this factor. Must stay at least an
	// order of magnitude above the positional bonuses.
	MaterialFactor int

	// Bonus factor applied to the center preference of a piece's
	// own square.
	CenterBonus int

	// Bonus for each empty square reachable along a sliding piece's
	// rays (scaled by the center preference of the reached square).
	RayCenterBonus int

	// Bonus per pawn unit of an enemy piece attacked by a sliding
	// piece.
	ThreatBonus int

	// Bonus for each square reachable by a knight and the extra
	// multiplier when the reached square holds an enemy piece.
	KnightReachBonus  int
	KnightThreatBonus int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.MaterialFactor = 100

	Settings.Eval.CenterBonus = 2      // per piece, times center preference of its square
	Settings.Eval.RayCenterBonus = 1   // per empty ray square, times center preference
	Settings.Eval.ThreatBonus = 2      // per pawn unit of the attacked piece
	Settings.Eval.KnightReachBonus = 2 // per reachable square
	Settings.Eval.KnightThreatBonus = 3
}

// setupEval does nothing - the eval defaults are set in init() and
// overwritten by the config file
func setupEval() {

}
