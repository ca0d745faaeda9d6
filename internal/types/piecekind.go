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

// PieceKind represents the kind of a chess piece independent of its
// color. The identity of a piece changes at most once, when a pawn
// promotes.
//  KindNone PieceKind = 0
//  Pawn     PieceKind = 1
//  Knight   PieceKind = 2
//  Bishop   PieceKind = 3
//  Rook     PieceKind = 4
//  Queen    PieceKind = 5
//  King     PieceKind = 6
type PieceKind int8

// PieceKind constants
const (
	KindNone PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	KindLength
)

// IsValid checks if the piece kind denotes an actual piece
func (pk PieceKind) IsValid() bool {
	return pk > KindNone && pk < KindLength
}

// materialWeight are the classical material weights in pawn units.
// The king has no material weight as it can never be captured.
var materialWeight = [KindLength]int{0, 1, 3, 3, 5, 9, 0}

// MaterialWeight returns the material weight of the piece kind in
// pawn units (pawn=1, knight=3, bishop=3, rook=5, queen=9, king=0).
func (pk PieceKind) MaterialWeight() int {
	return materialWeight[pk]
}

var kindToString = [KindLength]string{"-", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
var kindToChar = [KindLength]string{"-", "P", "N", "B", "R", "Q", "K"}

// String returns the full name of the piece kind
func (pk PieceKind) String() string {
	return kindToString[pk]
}

// Char returns a single upper case letter for the piece kind
// (P, N, B, R, Q, K)
func (pk PieceKind) Char() string {
	return kindToChar[pk]
}

// PromotionKinds lists the piece kinds a pawn may promote to in
// generation order.
var PromotionKinds = [4]PieceKind{Knight, Bishop, Rook, Queen}
