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

package position_test

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/MilkyGo/internal/config"
	"github.com/frankkopp/MilkyGo/internal/logging"
	"github.com/frankkopp/MilkyGo/internal/movegen"
	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func sq(t *testing.T, s string) (int, int) {
	x, y, ok := types.ParseSquare(s)
	assert.True(t, ok, "invalid square %s", s)
	return x, y
}

// snapshot captures the complete observable state of a position
type snapshot struct {
	fingerprint string
	black       position.Player
	white       position.Player
	next        types.Color
	doublePush  *position.Piece
}

func snap(p *position.Position) snapshot {
	return snapshot{
		fingerprint: p.Fingerprint(),
		black:       *p.PlayerOf(types.Black),
		white:       *p.PlayerOf(types.White),
		next:        p.NextPlayer(),
		doublePush:  p.LastDoublePush(),
	}
}

func TestNewPosition(t *testing.T) {
	p := position.NewPosition()

	assert.Equal(t, types.White, p.NextPlayer())
	assert.Nil(t, p.LastDoublePush())
	assert.Equal(t, 32, p.LivePieceCount())

	// kings on their squares and linked
	ex, ey := sq(t, "e1")
	king := p.GetPiece(ex, ey)
	assert.NotNil(t, king)
	assert.Equal(t, types.King, king.Kind)
	assert.Equal(t, types.White, king.Color)
	assert.Same(t, p.PlayerOf(types.White).King, king)

	// every live piece is back-referenced by its square
	for c := types.Black; c < types.ColorLength; c++ {
		player := p.PlayerOf(c)
		for i := range player.Pieces {
			pc := &player.Pieces[i]
			assert.True(t, pc.IsLive)
			assert.False(t, pc.HasMoved)
			assert.Same(t, pc, p.GetPiece(pc.X, pc.Y))
		}
	}

	logTest.Debug("\n" + p.String())
}

func TestIsAttacked(t *testing.T) {
	p := position.NewPosition()

	// e3 is guarded by several white pieces, not by black
	x, y := sq(t, "e3")
	assert.True(t, p.IsAttacked(x, y, types.White))
	assert.False(t, p.IsAttacked(x, y, types.Black))

	// a6 is attacked by the black b7 pawn and the b8 knight
	x, y = sq(t, "a6")
	assert.True(t, p.IsAttacked(x, y, types.Black))
	assert.False(t, p.IsAttacked(x, y, types.White))

	// knights reach over pieces: c3 is attacked by the b1 knight
	x, y = sq(t, "c3")
	assert.True(t, p.IsAttacked(x, y, types.White))

	// nobody is in check at the start
	assert.False(t, p.IsCheck(types.White))
	assert.False(t, p.IsCheck(types.Black))
}

// every legal move from a set of positions must restore the position
// exactly after apply and undo
func TestDoUndoIsExactInverse(t *testing.T) {
	mg := movegen.NewMoveGen()

	positions := []*position.Position{
		position.NewPosition(),
	}
	// a position after a few plies with en passant potential
	p := position.NewPosition()
	playMoves(t, p, "e2e4", "d7d5", "e4e5", "f7f5")
	positions = append(positions, p)

	for _, pos := range positions {
		before := snap(pos)
		moves := mg.LegalMoves(pos, pos.NextPlayer())
		assert.True(t, moves.Len() > 0)
		for _, m := range *moves {
			assert.True(t, pos.DoMove(m))
			pos.UndoMove(m)
			assert.Equal(t, before, snap(pos), "undo of %s did not restore the position", m.String())
		}
	}
}

func playMoves(t *testing.T, p *position.Position, moves ...string) {
	mg := movegen.NewMoveGen()
	for _, ms := range moves {
		fx, fy := sq(t, ms[0:2])
		tx, ty := sq(t, ms[2:4])
		_, err := mg.MakeUserMove(p, fx, fy, tx, ty, types.KindNone)
		assert.NoError(t, err, "move %s", ms)
	}
}

func TestEnPassantApplyUndo(t *testing.T) {
	p := position.NewPosition()
	playMoves(t, p, "a2a3", "d7d5", "a3a4", "d5d4")

	// the white double push arms en passant
	playMoves(t, p, "e2e4")
	pawn := p.LastDoublePush()
	assert.NotNil(t, pawn)
	assert.Equal(t, "e4", pawn.SquareString())

	before := snap(p)
	mg := movegen.NewMoveGen()
	dx, dy := sq(t, "d4")
	ex, ey := sq(t, "e3")
	m, err := mg.MakeUserMove(p, dx, dy, ex, ey, types.KindNone)
	assert.NoError(t, err)

	// the captured pawn leaves e4, not the capture target e3
	e4x, e4y := sq(t, "e4")
	assert.Nil(t, p.GetPiece(e4x, e4y))
	assert.NotNil(t, p.GetPiece(ex, ey))
	assert.False(t, pawn.IsLive)
	assert.Nil(t, p.LastDoublePush())

	// undo restores the black pawn to d4 and the white pawn to e4
	p.UndoMove(m)
	assert.Equal(t, before, snap(p))
	assert.True(t, pawn.IsLive)
	assert.Equal(t, "e4", pawn.SquareString())
	assert.NotNil(t, p.GetPiece(dx, dy))
}

func TestCastlingApplyUndo(t *testing.T) {
	p := position.NewPosition()
	fx, fy := sq(t, "f1")
	gx, gy := sq(t, "g1")
	p.RemovePiece(p.GetPiece(fx, fy))
	p.RemovePiece(p.GetPiece(gx, gy))
	before := snap(p)

	mg := movegen.NewMoveGen()
	ex, ey := sq(t, "e1")
	m, err := mg.MakeUserMove(p, ex, ey, gx, gy, types.KindNone)
	assert.NoError(t, err)

	// king on g1, rook from h1 on f1, both marked moved
	king := p.GetPiece(gx, gy)
	rook := p.GetPiece(fx, fy)
	assert.Equal(t, types.King, king.Kind)
	assert.Equal(t, types.Rook, rook.Kind)
	assert.True(t, king.HasMoved)
	assert.True(t, rook.HasMoved)

	p.UndoMove(m)
	assert.Equal(t, before, snap(p))
	hx, hy := sq(t, "h1")
	assert.Equal(t, types.Rook, p.GetPiece(hx, hy).Kind)
	assert.False(t, p.GetPiece(hx, hy).HasMoved)
	assert.False(t, p.GetPiece(ex, ey).HasMoved)
}

// a castling move over an attacked transit square must be rejected
// without any state change
func TestCastlingTransitSquareAttacked(t *testing.T) {
	p := position.NewPosition()
	for _, s := range []string{"f1", "g1", "f2"} {
		x, y := sq(t, s)
		p.RemovePiece(p.GetPiece(x, y))
	}
	// black rook aims at f1 through the cleared f file
	ax, ay := sq(t, "a8")
	f4x, f4y := sq(t, "f4")
	p.RelocatePiece(p.GetPiece(ax, ay), f4x, f4y)
	before := snap(p)

	// the generator still emits the castling move
	mg := movegen.NewMoveGen()
	moves := mg.PseudoLegalMoves(p, types.White)
	var castle *position.Move
	gx, gy := sq(t, "g1")
	for _, m := range *moves {
		if m.Piece.Kind == types.King && m.ToX == gx && m.ToY == gy {
			castle = m
		}
	}
	assert.NotNil(t, castle, "castling move not generated")

	// execution must reject it and leave no trace
	assert.False(t, p.DoMove(castle))
	assert.Equal(t, before, snap(p))
}

func TestPromotionApplyUndo(t *testing.T) {
	p := position.NewPosition()
	a8x, a8y := sq(t, "a8")
	a7x, a7y := sq(t, "a7")
	a2x, a2y := sq(t, "a2")
	p.RemovePiece(p.GetPiece(a8x, a8y))
	p.RemovePiece(p.GetPiece(a7x, a7y))
	pawn := p.GetPiece(a2x, a2y)
	p.RelocatePiece(pawn, a7x, a7y)
	before := snap(p)

	mg := movegen.NewMoveGen()
	m, err := mg.MakeUserMove(p, a7x, a7y, a8x, a8y, types.Queen)
	assert.NoError(t, err)
	assert.Equal(t, types.Queen, pawn.Kind)
	assert.Same(t, pawn, p.GetPiece(a8x, a8y))

	p.UndoMove(m)
	assert.Equal(t, before, snap(p))
	assert.Equal(t, types.Pawn, pawn.Kind)
}

func TestFingerprintEquality(t *testing.T) {
	// two different move orders reaching the same position produce
	// the same fingerprint
	p1 := position.NewPosition()
	playMoves(t, p1, "g1f3", "b8c6", "b1c3", "g8f6")
	p2 := position.NewPosition()
	playMoves(t, p2, "b1c3", "g8f6", "g1f3", "b8c6")
	assert.Equal(t, p1.Fingerprint(), p2.Fingerprint())
}

func TestFingerprintSideToMove(t *testing.T) {
	p1 := position.NewPosition()
	p2 := position.NewPosition()
	p2.SetNextPlayer(types.Black)
	assert.NotEqual(t, p1.Fingerprint(), p2.Fingerprint())
}

func TestFingerprintEnPassantTarget(t *testing.T) {
	// same piece placement but different en passant state
	p1 := position.NewPosition()
	playMoves(t, p1, "e2e4", "g8f6", "g1f3", "f6g8", "f3g1", "d7d5")
	p2 := position.NewPosition()
	playMoves(t, p2, "e2e4", "d7d6", "g1f3", "d6d5", "f3g1", "g8f6", "b1c3", "f6g8", "c3b1")
	// hand crafted equality of boards is hard to come by - verify at
	// least that an armed double push changes the fingerprint tail
	assert.NotNil(t, p1.LastDoublePush())
	f1 := p1.Fingerprint()
	assert.Equal(t, byte(p1.LastDoublePush().X), f1[len(f1)-1])
	assert.Nil(t, p2.LastDoublePush())
	f2 := p2.Fingerprint()
	assert.Equal(t, byte(0xFF), f2[len(f2)-1])
}

func TestFingerprintCastlingRights(t *testing.T) {
	// two positions with identical piece placement and side to move
	// where one lost its kingside castling rights through rook trips
	p1 := position.NewPosition()
	playMoves(t, p1, "h2h4", "h7h5", "b1c3", "b8c6", "c3b1", "c6b8")
	p2 := position.NewPosition()
	playMoves(t, p2, "h2h4", "h7h5", "h1h3", "h8h6", "h3h1", "h6h8")

	f1 := p1.Fingerprint()
	f2 := p2.Fingerprint()
	// the packed board and side to move are equal, the rights differ
	assert.Equal(t, f1[:33], f2[:33])
	assert.NotEqual(t, f1, f2)
}

func TestClone(t *testing.T) {
	p := position.NewPosition()
	playMoves(t, p, "e2e4", "e7e5")

	c := p.Clone()
	assert.Equal(t, p.Fingerprint(), c.Fingerprint())
	assert.Equal(t, p.NextPlayer(), c.NextPlayer())

	// the clone's board references its own rosters
	ex, ey := sq(t, "e4")
	assert.False(t, p.GetPiece(ex, ey) == c.GetPiece(ex, ey))
	assert.Same(t, c.PlayerOf(types.White).King,
		c.GetPiece(sqx(t, "e1"), sqy(t, "e1")))

	// mutating the clone leaves the original untouched
	mg := movegen.NewMoveGen()
	fx, fy := sq(t, "g1")
	tx, ty := sq(t, "f3")
	_, err := mg.MakeUserMove(c, fx, fy, tx, ty, types.KindNone)
	assert.NoError(t, err)
	assert.NotEqual(t, p.Fingerprint(), c.Fingerprint())
	assert.NotNil(t, p.GetPiece(fx, fy))
}

func sqx(t *testing.T, s string) int {
	x, _ := sq(t, s)
	return x
}

func sqy(t *testing.T, s string) int {
	_, y := sq(t, s)
	return y
}
