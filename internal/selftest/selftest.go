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

// Package selftest runs the engine's built-in correctness checks -
// perft counts from the start position and a fixture middle game
// position plus a set of rules scenarios (checkmate, stalemate,
// castling, en passant, promotion, exact undo). It backs the `test`
// command line argument.
package selftest

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/MilkyGo/internal/logging"
	"github.com/frankkopp/MilkyGo/internal/movegen"
	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/types"
)

var out = message.NewPrinter(language.German)

// InitialPerftCounts are the expected leaf counts of the legal move
// tree from the standard starting position for depths 1-6.
var InitialPerftCounts = []uint64{20, 400, 8_902, 197_281, 4_865_609, 119_060_324}

// FixturePerftCounts are the expected leaf counts for the fixture
// middle game position built by FixturePosition() for depths 1-5.
var FixturePerftCounts = []uint64{44, 1_486, 62_379, 2_103_487, 89_941_194}

// SelfTest drives the built-in correctness checks.
//  Create a new instance with NewSelfTest()
type SelfTest struct {
	log *logging.Logger
	mg  *movegen.Movegen
}

// NewSelfTest creates a new self test driver
func NewSelfTest() *SelfTest {
	return &SelfTest{
		log: myLogging.GetLog(),
		mg:  movegen.NewMoveGen(),
	}
}

// FixturePosition builds a well known middle game test position rich
// in special cases - a white pawn one step from promotion on d7, a
// black knight deep in white's camp on f2, both kingside structures
// opened and white still holding both castling rights. Built by
// modifying the standard starting position; white is to move.
func FixturePosition() *position.Position {
	p := position.NewPosition()

	relocate := func(from, to string) {
		fx, fy, _ := types.ParseSquare(from)
		tx, ty, _ := types.ParseSquare(to)
		p.RelocatePiece(p.GetPiece(fx, fy), tx, ty)
	}
	remove := func(sq string) {
		x, y, _ := types.ParseSquare(sq)
		p.RemovePiece(p.GetPiece(x, y))
	}

	remove("d7") // black pawn
	remove("e7") // black pawn
	remove("e2") // white pawn
	remove("f2") // white pawn

	relocate("c7", "c6") // black pawn
	relocate("f8", "e7") // black bishop
	relocate("e8", "f8") // black king
	relocate("g8", "f2") // black knight
	relocate("d2", "d7") // white pawn one step from promotion
	relocate("f1", "c4") // white bishop
	relocate("g1", "e2") // white knight

	p.SetNextPlayer(types.White)
	return p
}

// Run executes all self tests and returns true when every check
// passed. The deep flag extends the perft runs to the slow depths
// (start position depth 6, fixture depth 5) which take minutes.
func (st *SelfTest) Run(deep bool) bool {
	ok := true

	initialDepths := 5
	fixtureDepths := 4
	if deep {
		initialDepths = 6
		fixtureDepths = 5
	}

	ok = st.runPerft("start position", position.NewPosition, InitialPerftCounts[:initialDepths]) && ok
	ok = st.runPerft("fixture position", FixturePosition, FixturePerftCounts[:fixtureDepths]) && ok

	ok = st.checkFoolsMate() && ok
	ok = st.checkStalemate() && ok
	ok = st.checkCastlingUndo() && ok
	ok = st.checkEnPassantUndo() && ok
	ok = st.checkPromotionUndo() && ok

	if ok {
		st.log.Info("Self test passed")
	} else {
		st.log.Error("Self test FAILED")
	}
	return ok
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

func (st *SelfTest) runPerft(name string, setup func() *position.Position, expected []uint64) bool {
	ok := true
	pft := movegen.NewPerft()
	for i, want := range expected {
		depth := i + 1
		got := pft.StartPerft(setup(), depth, false)
		if got == want {
			st.log.Info(out.Sprintf("Perft %s depth %d: %d nodes - correct", name, depth, got))
		} else {
			st.log.Error(out.Sprintf("Perft %s depth %d: expected %d nodes, got %d", name, depth, want, got))
			ok = false
		}
	}
	return ok
}

// playMoves applies the given moves in coordinate notation (e.g.
// "f2f3") alternating sides. Promotions are not needed here.
func (st *SelfTest) playMoves(p *position.Position, moves ...string) bool {
	for _, ms := range moves {
		fx, fy, ok1 := types.ParseSquare(ms[0:2])
		tx, ty, ok2 := types.ParseSquare(ms[2:4])
		if !ok1 || !ok2 {
			return false
		}
		if _, err := st.mg.MakeUserMove(p, fx, fy, tx, ty, types.KindNone); err != nil {
			st.log.Errorf("move %s rejected: %v", ms, err)
			return false
		}
	}
	return true
}

// checkFoolsMate plays the fastest possible checkmate and expects a
// loss for white.
func (st *SelfTest) checkFoolsMate() bool {
	p := position.NewPosition()
	if !st.playMoves(p, "f2f3", "e7e5", "g2g4", "d8h4") {
		return false
	}
	if state := st.mg.GameState(p, types.White); state != types.Loss {
		st.log.Errorf("fool's mate: expected loss for white, got %v", state)
		return false
	}
	st.log.Info("Fool's mate detected - correct")
	return true
}

// checkStalemate sets up a classic king cornered stalemate and
// expects a draw for white.
func (st *SelfTest) checkStalemate() bool {
	p := position.NewPosition()
	whiteKing := p.PlayerOf(types.White).King
	blackKing := p.PlayerOf(types.Black).King
	var blackQueen *position.Piece
	for c := types.Black; c < types.ColorLength; c++ {
		player := p.PlayerOf(c)
		for i := range player.Pieces {
			pc := &player.Pieces[i]
			if c == types.Black && pc.Kind == types.Queen {
				blackQueen = pc
				continue
			}
			if pc.Kind != types.King {
				p.RemovePiece(pc)
			}
		}
	}
	relocate := func(pc *position.Piece, sq string) {
		x, y, _ := types.ParseSquare(sq)
		p.RelocatePiece(pc, x, y)
	}
	relocate(whiteKing, "a1")
	relocate(blackKing, "c2")
	relocate(blackQueen, "b3")
	p.SetNextPlayer(types.White)

	if state := st.mg.GameState(p, types.White); state != types.Draw {
		st.log.Errorf("stalemate: expected draw for white, got %v", state)
		return false
	}
	st.log.Info("Stalemate detected - correct")
	return true
}

// checkCastlingUndo castles white king side and verifies the rook
// shift and the exact restoration on undo.
func (st *SelfTest) checkCastlingUndo() bool {
	p := position.NewPosition()

	// clear f1 and g1
	fx, fy, _ := types.ParseSquare("f1")
	gx, gy, _ := types.ParseSquare("g1")
	p.RemovePiece(p.GetPiece(fx, fy))
	p.RemovePiece(p.GetPiece(gx, gy))
	before := p.Fingerprint()

	ex, ey, _ := types.ParseSquare("e1")
	m, err := st.mg.MakeUserMove(p, ex, ey, gx, gy, types.KindNone)
	if err != nil {
		st.log.Errorf("castling: king move rejected: %v", err)
		return false
	}
	rook := p.GetPiece(fx, fy)
	if rook == nil || rook.Kind != types.Rook || !rook.HasMoved {
		st.log.Error("castling: rook not moved to f1")
		return false
	}
	p.UndoMove(m)
	hx, hy, _ := types.ParseSquare("h1")
	rook = p.GetPiece(hx, hy)
	king := p.GetPiece(ex, ey)
	if rook == nil || rook.HasMoved || king == nil || king.HasMoved || p.Fingerprint() != before {
		st.log.Error("castling: undo did not restore the position")
		return false
	}
	st.log.Info("Castling and undo - correct")
	return true
}

// checkEnPassantUndo plays a white double push, captures it en
// passant with a black pawn and verifies the exact restoration on
// undo.
func (st *SelfTest) checkEnPassantUndo() bool {
	p := position.NewPosition()
	if !st.playMoves(p, "a2a3", "d7d5", "a3a4", "d5d4") {
		return false
	}
	if !st.playMoves(p, "e2e4") {
		return false
	}
	before := p.Fingerprint()
	dx, dy, _ := types.ParseSquare("d4")
	ex, ey, _ := types.ParseSquare("e3")
	m, err := st.mg.MakeUserMove(p, dx, dy, ex, ey, types.KindNone)
	if err != nil {
		st.log.Errorf("en passant: capture rejected: %v", err)
		return false
	}
	e4x, e4y, _ := types.ParseSquare("e4")
	if p.GetPiece(e4x, e4y) != nil || p.GetPiece(ex, ey) == nil {
		st.log.Error("en passant: captured pawn not removed from e4")
		return false
	}
	p.UndoMove(m)
	if p.GetPiece(dx, dy) == nil || p.GetPiece(e4x, e4y) == nil || p.Fingerprint() != before {
		st.log.Error("en passant: undo did not restore the position")
		return false
	}
	st.log.Info("En passant and undo - correct")
	return true
}

// checkPromotionUndo promotes a white pawn to a queen and verifies
// the kind change and its reversal.
func (st *SelfTest) checkPromotionUndo() bool {
	p := position.NewPosition()
	a8x, a8y, _ := types.ParseSquare("a8")
	a2x, a2y, _ := types.ParseSquare("a2")
	a7x, a7y, _ := types.ParseSquare("a7")
	p.RemovePiece(p.GetPiece(a8x, a8y)) // black rook
	p.RemovePiece(p.GetPiece(a7x, a7y)) // black pawn
	pawn := p.GetPiece(a2x, a2y)
	p.RelocatePiece(pawn, a7x, a7y)
	p.SetNextPlayer(types.White)

	m, err := st.mg.MakeUserMove(p, a7x, a7y, a8x, a8y, types.Queen)
	if err != nil {
		st.log.Errorf("promotion: move rejected: %v", err)
		return false
	}
	if pawn.Kind != types.Queen {
		st.log.Error("promotion: pawn did not become a queen")
		return false
	}
	p.UndoMove(m)
	if pawn.Kind != types.Pawn || pawn.X != a7x || pawn.Y != a7y {
		st.log.Error("promotion: undo did not restore the pawn")
		return false
	}
	st.log.Info("Promotion and undo - correct")
	return true
}
