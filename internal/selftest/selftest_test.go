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

package selftest

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/MilkyGo/internal/config"
	myLogging "github.com/frankkopp/MilkyGo/internal/logging"
	"github.com/frankkopp/MilkyGo/internal/movegen"
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
	logTest = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestFixturePositionSetup(t *testing.T) {
	p := FixturePosition()

	assert.Equal(t, types.White, p.NextPlayer())
	assert.Nil(t, p.LastDoublePush())

	// the white pawn one step from promotion
	x, y, _ := types.ParseSquare("d7")
	pawn := p.GetPiece(x, y)
	assert.NotNil(t, pawn)
	assert.Equal(t, types.Pawn, pawn.Kind)
	assert.Equal(t, types.White, pawn.Color)

	// the black knight deep in white's camp
	x, y, _ = types.ParseSquare("f2")
	knight := p.GetPiece(x, y)
	assert.NotNil(t, knight)
	assert.Equal(t, types.Knight, knight.Kind)
	assert.Equal(t, types.Black, knight.Color)

	// the black king has moved, white still holds both rights
	assert.True(t, p.PlayerOf(types.Black).King.HasMoved)
	assert.False(t, p.PlayerOf(types.White).King.HasMoved)
}

func TestFixturePerftShallow(t *testing.T) {
	pft := movegen.NewPerft()
	for i, want := range FixturePerftCounts[:3] {
		got := pft.StartPerft(FixturePosition(), i+1, true)
		assert.Equal(t, want, got, "fixture perft depth %d", i+1)
	}
}

func TestFixturePerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft skipped in short mode")
	}
	pft := movegen.NewPerft()
	assert.EqualValues(t, FixturePerftCounts[3], pft.StartPerft(FixturePosition(), 4, true))
	assert.EqualValues(t, FixturePerftCounts[4], pft.StartPerft(FixturePosition(), 5, true))
}

func TestScenarioChecks(t *testing.T) {
	st := NewSelfTest()
	assert.True(t, st.checkFoolsMate())
	assert.True(t, st.checkStalemate())
	assert.True(t, st.checkCastlingUndo())
	assert.True(t, st.checkEnPassantUndo())
	assert.True(t, st.checkPromotionUndo())
}
