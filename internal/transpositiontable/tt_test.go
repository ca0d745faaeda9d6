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

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/MilkyGo/internal/config"
	"github.com/frankkopp/MilkyGo/internal/logging"
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

func TestPutAndProbe(t *testing.T) {
	tt := NewTtTable()
	key := position.NewPosition().Fingerprint()

	_, ok := tt.Probe(key)
	assert.False(t, ok)

	tt.Put(key, 42, 4, FlagExact)
	e, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, types.Value(42), e.Rating)
	assert.Equal(t, 4, e.Depth)
	assert.Equal(t, FlagExact, e.Flag)
	assert.Equal(t, 1, tt.Len())
}

func TestDepthPreferredReplacement(t *testing.T) {
	tt := NewTtTable()
	key := position.NewPosition().Fingerprint()

	tt.Put(key, 10, 5, FlagExact)

	// a shallower result must not replace a deeper one
	tt.Put(key, 99, 3, FlagLower)
	e, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, types.Value(10), e.Rating)
	assert.Equal(t, 5, e.Depth)

	// an equal depth overwrites
	tt.Put(key, 20, 5, FlagUpper)
	e, _ = tt.Probe(key)
	assert.Equal(t, types.Value(20), e.Rating)
	assert.Equal(t, FlagUpper, e.Flag)

	// a deeper result overwrites
	tt.Put(key, 30, 7, FlagExact)
	e, _ = tt.Probe(key)
	assert.Equal(t, types.Value(30), e.Rating)
	assert.Equal(t, 7, e.Depth)

	assert.Equal(t, 1, tt.Len())
}

func TestDistinctKeys(t *testing.T) {
	tt := NewTtTable()
	p := position.NewPosition()
	k1 := p.Fingerprint()
	p.SetNextPlayer(types.Black)
	k2 := p.Fingerprint()
	assert.NotEqual(t, k1, k2)

	tt.Put(k1, 1, 1, FlagExact)
	tt.Put(k2, 2, 1, FlagExact)
	assert.Equal(t, 2, tt.Len())
}

func TestClear(t *testing.T) {
	tt := NewTtTable()
	tt.Put("some key", 1, 1, FlagExact)
	assert.Equal(t, 1, tt.Len())
	tt.Clear()
	assert.Equal(t, 0, tt.Len())
	_, ok := tt.Probe("some key")
	assert.False(t, ok)
	logTest.Debug(tt.String())
}
