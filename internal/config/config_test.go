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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupDefaults(t *testing.T) {
	Setup()

	// search defaults
	assert.True(t, Settings.Search.UseTT)
	assert.True(t, Settings.Search.UseQuiescence)
	assert.True(t, Settings.Search.UseRootMoveSort)
	assert.True(t, Settings.Search.MoveTimeMs > 0)

	// eval defaults - material has to dominate the positional bonuses
	assert.Equal(t, 100, Settings.Eval.MaterialFactor)
	assert.True(t, Settings.Eval.CenterBonus*10 <= Settings.Eval.MaterialFactor)
	assert.True(t, Settings.Eval.ThreatBonus*10 <= Settings.Eval.MaterialFactor)
}

func TestSettingsString(t *testing.T) {
	Setup()
	s := Settings.String()
	assert.Contains(t, s, "Search Config")
	assert.Contains(t, s, "UseTT")
	assert.Contains(t, s, "MaterialFactor")
}

func TestLogLevels(t *testing.T) {
	assert.Equal(t, 5, LogLevels["debug"])
	assert.Equal(t, 4, LogLevels["info"])
	assert.Equal(t, 0, LogLevels["critical"])
}
