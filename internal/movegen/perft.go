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

package movegen

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/MilkyGo/internal/logging"
	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/types"
	"github.com/frankkopp/MilkyGo/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft is the test driver counting all legal move sequences of a
// given length from a position. Perft counts are a standard
// correctness oracle for move generation and move execution.
//  Create a new instance with NewPerft()
type Perft struct {
	log   *logging.Logger
	mg    *Movegen
	Nodes uint64
}

// NewPerft creates a new perft test driver
func NewPerft() *Perft {
	return &Perft{
		log: myLogging.GetLog(),
		mg:  NewMoveGen(),
	}
}

// StartPerft counts the leaves of the legal move tree of the given
// depth for the side to move and returns the count. Progress is
// logged with timing when report is true.
func (pft *Perft) StartPerft(p *position.Position, depth int, report bool) uint64 {
	pft.Nodes = 0
	start := time.Now()
	pft.Nodes = pft.perft(p, p.NextPlayer(), depth)
	elapsed := time.Since(start)
	if report {
		pft.log.Info(out.Sprintf("Perft depth %d: %d nodes in %d ms (%d nps)",
			depth, pft.Nodes, elapsed.Milliseconds(), util.Nps(pft.Nodes, elapsed)))
	}
	return pft.Nodes
}

func (pft *Perft) perft(p *position.Position, c types.Color, depth int) uint64 {
	var nodes uint64
	pseudo := pft.mg.PseudoLegalMoves(p, c)
	for _, m := range *pseudo {
		if p.DoMove(m) {
			if depth > 1 {
				nodes += pft.perft(p, c.Flip(), depth-1)
			} else {
				nodes++
			}
			p.UndoMove(m)
		}
	}
	return nodes
}
