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

// Package transpositiontable implements a transposition table (cache)
// data structure and functionality for a chess engine search. Entries
// are keyed by the exact position fingerprint so a hit always refers
// to a rules-equivalent position. The table is owned by a single
// running search and is not thread safe.
package transpositiontable

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/MilkyGo/internal/logging"
	"github.com/frankkopp/MilkyGo/internal/types"
)

var out = message.NewPrinter(language.German)

// Flag classifies the quality of a stored rating relative to the
// search window it was obtained with.
type Flag uint8

// Flag constants
const (
	FlagNone Flag = iota
	// FlagExact - the rating is the exact value of the position
	FlagExact
	// FlagLower - the rating is a lower bound (fail high)
	FlagLower
	// FlagUpper - the rating is an upper bound (fail low)
	FlagUpper
)

var flagToString = [4]string{"none", "exact", "lowerbound", "upperbound"}

// String returns a readable name of the flag
func (f Flag) String() string {
	return flagToString[f]
}

// TtEntry is a single transposition table entry
type TtEntry struct {
	Rating types.Value
	Depth  int
	Flag   Flag
}

// TtTable is the transposition table object holding data and usage
// statistics.
//  Create with NewTtTable()
type TtTable struct {
	log  *logging.Logger
	data map[string]TtEntry

	Stats TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfOverwrites uint64
	numberOfRejected   uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new empty TtTable
func NewTtTable() *TtTable {
	return &TtTable{
		log:  myLogging.GetLog(),
		data: make(map[string]TtEntry),
	}
}

// Probe looks up the entry stored under the given fingerprint.
func (tt *TtTable) Probe(key string) (TtEntry, bool) {
	tt.Stats.numberOfProbes++
	e, ok := tt.data[key]
	if ok {
		tt.Stats.numberOfHits++
	} else {
		tt.Stats.numberOfMisses++
	}
	return e, ok
}

// Put stores a rating under the given fingerprint. An existing entry
// is overwritten iff its depth is lesser or equal to the new depth -
// deeper results are never replaced by shallower ones.
func (tt *TtTable) Put(key string, rating types.Value, depth int, flag Flag) {
	tt.Stats.numberOfPuts++
	if existing, ok := tt.data[key]; ok {
		if existing.Depth > depth {
			tt.Stats.numberOfRejected++
			return
		}
		tt.Stats.numberOfOverwrites++
	}
	tt.data[key] = TtEntry{Rating: rating, Depth: depth, Flag: flag}
}

// Clear removes all entries and resets the statistics
func (tt *TtTable) Clear() {
	tt.data = make(map[string]TtEntry)
	tt.Stats = TtStats{}
}

// Len returns the number of entries in the tt
func (tt *TtTable) Len() int {
	return len(tt.data)
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: entries %d puts %d overwrites %d rejected %d probes %d hits %d (%d%%) misses %d (%d%%)",
		len(tt.data), tt.Stats.numberOfPuts, tt.Stats.numberOfOverwrites, tt.Stats.numberOfRejected,
		tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}
