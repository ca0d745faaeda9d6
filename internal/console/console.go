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

// Package console implements the interactive terminal game against
// the engine - board rendering, color selection, move entry in the
// form `e2 to e4` with a promotion prompt and the engine move
// announcements.
package console

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/frankkopp/MilkyGo/internal/config"
	myLogging "github.com/frankkopp/MilkyGo/internal/logging"
	"github.com/frankkopp/MilkyGo/internal/movegen"
	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/search"
	"github.com/frankkopp/MilkyGo/internal/types"
)

// Console handles a terminal game between the engine and a human
// player. Input / Output io can be replaced by changing the
// instance's InIo and OutIo members, e.g. for unit testing.
//  Create an instance with NewConsole()
type Console struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	log      *logging.Logger
	position *position.Position
	mg       *movegen.Movegen
	search   *search.Search
	human    types.Color
}

// piece symbols indexed by kind, white then black
var whiteSymbols = [types.KindLength]string{" ", "♙", "♘", "♗", "♖", "♕", "♔"}
var blackSymbols = [types.KindLength]string{" ", "♟", "♞", "♝", "♜", "♛", "♚"}

// NewConsole creates a new console game handler on the standard
// starting position.
func NewConsole() *Console {
	return &Console{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		log:      myLogging.GetLog(),
		position: position.NewPosition(),
		mg:       movegen.NewMoveGen(),
		search:   search.NewSearch(),
		human:    types.White,
	}
}

// Run plays one game against the engine and returns when a terminal
// state is reached or the input ends.
func (con *Console) Run() error {
	human, ok := con.promptColor()
	if !ok {
		return fmt.Errorf("input closed")
	}
	con.human = human
	con.render()

	for {
		side := con.position.NextPlayer()
		switch con.mg.GameState(con.position, side) {
		case types.Loss:
			con.printf("%s wins!\n", side.Flip().String())
			return nil
		case types.Draw:
			con.printf("Draw!\n")
			return nil
		}

		if side != con.human {
			con.engineMove(side)
			continue
		}
		if !con.humanMove() {
			return fmt.Errorf("input closed")
		}
	}
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

func (con *Console) printf(format string, a ...interface{}) {
	_, _ = con.OutIo.WriteString(fmt.Sprintf(format, a...))
	_ = con.OutIo.Flush()
}

func (con *Console) readLine() (string, bool) {
	if !con.InIo.Scan() {
		return "", false
	}
	return strings.TrimSpace(con.InIo.Text()), true
}

// promptColor asks the human player for a side until `b` or `w` is
// entered.
func (con *Console) promptColor() (types.Color, bool) {
	for {
		con.printf("Enter team (`b` or `w`): ")
		line, ok := con.readLine()
		if !ok {
			return types.White, false
		}
		switch line {
		case "b":
			return types.Black, true
		case "w":
			return types.White, true
		default:
			con.printf("Invalid color\n")
		}
	}
}

// engineMove asks the search for a move with the configured limits
// and applies it.
func (con *Console) engineMove(side types.Color) {
	sl := search.Limits{}
	if config.Settings.Search.MoveTimeMs > 0 {
		sl.TimeControl = true
		sl.MoveTime = time.Duration(config.Settings.Search.MoveTimeMs) * time.Millisecond
	} else {
		sl.Depth = config.Settings.Search.Depth
	}

	result := con.search.SuggestMove(con.position, side, sl)
	if result == nil || result.BestMove == nil {
		con.log.Error("engine found no move to play")
		return
	}
	// the result's move references the search's own copy of the
	// position - re-apply it here by its coordinates
	best := result.BestMove
	if _, err := con.mg.MakeUserMove(con.position, best.FromX, best.FromY, best.ToX, best.ToY, best.Promotion); err != nil {
		con.log.Errorf("engine move %s rejected: %v", best.String(), err)
		return
	}
	con.render()
	con.printf("AI's move: %s to %s (rating: %d; depth: %d)\n",
		types.SquareString(best.FromX, best.FromY),
		types.SquareString(best.ToX, best.ToY),
		result.BestValue, result.Depth)
}

// humanMove prompts for a move in the form `e2 to e4` with a
// follow-up promotion prompt when needed, until a legal move was
// entered. Returns false when the input ends.
func (con *Console) humanMove() bool {
	for {
		con.printf("Your move: ")
		line, ok := con.readLine()
		if !ok {
			return false
		}
		fromX, fromY, toX, toY, ok := parseMove(line)
		if !ok {
			con.printf("Invalid move; expected form `xy to xy`\n")
			continue
		}

		// a pawn reaching the last rank needs a promotion kind
		promotion := types.KindNone
		piece := con.position.GetPiece(fromX, fromY)
		if piece != nil && piece.Kind == types.Pawn && (toY == 0 || toY == types.BoardSize-1) {
			promotion, ok = con.promptPromotion()
			if !ok {
				return false
			}
		}

		if _, err := con.mg.MakeUserMove(con.position, fromX, fromY, toX, toY, promotion); err != nil {
			switch err {
			case movegen.ErrNoPiece, movegen.ErrWrongColor:
				con.printf("Invalid piece selected\n")
			case movegen.ErrWouldSelfCheck:
				con.printf("Invalid move: resulted in check\n")
			default:
				con.printf("Invalid move: %v\n", err)
			}
			continue
		}
		con.render()
		return true
	}
}

// promptPromotion asks for the promotion piece kind
func (con *Console) promptPromotion() (types.PieceKind, bool) {
	for {
		con.printf("Enter pawn promotion type (`k`, `b`, `r` or `q`): ")
		line, ok := con.readLine()
		if !ok {
			return types.KindNone, false
		}
		switch line {
		case "k":
			return types.Knight, true
		case "b":
			return types.Bishop, true
		case "r":
			return types.Rook, true
		case "q":
			return types.Queen, true
		default:
			con.printf("Invalid promotion type; must be `k`, `b`, `r`, or `q`\n")
		}
	}
}

// parseMove reads a move in the form `e2 to e4`
func parseMove(line string) (fromX, fromY, toX, toY int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[1] != "to" {
		return 0, 0, 0, 0, false
	}
	fromX, fromY, ok1 := types.ParseSquare(fields[0])
	toX, toY, ok2 := types.ParseSquare(fields[2])
	if !ok1 || !ok2 {
		return 0, 0, 0, 0, false
	}
	return fromX, fromY, toX, toY, true
}

// render draws the board oriented to the human player's side with
// unicode piece symbols.
func (con *Console) render() {
	var sb strings.Builder
	if con.human == types.Black {
		sb.WriteString("  h g f e d c b a\n")
	} else {
		sb.WriteString("  a b c d e f g h\n")
	}
	for row := 0; row < types.BoardSize; row++ {
		y := row
		if con.human == types.Black {
			y = types.BoardSize - row - 1
		}
		sb.WriteString(fmt.Sprintf("%d|", types.BoardSize-y))
		for col := 0; col < types.BoardSize; col++ {
			x := col
			if con.human == types.Black {
				x = types.BoardSize - col - 1
			}
			pc := con.position.GetPiece(x, y)
			switch {
			case pc == nil && (x+y)%2 == 1:
				sb.WriteString("· ")
			case pc == nil:
				sb.WriteString("• ")
			case pc.Color == types.White:
				sb.WriteString(whiteSymbols[pc.Kind] + " ")
			default:
				sb.WriteString(blackSymbols[pc.Kind] + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	con.printf("%s", sb.String())
}
