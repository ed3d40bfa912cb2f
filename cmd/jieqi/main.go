// Command jieqi is a minimal text driver for the Jieqi/Xiangqi engine core.
// It is a debugging harness, not a UI: the graphical board renderer and
// input handling are out of scope for this module (spec.md §1).
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/herohde/jieqi/pkg/engine"
	"github.com/seekerror/logw"
)

func main() {
	ctx := context.Background()

	jieqi, robot, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		logw.Exitf(ctx, "invalid arguments: %v", err)
	}

	opts := loadOptions(ctx)
	e := engine.New(ctx, "jieqi", "herohde", jieqi, robot, engine.WithOptions(opts))

	fmt.Printf("engine %v (%v)\n", e.Name(), e.Author())
	printBoard(e)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !runCommand(ctx, e, line) {
			return
		}
	}
}

// parseArgs implements the two-positional-boolean CLI contract: fewer than
// two arguments defaults to jieqi=true, robot=false; otherwise both
// arguments must be the literal strings "true" or "false".
func parseArgs(args []string) (jieqi, robot bool, err error) {
	if len(args) < 3 {
		return true, false, nil
	}

	jieqi, err = parseBoolArg(args[1])
	if err != nil {
		return false, false, fmt.Errorf("arg 1 invalid, expected jieqi:bool: %w", err)
	}
	robot, err = parseBoolArg(args[2])
	if err != nil {
		return false, false, fmt.Errorf("arg 2 invalid, expected robot:bool: %w", err)
	}
	return jieqi, robot, nil
}

func parseBoolArg(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("must be literal true or false, got %q", s)
	}
}

// runCommand executes one input line and returns false if the driver
// should exit.
func runCommand(ctx context.Context, e *engine.Engine, line string) bool {
	switch {
	case line == "quit" || line == "exit" || line == "q":
		return false

	case line == "print" || line == "p" || line == "":
		printBoard(e)

	case line == "reset" || line == "r":
		b := e.Board()
		e.Reset(ctx, b.Jieqi, b.Robot)
		printBoard(e)

	case strings.HasPrefix(line, "fen "):
		e.FromFEN(ctx, strings.TrimPrefix(line, "fen "))
		printBoard(e)

	case strings.HasPrefix(line, "robot"):
		moved, err := e.RobotMove(ctx)
		if err != nil {
			fmt.Println(err)
		} else if !moved {
			fmt.Println("robot: no move (off, or Red to move)")
		}
		printBoard(e)

	default:
		applyClickMove(ctx, e, line)
		printBoard(e)
	}
	return true
}

// applyClickMove interprets a 4-character coordinate move ("e3e4") as two
// Click calls, matching the UI's click(col,row)/click(col,row) selection
// and apply sequence.
func applyClickMove(ctx context.Context, e *engine.Engine, move string) {
	m, err := board.ParseMove(move)
	if err != nil {
		fmt.Printf("invalid move %q: %v\n", move, err)
		return
	}

	e.Click(ctx, m.From.Col, m.From.Row)
	if !e.Click(ctx, m.To.Col, m.To.Row) {
		fmt.Printf("illegal move: %v\n", move)
	}
}

func printBoard(e *engine.Engine) {
	b := e.Board()

	fmt.Println()
	for row := 0; row < board.BoardHeight; row++ {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(board.BoardHeight - 1 - row))
		sb.WriteString(" ")
		for col := 0; col < board.BoardWidth; col++ {
			c := b.ChessAt(board.Position{Row: row, Col: col})
			if c.IsEmpty() {
				sb.WriteString(" . ")
			} else {
				sb.WriteString(fmt.Sprintf(" %v ", c))
			}
		}
		fmt.Println(sb.String())
	}
	fmt.Println("   a  b  c  d  e  f  g  h  i")
	fmt.Printf("fen: %v\n", e.Position())
	fmt.Printf("turn: %v\n", b.Turn)
}
