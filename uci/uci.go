// Package uci implements a minimal textual command loop over the engine
// core: enough of a UCI-flavored protocol to set up a position and run
// perft against it from a driver script or interactive terminal.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/op/go-logging"

	"chesscore/cli"
	"chesscore/fen"
	"chesscore/internal/config"
	"chesscore/perft"
	"chesscore/position"
	"chesscore/zobrist"
)

var log = logging.MustGetLogger("uci")

// Loop reads whitespace-separated commands from in, one per line, and
// writes responses to out, until in is exhausted or a "quit" command is
// read. Supported commands:
//
//	position startpos
//	position fen <FEN...>
//	go perft [depth]
//	d
//	quit
//
// "go perft" with no depth argument runs cfg.PerftDepth.
func Loop(in io.Reader, out io.Writer, cfg config.Defaults) {
	keys := zobrist.New()
	pos, err := fen.Parse(fen.StartPosition, keys)
	if err != nil {
		log.Errorf("failed to seed starting position: %v", err)
		return
	}

	errColor := color.New(color.FgRed, color.Bold)
	okColor := color.New(color.FgGreen)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit":
			return

		case "position":
			next, err := handlePosition(fields[1:], keys)
			if err != nil {
				log.Warningf("position command rejected: %v", err)
				fmt.Fprintln(out, errColor.Sprintf("error: %v", err))
				continue
			}
			pos = next
			fmt.Fprintln(out, okColor.Sprint("position set"))

		case "go":
			handleGo(pos, fields[1:], out, errColor, cfg)

		case "d":
			fmt.Fprint(out, cli.FormatPosition(pos))
			fmt.Fprintln(out, fen.Serialize(pos))

		default:
			log.Warningf("unrecognized command: %q", line)
			fmt.Fprintln(out, errColor.Sprintf("unrecognized command: %s", fields[0]))
		}
	}
}

func handlePosition(args []string, keys *zobrist.Keys) (*position.Position, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("uci: position requires 'startpos' or 'fen <FEN>'")
	}

	switch args[0] {
	case "startpos":
		return fen.Parse(fen.StartPosition, keys)
	case "fen":
		if len(args) < 2 {
			return nil, fmt.Errorf("uci: position fen requires a FEN string")
		}
		return fen.Parse(strings.Join(args[1:], " "), keys)
	default:
		return nil, fmt.Errorf("uci: unrecognized position subcommand %q", args[0])
	}
}

func handleGo(pos *position.Position, args []string, out io.Writer, errColor *color.Color, cfg config.Defaults) {
	if len(args) < 1 || args[0] != "perft" {
		fmt.Fprintln(out, errColor.Sprint("error: only 'go perft [depth]' is supported"))
		return
	}

	depth := cfg.PerftDepth
	if len(args) >= 2 {
		d, err := strconv.Atoi(args[1])
		if err != nil || d < 0 {
			fmt.Fprintln(out, errColor.Sprintf("error: invalid perft depth %q", args[1]))
			return
		}
		depth = d
	}

	runID := uuid.New()
	log.Infof("[%s] starting perft depth=%d", runID, depth)

	results := perft.Divide(pos, depth)
	fmt.Fprint(out, perft.FormatDivide(results))

	log.Infof("[%s] perft depth=%d complete", runID, depth)
}
