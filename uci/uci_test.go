package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/internal/config"
)

var testConfig = config.Defaults{PerftDepth: 2}

func TestLoopPositionStartposAndPerft(t *testing.T) {
	in := strings.NewReader("position startpos\ngo perft 2\nquit\n")
	var out bytes.Buffer

	Loop(in, &out, testConfig)

	got := out.String()
	assert.Contains(t, got, "position set")
	assert.Contains(t, got, "Nodes searched: 400")
}

func TestLoopGoPerftWithNoDepthUsesConfigDefault(t *testing.T) {
	in := strings.NewReader("position startpos\ngo perft\nquit\n")
	var out bytes.Buffer

	Loop(in, &out, testConfig)

	assert.Contains(t, out.String(), "Nodes searched: 400")
}

func TestLoopPositionFen(t *testing.T) {
	in := strings.NewReader("position fen 4k3/8/8/8/8/8/8/4K3 w - - 0 1\nd\nquit\n")
	var out bytes.Buffer

	Loop(in, &out, testConfig)

	assert.Contains(t, out.String(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
}

func TestLoopRejectsMalformedFen(t *testing.T) {
	in := strings.NewReader("position fen not-a-fen\nquit\n")
	var out bytes.Buffer

	Loop(in, &out, testConfig)

	assert.Contains(t, out.String(), "error:")
}

func TestLoopRejectsUnknownCommand(t *testing.T) {
	in := strings.NewReader("bogus\nquit\n")
	var out bytes.Buffer

	Loop(in, &out, testConfig)

	assert.Contains(t, out.String(), "unrecognized command")
}
