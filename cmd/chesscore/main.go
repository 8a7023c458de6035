// Command chesscore runs the engine's textual command loop against stdin
// and stdout, optionally reading engine defaults from chesscore.toml in the
// current directory.
package main

import (
	"os"

	"github.com/op/go-logging"

	"chesscore/internal/config"
	"chesscore/uci"
)

var log = logging.MustGetLogger("chesscore")

func main() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{level:.4s} %{module}%{color:reset} %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)
	logging.SetBackend(formatted)

	cfg, err := config.Load("chesscore.toml")
	if err != nil {
		log.Warningf("ignoring malformed chesscore.toml, using defaults: %v", err)
	}

	uci.Loop(os.Stdin, os.Stdout, cfg)
}
