package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

// setupLogging installs the root logger. Logs always go to the error
// writer so that stdout carries nothing but results.
func setupLogging(ctx *cli.Context) error {
	lvl := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
	output := ctx.App.ErrWriter

	var handler slog.Handler
	switch format := ctx.String(logFormatFlag.Name); format {
	case "json":
		handler = log.JSONHandlerWithLevel(output, lvl)
	case "logfmt":
		handler = log.LogfmtHandlerWithLevel(output, lvl)
	case "", "terminal":
		output, usecolor := terminalOutput(output)
		handler = log.NewTerminalHandlerWithLevel(output, lvl, usecolor)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	log.SetDefault(log.NewLogger(handler))
	return nil
}

// terminalOutput wraps w for colour output when it is an interactive terminal.
func terminalOutput(w io.Writer) (io.Writer, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return w, false
	}
	usecolor := (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) && os.Getenv("TERM") != "dumb"
	if usecolor {
		return colorable.NewColorable(f), true
	}
	return w, false
}
