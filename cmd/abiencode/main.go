// abiencode prints the ABI encoding of a list of typed arguments.
//
// Without arguments it encodes the built-in deployment arguments:
//
//	$ abiencode
//	0x0000...eebe5e1bd522bbd9a64f28d923c0680f89db5c59
//
// Ad-hoc arguments are given with --types followed by the values
// (use "--" before negative numbers):
//
//	$ abiencode --types address,uint256 0x82aF49447D8a07e3bd95BD0d56f35241523fBab1 30184
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

var (
	typesFlag = &cli.StringFlag{
		Name:    "types",
		Aliases: []string{"t"},
		Usage:   `Comma separated type list, e.g. "address,uint256" or "(address,uint256)"`,
		EnvVars: []string{"ABIENCODE_TYPES"},
	}
	configFlag = &cli.StringFlag{
		Name:      "config",
		Aliases:   []string{"c"},
		Usage:     "TOML file with one or more [[invocation]] tables",
		TakesFile: true,
		EnvVars:   []string{"ABIENCODE_CONFIG"},
	}
	decodeFlag = &cli.StringFlag{
		Name:  "decode",
		Usage: "Decode the given hex data against --types instead of encoding",
	}
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print results as JSON objects, one per line",
	}
	noChecksumFlag = &cli.BoolFlag{
		Name:    "no-checksum",
		Usage:   "Accept mixed-case addresses with an invalid EIP-55 checksum",
		EnvVars: []string{"ABIENCODE_NO_CHECKSUM"},
	}
	noPrefixFlag = &cli.BoolFlag{
		Name:  "no-prefix",
		Usage: `Print hex without the "0x" prefix`,
	}
	concurrencyFlag = &cli.IntFlag{
		Name:    "concurrency",
		Usage:   "Number of invocations encoded in parallel",
		Value:   4,
		EnvVars: []string{"ABIENCODE_CONCURRENCY"},
	}
	verbosityFlag = &cli.IntFlag{
		Name:    "verbosity",
		Usage:   "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value:   2,
		EnvVars: []string{"ABIENCODE_VERBOSITY"},
	}
	logFormatFlag = &cli.StringFlag{
		Name:    "log.format",
		Usage:   "Log format to use (terminal, logfmt, json)",
		Value:   "terminal",
		EnvVars: []string{"ABIENCODE_LOG_FORMAT"},
	}
)

var commandVersion = &cli.Command{
	Name:  "version",
	Usage: "Print version numbers",
	Action: func(ctx *cli.Context) error {
		fmt.Fprintf(ctx.App.Writer, "abiencode\nVersion: %s\nGo:      %s\nTarget:  %s/%s\n",
			version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "abiencode",
		Usage:     "print the Ethereum ABI encoding of typed arguments",
		ArgsUsage: "[values...]",
		Version:   version,
		Flags: []cli.Flag{
			typesFlag,
			configFlag,
			decodeFlag,
			jsonFlag,
			noChecksumFlag,
			noPrefixFlag,
			concurrencyFlag,
			verbosityFlag,
			logFormatFlag,
		},
		Commands:        []*cli.Command{commandVersion},
		HideHelpCommand: true,
		Before:          setupLogging,
		Action:          encodeAction,
		OnUsageError: func(ctx *cli.Context, err error, isSubcommand bool) error {
			return err
		},
	}
}

// run executes the CLI and returns the process exit code. Results go to
// stdout, errors and logs to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, "Fatal:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
