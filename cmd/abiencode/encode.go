package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"reflect"
	"strings"

	abiencode "github.com/branched-services/go-abiencode"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var errValuesWithoutTypes = errors.New("values given without --types")

// jsonResult is the --json output for one encoded invocation.
type jsonResult struct {
	Name    string   `json:"name,omitempty"`
	Encoded string   `json:"encoded"`
	Words   []string `json:"words"`
}

func encodeAction(ctx *cli.Context) error {
	if ctx.IsSet(decodeFlag.Name) {
		return decodeAction(ctx)
	}

	invocations, err := collectInvocations(ctx)
	if err != nil {
		return err
	}

	var encOpts []abiencode.EncoderOption
	if ctx.Bool(noChecksumFlag.Name) {
		log.Warn("Address checksum validation disabled")
		encOpts = append(encOpts, abiencode.WithChecksumValidation(false))
	}
	batch := abiencode.NewBatch(
		abiencode.WithEncoder(abiencode.NewEncoder(encOpts...)),
		abiencode.WithConcurrency(ctx.Int(concurrencyFlag.Name)),
	)
	for _, inv := range invocations {
		batch.Add(inv)
	}

	log.Debug("Encoding invocations", "count", batch.Len(), "concurrency", ctx.Int(concurrencyFlag.Name))
	results, err := batch.Encode(ctx.Context)
	if err != nil {
		return err
	}
	for _, r := range results {
		log.Info("Encoded invocation", "index", r.Index, "name", r.Name, "bytes", len(r.Data))
	}
	return printResults(ctx.App.Writer, results, ctx.Bool(jsonFlag.Name), !ctx.Bool(noPrefixFlag.Name))
}

// collectInvocations picks the input source: a config file, ad-hoc
// --types with positional values, or the built-in deployment arguments.
func collectInvocations(ctx *cli.Context) ([]*abiencode.Invocation, error) {
	switch {
	case ctx.IsSet(configFlag.Name):
		path := ctx.String(configFlag.Name)
		log.Debug("Loading invocation file", "path", path)
		return loadConfig(path)

	case ctx.IsSet(typesFlag.Name):
		types, err := abiencode.ParseSignature(ctx.String(typesFlag.Name))
		if err != nil {
			return nil, err
		}
		args := ctx.Args().Slice()
		values := make([]any, len(args))
		for i, arg := range args {
			values[i] = arg
		}
		return []*abiencode.Invocation{abiencode.NewInvocation(types, values...)}, nil

	case ctx.NArg() > 0:
		return nil, errValuesWithoutTypes

	default:
		return []*abiencode.Invocation{fixedInvocation()}, nil
	}
}

func printResults(w io.Writer, results []abiencode.Result, asJSON, prefix bool) error {
	if !asJSON {
		for _, r := range results {
			fmt.Fprintln(w, formatHex(r.Data, prefix))
		}
		return nil
	}

	enc := json.NewEncoder(w)
	for _, r := range results {
		out := jsonResult{Name: r.Name, Encoded: formatHex(r.Data, prefix)}
		for _, word := range r.Words() {
			out.Words = append(out.Words, formatHex(word[:], prefix))
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	return nil
}

func decodeAction(ctx *cli.Context) error {
	if !ctx.IsSet(typesFlag.Name) {
		return errors.New("--decode requires --types")
	}
	types, err := abiencode.ParseSignature(ctx.String(typesFlag.Name))
	if err != nil {
		return err
	}

	input := ctx.String(decodeFlag.Name)
	if !strings.HasPrefix(input, "0x") && !strings.HasPrefix(input, "0X") {
		input = "0x" + input
	}
	values, err := abiencode.DecodeHex(types, input)
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Fprintln(ctx.App.Writer, formatValue(v))
	}
	return nil
}

func formatHex(data []byte, prefix bool) string {
	s := hexutil.Encode(data)
	if prefix {
		return s
	}
	return s[2:]
}

// formatValue renders a decoded value the way it would be written as input.
func formatValue(v any) string {
	switch v := v.(type) {
	case common.Address:
		return v.Hex()
	case *big.Int:
		return v.String()
	case []byte:
		return hexutil.Encode(v)
	case string:
		return v
	case bool:
		return fmt.Sprint(v)
	default:
		if b, ok := fixedBytes(v); ok {
			return hexutil.Encode(b)
		}
		return fmt.Sprint(v)
	}
}

// fixedBytes returns the contents of a [N]byte array.
func fixedBytes(v any) ([]byte, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Array || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}
	b := make([]byte, rv.Len())
	reflect.Copy(reflect.ValueOf(b), rv)
	return b, true
}
