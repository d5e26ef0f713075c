package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	abiencode "github.com/branched-services/go-abiencode"
)

// invocationFile is the layout of a --config file:
//
//	[[invocation]]
//	name   = "deploy"
//	types  = ["address", "uint256"]
//	values = ["0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", 30184]
//
// A signature such as "(address,uint256)" may be given instead of types.
type invocationFile struct {
	Invocations []invocationConfig `toml:"invocation"`
}

type invocationConfig struct {
	Name      string   `toml:"name"`
	Types     []string `toml:"types"`
	Signature string   `toml:"signature"`
	Values    []any    `toml:"values"`
}

var errNoInvocations = errors.New("no [[invocation]] tables")

// loadConfig reads a TOML invocation file. Unknown keys are rejected.
func loadConfig(path string) ([]*abiencode.Invocation, error) {
	var file invocationFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown keys %v", path, undecoded)
	}
	if len(file.Invocations) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoInvocations)
	}

	invocations := make([]*abiencode.Invocation, 0, len(file.Invocations))
	for i, cfg := range file.Invocations {
		inv, err := cfg.invocation()
		if err != nil {
			return nil, fmt.Errorf("%s: invocation %d: %w", path, i, err)
		}
		invocations = append(invocations, inv)
	}
	return invocations, nil
}

func (c invocationConfig) invocation() (*abiencode.Invocation, error) {
	types := c.Types
	switch {
	case c.Signature != "" && len(c.Types) > 0:
		return nil, errors.New("both types and signature are set")
	case c.Signature != "":
		parsed, err := abiencode.ParseSignature(c.Signature)
		if err != nil {
			return nil, err
		}
		types = parsed
	}
	return abiencode.NewInvocation(types, c.Values...).WithName(c.Name), nil
}
