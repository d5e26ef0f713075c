package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixedEncoding = "0x" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000009ca9d67f613c50741e30e5ef88418891e254604d" +
	"00000000000000000000000082af49447d8a07e3bd95bd0d56f35241523fbab1" +
	"0000000000000000000000000fbcbaea96ce0cf7ee00a8c19c3ab6f5dc8e1921" +
	"00000000000000000000000000000000000000000000000000000000000075e8" +
	"000000000000000000000000000000000000000000000000000000000000759e" +
	"0000000000000000000000001a44076050125825900e736c501f859c50fe728c" +
	"00000000000000000000000003773f85756acac65a869e89e3b7b2fcda6be140" +
	"000000000000000000000000eebe5e1bd522bbd9a64f28d923c0680f89db5c59"

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"abiencode"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultInvocation(t *testing.T) {
	code, stdout, stderr := runCLI(t)

	require.Equal(t, 0, code)
	require.Equal(t, fixedEncoding+"\n", stdout)
	require.Empty(t, stderr)
}

func TestDefaultInvocationIsStable(t *testing.T) {
	_, first, _ := runCLI(t)
	_, second, _ := runCLI(t)
	require.Equal(t, first, second)
}

func TestAdHocTypes(t *testing.T) {
	code, stdout, _ := runCLI(t,
		"--types", "address,uint256",
		"0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", "30184",
	)

	require.Equal(t, 0, code)
	require.Equal(t, "0x"+
		"00000000000000000000000082af49447d8a07e3bd95bd0d56f35241523fbab1"+
		"00000000000000000000000000000000000000000000000000000000000075e8\n", stdout)
}

func TestAdHocSignature(t *testing.T) {
	code, stdout, _ := runCLI(t, "--types", "(bool,int8)", "--", "true", "-1")

	require.Equal(t, 0, code)
	require.Equal(t, "0x"+strings.Repeat("0", 63)+"1"+strings.Repeat("f", 64)+"\n", stdout)
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{
			name: "length mismatch",
			args: []string{"--types", "address,uint256", "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"},
			msg:  "length mismatch",
		},
		{
			name: "short address",
			args: []string{"--types", "address", "0x82aF49447D8a07e3bd95BD0d56f35241523fBa"},
			msg:  "invalid address",
		},
		{
			name: "uint256 overflow",
			args: []string{"--types", "uint256", "0x1" + strings.Repeat("0", 64)},
			msg:  "integer out of range",
		},
		{
			name: "negative uint",
			args: []string{"--types", "uint256", "--", "-1"},
			msg:  "integer out of range",
		},
		{
			name: "unknown type",
			args: []string{"--types", "uint3", "1"},
			msg:  "unknown type",
		},
		{
			name: "values without types",
			args: []string{"1", "2"},
			msg:  "values given without --types",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)

			require.Equal(t, 1, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, "Fatal:")
			require.Contains(t, stderr, tt.msg)
		})
	}
}

func TestChecksumFlag(t *testing.T) {
	const badChecksum = "0x9CA9D67f613c50741E30e5Ef88418891e254604d"

	code, _, stderr := runCLI(t, "--types", "address", badChecksum)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "bad address checksum")

	code, stdout, stderr := runCLI(t, "--no-checksum", "--types", "address", badChecksum)
	require.Equal(t, 0, code)
	require.Equal(t, "0x0000000000000000000000009ca9d67f613c50741e30e5ef88418891e254604d\n", stdout)
	require.Contains(t, stderr, "checksum validation disabled")
}

func TestNoPrefix(t *testing.T) {
	code, stdout, _ := runCLI(t, "--no-prefix")

	require.Equal(t, 0, code)
	require.Equal(t, strings.TrimPrefix(fixedEncoding, "0x")+"\n", stdout)
}

func TestJSONOutput(t *testing.T) {
	code, stdout, _ := runCLI(t, "--json")
	require.Equal(t, 0, code)

	var out jsonResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Equal(t, "default", out.Name)
	require.Equal(t, fixedEncoding, out.Encoded)
	require.Len(t, out.Words, 9)
	require.Equal(t, "0x"+strings.Repeat("0", 60)+"75e8", out.Words[4])
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "args.toml", `
[[invocation]]
name = "pair"
types = ["address", "uint256"]
values = ["0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", 30184]

[[invocation]]
name = "flag"
signature = "(bool)"
values = [true]
`)

	code, stdout, stderr := runCLI(t, "--config", path)
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "0x"+
		"00000000000000000000000082af49447d8a07e3bd95bd0d56f35241523fbab1"+
		"00000000000000000000000000000000000000000000000000000000000075e8", lines[0])
	require.Equal(t, "0x"+strings.Repeat("0", 63)+"1", lines[1])
}

func TestConfigFileInvalidInvocation(t *testing.T) {
	path := writeFile(t, "args.toml", `
[[invocation]]
name = "good"
types = ["uint8"]
values = [1]

[[invocation]]
name = "bad"
types = ["uint8"]
values = [1000]
`)

	code, stdout, stderr := runCLI(t, "--config", path)
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "invocation 1 (bad)")
	require.Contains(t, stderr, "integer out of range")
}

func TestDecode(t *testing.T) {
	code, stdout, stderr := runCLI(t,
		"--types", strings.Join(fixedTypes, ","),
		"--decode", fixedEncoding,
	)
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 9)
	require.Equal(t, "0x0000000000000000000000000000000000000000", lines[0])
	require.Equal(t, "0x9cA9D67f613c50741E30e5Ef88418891e254604d", lines[1])
	require.Equal(t, "30184", lines[4])
	require.Equal(t, "30110", lines[5])
	require.Equal(t, "0xeEbe5E1bD522BbD9a64f28d923c0680F89DB5c59", lines[8])
}

func TestDecodeRequiresTypes(t *testing.T) {
	code, _, stderr := runCLI(t, "--decode", fixedEncoding)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "--decode requires --types")
}

func TestLogFormats(t *testing.T) {
	for _, format := range []string{"terminal", "logfmt", "json"} {
		t.Run(format, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "--verbosity", "3", "--log.format", format)
			require.Equal(t, 0, code)
			require.Equal(t, fixedEncoding+"\n", stdout)
			require.Contains(t, stderr, "Encoded invocation")
		})
	}

	code, _, stderr := runCLI(t, "--log.format", "xml")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, `unknown log format "xml"`)
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Version: "+version)
}
