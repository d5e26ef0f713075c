package abiencode

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestDecodeFixture(t *testing.T) {
	values, err := DecodeHex(fixtureTypes, fixtureEncoding)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(values) != 9 {
		t.Fatalf("Expected 9 values, got %d", len(values))
	}

	for i, want := range fixtureValues() {
		switch w := want.(type) {
		case string:
			addr, ok := values[i].(common.Address)
			if !ok {
				t.Fatalf("Value %d: expected common.Address, got %T", i, values[i])
			}
			if addr != common.HexToAddress(w) {
				t.Errorf("Value %d: expected %s, got %s", i, w, addr.Hex())
			}
		case int:
			n, ok := values[i].(*big.Int)
			if !ok {
				t.Fatalf("Value %d: expected *big.Int, got %T", i, values[i])
			}
			if n.Int64() != int64(w) {
				t.Errorf("Value %d: expected %d, got %s", i, w, n)
			}
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	types := []string{"uint8", "int16", "bool", "bytes4", "bytes", "string", "address"}
	addr := common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1")
	values := []any{255, -300, true, "0xdeadbeef", []byte{1, 2, 3}, "hello", addr}

	data, err := EncodeBytes(types, values)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	decoded, err := Decode(types, data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if n := decoded[0].(*big.Int); n.Int64() != 255 {
		t.Errorf("uint8: expected 255, got %s", n)
	}
	if n := decoded[1].(*big.Int); n.Int64() != -300 {
		t.Errorf("int16: expected -300, got %s", n)
	}
	if b := decoded[2].(bool); !b {
		t.Error("bool: expected true")
	}
	if b := decoded[3].([4]byte); b != [4]byte{0xde, 0xad, 0xbe, 0xef} {
		t.Errorf("bytes4: got %x", b)
	}
	if b := decoded[4].([]byte); !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Errorf("bytes: got %x", b)
	}
	if s := decoded[5].(string); s != "hello" {
		t.Errorf("string: got %q", s)
	}
	if a := decoded[6].(common.Address); a != addr {
		t.Errorf("address: got %s", a.Hex())
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("bad type", func(t *testing.T) {
		_, err := Decode([]string{"uint3"}, make([]byte, 32))
		if !errors.Is(err, ErrUnknownType) {
			t.Errorf("Expected ErrUnknownType, got %v", err)
		}
	})

	t.Run("short data", func(t *testing.T) {
		_, err := Decode(fixtureTypes, make([]byte, 8*WordSize))
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Fatalf("Expected *EncodingError, got %T: %v", err, err)
		}
		if encErr.Op != "unpack" {
			t.Errorf("Expected op unpack, got %s", encErr.Op)
		}
	})

	t.Run("bad hex", func(t *testing.T) {
		_, err := DecodeHex([]string{"address"}, "not hex")
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Fatalf("Expected *EncodingError, got %T: %v", err, err)
		}
	})
}
