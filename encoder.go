package abiencode

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Encoder packs (types, values) pairs into the standard ABI encoding.
// An Encoder is immutable and safe for concurrent use.
type Encoder struct {
	cfg *encoderConfig
}

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...EncoderOption) *Encoder {
	cfg := defaultEncoderConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Encoder{cfg: cfg}
}

var defaultEncoder = NewEncoder()

// Encode encodes values according to types with the default Encoder and
// returns 0x-prefixed lowercase hex.
func Encode(types []string, values []any) (string, error) {
	return defaultEncoder.Encode(types, values)
}

// EncodeBytes is like Encode but returns the raw bytes.
func EncodeBytes(types []string, values []any) ([]byte, error) {
	return defaultEncoder.EncodeBytes(types, values)
}

// Encode encodes values according to types and returns lowercase hex.
func (e *Encoder) Encode(types []string, values []any) (string, error) {
	data, err := e.EncodeBytes(types, values)
	if err != nil {
		return "", err
	}
	return e.formatHex(data), nil
}

// EncodeBytes encodes values according to types.
//
// Static values occupy one 32-byte word each: addresses and unsigned
// integers are right-aligned and zero-padded, signed integers are
// sign-extended. Dynamic values (bytes, string) use head/tail layout.
func (e *Encoder) EncodeBytes(types []string, values []any) ([]byte, error) {
	args, packed, err := e.prepare(types, values)
	if err != nil {
		return nil, err
	}

	data, perr := args.Pack(packed...)
	if perr != nil {
		return nil, &EncodingError{Op: "pack", Err: perr}
	}
	return data, nil
}

// EncodeInvocation encodes inv.
func (e *Encoder) EncodeInvocation(inv *Invocation) ([]byte, error) {
	return e.EncodeBytes(inv.types, inv.values)
}

// Validate reports whether types and values would encode, without packing.
func (e *Encoder) Validate(types []string, values []any) error {
	_, _, err := e.prepare(types, values)
	return err
}

// prepare parses the types and converts every value to its packer shape.
func (e *Encoder) prepare(types []string, values []any) (abi.Arguments, []any, error) {
	if len(types) == 0 {
		return nil, nil, newValidationError(EmptyTypes, "at least one type is required")
	}
	if len(types) > e.cfg.maxArgs {
		return nil, nil, newValidationError(TooManyArguments, "%d types, limit is %d", len(types), e.cfg.maxArgs)
	}
	if len(types) != len(values) {
		return nil, nil, newValidationError(LengthMismatch, "%d types, %d values", len(types), len(values))
	}

	args, err := ParseTypes(types)
	if err != nil {
		return nil, nil, err
	}

	packed := make([]any, len(values))
	for i, value := range values {
		v, verr := convertToABIType(args[i].Type, value, e.cfg)
		if verr != nil {
			return nil, nil, verr.at(i, args[i].Type.String(), value)
		}
		packed[i] = v
	}
	return args, packed, nil
}

func (e *Encoder) formatHex(data []byte) string {
	if e.cfg.prefix {
		return hexutil.Encode(data)
	}
	return hex.EncodeToString(data)
}

// Words splits an encoding into 32-byte words. A trailing partial word is
// zero-padded, which never happens for well-formed encodings.
func Words(data []byte) [][WordSize]byte {
	result := make([][WordSize]byte, 0, (len(data)+WordSize-1)/WordSize)
	for off := 0; off < len(data); off += WordSize {
		var w [WordSize]byte
		copy(w[:], data[off:min(off+WordSize, len(data))])
		result = append(result, w)
	}
	return result
}
