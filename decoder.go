package abiencode

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Decode unpacks data according to types. Addresses decode to
// common.Address, integers of every width to *big.Int, bytesN to [N]byte,
// bytes to []byte, bool and string to themselves.
func Decode(types []string, data []byte) ([]any, error) {
	args, err := ParseTypes(types)
	if err != nil {
		return nil, err
	}

	values, uerr := args.Unpack(data)
	if uerr != nil {
		return nil, &EncodingError{Op: "unpack", Err: uerr}
	}
	for i := range values {
		values[i] = normalizeValue(args[i].Type, values[i])
	}
	return values, nil
}

// DecodeHex is like Decode but takes 0x-prefixed hex input.
func DecodeHex(types []string, input string) ([]any, error) {
	data, err := hexutil.Decode(input)
	if err != nil {
		return nil, &EncodingError{Op: "decode hex", Err: err}
	}
	return Decode(types, data)
}
