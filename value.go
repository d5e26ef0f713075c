package abiencode

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

var bigIntType = reflect.TypeOf((*big.Int)(nil))

// convertToABIType turns a loosely typed Go value into the exact Go type the
// go-ethereum packer expects for t, validating it on the way.
// Supported inputs:
//   - address: string, common.Address, [20]byte, []byte (20 bytes)
//   - uintN/intN: *big.Int, big.Int, *uint256.Int, Go integers, decimal or 0x strings
//   - bool: bool, "true"/"false"
//   - bytesN: [N]byte, []byte, 0x strings decoding to N bytes
//   - bytes: []byte, 0x strings
//   - string: string
func convertToABIType(t abi.Type, value any, cfg *encoderConfig) (any, *ValidationError) {
	if value == nil {
		return nil, &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("nil value for %s", t)}
	}

	switch t.T {
	case abi.AddressTy:
		return toAddress(value, cfg.checksum)
	case abi.UintTy, abi.IntTy:
		return toInteger(t, value)
	case abi.BoolTy:
		return toBool(value)
	case abi.FixedBytesTy:
		return toFixedBytes(t, value)
	case abi.BytesTy:
		return toBytes(value)
	case abi.StringTy:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, shapeMismatch(t, value)
	default:
		return nil, &ValidationError{Kind: UnknownType, Err: errNotElementary}
	}
}

func shapeMismatch(t abi.Type, value any) *ValidationError {
	return &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("cannot use %T as %s", value, t)}
}

// toAddress mirrors the checks of an EIP-55 aware address parser: the value
// must decode to exactly 20 bytes and, when written in mixed case, carry a
// valid checksum.
func toAddress(value any, checksum bool) (any, *ValidationError) {
	switch v := value.(type) {
	case common.Address:
		return v, nil
	case *common.Address:
		if v == nil {
			return nil, &ValidationError{Kind: InvalidAddress, Err: fmt.Errorf("nil address")}
		}
		return *v, nil
	case [common.AddressLength]byte:
		return common.Address(v), nil
	case []byte:
		if len(v) != common.AddressLength {
			return nil, &ValidationError{Kind: InvalidAddress, Err: fmt.Errorf("got %d bytes, want %d", len(v), common.AddressLength)}
		}
		return common.BytesToAddress(v), nil
	case string:
		return parseAddress(v, checksum)
	default:
		return nil, &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("cannot use %T as address", value)}
	}
}

func parseAddress(s string, checksum bool) (any, *ValidationError) {
	if !common.IsHexAddress(s) {
		body := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
		if _, err := hexutil.Decode("0x" + body); err == nil {
			return nil, &ValidationError{Kind: InvalidAddress, Err: fmt.Errorf("%q decodes to %d bytes, want %d", s, len(body)/2, common.AddressLength)}
		}
		return nil, &ValidationError{Kind: InvalidAddress, Err: fmt.Errorf("%q is not a hex address", s)}
	}

	addr := common.HexToAddress(s)
	if !checksum {
		return addr, nil
	}

	body := s
	if len(s) == 2*common.AddressLength+2 {
		body = s[2:]
	}
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return addr, nil
	}
	if want := addr.Hex()[2:]; body != want {
		return nil, &ValidationError{Kind: BadChecksum, Err: fmt.Errorf("%q, want 0x%s", s, want)}
	}
	return addr, nil
}

// toInteger converts value to a big integer, checks it against the bit width
// of t and returns it in the Go type the packer wants (uint8..uint64,
// int8..int64 or *big.Int).
func toInteger(t abi.Type, value any) (any, *ValidationError) {
	n, verr := toBigInt(value)
	if verr != nil {
		return nil, verr
	}
	if verr := checkRange(t, n); verr != nil {
		return nil, verr
	}

	goType := t.GetType()
	if goType == bigIntType {
		return n, nil
	}
	if t.T == abi.UintTy {
		return reflect.ValueOf(n.Uint64()).Convert(goType).Interface(), nil
	}
	return reflect.ValueOf(n.Int64()).Convert(goType).Interface(), nil
}

func toBigInt(value any) (*big.Int, *ValidationError) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("nil *big.Int")}
		}
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case *uint256.Int:
		if v == nil {
			return nil, &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("nil *uint256.Int")}
		}
		return v.ToBig(), nil
	case uint256.Int:
		return v.ToBig(), nil
	case string:
		return parseBigInt(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), nil
	}
	return nil, &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("cannot use %T as integer", value)}
}

// parseBigInt accepts decimal or 0x-prefixed hex, with an optional sign.
func parseBigInt(s string) (*big.Int, *ValidationError) {
	body := strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(body, "-"):
		neg, body = true, body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	base := 10
	if rest, ok := strings.CutPrefix(body, "0x"); ok {
		base, body = 16, rest
	} else if rest, ok := strings.CutPrefix(body, "0X"); ok {
		base, body = 16, rest
	}

	n, ok := new(big.Int).SetString(body, base)
	if !ok || body == "" || strings.ContainsAny(body, "+-_") {
		return nil, &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("%q: %w", s, strconv.ErrSyntax)}
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

// checkRange rejects negative values for unsigned types and values that do
// not fit in the type's bit width.
func checkRange(t abi.Type, n *big.Int) *ValidationError {
	size := t.Size
	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return &ValidationError{Kind: IntegerRange, Err: fmt.Errorf("negative value %s for %s", n, t)}
		}
		if n.BitLen() > size {
			return &ValidationError{Kind: IntegerRange, Err: fmt.Errorf("%s exceeds %d bits", n, size)}
		}
		return nil
	}

	limit := math.BigPow(2, int64(size-1))
	minimum := new(big.Int).Neg(limit)
	if n.Cmp(minimum) < 0 || n.Cmp(limit) >= 0 {
		return &ValidationError{Kind: IntegerRange, Err: fmt.Errorf("%s outside [%s, %s) for %s", n, minimum, limit, t)}
	}
	return nil
}

func toBool(value any) (any, *ValidationError) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, &ValidationError{Kind: ShapeMismatch, Err: err}
		}
		return b, nil
	}
	return nil, &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("cannot use %T as bool", value)}
}

func toBytes(value any) (any, *ValidationError) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		b, err := hexutil.Decode(v)
		if err != nil {
			return nil, &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("%q: %w", v, err)}
		}
		return b, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
		return b, nil
	}
	return nil, &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("cannot use %T as bytes", value)}
}

func toFixedBytes(t abi.Type, value any) (any, *ValidationError) {
	raw, verr := toBytes(value)
	if verr != nil {
		return nil, verr
	}
	b := raw.([]byte)
	if len(b) != t.Size {
		return nil, &ValidationError{Kind: ShapeMismatch, Err: fmt.Errorf("got %d bytes for %s", len(b), t)}
	}
	out := reflect.New(t.GetType()).Elem()
	reflect.Copy(out, reflect.ValueOf(b))
	return out.Interface(), nil
}

// normalizeValue maps values produced by the unpacker onto the shapes
// returned by Decode: integers of every width become *big.Int and fixed
// byte arrays stay arrays.
func normalizeValue(t abi.Type, value any) any {
	if t.T != abi.UintTy && t.T != abi.IntTy {
		return value
	}
	if n, ok := value.(*big.Int); ok {
		return n
	}
	rv := reflect.ValueOf(value)
	if t.T == abi.UintTy {
		return new(big.Int).SetUint64(rv.Uint())
	}
	return big.NewInt(rv.Int())
}
