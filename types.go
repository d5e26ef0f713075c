package abiencode

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// WordSize is the width of one ABI head word in bytes.
const WordSize = 32

var (
	errEmptyTag      = errors.New("empty type tag")
	errNonElementary = errors.New("arrays and tuples are not supported")
	errNotElementary = errors.New("not an elementary type")
	errBadIntSize    = errors.New("integer size must be a multiple of 8 between 8 and 256")
	errBadBytesSize  = errors.New("fixed bytes size must be between 1 and 32")
)

// ParseTypes parses elementary ABI type tags into abi.Arguments.
// Surrounding whitespace is ignored and bare "uint"/"int" mean 256 bits.
func ParseTypes(tags []string) (abi.Arguments, error) {
	if len(tags) == 0 {
		return nil, newValidationError(EmptyTypes, "at least one type is required")
	}

	args := make(abi.Arguments, len(tags))
	for i, tag := range tags {
		canon, err := canonicalType(tag)
		if err != nil {
			return nil, err.at(i, tag, nil)
		}
		t, nerr := abi.NewType(canon, "", nil)
		if nerr != nil {
			verr := &ValidationError{Kind: UnknownType, Err: nerr}
			return nil, verr.at(i, tag, nil)
		}
		args[i] = abi.Argument{Type: t}
	}
	return args, nil
}

// MustParseTypes is like ParseTypes but panics on error.
// Use only with compile-time constant tags.
func MustParseTypes(tags []string) abi.Arguments {
	args, err := ParseTypes(tags)
	if err != nil {
		panic(err)
	}
	return args
}

// ParseSignature splits a parameter list such as "(address,uint256)",
// "address,uint256" or "transfer(address to, uint256 amount)" into type tags.
// Parameter names are dropped. The tags are not validated.
func ParseSignature(sig string) ([]string, error) {
	sig = strings.TrimSpace(sig)
	if open := strings.IndexByte(sig, '('); open >= 0 {
		end := strings.LastIndexByte(sig, ')')
		if end < open {
			return nil, newValidationError(UnknownType, "unbalanced parentheses in %q", sig)
		}
		sig = sig[open+1 : end]
	}
	if strings.TrimSpace(sig) == "" {
		return nil, newValidationError(EmptyTypes, "signature has no parameters")
	}

	parts := strings.Split(sig, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			return nil, newValidationError(UnknownType, "empty parameter in %q", sig)
		}
		tags = append(tags, fields[0])
	}
	return tags, nil
}

// canonicalType checks that tag names a supported elementary type and
// returns the spelling go-ethereum expects.
func canonicalType(tag string) (string, *ValidationError) {
	tag = strings.TrimSpace(tag)
	switch {
	case tag == "":
		return "", &ValidationError{Kind: UnknownType, Err: errEmptyTag}
	case strings.ContainsAny(tag, "[]()"):
		return "", &ValidationError{Kind: UnknownType, Err: errNonElementary}
	}

	switch tag {
	case "address", "bool", "string", "bytes":
		return tag, nil
	case "uint", "int":
		return tag + "256", nil
	}

	for _, prefix := range []string{"uint", "int"} {
		if size, ok := strings.CutPrefix(tag, prefix); ok {
			n, err := strconv.Atoi(size)
			if err != nil || n < 8 || n > 256 || n%8 != 0 {
				return "", &ValidationError{Kind: UnknownType, Err: errBadIntSize}
			}
			return tag, nil
		}
	}
	if size, ok := strings.CutPrefix(tag, "bytes"); ok {
		n, err := strconv.Atoi(size)
		if err != nil || n < 1 || n > 32 {
			return "", &ValidationError{Kind: UnknownType, Err: errBadBytesSize}
		}
		return tag, nil
	}
	return "", &ValidationError{Kind: UnknownType, Err: errNotElementary}
}

// isDynamicType checks if an ABI type is dynamic (variable-length encoding).
func isDynamicType(t abi.Type) bool {
	switch t.T {
	case abi.StringTy, abi.BytesTy, abi.SliceTy:
		return true
	case abi.ArrayTy:
		return isDynamicType(*t.Elem)
	case abi.TupleTy:
		for _, elem := range t.TupleElems {
			if isDynamicType(*elem) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// IsStatic reports whether every argument has a fixed-width encoding,
// in which case the encoding is exactly len(args)*WordSize bytes.
func IsStatic(args abi.Arguments) bool {
	for _, arg := range args {
		if isDynamicType(arg.Type) {
			return false
		}
	}
	return true
}
