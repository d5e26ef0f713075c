// Package abiencode encodes Ethereum contract-call arguments using the
// standard ABI head/tail layout, on top of go-ethereum's accounts/abi.
//
// The package accepts loosely typed Go values (hex strings, decimal
// strings, Go integers, *big.Int, *uint256.Int) and validates them against
// their declared type before packing:
//   - The type and value lists must have the same, non-zero length
//   - Addresses must decode to exactly 20 bytes; mixed-case addresses must
//     carry a valid EIP-55 checksum
//   - Integers must fit the bit width of their type, and unsigned types
//     reject negative values
//
// Every rejected input is reported as a *ValidationError.
//
// # Basic Usage
//
//	encoded, err := abiencode.Encode(
//	    []string{"address", "uint256"},
//	    []any{"0x9cA9D67f613c50741E30e5Ef88418891e254604d", 30184},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(encoded) // 0x0000...9ca9d67f...0000...75e8
//
// # Encoders
//
// NewEncoder builds an Encoder with options such as
// WithChecksumValidation, WithPrefix and WithMaxArguments. Encoders are
// immutable and may be shared between goroutines.
//
// # Batches
//
// A Batch encodes an ordered list of Invocations concurrently and returns
// the results in insertion order.
//
// # Decoding
//
// Decode and DecodeHex reverse the encoding for the same type list.
package abiencode
