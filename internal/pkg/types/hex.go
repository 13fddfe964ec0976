package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a value is not a 0x-prefixed hexadecimal quantity.
var ErrInvalidHex = errors.New("invalid hex quantity")

// Hex is a 0x-prefixed hexadecimal quantity as returned by JSON-RPC nodes
// (block numbers, gas, nonces, wei amounts).
type Hex string

// HexFromUint64 encodes n as a minimal 0x-prefixed quantity.
func HexFromUint64(n uint64) Hex {
	return Hex("0x" + strconv.FormatUint(n, 16))
}

// HexFromString validates s and returns it as a Hex.
func HexFromString(s string) (Hex, error) {
	if _, err := parseHex(s); err != nil {
		return "", err
	}

	return Hex(s), nil
}

// parseHex decodes an arbitrarily large 0x-prefixed quantity.
func parseHex(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("%w: %q has no 0x prefix", ErrInvalidHex, s)
	}

	digits := s[2:]
	if digits == "" {
		return nil, fmt.Errorf("%w: %q has no digits", ErrInvalidHex, s)
	}

	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return n, nil
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON accepts a JSON string holding a valid quantity.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	if _, err := parseHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Uint64 decodes the quantity. Invalid or overflowing values decode to zero.
func (h Hex) Uint64() uint64 {
	n, err := parseHex(string(h))
	if err != nil || !n.IsUint64() {
		return 0
	}

	return n.Uint64()
}

// Big decodes the quantity without overflow. Invalid values decode to zero.
func (h Hex) Big() *big.Int {
	n, err := parseHex(string(h))
	if err != nil {
		return new(big.Int)
	}

	return n
}
