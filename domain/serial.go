package domain

import (
	"math"
	"math/big"
	"strings"
)

// Serial is the canonical representation of a per-collection asset serial
// number: the decimal string of an unsigned integer in [0, 2^64). Inputs
// reach the system as strings, json numbers or big integers, so everything
// must go through ToSerial before crossing a trust boundary.
type Serial string

func (s Serial) String() string {
	return string(s)
}

func (s Serial) BigInt() *big.Int {
	// a Serial is only ever produced by ToSerial, so this cannot fail
	n, _ := new(big.Int).SetString(string(s), 10)
	return n
}

// ToSerial canonicalizes a serial number input. Digit strings are trimmed
// and normalized (leading zeros dropped), integral numbers are accepted as
// is. Anything negative, fractional or non-numeric fails with
// ErrInvalidSerial.
func ToSerial(v interface{}) (Serial, error) {
	var n *big.Int

	switch val := v.(type) {
	case Serial:
		return ToSerial(string(val))
	case string:
		trimmed := strings.TrimSpace(val)
		if len(trimmed) == 0 {
			return "", ErrInvalidSerial
		}
		for _, r := range trimmed {
			if r < '0' || r > '9' {
				return "", ErrInvalidSerial
			}
		}
		parsed, ok := new(big.Int).SetString(trimmed, 10)
		if !ok {
			return "", ErrInvalidSerial
		}
		n = parsed
	case int:
		n = big.NewInt(int64(val))
	case int32:
		n = big.NewInt(int64(val))
	case int64:
		n = big.NewInt(val)
	case uint64:
		n = new(big.Int).SetUint64(val)
	case float64:
		// json numbers decode as float64
		if val != math.Trunc(val) {
			return "", ErrInvalidSerial
		}
		f, _ := big.NewFloat(val).Int(nil)
		n = f
	case *big.Int:
		if val == nil {
			return "", ErrInvalidSerial
		}
		n = new(big.Int).Set(val)
	default:
		return "", ErrInvalidSerial
	}

	if n.Sign() < 0 || n.BitLen() > 64 {
		return "", ErrInvalidSerial
	}

	return Serial(n.String()), nil
}
