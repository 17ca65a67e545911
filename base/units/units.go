package units

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
)

// The ledger keeps two minor-unit denominations for the native currency:
// contract parameters carry 8-decimal units (tinybars) while the value field
// of a payable call carries 18-decimal units (weibars). The two are related
// by a fixed 10^10 scale. Every conversion goes through this package; no
// other code is allowed to scale monetary values.

const (
	TinybarDecimals = 8
	WeibarDecimals  = 18
)

// tinybar -> weibar scale, 10^10
var scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(WeibarDecimals-TinybarDecimals), nil)

// Tinybar is a positive integer amount of 8-decimal minor units, held as its
// canonical decimal string. Never a float.
type Tinybar string

// Weibar is a positive integer amount of 18-decimal minor units, held as its
// canonical decimal string. Never a float.
type Weibar string

func (t Tinybar) String() string {
	return string(t)
}

func (t Tinybar) BigInt() (*big.Int, error) {
	n, ok := new(big.Int).SetString(string(t), 10)
	if !ok || n.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return n, nil
}

func (w Weibar) String() string {
	return string(w)
}

func (w Weibar) BigInt() (*big.Int, error) {
	n, ok := new(big.Int).SetString(string(w), 10)
	if !ok || n.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return n, nil
}

// ToTinybar converts a human amount of the native currency to 8-decimal
// minor units. Zero or negative amounts fail with ErrInvalidAmount; more
// than 8 fractional digits fail with ErrPrecisionLoss instead of rounding.
func ToTinybar(human string) (Tinybar, error) {
	minor, err := toMinor(human, TinybarDecimals)
	if err != nil {
		return "", err
	}
	return Tinybar(minor), nil
}

// ToWeibar converts a human amount of the native currency to 18-decimal
// minor units.
func ToWeibar(human string) (Weibar, error) {
	minor, err := toMinor(human, WeibarDecimals)
	if err != nil {
		return "", err
	}
	return Weibar(minor), nil
}

// TinybarToWeibar widens an 8-decimal amount to the 18-decimal denomination
// used by transaction value fields. Always exact.
func TinybarToWeibar(t Tinybar) (Weibar, error) {
	n, err := t.BigInt()
	if err != nil {
		return "", err
	}
	return Weibar(new(big.Int).Mul(n, scale).String()), nil
}

// WeibarToTinybar narrows an 18-decimal amount to 8-decimal contract units.
// Fails with ErrPrecisionLoss when the amount is not exactly divisible;
// sub-unit value is never silently truncated.
func WeibarToTinybar(w Weibar) (Tinybar, error) {
	n, err := w.BigInt()
	if err != nil {
		return "", err
	}
	quo, rem := new(big.Int).QuoRem(n, scale, new(big.Int))
	if rem.Sign() != 0 {
		return "", domain.ErrPrecisionLoss
	}
	return Tinybar(quo.String()), nil
}

// AddTinybar sums two tinybar amounts with big-integer arithmetic.
func AddTinybar(a, b Tinybar) (Tinybar, error) {
	an, err := a.BigInt()
	if err != nil {
		return "", err
	}
	bn, err := b.BigInt()
	if err != nil {
		return "", err
	}
	return Tinybar(new(big.Int).Add(an, bn).String()), nil
}

func toMinor(human string, decimals int32) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(human))
	if err != nil {
		return "", domain.ErrInvalidAmount
	}
	if d.Sign() <= 0 {
		return "", domain.ErrInvalidAmount
	}
	shifted := d.Shift(decimals)
	if !shifted.IsInteger() {
		return "", domain.ErrPrecisionLoss
	}
	return shifted.BigInt().String(), nil
}
