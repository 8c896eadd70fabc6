package ethfmt

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// Unit is a display denomination of wei.
type Unit string

const (
	Wei    Unit = "wei"
	Kwei   Unit = "kwei"
	Mwei   Unit = "mwei"
	Gwei   Unit = "gwei"
	Szabo  Unit = "szabo"
	Finney Unit = "finney"
	Ether  Unit = "ether"
	Kether Unit = "kether"
	Mether Unit = "mether"
	Gether Unit = "gether"
	Tether Unit = "tether"
)

var (
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrInvalidNumber = errors.New("invalid numeric format")
)

// power of ten per unit name, aliases included
var unitExp = map[string]int32{
	"wei": 0,
	"kwei": 3, "babbage": 3, "femtoether": 3,
	"mwei": 6, "lovelace": 6, "picoether": 6,
	"gwei": 9, "shannon": 9, "nanoether": 9, "nano": 9,
	"szabo": 12, "microether": 12, "micro": 12,
	"finney": 15, "milliether": 15, "milli": 15,
	"ether": 18,
	"kether": 21, "grand": 21,
	"mether": 24,
	"gether": 27,
	"tether": 30,
}

// Exp returns the power of ten the unit scales wei by.
func (u Unit) Exp() (int32, error) {
	e, ok := unitExp[strings.ToLower(strings.TrimSpace(string(u)))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(u))
	}
	return e, nil
}

// ParseUnit validates a unit name. Empty input yields Ether.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Ether, nil
	}
	u := Unit(s)
	if _, err := u.Exp(); err != nil {
		return "", err
	}
	return u, nil
}

// Converter scales a base-unit integer string into a display unit.
// Implementations must be exact: no float rounding.
type Converter interface {
	FromWei(wei string, unit Unit) (string, error)
}

// DecimalConverter is the default Converter. Output has trailing
// fractional zeros trimmed and no decimal point when integral.
type DecimalConverter struct{}

func (DecimalConverter) FromWei(wei string, unit Unit) (string, error) {
	exp, err := unit.Exp()
	if err != nil {
		return "", err
	}
	n, err := parseWei(wei)
	if err != nil {
		return "", err
	}
	return decimal.NewFromBigInt(n, -exp).String(), nil
}

// parseWei accepts base-10 integers and 0x quantities.
func parseWei(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := hexutil.DecodeBig("0x" + s[2:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidNumber, s, err)
		}
		return n, nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}

// ToWei converts a decimal amount in unit back to wei.
// More fractional digits than the unit can hold is an error.
func ToWei(amount string, unit Unit) (*big.Int, error) {
	exp, err := unit.Exp()
	if err != nil {
		return nil, err
	}
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("%w: empty amount", ErrInvalidNumber)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, amount)
	}
	d = d.Shift(exp)
	if !d.Equal(d.Truncate(0)) {
		return nil, fmt.Errorf("%w: too many fractional digits for %s", ErrInvalidNumber, unit)
	}
	return d.BigInt(), nil
}
