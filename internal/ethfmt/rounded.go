package ethfmt

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultDigits      = 2
	DefaultUnit   Unit = Ether
)

// Formatter renders wei amounts using an injected Converter.
type Formatter struct {
	Conv Converter
}

// Default uses DecimalConverter.
var Default = Formatter{Conv: DecimalConverter{}}

func (f Formatter) conv() Converter {
	if f.Conv == nil {
		return DecimalConverter{}
	}
	return f.Conv
}

// FromWei is a plain pass-through to the converter.
func (f Formatter) FromWei(wei string, unit Unit) (string, error) {
	return f.conv().FromWei(wei, unit)
}

// FromWeiRounded converts wei into unit and rounds the fraction to digits
// places, half away from zero. Integral results are returned untouched
// ("1", not "1.00"); fractional results always carry exactly digits places.
func (f Formatter) FromWeiRounded(wei string, digits int, unit Unit) (string, error) {
	s, err := f.conv().FromWei(wei, unit)
	if err != nil {
		return "", err
	}
	if !strings.Contains(s, ".") {
		return s, nil
	}
	if digits < 0 {
		digits = 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: converter returned %q", ErrInvalidNumber, s)
	}
	return d.StringFixed(int32(digits)), nil
}

func FromWei(wei string, unit Unit) (string, error) { return Default.FromWei(wei, unit) }

func FromWeiRounded(wei string, digits int, unit Unit) (string, error) {
	return Default.FromWeiRounded(wei, digits, unit)
}

// FromWeiBig formats a big.Int balance; nil reads as zero.
func FromWeiBig(v *big.Int, unit Unit) (string, error) {
	if v == nil {
		return "0", nil
	}
	return FromWei(v.String(), unit)
}

func FromWeiRoundedBig(v *big.Int, digits int, unit Unit) (string, error) {
	if v == nil {
		return "0", nil
	}
	return FromWeiRounded(v.String(), digits, unit)
}
