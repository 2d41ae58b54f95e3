package smallargs

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type converter func(token string, v *Value) error

var converters = [...]converter{
	Int:    parseInt,
	UInt:   parseUint,
	Double: parseDouble,
	Bool:   parseBool,
	String: parseString,
}

func convert(token string, v *Value) error {
	if !v.typ.valid() {
		return UsageError(errors.Errorf("no converter for %s", v.typ))
	}
	return converters[v.typ](token, v)
}

// numberBase picks the base from the raw token the way strtol is commonly
// driven: "0x" is hex, a leading zero followed by an octal digit is octal.
// It returns the digits with any hex prefix removed.  A sign is only
// allowed in base 10.
func numberBase(token string) (int, string) {
	switch {
	case strings.HasPrefix(token, "0x"):
		return 16, token[2:]
	case len(token) > 1 && token[0] == '0' && token[1] >= '1' && token[1] <= '7':
		return 8, token
	default:
		return 10, token
	}
}

// signed reports whether the digits carry their own sign.
func signed(digits string) bool {
	return strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+")
}

func parseInt(token string, v *Value) error {
	base, digits := numberBase(token)
	if base != 10 && signed(digits) {
		return ParseError(errors.Errorf("not an integer: %q", token))
	}
	i, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return ParseError(errors.Wrapf(err, "not an integer: %q", token))
	}
	v.payload = intPayload(i)
	return nil
}

// parseUint accepts a leading minus on decimal tokens and wraps it, as
// strtoul does: "-1" is the largest unsigned value.
func parseUint(token string, v *Value) error {
	base, digits := numberBase(token)
	var negative bool
	if signed(digits) {
		if base != 10 {
			return ParseError(errors.Errorf("not an unsigned integer: %q", token))
		}
		negative = digits[0] == '-'
		digits = digits[1:]
	}
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return ParseError(errors.Wrapf(err, "not an unsigned integer: %q", token))
	}
	if negative {
		u = -u
	}
	v.payload = uintPayload(u)
	return nil
}

// parseDouble saturates out of range values to an infinity, as strtod does.
func parseDouble(token string, v *Value) error {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return ParseError(errors.Wrapf(err, "not a number: %q", token))
	}
	v.payload = doublePayload(f)
	return nil
}

func parseBool(_ string, v *Value) error {
	p, _ := v.payload.(boolPayload)
	v.payload = p + 1
	return nil
}

func parseString(token string, v *Value) error {
	v.payload = stringPayload(token)
	return nil
}
