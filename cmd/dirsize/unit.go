package dirsize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/docker/go-units"
)

// Unit is the scale the total is reported in.
type Unit int

const (
	Byte Unit = iota
	Kilobyte
	Megabyte
	Gigabyte
)

// ErrInvalidUnit is wrapped by ParseUnit when the token is not a known unit.
var ErrInvalidUnit = errors.New("invalid unit")

var unitKeywords = map[string]Unit{
	"byte": Byte,
	"kilo": Kilobyte,
	"mega": Megabyte,
	"giga": Gigabyte,
}

func (u Unit) String() string {
	switch u {
	case Kilobyte:
		return "kilo"
	case Megabyte:
		return "mega"
	case Gigabyte:
		return "giga"
	default:
		return "byte"
	}
}

// Factor returns the number of bytes in one u.
func (u Unit) Factor() uint64 {
	switch u {
	case Kilobyte:
		return units.KiB
	case Megabyte:
		return units.MiB
	case Gigabyte:
		return units.GiB
	default:
		return 1
	}
}

// ParseUnit matches token case-insensitively against byte, kilo, mega and giga.
func ParseUnit(token string) (Unit, error) {
	if unit, ok := unitKeywords[strings.ToLower(token)]; ok {
		return unit, nil
	}
	return Byte, &invalidUnitError{token: token}
}

type invalidUnitError struct {
	token string
}

func (e *invalidUnitError) Error() string {
	return fmt.Sprintf("Invalid unit: %s", e.token)
}

func (e *invalidUnitError) Unwrap() error {
	return ErrInvalidUnit
}

// ResolveUnit picks the unit from a full argument list (program name, path,
// unit). Any other argument count means Byte.
func ResolveUnit(args []string) (Unit, error) {
	if len(args) != 3 {
		return Byte, nil
	}
	return ParseUnit(args[2])
}

// FactorOf turns a resolved unit into its scale factor. A failed resolution
// counts as Byte, so an unknown unit token prints the total in bytes.
func FactorOf(unit Unit, err error) uint64 {
	if err != nil {
		return 1
	}
	return unit.Factor()
}
