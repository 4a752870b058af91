package ai

import (
	"github.com/pkg/errors"
)

// LintID names a component linter. Linters are pure predicates over a single
// component value; they are attached to registry components by identity and
// dispatched through a fixed table rather than through interfaces, so the
// registry stays plain data.
type LintID uint8

const (
	// LintNumeric fails unless every byte is a decimal digit.
	LintNumeric LintID = iota + 1

	// LintCSet82 fails unless every byte is in the GS1 CSET 82 alphabet.
	LintCSet82

	// LintCSetC fails unless every byte is in the component/part set.
	LintCSetC

	// LintCheckDigit fails unless the trailing digit is the correct GS1
	// mod-10 check digit for the preceding digits. It never rewrites the
	// value; use AppendCheckDigit to build a value from a base identifier.
	LintCheckDigit
)

// lint applies the linter to one component value of the given AI.
func (id LintID) lint(def *Definition, value string) error {
	switch id {
	case LintNumeric:
		if !IsNumeric(value) {
			return errors.Errorf("AI (%s) data contains a non-numeric character", def.AI)
		}
	case LintCSet82:
		if !IsCSet82(value) {
			return errors.Errorf("AI (%s) data contains an invalid CSET 82 character", def.AI)
		}
	case LintCSetC:
		if !IsCSetC(value) {
			return errors.Errorf("AI (%s) data contains an invalid CSET C character", def.AI)
		}
	case LintCheckDigit:
		if err := verifyCheckDigit(value); err != nil {
			return errors.Wrapf(err, "AI (%s)", def.AI)
		}
	default:
		return errors.Errorf("unknown linter %d for AI (%s)", id, def.AI)
	}
	return nil
}

// lintID returns the implicit character-set linter for the set.
func (cs CSet) lintID() LintID {
	switch cs {
	case CSetNumeric:
		return LintNumeric
	case CSetC:
		return LintCSetC
	default:
		return LintCSet82
	}
}

// checkDigit computes the GS1 mod-10 check digit of a base identifier. The
// weights alternate 3 and 1 with the rightmost digit of the base weighted 3.
func checkDigit(base string) int {
	sum, w := 0, 3
	for i := len(base) - 1; i >= 0; i-- {
		sum += int(base[i]-'0') * w
		w = 4 - w
	}
	// mod 10 additive inverse
	return (10 - (sum % 10)) % 10
}

// verifyCheckDigit reports whether the trailing digit of value is the GS1
// mod-10 checksum of the digits before it.
func verifyCheckDigit(value string) error {
	if len(value) < 2 {
		return errors.New("data is too short to carry a check digit")
	}
	want := checkDigit(value[:len(value)-1])
	if int(value[len(value)-1]-'0') != want {
		return errors.Errorf("data has an incorrect check digit (expected %d)", want)
	}
	return nil
}

// AppendCheckDigit returns base with its GS1 mod-10 check digit appended.
// The base must be entirely numeric.
func AppendCheckDigit(base string) (string, error) {
	if base == "" {
		return "", errors.New("no data to compute a check digit over")
	}
	if !IsNumeric(base) {
		return "", errors.New("check digits are only defined over numeric data")
	}
	return base + string(rune('0'+checkDigit(base))), nil
}
