package ai

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestIsCSet82(t *testing.T) {
	// every valid character, individually
	valid := `!"%&'()*+,-./:;<=>?_0123456789` +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	for _, c := range valid {
		name := fmt.Sprintf("IndividualChar_%q", c)
		t.Run(name, func(t *testing.T) {
			expect.WrapT(t).ShouldBeTrue(IsCSet82(string(c)))
		})
	}

	for _, s := range []string{
		"", "ABC123", "lorem_%%ipsum", "123//4567890", "<<open", "close>>",
		"...==?!?!?!?", "''_(--)_//", "+++---+++",
	} {
		name := fmt.Sprintf("ValidStrs_%q", s)
		t.Run(name, func(t *testing.T) {
			expect.WrapT(t).ShouldBeTrue(IsCSet82(s))
		})
	}

	for _, s := range []string{
		" ", "#", "A B", "ሴ", "\x00", "\x01", "\x80", "with\nbreak",
		"$$&&$$", "A@B.com", "insert[here]", "^_^", "`", ":{", "|", "}", "~",
	} {
		name := fmt.Sprintf("InvalidStrs_%q", s)
		t.Run(name, func(t *testing.T) {
			expect.WrapT(t).ShouldBeFalse(IsCSet82(s))
		})
	}
}

func TestIsCSetC(t *testing.T) {
	valid := "#-/0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, c := range valid {
		name := fmt.Sprintf("IndividualChar_%q", c)
		t.Run(name, func(t *testing.T) {
			expect.WrapT(t).ShouldBeTrue(IsCSetC(string(c)))
		})
	}

	for _, s := range []string{
		"!", `"`, "%", "&", "'", "(", ")", "*", "+", ",", ".",
		" ", "abc", "lorem~~ipsum", "ሴ", "\x00", "|",
	} {
		name := fmt.Sprintf("InvalidStrs_%q", s)
		t.Run(name, func(t *testing.T) {
			expect.WrapT(t).ShouldBeFalse(IsCSetC(s))
		})
	}
}

func TestCheckDigit(t *testing.T) {
	// bases paired with their expected mod-10 check digit
	for _, tt := range []struct {
		base string
		cd   int
	}{
		{"1234567890123", 1},
		{"0952012345678", 8},
		{"000000000001", 7},
		{"1000000000001", 4},
		{"0000000000001", 7},
		{"123123123123", 2},
		{"0", 0},
		{"2", 4},
		{"00000000000000001", 7}, // GSIN length
	} {
		t.Run(tt.base, func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(checkDigit(tt.base), tt.cd)

			full, err := AppendCheckDigit(tt.base)
			w.ShouldSucceed(err)
			w.ShouldBeEqual(full, fmt.Sprintf("%s%d", tt.base, tt.cd))
			w.ShouldSucceed(verifyCheckDigit(full))
		})
	}
}

func TestVerifyCheckDigitMismatch(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldFail(verifyCheckDigit("12345678901234"))
	w.ShouldFail(verifyCheckDigit("1"))

	// verification must never rewrite the trailing byte
	v := "12345678901234"
	_ = verifyCheckDigit(v)
	w.ShouldBeEqual(v, "12345678901234")
}

func TestAppendCheckDigitRejects(t *testing.T) {
	w := expect.WrapT(t)
	_, err := AppendCheckDigit("")
	w.ShouldFail(err)
	_, err = AppendCheckDigit("12A4")
	w.ShouldFail(err)
}
