package ai

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestValidate(t *testing.T) {
	type row struct {
		ai, value string
		consumed  int
		bad       bool
	}

	pass := func(ai, value string, consumed int) row {
		return row{ai: ai, value: value, consumed: consumed}
	}
	fail := func(ai, value string) row {
		return row{ai: ai, value: value, bad: true}
	}

	for i, tt := range []row{
		pass("00", "106141412345678908", 18),
		pass("01", "12345678901231", 14),
		pass("10", "ABC123", 6),
		pass("10", "12345678901234567890", 20),
		// a value longer than the component maxima is consumed up to the
		// maxima; the caller decides whether the rest is legal
		pass("10", "123456789012345678901", 20),
		pass("01", "123456789012311012345", 14),
		pass("253", "1231231231232", 13),
		pass("253", "1231231231232TEST5678901234567", 30),
		pass("255", "1231231231232", 13),
		pass("255", "1231231231232123456789012", 25),
		pass("8003", "01231231231232ABC", 17),
		pass("8006", "123456789012310102", 18),
		pass("421", "528ABCDEF", 9),
		pass("7040", "1ABC", 4),
		pass("8010", "0628165987", 10),
		pass("8010", "CPID#-/A", 8),
		pass("422", "528", 3),

		fail("00", "10614141234567890"),  // 17 digits, too short
		fail("00", "106141412345678909"), // bad check digit
		fail("01", "1234567890123"),
		fail("01", "1234567890123A"),
		fail("10", "ABC 123"),     // space is not CSET 82
		fail("10", "caf\xc3\xa9"), // not 7-bit
		fail("253", "123123123123"),
		fail("253", "1231231231231TEST"), // bad check digit
		fail("421", "52"),
		fail("421", "AAA123"), // country code must be numeric
		fail("8010", "cpid1"), // lower case is not CSET C
		fail("8006", "12345678901231010"),
	} {
		t.Run(fmt.Sprintf("%02d_(%s)%s", i, tt.ai, tt.value), func(t *testing.T) {
			w := expect.WrapT(t)
			def, ok := Lookup(tt.ai)
			w.StopOnMismatch().ShouldBeTrue(ok)

			consumed, err := Validate(def, tt.value)
			if tt.bad {
				w.As(tt.value).ShouldFail(err)
				return
			}
			w.As(tt.value).ShouldSucceed(err)
			w.ShouldBeEqual(consumed, tt.consumed)
		})
	}
}
