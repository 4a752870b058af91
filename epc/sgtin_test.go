package epc

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"

	"github.com/gs1sw/gs1code/gs1"
)

func TestDecodeSGTIN(t *testing.T) {
	type row struct {
		name, epc, gtin, serial string
		badCode                 bool
	}

	pass := func(n, e, g, s string) row {
		return row{name: n, epc: e, gtin: g, serial: s}
	}
	fail := func(n, e string) row {
		return row{name: n, epc: e, badCode: true}
	}

	for i, tt := range []row{
		pass("partition0", "300000000000044000000001",
			"10000000000014", "1"),
		pass("company prefix 0", "301800000000004000000001",
			"00000000000017", "1"),
		pass("UPC-A", "3034257BF400B7800004CB2F",
			"00614141007349", "314159"),
		pass("UPC-A large serial", "30143639F84191AD22901607",
			"00888446671424", "193853396487"),
		pass("SGTIN-198 numeric", "36143639F8419198B966E1AB366E5B3470DC00000000000000",
			"00888446671424", "193853396487"),

		fail("unknown header", "E2801160600002054CC2096F"),
		fail("too long for SGTIN-96", "30180000400000400000000011"),
		fail("too short for SGTIN-96", "3018000040000040000000"),
		fail("too short for SGTIN-198", "36143636C5EB1769D72E557D52E5CBADDFC"),
		fail("partition 7", "301C00004000004000000001"),
		fail("not hex", "30g800000000004000000001"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)

			s, err := DecodeSGTINString(tt.epc)
			if tt.badCode {
				w.Logf("%+v", err)
				w.As(tt.epc).ShouldFail(err)
				return
			}
			w.As(tt.epc).ShouldSucceed(err)
			w.ShouldSucceed(s.ValidateRanges())
			w.ShouldBeEqual(s.GTIN(), tt.gtin)
			w.ShouldBeEqual(s.Serial(), tt.serial)
		})
	}
}

func TestNewSGTINRanges(t *testing.T) {
	w := expect.WrapT(t)

	_, err := NewSGTIN(1, 5, 0, 614141, 734, "314159")
	w.ShouldSucceed(err)

	_, err = NewSGTIN(1, 7, 0, 614141, 734, "314159")
	w.As("partition").ShouldFail(err)

	_, err = NewSGTIN(1, 5, 10, 614141, 734, "314159")
	w.As("indicator").ShouldFail(err)

	_, err = NewSGTIN(1, 5, 0, 614141, 100000, "314159")
	w.As("item ref").ShouldFail(err)

	_, err = NewSGTIN(1, 5, 0, 99999999, 734, "314159")
	w.As("company prefix").ShouldFail(err)

	_, err = NewSGTIN(1, 5, 0, 614141, 734, "")
	w.As("empty serial").ShouldFail(err)

	_, err = NewSGTIN(1, 5, 0, 614141, 734, "012345678901234567890")
	w.As("long serial").ShouldFail(err)

	_, err = NewSGTIN(1, 5, 0, 614141, 734, "no spaces allowed")
	w.As("serial charset").ShouldFail(err)
}

// Decoded tags feed the AI encoder directly.
func TestAIDataStr(t *testing.T) {
	w := expect.WrapT(t)

	s, err := DecodeSGTINString("3034257BF400B7800004CB2F")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(s.AIDataStr(), "(01)00614141007349(21)314159")

	e := gs1.NewEncoder()
	w.StopOnMismatch().ShouldSucceed(e.SetAIDataStr(s.AIDataStr()))
	w.ShouldBeEqual(e.DataStr(), "#010061414100734921314159")

	ais := e.ExtractedAIs()
	w.StopOnMismatch().ShouldBeEqual(len(ais), 2)
	w.ShouldBeEqual(ais[0].Value, "00614141007349")
	w.ShouldBeEqual(ais[1].Value, "314159")
}

func TestAIDataStrEscapesBracket(t *testing.T) {
	w := expect.WrapT(t)

	s, err := NewSGTIN(1, 5, 0, 614141, 734, "(A)1")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(s.AIDataStr(), `(01)00614141007349(21)\(A)1`)

	e := gs1.NewEncoder()
	w.StopOnMismatch().ShouldSucceed(e.SetAIDataStr(s.AIDataStr()))
	w.ShouldBeEqual(e.ExtractedAIs()[1].Value, "(A)1")
}
