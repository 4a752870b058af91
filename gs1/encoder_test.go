package gs1

import (
	"fmt"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

// The end-to-end behaviour across all three ingest syntaxes.
func TestEncoderScenarios(t *testing.T) {
	type row struct {
		name, in, elem string
		bad            bool
	}

	pass := func(name, in, elem string) row {
		return row{name: name, in: in, elem: elem}
	}
	fail := func(name, in string) row {
		return row{name: name, in: in, bad: true}
	}

	for i, tt := range []row{
		pass("gtin+lot", "(01)12345678901231(10)12345",
			"#01123456789012311012345"),
		pass("weight+lot", "(3100)123456(10)12345",
			"#31001234561012345"),
		pass("lot+date", "(10)12345(11)991225",
			"#1012345#11991225"),
		pass("escaped bracket", `(10)12345\(11)991225`,
			"#1012345(11)991225"),
		pass("dl gtin", "https://id.gs1.org/01/9520123456788",
			"#0109520123456788"),
		pass("dl path and query", "https://id.gs1.org/01/09520123456788/10/ABC1/21/12345?17=180426",
			"#010952012345678810ABC1#2112345#17180426"),
		pass("dl giai root", "https://example.com/8004/9520614141234567?01=9520123456788",
			"#80049520614141234567#0109520123456788"),
		pass("raw element string", "#010952012345678810ABC123",
			"#010952012345678810ABC123"),

		fail("empty value", "(10)(11)98765"),
		fail("fixed AI too long", "(01)123456789012312(10)12345"),
		fail("gdti tail over 17", "https://id.gs1.org/253/1231231231232TEST56789012345678"),
		fail("unknown numeric query key", "https://a/01/12312312312333?99=ABC&999=faux"),
		fail("bad gtin check digit", "#0112345678901234"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			e := NewEncoder()
			err := ingest(e, tt.in)

			if tt.bad {
				w.Logf("%v", err)
				w.As(tt.in).ShouldFail(err)
				w.ShouldBeTrue(e.Err())
				w.ShouldNotBeEmptyStr(e.ErrMsg())
				w.ShouldBeEqual(e.DataStr(), "")
				w.ShouldBeEqual(len(e.ExtractedAIs()), 0)
				return
			}

			w.As(tt.in).ShouldSucceed(err)
			w.ShouldBeFalse(e.Err())
			w.ShouldBeEqual(e.ErrMsg(), "")
			w.ShouldBeEqual(e.DataStr(), tt.elem)

			// the extracted list re-serialises to the element string
			w.ShouldBeEqual(reserialise(e.ExtractedAIs()), tt.elem)
		})
	}
}

// ingest picks the parser by input shape, the way front ends do.
func ingest(e *Encoder, in string) error {
	switch {
	case strings.HasPrefix(in, "("):
		return e.SetAIDataStr(in)
	case strings.HasPrefix(in, "http://"), strings.HasPrefix(in, "https://"):
		return e.SetDLURI(in)
	default:
		return e.SetDataStr(in)
	}
}

// reserialise rebuilds the element string from an extracted-AI list: AI then
// value, with '#' ahead of each AI except where the previous AI has a
// predefined length.
func reserialise(ais []ExtractedAI) string {
	var b strings.Builder
	fnc1 := true
	for _, x := range ais {
		if fnc1 {
			b.WriteByte('#')
		}
		b.WriteString(x.AI())
		b.WriteString(x.Value)
		fnc1 = x.FNC1Required()
	}
	return b.String()
}

func TestEncoderStateAcrossCalls(t *testing.T) {
	w := expect.WrapT(t)
	e := NewEncoder()

	w.ShouldSucceed(e.SetAIDataStr("(01)12345678901231"))
	w.ShouldBeEqual(e.DataStr(), "#0112345678901231")
	w.ShouldBeEqual(len(e.ExtractedAIs()), 1)

	// a failing parse wipes the previous result
	w.ShouldFail(e.SetAIDataStr("(10)"))
	w.ShouldBeEqual(e.DataStr(), "")
	w.ShouldBeEqual(len(e.ExtractedAIs()), 0)
	w.ShouldBeTrue(e.Err())

	// and a later success clears the error
	w.ShouldSucceed(e.SetAIDataStr("(10)ABC"))
	w.ShouldBeFalse(e.Err())
	w.ShouldBeEqual(e.ErrMsg(), "")
	w.ShouldBeEqual(e.DataStr(), "#10ABC")
}

func TestSetDataStrNonAIPayload(t *testing.T) {
	w := expect.WrapT(t)
	e := NewEncoder()

	// data without FNC1 in first is a symbology-specific payload, stored
	// verbatim with no extraction
	w.ShouldSucceed(e.SetDataStr("01234567890128"))
	w.ShouldBeEqual(e.DataStr(), "01234567890128")
	w.ShouldBeEqual(len(e.ExtractedAIs()), 0)

	w.ShouldFail(e.SetDataStr("#" + strings.Repeat("9", MaxData)))
}

func TestExtractedAIDetails(t *testing.T) {
	w := expect.WrapT(t)
	e := NewEncoder()
	w.StopOnMismatch().ShouldSucceed(e.SetAIDataStr("(01)09520123456788(3103)000123(10)XYZ"))

	ais := e.ExtractedAIs()
	w.StopOnMismatch().ShouldBeEqual(len(ais), 3)

	w.ShouldBeEqual(ais[0].AI(), "01")
	w.ShouldBeEqual(ais[0].Value, "09520123456788")
	w.ShouldBeEqual(ais[0].Title(), "GTIN")
	w.ShouldBeFalse(ais[0].FNC1Required())

	w.ShouldBeEqual(ais[1].AI(), "3103")
	w.ShouldBeEqual(ais[1].Value, "000123")
	w.ShouldBeEqual(ais[1].Title(), "NET WEIGHT (kg)")

	w.ShouldBeEqual(ais[2].AI(), "10")
	w.ShouldBeEqual(ais[2].Value, "XYZ")
	w.ShouldBeTrue(ais[2].FNC1Required())
}

func TestHRI(t *testing.T) {
	w := expect.WrapT(t)
	e := NewEncoder()
	w.StopOnMismatch().ShouldSucceed(e.SetAIDataStr("(01)09520123456788(10)ABC123"))

	w.ShouldBeEqual(e.HRI(), []string{
		"(01) 09520123456788",
		"(10) ABC123",
	})

	w.ShouldFail(e.SetAIDataStr("(10)"))
	w.ShouldBeEqual(len(e.HRI()), 0)
}
