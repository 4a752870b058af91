package ai

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

// The table is large and hand-maintained; these checks catch the mistakes
// that are easy to make when editing it.
func TestRegistryConsistency(t *testing.T) {
	w := expect.WrapT(t)
	seen := map[string]bool{}
	for i := range registry {
		def := &registry[i]
		w = w.As(def.AI)

		w.ShouldBeFalse(seen[def.AI])
		seen[def.AI] = true

		w.ShouldBeTrue(len(def.AI) >= 2 && len(def.AI) <= 4)
		w.ShouldBeTrue(IsNumeric(def.AI))

		// the predefined-length flag must agree with the prefix table
		w.ShouldBeEqual(def.FNC1Required, !HasFixedLength(def.AI))

		w.ShouldBeTrue(len(def.Components) >= 1 && len(def.Components) <= 5)
		for _, comp := range def.Components {
			w.ShouldBeTrue(comp.CSet != CSetNone)
			w.ShouldBeTrue(comp.Min <= comp.Max)
			w.ShouldBeTrue(comp.Max > 0)
		}

		// predefined-length AIs have a single possible total length
		if !def.FNC1Required {
			w.ShouldBeEqual(def.MinLength(), def.MaxLength())
		}

		w.ShouldBeTrue(def.MaxLength() <= 90)
	}
}

func TestRegistryKnownShapes(t *testing.T) {
	w := expect.WrapT(t)

	sscc, ok := Lookup("00")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(sscc.MinLength(), 18)
	w.ShouldBeEqual(sscc.Title, "SSCC")

	gdti, ok := Lookup("253")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(gdti.MinLength(), 13)
	w.ShouldBeEqual(gdti.MaxLength(), 30)

	grai, ok := Lookup("8003")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(len(grai.Components), 3)
	w.ShouldBeEqual(grai.MinLength(), 14)
	w.ShouldBeEqual(grai.MaxLength(), 30)

	itip, ok := Lookup("8006")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(itip.MinLength(), 18)
	w.ShouldBeEqual(itip.MaxLength(), 18)

	cpid, ok := Lookup("8010")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(cpid.Components[0].CSet, CSetC)
}
