package ai

import (
	"github.com/pkg/errors"
)

// Validate matches value against the definition's components in order and
// returns the number of bytes consumed. Each component takes up to its Max
// bytes of the remaining value; a remainder shorter than Min fails. The
// component's implicit character-set linter runs first, followed by its
// declared linters.
//
// A consumed count shorter than the value is not an error here: for AIs of
// predefined length the caller continues parsing the next AI at that offset,
// and for FNC1-terminated AIs the caller rejects the excess.
func Validate(def *Definition, value string) (int, error) {
	pos := 0
	for ci := range def.Components {
		comp := &def.Components[ci]
		if comp.CSet == CSetNone {
			break
		}
		take := int(comp.Max)
		if rest := len(value) - pos; take > rest {
			take = rest
		}
		if take < int(comp.Min) {
			return 0, errors.Errorf("AI (%s) data is too short", def.AI)
		}
		part := value[pos : pos+take]
		if err := comp.CSet.lintID().lint(def, part); err != nil {
			return 0, err
		}
		for _, id := range comp.Linters {
			if err := id.lint(def, part); err != nil {
				return 0, err
			}
		}
		pos += take
	}
	return pos, nil
}
