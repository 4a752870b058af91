package gs1

import (
	"strings"

	"github.com/gs1sw/gs1code/ai"
)

// SetAIDataStr accepts GS1 data in bracketed AI syntax, for example
// "(01)12345678901231(10)ABC123", converts it to an element string and
// validates it. A literal '(' inside a value is written as "\(". A single
// '|' separates the linear component from the 2D component of a composite.
func (e *Encoder) SetAIDataStr(data string) error {
	e.reset()
	elem, err := e.buildFromBracketed(data)
	if err != nil {
		return err
	}
	e.dataStr = elem
	return e.processAIData()
}

// buildFromBracketed converts bracketed AI syntax into FNC1-first element
// string form. Each AI is resolved by exact match; a '#' is written before
// the AI unless the previous AI was of predefined length.
func (e *Encoder) buildFromBracketed(in string) (string, error) {
	var out strings.Builder
	fnc1Required := true

	i := 0
	for i < len(in) {
		if in[i] == '|' {
			out.WriteByte('|')
			fnc1Required = true
			i++
			continue
		}
		if in[i] != '(' {
			return "", e.fail("Expected AI in brackets")
		}
		end := strings.IndexByte(in[i:], ')')
		if end < 0 {
			return "", e.fail("Unterminated AI bracket")
		}
		key := in[i+1 : i+end]
		def, ok := ai.Lookup(key)
		if !ok {
			return "", e.fail("Unrecognised AI: %s", key)
		}
		if fnc1Required {
			out.WriteByte('#')
		}
		out.WriteString(def.AI)
		fnc1Required = !ai.HasFixedLength(def.AI)
		i += end + 1

		// the value runs to the next unescaped '(' or the component
		// separator; "\(" stands for a literal '('
		var val strings.Builder
		for i < len(in) {
			c := in[i]
			if c == '\\' && i+1 < len(in) && in[i+1] == '(' {
				val.WriteByte('(')
				i += 2
				continue
			}
			if c == '(' || c == '|' {
				break
			}
			val.WriteByte(c)
			i++
		}
		value := val.String()
		if value == "" {
			return "", e.fail("AI (%s) data is empty", def.AI)
		}
		if err := precheckValue(def, value); err != nil {
			return "", e.fail("%s", err)
		}
		out.WriteString(value)
		if out.Len() > MaxData {
			return "", e.fail("Maximum data length is %d characters", MaxData)
		}
	}
	return out.String(), nil
}
