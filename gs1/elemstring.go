package gs1

import (
	"github.com/gs1sw/gs1code/ai"
)

// processAIData validates the element string held by the Encoder and builds
// the extracted-AI list. The element string must begin with '#', the FNC1 in
// first position. '#' separates the value of an FNC1-terminated AI from the
// next AI; values of AIs with predefined length run straight into the next
// AI. A single '|' separates the linear component from the 2D component of a
// composite symbol; the 2D component restarts in FNC1-first form.
//
// A '#' directly after the value of a predefined-length AI is consumed
// without complaint, as is one at the very end of the data.
func (e *Encoder) processAIData() error {
	data := e.dataStr
	if len(data) == 0 || data[0] != '#' {
		return e.fail("Missing FNC1 in first position")
	}
	if len(data) == 1 {
		return e.fail("The AI data is empty")
	}

	i := 1
	for i < len(data) {
		if data[i] == '|' {
			i++
			if i == len(data) || data[i] != '#' {
				return e.fail("Missing FNC1 in first position")
			}
			i++
			if i == len(data) {
				return e.fail("The AI data is empty")
			}
			continue
		}

		def, ok := ai.LookupPrefix(data[i:])
		if !ok {
			return e.fail("Unrecognised AI: %s", aiHead(data[i:]))
		}
		i += len(def.AI)

		valStart := i
		for i < len(data) && data[i] != '#' && data[i] != '|' {
			i++
		}
		value := data[valStart:i]

		consumed, err := ai.Validate(def, value)
		if err != nil {
			return e.fail("%s", err)
		}
		if consumed == 0 {
			return e.fail("AI (%s) data is empty", def.AI)
		}
		if len(e.ais) == MaxAIs {
			return e.fail("Too many AIs")
		}
		e.ais = append(e.ais, ExtractedAI{Def: def, Value: value[:consumed]})

		if consumed < len(value) {
			if def.FNC1Required {
				return e.fail("AI (%s) data is too long", def.AI)
			}
			// predefined length; the next AI follows with no separator
			i = valStart + consumed
			continue
		}

		if i < len(data) && data[i] == '#' {
			i++
			if i == len(data) {
				break // trailing FNC1 is tolerated
			}
		}
	}
	return nil
}

// aiHead trims data to at most the four bytes that could form an AI, for
// error messages.
func aiHead(data string) string {
	if len(data) > 4 {
		return data[:4]
	}
	return data
}
