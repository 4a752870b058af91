// Package gs1 turns GS1 Application Identifier payloads into validated
// element strings ready for symbol rendering.
//
// An Encoder accepts any of three input syntaxes: a raw element string with
// FNC1 markers ('#'), bracketed AI syntax "(01)12345678901231(10)ABC", or a
// GS1 Digital Link URI. All three are reduced to the same canonical element
// string, which is validated once by a single processor that also builds the
// list of extracted AIs consumed by renderers and by the human-readable
// interpretation (HRI) formatter.
//
// The AI table is shared and immutable; each Encoder owns all of its mutable
// state, so distinct Encoders may be used concurrently without locking.
package gs1

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/gs1sw/gs1code/ai"
)

const (
	// MaxData bounds the element string: the longest linear component plus
	// the largest 2D payload.
	MaxData = 75 + 2361

	// MaxAILen bounds a single AI value.
	MaxAILen = 90

	// MaxAIs bounds the extracted-AI list.
	MaxAIs = 64

	// MaxFname bounds input and output file names accepted by front ends.
	MaxFname = 120
)

// ExtractedAI is one AI and its value as extracted from the element string.
// Value aliases the Encoder's element string.
type ExtractedAI struct {
	Def   *ai.Definition
	Value string
}

// AI returns the identifier digits.
func (x ExtractedAI) AI() string { return x.Def.AI }

// Title returns the GS1 data title for HRI purposes.
func (x ExtractedAI) Title() string { return x.Def.Title }

// FNC1Required reports whether the AI's value must be delimited by FNC1.
func (x ExtractedAI) FNC1Required() bool { return x.Def.FNC1Required }

// Encoder holds the data for one barcode symbol: the element string, the
// AIs extracted from it and the last error. An Encoder is reset by each
// Set call; it must not be shared between goroutines.
type Encoder struct {
	dataStr string
	errMsg  string
	errFlag bool
	ais     []ExtractedAI
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// reset clears all per-parse state ahead of a new input.
func (e *Encoder) reset() {
	e.dataStr = ""
	e.errMsg = ""
	e.errFlag = false
	e.ais = nil
}

// fail records the error, empties the element string and drops any extracted
// AIs, so that a failed parse never leaves partial state behind.
func (e *Encoder) fail(format string, args ...interface{}) error {
	err := errors.Errorf(format, args...)
	e.errFlag = true
	e.errMsg = err.Error()
	e.dataStr = ""
	e.ais = nil
	return err
}

// SetDataStr accepts a raw data string. Data beginning with '#' is treated
// as a GS1 element string in FNC1-first form and fully validated; anything
// else is a symbology-specific payload and is stored verbatim.
func (e *Encoder) SetDataStr(data string) error {
	e.reset()
	if len(data) > MaxData {
		return e.fail("Maximum data length is %d characters", MaxData)
	}
	e.dataStr = data
	if strings.HasPrefix(data, "#") {
		return e.processAIData()
	}
	return nil
}

// DataStr returns the current element string, or the verbatim payload for
// non-AI data. It is empty after a failed parse.
func (e *Encoder) DataStr() string {
	return e.dataStr
}

// ExtractedAIs returns the AIs extracted by the last successful parse, in
// element-string order. The returned slice is owned by the Encoder and is
// valid until the next Set call.
func (e *Encoder) ExtractedAIs() []ExtractedAI {
	return e.ais
}

// Err reports whether the last operation failed.
func (e *Encoder) Err() bool {
	return e.errFlag
}

// ErrMsg returns the message for the last failure, or "" after success.
func (e *Encoder) ErrMsg() string {
	return e.errMsg
}

// HRI renders the extracted AIs as human-readable interpretation lines of
// the form "(01) 09520123456788".
func (e *Encoder) HRI() []string {
	if len(e.ais) == 0 {
		return nil
	}
	lines := make([]string, len(e.ais))
	for i, x := range e.ais {
		lines[i] = "(" + x.Def.AI + ") " + x.Value
	}
	return lines
}

// precheckValue applies the cheap whole-value checks ahead of component-wise
// validation: no stray FNC1 byte and total length within the definition's
// bounds. Running these first gives clearer errors than a component failure.
func precheckValue(def *ai.Definition, value string) error {
	if strings.IndexByte(value, '#') >= 0 {
		return errors.Errorf("AI (%s) data contains an illegal FNC1 character", def.AI)
	}
	if len(value) < def.MinLength() {
		return errors.Errorf("AI (%s) data is too short", def.AI)
	}
	if len(value) > def.MaxLength() {
		return errors.Errorf("AI (%s) data is too long", def.AI)
	}
	return nil
}
