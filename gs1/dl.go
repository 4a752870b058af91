package gs1

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/gs1sw/gs1code/ai"
)

// dlCharSet are the only characters permitted anywhere in a Digital Link
// URI: RFC 3986 unreserved and reserved characters plus '%'.
const dlCharSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" +
	"0123456789-._~:/?#[]@!$&'()*+,;=%"

var dlChar = func() [128]bool {
	var t [128]bool
	for i := 0; i < len(dlCharSet); i++ {
		t[dlCharSet[i]] = true
	}
	return t
}()

// SetDLURI accepts a GS1 Digital Link URI, for example
// "https://id.gs1.org/01/09520123456788/10/ABC1?17=180426", converts it to
// an element string and validates it.
//
// The path is searched right to left for the last segment pair whose first
// segment is a Digital Link primary key; that pair roots the AI data and
// anything before it is an arbitrary stem. Emission then proceeds left to
// right from the root, followed by the query parameters. Values are
// percent-decoded, and GTIN values of 8, 12 or 13 digits are zero-padded to
// 14. Unknown numeric query keys are an error; other query keys and the
// fragment are ignored.
func (e *Encoder) SetDLURI(uri string) error {
	e.reset()
	elem, err := e.buildFromDL(uri)
	if err != nil {
		return err
	}
	e.dataStr = elem
	return e.processAIData()
}

func (e *Encoder) buildFromDL(uri string) (string, error) {
	for i := 0; i < len(uri); i++ {
		if uri[i] >= 128 || !dlChar[uri[i]] {
			return "", e.fail("URI contains illegal characters")
		}
	}

	var rest string
	switch {
	case strings.HasPrefix(uri, "https://"):
		rest = uri[len("https://"):]
	case strings.HasPrefix(uri, "http://"):
		rest = uri[len("http://"):]
	default:
		return "", e.fail("Scheme must be http:// or https://")
	}

	slash := strings.IndexByte(rest, '/')
	if slash <= 0 {
		return "", e.fail("URI must contain a domain and path info")
	}

	path := rest[slash:]
	query := ""
	if q := strings.IndexByte(path, '?'); q >= 0 {
		path, query = path[:q], path[q+1:]
	}
	if f := strings.IndexByte(query, '#'); f >= 0 {
		query = query[:f] // fragment is ignored
	}

	// locate the primary key by peeling /ai/value pairs from the right
	segs := strings.Split(path[1:], "/")
	root := -1
	for i := len(segs) - 2; i >= 0; i -= 2 {
		if def, ok := ai.Lookup(segs[i]); ok && ai.IsDLPrimaryKey(def.AI) {
			root = i
			break
		}
	}
	if root < 0 {
		return "", e.fail("No GS1 DL keys found in path info")
	}

	var out strings.Builder
	fnc1Required := true
	for i := root; i+1 < len(segs); i += 2 {
		if err := e.emitDLPair(&out, &fnc1Required, segs[i], segs[i+1]); err != nil {
			return "", err
		}
	}

	for _, tok := range strings.Split(query, "&") {
		if tok == "" {
			continue
		}
		eq := strings.IndexByte(tok, '=')
		if eq < 0 {
			continue // singleton, not AI data
		}
		key := tok[:eq]
		if _, ok := ai.Lookup(key); !ok {
			if key != "" && ai.IsNumeric(key) {
				return "", e.fail("Unknown AI (%s) in query parameters", key)
			}
			continue // foreign non-numeric key
		}
		if err := e.emitDLPair(&out, &fnc1Required, key, tok[eq+1:]); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

// emitDLPair appends one AI and its percent-decoded value to the element
// string under construction.
func (e *Encoder) emitDLPair(out *strings.Builder, fnc1Required *bool, key, raw string) error {
	def, ok := ai.Lookup(key)
	if !ok {
		return e.fail("Unrecognised AI: %s", key)
	}
	value, err := percentDecode(raw, MaxAILen)
	if err != nil {
		return e.fail("Decoded AI (%s) too long", def.AI)
	}
	if value == "" {
		return e.fail("AI (%s) data is empty", def.AI)
	}
	if def.AI == "01" {
		// GTIN-8, GTIN-12 and GTIN-13 are zero-padded to fourteen digits
		switch len(value) {
		case 8, 12, 13:
			value = strings.Repeat("0", 14-len(value)) + value
		}
	}
	if *fnc1Required {
		out.WriteByte('#')
	}
	out.WriteString(def.AI)
	*fnc1Required = !ai.HasFixedLength(def.AI)
	if err := precheckValue(def, value); err != nil {
		return e.fail("%s", err)
	}
	out.WriteString(value)
	if out.Len() > MaxData {
		return e.fail("Maximum data length is %d characters", MaxData)
	}
	return nil
}

// percentDecode expands %HH escapes, case-insensitively. A '%' not followed
// by two hex digits is copied through untouched. The decoded output may not
// exceed max bytes.
func percentDecode(s string, max int) (string, error) {
	var out strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '%' && i+3 <= len(s) {
			hi, ok1 := hexVal(s[i+1])
			lo, ok2 := hexVal(s[i+2])
			if ok1 && ok2 {
				out.WriteByte(byte(hi<<4 | lo))
				i += 3
				if out.Len() > max {
					return "", errors.New("decoded value too long")
				}
				continue
			}
		}
		out.WriteByte(s[i])
		i++
		if out.Len() > max {
			return "", errors.New("decoded value too long")
		}
	}
	return out.String(), nil
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	}
	return 0, false
}
