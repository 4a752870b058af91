// Package epc decodes SGTIN-encoded EPC tag data into GS1 AI element data.
//
// An SGTIN is the combination of a GS1 GTIN and a serial string identifying
// the specific instance of that GTIN. The GS1 General Specifications treat
// serials as strings: '0', '07' and '007' are distinct. SGTIN-96 restricts
// serials to decimal values with no leading zeroes; SGTIN-198 permits the
// full GS1 AI character set in 7-bit packed form.
//
// Decoded tags convert to bracketed AI syntax with SGTIN.AIDataStr, which a
// gs1.Encoder ingests directly.
package epc

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/gs1sw/gs1code/ai"
)

const (
	SGTIN96NumBytes  = 12
	SGTIN198NumBytes = 25 // 198 bits are not byte-aligned
	SGTIN96Header    = 0x30
	SGTIN198Header   = 0x36
)

const (
	gcpStartBit    = 8 + 3 + 3        // header + filter + partition
	serialStartBit = gcpStartBit + 44 // company prefix + indicator/item ref
)

var (
	filterBits    = bitRun{8, 3}
	partitionBits = bitRun{11, 3}
	serial96Bits  = bitRun{58, 38}
	serial198Bits = bitRun{58, 140}

	// the 44-bit space between partition and serial is split between the
	// company prefix and the indicator/item-ref field according to the
	// partition value
	companyBits = [7]bitRun{
		{gcpStartBit, 40},
		{gcpStartBit, 37},
		{gcpStartBit, 34},
		{gcpStartBit, 30},
		{gcpStartBit, 27},
		{gcpStartBit, 24},
		{gcpStartBit, 20},
	}
	iirBits = [7]bitRun{
		{serialStartBit - 4, 4},
		{serialStartBit - 7, 7},
		{serialStartBit - 10, 10},
		{serialStartBit - 14, 14},
		{serialStartBit - 17, 17},
		{serialStartBit - 20, 20},
		{serialStartBit - 24, 24},
	}

	// item references per partition = 10^partition; company prefix limits
	// run the other way
	maxItems  = [7]int{1, 10, 100, 1000, 10000, 100000, 1000000}
	maxPrefix = [7]int{
		999999999999,
		99999999999,
		9999999999,
		999999999,
		99999999,
		9999999,
		999999,
	}
)

// SGTIN is a decoded serialised GTIN.
type SGTIN struct {
	filter    int
	partition int

	companyPrefix int
	indicator     int
	itemRef       int
	serial        string
}

// NewSGTIN returns an SGTIN with the given values, or an error if they do
// not fit the SGTIN field ranges.
func NewSGTIN(filter, partition, indicator, companyPrefix, itemRef int, serial string) (SGTIN, error) {
	s := SGTIN{
		filter:        filter,
		partition:     partition,
		indicator:     indicator,
		companyPrefix: companyPrefix,
		itemRef:       itemRef,
		serial:        serial,
	}
	return s, s.ValidateRanges()
}

// DecodeSGTINString decodes a big-endian, hex-encoded SGTIN EPC.
//
// The values are NOT range-checked; use ValidateRanges to determine whether
// the tag complies with the GS1/EPC Tag Data Standards.
func DecodeSGTINString(epc string) (SGTIN, error) {
	b, err := hex.DecodeString(epc)
	if err != nil {
		return SGTIN{}, err
	}
	return DecodeSGTIN(b)
}

// DecodeSGTIN decodes SGTIN-96 and SGTIN-198 encoded EPC tag data.
//
// For SGTIN-198 the final byte must be padded with two trailing 0 bits,
// since 198 bits is not byte-aligned.
func DecodeSGTIN(b []byte) (SGTIN, error) {
	if len(b) == 0 {
		return SGTIN{}, errors.New("no data provided")
	}

	var serial string
	switch b[0] {
	case SGTIN96Header:
		if len(b) != SGTIN96NumBytes {
			return SGTIN{}, errors.Errorf("SGTIN-96 should have %d bytes", SGTIN96NumBytes)
		}
		serial = fmt.Sprintf("%d", serial96Bits.uint64Of(b))
	case SGTIN198Header:
		if len(b) != SGTIN198NumBytes {
			return SGTIN{}, errors.Errorf("SGTIN-198 should have %d bytes", SGTIN198NumBytes)
		}
		serial = serial198Bits.asciiOf(b)
	default:
		return SGTIN{}, errors.Errorf("not an SGTIN header: %#X", b[0])
	}

	filter := int(filterBits.uint64Of(b))
	partition := int(partitionBits.uint64Of(b))
	if partition > 6 {
		return SGTIN{}, errors.Errorf("invalid partition: %d", partition)
	}

	iir := int(iirBits[partition].uint64Of(b))
	return SGTIN{
		filter:        filter,
		partition:     partition,
		companyPrefix: int(companyBits[partition].uint64Of(b)),
		indicator:     iir / maxItems[partition],
		itemRef:       iir % maxItems[partition],
		serial:        serial,
	}, nil
}

// ValidateRanges checks the SGTIN's values against the field ranges of the
// tag encodings. It does not check GS1 prefix allocation rules.
func (s SGTIN) ValidateRanges() error {
	if s.filter < 0 || s.filter > 7 {
		return errors.Errorf("invalid filter: %d", s.filter)
	}
	if s.indicator < 0 || s.indicator > 9 {
		return errors.Errorf("invalid indicator: %d", s.indicator)
	}
	if s.partition < 0 || s.partition > 6 {
		return errors.Errorf("invalid partition: %d", s.partition)
	}
	if s.itemRef < 0 || s.itemRef > maxItems[s.partition]-1 {
		return errors.Errorf("item refs in partition %d must be in [0, %d], "+
			"but is %d", s.partition, maxItems[s.partition]-1, s.itemRef)
	}
	if s.companyPrefix < 0 || s.companyPrefix > maxPrefix[s.partition] {
		return errors.Errorf("company prefix in partition %d must be in [0, %d], "+
			"but is %d", s.partition, maxPrefix[s.partition], s.companyPrefix)
	}
	if s.serial == "" {
		return errors.New("serial is empty")
	}
	if len(s.serial) > 20 {
		return errors.Errorf("SGTIN serial numbers are limited to at most "+
			"20 characters, but this serial has %d characters", len(s.serial))
	}
	if !ai.IsCSet82(s.serial) {
		return errors.Errorf("serial %q is not AI encodable", s.serial)
	}
	return nil
}

// GTIN returns the 14-digit GTIN represented by this SGTIN.
func (s SGTIN) GTIN() string {
	var base string
	if s.partition == 0 {
		// no item reference
		base = fmt.Sprintf("%d%012d", s.indicator, s.companyPrefix)
	} else {
		base = fmt.Sprintf("%d%0[2]*d%0[4]*d",
			s.indicator,
			12-s.partition, s.companyPrefix,
			s.partition, s.itemRef)
	}
	gtin, err := ai.AppendCheckDigit(base)
	if err != nil {
		// base is built from %0*d formatting and cannot be non-numeric
		panic(err)
	}
	return gtin
}

// Serial returns the serial string.
func (s SGTIN) Serial() string {
	return s.serial
}

// AIDataStr renders the SGTIN as bracketed AI syntax with the GTIN as
// AI (01) and the serial as AI (21), ready for gs1.Encoder.SetAIDataStr.
// Any '(' in the serial is escaped as "\(".
func (s SGTIN) AIDataStr() string {
	return "(01)" + s.GTIN() + "(21)" + strings.ReplaceAll(s.serial, "(", `\(`)
}
