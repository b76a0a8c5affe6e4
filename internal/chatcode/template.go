package chatcode

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/udisondev/buildcraft/internal/model"
)

// Build template payload layout.
const (
	// TypeBuildTemplate is the leading type tag of a build template code.
	TypeBuildTemplate byte = 0x0D

	// HeaderSize: type tag + profession code.
	HeaderSize = 2

	// TraitLineCount is the number of specialization blocks.
	TraitLineCount = 3

	// TierCount: adept, master, grandmaster.
	TierCount = 3

	// MaxPaletteSlots: heal, 3×utility, elite, terrestrial and aquatic.
	MaxPaletteSlots = 10

	codePrefix = "[&"
	codeSuffix = "]"
)

// Tier choice values packed in a trait line byte.
const (
	ChoiceNone   uint8 = 0
	ChoiceTop    uint8 = 1
	ChoiceMiddle uint8 = 2
	ChoiceBottom uint8 = 3
)

// TraitLine is one specialization block: spec id and the tier choices (adept, master, grandmaster).
type TraitLine struct {
	SpecializationID uint8
	Choices          [TierCount]uint8
}

// IsEmpty reports the sentinel empty block.
func (l TraitLine) IsEmpty() bool {
	return l == TraitLine{}
}

// Template is the parsed, unresolved payload of a build code.
type Template struct {
	ProfessionCode uint8
	Lines          [TraitLineCount]TraitLine
	Palette        []uint16 // read order, zeros kept (≤ 10)
}

// Parse decodes a build code into a Template.
//
// Fails with model.ErrFormat when the code is empty, not base64, shorter than the header
// or not a build template. Truncated trait blocks become empty blocks; palette reading
// stops when the payload is exhausted.
func Parse(code string) (Template, error) {
	payload, err := decodePayload(code)
	if err != nil {
		return Template{}, err
	}
	if len(payload) < HeaderSize {
		return Template{}, fmt.Errorf("payload of %d bytes shorter than %d-byte header: %w", len(payload), HeaderSize, model.ErrFormat)
	}

	r := NewReader(payload)
	tag, _ := r.ReadByte()
	if tag != TypeBuildTemplate {
		return Template{}, fmt.Errorf("type tag 0x%02X is not a build template (0x%02X): %w", tag, TypeBuildTemplate, model.ErrFormat)
	}

	var t Template
	t.ProfessionCode, _ = r.ReadByte()

	for i := range t.Lines {
		t.Lines[i] = readTraitLine(r)
	}

	for len(t.Palette) < MaxPaletteSlots && r.Remaining() >= 2 {
		id, _ := r.ReadUint16()
		t.Palette = append(t.Palette, id)
	}

	return t, nil
}

// readTraitLine reads one block; fewer than 2 remaining bytes yields the empty block.
func readTraitLine(r *Reader) TraitLine {
	if r.Remaining() < 2 {
		// Consume a dangling byte so palette parsing starts past the blocks.
		if r.Remaining() == 1 {
			_, _ = r.ReadByte()
		}
		return TraitLine{}
	}
	spec, _ := r.ReadByte()
	packed, _ := r.ReadByte()
	return TraitLine{
		SpecializationID: spec,
		Choices: [TierCount]uint8{
			packed & 0x03,
			(packed >> 2) & 0x03,
			(packed >> 4) & 0x03,
		},
	}
}

// decodePayload strips the optional [& ] wrapper and base64-decodes the rest.
func decodePayload(code string) ([]byte, error) {
	s := strings.TrimSpace(code)
	s = strings.TrimPrefix(s, codePrefix)
	s = strings.TrimSuffix(s, codeSuffix)
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty build code: %w", model.ErrFormat)
	}

	payload, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		// Some sites strip the padding.
		raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
		if rawErr != nil {
			return nil, fmt.Errorf("decoding base64: %w: %w", err, model.ErrFormat)
		}
		payload = raw
	}
	return payload, nil
}

// Bytes serializes the template into its binary payload.
func (t Template) Bytes() []byte {
	buf := make([]byte, 0, HeaderSize+2*TraitLineCount+2*len(t.Palette))
	buf = append(buf, TypeBuildTemplate, t.ProfessionCode)
	for _, l := range t.Lines {
		packed := l.Choices[0]&0x03 | (l.Choices[1]&0x03)<<2 | (l.Choices[2]&0x03)<<4
		buf = append(buf, l.SpecializationID, packed)
	}
	for i, id := range t.Palette {
		if i >= MaxPaletteSlots {
			break
		}
		buf = binary.LittleEndian.AppendUint16(buf, id)
	}
	return buf
}

// Encode returns the canonical "[&base64]" code of the template.
func Encode(t Template) string {
	return codePrefix + base64.StdEncoding.EncodeToString(t.Bytes()) + codeSuffix
}
