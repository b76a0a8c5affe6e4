package testutil

import (
	"encoding/base64"
	"encoding/binary"
)

// TraitLineBytes packs a spec id and (adept, master, grandmaster) choices into a 2-byte block.
func TraitLineBytes(spec byte, adept, master, grandmaster byte) []byte {
	return []byte{spec, adept&0x03 | (master&0x03)<<2 | (grandmaster&0x03)<<4}
}

// BuildPayload assembles a build template payload by hand, independent of the encoder under test.
func BuildPayload(profession byte, lines [][]byte, palette ...uint16) []byte {
	buf := []byte{0x0D, profession}
	for _, l := range lines {
		buf = append(buf, l...)
	}
	for _, id := range palette {
		buf = binary.LittleEndian.AppendUint16(buf, id)
	}
	return buf
}

// ChatCode wraps a raw payload into "[&base64]".
func ChatCode(payload []byte) string {
	return "[&" + base64.StdEncoding.EncodeToString(payload) + "]"
}
