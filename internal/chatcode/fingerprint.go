package chatcode

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a stable BLAKE2b-256 hex digest of the resolved build.
// Two codes that differ only in unresolved or duplicate entries share a fingerprint.
func (b DecodedBuild) Fingerprint() string {
	buf := make([]byte, 0, 16+4*(len(b.TraitIDs)+len(b.SkillIDs)))
	buf = append(buf, b.ProfessionCode)

	spec := uint32(0)
	if b.SpecializationID != nil {
		spec = uint32(*b.SpecializationID)
	}
	buf = binary.LittleEndian.AppendUint32(buf, spec)

	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(b.TraitIDs)))
	for _, id := range b.TraitIDs {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(id))
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(b.SkillIDs)))
	for _, id := range b.SkillIDs {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(id))
	}

	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
