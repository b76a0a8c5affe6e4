package testutil

import (
	"github.com/udisondev/buildcraft/internal/refdata"
)

// Guardian specialization ids used across tests.
const (
	SpecZeal       = 42
	SpecRadiance   = 16
	SpecVirtues    = 46
	SpecFirebrand  = 62 // elite
	SpecWillbender = 65 // elite
)

// Fixtures содержит reference data для тестов декодера.
// Major trait ids: spec*100 + index (0..8), чтобы по id было видно, откуда trait.
var Fixtures = struct {
	Specializations []refdata.Specialization
	GuardianPalette map[int]int
}{
	Specializations: []refdata.Specialization{
		guardianSpec(SpecZeal, "Zeal", false),
		guardianSpec(SpecRadiance, "Radiance", false),
		guardianSpec(SpecVirtues, "Virtues", false),
		guardianSpec(SpecFirebrand, "Firebrand", true),
		guardianSpec(SpecWillbender, "Willbender", true),
	},
	// palette id → skill id
	GuardianPalette: map[int]int{
		4857:  9153,  // Shelter
		254:   9084,  // Sanctuary
		4746:  9102,  // Stand Your Ground
		4789:  9163,  // Signet of Wrath
		4721:  9128,  // Hallowed Ground
		4735:  9175,  // Renewed Focus
		43357: 40915, // Mantra of Solace
	},
}

func guardianSpec(id int, name string, elite bool) refdata.Specialization {
	majors := make([]int, 9)
	for i := range majors {
		majors[i] = id*100 + i
	}
	return refdata.Specialization{
		ID:          id,
		Name:        name,
		Profession:  "Guardian",
		Elite:       elite,
		MajorTraits: majors,
	}
}

// ReferenceData returns an in-memory source filled with Fixtures.
func ReferenceData() *refdata.Memory {
	m := refdata.NewMemory()
	for _, s := range Fixtures.Specializations {
		m.PutSpecialization(s)
	}
	m.PutPalette("Guardian", Fixtures.GuardianPalette)
	return m
}
