package chatcode

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buildcraft/internal/model"
	"github.com/udisondev/buildcraft/internal/refdata"
	"github.com/udisondev/buildcraft/internal/testutil"
)

func fullGuardianCode() string {
	return testutil.ChatCode(testutil.BuildPayload(1,
		[][]byte{
			testutil.TraitLineBytes(testutil.SpecZeal, 1, 2, 3),
			testutil.TraitLineBytes(testutil.SpecRadiance, 2, 0, 1),
			testutil.TraitLineBytes(testutil.SpecFirebrand, 3, 3, 2),
		},
		4857, 0, 4746, 0, 4789, 0, 4721, 0, 43357, 0,
	))
}

func TestDecoder_Decode(t *testing.T) {
	d := NewDecoder(testutil.ReferenceData(), time.Second)

	got, err := d.Decode(context.Background(), fullGuardianCode())
	require.NoError(t, err)

	assert.Equal(t, uint8(1), got.ProfessionCode)
	assert.Equal(t, "Guardian", got.Profession)
	require.NotNil(t, got.SpecializationID)
	assert.Equal(t, testutil.SpecFirebrand, *got.SpecializationID)

	want := []int{
		// Zeal: adept top(0), master middle(4), grandmaster bottom(8)
		4200, 4204, 4208,
		// Radiance: adept middle(1), grandmaster top(6)
		1601, 1606,
		// Firebrand: adept bottom(2), master bottom(5), grandmaster middle(7)
		6202, 6205, 6207,
	}
	assert.Equal(t, want, got.TraitIDs)
	assert.Equal(t, []int{9153, 9102, 9163, 9128, 40915}, got.SkillIDs)
	assert.Zero(t, got.UnresolvedTraits)
	assert.Zero(t, got.UnresolvedSkills)
}

func TestDecoder_Deterministic(t *testing.T) {
	d := NewDecoder(testutil.ReferenceData(), time.Second)
	code := fullGuardianCode()

	first, err := d.Decode(context.Background(), code)
	require.NoError(t, err)
	for range 5 {
		again, err := d.Decode(context.Background(), code)
		require.NoError(t, err)
		assert.Equal(t, first, again)
		assert.Equal(t, first.Fingerprint(), again.Fingerprint())
	}
}

func TestDecoder_FormatErrorIsFatal(t *testing.T) {
	src := &testutil.FlakySource{Next: testutil.ReferenceData()}
	d := NewDecoder(src, time.Second)

	_, err := d.Decode(context.Background(), "[&AQ==]")
	assert.ErrorIs(t, err, model.ErrFormat)
	assert.Zero(t, src.Calls(), "no lookups for malformed codes")
}

func TestDecoder_LookupFailuresDegrade(t *testing.T) {
	src := &testutil.FlakySource{
		Next:        testutil.ReferenceData(),
		FailSpecs:   map[int]bool{testutil.SpecRadiance: true},
		FailPalette: true,
	}
	d := NewDecoder(src, time.Second)

	got, err := d.Decode(context.Background(), fullGuardianCode())
	require.NoError(t, err)

	assert.Equal(t, []int{4200, 4204, 4208, 6202, 6205, 6207}, got.TraitIDs)
	assert.Equal(t, 2, got.UnresolvedTraits)
	assert.Empty(t, got.SkillIDs)
	assert.Equal(t, 5, got.UnresolvedSkills)
	assert.Equal(t, testutil.SpecFirebrand, *got.SpecializationID)
}

func TestDecoder_ConcurrentFetch(t *testing.T) {
	src := &testutil.FlakySource{Next: testutil.ReferenceData(), Delay: 50 * time.Millisecond}
	d := NewDecoder(src, time.Second)

	_, err := d.Decode(context.Background(), fullGuardianCode())
	require.NoError(t, err)

	assert.Equal(t, 4, src.Calls())
	assert.Greater(t, src.MaxInFlight(), 1)
}

func TestDecoder_TimeoutDegrades(t *testing.T) {
	src := &testutil.FlakySource{Next: testutil.ReferenceData(), Delay: time.Second}
	d := NewDecoder(src, 20*time.Millisecond)

	start := time.Now()
	got, err := d.Decode(context.Background(), fullGuardianCode())
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Empty(t, got.TraitIDs)
	assert.Empty(t, got.SkillIDs)
	// Primary spec still comes from the raw ids.
	assert.Equal(t, testutil.SpecZeal, *got.SpecializationID)
}

func TestDecoder_NilSource(t *testing.T) {
	d := NewDecoder(nil, 0)

	got, err := d.Decode(context.Background(), fullGuardianCode())
	require.NoError(t, err)
	assert.Empty(t, got.TraitIDs)
}

func TestResolve_PrimarySpecialization(t *testing.T) {
	refs := References{Specializations: map[int]refdata.Specialization{}}
	for _, s := range testutil.Fixtures.Specializations {
		refs.Specializations[s.ID] = s
	}

	tests := []struct {
		name  string
		specs [3]uint8
		want  *int
	}{
		{"none", [3]uint8{0, 0, 0}, nil},
		{"first non-zero core", [3]uint8{0, testutil.SpecRadiance, testutil.SpecZeal}, intPtr(testutil.SpecRadiance)},
		{"elite overrides", [3]uint8{testutil.SpecZeal, testutil.SpecFirebrand, testutil.SpecRadiance}, intPtr(testutil.SpecFirebrand)},
		{"later elite wins", [3]uint8{testutil.SpecFirebrand, testutil.SpecZeal, testutil.SpecWillbender}, intPtr(testutil.SpecWillbender)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tmpl Template
			tmpl.ProfessionCode = 1
			for i, id := range tt.specs {
				tmpl.Lines[i] = TraitLine{SpecializationID: id}
			}
			got := Resolve(tmpl, refs)
			assert.Equal(t, tt.want, got.SpecializationID)
		})
	}
}

func TestResolve_Dedup(t *testing.T) {
	refs := References{
		Specializations: map[int]refdata.Specialization{
			testutil.SpecZeal: testutil.Fixtures.Specializations[0],
		},
		Palette: map[int]int{1: 100, 2: 100, 3: 300},
	}
	tmpl := Template{
		ProfessionCode: 1,
		Lines: [3]TraitLine{
			{SpecializationID: testutil.SpecZeal, Choices: [3]uint8{1, 1, 1}},
			{SpecializationID: testutil.SpecZeal, Choices: [3]uint8{1, 2, 1}},
		},
		Palette: []uint16{1, 2, 3, 1, 99},
	}

	got := Resolve(tmpl, refs)

	assert.Equal(t, []int{4200, 4203, 4206, 4204}, got.TraitIDs)
	assert.Equal(t, []int{100, 300}, got.SkillIDs)
	assert.Equal(t, 1, got.UnresolvedSkills)
}

func TestResolve_ShortTraitList(t *testing.T) {
	spec := testutil.Fixtures.Specializations[0]
	spec.MajorTraits = spec.MajorTraits[:4]
	refs := References{Specializations: map[int]refdata.Specialization{testutil.SpecZeal: spec}}
	tmpl := Template{Lines: [3]TraitLine{{SpecializationID: testutil.SpecZeal, Choices: [3]uint8{1, 2, 3}}}}

	got := Resolve(tmpl, refs)

	assert.Equal(t, []int{4200}, got.TraitIDs)
	assert.Equal(t, 2, got.UnresolvedTraits)
}

func TestResolve_UnknownProfession(t *testing.T) {
	got := Resolve(Template{ProfessionCode: 42}, References{})
	assert.Equal(t, uint8(42), got.ProfessionCode)
	assert.Empty(t, got.Profession)
}

func TestFingerprint(t *testing.T) {
	a := DecodedBuild{ProfessionCode: 1, SpecializationID: intPtr(62), TraitIDs: []int{1, 2}, SkillIDs: []int{3}}
	b := DecodedBuild{ProfessionCode: 1, SpecializationID: intPtr(62), TraitIDs: []int{1, 2}, SkillIDs: []int{3}, UnresolvedSkills: 4}
	c := DecodedBuild{ProfessionCode: 1, SpecializationID: intPtr(62), TraitIDs: []int{1}, SkillIDs: []int{2, 3}}

	assert.Len(t, a.Fingerprint(), 64)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func intPtr(v int) *int { return &v }
