package refdata_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buildcraft/internal/refdata"
)

func TestMemory_Specialization(t *testing.T) {
	m := refdata.NewMemory()
	traits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	m.PutSpecialization(refdata.Specialization{ID: 62, Name: "Firebrand", Profession: "Guardian", Elite: true, MajorTraits: traits})

	traits[0] = 999 // caller mutation must not leak in

	got, err := m.Specialization(context.Background(), 62)
	require.NoError(t, err)
	assert.Equal(t, "Firebrand", got.Name)
	assert.True(t, got.Elite)
	assert.Equal(t, 1, got.MajorTraits[0])

	got.MajorTraits[1] = 999
	again, err := m.Specialization(context.Background(), 62)
	require.NoError(t, err)
	assert.Equal(t, 2, again.MajorTraits[1])

	_, err = m.Specialization(context.Background(), 7)
	assert.ErrorIs(t, err, refdata.ErrNotFound)
}

func TestMemory_PaletteCaseInsensitive(t *testing.T) {
	m := refdata.NewMemory()
	m.PutPalette("Guardian", map[int]int{4857: 9153})

	got, err := m.ProfessionPalette(context.Background(), "guardian")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{4857: 9153}, got)

	_, err = m.ProfessionPalette(context.Background(), "Warrior")
	assert.ErrorIs(t, err, refdata.ErrNotFound)

	specs, palettes := m.Len()
	assert.Equal(t, 0, specs)
	assert.Equal(t, 1, palettes)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	content := `
specializations:
  - id: 42
    name: Zeal
    profession: Guardian
    major_traits: [4200, 4201, 4202, 4203, 4204, 4205, 4206, 4207, 4208]
  - id: 62
    name: Firebrand
    profession: Guardian
    elite: true
    major_traits: [6200, 6201, 6202, 6203, 6204, 6205, 6206, 6207, 6208]
palettes:
  Guardian:
    4857: 9153
    254: 9084
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	m, err := refdata.LoadFile(path)
	require.NoError(t, err)

	fb, err := m.Specialization(context.Background(), 62)
	require.NoError(t, err)
	assert.True(t, fb.Elite)
	assert.Equal(t, 6207, fb.MajorTraits[7])

	palette, err := m.ProfessionPalette(context.Background(), "Guardian")
	require.NoError(t, err)
	assert.Equal(t, 9084, palette[254])
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := refdata.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("specializations: {not: [a list"), 0o600))
	_, err = refdata.LoadFile(path)
	assert.Error(t, err)
}

func TestMemory_Dump(t *testing.T) {
	m := refdata.NewMemory()
	m.PutSpecialization(refdata.Specialization{ID: 62, Name: "Firebrand"})
	m.PutSpecialization(refdata.Specialization{ID: 16, Name: "Radiance"})
	m.PutPalette("Guardian", map[int]int{1: 2})

	specs := m.Specializations()
	require.Len(t, specs, 2)
	assert.Equal(t, 16, specs[0].ID)
	assert.Equal(t, 62, specs[1].ID)

	palettes := m.Palettes()
	assert.Equal(t, map[string]map[int]int{"guardian": {1: 2}}, palettes)

	palettes["guardian"][1] = 99
	again, err := m.ProfessionPalette(context.Background(), "guardian")
	require.NoError(t, err)
	assert.Equal(t, 2, again[1])
}
