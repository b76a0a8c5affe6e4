package data

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buildcraft/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	np, nr, ns, nrel := c.Stats()
	assert.Equal(t, len(prefixDefs), np)
	assert.Positive(t, nr)
	assert.Positive(t, ns)
	assert.Positive(t, nrel)

	zerk, ok := c.Prefix("berserker")
	require.True(t, ok)
	assert.Equal(t, int32(141), zerk.Bundle.Get(model.AttrPower))
	assert.Equal(t, int32(101), zerk.Bundle.Get(model.AttrPrecision))
	assert.Equal(t, int32(101), zerk.Bundle.Get(model.AttrFerocity))

	viper, ok := c.Prefix("Viper")
	require.True(t, ok)
	assert.Equal(t, int32(121), viper.Bundle.Get(model.AttrConditionDamage))
	assert.Equal(t, int32(67), viper.Bundle.Get(model.AttrExpertise))

	_, ok = c.Prefix("Nonexistent")
	assert.False(t, ok)
}

func TestSlotBundle(t *testing.T) {
	c := DefaultCatalog()
	zerk, _ := c.Prefix("Berserker")

	helm := SlotBundle(zerk, ArmorSlots[0])
	assert.Equal(t, int32(63), helm.Get(model.AttrPower))
	assert.Equal(t, int32(45), helm.Get(model.AttrPrecision))

	legs := SlotBundle(zerk, ArmorSlots[4])
	assert.Equal(t, int32(94), legs.Get(model.AttrPower))
	assert.Equal(t, int32(67), legs.Get(model.AttrFerocity))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		mods []model.Modifier
		want RoleFlags
	}{
		{"power", []model.Modifier{model.FlatStat("x", model.AttrPower, 1)}, FlagDPS},
		{"crit chance", []model.Modifier{model.CritChance("x", 7)}, FlagDPS},
		{"strike", []model.Modifier{model.StrikeDamage("x", 5)}, FlagDPS},
		{"proc", []model.Modifier{model.ProcDamage("x", 5)}, FlagDPS},
		{"healing power", []model.Modifier{model.FlatStat("x", model.AttrHealingPower, 1)}, FlagHeal},
		{"outgoing healing", []model.Modifier{model.OutgoingHealing("x", 10)}, FlagHeal},
		{"concentration", []model.Modifier{model.PercentStat("x", model.AttrConcentration, 5)}, FlagBoon},
		{"boon duration", []model.Modifier{model.BoonDuration("x", 10)}, FlagBoon},
		{"vitality", []model.Modifier{model.FlatStat("x", model.AttrVitality, 1)}, FlagTank},
		{"expertise only", []model.Modifier{model.FlatStat("x", model.AttrExpertise, 1)}, 0},
		{"unknown target", []model.Modifier{{Kind: model.ModFlatStat, Target: "magic_find", Magnitude: 1}}, 0},
		{"mixed", []model.Modifier{model.FlatStat("x", model.AttrPower, 1), model.BoonDuration("x", 10)}, FlagDPS | FlagBoon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.mods))
		})
	}
}

func TestCatalog_FlagsCachedAtBuild(t *testing.T) {
	c := DefaultCatalog()

	scholar, ok := c.Upgrade("superior rune of the scholar")
	require.True(t, ok)
	assert.True(t, scholar.Flags.PureDPS())
	assert.Equal(t, UpgradeRune, scholar.Kind)

	monk, ok := c.Upgrade("Superior Rune of the Monk")
	require.True(t, ok)
	assert.True(t, monk.Flags.HasHeal())
	assert.True(t, monk.Flags.HasBoon())
	assert.False(t, monk.Flags.HasDPS())

	for _, s := range c.Sigils() {
		assert.Equal(t, Classify(s.Modifiers), s.Flags, s.Name)
	}
}

func TestNewCatalog_Errors(t *testing.T) {
	_, err := NewCatalog(nil, nil)
	assert.True(t, errors.Is(err, model.ErrConfiguration))

	p := []StatPrefix{{Name: "A"}, {Name: "a"}}
	_, err = NewCatalog(p, nil)
	assert.ErrorIs(t, err, model.ErrConfiguration)

	bad := []Upgrade{{Name: "Broken", Kind: UpgradeRune, Modifiers: []model.Modifier{{Kind: model.ModFlatStat, Magnitude: 1}}}}
	_, err = NewCatalog([]StatPrefix{{Name: "A"}}, bad)
	assert.ErrorIs(t, err, model.ErrConfiguration)
}

type stubItemStats struct {
	stats map[string]model.StatBundle
	err   error
}

func (s stubItemStats) ItemStats(context.Context) (map[string]model.StatBundle, error) {
	return s.stats, s.err
}

func TestLoadCatalog_Refinement(t *testing.T) {
	refined := model.StatBundle{}.With(model.AttrPower, 150)
	src := stubItemStats{stats: map[string]model.StatBundle{
		"Berserker": refined,
		"Zealot":    model.StatBundle{}.With(model.AttrHealingPower, 101),
	}}

	c, err := LoadCatalog(context.Background(), LoadOptions{ItemStats: src})
	require.NoError(t, err)

	zerk, _ := c.Prefix("Berserker")
	assert.Equal(t, refined, zerk.Bundle)

	_, ok := c.Prefix("Zealot")
	assert.True(t, ok)
}

func TestLoadCatalog_RefinementUnavailable(t *testing.T) {
	c, err := LoadCatalog(context.Background(), LoadOptions{ItemStats: stubItemStats{err: errors.New("db down")}})
	require.NoError(t, err)

	zerk, _ := c.Prefix("Berserker")
	assert.Equal(t, int32(141), zerk.Bundle.Get(model.AttrPower))
}

func TestLoadCatalog_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
prefixes:
  - name: Plaguedoctor
    stats: {vitality: 121, condition_damage: 121, healing_power: 67, concentration: 67}
upgrades:
  - name: Superior Sigil of Force
    kind: sigil
    modifiers:
      - {kind: StrikeDamageMultiplier, magnitude: 6}
  - name: Superior Rune of the Firebrand
    kind: rune
    modifiers:
      - {kind: FlatStat, target: concentration, magnitude: 175}
      - {kind: FlatStat, target: condition_damage, magnitude: 100}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := LoadCatalog(context.Background(), LoadOptions{OverrideFile: path})
	require.NoError(t, err)

	_, ok := c.Prefix("Plaguedoctor")
	assert.True(t, ok)

	force, ok := c.Upgrade("Superior Sigil of Force")
	require.True(t, ok)
	require.Len(t, force.Modifiers, 1)
	assert.Equal(t, 6.0, force.Modifiers[0].Magnitude)

	fb, ok := c.Upgrade("Superior Rune of the Firebrand")
	require.True(t, ok)
	assert.True(t, fb.Flags.HasBoon())
	assert.True(t, fb.Flags.HasDPS())
}

func TestLoadCatalog_BadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("upgrades:\n  - {name: X, kind: amulet}\n"), 0o600))

	_, err := LoadCatalog(context.Background(), LoadOptions{OverrideFile: path})
	assert.ErrorIs(t, err, model.ErrConfiguration)
}
