package gear

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buildcraft/internal/data"
	"github.com/udisondev/buildcraft/internal/game/combat"
	"github.com/udisondev/buildcraft/internal/model"
)

func berserkerBase() model.StatBundle {
	return model.BaselineStats(1000).
		With(model.AttrPower, 2400).
		With(model.AttrPrecision, 1900).
		With(model.AttrFerocity, 1100)
}

var testRotation = []combat.RotationSkill{
	{Name: "Sword of Justice", Coefficient: 1.2, Casts: 4},
	{Name: "Whirling Wrath", Coefficient: 2.6, WeaponStrength: 1100, Casts: 2},
	{Name: "Mantra of Solace", Coefficient: 0, Casts: 1},
}

func findUpgrade(t *testing.T, cat *data.Catalog, name string) data.Upgrade {
	t.Helper()
	u, ok := cat.Upgrade(name)
	require.True(t, ok, name)
	return u
}

func TestOptimizeBuild_DPSRuneHasDPS(t *testing.T) {
	cat := data.DefaultCatalog()
	s := NewUpgradeSearch(cat, nil)

	best, err := s.OptimizeBuild(berserkerBase(), testRotation, RoleDPS)
	require.NoError(t, err)

	assert.True(t, findUpgrade(t, cat, best.Rune).Flags.HasDPS(), best.Rune)
	assert.Len(t, best.Sigils, 2)
	assert.NotEqual(t, best.Sigils[0], best.Sigils[1])
	assert.Greater(t, best.Score, 1.0)
	assert.Greater(t, best.Breakdown.Offense, 1.0)
}

func TestOptimizeBuild_TopKConsistency(t *testing.T) {
	s := NewUpgradeSearch(data.DefaultCatalog(), nil, WithWorkers(4))

	for _, role := range Roles() {
		t.Run(string(role), func(t *testing.T) {
			best, err := s.OptimizeBuild(berserkerBase(), testRotation, role)
			require.NoError(t, err)

			for _, k := range []int{1, 3, 10, 10000} {
				top, err := s.OptimizeBuildTopK(berserkerBase(), testRotation, role, k)
				require.NoError(t, err)
				require.NotEmpty(t, top)
				assert.LessOrEqual(t, len(top), k)

				assert.Equal(t, best.Score, top[0].Score)
				if diff := cmp.Diff(best, top[0]); diff != "" {
					t.Errorf("k=%d best mismatch (-want +got):\n%s", k, diff)
				}
				for i := 1; i < len(top); i++ {
					assert.GreaterOrEqual(t, top[i-1].Score, top[i].Score, "k=%d index %d", k, i)
				}
			}
		})
	}
}

func TestOptimizeBuild_HealExcludesPureDPS(t *testing.T) {
	cat := data.DefaultCatalog()
	s := NewUpgradeSearch(cat, nil)

	top, err := s.OptimizeBuildTopK(berserkerBase(), testRotation, RoleHeal, 10000)
	require.NoError(t, err)

	for _, c := range top {
		names := append([]string{c.Rune}, c.Sigils...)
		if c.Relic != "" {
			names = append(names, c.Relic)
		}
		for _, n := range names {
			assert.False(t, findUpgrade(t, cat, n).Flags.PureDPS(), "%s is offense-only", n)
		}
	}
}

func TestOptimizeBuild_HealPrefersSupportSigilsOverOffense(t *testing.T) {
	cat, err := data.NewCatalog(data.DefaultCatalog().Prefixes(), []data.Upgrade{
		{Name: "Rune of the Monk", Kind: data.UpgradeRune, Modifiers: []model.Modifier{model.OutgoingHealing("x", 10)}},
		{Name: "Sigil of Force", Kind: data.UpgradeSigil, Modifiers: []model.Modifier{model.StrikeDamage("x", 5)}},
		{Name: "Sigil of Air", Kind: data.UpgradeSigil, Modifiers: []model.Modifier{model.ProcDamage("x", 300)}},
		{Name: "Sigil of Concentration", Kind: data.UpgradeSigil, Modifiers: []model.Modifier{model.BoonDuration("x", 10)}},
		{Name: "Sigil of Absorption", Kind: data.UpgradeSigil, Modifiers: []model.Modifier{model.FlatStat("x", model.AttrToughness, 100)}},
	})
	require.NoError(t, err)

	s := NewUpgradeSearch(cat, nil)
	best, err := s.OptimizeBuild(berserkerBase(), testRotation, RoleHeal)
	require.NoError(t, err)
	assert.Equal(t, "Rune of the Monk", best.Rune)
	assert.ElementsMatch(t, []string{"Sigil of Concentration", "Sigil of Absorption"}, best.Sigils)

	top, err := s.OptimizeBuildTopK(berserkerBase(), testRotation, RoleHeal, 100)
	require.NoError(t, err)
	for _, c := range top {
		for _, n := range c.Sigils {
			assert.False(t, findUpgrade(t, cat, n).Flags.PureDPS(), "%s is offense-only", n)
		}
	}
}

func TestOptimizeBuild_FallbackToFullSet(t *testing.T) {
	prefixes := data.DefaultCatalog().Prefixes()
	cat, err := data.NewCatalog(prefixes, []data.Upgrade{
		{Name: "Rune of Might", Kind: data.UpgradeRune, Modifiers: []model.Modifier{model.FlatStat("x", model.AttrPower, 100)}},
		{Name: "Rune of Edge", Kind: data.UpgradeRune, Modifiers: []model.Modifier{model.FlatStat("x", model.AttrFerocity, 100)}},
	})
	require.NoError(t, err)

	top, err := NewUpgradeSearch(cat, nil).OptimizeBuildTopK(berserkerBase(), nil, RoleHeal, 5)
	require.NoError(t, err)
	assert.Len(t, top, 2, "no heal runes: every rune is searched")
	assert.Empty(t, top[0].Sigils)
	assert.Empty(t, top[0].Relic)
}

func TestOptimizeBuild_StableTies(t *testing.T) {
	mods := []model.Modifier{model.StrikeDamage("x", 5)}
	cat, err := data.NewCatalog(data.DefaultCatalog().Prefixes(), []data.Upgrade{
		{Name: "Rune A", Kind: data.UpgradeRune, Modifiers: mods},
		{Name: "Rune B", Kind: data.UpgradeRune, Modifiers: mods},
		{Name: "Rune C", Kind: data.UpgradeRune, Modifiers: mods},
		{Name: "Sigil S", Kind: data.UpgradeSigil, Modifiers: mods},
	})
	require.NoError(t, err)

	for _, workers := range []int{1, 3} {
		top, err := NewUpgradeSearch(cat, nil, WithWorkers(workers)).
			OptimizeBuildTopK(berserkerBase(), nil, RoleDPS, 3)
		require.NoError(t, err)
		require.Len(t, top, 3)
		assert.Equal(t, []string{"Rune A", "Rune B", "Rune C"}, []string{top[0].Rune, top[1].Rune, top[2].Rune})
		assert.Equal(t, []string{"Sigil S"}, top[0].Sigils)
	}
}

func TestOptimizeBuild_ParallelMatchesSequential(t *testing.T) {
	cat := data.DefaultCatalog()
	seq, err := NewUpgradeSearch(cat, nil, WithWorkers(1)).
		OptimizeBuildTopK(berserkerBase(), testRotation, RoleSupport, 10000)
	require.NoError(t, err)
	par, err := NewUpgradeSearch(cat, nil, WithWorkers(16)).
		OptimizeBuildTopK(berserkerBase(), testRotation, RoleSupport, 10000)
	require.NoError(t, err)

	if diff := cmp.Diff(seq, par); diff != "" {
		t.Errorf("parallel result differs (-seq +par):\n%s", diff)
	}
}

func TestOptimizeBuild_CombatContext(t *testing.T) {
	cat := data.DefaultCatalog()
	plain, err := NewUpgradeSearch(cat, nil).OptimizeBuild(berserkerBase(), testRotation, RoleDPS)
	require.NoError(t, err)

	ctx := model.NewCombatContext(25, true, map[string]int{model.ConditionVulnerability: 25})
	buffed, err := NewUpgradeSearch(cat, nil, WithCombatContext(ctx)).OptimizeBuild(berserkerBase(), testRotation, RoleDPS)
	require.NoError(t, err)

	assert.Greater(t, buffed.Derived.EffectivePower, plain.Derived.EffectivePower)
	assert.Greater(t, buffed.Derived.DamageMultiplier, plain.Derived.DamageMultiplier)
}

func TestOptimizeBuild_Errors(t *testing.T) {
	s := NewUpgradeSearch(data.DefaultCatalog(), nil)

	_, err := s.OptimizeBuild(berserkerBase(), nil, "dancer")
	assert.ErrorIs(t, err, model.ErrInvalidValue)

	_, err = s.OptimizeBuildTopK(berserkerBase(), nil, RoleDPS, 0)
	assert.ErrorIs(t, err, model.ErrInvalidValue)

	_, err = s.OptimizeBuild(berserkerBase(), []combat.RotationSkill{{Name: "bad", Coefficient: 1, Casts: -1}}, RoleDPS)
	assert.ErrorIs(t, err, model.ErrInvalidValue)

	empty, err := data.NewCatalog(data.DefaultCatalog().Prefixes(), nil)
	require.NoError(t, err)
	_, err = NewUpgradeSearch(empty, nil).OptimizeBuild(berserkerBase(), nil, RoleDPS)
	assert.ErrorIs(t, err, model.ErrConfiguration)
}

func TestUpgradeSearch_Recommend(t *testing.T) {
	var s EquipmentStrategy = NewUpgradeSearch(data.DefaultCatalog(), nil)

	got, err := s.Recommend(Request{Role: RoleBoon, Base: berserkerBase(), Rotation: testRotation, K: 3})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	one, err := s.Recommend(Request{Role: RoleBoon, Base: berserkerBase(), Rotation: testRotation})
	require.NoError(t, err)
	assert.Len(t, one, 1)
	assert.Equal(t, got[0].Score, one[0].Score)
}

func TestSigilPairs(t *testing.T) {
	cat := data.DefaultCatalog()
	sigils := cat.Sigils()

	assert.Equal(t, [][]data.Upgrade{nil}, sigilPairs(nil))
	assert.Len(t, sigilPairs(sigils[:1]), 1)
	assert.Len(t, sigilPairs(sigils[:4]), 6)

	for _, p := range sigilPairs(sigils) {
		require.Len(t, p, 2)
		assert.NotEqual(t, p[0].Name, p[1].Name)
	}
}

func TestFilterByRole(t *testing.T) {
	runes := data.DefaultCatalog().Runes()

	heal := FilterByRole(runes, data.FlagHeal)
	require.NotEmpty(t, heal)
	for _, r := range heal {
		assert.True(t, r.Flags.HasHeal(), r.Name)
	}

	assert.Len(t, FilterByRole(runes, 0), len(runes))

	mixed := []data.Upgrade{
		{Name: "offense", Flags: data.FlagDPS},
		{Name: "bruiser", Flags: data.FlagDPS | data.FlagTank},
		{Name: "plain"},
	}
	names := func(us []data.Upgrade) []string {
		out := make([]string, 0, len(us))
		for _, u := range us {
			out = append(out, u.Name)
		}
		return out
	}
	assert.Equal(t, []string{"bruiser", "plain"}, names(FilterByRole(mixed, data.FlagHeal)))
	assert.Equal(t, []string{"offense", "bruiser"}, names(FilterByRole(mixed, data.FlagDPS)))
	assert.Equal(t, []string{"offense"}, names(FilterByRole(mixed[:1], data.FlagHeal)))
}

func BenchmarkOptimizeBuildTopK(b *testing.B) {
	s := NewUpgradeSearch(data.DefaultCatalog(), nil)
	base := berserkerBase()

	for b.Loop() {
		if _, err := s.OptimizeBuildTopK(base, testRotation, RoleDPS, 10); err != nil {
			b.Fatal(err)
		}
	}
}
