package combat

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buildcraft/internal/model"
)

func TestEstimateDamage_Scenario(t *testing.T) {
	got, err := EstimateDamage(NewDamageInput(2000, 1000, 0.8, 0, 1.5))
	require.NoError(t, err)

	assert.InDelta(t, 1600.0, got.BaseDamage, 1e-9)
	assert.InDelta(t, 2400.0, got.CritDamage, 1e-9)
	assert.InDelta(t, 1600.0, got.AverageDamage, 1e-9)
}

func TestEstimateDamage_AverageBounds(t *testing.T) {
	for _, cc := range []float64{0, 0.1, 0.33, 0.5, 0.9, 1} {
		got, err := EstimateDamage(NewDamageInput(2500, 1100, 1.2, cc, 2.1))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, got.AverageDamage, got.BaseDamage-1e-9, "cc=%v", cc)
		assert.LessOrEqual(t, got.AverageDamage, got.CritDamage+1e-9, "cc=%v", cc)
	}

	full, err := EstimateDamage(NewDamageInput(2500, 1100, 1.2, 1, 2.1))
	require.NoError(t, err)
	assert.InDelta(t, full.CritDamage, full.AverageDamage, 1e-9)
}

func TestEstimateDamage_Multiplier(t *testing.T) {
	in := NewDamageInput(2000, 1000, 1, 0, 1.5)
	in.DamageMultiplier = 1.25

	got, err := EstimateDamage(in)
	require.NoError(t, err)
	assert.InDelta(t, 2500.0, got.BaseDamage, 1e-9)

	// Zero-value input: multiplier unset counts as 1.
	got, err = EstimateDamage(DamageInput{Power: 2000, WeaponStrength: 1000, SkillCoefficient: 1, CritDamageMultiplier: 1.5})
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, got.BaseDamage, 1e-9)
}

func TestEstimateDamage_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   DamageInput
	}{
		{"negative power", NewDamageInput(-1, 1000, 1, 0, 1.5)},
		{"negative weapon strength", NewDamageInput(1000, -1, 1, 0, 1.5)},
		{"negative coefficient", NewDamageInput(1000, 1000, -0.1, 0, 1.5)},
		{"crit chance above 1", NewDamageInput(1000, 1000, 1, 1.01, 1.5)},
		{"crit chance below 0", NewDamageInput(1000, 1000, 1, -0.01, 1.5)},
		{"negative crit multiplier", NewDamageInput(1000, 1000, 1, 0, -1)},
		{"NaN crit chance", NewDamageInput(2000, 1000, 0.8, math.NaN(), 1.5)},
		{"infinite power", NewDamageInput(math.Inf(1), 1000, 0.8, 0, 1.5)},
		{"NaN power", NewDamageInput(math.NaN(), 1000, 0.8, 0, 1.5)},
		{"infinite weapon strength", NewDamageInput(2000, math.Inf(1), 0.8, 0, 1.5)},
		{"NaN coefficient", NewDamageInput(2000, 1000, math.NaN(), 0, 1.5)},
		{"infinite crit multiplier", NewDamageInput(2000, 1000, 0.8, 0, math.Inf(1))},
		{"negative infinite damage multiplier", DamageInput{Power: 2000, WeaponStrength: 1000, SkillCoefficient: 0.8, DamageMultiplier: math.Inf(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EstimateDamage(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidValue))
		})
	}
}

func TestEstimateWithContext(t *testing.T) {
	ctx := model.NewCombatContext(0, false, map[string]int{"vulnerability": 25})

	got, scalar, err := EstimateWithContext(NewDamageInput(2000, 1000, 0.8, 0, 1.5), ctx)
	require.NoError(t, err)

	assert.InDelta(t, 2000.0, got.BaseDamage, 1e-9)
	assert.Equal(t, got.AverageDamage, scalar)

	// Literal input with the multiplier unset still picks up vulnerability.
	lit, _, err := EstimateWithContext(DamageInput{Power: 2000, WeaponStrength: 1000, SkillCoefficient: 0.8, CritDamageMultiplier: 1.5}, ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, lit.BaseDamage, 1e-9)

	_, _, err = EstimateWithContext(NewDamageInput(2000, 1000, 0.8, math.NaN(), 1.5), ctx)
	assert.ErrorIs(t, err, model.ErrInvalidValue)
}

func TestEstimateRotation(t *testing.T) {
	attrs := ResolveAttributes(powerOnly(2000), []model.Modifier{model.ProcDamage("sigil", 100)}, model.CombatContext{})
	attrs.CritChance = 0

	rotation := []RotationSkill{
		{Name: "a", Coefficient: 0.8, WeaponStrength: 1000, Casts: 2},
		{Name: "b", Coefficient: 0.5},
	}

	got, err := EstimateRotation(attrs, rotation)
	require.NoError(t, err)

	// 2×1600 + 1000 + proc 100
	assert.InDelta(t, 4300.0, got.Total, 1e-9)
	assert.Len(t, got.PerSkill, 2)
}

func TestEstimateRotation_DefaultAndErrors(t *testing.T) {
	attrs := ResolveAttributes(powerOnly(1000), nil, model.CombatContext{})
	attrs.CritChance = 0

	got, err := EstimateRotation(attrs, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, got.Total, 1e-9)

	_, err = EstimateRotation(attrs, []RotationSkill{{Name: "bad", Coefficient: -1}})
	assert.ErrorIs(t, err, model.ErrInvalidValue)

	_, err = EstimateRotation(attrs, []RotationSkill{{Name: "bad", Coefficient: 1, Casts: -2}})
	assert.ErrorIs(t, err, model.ErrInvalidValue)
}
