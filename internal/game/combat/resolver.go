package combat

import (
	"math"

	"github.com/udisondev/buildcraft/internal/constants"
	"github.com/udisondev/buildcraft/internal/model"
)

// ResolveAttributes folds base attributes, modifiers and combat context into derived attributes.
//
// Composition order:
//  1. might stacks add power and condition damage to base
//  2. FlatStat modifiers summed per attribute and added
//  3. PercentStat modifiers summed per attribute and applied to the step-2 total
//  4. crit chance from precision + fury + explicit modifiers, clamped [0, 1]
//  5. crit damage from ferocity + explicit modifiers, floored at 1
//  6. damage multiplier: product of (1 + fraction) of every damage multiplier × vulnerability
//  7. max health / toughness from vitality / toughness
//
// Pure: neither base nor mods are modified. Modifiers with an unknown target are skipped.
func ResolveAttributes(base model.StatBundle, mods []model.Modifier, ctx model.CombatContext) model.DerivedAttributes {
	var totals [model.AttributeCount]float64
	for i, v := range base {
		totals[i] = float64(v)
	}

	// 1. Might
	might := float64(ctx.Might())
	totals[model.AttrPower] += might * constants.MightPowerPerStack
	totals[model.AttrConditionDamage] += might * constants.MightConditionDamagePerStack

	var (
		flat, percent      [model.AttributeCount]float64
		critChanceMod      float64
		critDamageMod      float64
		damageMul          = 1.0
		boonDuration       float64
		outgoing, incoming float64
		procDamage         float64
	)

	for _, m := range mods {
		switch m.Kind {
		case model.ModFlatStat:
			switch m.Target {
			case model.TargetCritChance:
				critChanceMod += m.Magnitude
				continue
			case model.TargetCritDamage:
				critDamageMod += m.Magnitude
				continue
			}
			if attr, ok := m.TargetAttribute(); ok {
				flat[attr] += m.Magnitude
			}
		case model.ModPercentStat:
			if attr, ok := m.TargetAttribute(); ok {
				percent[attr] += m.Magnitude
			}
		case model.ModDamageMultiplier, model.ModStrikeDamageMultiplier, model.ModConditionDamageMultiplier:
			damageMul *= 1 + m.Fraction()
		case model.ModProcDamage:
			procDamage += m.Magnitude
		case model.ModBoonDuration:
			boonDuration += m.Fraction()
		case model.ModOutgoingHealing:
			outgoing += m.Fraction()
		case model.ModIncomingHealing:
			incoming += m.Fraction()
		}
	}

	// 2-3. Flat, then percent on the flat-adjusted total.
	for i := range totals {
		totals[i] += flat[i]
		totals[i] *= 1 + percent[i]/100
	}

	precision := totals[model.AttrPrecision]
	ferocity := totals[model.AttrFerocity]

	// 4. Crit chance
	critChance := constants.BaseCritChance +
		(precision-constants.PrecisionBaseline)/constants.PrecisionPerCritPercent/100 +
		critChanceMod/100
	if ctx.Fury {
		critChance += constants.FuryCritChance
	}
	critChance = clamp(critChance, 0, 1)

	// 5. Crit damage
	critDamage := constants.BaseCritDamage +
		ferocity/constants.FerocityPerCritDamagePercent/100 +
		critDamageMod/100
	if critDamage < 1 {
		critDamage = 1
	}

	// 6. Damage multiplier
	damageMul *= ctx.VulnerabilityMultiplier()

	// 7. Health
	maxHealth := constants.BaseHealthLow + totals[model.AttrVitality]*constants.HealthPerVitality

	concentration := totals[model.AttrConcentration]
	boonDuration += concentration / constants.ConcentrationPerBoonDurationPercent / 100

	var rounded model.StatBundle
	for i, v := range totals {
		rounded[i] = int32(math.Round(v))
	}

	return model.DerivedAttributes{
		EffectivePower:       totals[model.AttrPower],
		ConditionDamage:      totals[model.AttrConditionDamage],
		CritChance:           critChance,
		CritDamageMultiplier: critDamage,
		MaxHealth:            maxHealth,
		Toughness:            totals[model.AttrToughness],
		DamageMultiplier:     damageMul,
		HealingPower:         totals[model.AttrHealingPower],
		Concentration:        concentration,
		Expertise:            totals[model.AttrExpertise],
		BoonDuration:         boonDuration,
		OutgoingHealing:      outgoing,
		IncomingHealing:      incoming,
		ProcDamage:           procDamage,
		Totals:               rounded,
	}
}

// ResolveWithHealth is ResolveAttributes with max health computed for a specific profession tier.
func ResolveWithHealth(base model.StatBundle, mods []model.Modifier, ctx model.CombatContext, tier model.HealthTier) model.DerivedAttributes {
	d := ResolveAttributes(base, mods, ctx)
	d.MaxHealth += float64(tier.BaseHealth() - constants.BaseHealthLow)
	return d
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
