package combat

import (
	"fmt"
	"math"

	"github.com/udisondev/buildcraft/internal/constants"
	"github.com/udisondev/buildcraft/internal/model"
)

// DamageInput holds the inputs of a single strike estimate.
type DamageInput struct {
	Power                float64
	WeaponStrength       float64
	SkillCoefficient     float64
	CritChance           float64 // [0, 1]
	CritDamageMultiplier float64
	DamageMultiplier     float64
}

// NewDamageInput creates an input with DamageMultiplier = 1.
func NewDamageInput(power, weaponStrength, coefficient, critChance, critDamage float64) DamageInput {
	return DamageInput{
		Power:                power,
		WeaponStrength:       weaponStrength,
		SkillCoefficient:     coefficient,
		CritChance:           critChance,
		CritDamageMultiplier: critDamage,
		DamageMultiplier:     1,
	}
}

// Validate checks magnitudes are finite and non-negative and crit chance is a probability.
func (in DamageInput) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"power", in.Power},
		{"weapon strength", in.WeaponStrength},
		{"skill coefficient", in.SkillCoefficient},
		{"crit chance", in.CritChance},
		{"crit damage multiplier", in.CritDamageMultiplier},
		{"damage multiplier", in.DamageMultiplier},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v is not finite: %w", f.name, f.v, model.ErrInvalidValue)
		}
	}

	switch {
	case in.Power < 0:
		return fmt.Errorf("power %v < 0: %w", in.Power, model.ErrInvalidValue)
	case in.WeaponStrength < 0:
		return fmt.Errorf("weapon strength %v < 0: %w", in.WeaponStrength, model.ErrInvalidValue)
	case in.SkillCoefficient < 0:
		return fmt.Errorf("skill coefficient %v < 0: %w", in.SkillCoefficient, model.ErrInvalidValue)
	case in.CritChance < 0 || in.CritChance > 1:
		return fmt.Errorf("crit chance %v outside [0, 1]: %w", in.CritChance, model.ErrInvalidValue)
	case in.CritDamageMultiplier < 0:
		return fmt.Errorf("crit damage multiplier %v < 0: %w", in.CritDamageMultiplier, model.ErrInvalidValue)
	case in.DamageMultiplier < 0:
		return fmt.Errorf("damage multiplier %v < 0: %w", in.DamageMultiplier, model.ErrInvalidValue)
	}
	return nil
}

// multiplier returns DamageMultiplier, with zero counting as 1.
func (in DamageInput) multiplier() float64 {
	if in.DamageMultiplier == 0 {
		return 1
	}
	return in.DamageMultiplier
}

// DamageBreakdown is the expected damage of one hit.
type DamageBreakdown struct {
	BaseDamage    float64
	CritDamage    float64
	AverageDamage float64
}

// EstimateDamage computes expected strike damage:
//
//	base    = power × weaponStrength × coefficient / 1000 × damageMultiplier
//	crit    = base × critDamageMultiplier
//	average = base × (1 − critChance) + crit × critChance
//
// A zero damageMultiplier counts as 1. Static estimate, armor of the target is not modeled.
func EstimateDamage(in DamageInput) (DamageBreakdown, error) {
	if err := in.Validate(); err != nil {
		return DamageBreakdown{}, err
	}

	mul := in.multiplier()

	base := in.Power * in.WeaponStrength * in.SkillCoefficient / constants.DamageDivisor * mul
	crit := base * in.CritDamageMultiplier
	avg := base*(1-in.CritChance) + crit*in.CritChance

	return DamageBreakdown{
		BaseDamage:    base,
		CritDamage:    crit,
		AverageDamage: avg,
	}, nil
}

// EstimateWithContext folds the target vulnerability from ctx into the damage multiplier.
// Returns the breakdown and its average as a single ranking scalar.
func EstimateWithContext(in DamageInput, ctx model.CombatContext) (DamageBreakdown, float64, error) {
	in.DamageMultiplier = in.multiplier() * ctx.VulnerabilityMultiplier()
	b, err := EstimateDamage(in)
	if err != nil {
		return DamageBreakdown{}, 0, err
	}
	return b, b.AverageDamage, nil
}

// RotationSkill is one entry of a static skill rotation.
type RotationSkill struct {
	Name           string  `yaml:"name" json:"name"`
	Coefficient    float64 `yaml:"coefficient" json:"coefficient"`
	WeaponStrength float64 `yaml:"weapon_strength" json:"weapon_strength"` // 0 → DefaultWeaponStrength
	Casts          float64 `yaml:"casts" json:"casts"`                     // 0 → 1
}

// DefaultRotation is used when a caller supplies no rotation:
// one generic hit with coefficient 1 at the default weapon strength.
var DefaultRotation = []RotationSkill{{Name: "generic", Coefficient: 1, WeaponStrength: constants.DefaultWeaponStrength, Casts: 1}}

// RotationEstimate is the coefficient-weighted damage of a rotation.
type RotationEstimate struct {
	Total    float64
	PerSkill []DamageBreakdown
}

// EstimateRotation sums casts × average damage over the rotation using resolved attributes,
// plus proc damage scaled by the damage multiplier.
func EstimateRotation(attrs model.DerivedAttributes, rotation []RotationSkill) (RotationEstimate, error) {
	if len(rotation) == 0 {
		rotation = DefaultRotation
	}

	est := RotationEstimate{PerSkill: make([]DamageBreakdown, 0, len(rotation))}
	for _, s := range rotation {
		ws := s.WeaponStrength
		if ws == 0 {
			ws = constants.DefaultWeaponStrength
		}
		casts := s.Casts
		if casts == 0 {
			casts = 1
		}
		if casts < 0 {
			return RotationEstimate{}, fmt.Errorf("skill %q: casts %v < 0: %w", s.Name, casts, model.ErrInvalidValue)
		}

		b, err := EstimateDamage(DamageInput{
			Power:                attrs.EffectivePower,
			WeaponStrength:       ws,
			SkillCoefficient:     s.Coefficient,
			CritChance:           attrs.CritChance,
			CritDamageMultiplier: attrs.CritDamageMultiplier,
			DamageMultiplier:     attrs.DamageMultiplier,
		})
		if err != nil {
			return RotationEstimate{}, fmt.Errorf("skill %q: %w", s.Name, err)
		}
		est.PerSkill = append(est.PerSkill, b)
		est.Total += b.AverageDamage * casts
	}

	est.Total += attrs.ProcDamage * attrs.DamageMultiplier
	return est, nil
}
