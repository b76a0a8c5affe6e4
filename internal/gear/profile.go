package gear

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/udisondev/buildcraft/internal/constants"
	"github.com/udisondev/buildcraft/internal/model"
)

// StatMaxHealth is the floor stat name for a maximum health requirement.
const StatMaxHealth = "max_health"

// AttributeWeights is the value of one point of each attribute in the armor objective.
type AttributeWeights [model.AttributeCount]float64

func weights(m map[model.Attribute]float64) AttributeWeights {
	var w AttributeWeights
	for a, v := range m {
		w[a] = v
	}
	return w
}

func (w AttributeWeights) max() float64 {
	var out float64
	for _, v := range w {
		out = max(out, v)
	}
	return out
}

// Objective is the weighted sum of b.
func (w AttributeWeights) Objective(b model.StatBundle) float64 {
	var s float64
	for i, v := range b {
		s += w[i] * float64(v)
	}
	return s
}

// Map returns the non-zero weights keyed by attribute name.
func (w AttributeWeights) Map() map[string]float64 {
	out := make(map[string]float64)
	for i, v := range w {
		if v != 0 {
			out[model.Attribute(i).String()] = v
		}
	}
	return out
}

// ScoreBlend weighs the score components of an upgrade candidate.
type ScoreBlend struct {
	Offense       float64 `yaml:"offense" json:"offense"`
	Survivability float64 `yaml:"survivability" json:"survivability"`
	Healing       float64 `yaml:"healing" json:"healing"`
	Boon          float64 `yaml:"boon" json:"boon"`
}

func (b ScoreBlend) total() float64 {
	return b.Offense + b.Survivability + b.Healing + b.Boon
}

// Floor is a minimum-stat requirement. Stat is an attribute name or StatMaxHealth.
// Empty Modes applies the floor in every mode.
type Floor struct {
	Stat  string
	Min   float64
	Modes []Mode
}

func (f Floor) appliesTo(m Mode) bool {
	return len(f.Modes) == 0 || slices.Contains(f.Modes, m)
}

// constraint converts the floor into an attribute minimum for a profession health tier.
func (f Floor) constraint(tier model.HealthTier) (Constraint, error) {
	if f.Stat == StatMaxHealth {
		need := (f.Min - float64(tier.BaseHealth())) / constants.HealthPerVitality
		return Constraint{Name: f.Stat, Attribute: model.AttrVitality, Min: int32(math.Ceil(need))}, nil
	}
	attr, ok := model.ParseAttribute(f.Stat)
	if !ok {
		return Constraint{}, fmt.Errorf("floor on unknown stat %q: %w", f.Stat, model.ErrConfiguration)
	}
	return Constraint{Name: attr.String(), Attribute: attr, Min: int32(math.Ceil(f.Min))}, nil
}

// RoleProfile is the weight table of one role.
//
// The armor objective mixes Offense and Support weights by the offense share:
// OffenseShare[experience] when set, otherwise the Offense part of Blend, minus ModeShift[mode].
type RoleProfile struct {
	Offense      AttributeWeights
	Support      AttributeWeights
	Blend        ScoreBlend
	OffenseShare map[Experience]float64
	ModeShift    map[Mode]float64
	Floors       []Floor
}

// Share returns the offense share of the armor objective.
func (p RoleProfile) Share(mode Mode, exp Experience) float64 {
	share := 0.0
	if t := p.Blend.total(); t > 0 {
		share = p.Blend.Offense / t
	}
	if v, ok := p.OffenseShare[exp]; ok {
		share = v
	}
	share -= p.ModeShift[mode]
	return math.Min(1, math.Max(0, share))
}

// Weights returns the armor objective weights for a mode and experience level.
// Both halves are normalized to a max weight of 1 before mixing.
func (p RoleProfile) Weights(mode Mode, exp Experience) AttributeWeights {
	share := p.Share(mode, exp)
	offMax, supMax := p.Offense.max(), p.Support.max()

	var w AttributeWeights
	for i := range w {
		if offMax > 0 {
			w[i] += share * p.Offense[i] / offMax
		}
		if supMax > 0 {
			w[i] += (1 - share) * p.Support[i] / supMax
		}
	}
	return w
}

// Constraints resolves the floors that apply in mode for a health tier.
func (p RoleProfile) Constraints(mode Mode, tier model.HealthTier) ([]Constraint, error) {
	var out []Constraint
	for _, f := range p.Floors {
		if !f.appliesTo(mode) {
			continue
		}
		c, err := f.constraint(tier)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Validate checks that the profile can score anything.
func (p RoleProfile) Validate() error {
	if p.Blend.total() <= 0 {
		return fmt.Errorf("score blend sums to zero: %w", model.ErrConfiguration)
	}
	if p.Offense.max() <= 0 && p.Support.max() <= 0 {
		return fmt.Errorf("no attribute weights: %w", model.ErrConfiguration)
	}
	for _, f := range p.Floors {
		if _, err := f.constraint(model.HealthTierLow); err != nil {
			return err
		}
	}
	return nil
}

func (p RoleProfile) clone() RoleProfile {
	p.OffenseShare = maps.Clone(p.OffenseShare)
	p.ModeShift = maps.Clone(p.ModeShift)
	p.Floors = slices.Clone(p.Floors)
	return p
}

// Profiles is the role → profile table owned by the search engine.
type Profiles map[Role]RoleProfile

// Profile returns the profile of role.
func (ps Profiles) Profile(role Role) (RoleProfile, error) {
	p, ok := ps[role]
	if !ok {
		return RoleProfile{}, fmt.Errorf("no profile for role %q: %w", role, model.ErrConfiguration)
	}
	return p, nil
}

// Override replaces parts of a role profile. Nil fields keep the current value.
type Override struct {
	Blend        *ScoreBlend
	OffenseShare map[Experience]float64
	Floors       []Floor
}

// With returns a copy of ps with o applied to role.
func (ps Profiles) With(role Role, o Override) (Profiles, error) {
	out := make(Profiles, len(ps))
	for r, p := range ps {
		out[r] = p.clone()
	}

	p, err := out.Profile(role)
	if err != nil {
		return nil, err
	}
	if o.Blend != nil {
		p.Blend = *o.Blend
	}
	if o.OffenseShare != nil {
		p.OffenseShare = maps.Clone(o.OffenseShare)
	}
	if o.Floors != nil {
		p.Floors = slices.Clone(o.Floors)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("role %s: %w", role, err)
	}
	out[role] = p
	return out, nil
}

// DefaultProfiles returns the built-in weight tables.
func DefaultProfiles() Profiles {
	offense := weights(map[model.Attribute]float64{
		model.AttrPower:     1.0,
		model.AttrPrecision: 0.9,
		model.AttrFerocity:  0.8,
	})

	return Profiles{
		RoleDPS: {
			Offense: offense,
			Support: weights(map[model.Attribute]float64{
				model.AttrVitality:  1.0,
				model.AttrToughness: 0.6,
			}),
			Blend: ScoreBlend{Offense: 1},
			OffenseShare: map[Experience]float64{
				ExperienceBeginner:     0.6,
				ExperienceIntermediate: 0.75,
				ExperienceExpert:       0.9,
			},
			ModeShift: map[Mode]float64{ModeWvW: 0.1, ModePvP: 0.15},
			// Roaming.
			Floors: []Floor{{Stat: StatMaxHealth, Min: 15000, Modes: []Mode{ModeWvW}}},
		},
		RoleTank: {
			Offense: offense,
			Support: weights(map[model.Attribute]float64{
				model.AttrToughness:     1.0,
				model.AttrVitality:      0.8,
				model.AttrHealingPower:  0.2,
				model.AttrConcentration: 0.1,
			}),
			Blend:  ScoreBlend{Offense: 0.3, Survivability: 0.7},
			Floors: []Floor{{Stat: model.AttrToughness.String(), Min: 1350}},
		},
		RoleHeal: {
			Offense: offense,
			Support: weights(map[model.Attribute]float64{
				model.AttrHealingPower:  1.0,
				model.AttrConcentration: 0.4,
				model.AttrVitality:      0.4,
				model.AttrToughness:     0.3,
			}),
			Blend:  ScoreBlend{Offense: 0.1, Survivability: 0.2, Healing: 0.7},
			Floors: []Floor{{Stat: model.AttrHealingPower.String(), Min: 300}},
		},
		RoleBoon: {
			Offense: offense,
			Support: weights(map[model.Attribute]float64{
				model.AttrConcentration: 1.0,
				model.AttrHealingPower:  0.3,
				model.AttrVitality:      0.3,
			}),
			Blend:  ScoreBlend{Offense: 0.3, Survivability: 0.1, Boon: 0.6},
			Floors: []Floor{{Stat: model.AttrConcentration.String(), Min: 200}},
		},
		RoleSupport: {
			Offense: offense,
			Support: weights(map[model.Attribute]float64{
				model.AttrHealingPower:  0.8,
				model.AttrConcentration: 0.8,
				model.AttrToughness:     0.5,
				model.AttrVitality:      0.5,
			}),
			Blend: ScoreBlend{Offense: 0.1, Survivability: 0.2, Healing: 0.35, Boon: 0.35},
		},
	}
}
