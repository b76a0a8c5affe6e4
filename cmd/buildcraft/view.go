package main

import (
	"github.com/udisondev/buildcraft/internal/gear"
	"github.com/udisondev/buildcraft/internal/model"
)

// derivedView is the JSON shape of resolved attributes.
type derivedView struct {
	EffectivePower       float64          `json:"effective_power"`
	ConditionDamage      float64          `json:"condition_damage"`
	CritChance           float64          `json:"crit_chance"`
	CritDamageMultiplier float64          `json:"crit_damage_multiplier"`
	MaxHealth            float64          `json:"max_health"`
	Toughness            float64          `json:"toughness"`
	DamageMultiplier     float64          `json:"damage_multiplier"`
	HealingPower         float64          `json:"healing_power"`
	Concentration        float64          `json:"concentration"`
	Expertise            float64          `json:"expertise"`
	BoonDuration         float64          `json:"boon_duration"`
	OutgoingHealing      float64          `json:"outgoing_healing"`
	IncomingHealing      float64          `json:"incoming_healing"`
	ProcDamage           float64          `json:"proc_damage,omitempty"`
	Totals               map[string]int32 `json:"totals"`
}

func newDerivedView(d model.DerivedAttributes) derivedView {
	return derivedView{
		EffectivePower:       d.EffectivePower,
		ConditionDamage:      d.ConditionDamage,
		CritChance:           d.CritChance,
		CritDamageMultiplier: d.CritDamageMultiplier,
		MaxHealth:            d.MaxHealth,
		Toughness:            d.Toughness,
		DamageMultiplier:     d.DamageMultiplier,
		HealingPower:         d.HealingPower,
		Concentration:        d.Concentration,
		Expertise:            d.Expertise,
		BoonDuration:         d.BoonDuration,
		OutgoingHealing:      d.OutgoingHealing,
		IncomingHealing:      d.IncomingHealing,
		ProcDamage:           d.ProcDamage,
		Totals:               d.Totals.Map(),
	}
}

type equipmentView struct {
	gear.EquipmentResult
	Stats          map[string]int32 `json:"stats"`
	ConstraintsMet bool             `json:"constraints_met"`
}

type candidateView struct {
	gear.Candidate
	Stats   map[string]int32 `json:"stats"`
	Derived derivedView      `json:"derived"`
}

func newCandidateViews(cs []gear.Candidate) []candidateView {
	out := make([]candidateView, 0, len(cs))
	for _, c := range cs {
		out = append(out, candidateView{Candidate: c, Stats: c.Stats.Map(), Derived: newDerivedView(c.Derived)})
	}
	return out
}
