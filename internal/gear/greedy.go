package gear

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/buildcraft/internal/constants"
	"github.com/udisondev/buildcraft/internal/data"
	"github.com/udisondev/buildcraft/internal/game/combat"
	"github.com/udisondev/buildcraft/internal/model"
)

// GreedyArmor assigns one stat prefix per armor slot, slot by slot, without backtracking.
//
// For each slot it takes the prefix with the highest weighted objective among those that
// keep every constraint reachable, assuming the best possible contribution of the slots
// still open. When no prefix keeps a constraint reachable the best-objective prefix wins
// and the constraint is reported unmet. Ties go to catalog order.
type GreedyArmor struct {
	catalog  *data.Catalog
	profiles Profiles
	base     model.StatBundle
}

// NewGreedyArmor creates the solver. A nil profiles table selects DefaultProfiles.
func NewGreedyArmor(catalog *data.Catalog, profiles Profiles) *GreedyArmor {
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	return &GreedyArmor{
		catalog:  catalog,
		profiles: profiles,
		base:     model.BaselineStats(constants.BaseAttributeValue),
	}
}

// Name implements EquipmentStrategy.
func (g *GreedyArmor) Name() string { return "greedy-armor" }

// Recommend implements EquipmentStrategy. It always yields a single candidate.
func (g *GreedyArmor) Recommend(req Request) ([]Candidate, error) {
	res, err := g.GenerateEquipmentSet(req.Role, req.Profession, req.Specialization, req.Mode, req.Experience)
	if err != nil {
		return nil, err
	}

	prof, _ := model.ProfessionByName(req.Profession)
	return []Candidate{{
		ArmorPrefixes: res.Prefixes(),
		Stats:         res.Stats,
		Derived:       combat.ResolveWithHealth(res.Stats, nil, model.CombatContext{}, prof.HealthTier),
		Score:         res.Score,
	}}, nil
}

// GenerateEquipmentSet picks an armor prefix for each of the six slots.
// Empty mode and experience select pve and intermediate.
func (g *GreedyArmor) GenerateEquipmentSet(role Role, profession, specialization string, mode Mode, exp Experience) (EquipmentResult, error) {
	role, err := ParseRole(string(role))
	if err != nil {
		return EquipmentResult{}, err
	}
	if mode, err = ParseMode(string(mode)); err != nil {
		return EquipmentResult{}, err
	}
	if exp, err = ParseExperience(string(exp)); err != nil {
		return EquipmentResult{}, err
	}
	prof, ok := model.ProfessionByName(profession)
	if !ok {
		return EquipmentResult{}, fmt.Errorf("unknown profession %q: %w", profession, model.ErrInvalidValue)
	}

	profile, err := g.profiles.Profile(role)
	if err != nil {
		return EquipmentResult{}, err
	}
	constraints, err := profile.Constraints(mode, prof.HealthTier)
	if err != nil {
		return EquipmentResult{}, fmt.Errorf("role %s: %w", role, err)
	}
	w := profile.Weights(mode, exp)

	prefixes := g.catalog.Prefixes()
	if len(prefixes) == 0 {
		return EquipmentResult{}, fmt.Errorf("no stat prefixes: %w", model.ErrConfiguration)
	}

	slots := data.ArmorSlots
	contrib := make([][]model.StatBundle, len(slots))
	for s, slot := range slots {
		contrib[s] = make([]model.StatBundle, len(prefixes))
		for p, prefix := range prefixes {
			contrib[s][p] = data.SlotBundle(prefix, slot)
		}
	}

	// remaining[s] = best attainable per attribute from slots s.. onwards.
	remaining := make([]model.StatBundle, len(slots)+1)
	for s := len(slots) - 1; s >= 0; s-- {
		var best model.StatBundle
		for _, b := range contrib[s] {
			for a, v := range b {
				best[a] = max(best[a], v)
			}
		}
		remaining[s] = remaining[s+1].Add(best)
	}

	res := EquipmentResult{
		Role:           role,
		Profession:     prof.Name,
		Specialization: specialization,
		Mode:           mode,
		Experience:     exp,
		Slots:          make([]SlotAssignment, 0, len(slots)),
		Weights:        w,
	}

	running := g.base
	var armor model.StatBundle
	for s, slot := range slots {
		pick, fallback := -1, 0
		var pickObj, fallbackObj float64

		for p := range prefixes {
			obj := w.Objective(contrib[s][p])
			if p == 0 || obj > fallbackObj {
				fallback, fallbackObj = p, obj
			}
			if !reachable(running.Add(contrib[s][p]), remaining[s+1], constraints) {
				continue
			}
			if pick < 0 || obj > pickObj {
				pick, pickObj = p, obj
			}
		}
		if pick < 0 {
			slog.Debug("no prefix keeps constraints reachable", "slot", slot.Name, "role", role)
			pick = fallback
		}

		running = running.Add(contrib[s][pick])
		armor = armor.Add(contrib[s][pick])
		res.Slots = append(res.Slots, SlotAssignment{Slot: slot.Name, Prefix: prefixes[pick].Name, Stats: contrib[s][pick]})
	}

	for i := range constraints {
		c := &constraints[i]
		c.Actual = running.Get(c.Attribute)
		c.Met = c.Actual >= c.Min
	}
	res.Constraints = constraints
	res.Stats = running
	res.Score = w.Objective(armor)

	slog.Debug("equipment set generated",
		"role", role,
		"profession", prof.Name,
		"mode", mode,
		"experience", exp,
		"score", res.Score,
		"constraints_met", res.ConstraintsMet())
	return res, nil
}

// reachable reports whether every constraint can still be met from running
// given the best contribution of the open slots.
func reachable(running, open model.StatBundle, constraints []Constraint) bool {
	for _, c := range constraints {
		if running.Get(c.Attribute)+open.Get(c.Attribute) < c.Min {
			return false
		}
	}
	return true
}
