package gear

import (
	"github.com/udisondev/buildcraft/internal/data"
	"github.com/udisondev/buildcraft/internal/game/combat"
	"github.com/udisondev/buildcraft/internal/model"
)

// Request is the common input of every equipment strategy.
// Strategies read only the fields they need.
type Request struct {
	Role           Role
	Profession     string
	Specialization string
	Mode           Mode
	Experience     Experience

	// Base attributes and rotation scored by the upgrade search.
	Base     model.StatBundle
	Rotation []combat.RotationSkill

	// K is the number of candidates wanted; <= 0 means 1.
	K int
}

// EquipmentStrategy recommends equipment for a request.
// Candidates come back sorted by score, best first.
type EquipmentStrategy interface {
	Name() string
	Recommend(req Request) ([]Candidate, error)
}

// Constraint is a resolved minimum on one attribute of the aggregate stats.
type Constraint struct {
	Name      string          `json:"name"`
	Attribute model.Attribute `json:"-"`
	Min       int32           `json:"min"`
	Actual    int32           `json:"actual"`
	Met       bool            `json:"met"`
}

// SlotAssignment is the prefix chosen for one armor slot.
type SlotAssignment struct {
	Slot   string           `json:"slot"`
	Prefix string           `json:"prefix"`
	Stats  model.StatBundle `json:"-"`
}

// EquipmentResult is the output of the greedy armor solver.
type EquipmentResult struct {
	Role           Role             `json:"role"`
	Profession     string           `json:"profession"`
	Specialization string           `json:"specialization,omitempty"`
	Mode           Mode             `json:"mode"`
	Experience     Experience       `json:"experience"`
	Slots          []SlotAssignment `json:"slots"`
	Stats          model.StatBundle `json:"-"` // base + armor
	Weights        AttributeWeights `json:"-"`
	Constraints    []Constraint     `json:"constraints"`
	Score          float64          `json:"score"` // weighted objective of the armor contribution
}

// Prefixes returns the chosen prefix per slot in ArmorSlots order.
func (r EquipmentResult) Prefixes() [len(data.ArmorSlots)]string {
	var out [len(data.ArmorSlots)]string
	for i, s := range r.Slots {
		if i < len(out) {
			out[i] = s.Prefix
		}
	}
	return out
}

// ConstraintsMet reports whether every constraint holds.
func (r EquipmentResult) ConstraintsMet() bool {
	for _, c := range r.Constraints {
		if !c.Met {
			return false
		}
	}
	return true
}

// Breakdown holds the per-component scores of an upgrade candidate,
// each relative to the un-upgraded baseline (1 = no change).
type Breakdown struct {
	Offense       float64 `json:"offense"`
	Survivability float64 `json:"survivability"`
	Healing       float64 `json:"healing"`
	Boon          float64 `json:"boon"`
}

// Candidate is one ranked equipment recommendation.
type Candidate struct {
	ArmorPrefixes [len(data.ArmorSlots)]string `json:"armor_prefixes"`
	Rune          string                       `json:"rune,omitempty"`
	Sigils        []string                     `json:"sigils,omitempty"`
	Relic         string                       `json:"relic,omitempty"`
	Stats         model.StatBundle             `json:"-"`
	Derived       model.DerivedAttributes      `json:"-"`
	Score         float64                      `json:"score"`
	Breakdown     Breakdown                    `json:"breakdown"`
}
