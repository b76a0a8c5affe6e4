package model

import "strings"

// Attribute identifies one of the nine raw character attributes.
type Attribute uint8

const (
	AttrPower Attribute = iota
	AttrPrecision
	AttrFerocity
	AttrToughness
	AttrVitality
	AttrConditionDamage
	AttrExpertise
	AttrConcentration
	AttrHealingPower

	AttributeCount
)

var attributeNames = [AttributeCount]string{
	AttrPower:           "power",
	AttrPrecision:       "precision",
	AttrFerocity:        "ferocity",
	AttrToughness:       "toughness",
	AttrVitality:        "vitality",
	AttrConditionDamage: "condition_damage",
	AttrExpertise:       "expertise",
	AttrConcentration:   "concentration",
	AttrHealingPower:    "healing_power",
}

// String returns the snake_case attribute name.
func (a Attribute) String() string {
	if a >= AttributeCount {
		return "unknown"
	}
	return attributeNames[a]
}

// Attributes returns all attributes in canonical order.
func Attributes() []Attribute {
	out := make([]Attribute, AttributeCount)
	for i := range out {
		out[i] = Attribute(i)
	}
	return out
}

// ParseAttribute looks up an attribute by its snake_case name.
// Also accepts a few common aliases ("condi", "healing", "boon_duration").
func ParseAttribute(name string) (Attribute, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "_")
	for i, s := range attributeNames {
		if s == n {
			return Attribute(i), true
		}
	}
	switch n {
	case "condi", "conditiondamage":
		return AttrConditionDamage, true
	case "healing", "healingpower":
		return AttrHealingPower, true
	case "boon_duration":
		return AttrConcentration, true
	case "condition_duration":
		return AttrExpertise, true
	}
	return 0, false
}

// Pseudo-targets for modifiers that adjust derived crit values directly.
// Magnitudes are percent points.
const (
	TargetCritChance = "crit_chance"
	TargetCritDamage = "crit_damage"
)
