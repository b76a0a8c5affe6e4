package data

import "github.com/udisondev/buildcraft/internal/model"

// Ascended chest values used to normalize prefix bundles.
// Other armor slots scale from these (see ArmorSlots).
const (
	chestMajor3 = 141 // 3-stat major
	chestMinor3 = 101 // 3-stat minor
	chestMajor4 = 121 // 4-stat major
	chestMinor4 = 67  // 4-stat minor
	chestCelest = 67  // celestial, every stat
)

// prefixDef: статический baseline префиксов (ascended chest).
// Используется, когда authoritative item-stat source недоступен.
type prefixDef struct {
	name  string
	major []model.Attribute
	minor []model.Attribute
	all   bool
}

var prefixDefs = []prefixDef{
	{name: "Berserker", major: attrs(model.AttrPower), minor: attrs(model.AttrPrecision, model.AttrFerocity)},
	{name: "Assassin", major: attrs(model.AttrPrecision), minor: attrs(model.AttrPower, model.AttrFerocity)},
	{name: "Marauder", major: attrs(model.AttrPower, model.AttrPrecision), minor: attrs(model.AttrVitality, model.AttrFerocity)},
	{name: "Dragon", major: attrs(model.AttrPower, model.AttrFerocity), minor: attrs(model.AttrPrecision, model.AttrVitality)},
	{name: "Diviner", major: attrs(model.AttrPower, model.AttrConcentration), minor: attrs(model.AttrPrecision, model.AttrFerocity)},
	{name: "Valkyrie", major: attrs(model.AttrPower), minor: attrs(model.AttrVitality, model.AttrFerocity)},
	{name: "Soldier", major: attrs(model.AttrPower), minor: attrs(model.AttrToughness, model.AttrVitality)},
	{name: "Commander", major: attrs(model.AttrPower, model.AttrPrecision), minor: attrs(model.AttrToughness, model.AttrConcentration)},
	{name: "Harrier", major: attrs(model.AttrPower), minor: attrs(model.AttrHealingPower, model.AttrConcentration)},
	{name: "Knight", major: attrs(model.AttrToughness), minor: attrs(model.AttrPower, model.AttrPrecision)},
	{name: "Cavalier", major: attrs(model.AttrToughness), minor: attrs(model.AttrPower, model.AttrFerocity)},
	{name: "Sentinel", major: attrs(model.AttrVitality), minor: attrs(model.AttrPower, model.AttrToughness)},
	{name: "Nomad", major: attrs(model.AttrToughness), minor: attrs(model.AttrVitality, model.AttrHealingPower)},
	{name: "Minstrel", major: attrs(model.AttrToughness, model.AttrHealingPower), minor: attrs(model.AttrVitality, model.AttrConcentration)},
	{name: "Magi", major: attrs(model.AttrHealingPower), minor: attrs(model.AttrPrecision, model.AttrVitality)},
	{name: "Cleric", major: attrs(model.AttrHealingPower), minor: attrs(model.AttrPower, model.AttrToughness)},
	{name: "Giver", major: attrs(model.AttrExpertise), minor: attrs(model.AttrConcentration, model.AttrHealingPower)},
	{name: "Viper", major: attrs(model.AttrPower, model.AttrConditionDamage), minor: attrs(model.AttrPrecision, model.AttrExpertise)},
	{name: "Sinister", major: attrs(model.AttrConditionDamage), minor: attrs(model.AttrPower, model.AttrPrecision)},
	{name: "Rampager", major: attrs(model.AttrPrecision), minor: attrs(model.AttrPower, model.AttrConditionDamage)},
	{name: "Carrion", major: attrs(model.AttrConditionDamage), minor: attrs(model.AttrPower, model.AttrVitality)},
	{name: "Dire", major: attrs(model.AttrConditionDamage), minor: attrs(model.AttrToughness, model.AttrVitality)},
	{name: "Trailblazer", major: attrs(model.AttrToughness, model.AttrConditionDamage), minor: attrs(model.AttrVitality, model.AttrExpertise)},
	{name: "Ritualist", major: attrs(model.AttrVitality, model.AttrConditionDamage), minor: attrs(model.AttrConcentration, model.AttrExpertise)},
	{name: "Celestial", all: true},
}

func attrs(a ...model.Attribute) []model.Attribute { return a }

// bundle builds the chest-normalized StatBundle of a prefix definition.
func (d prefixDef) bundle() model.StatBundle {
	var b model.StatBundle
	if d.all {
		for _, a := range model.Attributes() {
			b[a] = chestCelest
		}
		return b
	}

	major, minor := int32(chestMajor3), int32(chestMinor3)
	if len(d.major) > 1 {
		major, minor = chestMajor4, chestMinor4
	}
	for _, a := range d.major {
		b[a] = major
	}
	for _, a := range d.minor {
		b[a] = minor
	}
	return b
}

// baselinePrefixes returns the static prefix table in catalog order.
func baselinePrefixes() []StatPrefix {
	out := make([]StatPrefix, len(prefixDefs))
	for i, d := range prefixDefs {
		out[i] = StatPrefix{Name: d.name, Bundle: d.bundle()}
	}
	return out
}
