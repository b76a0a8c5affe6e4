package data

import "github.com/udisondev/buildcraft/internal/model"

// upgradeDef is a static rune/sigil/relic definition.
// Modifiers are built by small pure constructors from the model package.
type upgradeDef struct {
	name string
	kind UpgradeKind
	mods func(src string) []model.Modifier
}

var upgradeDefs = []upgradeDef{
	// Runes
	{"Superior Rune of the Scholar", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrPower, 175),
			model.FlatStat(s, model.AttrFerocity, 100),
			model.StrikeDamage(s, 5),
		}
	}},
	{"Superior Rune of the Eagle", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrPrecision, 175),
			model.FlatStat(s, model.AttrFerocity, 100),
			model.StrikeDamage(s, 3),
		}
	}},
	{"Superior Rune of the Dragonhunter", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrPower, 175),
			model.CritChance(s, 7),
			model.StrikeDamage(s, 2),
		}
	}},
	{"Superior Rune of Strength", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrPower, 175),
			model.BoonDuration(s, 10),
			model.StrikeDamage(s, 5),
		}
	}},
	{"Superior Rune of the Nightmare", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrConditionDamage, 175),
			model.ConditionDamage(s, 5),
		}
	}},
	{"Superior Rune of Divinity", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrPower, 36),
			model.FlatStat(s, model.AttrPrecision, 36),
			model.FlatStat(s, model.AttrToughness, 36),
			model.FlatStat(s, model.AttrVitality, 36),
			model.FlatStat(s, model.AttrConditionDamage, 36),
			model.FlatStat(s, model.AttrHealingPower, 36),
			model.CritDamage(s, 10),
		}
	}},
	{"Superior Rune of the Monk", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrHealingPower, 175),
			model.OutgoingHealing(s, 10),
			model.BoonDuration(s, 10),
		}
	}},
	{"Superior Rune of Water", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrHealingPower, 175),
			model.BoonDuration(s, 15),
		}
	}},
	{"Superior Rune of Leadership", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrConcentration, 175),
			model.BoonDuration(s, 10),
		}
	}},
	{"Superior Rune of Durability", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrToughness, 175),
			model.FlatStat(s, model.AttrVitality, 100),
			model.BoonDuration(s, 5),
		}
	}},
	{"Superior Rune of Melandru", UpgradeRune, func(s string) []model.Modifier {
		return []model.Modifier{
			model.FlatStat(s, model.AttrVitality, 175),
			model.IncomingHealing(s, 10),
		}
	}},

	// Sigils
	{"Superior Sigil of Force", UpgradeSigil, func(s string) []model.Modifier {
		return []model.Modifier{model.StrikeDamage(s, 5)}
	}},
	{"Superior Sigil of Accuracy", UpgradeSigil, func(s string) []model.Modifier {
		return []model.Modifier{model.CritChance(s, 7)}
	}},
	{"Superior Sigil of Impact", UpgradeSigil, func(s string) []model.Modifier {
		return []model.Modifier{model.StrikeDamage(s, 3)}
	}},
	{"Superior Sigil of Air", UpgradeSigil, func(s string) []model.Modifier {
		return []model.Modifier{model.ProcDamage(s, 1500)}
	}},
	{"Superior Sigil of Bursting", UpgradeSigil, func(s string) []model.Modifier {
		return []model.Modifier{model.ConditionDamage(s, 5)}
	}},
	{"Superior Sigil of Transference", UpgradeSigil, func(s string) []model.Modifier {
		return []model.Modifier{model.OutgoingHealing(s, 10)}
	}},
	{"Superior Sigil of Concentration", UpgradeSigil, func(s string) []model.Modifier {
		return []model.Modifier{model.BoonDuration(s, 10)}
	}},
	{"Superior Sigil of Life", UpgradeSigil, func(s string) []model.Modifier {
		return []model.Modifier{model.FlatStat(s, model.AttrHealingPower, 250)}
	}},
	{"Superior Sigil of Absorption", UpgradeSigil, func(s string) []model.Modifier {
		return []model.Modifier{model.FlatStat(s, model.AttrToughness, 100)}
	}},

	// Relics
	{"Relic of Fireworks", UpgradeRelic, func(s string) []model.Modifier {
		return []model.Modifier{model.StrikeDamage(s, 7)}
	}},
	{"Relic of the Thief", UpgradeRelic, func(s string) []model.Modifier {
		return []model.Modifier{model.StrikeDamage(s, 5), model.ProcDamage(s, 800)}
	}},
	{"Relic of the Monk", UpgradeRelic, func(s string) []model.Modifier {
		return []model.Modifier{model.OutgoingHealing(s, 10)}
	}},
	{"Relic of the Centaur", UpgradeRelic, func(s string) []model.Modifier {
		return []model.Modifier{model.BoonDuration(s, 15)}
	}},
	{"Relic of Durability", UpgradeRelic, func(s string) []model.Modifier {
		return []model.Modifier{model.FlatStat(s, model.AttrToughness, 100), model.IncomingHealing(s, 10)}
	}},
}

// baselineUpgrades returns the static upgrade table in catalog order.
func baselineUpgrades() []Upgrade {
	out := make([]Upgrade, len(upgradeDefs))
	for i, d := range upgradeDefs {
		out[i] = Upgrade{Name: d.name, Kind: d.kind, Modifiers: d.mods(d.name)}
	}
	return out
}
