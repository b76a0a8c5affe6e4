package model

import "fmt"

// ModifierKind defines how a modifier is applied.
type ModifierKind int8

const (
	ModFlatStat                  ModifierKind = iota // +N to an attribute
	ModPercentStat                                   // +N% of an attribute total
	ModDamageMultiplier                              // +N% all outgoing damage
	ModStrikeDamageMultiplier                        // +N% strike damage
	ModConditionDamageMultiplier                     // +N% condition damage
	ModProcDamage                                    // expected proc damage per rotation
	ModBoonDuration                                  // +N% boon duration
	ModOutgoingHealing                               // +N% outgoing healing
	ModIncomingHealing                               // +N% incoming healing
)

var modifierKindNames = map[ModifierKind]string{
	ModFlatStat:                  "FlatStat",
	ModPercentStat:               "PercentStat",
	ModDamageMultiplier:          "DamageMultiplier",
	ModStrikeDamageMultiplier:    "StrikeDamageMultiplier",
	ModConditionDamageMultiplier: "ConditionDamageMultiplier",
	ModProcDamage:                "ProcDamage",
	ModBoonDuration:              "BoonDuration",
	ModOutgoingHealing:           "OutgoingHealing",
	ModIncomingHealing:           "IncomingHealing",
}

func (k ModifierKind) String() string {
	if s, ok := modifierKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ModifierKind(%d)", int8(k))
}

// ParseModifierKind resolves a kind by its name as written in catalog files.
func ParseModifierKind(s string) (ModifierKind, bool) {
	for k, name := range modifierKindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// IsDamageMultiplier reports whether the kind multiplies outgoing damage.
func (k ModifierKind) IsDamageMultiplier() bool {
	return k == ModDamageMultiplier || k == ModStrikeDamageMultiplier || k == ModConditionDamageMultiplier
}

// Modifier is a single stat or damage modification granted by a rune, sigil, relic, trait or boon.
//
// Magnitude units: FlatStat is raw points (or percent points for the crit pseudo-targets),
// every other kind except ProcDamage is percent points (10 = +10%).
// ProcDamage is expected raw damage per rotation.
type Modifier struct {
	Name      string
	Source    string
	Kind      ModifierKind
	Target    string // required for FlatStat / PercentStat
	Magnitude float64
}

// Fraction returns Magnitude as a fraction (10 → 0.10).
func (m Modifier) Fraction() float64 {
	return m.Magnitude / 100
}

// Validate checks that stat modifiers carry a target.
func (m Modifier) Validate() error {
	if (m.Kind == ModFlatStat || m.Kind == ModPercentStat) && m.Target == "" {
		return fmt.Errorf("modifier %q (%s): target attribute required: %w", m.Name, m.Kind, ErrConfiguration)
	}
	if _, ok := modifierKindNames[m.Kind]; !ok {
		return fmt.Errorf("modifier %q: unknown kind %d: %w", m.Name, m.Kind, ErrConfiguration)
	}
	return nil
}

// TargetAttribute resolves Target into an Attribute.
// Returns false for pseudo-targets and unknown names.
func (m Modifier) TargetAttribute() (Attribute, bool) {
	return ParseAttribute(m.Target)
}

// FlatStat creates a +value modifier on attr.
func FlatStat(source string, attr Attribute, value float64) Modifier {
	return Modifier{Name: "+" + attr.String(), Source: source, Kind: ModFlatStat, Target: attr.String(), Magnitude: value}
}

// PercentStat creates a +pct% modifier on attr.
func PercentStat(source string, attr Attribute, pct float64) Modifier {
	return Modifier{Name: "%" + attr.String(), Source: source, Kind: ModPercentStat, Target: attr.String(), Magnitude: pct}
}

// CritChance creates a flat crit chance modifier in percent points.
func CritChance(source string, pct float64) Modifier {
	return Modifier{Name: "+crit_chance", Source: source, Kind: ModFlatStat, Target: TargetCritChance, Magnitude: pct}
}

// CritDamage creates a flat crit damage modifier in percent points.
func CritDamage(source string, pct float64) Modifier {
	return Modifier{Name: "+crit_damage", Source: source, Kind: ModFlatStat, Target: TargetCritDamage, Magnitude: pct}
}

// DamageMultiplier creates a +pct% all-damage modifier.
func DamageMultiplier(source string, pct float64) Modifier {
	return Modifier{Name: "damage", Source: source, Kind: ModDamageMultiplier, Magnitude: pct}
}

// StrikeDamage creates a +pct% strike damage modifier.
func StrikeDamage(source string, pct float64) Modifier {
	return Modifier{Name: "strike_damage", Source: source, Kind: ModStrikeDamageMultiplier, Magnitude: pct}
}

// ConditionDamage creates a +pct% condition damage modifier.
func ConditionDamage(source string, pct float64) Modifier {
	return Modifier{Name: "condition_damage", Source: source, Kind: ModConditionDamageMultiplier, Magnitude: pct}
}

// ProcDamage creates a proc modifier dealing dmg per rotation.
func ProcDamage(source string, dmg float64) Modifier {
	return Modifier{Name: "proc", Source: source, Kind: ModProcDamage, Magnitude: dmg}
}

// BoonDuration creates a +pct% boon duration modifier.
func BoonDuration(source string, pct float64) Modifier {
	return Modifier{Name: "boon_duration", Source: source, Kind: ModBoonDuration, Magnitude: pct}
}

// OutgoingHealing creates a +pct% outgoing healing modifier.
func OutgoingHealing(source string, pct float64) Modifier {
	return Modifier{Name: "outgoing_healing", Source: source, Kind: ModOutgoingHealing, Magnitude: pct}
}

// IncomingHealing creates a +pct% incoming healing modifier.
func IncomingHealing(source string, pct float64) Modifier {
	return Modifier{Name: "incoming_healing", Source: source, Kind: ModIncomingHealing, Magnitude: pct}
}
