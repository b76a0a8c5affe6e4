package data

import (
	"fmt"
	"strings"

	"github.com/udisondev/buildcraft/internal/model"
)

// StatPrefix is a named StatBundle template (chest-normalized).
type StatPrefix struct {
	Name   string
	Bundle model.StatBundle
}

// UpgradeKind distinguishes upgrade components.
type UpgradeKind uint8

const (
	UpgradeRune UpgradeKind = iota
	UpgradeSigil
	UpgradeRelic
)

func (k UpgradeKind) String() string {
	switch k {
	case UpgradeRune:
		return "rune"
	case UpgradeSigil:
		return "sigil"
	case UpgradeRelic:
		return "relic"
	default:
		return fmt.Sprintf("UpgradeKind(%d)", uint8(k))
	}
}

// ParseUpgradeKind resolves "rune" / "sigil" / "relic".
func ParseUpgradeKind(s string) (UpgradeKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rune":
		return UpgradeRune, true
	case "sigil":
		return UpgradeSigil, true
	case "relic":
		return UpgradeRelic, true
	}
	return 0, false
}

// RoleFlags tags an upgrade with the roles it serves.
type RoleFlags uint8

const (
	FlagHeal RoleFlags = 1 << iota
	FlagBoon
	FlagTank
	FlagDPS
)

// Has reports whether any of mask is set.
func (f RoleFlags) Has(mask RoleFlags) bool { return f&mask != 0 }

// HasHeal, HasBoon, HasTank, HasDPS are the classification predicates used by role filters.
func (f RoleFlags) HasHeal() bool { return f.Has(FlagHeal) }
func (f RoleFlags) HasBoon() bool { return f.Has(FlagBoon) }
func (f RoleFlags) HasTank() bool { return f.Has(FlagTank) }
func (f RoleFlags) HasDPS() bool  { return f.Has(FlagDPS) }

// PureDPS reports an offense-only upgrade.
func (f RoleFlags) PureDPS() bool {
	return f.HasDPS() && !f.Has(FlagHeal|FlagBoon|FlagTank)
}

func (f RoleFlags) String() string {
	var parts []string
	if f.HasHeal() {
		parts = append(parts, "heal")
	}
	if f.HasBoon() {
		parts = append(parts, "boon")
	}
	if f.HasTank() {
		parts = append(parts, "tank")
	}
	if f.HasDPS() {
		parts = append(parts, "dps")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Upgrade is a rune, sigil or relic with its modifiers and cached role flags.
type Upgrade struct {
	Name      string
	Kind      UpgradeKind
	Modifiers []model.Modifier
	Flags     RoleFlags
}

// Classify computes role flags from a modifier list.
//
//	heal: healing_power or healing modifiers
//	boon: concentration or boon duration
//	tank: toughness / vitality
//	dps:  power / precision / ferocity / condition_damage, crit targets, damage multipliers, procs
func Classify(mods []model.Modifier) RoleFlags {
	var f RoleFlags
	for _, m := range mods {
		switch m.Kind {
		case model.ModFlatStat, model.ModPercentStat:
			if m.Target == model.TargetCritChance || m.Target == model.TargetCritDamage {
				f |= FlagDPS
				continue
			}
			attr, ok := m.TargetAttribute()
			if !ok {
				continue
			}
			switch attr {
			case model.AttrHealingPower:
				f |= FlagHeal
			case model.AttrConcentration:
				f |= FlagBoon
			case model.AttrToughness, model.AttrVitality:
				f |= FlagTank
			case model.AttrPower, model.AttrPrecision, model.AttrFerocity, model.AttrConditionDamage:
				f |= FlagDPS
			}
		case model.ModOutgoingHealing, model.ModIncomingHealing:
			f |= FlagHeal
		case model.ModBoonDuration:
			f |= FlagBoon
		case model.ModDamageMultiplier, model.ModStrikeDamageMultiplier, model.ModConditionDamageMultiplier, model.ModProcDamage:
			f |= FlagDPS
		}
	}
	return f
}

// Catalog is the read-only registry of stat prefixes and upgrade components.
// Built once at startup and shared; safe for concurrent readers.
type Catalog struct {
	prefixes    []StatPrefix
	prefixIndex map[string]int

	upgrades     [3][]Upgrade
	upgradeIndex map[string]upgradeRef
}

type upgradeRef struct {
	kind UpgradeKind
	pos  int
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewCatalog validates the entries, classifies upgrades and builds lookup indexes.
// Input order is kept as catalog order (used for tie-breaks).
func NewCatalog(prefixes []StatPrefix, upgrades []Upgrade) (*Catalog, error) {
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("catalog has no stat prefixes: %w", model.ErrConfiguration)
	}

	c := &Catalog{
		prefixes:     make([]StatPrefix, 0, len(prefixes)),
		prefixIndex:  make(map[string]int, len(prefixes)),
		upgradeIndex: make(map[string]upgradeRef, len(upgrades)),
	}

	for _, p := range prefixes {
		key := normalizeName(p.Name)
		if key == "" {
			return nil, fmt.Errorf("stat prefix with empty name: %w", model.ErrConfiguration)
		}
		if _, dup := c.prefixIndex[key]; dup {
			return nil, fmt.Errorf("duplicate stat prefix %q: %w", p.Name, model.ErrConfiguration)
		}
		c.prefixIndex[key] = len(c.prefixes)
		c.prefixes = append(c.prefixes, p)
	}

	for _, u := range upgrades {
		key := normalizeName(u.Name)
		if key == "" {
			return nil, fmt.Errorf("%s with empty name: %w", u.Kind, model.ErrConfiguration)
		}
		if u.Kind > UpgradeRelic {
			return nil, fmt.Errorf("upgrade %q: unknown kind %d: %w", u.Name, u.Kind, model.ErrConfiguration)
		}
		if _, dup := c.upgradeIndex[key]; dup {
			return nil, fmt.Errorf("duplicate upgrade %q: %w", u.Name, model.ErrConfiguration)
		}
		for _, m := range u.Modifiers {
			if err := m.Validate(); err != nil {
				return nil, fmt.Errorf("upgrade %q: %w", u.Name, err)
			}
		}

		u.Modifiers = append([]model.Modifier(nil), u.Modifiers...)
		u.Flags = Classify(u.Modifiers)

		c.upgradeIndex[key] = upgradeRef{kind: u.Kind, pos: len(c.upgrades[u.Kind])}
		c.upgrades[u.Kind] = append(c.upgrades[u.Kind], u)
	}

	return c, nil
}

// DefaultCatalog builds the catalog from the static baseline tables.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(baselinePrefixes(), baselineUpgrades())
	if err != nil {
		// Static tables are covered by tests.
		panic(fmt.Sprintf("building default catalog: %v", err))
	}
	return c
}

// Prefix returns the StatBundle of a prefix by name (case-insensitive).
func (c *Catalog) Prefix(name string) (StatPrefix, bool) {
	i, ok := c.prefixIndex[normalizeName(name)]
	if !ok {
		return StatPrefix{}, false
	}
	return c.prefixes[i], true
}

// Prefixes returns all prefixes in catalog order.
func (c *Catalog) Prefixes() []StatPrefix {
	out := make([]StatPrefix, len(c.prefixes))
	copy(out, c.prefixes)
	return out
}

// Upgrade returns a rune/sigil/relic by name (case-insensitive).
func (c *Catalog) Upgrade(name string) (Upgrade, bool) {
	ref, ok := c.upgradeIndex[normalizeName(name)]
	if !ok {
		return Upgrade{}, false
	}
	return c.upgrades[ref.kind][ref.pos], true
}

// Upgrades returns all upgrades of a kind in catalog order.
// Returned modifier slices are shared and must not be modified.
func (c *Catalog) Upgrades(kind UpgradeKind) []Upgrade {
	if kind > UpgradeRelic {
		return nil
	}
	out := make([]Upgrade, len(c.upgrades[kind]))
	copy(out, c.upgrades[kind])
	return out
}

// Runes returns all runes in catalog order.
func (c *Catalog) Runes() []Upgrade { return c.Upgrades(UpgradeRune) }

// Sigils returns all sigils in catalog order.
func (c *Catalog) Sigils() []Upgrade { return c.Upgrades(UpgradeSigil) }

// Relics returns all relics in catalog order.
func (c *Catalog) Relics() []Upgrade { return c.Upgrades(UpgradeRelic) }

// Stats returns the catalog sizes, for logging.
func (c *Catalog) Stats() (prefixes, runes, sigils, relics int) {
	return len(c.prefixes), len(c.upgrades[UpgradeRune]), len(c.upgrades[UpgradeSigil]), len(c.upgrades[UpgradeRelic])
}
