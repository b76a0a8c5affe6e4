package data

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/buildcraft/internal/model"
)

// ItemStatSource is an authoritative item-stat source keyed by prefix name.
// Implemented by db.ItemStatRepository.
type ItemStatSource interface {
	ItemStats(ctx context.Context) (map[string]model.StatBundle, error)
}

// LoadOptions configures LoadCatalog.
type LoadOptions struct {
	// OverrideFile is an optional YAML file with extra or replacement entries.
	OverrideFile string

	// ItemStats optionally refines prefix bundles. Failures fall back to the static baseline.
	ItemStats ItemStatSource
}

// catalogFile is the YAML layout of an override file.
type catalogFile struct {
	Prefixes []prefixYAML  `yaml:"prefixes"`
	Upgrades []upgradeYAML `yaml:"upgrades"`
}

type prefixYAML struct {
	Name  string           `yaml:"name"`
	Stats map[string]int32 `yaml:"stats"`
}

type upgradeYAML struct {
	Name      string         `yaml:"name"`
	Kind      string         `yaml:"kind"`
	Modifiers []modifierYAML `yaml:"modifiers"`
}

type modifierYAML struct {
	Kind      string  `yaml:"kind"`
	Target    string  `yaml:"target"`
	Magnitude float64 `yaml:"magnitude"`
}

// LoadCatalog builds the catalog: static baseline, then YAML overrides, then item-stat refinement.
func LoadCatalog(ctx context.Context, opts LoadOptions) (*Catalog, error) {
	prefixes := baselinePrefixes()
	upgrades := baselineUpgrades()

	if opts.OverrideFile != "" {
		raw, err := os.ReadFile(opts.OverrideFile)
		if err != nil {
			return nil, fmt.Errorf("reading catalog overrides %s: %w", opts.OverrideFile, err)
		}
		var overridden int
		prefixes, upgrades, overridden, err = applyOverrides(raw, prefixes, upgrades)
		if err != nil {
			return nil, fmt.Errorf("catalog overrides %s: %w", opts.OverrideFile, err)
		}
		slog.Info("applied catalog overrides", "file", opts.OverrideFile, "entries", overridden)
	}

	if opts.ItemStats != nil {
		stats, err := opts.ItemStats.ItemStats(ctx)
		if err != nil {
			slog.Warn("item-stat refinement unavailable, using static baseline", "err", err)
		} else {
			prefixes = refinePrefixes(prefixes, stats)
			slog.Info("refined stat prefixes", "entries", len(stats))
		}
	}

	c, err := NewCatalog(prefixes, upgrades)
	if err != nil {
		return nil, err
	}

	np, nr, ns, nrel := c.Stats()
	slog.Info("loaded catalog", "prefixes", np, "runes", nr, "sigils", ns, "relics", nrel)
	return c, nil
}

// applyOverrides merges YAML entries into the tables: same name replaces, new name appends.
func applyOverrides(raw []byte, prefixes []StatPrefix, upgrades []Upgrade) ([]StatPrefix, []Upgrade, int, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, nil, 0, fmt.Errorf("parsing yaml: %w: %w", err, model.ErrConfiguration)
	}

	count := 0
	for _, p := range f.Prefixes {
		bundle, err := model.NewStatBundle(p.Stats)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("prefix %q: %w", p.Name, err)
		}
		prefixes = upsertPrefix(prefixes, StatPrefix{Name: p.Name, Bundle: bundle})
		count++
	}

	for _, u := range f.Upgrades {
		kind, ok := ParseUpgradeKind(u.Kind)
		if !ok {
			return nil, nil, 0, fmt.Errorf("upgrade %q: unknown kind %q: %w", u.Name, u.Kind, model.ErrConfiguration)
		}
		mods := make([]model.Modifier, 0, len(u.Modifiers))
		for _, m := range u.Modifiers {
			mk, ok := model.ParseModifierKind(m.Kind)
			if !ok {
				return nil, nil, 0, fmt.Errorf("upgrade %q: unknown modifier kind %q: %w", u.Name, m.Kind, model.ErrConfiguration)
			}
			mods = append(mods, model.Modifier{
				Name:      strings.ToLower(m.Kind),
				Source:    u.Name,
				Kind:      mk,
				Target:    m.Target,
				Magnitude: m.Magnitude,
			})
		}

		up := Upgrade{Name: u.Name, Kind: kind, Modifiers: mods}
		if i := slices.IndexFunc(upgrades, func(x Upgrade) bool { return normalizeName(x.Name) == normalizeName(u.Name) }); i >= 0 {
			upgrades[i] = up
		} else {
			upgrades = append(upgrades, up)
		}
		count++
	}

	return prefixes, upgrades, count, nil
}

// refinePrefixes replaces bundles of known prefixes and appends unknown ones sorted by name.
func refinePrefixes(prefixes []StatPrefix, stats map[string]model.StatBundle) []StatPrefix {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		b := stats[name]
		if b.IsZero() {
			continue
		}
		prefixes = upsertPrefix(prefixes, StatPrefix{Name: name, Bundle: b})
	}
	return prefixes
}

func upsertPrefix(prefixes []StatPrefix, p StatPrefix) []StatPrefix {
	key := normalizeName(p.Name)
	for i := range prefixes {
		if normalizeName(prefixes[i].Name) == key {
			prefixes[i].Bundle = p.Bundle
			return prefixes
		}
	}
	return append(prefixes, p)
}
