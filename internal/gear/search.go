package gear

import (
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/buildcraft/internal/data"
	"github.com/udisondev/buildcraft/internal/game/combat"
	"github.com/udisondev/buildcraft/internal/model"
)

// healingPivot damps the healing component so zero healing power still scores.
const healingPivot = 1000.0

// UpgradeSearch ranks rune × sigil pair × relic combinations for a role.
//
// Every candidate is resolved with the combat formulas and scored against the
// un-upgraded baseline; components are blended by the role's ScoreBlend.
// Scoring runs on a bounded worker pool; the merged list is sorted by score
// descending with enumeration order breaking ties.
type UpgradeSearch struct {
	catalog  *data.Catalog
	profiles Profiles
	workers  int
	ctx      model.CombatContext
}

// SearchOption configures an UpgradeSearch.
type SearchOption func(*UpgradeSearch)

// WithWorkers bounds the scoring pool; n <= 0 selects GOMAXPROCS.
func WithWorkers(n int) SearchOption {
	return func(s *UpgradeSearch) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithCombatContext sets the boons and target conditions every candidate is scored under.
func WithCombatContext(ctx model.CombatContext) SearchOption {
	return func(s *UpgradeSearch) { s.ctx = ctx }
}

// NewUpgradeSearch creates the search. A nil profiles table selects DefaultProfiles.
func NewUpgradeSearch(catalog *data.Catalog, profiles Profiles, opts ...SearchOption) *UpgradeSearch {
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	s := &UpgradeSearch{
		catalog:  catalog,
		profiles: profiles,
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Name implements EquipmentStrategy.
func (s *UpgradeSearch) Name() string { return "upgrade-search" }

// Recommend implements EquipmentStrategy.
func (s *UpgradeSearch) Recommend(req Request) ([]Candidate, error) {
	k := req.K
	if k <= 0 {
		k = 1
	}
	return s.OptimizeBuildTopK(req.Base, req.Rotation, req.Role, k)
}

// OptimizeBuild returns the best candidate. Equal to OptimizeBuildTopK(..., 1)[0].
func (s *UpgradeSearch) OptimizeBuild(base model.StatBundle, rotation []combat.RotationSkill, role Role) (Candidate, error) {
	top, err := s.OptimizeBuildTopK(base, rotation, role, 1)
	if err != nil {
		return Candidate{}, err
	}
	return top[0], nil
}

// OptimizeBuildTopK returns up to k candidates, best first.
func (s *UpgradeSearch) OptimizeBuildTopK(base model.StatBundle, rotation []combat.RotationSkill, role Role, k int) ([]Candidate, error) {
	if k < 1 {
		return nil, fmt.Errorf("top-k %d < 1: %w", k, model.ErrInvalidValue)
	}
	role, err := ParseRole(string(role))
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Profile(role)
	if err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("role %s: %w", role, err)
	}

	combos, err := s.enumerate(role)
	if err != nil {
		return nil, err
	}

	baseline, err := newBaseline(base, rotation, s.ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Candidate, len(combos))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, c := range combos {
		g.Go(func() error {
			cand, err := baseline.score(c, profile.Blend)
			if err != nil {
				return fmt.Errorf("scoring %s: %w", c, err)
			}
			out[i] = cand
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	slog.Debug("upgrade search finished",
		"role", role,
		"candidates", len(out),
		"best", out[0].Score)

	if k < len(out) {
		out = out[:k]
	}
	return out, nil
}

// combo is one enumerated upgrade combination.
type combo struct {
	rune   data.Upgrade
	sigils []data.Upgrade
	relic  *data.Upgrade
}

func (c combo) String() string {
	s := c.rune.Name
	for _, sg := range c.sigils {
		s += " + " + sg.Name
	}
	if c.relic != nil {
		s += " + " + c.relic.Name
	}
	return s
}

func (c combo) modifiers() []model.Modifier {
	mods := append([]model.Modifier(nil), c.rune.Modifiers...)
	for _, sg := range c.sigils {
		mods = append(mods, sg.Modifiers...)
	}
	if c.relic != nil {
		mods = append(mods, c.relic.Modifiers...)
	}
	return mods
}

// enumerate lists runes × unordered sigil pairs × (no relic, relics) in catalog order.
func (s *UpgradeSearch) enumerate(role Role) ([]combo, error) {
	mask := role.Flags()
	runes := FilterByRole(s.catalog.Runes(), mask)
	if len(runes) == 0 {
		return nil, fmt.Errorf("no runes to search for role %s: %w", role, model.ErrConfiguration)
	}
	sigilSets := sigilPairs(FilterByRole(s.catalog.Sigils(), mask))
	relics := FilterByRole(s.catalog.Relics(), mask)

	combos := make([]combo, 0, len(runes)*len(sigilSets)*(len(relics)+1))
	for _, r := range runes {
		for _, sg := range sigilSets {
			combos = append(combos, combo{rune: r, sigils: sg})
			for i := range relics {
				combos = append(combos, combo{rune: r, sigils: sg, relic: &relics[i]})
			}
		}
	}
	return combos, nil
}

// sigilPairs returns every unordered pair; fewer than two sigils yield singletons (or one empty set).
func sigilPairs(sigils []data.Upgrade) [][]data.Upgrade {
	switch len(sigils) {
	case 0:
		return [][]data.Upgrade{nil}
	case 1:
		return [][]data.Upgrade{{sigils[0]}}
	}
	out := make([][]data.Upgrade, 0, len(sigils)*(len(sigils)-1)/2)
	for i := 0; i < len(sigils); i++ {
		for j := i + 1; j < len(sigils); j++ {
			out = append(out, []data.Upgrade{sigils[i], sigils[j]})
		}
	}
	return out
}

// FilterByRole narrows items to the ones serving mask, in tiers:
// items carrying any of mask; for non-dps masks, items that are not offense-only;
// otherwise all items. A zero mask keeps everything.
func FilterByRole(items []data.Upgrade, mask data.RoleFlags) []data.Upgrade {
	if mask == 0 {
		return items
	}
	if out := filterUpgrades(items, func(f data.RoleFlags) bool { return f.Has(mask) }); len(out) > 0 {
		return out
	}
	if !mask.HasDPS() {
		if out := filterUpgrades(items, func(f data.RoleFlags) bool { return !f.PureDPS() }); len(out) > 0 {
			return out
		}
	}
	return items
}

func filterUpgrades(items []data.Upgrade, keep func(data.RoleFlags) bool) []data.Upgrade {
	out := make([]data.Upgrade, 0, len(items))
	for _, u := range items {
		if keep(u.Flags) {
			out = append(out, u)
		}
	}
	return out
}

// baseline is the un-upgraded reference every candidate is compared to.
type baseline struct {
	base     model.StatBundle
	rotation []combat.RotationSkill
	ctx      model.CombatContext
	derived  model.DerivedAttributes
	damage   float64
}

func newBaseline(base model.StatBundle, rotation []combat.RotationSkill, ctx model.CombatContext) (baseline, error) {
	d := combat.ResolveAttributes(base, nil, ctx)
	est, err := combat.EstimateRotation(d, rotation)
	if err != nil {
		return baseline{}, fmt.Errorf("baseline rotation: %w", err)
	}
	return baseline{base: base, rotation: rotation, ctx: ctx, derived: d, damage: est.Total}, nil
}

func (b baseline) score(c combo, blend ScoreBlend) (Candidate, error) {
	d := combat.ResolveAttributes(b.base, c.modifiers(), b.ctx)
	est, err := combat.EstimateRotation(d, b.rotation)
	if err != nil {
		return Candidate{}, err
	}

	bd := Breakdown{
		Offense: ratio(est.Total, b.damage),
		Survivability: (ratio(d.MaxHealth, b.derived.MaxHealth)+ratio(d.Toughness, b.derived.Toughness))/2*
			(1+d.IncomingHealing)/(1+b.derived.IncomingHealing),
		Healing: ratio(d.HealingPower+healingPivot, b.derived.HealingPower+healingPivot) *
			(1 + d.OutgoingHealing) / (1 + b.derived.OutgoingHealing),
		Boon: (1 + d.BoonDuration) / (1 + b.derived.BoonDuration),
	}
	total := blend.total()
	score := (blend.Offense*bd.Offense +
		blend.Survivability*bd.Survivability +
		blend.Healing*bd.Healing +
		blend.Boon*bd.Boon) / total

	cand := Candidate{
		Rune:      c.rune.Name,
		Stats:     d.Totals,
		Derived:   d,
		Score:     score,
		Breakdown: bd,
	}
	for _, sg := range c.sigils {
		cand.Sigils = append(cand.Sigils, sg.Name)
	}
	if c.relic != nil {
		cand.Relic = c.relic.Name
	}
	return cand, nil
}

// ratio is v/ref, or 1 when the reference is not positive.
func ratio(v, ref float64) float64 {
	if ref <= 0 {
		return 1
	}
	return v / ref
}
