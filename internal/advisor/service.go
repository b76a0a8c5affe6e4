// Package advisor is the public facade: build decoding, attribute resolution,
// damage estimation and equipment search behind one service.
package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/udisondev/buildcraft/internal/chatcode"
	"github.com/udisondev/buildcraft/internal/data"
	"github.com/udisondev/buildcraft/internal/game/combat"
	"github.com/udisondev/buildcraft/internal/gear"
	"github.com/udisondev/buildcraft/internal/metrics"
	"github.com/udisondev/buildcraft/internal/model"
	"github.com/udisondev/buildcraft/internal/refdata"
)

// Operation names used as metric labels.
const (
	OpDecodeBuild          = "decode_build"
	OpResolveAttributes    = "resolve_attributes"
	OpEstimateDamage       = "estimate_damage"
	OpGenerateEquipmentSet = "generate_equipment_set"
	OpOptimizeBuild        = "optimize_build"
	OpOptimizeBuildTopK    = "optimize_build_top_k"
)

// Options configures a Service. Zero values select defaults.
type Options struct {
	Catalog      *data.Catalog  // nil → data.DefaultCatalog()
	Source       refdata.Source // nil → decode without reference data
	Profiles     gear.Profiles  // nil → gear.DefaultProfiles()
	FetchTimeout time.Duration
	Workers      int
	Context      model.CombatContext // boons/conditions upgrade candidates are scored under
	Metrics      *metrics.Metrics
}

// Service is safe for concurrent use; all state is read-only after New.
type Service struct {
	catalog *data.Catalog
	decoder *chatcode.Decoder
	armor   *gear.GreedyArmor
	search  *gear.UpgradeSearch
	metrics *metrics.Metrics
}

// New builds a Service.
func New(opts Options) *Service {
	cat := opts.Catalog
	if cat == nil {
		cat = data.DefaultCatalog()
	}
	profiles := opts.Profiles
	if profiles == nil {
		profiles = gear.DefaultProfiles()
	}

	return &Service{
		catalog: cat,
		decoder: chatcode.NewDecoder(opts.Source, opts.FetchTimeout),
		armor:   gear.NewGreedyArmor(cat, profiles),
		search: gear.NewUpgradeSearch(cat, profiles,
			gear.WithWorkers(opts.Workers),
			gear.WithCombatContext(opts.Context)),
		metrics: opts.Metrics,
	}
}

// Catalog returns the stat catalog the service searches.
func (s *Service) Catalog() *data.Catalog { return s.catalog }

// Strategies returns the equipment strategies in preference order.
func (s *Service) Strategies() []gear.EquipmentStrategy {
	return []gear.EquipmentStrategy{s.armor, s.search}
}

// DecodeBuild decodes a build code. Only malformed codes fail.
func (s *Service) DecodeBuild(ctx context.Context, code string) (b chatcode.DecodedBuild, err error) {
	defer s.observe(OpDecodeBuild, time.Now(), &err)

	b, err = s.decoder.Decode(ctx, code)
	if err != nil {
		return chatcode.DecodedBuild{}, fmt.Errorf("decoding build code: %w", err)
	}
	s.metrics.Unresolved(b.UnresolvedTraits, b.UnresolvedSkills)
	return b, nil
}

// ResolveAttributes folds base stats, modifiers and combat context.
func (s *Service) ResolveAttributes(base model.StatBundle, mods []model.Modifier, ctx model.CombatContext) model.DerivedAttributes {
	defer s.metrics.Observe(OpResolveAttributes, time.Now(), nil)
	return combat.ResolveAttributes(base, mods, ctx)
}

// EstimateDamage computes the damage breakdown of a single hit.
func (s *Service) EstimateDamage(in combat.DamageInput) (b combat.DamageBreakdown, err error) {
	defer s.observe(OpEstimateDamage, time.Now(), &err)
	return combat.EstimateDamage(in)
}

// GenerateEquipmentSet runs the greedy armor solver. Role, mode and experience are parsed here.
func (s *Service) GenerateEquipmentSet(role, profession, specialization, mode, experience string) (res gear.EquipmentResult, err error) {
	defer s.observe(OpGenerateEquipmentSet, time.Now(), &err)

	r, err := gear.ParseRole(role)
	if err != nil {
		return gear.EquipmentResult{}, err
	}
	m, err := gear.ParseMode(mode)
	if err != nil {
		return gear.EquipmentResult{}, err
	}
	e, err := gear.ParseExperience(experience)
	if err != nil {
		return gear.EquipmentResult{}, err
	}
	return s.armor.GenerateEquipmentSet(r, profession, specialization, m, e)
}

// OptimizeBuild returns the best rune/sigil/relic candidate for role.
func (s *Service) OptimizeBuild(base model.StatBundle, rotation []combat.RotationSkill, role string) (c gear.Candidate, err error) {
	defer s.observe(OpOptimizeBuild, time.Now(), &err)

	r, err := gear.ParseRole(role)
	if err != nil {
		return gear.Candidate{}, err
	}
	return s.search.OptimizeBuild(base, rotation, r)
}

// OptimizeBuildTopK returns the k best candidates for role, best first.
func (s *Service) OptimizeBuildTopK(base model.StatBundle, rotation []combat.RotationSkill, role string, k int) (out []gear.Candidate, err error) {
	defer s.observe(OpOptimizeBuildTopK, time.Now(), &err)

	r, err := gear.ParseRole(role)
	if err != nil {
		return nil, err
	}
	out, err = s.search.OptimizeBuildTopK(base, rotation, r, k)
	if err != nil {
		return nil, err
	}
	s.metrics.Candidates(len(out))
	return out, nil
}

func (s *Service) observe(op string, start time.Time, err *error) {
	s.metrics.Observe(op, start, *err)
}
