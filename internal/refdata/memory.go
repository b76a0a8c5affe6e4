package refdata

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Memory is an in-process Source, filled at startup or in tests.
type Memory struct {
	mu       sync.RWMutex
	specs    map[int]Specialization
	palettes map[string]map[int]int
}

// NewMemory creates an empty in-memory source.
func NewMemory() *Memory {
	return &Memory{
		specs:    make(map[int]Specialization),
		palettes: make(map[string]map[int]int),
	}
}

// PutSpecialization stores a copy of spec.
func (m *Memory) PutSpecialization(spec Specialization) {
	spec.MajorTraits = slices.Clone(spec.MajorTraits)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.specs[spec.ID] = spec
}

// PutPalette stores a copy of the palette → skill map for a profession.
func (m *Memory) PutPalette(profession string, palette map[int]int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.palettes[strings.ToLower(profession)] = maps.Clone(palette)
}

// Specialization implements Source.
func (m *Memory) Specialization(_ context.Context, id int) (Specialization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	spec, ok := m.specs[id]
	if !ok {
		return Specialization{}, fmt.Errorf("specialization %d: %w", id, ErrNotFound)
	}
	spec.MajorTraits = slices.Clone(spec.MajorTraits)
	return spec, nil
}

// ProfessionPalette implements Source.
func (m *Memory) ProfessionPalette(_ context.Context, profession string) (map[int]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.palettes[strings.ToLower(profession)]
	if !ok {
		return nil, fmt.Errorf("palette for %q: %w", profession, ErrNotFound)
	}
	return maps.Clone(p), nil
}

// Len returns the number of stored specializations and palettes.
func (m *Memory) Len() (specs, palettes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.specs), len(m.palettes)
}

// Specializations returns a copy of every stored specialization ordered by id.
func (m *Memory) Specializations() []Specialization {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Specialization, 0, len(m.specs))
	for _, s := range m.specs {
		s.MajorTraits = slices.Clone(s.MajorTraits)
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Specialization) int { return a.ID - b.ID })
	return out
}

// Palettes returns a copy of every stored palette keyed by lower-case profession.
func (m *Memory) Palettes() map[string]map[int]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]map[int]int, len(m.palettes))
	for prof, p := range m.palettes {
		out[prof] = maps.Clone(p)
	}
	return out
}
