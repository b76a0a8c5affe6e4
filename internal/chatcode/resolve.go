package chatcode

import (
	"github.com/udisondev/buildcraft/internal/model"
	"github.com/udisondev/buildcraft/internal/refdata"
)

// DecodedBuild is the resolved content of a build code.
type DecodedBuild struct {
	ProfessionCode   uint8  `json:"profession_code"`
	Profession       string `json:"profession,omitempty"`
	SpecializationID *int   `json:"specialization_id,omitempty"`
	TraitIDs         []int  `json:"trait_ids"`
	SkillIDs         []int  `json:"skill_ids"`

	// Counts of elements that could not be resolved; strict callers compare these to zero.
	UnresolvedTraits int `json:"unresolved_traits"`
	UnresolvedSkills int `json:"unresolved_skills"`
}

// References is the reference data fetched for one template.
// Missing entries are allowed and degrade the result.
type References struct {
	Specializations map[int]refdata.Specialization
	Palette         map[int]int
}

// Resolve turns a parsed template into a DecodedBuild using already fetched reference data.
// Pure: no I/O, no mutation of t or refs.
func Resolve(t Template, refs References) DecodedBuild {
	out := DecodedBuild{
		ProfessionCode: t.ProfessionCode,
		TraitIDs:       []int{},
		SkillIDs:       []int{},
	}
	if p, ok := model.ProfessionByCode(t.ProfessionCode); ok {
		out.Profession = p.Name
	}

	var primary int
	traits := newOrderedSet()

	for _, line := range t.Lines {
		if line.SpecializationID == 0 {
			continue
		}
		id := int(line.SpecializationID)
		if primary == 0 {
			primary = id
		}

		spec, ok := refs.Specializations[id]
		if !ok {
			for _, c := range line.Choices {
				if c != ChoiceNone {
					out.UnresolvedTraits++
				}
			}
			continue
		}
		if spec.Elite {
			primary = id
		}

		for tier, c := range line.Choices {
			if c == ChoiceNone {
				continue
			}
			idx := tier*TierCount + int(c-1)
			if idx >= len(spec.MajorTraits) {
				out.UnresolvedTraits++
				continue
			}
			traits.add(spec.MajorTraits[idx])
		}
	}

	if primary != 0 {
		out.SpecializationID = &primary
	}
	out.TraitIDs = traits.items

	skills := newOrderedSet()
	for _, pid := range t.Palette {
		if pid == 0 {
			continue
		}
		skillID, ok := refs.Palette[int(pid)]
		if !ok {
			out.UnresolvedSkills++
			continue
		}
		skills.add(skillID)
	}
	out.SkillIDs = skills.items

	return out
}

// orderedSet de-duplicates keeping the first occurrence.
type orderedSet struct {
	seen  map[int]struct{}
	items []int
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[int]struct{}), items: []int{}}
}

func (s *orderedSet) add(v int) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}
