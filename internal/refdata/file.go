package refdata

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// referenceFile is the YAML layout of a reference-data dump.
type referenceFile struct {
	Specializations []struct {
		ID          int    `yaml:"id"`
		Name        string `yaml:"name"`
		Profession  string `yaml:"profession"`
		Elite       bool   `yaml:"elite"`
		MajorTraits []int  `yaml:"major_traits"`
	} `yaml:"specializations"`
	Palettes map[string]map[int]int `yaml:"palettes"`
}

// LoadFile fills a Memory source from a YAML dump.
func LoadFile(path string) (*Memory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference data %s: %w", path, err)
	}

	var f referenceFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing reference data %s: %w", path, err)
	}

	m := NewMemory()
	for _, s := range f.Specializations {
		m.PutSpecialization(Specialization{
			ID:          s.ID,
			Name:        s.Name,
			Profession:  s.Profession,
			Elite:       s.Elite,
			MajorTraits: s.MajorTraits,
		})
	}
	for prof, palette := range f.Palettes {
		m.PutPalette(prof, palette)
	}

	specs, palettes := m.Len()
	slog.Info("loaded reference data", "file", path, "specializations", specs, "palettes", palettes)
	return m, nil
}
