// Package refdata provides the reference data (specializations, skill palettes)
// needed to resolve decoded build codes.
package refdata

import (
	"context"
	"errors"
)

// ErrNotFound is returned by sources for unknown ids or professions.
var ErrNotFound = errors.New("reference data not found")

// Specialization describes a trait line.
type Specialization struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Profession  string `json:"profession"`
	Elite       bool   `json:"elite"`
	MajorTraits []int  `json:"major_traits"` // 9 ids: adept top/mid/bottom, master ..., grandmaster ...
}

// Source is the reference-data collaborator consumed by the build decoder.
// Implementations must be safe for concurrent use.
type Source interface {
	Specialization(ctx context.Context, id int) (Specialization, error)
	ProfessionPalette(ctx context.Context, profession string) (map[int]int, error)
}
