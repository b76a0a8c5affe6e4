package chatcode

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/buildcraft/internal/model"
	"github.com/udisondev/buildcraft/internal/refdata"
)

// DefaultFetchTimeout bounds the reference-data fetch of a single decode.
const DefaultFetchTimeout = 5 * time.Second

// Decoder decodes build codes and resolves them against a reference-data source.
// Safe for concurrent use.
type Decoder struct {
	src     refdata.Source
	timeout time.Duration
}

// NewDecoder creates a decoder. timeout <= 0 selects DefaultFetchTimeout.
func NewDecoder(src refdata.Source, timeout time.Duration) *Decoder {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Decoder{src: src, timeout: timeout}
}

// Decode parses code, fetches the reference data it needs and resolves it.
// Only format errors are returned; lookup failures degrade the result.
func (d *Decoder) Decode(ctx context.Context, code string) (DecodedBuild, error) {
	t, err := Parse(code)
	if err != nil {
		return DecodedBuild{}, err
	}

	refs := d.Fetch(ctx, t)
	return Resolve(t, refs), nil
}

// Fetch loads the specializations and the profession palette referenced by t.
// The lookups are independent and run concurrently; results merge after all complete.
// The decoder timeout wraps only this step.
func (d *Decoder) Fetch(ctx context.Context, t Template) References {
	refs := References{Specializations: make(map[int]refdata.Specialization, TraitLineCount)}
	if d.src == nil {
		return refs
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	requested := make(map[int]struct{}, TraitLineCount)
	for _, line := range t.Lines {
		if line.SpecializationID == 0 {
			continue
		}
		id := int(line.SpecializationID)
		if _, dup := requested[id]; dup {
			continue
		}
		requested[id] = struct{}{}

		wg.Go(func() {
			spec, err := d.src.Specialization(ctx, id)
			if err != nil {
				slog.Warn("specialization lookup failed", "id", id, "err", err)
				return
			}
			mu.Lock()
			refs.Specializations[id] = spec
			mu.Unlock()
		})
	}

	if prof, ok := model.ProfessionByCode(t.ProfessionCode); ok && hasPalette(t.Palette) {
		wg.Go(func() {
			palette, err := d.src.ProfessionPalette(ctx, prof.Name)
			if err != nil {
				slog.Warn("palette lookup failed", "profession", prof.Name, "err", err)
				return
			}
			mu.Lock()
			refs.Palette = palette
			mu.Unlock()
		})
	}

	// Lookup failures degrade to partial results.
	wg.Wait()
	return refs
}

func hasPalette(ids []uint16) bool {
	for _, id := range ids {
		if id != 0 {
			return true
		}
	}
	return false
}
