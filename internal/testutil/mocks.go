package testutil

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/udisondev/buildcraft/internal/refdata"
)

// FlakySource wraps a refdata.Source, failing selected lookups and counting calls.
type FlakySource struct {
	Next refdata.Source

	// FailSpecs lists specialization ids that return ErrSimulated.
	FailSpecs map[int]bool
	// FailPalette makes every palette lookup return ErrSimulated.
	FailPalette bool
	// Delay is applied to every call (honours ctx cancellation).
	Delay time.Duration

	calls       atomic.Int32
	mu          sync.Mutex
	maxInFlight int
	inFlight    int
}

// Calls returns the number of lookups performed.
func (f *FlakySource) Calls() int {
	return int(f.calls.Load())
}

// MaxInFlight returns the peak number of concurrent lookups.
func (f *FlakySource) MaxInFlight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxInFlight
}

func (f *FlakySource) enter(ctx context.Context) error {
	f.calls.Add(1)
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (f *FlakySource) leave() {
	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()
}

// Specialization implements refdata.Source.
func (f *FlakySource) Specialization(ctx context.Context, id int) (refdata.Specialization, error) {
	defer f.leave()
	if err := f.enter(ctx); err != nil {
		return refdata.Specialization{}, err
	}
	if f.FailSpecs[id] {
		return refdata.Specialization{}, ErrSimulated
	}
	return f.Next.Specialization(ctx, id)
}

// ProfessionPalette implements refdata.Source.
func (f *FlakySource) ProfessionPalette(ctx context.Context, profession string) (map[int]int, error) {
	defer f.leave()
	if err := f.enter(ctx); err != nil {
		return nil, err
	}
	if f.FailPalette {
		return nil, ErrSimulated
	}
	return f.Next.ProfessionPalette(ctx, profession)
}
