package testutil

import "errors"

// ErrSimulated is returned by failing test doubles.
var ErrSimulated = errors.New("simulated error for testing")
