package main

import (
	"errors"
	"fmt"
	"runtime"
)

// MaxWorkers bounds --workers. Parsing is CPU bound, so more workers than
// cores only adds scheduling overhead.
const MaxWorkers = 8

// ErrInvalidWorkerCount is returned for --workers outside 0..MaxWorkers.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers returns the worker count: explicit value if > 0,
// otherwise GOMAXPROCS/2 clamped to [1, MaxWorkers].
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	auto := runtime.GOMAXPROCS(0) / 2
	if auto < 1 {
		return 1
	}
	if auto > MaxWorkers {
		return MaxWorkers
	}
	return auto
}
