package hal_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/redwarx/rhi/hal"
)

type wrappedError struct {
	err error
}

func (w *wrappedError) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrappedError) Unwrap() error { return w.err }

func TestSentinelErrorsAreComparable(t *testing.T) {
	sentinels := []error{
		hal.ErrValidation,
		hal.ErrOutOfMemory,
		hal.ErrDeviceLost,
		hal.ErrSurfaceLost,
		hal.ErrSurfaceOutdated,
		hal.ErrTimeout,
		hal.ErrInternal,
	}

	for _, want := range sentinels {
		t.Run(want.Error(), func(t *testing.T) {
			if want == nil {
				t.Fatal("sentinel must not be nil")
			}
			wrapped := fmt.Errorf("create buffer: %w", want)
			if !errors.Is(wrapped, want) {
				t.Errorf("errors.Is did not find %v in wrapped error", want)
			}
			if !errors.Is(&wrappedError{err: want}, want) {
				t.Errorf("errors.Is did not find %v in custom Unwrap chain", want)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := map[string]error{
		"Validation":      hal.ErrValidation,
		"OutOfMemory":     hal.ErrOutOfMemory,
		"DeviceLost":      hal.ErrDeviceLost,
		"SurfaceLost":     hal.ErrSurfaceLost,
		"SurfaceOutdated": hal.ErrSurfaceOutdated,
		"Timeout":         hal.ErrTimeout,
		"Internal":        hal.ErrInternal,
	}

	for aName, a := range sentinels {
		for bName, b := range sentinels {
			if aName == bName {
				continue
			}
			if errors.Is(a, b) {
				t.Errorf("%s should not match %s", aName, bName)
			}
		}
	}
}
