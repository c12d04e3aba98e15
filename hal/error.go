package hal

import "errors"

// Sentinel errors for the core's error kinds (§7). The Vulkan backend
// returns ErrDeviceLost from fence waits that observe VK_ERROR_DEVICE_LOST,
// ErrSurfaceOutdated from swapchain acquire/present and a wrapped ErrTimeout
// from expired fence waits; its other failures are descriptive errors that
// carry the Vulkan result code. Internal marks a contract violation that
// call sites panic on rather than propagate.
var (
	// ErrValidation indicates the caller supplied invalid arguments: an
	// out-of-range offset, an unsupported usage combination, or a required
	// handle that was null.
	ErrValidation = errors.New("hal: validation error")

	// ErrOutOfMemory indicates a host or device allocation failed.
	ErrOutOfMemory = errors.New("hal: out of memory")

	// ErrDeviceLost indicates the underlying device is gone. It is
	// returned by the wait that observes the loss; the state is not
	// latched, so later operations do not fail with it on that account,
	// and in-flight serials are not marked completed.
	ErrDeviceLost = errors.New("hal: device lost")

	// ErrSurfaceLost indicates the presentation surface has been
	// destroyed and cannot be recovered; a new swapchain must be created.
	ErrSurfaceLost = errors.New("hal: surface lost")

	// ErrSurfaceOutdated indicates AcquireNextTexture needs the swapchain
	// recreated (window resize, OUT_OF_DATE from the driver).
	ErrSurfaceOutdated = errors.New("hal: surface outdated")

	// ErrTimeout indicates a bounded Wait expired before its target serial
	// completed.
	ErrTimeout = errors.New("hal: timeout")

	// ErrInternal marks a contract violation inside the core (a serial
	// pushed out of order). Detected violations panic; this sentinel exists so a
	// driver failure with no better classification can still be compared
	// with errors.Is.
	ErrInternal = errors.New("hal: internal error")
)
