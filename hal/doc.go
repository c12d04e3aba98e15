// Package hal defines the resource marker interfaces, sentinel errors, and
// process-wide logger shared by the render hardware interface core and its
// Vulkan backend (hal/vulkan).
//
// # Resource Types
//
// All GPU resources (buffers, textures, bind sets, fences, etc.) implement
// the Resource interface, which provides a Destroy method. Resources must be
// explicitly destroyed to free GPU memory; Destroy is not reference counted
// except where a type's own doc comment says otherwise.
//
// # Error Handling
//
// Fallible operations return an error alongside a nil handle. The sentinel
// errors in error.go (ErrValidation, ErrOutOfMemory, ErrDeviceLost,
// ErrSurfaceLost, ErrSurfaceOutdated, ErrTimeout, ErrInternal) name the
// core's error kinds; the Vulkan backend returns ErrDeviceLost,
// ErrSurfaceOutdated and a wrapped ErrTimeout where they apply and reports
// other failures as descriptive errors. Validation errors are the caller's
// responsibility and are not re-checked once past the driver boundary; an
// out-of-order serial panics instead of returning ErrInternal.
//
// # Thread Safety
//
// Unless stated otherwise, hal.vulkan types are not internally synchronized
// against concurrent use from a single queue's recording path — callers must
// serialize recording on one queue themselves. Cross-queue structures (the
// descriptor allocator's pool list, a queue's deleter) are synchronized
// internally. SetLogger/Logger are always safe for concurrent use.
package hal
