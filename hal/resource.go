package hal

// Resource is the base interface for all GPU resources.
// Resources must be explicitly destroyed to free GPU memory.
type Resource interface {
	// Destroy releases the GPU resource.
	// After this call, the resource must not be used.
	// Calling Destroy multiple times is undefined behavior.
	Destroy()
}

// Buffer represents a GPU buffer.
// Buffers are contiguous memory regions accessible by the GPU.
type Buffer interface {
	Resource
}

// Texture represents a GPU texture.
// Textures are multi-dimensional images with specific formats.
type Texture interface {
	Resource
}

// TextureView represents a view into a texture.
// Views specify how a texture is interpreted (format, dimensions, layers).
type TextureView interface {
	Resource
}

// Sampler represents a texture sampler.
// Samplers define how textures are filtered and addressed.
type Sampler interface {
	Resource
}

// ShaderModule represents a compiled shader module.
type ShaderModule interface {
	Resource
}

// BindSetLayout defines the layout of a bind set: the binding slots a
// pipeline expects, without the actual resources bound to them.
type BindSetLayout interface {
	Resource
}

// BindSet associates concrete resources with a BindSetLayout's slots.
type BindSet interface {
	Resource
}

// PipelineLayout defines the bind-set layouts used by a pipeline.
type PipelineLayout interface {
	Resource
}

// CommandBuffer holds recorded GPU commands produced by a CommandEncoder's
// Finish. Immutable once produced; submit it to a Queue to execute it.
type CommandBuffer interface {
	Resource
}

// Fence is a host-waitable GPU/CPU synchronization point, used outside a
// queue's own submission timeline (e.g. per-frame-in-flight throttling).
type Fence interface {
	Resource
}
