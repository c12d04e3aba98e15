// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Dispatchable and non-dispatchable Vulkan handles. Both are modeled as a
// 64-bit opaque value: goffi marshals them as u64 regardless of whether the
// underlying driver handle is a pointer (dispatchable) or a 64-bit integer
// (non-dispatchable) — see signatures.go's u64 TypeDescriptor use for every
// handle parameter.
type (
	Instance       uint64
	PhysicalDevice uint64
	Device         uint64
	Queue          uint64
	CommandBuffer  uint64

	CommandPool         uint64
	Buffer              uint64
	Image               uint64
	ImageView           uint64
	BufferView          uint64
	DeviceMemory        uint64
	Semaphore           uint64
	Fence               uint64
	Event               uint64
	QueryPool           uint64
	ShaderModule        uint64
	PipelineCache       uint64
	Pipeline            uint64
	PipelineLayout      uint64
	Sampler             uint64
	DescriptorSetLayout uint64
	DescriptorPool      uint64
	DescriptorSet       uint64
	Framebuffer         uint64
	RenderPass          uint64

	SurfaceKHR       uint64
	SwapchainKHR     uint64
	DebugUtilsMessengerEXT uint64

	XlibWindow uint64
)

// Result mirrors VkResult.
type Result int32

const (
	Success                    Result = 0
	NotReady                   Result = 1
	Timeout                    Result = 2
	EventSet                   Result = 3
	EventReset                 Result = 4
	Incomplete                 Result = 5
	ErrorOutOfHostMemory       Result = -1
	ErrorOutOfDeviceMemory     Result = -2
	ErrorInitializationFailed  Result = -3
	ErrorDeviceLost            Result = -4
	ErrorMemoryMapFailed       Result = -5
	ErrorLayerNotPresent       Result = -6
	ErrorExtensionNotPresent   Result = -7
	ErrorFeatureNotPresent     Result = -8
	ErrorIncompatibleDriver    Result = -9
	ErrorSurfaceLostKHR        Result = -1000000000
	ErrorNativeWindowInUseKHR  Result = -1000000001
	SuboptimalKHR              Result = 1000001003
	ErrorOutOfDateKHR          Result = -1000001004
)

// Bool32 mirrors VkBool32 (a uint32-width boolean).
type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

func BoolToVk(b bool) Bool32 {
	if b {
		return True
	}
	return False
}

// DeviceSize mirrors VkDeviceSize.
type DeviceSize uint64

// StructureType mirrors VkStructureType, restricted to the subset this core
// issues. Extension-specific values live in const_ext.go.
type StructureType uint32

const (
	StructureTypeApplicationInfo                StructureType = 0
	StructureTypeInstanceCreateInfo             StructureType = 1
	StructureTypeDeviceQueueCreateInfo          StructureType = 2
	StructureTypeDeviceCreateInfo               StructureType = 3
	StructureTypeSubmitInfo                     StructureType = 4
	StructureTypeMemoryAllocateInfo             StructureType = 5
	StructureTypeFenceCreateInfo                StructureType = 8
	StructureTypeSemaphoreCreateInfo            StructureType = 9
	StructureTypeBufferCreateInfo               StructureType = 12
	StructureTypeBufferViewCreateInfo           StructureType = 13
	StructureTypeImageCreateInfo                StructureType = 14
	StructureTypeImageViewCreateInfo            StructureType = 15
	StructureTypeShaderModuleCreateInfo         StructureType = 16
	StructureTypePipelineCacheCreateInfo        StructureType = 17
	StructureTypePipelineLayoutCreateInfo       StructureType = 30
	StructureTypeGraphicsPipelineCreateInfo     StructureType = 28
	StructureTypeComputePipelineCreateInfo      StructureType = 29
	StructureTypeSamplerCreateInfo              StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo  StructureType = 32
	StructureTypeDescriptorPoolCreateInfo       StructureType = 33
	StructureTypeDescriptorSetAllocateInfo      StructureType = 34
	StructureTypeWriteDescriptorSet             StructureType = 35
	StructureTypeCopyDescriptorSet              StructureType = 36
	StructureTypeFramebufferCreateInfo          StructureType = 37
	StructureTypeRenderPassCreateInfo           StructureType = 38
	StructureTypeCommandPoolCreateInfo          StructureType = 39
	StructureTypeCommandBufferAllocateInfo      StructureType = 40
	StructureTypeCommandBufferBeginInfo         StructureType = 42
	StructureTypeMemoryBarrier                  StructureType = 46
	StructureTypeBufferMemoryBarrier            StructureType = 44
	StructureTypeImageMemoryBarrier             StructureType = 45
	StructureTypeMemoryBarrier2                 StructureType = 1000314000
	StructureTypeBufferMemoryBarrier2           StructureType = 1000314001
	StructureTypeImageMemoryBarrier2            StructureType = 1000314002
	StructureTypeDependencyInfo                 StructureType = 1000314003
	StructureTypeSemaphoreSubmitInfo            StructureType = 1000314005
	StructureTypeCommandBufferSubmitInfo        StructureType = 1000314006
	StructureTypeSubmitInfo2                    StructureType = 1000314004
	StructureTypeSwapchainCreateInfoKHR         StructureType = 1000001000
	StructureTypePresentInfoKHR                 StructureType = 1000001001
	StructureTypeWin32SurfaceCreateInfoKHR      StructureType = 1000009000
	StructureTypeXlibSurfaceCreateInfoKHR       StructureType = 1000004000
	StructureTypeWaylandSurfaceCreateInfoKHR    StructureType = 1000006000
	StructureTypeMetalSurfaceCreateInfoEXT      StructureType = 1000217000
	StructureTypeDebugUtilsMessengerCreateInfoEXT StructureType = 1000128004
	StructureTypeDebugUtilsObjectNameInfoEXT    StructureType = 1000128000
	StructureTypeQueryPoolCreateInfo            StructureType = 11
)

// Format mirrors VkFormat (the subset textureFormatMap uses plus
// FormatUndefined).
type Format uint32

// ImageType mirrors VkImageType.
type ImageType uint32

const (
	ImageType1d ImageType = 0
	ImageType2d ImageType = 1
	ImageType3d ImageType = 2
)

// ImageViewType mirrors VkImageViewType.
type ImageViewType uint32

const (
	ImageViewType1d        ImageViewType = 0
	ImageViewType2d        ImageViewType = 1
	ImageViewType3d        ImageViewType = 2
	ImageViewTypeCube      ImageViewType = 3
	ImageViewType1dArray   ImageViewType = 4
	ImageViewType2dArray   ImageViewType = 5
	ImageViewTypeCubeArray ImageViewType = 6
)

// ImageTiling mirrors VkImageTiling.
type ImageTiling uint32

const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

// ImageLayout mirrors VkImageLayout, restricted to the layouts the usage
// table in spec §4.4 maps to.
type ImageLayout uint32

const (
	ImageLayoutUndefined                     ImageLayout = 0
	ImageLayoutGeneral                       ImageLayout = 1
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPresentSrcKHR                 ImageLayout = 1000001002
)

// SharingMode mirrors VkSharingMode.
type SharingMode uint32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

// SampleCountFlagBits mirrors VkSampleCountFlagBits.
type SampleCountFlagBits uint32

const (
	SampleCount1Bit  SampleCountFlagBits = 1
	SampleCount2Bit  SampleCountFlagBits = 2
	SampleCount4Bit  SampleCountFlagBits = 4
	SampleCount8Bit  SampleCountFlagBits = 8
	SampleCount16Bit SampleCountFlagBits = 16
)

// ImageAspectFlags mirrors VkImageAspectFlags.
type ImageAspectFlags uint32

const (
	ImageAspectColorBit   ImageAspectFlags = 1
	ImageAspectDepthBit   ImageAspectFlags = 2
	ImageAspectStencilBit ImageAspectFlags = 4
	ImageAspectPlane0Bit  ImageAspectFlags = 0x10
	ImageAspectPlane1Bit  ImageAspectFlags = 0x20
	ImageAspectPlane2Bit  ImageAspectFlags = 0x40
)

// BufferUsageFlags / BufferUsageFlagBits mirror VkBufferUsageFlags.
type BufferUsageFlags uint32
type BufferUsageFlagBits = BufferUsageFlags

const (
	BufferUsageTransferSrcBit   BufferUsageFlagBits = 1 << 0
	BufferUsageTransferDstBit   BufferUsageFlagBits = 1 << 1
	BufferUsageUniformBufferBit BufferUsageFlagBits = 1 << 4
	BufferUsageStorageBufferBit BufferUsageFlagBits = 1 << 5
	BufferUsageIndexBufferBit   BufferUsageFlagBits = 1 << 6
	BufferUsageVertexBufferBit  BufferUsageFlagBits = 1 << 7
	BufferUsageIndirectBufferBit BufferUsageFlagBits = 1 << 8
)

// ImageUsageFlags / ImageUsageFlagBits mirror VkImageUsageFlags.
type ImageUsageFlags uint32
type ImageUsageFlagBits = ImageUsageFlags

const (
	ImageUsageTransferSrcBit         ImageUsageFlagBits = 1 << 0
	ImageUsageTransferDstBit         ImageUsageFlagBits = 1 << 1
	ImageUsageSampledBit             ImageUsageFlagBits = 1 << 2
	ImageUsageStorageBit             ImageUsageFlagBits = 1 << 3
	ImageUsageColorAttachmentBit     ImageUsageFlagBits = 1 << 4
	ImageUsageDepthStencilAttachmentBit ImageUsageFlagBits = 1 << 5
)

// AccessFlags2 / PipelineStageFlags2 mirror the synchronization2 bitmasks
// (64-bit in Vulkan; kept 64-bit here since VkAccessFlags2/
// VkPipelineStageFlags2 are used exclusively by this core's barrier path).
type AccessFlags2 uint64
type PipelineStageFlags2 uint64

const (
	AccessNone                   AccessFlags2 = 0
	AccessTransferReadBit        AccessFlags2 = 1 << 11
	AccessTransferWriteBit       AccessFlags2 = 1 << 12
	AccessShaderReadBit          AccessFlags2 = 1 << 5
	AccessShaderWriteBit         AccessFlags2 = 1 << 6
	AccessUniformReadBit         AccessFlags2 = 1 << 3
	AccessIndexReadBit           AccessFlags2 = 1 << 1
	AccessVertexAttributeReadBit AccessFlags2 = 1 << 2
	AccessIndirectCommandReadBit AccessFlags2 = 1 << 0
	AccessColorAttachmentReadBit AccessFlags2 = 1 << 7
	AccessColorAttachmentWriteBit AccessFlags2 = 1 << 8
	AccessDepthStencilAttachmentReadBit  AccessFlags2 = 1 << 9
	AccessDepthStencilAttachmentWriteBit AccessFlags2 = 1 << 10
	AccessHostReadBit            AccessFlags2 = 1 << 13
	AccessHostWriteBit           AccessFlags2 = 1 << 14
	AccessMemoryReadBit          AccessFlags2 = 1 << 15
	AccessMemoryWriteBit         AccessFlags2 = 1 << 16
)

const (
	PipelineStageNone                  PipelineStageFlags2 = 0
	PipelineStageTopOfPipeBit          PipelineStageFlags2 = 1 << 0
	PipelineStageBottomOfPipeBit       PipelineStageFlags2 = 1 << 13
	PipelineStageAllCommandsBit        PipelineStageFlags2 = 1 << 16
	PipelineStageTransferBit           PipelineStageFlags2 = 1 << 12
	PipelineStageVertexInputBit        PipelineStageFlags2 = 1 << 2
	PipelineStageVertexShaderBit       PipelineStageFlags2 = 1 << 3
	PipelineStageFragmentShaderBit     PipelineStageFlags2 = 1 << 7
	PipelineStageComputeShaderBit      PipelineStageFlags2 = 1 << 11
	PipelineStageColorAttachmentOutputBit PipelineStageFlags2 = 1 << 10
	PipelineStageEarlyFragmentTestsBit PipelineStageFlags2 = 1 << 8
	PipelineStageLateFragmentTestsBit  PipelineStageFlags2 = 1 << 9
	PipelineStageDrawIndirectBit       PipelineStageFlags2 = 1 << 1
	PipelineStageHostBit               PipelineStageFlags2 = 1 << 14
)

// PipelineStageFlagBits mirrors the (non-2) VkPipelineStageFlagBits used by
// vkCmdWriteTimestamp's manual wrapper.
type PipelineStageFlagBits uint32

// QueryResultFlags mirrors VkQueryResultFlags.
type QueryResultFlags uint32

const (
	QueryResult64Bit QueryResultFlags = 1
	QueryResultWaitBit QueryResultFlags = 2
)

// DescriptorType mirrors VkDescriptorType.
type DescriptorType uint32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeInputAttachment      DescriptorType = 10
)

// DescriptorPoolCreateFlags mirrors VkDescriptorPoolCreateFlags.
type DescriptorPoolCreateFlags uint32

const (
	DescriptorPoolCreateFreeDescriptorSetBit DescriptorPoolCreateFlags = 1
)

// CommandPoolCreateFlags / bits mirror VkCommandPoolCreateFlags.
type CommandPoolCreateFlags uint32

const (
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 1
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 2
)

// CommandBufferLevel mirrors VkCommandBufferLevel.
type CommandBufferLevel uint32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

// CommandBufferUsageFlags mirrors VkCommandBufferUsageFlags.
type CommandBufferUsageFlags uint32

const (
	CommandBufferUsageOneTimeSubmitBit CommandBufferUsageFlags = 1
)

// SemaphoreType mirrors VkSemaphoreType.
type SemaphoreType uint32

const (
	SemaphoreTypeBinary   SemaphoreType = 0
	SemaphoreTypeTimeline SemaphoreType = 1
)

// PresentModeKHR mirrors VkPresentModeKHR.
type PresentModeKHR uint32

const (
	PresentModeImmediateKHR   PresentModeKHR = 0
	PresentModeMailboxKHR     PresentModeKHR = 1
	PresentModeFifoKHR        PresentModeKHR = 2
	PresentModeFifoRelaxedKHR PresentModeKHR = 3
)

// CompositeAlphaFlagBitsKHR mirrors VkCompositeAlphaFlagBitsKHR.
type CompositeAlphaFlagBitsKHR uint32

const (
	CompositeAlphaOpaqueBitKHR         CompositeAlphaFlagBitsKHR = 1
	CompositeAlphaPreMultipliedBitKHR  CompositeAlphaFlagBitsKHR = 2
	CompositeAlphaPostMultipliedBitKHR CompositeAlphaFlagBitsKHR = 4
	CompositeAlphaInheritBitKHR        CompositeAlphaFlagBitsKHR = 8
)

// ColorComponentFlags mirrors VkColorComponentFlags.
type ColorComponentFlags uint32

// CullModeFlags mirrors VkCullModeFlags.
type CullModeFlags uint32

// ShaderStageFlags mirrors VkShaderStageFlags.
type ShaderStageFlags uint32

const (
	ShaderStageVertexBit   ShaderStageFlags = 1
	ShaderStageFragmentBit ShaderStageFlags = 16
	ShaderStageComputeBit  ShaderStageFlags = 32
)

// QueueFlags mirrors VkQueueFlags.
type QueueFlags uint32

const (
	QueueGraphicsBit QueueFlags = 1
	QueueComputeBit  QueueFlags = 2
	QueueTransferBit QueueFlags = 4
)

// StencilFaceFlags mirrors VkStencilFaceFlags.
type StencilFaceFlags uint32

// MemoryPropertyFlags mirrors VkMemoryPropertyFlags.
type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocalBit  MemoryPropertyFlags = 1
	MemoryPropertyHostVisibleBit  MemoryPropertyFlags = 2
	MemoryPropertyHostCoherentBit MemoryPropertyFlags = 4
	MemoryPropertyHostCachedBit   MemoryPropertyFlags = 8
)

// MemoryHeapFlags mirrors VkMemoryHeapFlags.
type MemoryHeapFlags uint32

const (
	MemoryHeapDeviceLocalBit MemoryHeapFlags = 1
)

// SampleMask mirrors VkSampleMask.
type SampleMask uint32

// DebugUtilsMessageSeverityFlagBitsEXT / FlagsEXT mirror the EXT enum.
type DebugUtilsMessageSeverityFlagBitsEXT uint32
type DebugUtilsMessageSeverityFlagsEXT = DebugUtilsMessageSeverityFlagBitsEXT

const (
	DebugUtilsMessageSeverityVerboseBitEXT DebugUtilsMessageSeverityFlagBitsEXT = 1
	DebugUtilsMessageSeverityInfoBitEXT    DebugUtilsMessageSeverityFlagBitsEXT = 16
	DebugUtilsMessageSeverityWarningBitEXT DebugUtilsMessageSeverityFlagBitsEXT = 256
	DebugUtilsMessageSeverityErrorBitEXT   DebugUtilsMessageSeverityFlagBitsEXT = 4096
)

// DebugUtilsMessageTypeFlagBitsEXT / FlagsEXT mirror the EXT enum.
type DebugUtilsMessageTypeFlagBitsEXT uint32
type DebugUtilsMessageTypeFlagsEXT = DebugUtilsMessageTypeFlagBitsEXT

const (
	DebugUtilsMessageTypeGeneralBitEXT     DebugUtilsMessageTypeFlagBitsEXT = 1
	DebugUtilsMessageTypeValidationBitEXT  DebugUtilsMessageTypeFlagBitsEXT = 2
	DebugUtilsMessageTypePerformanceBitEXT DebugUtilsMessageTypeFlagBitsEXT = 4
)
