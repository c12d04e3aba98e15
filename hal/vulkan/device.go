// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/redwarx/rhi/hal"
	"github.com/redwarx/rhi/hal/vulkan/memory"
	"github.com/redwarx/rhi/hal/vulkan/vk"
	"github.com/redwarx/rhi/types"
)

// Device owns a VkDevice, its memory allocator, and the resources created
// from it. It is not bound to any hal interface; Queue and CommandEncoder
// are separate concrete types that reference it.
type Device struct {
	handle         vk.Device
	physicalDevice vk.PhysicalDevice
	instance       *Instance
	graphicsFamily uint32
	allocator      *memory.GpuAllocator
	cmds           *vk.Commands
	commandPool    vk.CommandPool // Primary command pool for encoder allocation
}

// NewDevice creates a logical device on the given adapter with a single
// graphics+compute queue, and requests the extensions this core depends on
// (timeline semaphores, synchronization2, dynamic rendering, swapchain).
func NewDevice(instance *Instance, adapter PhysicalDeviceInfo) (*Device, error) {
	if !adapter.HasGraphics {
		return nil, fmt.Errorf("vulkan: adapter has no combined graphics/compute queue family")
	}

	priority := float32(1.0)
	queueInfo := vk.DeviceQueueCreateInfo{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: adapter.GraphicsFamily,
		QueueCount:       1,
		PQueuePriorities: &priority,
	}

	timelineFeatures := vk.PhysicalDeviceTimelineSemaphoreFeatures{
		SType:             vk.StructureTypePhysicalDeviceTimelineSemaphoreFeatures,
		TimelineSemaphore: 1,
	}
	sync2Features := vk.PhysicalDeviceSynchronization2Features{
		SType:            vk.StructureTypePhysicalDeviceSynchronization2Features,
		PNext:            unsafe.Pointer(&timelineFeatures),
		Synchronization2: 1,
	}
	dynamicRenderingFeatures := vk.PhysicalDeviceDynamicRenderingFeatures{
		SType:            vk.StructureTypePhysicalDeviceDynamicRenderingFeatures,
		PNext:            unsafe.Pointer(&sync2Features),
		DynamicRendering: 1,
	}

	extensions := []*byte{cString("VK_KHR_swapchain")}
	createInfo := vk.DeviceCreateInfo{
		SType:                 vk.StructureTypeDeviceCreateInfo,
		PNext:                 unsafe.Pointer(&dynamicRenderingFeatures),
		QueueCreateInfoCount:  1,
		PQueueCreateInfos:     &queueInfo,
		EnabledExtensionCount: uint32(len(extensions)),
		PpEnabledExtensionNames: &extensions[0],
	}

	var handle vk.Device
	if res := instance.cmds.CreateDevice(adapter.Handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateDevice failed: %d", res)
	}

	cmds := vk.NewCommands()
	if err := cmds.LoadInstance(instance.handle); err != nil {
		instance.cmds.DestroyDevice(handle, nil)
		return nil, fmt.Errorf("vulkan: reload instance commands: %w", err)
	}
	if err := cmds.LoadDevice(handle); err != nil {
		instance.cmds.DestroyDevice(handle, nil)
		return nil, fmt.Errorf("vulkan: load device commands: %w", err)
	}

	d := &Device{
		handle:         handle,
		physicalDevice: adapter.Handle,
		instance:       instance,
		graphicsFamily: adapter.GraphicsFamily,
		cmds:           cmds,
	}
	if err := d.initAllocator(); err != nil {
		cmds.DestroyDevice(handle, nil)
		return nil, err
	}
	return d, nil
}

// initAllocator initializes the memory allocator for this device.
func (d *Device) initAllocator() error {
	var vkProps vk.PhysicalDeviceMemoryProperties
	d.instance.cmds.GetPhysicalDeviceMemoryProperties(d.physicalDevice, &vkProps)

	props := memory.DeviceMemoryProperties{
		MemoryTypes: make([]memory.MemoryType, vkProps.MemoryTypeCount),
		MemoryHeaps: make([]memory.MemoryHeap, vkProps.MemoryHeapCount),
	}

	for i := uint32(0); i < vkProps.MemoryTypeCount; i++ {
		props.MemoryTypes[i] = memory.MemoryType{
			PropertyFlags: vkProps.MemoryTypes[i].PropertyFlags,
			HeapIndex:     vkProps.MemoryTypes[i].HeapIndex,
		}
	}

	for i := uint32(0); i < vkProps.MemoryHeapCount; i++ {
		props.MemoryHeaps[i] = memory.MemoryHeap{
			Size:  uint64(vkProps.MemoryHeaps[i].Size),
			Flags: vkProps.MemoryHeaps[i].Flags,
		}
	}

	allocator, err := memory.NewGpuAllocator(d.handle, d.cmds, props, memory.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to create memory allocator: %w", err)
	}

	d.allocator = allocator
	return nil
}

// CreateBuffer creates a GPU buffer and binds it to freshly allocated device
// memory.
func (d *Device) CreateBuffer(desc *types.BufferDescriptor) (*Buffer, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: buffer descriptor is nil")
	}
	if desc.Size == 0 {
		return nil, fmt.Errorf("vulkan: buffer size must be > 0")
	}

	createInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(desc.Size),
		Usage:       bufferUsageToVk(desc.Usage),
		SharingMode: vk.SharingModeExclusive,
	}

	var buffer vk.Buffer
	if res := d.cmds.CreateBuffer(d.handle, &createInfo, nil, &buffer); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateBuffer failed: %d", res)
	}

	var memReqs vk.MemoryRequirements
	d.cmds.GetBufferMemoryRequirements(d.handle, buffer, &memReqs)

	memUsage := memory.UsageFastDeviceAccess
	if desc.Usage&(types.BufferUsageMapRead|types.BufferUsageMapWrite) != 0 {
		memUsage = memory.UsageHostAccess
		if desc.Usage&types.BufferUsageMapRead != 0 {
			memUsage |= memory.UsageDownload
		}
		if desc.Usage&types.BufferUsageMapWrite != 0 {
			memUsage |= memory.UsageUpload
		}
	}

	memBlock, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memUsage,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		d.cmds.DestroyBuffer(d.handle, buffer, nil)
		return nil, fmt.Errorf("vulkan: failed to allocate buffer memory: %w", err)
	}

	if res := d.cmds.BindBufferMemory(d.handle, buffer, memBlock.Memory, memBlock.Offset); res != vk.Success {
		_ = d.allocator.Free(memBlock)
		d.cmds.DestroyBuffer(d.handle, buffer, nil)
		return nil, fmt.Errorf("vulkan: vkBindBufferMemory failed: %d", res)
	}

	return &Buffer{
		handle:  buffer,
		memory:  memBlock,
		size:    desc.Size,
		usage:   desc.Usage,
		device:  d,
		tracker: &BufferTracker{},
	}, nil
}

// DestroyBuffer defers destruction of the buffer until every command list
// that last used it has retired on its owning queue.
func (d *Device) DestroyBuffer(buffer hal.Buffer) {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || vkBuffer == nil || vkBuffer.handle == 0 {
		return
	}

	serial, queue := vkBuffer.tracker.LastUsage()
	handle, block := vkBuffer.handle, vkBuffer.memory
	vkBuffer.handle = 0
	vkBuffer.memory = nil
	vkBuffer.device = nil

	if queue != nil && queue.deleter != nil {
		queue.deleter.DeferDestroyBuffer(serial, handle, block)
		return
	}
	// Never submitted anywhere: safe to free immediately.
	d.cmds.DestroyBuffer(d.handle, handle, nil)
	if block != nil {
		_ = d.allocator.Free(block)
	}
}

// CreateTexture creates a GPU texture and binds it to freshly allocated
// device-local memory.
func (d *Device) CreateTexture(desc *types.TextureDescriptor) (*Texture, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: texture descriptor is nil")
	}
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, fmt.Errorf("vulkan: texture size must be > 0")
	}

	depth := desc.Size.DepthOrArrayLayers
	if depth == 0 {
		depth = 1
	}
	mipLevels := desc.MipLevelCount
	if mipLevels == 0 {
		mipLevels = 1
	}
	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}

	createInfo := vk.ImageCreateInfo{
		SType:         vk.StructureTypeImageCreateInfo,
		ImageType:     textureDimensionToVkImageType(desc.Dimension),
		Format:        textureFormatToVk(desc.Format),
		Extent:        vk.Extent3D{Width: desc.Size.Width, Height: desc.Size.Height, Depth: depth},
		MipLevels:     mipLevels,
		ArrayLayers:   1, // TODO: array textures
		Samples:       vk.SampleCountFlagBits(samples),
		Tiling:        vk.ImageTilingOptimal,
		Usage:         textureUsageToVk(desc.Usage),
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	}

	var image vk.Image
	if res := d.cmds.CreateImage(d.handle, &createInfo, nil, &image); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateImage failed: %d", res)
	}

	var memReqs vk.MemoryRequirements
	d.cmds.GetImageMemoryRequirements(d.handle, image, &memReqs)

	memBlock, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memory.UsageFastDeviceAccess,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		d.cmds.DestroyImage(d.handle, image, nil)
		return nil, fmt.Errorf("vulkan: failed to allocate texture memory: %w", err)
	}

	if res := d.cmds.BindImageMemory(d.handle, image, memBlock.Memory, memBlock.Offset); res != vk.Success {
		_ = d.allocator.Free(memBlock)
		d.cmds.DestroyImage(d.handle, image, nil)
		return nil, fmt.Errorf("vulkan: vkBindImageMemory failed: %d", res)
	}

	return &Texture{
		handle:    image,
		memory:    memBlock,
		size:      Extent3D{Width: desc.Size.Width, Height: desc.Size.Height, Depth: depth},
		format:    desc.Format,
		usage:     desc.Usage,
		mipLevels: mipLevels,
		samples:   samples,
		dimension: desc.Dimension,
		device:    d,
		tracker:   NewTextureTracker(aspectsForFormat(desc.Format), 1, mipLevels),
	}, nil
}

// DestroyTexture defers destruction of the texture until every command list
// that last used it has retired.
func (d *Device) DestroyTexture(texture hal.Texture) {
	vkTexture, ok := texture.(*Texture)
	if !ok || vkTexture == nil || vkTexture.handle == 0 {
		return
	}

	handle, block, isExternal := vkTexture.handle, vkTexture.memory, vkTexture.isExternal
	serial, queue := vkTexture.tracker.lastUsageSerial, vkTexture.tracker.lastUsedQueue
	vkTexture.handle = 0
	vkTexture.memory = nil
	vkTexture.device = nil

	if isExternal {
		return // swapchain-owned, destroyed with the swapchain
	}
	if queue != nil && queue.deleter != nil {
		queue.deleter.DeferDestroyTexture(serial, handle, block, false)
		return
	}
	d.cmds.DestroyImage(d.handle, handle, nil)
	if block != nil {
		_ = d.allocator.Free(block)
	}
}

// CreateTextureView creates a view into a texture.
func (d *Device) CreateTextureView(texture *Texture, desc *types.TextureViewDescriptor) (*TextureView, error) {
	format := desc.Format
	if format == types.TextureFormatUndefined {
		format = texture.format
	}
	mipLevelCount := mipLevelCountOrRemaining(desc.MipLevelCount, texture.mipLevels, desc.BaseMipLevel)
	layerCount := arrayLayerCountOrRemaining(desc.ArrayLayerCount, 1, desc.BaseArrayLayer)

	createInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    texture.handle,
		ViewType: textureViewDimensionToVk(desc.Dimension),
		Format:   textureFormatToVk(format),
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     textureAspectToVk(desc.Aspect),
			BaseMipLevel:   desc.BaseMipLevel,
			LevelCount:     mipLevelCount,
			BaseArrayLayer: desc.BaseArrayLayer,
			LayerCount:     layerCount,
		},
	}

	var view vk.ImageView
	if res := d.cmds.CreateImageView(d.handle, &createInfo, nil, &view); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateImageView failed: %d", res)
	}

	return &TextureView{handle: view, texture: texture, device: d}, nil
}

// DestroyTextureView destroys a texture view.
func (d *Device) DestroyTextureView(view hal.TextureView) {
	vkView, ok := view.(*TextureView)
	if !ok || vkView == nil || vkView.handle == 0 {
		return
	}
	d.cmds.DestroyImageView(d.handle, vkView.handle, nil)
	vkView.handle = 0
	vkView.device = nil
}

// CreateSampler creates a texture sampler.
func (d *Device) CreateSampler(desc *types.SamplerDescriptor) (*Sampler, error) {
	createInfo := vk.SamplerCreateInfo{
		SType:            vk.StructureTypeSamplerCreateInfo,
		MagFilter:        filterModeToVk(desc.MagFilter),
		MinFilter:        filterModeToVk(desc.MinFilter),
		MipmapMode:       mipmapFilterModeToVk(desc.MipmapFilter),
		AddressModeU:     addressModeToVk(desc.AddressModeU),
		AddressModeV:     addressModeToVk(desc.AddressModeV),
		AddressModeW:     addressModeToVk(desc.AddressModeW),
		AnisotropyEnable: vk.BoolToVk(desc.MaxAnisotropy > 1),
		MaxAnisotropy:    float32(desc.MaxAnisotropy),
		CompareEnable:    vk.BoolToVk(desc.Compare != types.CompareFunctionUndefined),
		CompareOp:        compareFunctionToVk(desc.Compare),
		MinLod:           desc.LodMinClamp,
		MaxLod:           desc.LodMaxClamp,
	}

	var sampler vk.Sampler
	if res := d.cmds.CreateSampler(d.handle, &createInfo, nil, &sampler); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateSampler failed: %d", res)
	}
	return &Sampler{handle: sampler, device: d}, nil
}

// DestroySampler destroys a sampler.
func (d *Device) DestroySampler(sampler hal.Sampler) {
	vkSampler, ok := sampler.(*Sampler)
	if !ok || vkSampler == nil || vkSampler.handle == 0 {
		return
	}
	d.cmds.DestroySampler(d.handle, vkSampler.handle, nil)
	vkSampler.handle = 0
	vkSampler.device = nil
}

// CreateBindSetLayout creates a bind set layout and the fixed-pool
// descriptor allocator that serves bind sets of its shape.
func (d *Device) CreateBindSetLayout(desc *types.BindSetLayoutDescriptor) (*BindSetLayout, error) {
	bindings := make([]vk.DescriptorSetLayoutBinding, len(desc.Entries))
	var counts DescriptorCounts
	for i, entry := range desc.Entries {
		descType, n := descriptorTypeForEntry(entry)
		bindings[i] = vk.DescriptorSetLayoutBinding{
			Binding:         entry.Binding,
			DescriptorType:  descType,
			DescriptorCount: n,
			StageFlags:      shaderStagesToVk(entry.Visibility),
		}
		addDescriptorCount(&counts, descType, n)
	}

	createInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(bindings)),
	}
	if len(bindings) > 0 {
		createInfo.PBindings = &bindings[0]
	}

	var handle vk.DescriptorSetLayout
	if res := d.cmds.CreateDescriptorSetLayout(d.handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateDescriptorSetLayout failed: %d", res)
	}

	layout := &BindSetLayout{handle: handle, counts: counts, device: d}
	layout.allocator = NewDescriptorAllocator(d.handle, d.cmds, handle, counts)
	return layout, nil
}

// DestroyBindSetLayout destroys a bind set layout and its allocator.
func (d *Device) DestroyBindSetLayout(layout hal.BindSetLayout) {
	vkLayout, ok := layout.(*BindSetLayout)
	if !ok || vkLayout == nil || vkLayout.handle == 0 {
		return
	}
	if vkLayout.allocator != nil {
		vkLayout.allocator.Destroy()
	}
	d.cmds.DestroyDescriptorSetLayout(d.handle, vkLayout.handle, nil)
	vkLayout.handle = 0
	vkLayout.device = nil
}

// CreateBindSet allocates a descriptor set from its layout's allocator and
// writes the bound resources into it.
func (d *Device) CreateBindSet(desc *types.BindSetDescriptor, layout *BindSetLayout, resolve BindingResolver) (*BindSet, error) {
	alloc, err := layout.allocator.Allocate()
	if err != nil {
		return nil, fmt.Errorf("vulkan: descriptor allocation failed: %w", err)
	}

	writes := make([]vk.WriteDescriptorSet, 0, len(desc.Entries))
	bufferInfos := make([]vk.DescriptorBufferInfo, 0, len(desc.Entries))
	imageInfos := make([]vk.DescriptorImageInfo, 0, len(desc.Entries))

	for _, entry := range desc.Entries {
		switch res := entry.Resource.(type) {
		case types.BufferBinding:
			buf := resolve.Buffer(res.Buffer)
			size := res.Size
			if size == 0 {
				size = buf.size - res.Offset
			}
			bufferInfos = append(bufferInfos, vk.DescriptorBufferInfo{Buffer: buf.handle, Offset: vk.DeviceSize(res.Offset), Range: vk.DeviceSize(size)})
			writes = append(writes, vk.WriteDescriptorSet{
				SType: vk.StructureTypeWriteDescriptorSet, DstSet: alloc.Set, DstBinding: entry.Binding,
				DescriptorCount: 1, DescriptorType: vk.DescriptorTypeUniformBuffer,
				PBufferInfo: &bufferInfos[len(bufferInfos)-1],
			})
		case types.SamplerBinding:
			s := resolve.Sampler(res.Sampler)
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{Sampler: s.handle})
			writes = append(writes, vk.WriteDescriptorSet{
				SType: vk.StructureTypeWriteDescriptorSet, DstSet: alloc.Set, DstBinding: entry.Binding,
				DescriptorCount: 1, DescriptorType: vk.DescriptorTypeSampler,
				PImageInfo: &imageInfos[len(imageInfos)-1],
			})
		case types.TextureViewBinding:
			v := resolve.TextureView(res.TextureView)
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{ImageView: v.handle, ImageLayout: vk.ImageLayoutShaderReadOnlyOptimal})
			writes = append(writes, vk.WriteDescriptorSet{
				SType: vk.StructureTypeWriteDescriptorSet, DstSet: alloc.Set, DstBinding: entry.Binding,
				DescriptorCount: 1, DescriptorType: vk.DescriptorTypeSampledImage,
				PImageInfo: &imageInfos[len(imageInfos)-1],
			})
		}
	}
	if len(writes) > 0 {
		d.cmds.UpdateDescriptorSets(d.handle, uint32(len(writes)), &writes[0], 0, nil)
	}

	return &BindSet{handle: alloc.Set, layout: layout, alloc: alloc, device: d}, nil
}

// BindingResolver looks up the concrete Vulkan resource behind a
// types.BindingResource handle, resolved by the caller (typically a device
// wrapper holding the handle→resource tables).
type BindingResolver interface {
	Buffer(types.BufferHandle) *Buffer
	Sampler(types.SamplerHandle) *Sampler
	TextureView(types.TextureViewHandle) *TextureView
}

// DestroyBindSet returns the descriptor set to its layout's allocator,
// deferred until every queue that used it in a command list has retired.
func (d *Device) DestroyBindSet(set hal.BindSet) {
	vkSet, ok := set.(*BindSet)
	if !ok || vkSet == nil || vkSet.handle == 0 {
		return
	}
	vkSet.layout.allocator.Deallocate(vkSet.alloc)
	vkSet.handle = 0
	vkSet.device = nil
}

// CreatePipelineLayout creates a pipeline layout from bind set layouts and
// push constant ranges.
func (d *Device) CreatePipelineLayout(desc *types.PipelineLayoutDescriptor, layouts []*BindSetLayout) (*PipelineLayout, error) {
	setLayouts := make([]vk.DescriptorSetLayout, len(layouts))
	for i, l := range layouts {
		setLayouts[i] = l.handle
	}
	ranges := make([]vk.PushConstantRange, len(desc.PushConstantRanges))
	for i, r := range desc.PushConstantRanges {
		ranges[i] = vk.PushConstantRange{StageFlags: shaderStagesToVk(r.Stages), Offset: r.Start, Size: r.End - r.Start}
	}

	createInfo := vk.PipelineLayoutCreateInfo{SType: vk.StructureTypePipelineLayoutCreateInfo}
	if len(setLayouts) > 0 {
		createInfo.SetLayoutCount = uint32(len(setLayouts))
		createInfo.PSetLayouts = &setLayouts[0]
	}
	if len(ranges) > 0 {
		createInfo.PushConstantRangeCount = uint32(len(ranges))
		createInfo.PPushConstantRanges = &ranges[0]
	}

	var handle vk.PipelineLayout
	if res := d.cmds.CreatePipelineLayout(d.handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreatePipelineLayout failed: %d", res)
	}
	return &PipelineLayout{handle: handle, device: d}, nil
}

// DestroyPipelineLayout destroys a pipeline layout.
func (d *Device) DestroyPipelineLayout(layout hal.PipelineLayout) {
	vkLayout, ok := layout.(*PipelineLayout)
	if !ok || vkLayout == nil || vkLayout.handle == 0 {
		return
	}
	d.cmds.DestroyPipelineLayout(d.handle, vkLayout.handle, nil)
	vkLayout.handle = 0
	vkLayout.device = nil
}

// CreateShaderModule creates a shader module from SPIR-V words. WGSL/GLSL
// sources must already have been compiled to SPIR-V by the caller.
func (d *Device) CreateShaderModule(desc *types.ShaderModuleDescriptor) (*ShaderModule, error) {
	spirv, ok := desc.Source.(types.ShaderSourceSPIRV)
	if !ok {
		return nil, fmt.Errorf("vulkan: shader module source must be SPIR-V")
	}
	if len(spirv.Code) == 0 {
		return nil, fmt.Errorf("vulkan: empty SPIR-V code")
	}

	createInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uintptr(len(spirv.Code)) * 4,
		PCode:    &spirv.Code[0],
	}

	var handle vk.ShaderModule
	if res := d.cmds.CreateShaderModule(d.handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateShaderModule failed: %d", res)
	}
	return &ShaderModule{handle: handle, device: d}, nil
}

// DestroyShaderModule destroys a shader module.
func (d *Device) DestroyShaderModule(module hal.ShaderModule) {
	vkModule, ok := module.(*ShaderModule)
	if !ok || vkModule == nil || vkModule.handle == 0 {
		return
	}
	d.cmds.DestroyShaderModule(d.handle, vkModule.handle, nil)
	vkModule.handle = 0
	vkModule.device = nil
}

// CreateCommandEncoder creates a command encoder backed by the device's
// shared command pool, recording against queue's submission timeline.
func (d *Device) CreateCommandEncoder(label string, queue *Queue) (*CommandEncoder, error) {
	if d.commandPool == 0 {
		if err := d.initCommandPool(); err != nil {
			return nil, err
		}
	}

	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        d.commandPool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}

	var cmdBuffer vk.CommandBuffer
	if res := d.cmds.AllocateCommandBuffers(d.handle, &allocInfo, &cmdBuffer); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkAllocateCommandBuffers failed: %d", res)
	}

	pool := &CommandPool{handle: d.commandPool, device: d}
	return &CommandEncoder{device: d, pool: pool, cmdBuffer: cmdBuffer, label: label, queue: queue}, nil
}

// initCommandPool initializes the device command pool.
func (d *Device) initCommandPool() error {
	createInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: d.graphicsFamily,
	}

	var pool vk.CommandPool
	if res := d.cmds.CreateCommandPool(d.handle, &createInfo, nil, &pool); res != vk.Success {
		return fmt.Errorf("vulkan: vkCreateCommandPool failed: %d", res)
	}

	d.commandPool = pool
	return nil
}

// CreateFence creates a host-waitable binary fence.
func (d *Device) CreateFence() (*Fence, error) {
	createInfo := vk.FenceCreateInfo{SType: vk.StructureTypeFenceCreateInfo}
	var handle vk.Fence
	if res := d.cmds.CreateFence(d.handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateFence failed: %d", res)
	}
	return &Fence{handle: handle, device: d}, nil
}

// DestroyFence destroys a fence.
func (d *Device) DestroyFence(fence hal.Fence) {
	vkFence, ok := fence.(*Fence)
	if !ok || vkFence == nil || vkFence.handle == 0 {
		return
	}
	d.cmds.DestroyFence(d.handle, vkFence.handle, nil)
	vkFence.handle = 0
	vkFence.device = nil
}

// Wait blocks until the fence signals or the timeout elapses.
func (d *Device) Wait(fence *Fence, timeout time.Duration) (bool, error) {
	fences := [1]vk.Fence{fence.handle}
	res := d.cmds.WaitForFences(d.handle, 1, &fences[0], 1, uint64(timeout.Nanoseconds()))
	switch res {
	case vk.Success:
		return true, nil
	case vk.Timeout:
		return false, nil
	default:
		return false, fmt.Errorf("vulkan: vkWaitForFences failed: %d", res)
	}
}

// Destroy releases the device. Queues created from it must be destroyed
// first so their deleters have already run.
func (d *Device) Destroy() {
	if d.commandPool != 0 {
		d.cmds.DestroyCommandPool(d.handle, d.commandPool, nil)
		d.commandPool = 0
	}

	if d.allocator != nil {
		d.allocator.Destroy()
		d.allocator = nil
	}

	if d.handle != 0 {
		d.cmds.DestroyDevice(d.handle, nil)
		d.handle = 0
	}
}
