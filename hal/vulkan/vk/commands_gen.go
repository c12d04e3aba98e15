// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// Commands holds every Vulkan entry point this core loads, as raw function
// pointers resolved through vkGetInstanceProcAddr/vkGetDeviceProcAddr. All
// calls go through the typed methods below rather than through package-level
// functions or raw uintptr getters, so every caller (Device, Queue,
// Swapchain, DescriptorAllocator, the memory allocator) shares one
// consistent way of reaching the driver.
type Commands struct {
	// Global
	createInstance                       unsafe.Pointer
	enumerateInstanceVersion             unsafe.Pointer
	enumerateInstanceLayerProperties     unsafe.Pointer
	enumerateInstanceExtensionProperties unsafe.Pointer

	// Instance
	destroyInstance                              unsafe.Pointer
	enumeratePhysicalDevices                      unsafe.Pointer
	getPhysicalDeviceProperties                   unsafe.Pointer
	getPhysicalDeviceQueueFamilyProperties        unsafe.Pointer
	getPhysicalDeviceMemoryProperties             unsafe.Pointer
	getPhysicalDeviceFeatures                     unsafe.Pointer
	getPhysicalDeviceFormatProperties             unsafe.Pointer
	getPhysicalDeviceImageFormatProperties        unsafe.Pointer
	createDevice                                  unsafe.Pointer
	getDeviceProcAddr                             unsafe.Pointer
	enumerateDeviceLayerProperties                unsafe.Pointer
	enumerateDeviceExtensionProperties             unsafe.Pointer
	getPhysicalDeviceSparseImageFormatProperties  unsafe.Pointer
	destroySurfaceKHR                             unsafe.Pointer
	getPhysicalDeviceSurfaceSupportKHR             unsafe.Pointer
	getPhysicalDeviceSurfaceCapabilitiesKHR        unsafe.Pointer
	getPhysicalDeviceSurfaceFormatsKHR             unsafe.Pointer
	getPhysicalDeviceSurfacePresentModesKHR        unsafe.Pointer
	createWin32SurfaceKHR                          unsafe.Pointer
	getPhysicalDeviceFeatures2                     unsafe.Pointer
	getPhysicalDeviceProperties2                   unsafe.Pointer

	// Device: lifetime, queue
	destroyDevice  unsafe.Pointer
	getDeviceQueue unsafe.Pointer
	queueSubmit    unsafe.Pointer
	queueWaitIdle  unsafe.Pointer
	deviceWaitIdle unsafe.Pointer

	// Memory
	allocateMemory               unsafe.Pointer
	freeMemory                   unsafe.Pointer
	mapMemory                    unsafe.Pointer
	unmapMemory                  unsafe.Pointer
	flushMappedMemoryRanges      unsafe.Pointer
	invalidateMappedMemoryRanges unsafe.Pointer
	getDeviceMemoryCommitment    unsafe.Pointer
	getBufferMemoryRequirements  unsafe.Pointer
	bindBufferMemory             unsafe.Pointer
	getImageMemoryRequirements   unsafe.Pointer
	bindImageMemory              unsafe.Pointer
	getImageSparseMemoryRequirements unsafe.Pointer
	queueBindSparse              unsafe.Pointer

	// Sync primitives
	createFence    unsafe.Pointer
	destroyFence   unsafe.Pointer
	resetFences    unsafe.Pointer
	getFenceStatus unsafe.Pointer
	waitForFences  unsafe.Pointer
	createSemaphore  unsafe.Pointer
	destroySemaphore unsafe.Pointer
	createEvent    unsafe.Pointer
	destroyEvent   unsafe.Pointer
	getEventStatus unsafe.Pointer
	setEvent       unsafe.Pointer
	resetEvent     unsafe.Pointer

	// Queries
	createQueryPool     unsafe.Pointer
	destroyQueryPool    unsafe.Pointer
	getQueryPoolResults unsafe.Pointer
	resetQueryPool      unsafe.Pointer

	// Buffers / images
	createBuffer              unsafe.Pointer
	destroyBuffer             unsafe.Pointer
	createBufferView          unsafe.Pointer
	destroyBufferView         unsafe.Pointer
	createImage               unsafe.Pointer
	destroyImage              unsafe.Pointer
	getImageSubresourceLayout unsafe.Pointer
	createImageView           unsafe.Pointer
	destroyImageView          unsafe.Pointer

	// Shaders / pipelines
	createShaderModule       unsafe.Pointer
	destroyShaderModule      unsafe.Pointer
	createPipelineCache      unsafe.Pointer
	destroyPipelineCache     unsafe.Pointer
	getPipelineCacheData     unsafe.Pointer
	mergePipelineCaches      unsafe.Pointer
	createGraphicsPipelines  unsafe.Pointer
	createComputePipelines   unsafe.Pointer
	destroyPipeline          unsafe.Pointer
	createPipelineLayout     unsafe.Pointer
	destroyPipelineLayout    unsafe.Pointer
	createSampler            unsafe.Pointer
	destroySampler           unsafe.Pointer

	// Descriptors
	createDescriptorSetLayout  unsafe.Pointer
	destroyDescriptorSetLayout unsafe.Pointer
	createDescriptorPool       unsafe.Pointer
	destroyDescriptorPool      unsafe.Pointer
	resetDescriptorPool        unsafe.Pointer
	allocateDescriptorSets     unsafe.Pointer
	freeDescriptorSets         unsafe.Pointer
	updateDescriptorSets       unsafe.Pointer

	// Framebuffer / render pass (legacy path; loaded, but no Commands method calls them)
	createFramebuffer        unsafe.Pointer
	destroyFramebuffer       unsafe.Pointer
	createRenderPass         unsafe.Pointer
	destroyRenderPass        unsafe.Pointer
	getRenderAreaGranularity unsafe.Pointer

	// Command pools / buffers
	createCommandPool      unsafe.Pointer
	destroyCommandPool     unsafe.Pointer
	resetCommandPool       unsafe.Pointer
	allocateCommandBuffers unsafe.Pointer
	freeCommandBuffers     unsafe.Pointer
	beginCommandBuffer     unsafe.Pointer
	endCommandBuffer       unsafe.Pointer
	resetCommandBuffer     unsafe.Pointer

	// Command recording
	cmdBindPipeline           unsafe.Pointer
	cmdSetViewport            unsafe.Pointer
	cmdSetScissor             unsafe.Pointer
	cmdSetLineWidth           unsafe.Pointer
	cmdSetDepthBias           unsafe.Pointer
	cmdSetBlendConstants      unsafe.Pointer
	cmdSetDepthBounds         unsafe.Pointer
	cmdSetStencilCompareMask  unsafe.Pointer
	cmdSetStencilWriteMask    unsafe.Pointer
	cmdSetStencilReference    unsafe.Pointer
	cmdBindDescriptorSets     unsafe.Pointer
	cmdBindIndexBuffer        unsafe.Pointer
	cmdBindVertexBuffers      unsafe.Pointer
	cmdDraw                   unsafe.Pointer
	cmdDrawIndexed            unsafe.Pointer
	cmdDrawIndirect           unsafe.Pointer
	cmdDrawIndexedIndirect    unsafe.Pointer
	cmdDispatch               unsafe.Pointer
	cmdDispatchIndirect       unsafe.Pointer
	cmdCopyBuffer             unsafe.Pointer
	cmdCopyImage              unsafe.Pointer
	cmdBlitImage              unsafe.Pointer
	cmdCopyBufferToImage      unsafe.Pointer
	cmdCopyImageToBuffer      unsafe.Pointer
	cmdUpdateBuffer           unsafe.Pointer
	cmdFillBuffer             unsafe.Pointer
	cmdClearColorImage        unsafe.Pointer
	cmdClearDepthStencilImage unsafe.Pointer
	cmdClearAttachments       unsafe.Pointer
	cmdResolveImage           unsafe.Pointer
	cmdSetEvent               unsafe.Pointer
	cmdResetEvent             unsafe.Pointer
	cmdWaitEvents             unsafe.Pointer
	cmdPipelineBarrier        unsafe.Pointer
	cmdPipelineBarrier2       unsafe.Pointer
	queueSubmit2              unsafe.Pointer
	cmdBeginRendering         unsafe.Pointer
	cmdEndRendering           unsafe.Pointer
	cmdBeginQuery             unsafe.Pointer
	cmdEndQuery               unsafe.Pointer
	cmdResetQueryPool         unsafe.Pointer
	cmdWriteTimestamp         unsafe.Pointer
	cmdCopyQueryPoolResults   unsafe.Pointer
	cmdPushConstants          unsafe.Pointer
	cmdBeginRenderPass        unsafe.Pointer
	cmdNextSubpass            unsafe.Pointer
	cmdEndRenderPass          unsafe.Pointer
	cmdExecuteCommands        unsafe.Pointer

	// Timeline semaphores (Vulkan 1.2 core)
	getSemaphoreCounterValue unsafe.Pointer
	waitSemaphores           unsafe.Pointer
	signalSemaphore          unsafe.Pointer

	// Swapchain (WSI)
	createSwapchainKHR    unsafe.Pointer
	destroySwapchainKHR   unsafe.Pointer
	getSwapchainImagesKHR unsafe.Pointer
	acquireNextImageKHR   unsafe.Pointer
	queuePresentKHR       unsafe.Pointer
}

// --- Instance-level lifetime ---

func (c *Commands) CreateInstance(info *InstanceCreateInfo, allocator *AllocationCallbacks, out *Instance) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultPtrPtrPtr, c.createInstance, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyInstance(instance Instance, allocator *AllocationCallbacks) {
	if c.destroyInstance == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [2]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, c.destroyInstance, nil, args[:])
}

func (c *Commands) DestroySurfaceKHR(instance Instance, surface SurfaceKHR, allocator *AllocationCallbacks) {
	if c.destroySurfaceKHR == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [2]unsafe.Pointer{unsafe.Pointer(&surface), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, c.destroySurfaceKHR, nil, args[:])
	_ = instance // the loader resolves this instance-level pointer once at init
}

// GetPhysicalDeviceSurfaceCapabilitiesKHR is a VK_KHR_surface query used by
// swapchain (re)creation to size and count swapchain images.
func (c *Commands) GetPhysicalDeviceSurfaceCapabilitiesKHR(pd PhysicalDevice, surface SurfaceKHR, out *SurfaceCapabilitiesKHR) Result {
	if c.getPhysicalDeviceSurfaceCapabilitiesKHR == nil {
		return ErrorExtensionNotPresent
	}
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&surface), unsafe.Pointer(&out)}
	_ = ffi.CallFunction(&SigResultHandleHandlePtr, c.getPhysicalDeviceSurfaceCapabilitiesKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) EnumeratePhysicalDevices(instance Instance, count *uint32, devices *PhysicalDevice) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&count), unsafe.Pointer(&devices)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtr, c.enumeratePhysicalDevices, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) GetPhysicalDeviceProperties(pd PhysicalDevice, props *PhysicalDeviceProperties) {
	if c.getPhysicalDeviceProperties == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&props)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, c.getPhysicalDeviceProperties, nil, args[:])
}

func (c *Commands) GetPhysicalDeviceQueueFamilyProperties(pd PhysicalDevice, count *uint32, props *QueueFamilyProperties) {
	if c.getPhysicalDeviceQueueFamilyProperties == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&count), unsafe.Pointer(&props)}
	_ = ffi.CallFunction(&SigVoidHandlePtrPtr, c.getPhysicalDeviceQueueFamilyProperties, nil, args[:])
}

func (c *Commands) GetPhysicalDeviceMemoryProperties(pd PhysicalDevice, props *PhysicalDeviceMemoryProperties) {
	if c.getPhysicalDeviceMemoryProperties == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&props)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, c.getPhysicalDeviceMemoryProperties, nil, args[:])
}

func (c *Commands) CreateDevice(pd PhysicalDevice, info *DeviceCreateInfo, allocator *AllocationCallbacks, out *Device) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc)}
	_ = args
	args2 := [4]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDevice, unsafe.Pointer(&result), args2[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// --- Device lifetime / queues ---

func (c *Commands) DestroyDevice(device Device, allocator *AllocationCallbacks) {
	if c.destroyDevice == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, c.destroyDevice, nil, args[:])
}

func (c *Commands) GetDeviceQueue(device Device, familyIndex, queueIndex uint32, out *Queue) {
	if c.getDeviceQueue == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&familyIndex), unsafe.Pointer(&queueIndex), unsafe.Pointer(&out)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32Ptr, c.getDeviceQueue, nil, args[:])
}

func (c *Commands) QueueWaitIdle(queue Queue) Result {
	var result int32
	args := [1]unsafe.Pointer{unsafe.Pointer(&queue)}
	if err := ffi.CallFunction(&SigResultHandle, c.queueWaitIdle, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DeviceWaitIdle(device Device) Result {
	var result int32
	args := [1]unsafe.Pointer{unsafe.Pointer(&device)}
	if err := ffi.CallFunction(&SigResultHandle, c.deviceWaitIdle, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// --- Memory ---

func (c *Commands) AllocateMemory(device Device, info *MemoryAllocateInfo, allocator *AllocationCallbacks, out *DeviceMemory) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.allocateMemory, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) FreeMemory(device Device, memory DeviceMemory, allocator *AllocationCallbacks) {
	if c.freeMemory == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.freeMemory, nil, args[:])
}

func (c *Commands) MapMemory(device Device, memory DeviceMemory, offset, size DeviceSize, flags uint32, data *unsafe.Pointer) Result {
	var result int32
	args := [6]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory), unsafe.Pointer(&offset), unsafe.Pointer(&size), unsafe.Pointer(&flags), unsafe.Pointer(&data)}
	if err := ffi.CallFunction(&SigResultMapMemory, c.mapMemory, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) UnmapMemory(device Device, memory DeviceMemory) {
	if c.unmapMemory == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory)}
	_ = ffi.CallFunction(&SigVoidHandleHandle, c.unmapMemory, nil, args[:])
}

func (c *Commands) GetBufferMemoryRequirements(device Device, buffer Buffer, out *MemoryRequirements) {
	if c.getBufferMemoryRequirements == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&out)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.getBufferMemoryRequirements, nil, args[:])
}

func (c *Commands) BindBufferMemory(device Device, buffer Buffer, memory DeviceMemory, offset DeviceSize) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&memory), unsafe.Pointer(&offset)}
	if err := ffi.CallFunction(&SigResultHandle4, c.bindBufferMemory, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) GetImageMemoryRequirements(device Device, image Image, out *MemoryRequirements) {
	if c.getImageMemoryRequirements == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&out)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.getImageMemoryRequirements, nil, args[:])
}

func (c *Commands) BindImageMemory(device Device, image Image, memory DeviceMemory, offset DeviceSize) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&memory), unsafe.Pointer(&offset)}
	if err := ffi.CallFunction(&SigResultHandle4, c.bindImageMemory, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// --- Buffers / images ---

func (c *Commands) CreateBuffer(device Device, info *BufferCreateInfo, allocator *AllocationCallbacks, out *Buffer) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createBuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyBuffer(device Device, buffer Buffer, allocator *AllocationCallbacks) {
	if c.destroyBuffer == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyBuffer, nil, args[:])
}

func (c *Commands) CreateImage(device Device, info *ImageCreateInfo, allocator *AllocationCallbacks, out *Image) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createImage, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyImage(device Device, image Image, allocator *AllocationCallbacks) {
	if c.destroyImage == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyImage, nil, args[:])
}

func (c *Commands) CreateImageView(device Device, info *ImageViewCreateInfo, allocator *AllocationCallbacks, out *ImageView) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createImageView, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyImageView(device Device, view ImageView, allocator *AllocationCallbacks) {
	if c.destroyImageView == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&view), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyImageView, nil, args[:])
}

// --- Sync primitives ---

func (c *Commands) CreateFence(device Device, info *FenceCreateInfo, allocator *AllocationCallbacks, out *Fence) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createFence, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyFence(device Device, fence Fence, allocator *AllocationCallbacks) {
	if c.destroyFence == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&fence), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyFence, nil, args[:])
}

func (c *Commands) CreateSemaphore(device Device, info *SemaphoreCreateInfo, allocator *AllocationCallbacks, out *Semaphore) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createSemaphore, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroySemaphore(device Device, semaphore Semaphore, allocator *AllocationCallbacks) {
	if c.destroySemaphore == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&semaphore), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroySemaphore, nil, args[:])
}

// GetSemaphoreCounterValue reads a timeline semaphore's current counter.
func (c *Commands) GetSemaphoreCounterValue(device Device, semaphore Semaphore, out *uint64) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&semaphore), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtr, c.getSemaphoreCounterValue, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// WaitSemaphores blocks until the wait conditions in info are satisfied or timeout elapses.
func (c *Commands) WaitSemaphores(device Device, info *SemaphoreWaitInfo, timeout uint64) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&timeout)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtr, c.waitSemaphores, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// SignalSemaphore advances a timeline semaphore's counter from the host.
func (c *Commands) SignalSemaphore(device Device, info *SemaphoreSignalInfo) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info)}
	if err := ffi.CallFunction(&SigResultHandlePtr, c.signalSemaphore, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) WaitForFences(device Device, count uint32, fences *Fence, waitAll Bool32, timeout uint64) Result {
	var result int32
	args := [5]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&fences), unsafe.Pointer(&waitAll), unsafe.Pointer(&timeout)}
	if err := ffi.CallFunction(&SigResultWaitForFences, c.waitForFences, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) ResetFences(device Device, count uint32, fences *Fence) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&fences)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtr, c.resetFences, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) GetFenceStatus(device Device, fence Fence) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&fence)}
	if err := ffi.CallFunction(&SigResultHandleHandle, c.getFenceStatus, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// --- Queue submission ---

func (c *Commands) QueueSubmit(queue Queue, count uint32, submits *SubmitInfo, fence Fence) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&count), unsafe.Pointer(&submits), unsafe.Pointer(&fence)}
	if err := ffi.CallFunction(&SigResultHandleU32PtrHandle, c.queueSubmit, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// QueueSubmit2 submits synchronization2-style submissions (VkSubmitInfo2),
// the submission path this core uses exclusively.
func (c *Commands) QueueSubmit2(queue Queue, count uint32, submits *SubmitInfo2, fence Fence) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&count), unsafe.Pointer(&submits), unsafe.Pointer(&fence)}
	if err := ffi.CallFunction(&SigResultHandleU32PtrHandle, c.queueSubmit2, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// --- Descriptor pools / sets ---

func (c *Commands) CreateDescriptorPool(device Device, info *DescriptorPoolCreateInfo, allocator *AllocationCallbacks, out *DescriptorPool) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDescriptorPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool, allocator *AllocationCallbacks) {
	if c.destroyDescriptorPool == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyDescriptorPool, nil, args[:])
}

func (c *Commands) ResetDescriptorPool(device Device, pool DescriptorPool, flags uint32) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&flags)}
	if err := ffi.CallFunction(&SigResultHandleHandleU32, c.resetDescriptorPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) AllocateDescriptorSets(device Device, info *DescriptorSetAllocateInfo, out *DescriptorSet) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtr, c.allocateDescriptorSets, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) FreeDescriptorSets(device Device, pool DescriptorPool, count uint32, sets *DescriptorSet) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&sets)}
	if err := ffi.CallFunction(&SigResultHandleHandleU32Ptr, c.freeDescriptorSets, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) UpdateDescriptorSets(device Device, writeCount uint32, writes *WriteDescriptorSet, copyCount uint32, copies *CopyDescriptorSet) {
	if c.updateDescriptorSets == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&writeCount), unsafe.Pointer(&writes), unsafe.Pointer(&copyCount), unsafe.Pointer(&copies)}
	_ = ffi.CallFunction(&SigVoidDeviceUpdateDescriptorSets, c.updateDescriptorSets, nil, args[:])
}

func (c *Commands) CreateDescriptorSetLayout(device Device, info *DescriptorSetLayoutCreateInfo, allocator *AllocationCallbacks, out *DescriptorSetLayout) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDescriptorSetLayout, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout, allocator *AllocationCallbacks) {
	if c.destroyDescriptorSetLayout == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyDescriptorSetLayout, nil, args[:])
}

func (c *Commands) CreatePipelineLayout(device Device, info *PipelineLayoutCreateInfo, allocator *AllocationCallbacks, out *PipelineLayout) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createPipelineLayout, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyPipelineLayout(device Device, layout PipelineLayout, allocator *AllocationCallbacks) {
	if c.destroyPipelineLayout == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyPipelineLayout, nil, args[:])
}

func (c *Commands) DestroyPipeline(device Device, pipeline Pipeline, allocator *AllocationCallbacks) {
	if c.destroyPipeline == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pipeline), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyPipeline, nil, args[:])
}

// --- Shader modules ---

func (c *Commands) CreateShaderModule(device Device, info *ShaderModuleCreateInfo, allocator *AllocationCallbacks, out *ShaderModule) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createShaderModule, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyShaderModule(device Device, module ShaderModule, allocator *AllocationCallbacks) {
	if c.destroyShaderModule == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&module), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyShaderModule, nil, args[:])
}

// --- Samplers ---

func (c *Commands) CreateSampler(device Device, info *SamplerCreateInfo, allocator *AllocationCallbacks, out *Sampler) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createSampler, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroySampler(device Device, sampler Sampler, allocator *AllocationCallbacks) {
	if c.destroySampler == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&sampler), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroySampler, nil, args[:])
}

// --- Command pools / buffers ---

func (c *Commands) CreateCommandPool(device Device, info *CommandPoolCreateInfo, allocator *AllocationCallbacks, out *CommandPool) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createCommandPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyCommandPool(device Device, pool CommandPool, allocator *AllocationCallbacks) {
	if c.destroyCommandPool == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyCommandPool, nil, args[:])
}

func (c *Commands) ResetCommandPool(device Device, pool CommandPool, flags uint32) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&flags)}
	if err := ffi.CallFunction(&SigResultHandleHandleU32, c.resetCommandPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) AllocateCommandBuffers(device Device, info *CommandBufferAllocateInfo, out *CommandBuffer) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtr, c.allocateCommandBuffers, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) FreeCommandBuffers(device Device, pool CommandPool, count uint32, buffers *CommandBuffer) {
	if c.freeCommandBuffers == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&buffers)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU32Ptr, c.freeCommandBuffers, nil, args[:])
}

func (c *Commands) BeginCommandBuffer(cb CommandBuffer, info *CommandBufferBeginInfo) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&info)}
	if err := ffi.CallFunction(&SigResultHandlePtr, c.beginCommandBuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) EndCommandBuffer(cb CommandBuffer) Result {
	var result int32
	args := [1]unsafe.Pointer{unsafe.Pointer(&cb)}
	if err := ffi.CallFunction(&SigResultHandle, c.endCommandBuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) ResetCommandBuffer(cb CommandBuffer, flags uint32) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&flags)}
	if err := ffi.CallFunction(&SigResultHandleU32, c.resetCommandBuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// --- Command recording: binding / draw / dispatch ---

func (c *Commands) CmdBindPipeline(cb CommandBuffer, bindPoint uint32, pipeline Pipeline) {
	if c.cmdBindPipeline == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&bindPoint), unsafe.Pointer(&pipeline)}
	_ = ffi.CallFunction(&SigVoidHandleU32Handle, c.cmdBindPipeline, nil, args[:])
}

func (c *Commands) CmdBindDescriptorSets(cb CommandBuffer, bindPoint uint32, layout PipelineLayout, firstSet, setCount uint32, sets *DescriptorSet, dynamicOffsetCount uint32, dynamicOffsets *uint32) {
	if c.cmdBindDescriptorSets == nil {
		return
	}
	args := [8]unsafe.Pointer{
		unsafe.Pointer(&cb), unsafe.Pointer(&bindPoint), unsafe.Pointer(&layout),
		unsafe.Pointer(&firstSet), unsafe.Pointer(&setCount), unsafe.Pointer(&sets),
		unsafe.Pointer(&dynamicOffsetCount), unsafe.Pointer(&dynamicOffsets),
	}
	_ = ffi.CallFunction(&SigVoidCmdBindDescriptorSets, c.cmdBindDescriptorSets, nil, args[:])
}

func (c *Commands) CmdBindVertexBuffers(cb CommandBuffer, firstBinding, count uint32, buffers *Buffer, offsets *DeviceSize) {
	if c.cmdBindVertexBuffers == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&firstBinding), unsafe.Pointer(&count), unsafe.Pointer(&buffers), unsafe.Pointer(&offsets)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32PtrPtr, c.cmdBindVertexBuffers, nil, args[:])
}

func (c *Commands) CmdBindIndexBuffer(cb CommandBuffer, buffer Buffer, offset DeviceSize, indexType uint32) {
	if c.cmdBindIndexBuffer == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&indexType)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU64U32, c.cmdBindIndexBuffer, nil, args[:])
}

func (c *Commands) CmdDraw(cb CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	if c.cmdDraw == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&vertexCount), unsafe.Pointer(&instanceCount), unsafe.Pointer(&firstVertex), unsafe.Pointer(&firstInstance)}
	_ = ffi.CallFunction(&SigVoidHandleU32x4, c.cmdDraw, nil, args[:])
}

func (c *Commands) CmdDrawIndexed(cb CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	if c.cmdDrawIndexed == nil {
		return
	}
	args := [6]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&indexCount), unsafe.Pointer(&instanceCount), unsafe.Pointer(&firstIndex), unsafe.Pointer(&vertexOffset), unsafe.Pointer(&firstInstance)}
	_ = ffi.CallFunction(&SigVoidHandleU32x3I32U32, c.cmdDrawIndexed, nil, args[:])
}

func (c *Commands) CmdDispatch(cb CommandBuffer, x, y, z uint32) {
	if c.cmdDispatch == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32U32, c.cmdDispatch, nil, args[:])
}

func (c *Commands) CmdDrawIndirect(cb CommandBuffer, buffer Buffer, offset DeviceSize, drawCount, stride uint32) {
	if c.cmdDrawIndirect == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&drawCount), unsafe.Pointer(&stride)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU64U32U32, c.cmdDrawIndirect, nil, args[:])
}

func (c *Commands) CmdDrawIndexedIndirect(cb CommandBuffer, buffer Buffer, offset DeviceSize, drawCount, stride uint32) {
	if c.cmdDrawIndexedIndirect == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&drawCount), unsafe.Pointer(&stride)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU64U32U32, c.cmdDrawIndexedIndirect, nil, args[:])
}

func (c *Commands) CmdDispatchIndirect(cb CommandBuffer, buffer Buffer, offset DeviceSize) {
	if c.cmdDispatchIndirect == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&buffer), unsafe.Pointer(&offset)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU64, c.cmdDispatchIndirect, nil, args[:])
}

// CmdSetViewport, CmdSetScissor, CmdSetBlendConstants and
// CmdSetStencilReference set pipeline dynamic state that was marked dynamic
// at graphics pipeline creation.

func (c *Commands) CmdSetViewport(cb CommandBuffer, firstViewport, viewportCount uint32, viewports *Viewport) {
	if c.cmdSetViewport == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&firstViewport), unsafe.Pointer(&viewportCount), unsafe.Pointer(&viewports)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32Ptr, c.cmdSetViewport, nil, args[:])
}

func (c *Commands) CmdSetScissor(cb CommandBuffer, firstScissor, scissorCount uint32, scissors *Rect2D) {
	if c.cmdSetScissor == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&firstScissor), unsafe.Pointer(&scissorCount), unsafe.Pointer(&scissors)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32Ptr, c.cmdSetScissor, nil, args[:])
}

func (c *Commands) CmdSetBlendConstants(cb CommandBuffer, constants *[4]float32) {
	if c.cmdSetBlendConstants == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&constants)}
	_ = ffi.CallFunction(&SigVoidHandleFloatPtr, c.cmdSetBlendConstants, nil, args[:])
}

func (c *Commands) CmdSetStencilReference(cb CommandBuffer, faceMask, reference uint32) {
	if c.cmdSetStencilReference == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&faceMask), unsafe.Pointer(&reference)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32, c.cmdSetStencilReference, nil, args[:])
}

func (c *Commands) CmdPushConstants(cb CommandBuffer, layout PipelineLayout, stageFlags uint32, offset, size uint32, values unsafe.Pointer) {
	if c.cmdPushConstants == nil {
		return
	}
	args := [6]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&layout), unsafe.Pointer(&stageFlags), unsafe.Pointer(&offset), unsafe.Pointer(&size), unsafe.Pointer(&values)}
	_ = ffi.CallFunction(&SigVoidCmdBindDescriptorSets, c.cmdPushConstants, nil, args[:])
}

// --- Command recording: copies ---

func (c *Commands) CmdFillBuffer(cb CommandBuffer, buffer Buffer, offset, size DeviceSize, data uint32) {
	if c.cmdFillBuffer == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&size), unsafe.Pointer(&data)}
	_ = ffi.CallFunction(&SigVoidCmdFillBuffer, c.cmdFillBuffer, nil, args[:])
}

func (c *Commands) CmdCopyBuffer(cb CommandBuffer, src, dst Buffer, regionCount uint32, regions *BufferCopy) {
	if c.cmdCopyBuffer == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&dst), unsafe.Pointer(&regionCount), unsafe.Pointer(&regions)}
	_ = ffi.CallFunction(&SigVoidCmdCopyBuffer, c.cmdCopyBuffer, nil, args[:])
}

func (c *Commands) CmdCopyBufferToImage(cb CommandBuffer, src Buffer, dst Image, dstLayout uint32, regionCount uint32, regions *BufferImageCopy) {
	if c.cmdCopyBufferToImage == nil {
		return
	}
	args := [6]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&dst), unsafe.Pointer(&dstLayout), unsafe.Pointer(&regionCount), unsafe.Pointer(&regions)}
	_ = ffi.CallFunction(&SigVoidCmdCopyBufferToImage, c.cmdCopyBufferToImage, nil, args[:])
}

func (c *Commands) CmdCopyImageToBuffer(cb CommandBuffer, src Image, srcLayout uint32, dst Buffer, regionCount uint32, regions *BufferImageCopy) {
	if c.cmdCopyImageToBuffer == nil {
		return
	}
	args := [6]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&srcLayout), unsafe.Pointer(&dst), unsafe.Pointer(&regionCount), unsafe.Pointer(&regions)}
	_ = ffi.CallFunction(&SigVoidCmdCopyImageToBuffer, c.cmdCopyImageToBuffer, nil, args[:])
}

func (c *Commands) CmdCopyImage(cb CommandBuffer, src Image, srcLayout uint32, dst Image, dstLayout uint32, regionCount uint32, regions *ImageCopy) {
	if c.cmdCopyImage == nil {
		return
	}
	args := [7]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&srcLayout), unsafe.Pointer(&dst), unsafe.Pointer(&dstLayout), unsafe.Pointer(&regionCount), unsafe.Pointer(&regions)}
	_ = ffi.CallFunction(&SigVoidCmdCopyImage, c.cmdCopyImage, nil, args[:])
}

// --- Command recording: synchronization ---

// CmdPipelineBarrier2 records a synchronization2 dependency (the only
// barrier path this core emits).
func (c *Commands) CmdPipelineBarrier2(cb CommandBuffer, info *DependencyInfo) {
	if c.cmdPipelineBarrier2 == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&info)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, c.cmdPipelineBarrier2, nil, args[:])
}

func (c *Commands) CmdBeginRendering(cb CommandBuffer, info *RenderingInfo) {
	if c.cmdBeginRendering == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&info)}
	_ = ffi.CallFunction(&SigVoidHandlePtrRendering, c.cmdBeginRendering, nil, args[:])
}

func (c *Commands) CmdEndRendering(cb CommandBuffer) {
	if c.cmdEndRendering == nil {
		return
	}
	args := [1]unsafe.Pointer{unsafe.Pointer(&cb)}
	_ = ffi.CallFunction(&SigVoidHandle, c.cmdEndRendering, nil, args[:])
}

func (c *Commands) CmdExecuteCommands(cb CommandBuffer, count uint32, secondaries *CommandBuffer) {
	if c.cmdExecuteCommands == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&count), unsafe.Pointer(&secondaries)}
	_ = ffi.CallFunction(&SigVoidHandleU32Ptr, c.cmdExecuteCommands, nil, args[:])
}

// --- Swapchain (WSI) ---

func (c *Commands) CreateSwapchainKHR(device Device, info *SwapchainCreateInfoKHR, allocator *AllocationCallbacks, out *SwapchainKHR) Result {
	var result int32
	pAlloc := unsafe.Pointer(allocator)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&pAlloc), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createSwapchainKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroySwapchainKHR(device Device, swapchain SwapchainKHR, allocator *AllocationCallbacks) {
	if c.destroySwapchainKHR == nil {
		return
	}
	pAlloc := unsafe.Pointer(allocator)
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&pAlloc)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroySwapchainKHR, nil, args[:])
}

func (c *Commands) GetSwapchainImagesKHR(device Device, swapchain SwapchainKHR, count *uint32, images *Image) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&count), unsafe.Pointer(&images)}
	if err := ffi.CallFunction(&SigResultHandleHandlePtrPtr, c.getSwapchainImagesKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) AcquireNextImageKHR(device Device, swapchain SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence, out *uint32) Result {
	var result int32
	args := [6]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&timeout), unsafe.Pointer(&semaphore), unsafe.Pointer(&fence), unsafe.Pointer(&out)}
	if err := ffi.CallFunction(&SigResultAcquireNextImage, c.acquireNextImageKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) QueuePresentKHR(queue Queue, info *PresentInfoKHR) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&info)}
	if err := ffi.CallFunction(&SigResultHandlePtr, c.queuePresentKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}
