// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/redwarx/rhi/hal/vulkan/memory"
	"github.com/redwarx/rhi/hal/vulkan/vk"
)

// ResourceDeleter defers Vulkan object destruction until the GPU has
// finished every command list that referenced the object, batched per-queue
// by the submission serial that last used it. One ResourceDeleter belongs
// to exactly one Queue and is drained by that queue's Tick.
//
// Destruction order within a single Tick call matters: allocations and
// views must go before the pools/layouts they came from, and the surface
// and its swapchain must go last, after every image view derived from it.
type ResourceDeleter struct {
	instance vk.Instance
	device   vk.Device
	cmds     *vk.Commands
	alloc    *memory.GpuAllocator

	buffers         SerialQueue[bufferDeletion]
	textures        SerialQueue[textureDeletion]
	textureViews    SerialQueue[vk.ImageView]
	samplers        SerialQueue[vk.Sampler]
	shaderModules   SerialQueue[vk.ShaderModule]
	pipelineLayouts SerialQueue[vk.PipelineLayout]
	setLayouts      SerialQueue[vk.DescriptorSetLayout]
	descriptorPools SerialQueue[vk.DescriptorPool]
	semaphores      SerialQueue[vk.Semaphore]
	fences          SerialQueue[vk.Fence]
	swapchains      SerialQueue[swapchainDeletion]
}

type bufferDeletion struct {
	handle vk.Buffer
	block  *memory.MemoryBlock
}

type textureDeletion struct {
	handle     vk.Image
	block      *memory.MemoryBlock
	isExternal bool
}

type swapchainDeletion struct {
	swapchain vk.SwapchainKHR
	surface   vk.SurfaceKHR
}

// NewResourceDeleter constructs a deleter that frees objects against device
// using cmds, returning any device-memory blocks to alloc. instance is only
// used to destroy a deferred surface, which is an instance-level object.
func NewResourceDeleter(instance vk.Instance, device vk.Device, cmds *vk.Commands, alloc *memory.GpuAllocator) *ResourceDeleter {
	return &ResourceDeleter{instance: instance, device: device, cmds: cmds, alloc: alloc}
}

// DeferDestroyBuffer enqueues a buffer (and, unless block is nil, the memory
// backing it) to be destroyed once serial has completed.
func (d *ResourceDeleter) DeferDestroyBuffer(serial Serial, handle vk.Buffer, block *memory.MemoryBlock) {
	d.buffers.Push(serial, bufferDeletion{handle: handle, block: block})
}

// DeferDestroyTexture enqueues a texture to be destroyed once serial has
// completed. isExternal textures (swapchain images) are not VkImage-owned
// by this core and have their handle dropped without a vkDestroyImage call.
func (d *ResourceDeleter) DeferDestroyTexture(serial Serial, handle vk.Image, block *memory.MemoryBlock, isExternal bool) {
	d.textures.Push(serial, textureDeletion{handle: handle, block: block, isExternal: isExternal})
}

func (d *ResourceDeleter) DeferDestroyTextureView(serial Serial, handle vk.ImageView) {
	d.textureViews.Push(serial, handle)
}

func (d *ResourceDeleter) DeferDestroySampler(serial Serial, handle vk.Sampler) {
	d.samplers.Push(serial, handle)
}

func (d *ResourceDeleter) DeferDestroyShaderModule(serial Serial, handle vk.ShaderModule) {
	d.shaderModules.Push(serial, handle)
}

func (d *ResourceDeleter) DeferDestroyPipelineLayout(serial Serial, handle vk.PipelineLayout) {
	d.pipelineLayouts.Push(serial, handle)
}

func (d *ResourceDeleter) DeferDestroySetLayout(serial Serial, handle vk.DescriptorSetLayout) {
	d.setLayouts.Push(serial, handle)
}

func (d *ResourceDeleter) DeferDestroyDescriptorPool(serial Serial, handle vk.DescriptorPool) {
	d.descriptorPools.Push(serial, handle)
}

func (d *ResourceDeleter) DeferDestroySemaphore(serial Serial, handle vk.Semaphore) {
	d.semaphores.Push(serial, handle)
}

func (d *ResourceDeleter) DeferDestroyFence(serial Serial, handle vk.Fence) {
	d.fences.Push(serial, handle)
}

// DeferDestroySwapchain enqueues the {surface, swapchain} tuple to be
// destroyed together, after every other resource derived from them.
func (d *ResourceDeleter) DeferDestroySwapchain(serial Serial, swapchain vk.SwapchainKHR, surface vk.SurfaceKHR) {
	d.swapchains.Push(serial, swapchainDeletion{swapchain: swapchain, surface: surface})
}

// Tick destroys every object deferred at a serial <= completedSerial, in the
// fixed order: allocations, views, pools/layouts, semaphores/fences, then
// the surface+swapchain tuple last.
func (d *ResourceDeleter) Tick(completedSerial Serial) {
	d.buffers.IterateUpTo(completedSerial, func(_ Serial, v bufferDeletion) {
		d.cmds.DestroyBuffer(d.device, v.handle, nil)
		if v.block != nil {
			d.alloc.Free(v.block)
		}
	})
	d.buffers.ClearUpTo(completedSerial)

	d.textures.IterateUpTo(completedSerial, func(_ Serial, v textureDeletion) {
		if !v.isExternal {
			d.cmds.DestroyImage(d.device, v.handle, nil)
		}
		if v.block != nil {
			d.alloc.Free(v.block)
		}
	})
	d.textures.ClearUpTo(completedSerial)

	d.textureViews.IterateUpTo(completedSerial, func(_ Serial, v vk.ImageView) {
		d.cmds.DestroyImageView(d.device, v, nil)
	})
	d.textureViews.ClearUpTo(completedSerial)

	d.samplers.IterateUpTo(completedSerial, func(_ Serial, v vk.Sampler) {
		d.cmds.DestroySampler(d.device, v, nil)
	})
	d.samplers.ClearUpTo(completedSerial)

	d.shaderModules.IterateUpTo(completedSerial, func(_ Serial, v vk.ShaderModule) {
		d.cmds.DestroyShaderModule(d.device, v, nil)
	})
	d.shaderModules.ClearUpTo(completedSerial)

	d.pipelineLayouts.IterateUpTo(completedSerial, func(_ Serial, v vk.PipelineLayout) {
		d.cmds.DestroyPipelineLayout(d.device, v, nil)
	})
	d.pipelineLayouts.ClearUpTo(completedSerial)

	d.setLayouts.IterateUpTo(completedSerial, func(_ Serial, v vk.DescriptorSetLayout) {
		d.cmds.DestroyDescriptorSetLayout(d.device, v, nil)
	})
	d.setLayouts.ClearUpTo(completedSerial)

	d.descriptorPools.IterateUpTo(completedSerial, func(_ Serial, v vk.DescriptorPool) {
		d.cmds.DestroyDescriptorPool(d.device, v, nil)
	})
	d.descriptorPools.ClearUpTo(completedSerial)

	d.semaphores.IterateUpTo(completedSerial, func(_ Serial, v vk.Semaphore) {
		d.cmds.DestroySemaphore(d.device, v, nil)
	})
	d.semaphores.ClearUpTo(completedSerial)

	d.fences.IterateUpTo(completedSerial, func(_ Serial, v vk.Fence) {
		d.cmds.DestroyFence(d.device, v, nil)
	})
	d.fences.ClearUpTo(completedSerial)

	d.swapchains.IterateUpTo(completedSerial, func(_ Serial, v swapchainDeletion) {
		d.cmds.DestroySwapchainKHR(d.device, v.swapchain, nil)
		d.cmds.DestroySurfaceKHR(d.instance, v.surface, nil)
	})
	d.swapchains.ClearUpTo(completedSerial)
}
