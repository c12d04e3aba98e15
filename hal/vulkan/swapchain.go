// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/redwarx/rhi/hal"
	"github.com/redwarx/rhi/hal/vulkan/vk"
	"github.com/redwarx/rhi/types"
)

// PresentMode selects the swapchain's presentation engine behavior.
type PresentMode int

const (
	PresentModeImmediate PresentMode = iota
	PresentModeMailbox
	PresentModeFifo
	PresentModeFifoRelaxed
)

// SurfaceConfiguration describes how a surface's swapchain should be built.
type SurfaceConfiguration struct {
	Format      types.TextureFormat
	Usage       types.TextureUsage
	Width       uint32
	Height      uint32
	PresentMode PresentMode
}

// Swapchain manages Vulkan swapchain for a surface.
type Swapchain struct {
	handle          vk.SwapchainKHR
	surface         *Surface
	device          *Device
	queue           *Queue
	images          []vk.Image
	imageViews      []vk.ImageView
	format          vk.Format
	extent          vk.Extent2D
	presentMode     vk.PresentModeKHR
	imageAvailable  vk.Semaphore // Signaled when image is acquired
	renderFinished  vk.Semaphore // Signaled when rendering is complete
	currentImage    uint32
	imageAcquired   bool
	surfaceTextures []*SwapchainTexture
}

// SwapchainTexture wraps one swapchain image and its view.
type SwapchainTexture struct {
	handle    vk.Image
	view      vk.ImageView
	index     uint32
	swapchain *Swapchain
	format    types.TextureFormat
	size      Extent3D
}

// Destroy implements hal.Texture.
func (t *SwapchainTexture) Destroy() {
	// Swapchain textures are owned by the swapchain, not destroyed individually
}

// createSwapchain creates a new swapchain for the surface, presenting through
// queue. Recreation (config changes on a surface that already has a
// swapchain) chains the old swapchain handle via OldSwapchain and tears the
// old one down once the new one exists.
func (s *Surface) createSwapchain(device *Device, queue *Queue, config *SurfaceConfiguration) error {
	var capabilities vk.SurfaceCapabilitiesKHR
	result := device.cmds.GetPhysicalDeviceSurfaceCapabilitiesKHR(device.physicalDevice, s.handle, &capabilities)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkGetPhysicalDeviceSurfaceCapabilitiesKHR failed: %d", result)
	}

	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && imageCount > capabilities.MaxImageCount {
		imageCount = capabilities.MaxImageCount
	}

	extent := capabilities.CurrentExtent
	if extent.Width == 0xFFFFFFFF {
		extent.Width = config.Width
		extent.Height = config.Height
	}

	vkFormat := textureFormatToVk(config.Format)
	presentMode := presentModeToVk(config.PresentMode)

	imageUsage := vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit)
	if config.Usage&types.TextureUsageCopySrc != 0 {
		imageUsage |= vk.ImageUsageFlags(vk.ImageUsageTransferSrcBit)
	}
	if config.Usage&types.TextureUsageCopyDst != 0 {
		imageUsage |= vk.ImageUsageFlags(vk.ImageUsageTransferDstBit)
	}

	var oldSwapchain vk.SwapchainKHR
	if s.swapchain != nil {
		oldSwapchain = s.swapchain.handle
	}

	createInfo := vk.SwapchainCreateInfoKHR{
		SType:            vk.StructureTypeSwapchainCreateInfoKhr,
		Surface:          s.handle,
		MinImageCount:    imageCount,
		ImageFormat:      vkFormat,
		ImageColorSpace:  vk.ColorSpaceSrgbNonlinearKhr,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       imageUsage,
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     capabilities.CurrentTransform,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBitKhr,
		PresentMode:      presentMode,
		Clipped:          vk.True,
		OldSwapchain:     oldSwapchain,
	}

	var swapchainHandle vk.SwapchainKHR
	result = device.cmds.CreateSwapchainKHR(device.handle, &createInfo, nil, &swapchainHandle)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkCreateSwapchainKHR failed: %d", result)
	}

	// The old swapchain handle stays valid (as OldSwapchain above requires)
	// until the new one is created; its other resources can go immediately.
	if s.swapchain != nil {
		old := s.swapchain
		old.destroyResources()
		device.cmds.DestroySwapchainKHR(device.handle, old.handle, nil)
		old.handle = 0
		s.swapchain = nil
	}

	var swapchainImageCount uint32
	result = device.cmds.GetSwapchainImagesKHR(device.handle, swapchainHandle, &swapchainImageCount, nil)
	if result != vk.Success {
		device.cmds.DestroySwapchainKHR(device.handle, swapchainHandle, nil)
		return fmt.Errorf("vulkan: vkGetSwapchainImagesKHR (count) failed: %d", result)
	}

	images := make([]vk.Image, swapchainImageCount)
	result = device.cmds.GetSwapchainImagesKHR(device.handle, swapchainHandle, &swapchainImageCount, &images[0])
	if result != vk.Success {
		device.cmds.DestroySwapchainKHR(device.handle, swapchainHandle, nil)
		return fmt.Errorf("vulkan: vkGetSwapchainImagesKHR (images) failed: %d", result)
	}

	imageViews := make([]vk.ImageView, len(images))
	for i, img := range images {
		viewCreateInfo := vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    img,
			ViewType: vk.ImageViewType2d,
			Format:   vkFormat,
			Components: vk.ComponentMapping{
				R: vk.ComponentSwizzleIdentity,
				G: vk.ComponentSwizzleIdentity,
				B: vk.ComponentSwizzleIdentity,
				A: vk.ComponentSwizzleIdentity,
			},
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		}

		result = device.cmds.CreateImageView(device.handle, &viewCreateInfo, nil, &imageViews[i])
		if result != vk.Success {
			for j := 0; j < i; j++ {
				device.cmds.DestroyImageView(device.handle, imageViews[j], nil)
			}
			device.cmds.DestroySwapchainKHR(device.handle, swapchainHandle, nil)
			return fmt.Errorf("vulkan: vkCreateImageView failed: %d", result)
		}
	}

	semaphoreInfo := vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
	}

	var imageAvailable, renderFinished vk.Semaphore
	result = device.cmds.CreateSemaphore(device.handle, &semaphoreInfo, nil, &imageAvailable)
	if result != vk.Success {
		for _, view := range imageViews {
			device.cmds.DestroyImageView(device.handle, view, nil)
		}
		device.cmds.DestroySwapchainKHR(device.handle, swapchainHandle, nil)
		return fmt.Errorf("vulkan: vkCreateSemaphore (imageAvailable) failed: %d", result)
	}

	result = device.cmds.CreateSemaphore(device.handle, &semaphoreInfo, nil, &renderFinished)
	if result != vk.Success {
		device.cmds.DestroySemaphore(device.handle, imageAvailable, nil)
		for _, view := range imageViews {
			device.cmds.DestroyImageView(device.handle, view, nil)
		}
		device.cmds.DestroySwapchainKHR(device.handle, swapchainHandle, nil)
		return fmt.Errorf("vulkan: vkCreateSemaphore (renderFinished) failed: %d", result)
	}

	surfaceTextures := make([]*SwapchainTexture, len(images))
	for i, img := range images {
		surfaceTextures[i] = &SwapchainTexture{
			handle: img,
			view:   imageViews[i],
			index:  uint32(i),
			format: config.Format,
			size: Extent3D{
				Width:  extent.Width,
				Height: extent.Height,
				Depth:  1,
			},
		}
	}

	swapchain := &Swapchain{
		handle:          swapchainHandle,
		surface:         s,
		device:          device,
		queue:           queue,
		images:          images,
		imageViews:      imageViews,
		format:          vkFormat,
		extent:          extent,
		presentMode:     presentMode,
		imageAvailable:  imageAvailable,
		renderFinished:  renderFinished,
		surfaceTextures: surfaceTextures,
	}

	for _, tex := range surfaceTextures {
		tex.swapchain = swapchain
	}

	s.swapchain = swapchain
	s.device = device

	return nil
}

// destroyResources destroys swapchain resources without the swapchain handle
// itself.
func (sc *Swapchain) destroyResources() {
	if sc.device == nil {
		return
	}

	sc.device.cmds.DeviceWaitIdle(sc.device.handle)

	if sc.imageAvailable != 0 {
		sc.device.cmds.DestroySemaphore(sc.device.handle, sc.imageAvailable, nil)
		sc.imageAvailable = 0
	}
	if sc.renderFinished != 0 {
		sc.device.cmds.DestroySemaphore(sc.device.handle, sc.renderFinished, nil)
		sc.renderFinished = 0
	}

	for _, view := range sc.imageViews {
		if view != 0 {
			sc.device.cmds.DestroyImageView(sc.device.handle, view, nil)
		}
	}
	sc.imageViews = nil
	sc.images = nil
	sc.surfaceTextures = nil
}

// Destroy destroys the swapchain. If it was created against a queue,
// destruction of both the swapchain and its surface is deferred until every
// submission that could still reference them has completed, and the
// surface's own handle is released as part of that same deferred step —
// Surface.Destroy detects this and does not destroy the handle again.
// Without a queue (a swapchain created but never submitted against),
// destruction is immediate and the surface handle is left for
// Surface.Destroy to release as usual.
func (sc *Swapchain) Destroy() {
	sc.destroyResources()

	if sc.handle == 0 {
		return
	}

	if sc.queue != nil && sc.queue.deleter != nil {
		serial := sc.queue.lastSubmittedSerial + 1
		sc.queue.deleter.DeferDestroySwapchain(serial, sc.handle, sc.surface.handle)
		sc.handle = 0
		sc.surface.surfaceDestroyDeferred = true
		return
	}

	sc.device.cmds.DestroySwapchainKHR(sc.device.handle, sc.handle, nil)
	sc.handle = 0
}

// acquireNextImage acquires the next available swapchain image.
func (sc *Swapchain) acquireNextImage() (*SwapchainTexture, bool, error) {
	if sc.imageAcquired {
		return nil, false, fmt.Errorf("vulkan: image already acquired")
	}

	var imageIndex uint32
	result := sc.device.cmds.AcquireNextImageKHR(sc.device.handle, sc.handle, ^uint64(0), sc.imageAvailable, 0, &imageIndex)

	switch result {
	case vk.Success:
		// OK
	case vk.SuboptimalKhr:
		sc.currentImage = imageIndex
		sc.imageAcquired = true
		return sc.surfaceTextures[imageIndex], true, nil
	case vk.ErrorOutOfDateKhr:
		return nil, false, hal.ErrSurfaceOutdated
	default:
		return nil, false, fmt.Errorf("vulkan: vkAcquireNextImageKHR failed: %d", result)
	}

	sc.currentImage = imageIndex
	sc.imageAcquired = true
	return sc.surfaceTextures[imageIndex], false, nil
}

// present presents the current image to the screen.
func (sc *Swapchain) present(queue *Queue) error {
	if !sc.imageAcquired {
		return fmt.Errorf("vulkan: no image acquired to present")
	}

	presentInfo := vk.PresentInfoKHR{
		SType:              vk.StructureTypePresentInfoKhr,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    &sc.renderFinished,
		SwapchainCount:     1,
		PSwapchains:        &sc.handle,
		PImageIndices:      &sc.currentImage,
	}

	result := queue.device.cmds.QueuePresentKHR(queue.handle, &presentInfo)
	sc.imageAcquired = false

	switch result {
	case vk.Success:
		return nil
	case vk.SuboptimalKhr:
		return nil
	case vk.ErrorOutOfDateKhr:
		return hal.ErrSurfaceOutdated
	default:
		return fmt.Errorf("vulkan: vkQueuePresentKHR failed: %d", result)
	}
}

// presentModeToVk converts PresentMode to Vulkan PresentModeKHR.
func presentModeToVk(mode PresentMode) vk.PresentModeKHR {
	switch mode {
	case PresentModeImmediate:
		return vk.PresentModeImmediateKhr
	case PresentModeMailbox:
		return vk.PresentModeMailboxKhr
	case PresentModeFifo:
		return vk.PresentModeFifoKhr
	case PresentModeFifoRelaxed:
		return vk.PresentModeFifoRelaxedKhr
	default:
		return vk.PresentModeFifoKhr
	}
}
