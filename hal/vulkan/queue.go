// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/redwarx/rhi/hal"
	"github.com/redwarx/rhi/hal/vulkan/vk"
)

// Queue wraps a Vulkan VkQueue. Every submission is assigned the
// next Serial in the queue's monotonic sequence; the timeline semaphore (or
// binary fence pool fallback) backing fence signals that serial on
// completion, and deleter retires resources whose last use was at or before
// the completed serial.
type Queue struct {
	handle      vk.Queue
	device      *Device
	familyIndex uint32

	fence   *deviceFence
	deleter *ResourceDeleter

	// lastSubmittedSerial is the serial assigned to the most recent Submit.
	// completedSerial is the highest serial known to have finished on the
	// GPU, advanced by Tick.
	lastSubmittedSerial Serial
	completedSerial     Serial
}

// CreateQueue creates the device's single combined graphics/compute queue,
// backed by a timeline semaphore where the driver supports
// VK_KHR_timeline_semaphore, falling back to a pool of binary fences
// otherwise (VK-IMPL-003).
func (d *Device) CreateQueue() (*Queue, error) {
	var handle vk.Queue
	d.cmds.GetDeviceQueue(d.handle, d.graphicsFamily, 0, &handle)

	fence, err := initTimelineFence(d.cmds, d.handle)
	if err != nil {
		fence = initBinaryFence()
	}

	return &Queue{
		handle:      handle,
		device:      d,
		familyIndex: d.graphicsFamily,
		fence:       fence,
		deleter:     NewResourceDeleter(d.instance.handle, d.handle, d.cmds, d.allocator),
	}, nil
}

// Submit submits command buffers, advancing the queue's submission serial
// and attaching a timeline-semaphore (or binary-fence) signal that
// completedSerial, once ticked, confirms.
func (q *Queue) Submit(commandBuffers []hal.CommandBuffer) (Serial, error) {
	vkCmdBuffers := make([]vk.CommandBufferSubmitInfo, len(commandBuffers))
	for i, cb := range commandBuffers {
		vkCB, ok := cb.(*CommandBuffer)
		if !ok {
			return q.completedSerial, fmt.Errorf("vulkan: command buffer is not a Vulkan command buffer")
		}
		vkCmdBuffers[i] = vk.CommandBufferSubmitInfo{
			SType:         vk.StructureTypeCommandBufferSubmitInfo,
			CommandBuffer: vkCB.handle,
		}
	}

	serial := Serial(q.fence.nextSignalValue())

	submitInfo := vk.SubmitInfo2{
		SType: vk.StructureTypeSubmitInfo2,
	}
	if len(vkCmdBuffers) > 0 {
		submitInfo.CommandBufferInfoCount = uint32(len(vkCmdBuffers))
		submitInfo.PCommandBufferInfos = &vkCmdBuffers[0]
	}

	var signalInfo vk.SemaphoreSubmitInfo
	var vkFence vk.Fence
	if q.fence.isTimeline {
		signalInfo = vk.SemaphoreSubmitInfo{
			SType:     vk.StructureTypeSemaphoreSubmitInfo,
			Semaphore: q.fence.timelineSemaphore,
			Value:     uint64(serial),
			StageMask: vk.PipelineStageAllCommandsBit,
		}
		submitInfo.SignalSemaphoreInfoCount = 1
		submitInfo.PSignalSemaphoreInfos = &signalInfo
	} else {
		var err error
		vkFence, err = q.fence.pool.signal(q.device.cmds, q.device.handle, uint64(serial))
		if err != nil {
			return q.completedSerial, fmt.Errorf("vulkan: allocating submission fence: %w", err)
		}
	}

	result := q.device.cmds.QueueSubmit2(q.handle, 1, &submitInfo, vkFence)
	if result != vk.Success {
		return q.completedSerial, fmt.Errorf("vulkan: vkQueueSubmit2 failed: %d", result)
	}

	q.lastSubmittedSerial = serial
	return serial, nil
}

// SubmitForPresent submits command buffers that produce a swapchain image,
// waiting on the swapchain's image-available semaphore and signaling its
// render-finished semaphore in addition to the queue's own timeline.
func (q *Queue) SubmitForPresent(commandBuffers []hal.CommandBuffer, swapchain *Swapchain) (Serial, error) {
	vkCmdBuffers := make([]vk.CommandBufferSubmitInfo, len(commandBuffers))
	for i, cb := range commandBuffers {
		vkCB, ok := cb.(*CommandBuffer)
		if !ok {
			return q.completedSerial, fmt.Errorf("vulkan: command buffer is not a Vulkan command buffer")
		}
		vkCmdBuffers[i] = vk.CommandBufferSubmitInfo{
			SType:         vk.StructureTypeCommandBufferSubmitInfo,
			CommandBuffer: vkCB.handle,
		}
	}

	serial := Serial(q.fence.nextSignalValue())

	waitInfo := vk.SemaphoreSubmitInfo{
		SType:     vk.StructureTypeSemaphoreSubmitInfo,
		Semaphore: swapchain.imageAvailable,
		StageMask: vk.PipelineStageColorAttachmentOutputBit,
	}

	signalInfos := make([]vk.SemaphoreSubmitInfo, 0, 2)
	signalInfos = append(signalInfos, vk.SemaphoreSubmitInfo{
		SType:     vk.StructureTypeSemaphoreSubmitInfo,
		Semaphore: swapchain.renderFinished,
		StageMask: vk.PipelineStageColorAttachmentOutputBit,
	})

	var vkFence vk.Fence
	if q.fence.isTimeline {
		signalInfos = append(signalInfos, vk.SemaphoreSubmitInfo{
			SType:     vk.StructureTypeSemaphoreSubmitInfo,
			Semaphore: q.fence.timelineSemaphore,
			Value:     uint64(serial),
			StageMask: vk.PipelineStageAllCommandsBit,
		})
	} else {
		var err error
		vkFence, err = q.fence.pool.signal(q.device.cmds, q.device.handle, uint64(serial))
		if err != nil {
			return q.completedSerial, fmt.Errorf("vulkan: allocating submission fence: %w", err)
		}
	}

	submitInfo := vk.SubmitInfo2{
		SType:                    vk.StructureTypeSubmitInfo2,
		WaitSemaphoreInfoCount:   1,
		PWaitSemaphoreInfos:      &waitInfo,
		SignalSemaphoreInfoCount: uint32(len(signalInfos)),
		PSignalSemaphoreInfos:    &signalInfos[0],
	}
	if len(vkCmdBuffers) > 0 {
		submitInfo.CommandBufferInfoCount = uint32(len(vkCmdBuffers))
		submitInfo.PCommandBufferInfos = &vkCmdBuffers[0]
	}

	result := q.device.cmds.QueueSubmit2(q.handle, 1, &submitInfo, vkFence)
	if result != vk.Success {
		return q.completedSerial, fmt.Errorf("vulkan: vkQueueSubmit2 failed: %d", result)
	}

	q.lastSubmittedSerial = serial
	return serial, nil
}

// WriteBuffer copies data into the buffer immediately, and only when its
// memory block has a non-zero MappedPtr. Nothing in this package maps buffer
// memory, so for any other buffer the call has no effect.
func (q *Queue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || vkBuffer.memory == nil {
		return
	}

	if vkBuffer.memory.MappedPtr != 0 {
		copyToMappedMemory(vkBuffer.memory.MappedPtr, offset, data)
	}
	// TODO: route through a staging buffer for non-host-visible memory.
}

// WriteTexture has no effect: no data is copied to the texture.
func (q *Queue) WriteTexture(dst *ImageCopyTexture, data []byte, layout *ImageDataLayout, size *Extent3D) {
	// TODO: implement staging buffer to image copy.
	_, _, _, _ = dst, data, layout, size
}

// Present presents a surface's acquired texture. The surface must already
// have a configured swapchain.
func (q *Queue) Present(surface *Surface) error {
	if surface.swapchain == nil {
		return fmt.Errorf("vulkan: surface not configured")
	}
	return surface.swapchain.present(q)
}

// Tick advances completedSerial to the highest serial the GPU has finished,
// draining deleter of everything whose last use is now safe to destroy.
// Callers poll Tick periodically (e.g. once per frame).
func (q *Queue) Tick() error {
	if q.fence.isTimeline {
		var value uint64
		if result := q.device.cmds.GetSemaphoreCounterValue(q.device.handle, q.fence.timelineSemaphore, &value); result != vk.Success {
			return fmt.Errorf("vulkan: vkGetSemaphoreCounterValue failed: %d", result)
		}
		q.completedSerial = Serial(value)
	} else {
		q.fence.pool.maintain(q.device.cmds, q.device.handle)
		q.completedSerial = Serial(q.fence.pool.lastCompleted)
	}

	q.deleter.Tick(q.completedSerial)
	return nil
}

// WaitForSerial blocks until serial has completed on the GPU, or timeoutNs
// elapses.
func (q *Queue) WaitForSerial(serial Serial, timeoutNs uint64) error {
	if err := q.fence.waitForValue(q.device.cmds, q.device.handle, uint64(serial), timeoutNs); err != nil {
		return err
	}
	if serial > q.completedSerial {
		q.completedSerial = serial
	}
	q.deleter.Tick(q.completedSerial)
	return nil
}

// GetTimestampPeriod returns a constant 1.0. The device's timestamp period
// is not queried: vk.PhysicalDeviceLimits does not carry that field.
func (q *Queue) GetTimestampPeriod() float32 {
	// TODO: read from VkPhysicalDeviceLimits.timestampPeriod.
	return 1.0
}

// Destroy waits for every in-flight submission to complete and releases the
// queue's synchronization primitives. Must be called before the owning
// Device is destroyed.
func (q *Queue) Destroy() {
	_ = q.fence.waitForLatest(q.device.cmds, q.device.handle, ^uint64(0))
	q.completedSerial = Serial(q.fence.currentSignalValue())
	q.deleter.Tick(q.completedSerial)
	q.fence.destroy(q.device.cmds, q.device.handle)
}
