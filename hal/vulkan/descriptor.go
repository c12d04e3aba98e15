// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/redwarx/rhi/hal/vulkan/vk"
)

// DescriptorCounts tracks the number of descriptors by type.
// Used to determine pool sizes for allocation.
type DescriptorCounts struct {
	Samplers           uint32
	SampledImages      uint32
	StorageImages      uint32
	UniformBuffers     uint32
	StorageBuffers     uint32
	UniformTexelBuffer uint32
	StorageTexelBuffer uint32
	InputAttachments   uint32
}

// Total returns the total number of descriptors.
func (c DescriptorCounts) Total() uint32 {
	return c.Samplers + c.SampledImages + c.StorageImages +
		c.UniformBuffers + c.StorageBuffers +
		c.UniformTexelBuffer + c.StorageTexelBuffer + c.InputAttachments
}

// IsEmpty returns true if no descriptors are needed.
func (c DescriptorCounts) IsEmpty() bool {
	return c.Total() == 0
}

// Multiply multiplies all counts by a factor.
func (c DescriptorCounts) Multiply(factor uint32) DescriptorCounts {
	return DescriptorCounts{
		Samplers:           c.Samplers * factor,
		SampledImages:      c.SampledImages * factor,
		StorageImages:      c.StorageImages * factor,
		UniformBuffers:     c.UniformBuffers * factor,
		StorageBuffers:     c.StorageBuffers * factor,
		UniformTexelBuffer: c.UniformTexelBuffer * factor,
		StorageTexelBuffer: c.StorageTexelBuffer * factor,
		InputAttachments:   c.InputAttachments * factor,
	}
}

// maxDescriptorsPerPool caps how many descriptors, summed over all types, a
// single VkDescriptorPool is sized for; setsPerPool is derived from it by
// dividing by the layout's total descriptor count, so a pool never has to
// grow.
const maxDescriptorsPerPool = 512

// descriptorPool backs a fixed number of descriptor sets, all sharing one
// VkDescriptorPool sized up front for setsPerPool sets of the owning
// layout's shape. Sets are never individually freed back to the driver;
// they are returned to freeSetIndices and reused.
type descriptorPool struct {
	handle         vk.DescriptorPool
	sets           []vk.DescriptorSet
	freeSetIndices []int
}

// deallocation is a pending return of a descriptor set to its pool's free
// list, gated on the completion of every queue that had it bound into a
// command list.
type deallocation struct {
	poolIndex    int
	setIndex     int
	refQueueCount int32
}

// DescriptorAllocator implements the fixed-size-pool descriptor allocation
// strategy: every pool is created once with exactly setsPerPool sets of a
// single layout's shape, freed sets are tracked via an available-pool stack
// instead of vkFreeDescriptorSets, and deallocation is deferred until the
// last command list that referenced the set has retired on every queue that
// used it.
type DescriptorAllocator struct {
	mu     sync.Mutex
	device vk.Device
	cmds   *vk.Commands
	layout vk.DescriptorSetLayout
	counts DescriptorCounts

	setsPerPool uint32
	pools       []*descriptorPool
	available   []int // stack of pool indices with >=1 free set

	// pending is keyed by the serial that must retire before an entry is
	// released: FinishDeallocation drains entries at or below the completed
	// serial.
	pending SerialQueue[*deallocation]

	totalAllocated uint32
	totalFreed     uint32
}

// NewDescriptorAllocator creates an allocator for bind sets of the given
// layout shape. totalDescriptorCount must not exceed maxDescriptorsPerPool;
// setsPerPool is derived so a single pool covers that many sets without
// ever needing to grow.
func NewDescriptorAllocator(device vk.Device, cmds *vk.Commands, layout vk.DescriptorSetLayout, counts DescriptorCounts) *DescriptorAllocator {
	total := counts.Total()
	if total == 0 {
		total = 1
	}
	setsPerPool := maxDescriptorsPerPool / total
	if setsPerPool == 0 {
		setsPerPool = 1
	}

	return &DescriptorAllocator{
		device:      device,
		cmds:        cmds,
		layout:      layout,
		counts:      counts,
		setsPerPool: setsPerPool,
	}
}

// descriptorSetAllocation identifies a set returned by Allocate, required by
// Deallocate to locate it within the allocator's pools.
type descriptorSetAllocation struct {
	Set       vk.DescriptorSet
	poolIndex int
	setIndex  int
}

// Allocate pops a free set from the top of the available-pool stack,
// creating a new fixed-size pool first if none has room.
func (a *DescriptorAllocator) Allocate() (descriptorSetAllocation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.available) == 0 {
		if err := a.createPool(); err != nil {
			return descriptorSetAllocation{}, err
		}
	}

	poolIdx := a.available[len(a.available)-1]
	pool := a.pools[poolIdx]
	setIdx := pool.freeSetIndices[len(pool.freeSetIndices)-1]
	pool.freeSetIndices = pool.freeSetIndices[:len(pool.freeSetIndices)-1]
	if len(pool.freeSetIndices) == 0 {
		a.available = a.available[:len(a.available)-1]
	}

	a.totalAllocated++
	return descriptorSetAllocation{Set: pool.sets[setIdx], poolIndex: poolIdx, setIndex: setIdx}, nil
}

// Deallocate schedules a descriptor set for return to its pool's free list.
// usedSerials lists, per queue that had the set bound in a submitted
// command list, the serial that must retire before the set is reusable. If
// empty (the set was never bound anywhere), it is restored immediately.
func (a *DescriptorAllocator) Deallocate(alloc descriptorSetAllocation, usedSerials ...Serial) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(usedSerials) == 0 {
		a.restoreLocked(alloc.poolIndex, alloc.setIndex)
		return
	}

	d := &deallocation{poolIndex: alloc.poolIndex, setIndex: alloc.setIndex, refQueueCount: int32(len(usedSerials))}
	for _, serial := range usedSerials {
		a.pending.Push(serial, d)
	}
}

// FinishDeallocation restores every descriptor set whose pending
// deallocations have all retired as of completedSerial.
func (a *DescriptorAllocator) FinishDeallocation(completedSerial Serial) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending.IterateUpTo(completedSerial, func(_ Serial, d *deallocation) {
		d.refQueueCount--
		if d.refQueueCount == 0 {
			a.restoreLocked(d.poolIndex, d.setIndex)
		}
	})
	a.pending.ClearUpTo(completedSerial)
}

func (a *DescriptorAllocator) restoreLocked(poolIndex, setIndex int) {
	pool := a.pools[poolIndex]
	wasEmpty := len(pool.freeSetIndices) == 0
	pool.freeSetIndices = append(pool.freeSetIndices, setIndex)
	if wasEmpty {
		a.available = append(a.available, poolIndex)
	}
	a.totalFreed++
}

// createPool allocates a new fixed-size VkDescriptorPool with exactly
// setsPerPool sets of the allocator's layout, pre-allocated in a single
// vkAllocateDescriptorSets call.
func (a *DescriptorAllocator) createPool() error {
	poolSizes := a.counts.Multiply(a.setsPerPool).poolSizes()
	if len(poolSizes) == 0 {
		poolSizes = []vk.DescriptorPoolSize{{Type: vk.DescriptorTypeUniformBuffer, DescriptorCount: a.setsPerPool}}
	}

	createInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		MaxSets:       a.setsPerPool,
		PoolSizeCount: uint32(len(poolSizes)),
		PPoolSizes:    &poolSizes[0],
	}

	var handle vk.DescriptorPool
	if result := vkCreateDescriptorPool(a.cmds, a.device, &createInfo, nil, &handle); result != vk.Success {
		return fmt.Errorf("vkCreateDescriptorPool failed: %d", result)
	}

	layouts := make([]vk.DescriptorSetLayout, a.setsPerPool)
	for i := range layouts {
		layouts[i] = a.layout
	}
	sets := make([]vk.DescriptorSet, a.setsPerPool)
	allocInfo := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     handle,
		DescriptorSetCount: a.setsPerPool,
		PSetLayouts:        &layouts[0],
	}
	if result := vkAllocateDescriptorSets(a.cmds, a.device, &allocInfo, &sets[0]); result != vk.Success {
		vkDestroyDescriptorPool(a.cmds, a.device, handle, nil)
		return fmt.Errorf("vkAllocateDescriptorSets failed: %d", result)
	}

	free := make([]int, a.setsPerPool)
	for i := range free {
		free[i] = int(a.setsPerPool) - 1 - i
	}

	a.pools = append(a.pools, &descriptorPool{handle: handle, sets: sets, freeSetIndices: free})
	a.available = append(a.available, len(a.pools)-1)
	return nil
}

// Destroy releases every pool owned by this allocator.
func (a *DescriptorAllocator) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, pool := range a.pools {
		vkDestroyDescriptorPool(a.cmds, a.device, pool.handle, nil)
	}
	a.pools = nil
	a.available = nil
}

// Stats returns allocator statistics: live pool count and lifetime
// allocate/free counts.
func (a *DescriptorAllocator) Stats() (pools int, allocated, freed uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pools), a.totalAllocated, a.totalFreed
}

// poolSizes converts non-zero counts into VkDescriptorPoolSize entries.
func (c DescriptorCounts) poolSizes() []vk.DescriptorPoolSize {
	var sizes []vk.DescriptorPoolSize
	add := func(t vk.DescriptorType, n uint32) {
		if n > 0 {
			sizes = append(sizes, vk.DescriptorPoolSize{Type: t, DescriptorCount: n})
		}
	}
	add(vk.DescriptorTypeSampler, c.Samplers)
	add(vk.DescriptorTypeSampledImage, c.SampledImages)
	add(vk.DescriptorTypeStorageImage, c.StorageImages)
	add(vk.DescriptorTypeUniformBuffer, c.UniformBuffers)
	add(vk.DescriptorTypeStorageBuffer, c.StorageBuffers)
	add(vk.DescriptorTypeUniformTexelBuffer, c.UniformTexelBuffer)
	add(vk.DescriptorTypeStorageTexelBuffer, c.StorageTexelBuffer)
	add(vk.DescriptorTypeInputAttachment, c.InputAttachments)
	return sizes
}

// Vulkan function wrappers

func vkCreateDescriptorPool(cmds *vk.Commands, device vk.Device, createInfo *vk.DescriptorPoolCreateInfo, _ unsafe.Pointer, pool *vk.DescriptorPool) vk.Result {
	return cmds.CreateDescriptorPool(device, createInfo, nil, pool)
}

func vkDestroyDescriptorPool(cmds *vk.Commands, device vk.Device, pool vk.DescriptorPool, _ unsafe.Pointer) {
	cmds.DestroyDescriptorPool(device, pool, nil)
}

func vkAllocateDescriptorSets(cmds *vk.Commands, device vk.Device, allocInfo *vk.DescriptorSetAllocateInfo, sets *vk.DescriptorSet) vk.Result {
	return cmds.AllocateDescriptorSets(device, allocInfo, sets)
}

func vkFreeDescriptorSets(cmds *vk.Commands, device vk.Device, pool vk.DescriptorPool, count uint32, sets *vk.DescriptorSet) vk.Result {
	return cmds.FreeDescriptorSets(device, pool, count, sets)
}

func vkUpdateDescriptorSets(cmds *vk.Commands, device vk.Device, writeCount uint32, writes *vk.WriteDescriptorSet, copyCount uint32, copies *vk.CopyDescriptorSet) {
	cmds.UpdateDescriptorSets(device, writeCount, writes, copyCount, copies)
}
