// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

// TextureSyncInfo is the per-subresource synchronization state a
// SubresourceStorage[TextureSyncInfo] tracks for one texture. Unlike
// buffers, textures carry a required image layout per usage, so a
// transition is needed whenever the layout changes even between two reads.
type TextureSyncInfo struct {
	usage        TextureUsage
	shaderStages ShaderStage
	owningQueue  *Queue
}

// TextureBarrier describes the layout transition and stage/access masks a
// texture subresource range needs before a new usage can be recorded.
type TextureBarrier struct {
	Range     SubresourceRange
	SrcStage  ShaderStage
	SrcUsage  TextureUsage
	DstStage  ShaderStage
	DstUsage  TextureUsage
	OldLayout TextureUsage // usage whose layout the range is currently in
	NewLayout TextureUsage // usage whose layout the range must move to
}

// TextureTracker owns one texture's cross-submission synchronization state,
// compressed per spec over (aspect, layer, mip) via SubresourceStorage.
type TextureTracker struct {
	storage *SubresourceStorage[TextureSyncInfo]

	lastUsageSerial Serial
	lastUsedQueue   *Queue
}

// NewTextureTracker allocates a tracker for a texture with the given aspect
// set and dimensions, seeded to TextureUsageNone (VK_IMAGE_LAYOUT_UNDEFINED)
// everywhere.
func NewTextureTracker(aspects Aspect, layerCount, mipCount uint32) *TextureTracker {
	return &TextureTracker{
		storage: NewSubresourceStorage[TextureSyncInfo](aspects, layerCount, mipCount),
	}
}

func textureSyncEqual(a, b TextureSyncInfo) bool {
	return a.usage == b.usage && a.shaderStages == b.shaderStages && a.owningQueue == b.owningQueue
}

// CanReuseWithoutBarrier reports whether a subresource already in old's
// state can serve new's usage without an intervening barrier: both usages
// must be read-only, must require the same image layout, and the resource
// must not be crossing a queue-family boundary.
func CanReuseWithoutBarrier(old TextureSyncInfo, newUsage TextureUsage, newQueue *Queue) bool {
	if !old.usage.IsReadOnly() || !newUsage.IsReadOnly() {
		return false
	}
	if usageToLayout(old.usage) != usageToLayout(newUsage) {
		return false
	}
	if old.owningQueue != nil && old.owningQueue != newQueue {
		return false
	}
	return true
}

// TransitionUsageForMultiRange walks r in the units SubresourceStorage.Update
// visits (a whole aspect, a whole layer or a single mip), invoking emit for each one that needs a barrier to move from its current
// recorded usage to newUsage/newStages, then updates the tracker to reflect
// the new state over all of r.
func (t *TextureTracker) TransitionUsageForMultiRange(r SubresourceRange, newUsage TextureUsage, newStages ShaderStage, queue *Queue, commandListSerial Serial, emit func(TextureBarrier)) {
	t.storage.Update(r, textureSyncEqual, func(sub SubresourceRange, info *TextureSyncInfo) {
		old := *info

		if !CanReuseWithoutBarrier(old, newUsage, queue) {
			emit(TextureBarrier{
				Range:     sub,
				SrcStage:  old.shaderStages,
				SrcUsage:  old.usage,
				DstStage:  newStages,
				DstUsage:  newUsage,
				OldLayout: old.usage,
				NewLayout: newUsage,
			})
		}

		info.usage = newUsage
		info.shaderStages = newStages
		info.owningQueue = queue
	})

	t.MarkUsedInPendingCommandList(queue, commandListSerial)
}

// MarkUsedInPendingCommandList records that this texture is referenced by a
// not-yet-completed command list, gating its destruction the same way
// BufferTracker.MarkUsedInPendingCommandList does for buffers.
func (t *TextureTracker) MarkUsedInPendingCommandList(queue *Queue, serial Serial) {
	if serial > t.lastUsageSerial || t.lastUsedQueue == nil {
		t.lastUsageSerial = serial
		t.lastUsedQueue = queue
	}
}

// ReadyForDestruction reports whether completedSerial has caught up to the
// last command list that used this texture.
func (t *TextureTracker) ReadyForDestruction(completedSerial Serial) bool {
	if t.lastUsedQueue == nil {
		return true
	}
	return completedSerial >= t.lastUsageSerial
}

// usageToLayout maps a usage to one representative usage per image layout of
// the spec §4.4 usage -> VkImageLayout table, so that two usages needing the
// same layout compare equal. A usage combining bits from more than one of
// these categories maps to the first matching case below.
func usageToLayout(usage TextureUsage) TextureUsage {
	switch {
	case usage == TextureUsageNone, usage == TextureUsageSwapChainAcquire:
		return TextureUsageNone
	case usage&TextureUsageSwapChainPresent != 0:
		return TextureUsageSwapChainPresent
	case usage&TextureUsageCopySrc != 0 && usage&^TextureUsageCopySrc == 0:
		return TextureUsageCopySrc
	case usage&TextureUsageCopyDst != 0 && usage&^TextureUsageCopyDst == 0:
		return TextureUsageCopyDst
	case usage&(TextureUsageStorageBinding|TextureUsageReadOnlyStorageBinding) != 0:
		return TextureUsageStorageBinding
	case usage&TextureUsageSampledBinding != 0:
		return TextureUsageSampledBinding
	case usage&TextureUsageRenderAttachment != 0:
		return TextureUsageRenderAttachment
	default:
		return TextureUsageNone
	}
}
