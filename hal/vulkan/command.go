// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/redwarx/rhi/hal"
	"github.com/redwarx/rhi/hal/vulkan/vk"
	"github.com/redwarx/rhi/types"
)

// CommandPool manages command buffer allocation.
type CommandPool struct {
	handle vk.CommandPool
	device *Device
}

// CommandBuffer holds a recorded Vulkan command buffer, already tagged with
// the serial it will run under so that resources it touches can be retired
// once that serial completes.
type CommandBuffer struct {
	handle vk.CommandBuffer
	pool   *CommandPool
	queue  *Queue
	serial Serial
}

// Destroy releases the command buffer resources.
func (c *CommandBuffer) Destroy() {
	// Command buffers are freed when the pool is destroyed or reset.
	c.handle = 0
}

// CommandEncoder records Vulkan commands for one queue. Every buffer and
// texture transition it records against queue's serial, so the trackers can
// tell a submission's resource usage apart from a later one's.
type CommandEncoder struct {
	device      *Device
	pool        *CommandPool
	cmdBuffer   vk.CommandBuffer
	label       string
	isRecording bool

	queue  *Queue
	serial Serial
}

// BeginEncoding begins command recording. The encoder records against its
// queue's next submission serial, so trackers can attribute this encoder's
// resource usage to the submission that will eventually carry it.
func (e *CommandEncoder) BeginEncoding(label string) error {
	e.label = label
	if e.queue != nil {
		e.serial = e.queue.lastSubmittedSerial + 1
	}

	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit),
	}

	if result := e.device.cmds.BeginCommandBuffer(e.cmdBuffer, &beginInfo); result != vk.Success {
		return fmt.Errorf("vulkan: vkBeginCommandBuffer failed: %d", result)
	}

	e.isRecording = true
	return nil
}

// EndEncoding finishes command recording and returns a command buffer.
func (e *CommandEncoder) EndEncoding() (hal.CommandBuffer, error) {
	if !e.isRecording {
		return nil, fmt.Errorf("vulkan: command encoder is not recording")
	}

	if result := e.device.cmds.EndCommandBuffer(e.cmdBuffer); result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkEndCommandBuffer failed: %d", result)
	}

	e.isRecording = false

	return &CommandBuffer{
		handle: e.cmdBuffer,
		pool:   e.pool,
		queue:  e.queue,
		serial: e.serial,
	}, nil
}

// DiscardEncoding discards the encoder.
func (e *CommandEncoder) DiscardEncoding() {
	if e.isRecording {
		_ = e.device.cmds.EndCommandBuffer(e.cmdBuffer)
		e.isRecording = false
	}
}

// ResetAll resets command buffers for reuse.
func (e *CommandEncoder) ResetAll(commandBuffers []hal.CommandBuffer) {
	if e.pool != nil {
		e.device.cmds.ResetCommandPool(e.device.handle, e.pool.handle, 0)
	}
	_ = commandBuffers // individual buffers are reset with the pool
}

// BufferTransition names a buffer moving to a new usage, recorded by
// TransitionBuffers against the tracker it carries.
type BufferTransition struct {
	Buffer hal.Buffer
	Usage  BufferUsage
	Stages ShaderStage
}

// TransitionBuffers consults each buffer's BufferTracker for the barrier its
// move to Usage needs, and emits a single vkCmdPipelineBarrier2 covering
// every buffer that actually needs one. Buffers whose new usage can be
// served by their already-tracked state (accumulating reads) cost nothing.
func (e *CommandEncoder) TransitionBuffers(transitions []BufferTransition) {
	if !e.isRecording || len(transitions) == 0 {
		return
	}

	var barriers []vk.BufferMemoryBarrier2
	for _, t := range transitions {
		buf, ok := t.Buffer.(*Buffer)
		if !ok {
			continue
		}

		if barrier, needsBarrier := buf.tracker.TransitionUsage(t.Usage, t.Stages, e.queue, e.serial); needsBarrier {
			barriers = append(barriers, vk.BufferMemoryBarrier2{
				SType:               vk.StructureTypeBufferMemoryBarrier2,
				SrcStageMask:        shaderStageToPipelineStageMask2(barrier.SrcStage),
				SrcAccessMask:       bufferUsageToAccessMask2(barrier.SrcAccess),
				DstStageMask:        shaderStageToPipelineStageMask2(barrier.DstStage),
				DstAccessMask:       bufferUsageToAccessMask2(barrier.DstAccess),
				SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
				DstQueueFamilyIndex: vk.QueueFamilyIgnored,
				Buffer:              buf.handle,
				Offset:              0,
				Size:                vk.DeviceSize(vk.WholeSize),
			})
		}
		buf.tracker.MarkUsedInPendingCommandList(e.queue, e.serial)
	}

	if len(barriers) == 0 {
		return
	}

	depInfo := vk.DependencyInfo{
		SType:                    vk.StructureTypeDependencyInfo,
		BufferMemoryBarrierCount: uint32(len(barriers)),
		PBufferMemoryBarriers:    &barriers[0],
	}
	e.device.cmds.CmdPipelineBarrier2(e.cmdBuffer, &depInfo)
}

// TextureTransition names a texture subresource range moving to a new
// usage. A nil Range transitions the whole texture.
type TextureTransition struct {
	Texture hal.Texture
	Range   *SubresourceRange
	Usage   TextureUsage
	Stages  ShaderStage
}

// TransitionTextures consults each texture's TextureTracker for the layout
// transition its move to Usage needs over Range, compressed per subresource
// by the tracker, and emits one vkCmdPipelineBarrier2 for everything that
// needs a barrier.
func (e *CommandEncoder) TransitionTextures(transitions []TextureTransition) {
	if !e.isRecording || len(transitions) == 0 {
		return
	}

	var barriers []vk.ImageMemoryBarrier2
	for _, t := range transitions {
		tex, ok := t.Texture.(*Texture)
		if !ok {
			continue
		}

		r := t.Range
		if r == nil {
			full := tex.fullRange()
			r = &full
		}

		tex.tracker.TransitionUsageForMultiRange(*r, t.Usage, t.Stages, e.queue, e.serial, func(b TextureBarrier) {
			barriers = append(barriers, vk.ImageMemoryBarrier2{
				SType:               vk.StructureTypeImageMemoryBarrier2,
				SrcStageMask:        shaderStageToPipelineStageMask2(b.SrcStage),
				SrcAccessMask:       textureUsageToAccessMask2(b.SrcUsage),
				DstStageMask:        shaderStageToPipelineStageMask2(b.DstStage),
				DstAccessMask:       textureUsageToAccessMask2(b.DstUsage),
				OldLayout:           textureUsageToVkImageLayout(b.OldLayout, b.Range.Aspects),
				NewLayout:           textureUsageToVkImageLayout(b.NewLayout, b.Range.Aspects),
				SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
				DstQueueFamilyIndex: vk.QueueFamilyIgnored,
				Image:               tex.handle,
				SubresourceRange: vk.ImageSubresourceRange{
					AspectMask:     aspectToVk(b.Range.Aspects),
					BaseMipLevel:   b.Range.BaseMipLevel,
					LevelCount:     b.Range.LevelCount,
					BaseArrayLayer: b.Range.BaseArrayLayer,
					LayerCount:     b.Range.LayerCount,
				},
			})
		})
		tex.tracker.MarkUsedInPendingCommandList(e.queue, e.serial)
	}

	if len(barriers) == 0 {
		return
	}

	depInfo := vk.DependencyInfo{
		SType:                   vk.StructureTypeDependencyInfo,
		ImageMemoryBarrierCount: uint32(len(barriers)),
		PImageMemoryBarriers:    &barriers[0],
	}
	e.device.cmds.CmdPipelineBarrier2(e.cmdBuffer, &depInfo)
}

// fullRange reports the whole-texture subresource range for t, as tracked
// by its TextureTracker (one array layer, every mip level).
func (t *Texture) fullRange() SubresourceRange {
	return SubresourceRange{
		Aspects:        aspectsForFormat(t.format),
		BaseMipLevel:   0,
		LevelCount:     t.mipLevels,
		BaseArrayLayer: 0,
		LayerCount:     1,
	}
}

// aspectToVk converts a local Aspect bitmask to VkImageAspectFlags.
func aspectToVk(a Aspect) vk.ImageAspectFlags {
	var flags vk.ImageAspectFlags
	if a&AspectColor != 0 {
		flags |= vk.ImageAspectFlags(vk.ImageAspectColorBit)
	}
	if a&AspectDepth != 0 {
		flags |= vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	}
	if a&AspectStencil != 0 {
		flags |= vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	}
	return flags
}

// ClearBuffer clears a buffer region to zero.
func (e *CommandEncoder) ClearBuffer(buffer hal.Buffer, offset, size uint64) {
	if !e.isRecording {
		return
	}

	buf, ok := buffer.(*Buffer)
	if !ok {
		return
	}

	e.device.cmds.CmdFillBuffer(e.cmdBuffer, buf.handle, vk.DeviceSize(offset), vk.DeviceSize(size), 0)
}

// BufferCopy describes one region of a buffer-to-buffer copy.
type BufferCopy struct {
	SrcOffset uint64
	DstOffset uint64
	Size      uint64
}

// CopyBufferToBuffer copies data between buffers.
func (e *CommandEncoder) CopyBufferToBuffer(src, dst hal.Buffer, regions []BufferCopy) {
	if !e.isRecording || len(regions) == 0 {
		return
	}

	srcBuf, srcOk := src.(*Buffer)
	dstBuf, dstOk := dst.(*Buffer)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := make([]vk.BufferCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.BufferCopy{
			SrcOffset: vk.DeviceSize(r.SrcOffset),
			DstOffset: vk.DeviceSize(r.DstOffset),
			Size:      vk.DeviceSize(r.Size),
		}
	}

	e.device.cmds.CmdCopyBuffer(e.cmdBuffer, srcBuf.handle, dstBuf.handle, uint32(len(vkRegions)), &vkRegions[0])
}

// ImageCopyTexture names a texture subresource a copy reads from or writes
// to: one mip level, one array layer's worth of aspect, at Origin.
type ImageCopyTexture struct {
	MipLevel uint32
	Origin   vk.Offset3D
	Aspect   types.TextureAspect
}

// ImageDataLayout describes how a linear buffer region is interpreted as
// the rows of a texture copy.
type ImageDataLayout struct {
	Offset       uint64
	BytesPerRow  uint32
	RowsPerImage uint32
}

// BufferTextureCopy describes one region of a buffer<->texture copy.
type BufferTextureCopy struct {
	BufferLayout ImageDataLayout
	TextureBase  ImageCopyTexture
	Size         Extent3D
}

func convertBufferImageCopyRegions(regions []BufferTextureCopy) []vk.BufferImageCopy {
	vkRegions := make([]vk.BufferImageCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.BufferImageCopy{
			BufferOffset:      vk.DeviceSize(r.BufferLayout.Offset),
			BufferRowLength:   r.BufferLayout.BytesPerRow,
			BufferImageHeight: r.BufferLayout.RowsPerImage,
			ImageSubresource: vk.ImageSubresourceLayers{
				AspectMask:     textureAspectToVk(r.TextureBase.Aspect),
				MipLevel:       r.TextureBase.MipLevel,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			ImageOffset: r.TextureBase.Origin,
			ImageExtent: vk.Extent3D{
				Width:  r.Size.Width,
				Height: r.Size.Height,
				Depth:  r.Size.Depth,
			},
		}
	}
	return vkRegions
}

// CopyBufferToTexture copies data from a buffer to a texture. The texture
// must already be transitioned to TextureUsageCopyDst.
func (e *CommandEncoder) CopyBufferToTexture(src hal.Buffer, dst hal.Texture, regions []BufferTextureCopy) {
	if !e.isRecording || len(regions) == 0 {
		return
	}

	srcBuf, srcOk := src.(*Buffer)
	dstTex, dstOk := dst.(*Texture)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := convertBufferImageCopyRegions(regions)
	e.device.cmds.CmdCopyBufferToImage(e.cmdBuffer, srcBuf.handle, dstTex.handle,
		vk.ImageLayoutTransferDstOptimal, uint32(len(vkRegions)), &vkRegions[0])
}

// CopyTextureToBuffer copies data from a texture to a buffer. The texture
// must already be transitioned to TextureUsageCopySrc.
func (e *CommandEncoder) CopyTextureToBuffer(src hal.Texture, dst hal.Buffer, regions []BufferTextureCopy) {
	if !e.isRecording || len(regions) == 0 {
		return
	}

	srcTex, srcOk := src.(*Texture)
	dstBuf, dstOk := dst.(*Buffer)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := convertBufferImageCopyRegions(regions)
	e.device.cmds.CmdCopyImageToBuffer(e.cmdBuffer, srcTex.handle,
		vk.ImageLayoutTransferSrcOptimal, dstBuf.handle, uint32(len(vkRegions)), &vkRegions[0])
}

// TextureCopy describes one region of a texture-to-texture copy.
type TextureCopy struct {
	SrcBase ImageCopyTexture
	DstBase ImageCopyTexture
	Size    Extent3D
}

// CopyTextureToTexture copies data between textures. Source must already be
// in TextureUsageCopySrc and destination in TextureUsageCopyDst.
func (e *CommandEncoder) CopyTextureToTexture(src, dst hal.Texture, regions []TextureCopy) {
	if !e.isRecording || len(regions) == 0 {
		return
	}

	srcTex, srcOk := src.(*Texture)
	dstTex, dstOk := dst.(*Texture)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := make([]vk.ImageCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.ImageCopy{
			SrcSubresource: vk.ImageSubresourceLayers{
				AspectMask:     textureAspectToVk(r.SrcBase.Aspect),
				MipLevel:       r.SrcBase.MipLevel,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			SrcOffset: r.SrcBase.Origin,
			DstSubresource: vk.ImageSubresourceLayers{
				AspectMask:     textureAspectToVk(r.DstBase.Aspect),
				MipLevel:       r.DstBase.MipLevel,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			DstOffset: r.DstBase.Origin,
			Extent: vk.Extent3D{
				Width:  r.Size.Width,
				Height: r.Size.Height,
				Depth:  r.Size.Depth,
			},
		}
	}

	e.device.cmds.CmdCopyImage(e.cmdBuffer, srcTex.handle, vk.ImageLayoutTransferSrcOptimal,
		dstTex.handle, vk.ImageLayoutTransferDstOptimal, uint32(len(vkRegions)), &vkRegions[0])
}

// ColorAttachment describes one dynamic-rendering color attachment.
type ColorAttachment struct {
	View          hal.TextureView
	LoadOp        types.LoadOp
	StoreOp       types.StoreOp
	ClearValue    types.Color
	ResolveTarget hal.TextureView
}

// DepthStencilAttachment describes a dynamic-rendering depth/stencil
// attachment.
type DepthStencilAttachment struct {
	View             hal.TextureView
	DepthLoadOp      types.LoadOp
	DepthStoreOp     types.StoreOp
	DepthClearValue  float32
	StencilClearValue uint32
}

// RenderPassDescriptor configures a dynamic-rendering render pass.
type RenderPassDescriptor struct {
	Label                  string
	ColorAttachments       []ColorAttachment
	DepthStencilAttachment *DepthStencilAttachment
	Width, Height          uint32
}

// ComputePassDescriptor configures a compute pass. Compute passes carry no
// Vulkan-level begin/end state, but the label is kept for debug markers.
type ComputePassDescriptor struct {
	Label string
}

// RenderPipeline is a minimal graphics pipeline handle. Pipeline creation
// (shader stage wiring, fixed-function state) is out of scope here; callers
// construct one directly against a handle obtained elsewhere.
type RenderPipeline struct {
	handle vk.Pipeline
	layout vk.PipelineLayout
	device *Device
}

// Destroy destroys the pipeline.
func (p *RenderPipeline) Destroy() {
	if p.handle != 0 {
		p.device.cmds.DestroyPipeline(p.device.handle, p.handle, nil)
		p.handle = 0
	}
}

// ComputePipeline is a minimal compute pipeline handle, see RenderPipeline.
type ComputePipeline struct {
	handle vk.Pipeline
	layout vk.PipelineLayout
	device *Device
}

// Destroy destroys the pipeline.
func (p *ComputePipeline) Destroy() {
	if p.handle != 0 {
		p.device.cmds.DestroyPipeline(p.device.handle, p.handle, nil)
		p.handle = 0
	}
}

// RenderBundle is a pre-recorded sequence of render commands. Recording
// into bundles is not implemented; ExecuteBundle is a stub until secondary
// command buffer support lands.
type RenderBundle interface {
	hal.Resource
}

// BeginRenderPass begins a render pass using dynamic rendering (Vulkan 1.3
// VK_KHR_dynamic_rendering).
func (e *CommandEncoder) BeginRenderPass(desc *RenderPassDescriptor) *RenderPassEncoder {
	rpe := &RenderPassEncoder{
		encoder: e,
		desc:    desc,
	}

	if !e.isRecording {
		return rpe
	}

	colorAttachments := make([]vk.RenderingAttachmentInfo, len(desc.ColorAttachments))
	for i, ca := range desc.ColorAttachments {
		view, ok := ca.View.(*TextureView)
		if !ok {
			continue
		}

		colorAttachments[i] = vk.RenderingAttachmentInfo{
			SType:       vk.StructureTypeRenderingAttachmentInfo,
			ImageView:   view.handle,
			ImageLayout: vk.ImageLayoutColorAttachmentOptimal,
			LoadOp:      loadOpToVk(ca.LoadOp),
			StoreOp:     storeOpToVk(ca.StoreOp),
			ClearValue: vk.ClearValueColor(
				float32(ca.ClearValue.R),
				float32(ca.ClearValue.G),
				float32(ca.ClearValue.B),
				float32(ca.ClearValue.A),
			),
		}

		if ca.ResolveTarget != nil {
			if resolveView, ok := ca.ResolveTarget.(*TextureView); ok {
				colorAttachments[i].ResolveMode = vk.ResolveModeAverageBit
				colorAttachments[i].ResolveImageView = resolveView.handle
				colorAttachments[i].ResolveImageLayout = vk.ImageLayoutColorAttachmentOptimal
			}
		}
	}

	renderingInfo := vk.RenderingInfo{
		SType: vk.StructureTypeRenderingInfo,
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: vk.Extent2D{Width: desc.Width, Height: desc.Height},
		},
		LayerCount:           1,
		ColorAttachmentCount: uint32(len(colorAttachments)),
	}
	if len(colorAttachments) > 0 {
		renderingInfo.PColorAttachments = &colorAttachments[0]
	}

	var depthAttachment vk.RenderingAttachmentInfo
	if desc.DepthStencilAttachment != nil {
		dsa := desc.DepthStencilAttachment
		if view, ok := dsa.View.(*TextureView); ok {
			depthAttachment = vk.RenderingAttachmentInfo{
				SType:       vk.StructureTypeRenderingAttachmentInfo,
				ImageView:   view.handle,
				ImageLayout: vk.ImageLayoutDepthStencilAttachmentOptimal,
				LoadOp:      loadOpToVk(dsa.DepthLoadOp),
				StoreOp:     storeOpToVk(dsa.DepthStoreOp),
				ClearValue:  vk.ClearValueDepthStencil(dsa.DepthClearValue, dsa.StencilClearValue),
			}
			renderingInfo.PDepthAttachment = &depthAttachment
			renderingInfo.PStencilAttachment = &depthAttachment
		}
	}

	e.device.cmds.CmdBeginRendering(e.cmdBuffer, &renderingInfo)

	return rpe
}

// BeginComputePass begins a compute pass.
func (e *CommandEncoder) BeginComputePass(desc *ComputePassDescriptor) *ComputePassEncoder {
	_ = desc
	return &ComputePassEncoder{encoder: e}
}

// RenderPassEncoder records the commands of one Vulkan render pass.
type RenderPassEncoder struct {
	encoder     *CommandEncoder
	desc        *RenderPassDescriptor
	pipeline    *RenderPipeline
	indexFormat types.IndexFormat
}

// End finishes the render pass.
func (e *RenderPassEncoder) End() {
	if e.encoder.isRecording {
		e.encoder.device.cmds.CmdEndRendering(e.encoder.cmdBuffer)
	}
}

// SetPipeline sets the render pipeline.
func (e *RenderPassEncoder) SetPipeline(pipeline *RenderPipeline) {
	if pipeline == nil || !e.encoder.isRecording {
		return
	}
	e.pipeline = pipeline

	e.encoder.device.cmds.CmdBindPipeline(e.encoder.cmdBuffer, vk.PipelineBindPointGraphics, pipeline.handle)
}

// SetBindSet sets a bind set.
func (e *RenderPassEncoder) SetBindSet(index uint32, group hal.BindSet, offsets []uint32) {
	bg, ok := group.(*BindSet)
	if !ok || !e.encoder.isRecording || e.pipeline == nil {
		return
	}

	var pOffsets *uint32
	if len(offsets) > 0 {
		pOffsets = &offsets[0]
	}

	e.encoder.device.cmds.CmdBindDescriptorSets(e.encoder.cmdBuffer, vk.PipelineBindPointGraphics,
		e.pipeline.layout, index, 1, &bg.handle, uint32(len(offsets)), pOffsets)
}

// SetVertexBuffer sets a vertex buffer.
func (e *RenderPassEncoder) SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}

	vkOffset := vk.DeviceSize(offset)
	vkBuffer := buf.handle
	e.encoder.device.cmds.CmdBindVertexBuffers(e.encoder.cmdBuffer, slot, 1, &vkBuffer, &vkOffset)
}

// SetIndexBuffer sets the index buffer.
func (e *RenderPassEncoder) SetIndexBuffer(buffer hal.Buffer, format types.IndexFormat, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}

	e.indexFormat = format
	indexType := vk.IndexTypeUint16
	if format == types.IndexFormatUint32 {
		indexType = vk.IndexTypeUint32
	}

	e.encoder.device.cmds.CmdBindIndexBuffer(e.encoder.cmdBuffer, buf.handle, vk.DeviceSize(offset), indexType)
}

// SetViewport sets the viewport.
func (e *RenderPassEncoder) SetViewport(x, y, width, height, minDepth, maxDepth float32) {
	if !e.encoder.isRecording {
		return
	}

	viewport := vk.Viewport{X: x, Y: y, Width: width, Height: height, MinDepth: minDepth, MaxDepth: maxDepth}
	e.encoder.device.cmds.CmdSetViewport(e.encoder.cmdBuffer, 0, 1, &viewport)
}

// SetScissorRect sets the scissor rectangle.
func (e *RenderPassEncoder) SetScissorRect(x, y, width, height uint32) {
	if !e.encoder.isRecording {
		return
	}

	scissor := vk.Rect2D{Offset: vk.Offset2D{X: int32(x), Y: int32(y)}, Extent: vk.Extent2D{Width: width, Height: height}}
	e.encoder.device.cmds.CmdSetScissor(e.encoder.cmdBuffer, 0, 1, &scissor)
}

// SetBlendConstant sets the blend constant.
func (e *RenderPassEncoder) SetBlendConstant(color *types.Color) {
	if !e.encoder.isRecording || color == nil {
		return
	}

	constants := [4]float32{float32(color.R), float32(color.G), float32(color.B), float32(color.A)}
	e.encoder.device.cmds.CmdSetBlendConstants(e.encoder.cmdBuffer, &constants)
}

// SetStencilReference sets the stencil reference value for both faces.
func (e *RenderPassEncoder) SetStencilReference(ref uint32) {
	if !e.encoder.isRecording {
		return
	}

	e.encoder.device.cmds.CmdSetStencilReference(e.encoder.cmdBuffer, vk.StencilFaceFlags(vk.StencilFaceFrontAndBack), ref)
}

// Draw draws primitives.
func (e *RenderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	if !e.encoder.isRecording {
		return
	}
	e.encoder.device.cmds.CmdDraw(e.encoder.cmdBuffer, vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndexed draws indexed primitives.
func (e *RenderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	if !e.encoder.isRecording {
		return
	}
	e.encoder.device.cmds.CmdDrawIndexed(e.encoder.cmdBuffer, indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

// DrawIndirect draws primitives with GPU-generated parameters.
func (e *RenderPassEncoder) DrawIndirect(buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.encoder.device.cmds.CmdDrawIndirect(e.encoder.cmdBuffer, buf.handle, vk.DeviceSize(offset), 1, 0)
}

// DrawIndexedIndirect draws indexed primitives with GPU-generated parameters.
func (e *RenderPassEncoder) DrawIndexedIndirect(buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.encoder.device.cmds.CmdDrawIndexedIndirect(e.encoder.cmdBuffer, buf.handle, vk.DeviceSize(offset), 1, 0)
}

// ExecuteBundle executes a pre-recorded render bundle.
func (e *RenderPassEncoder) ExecuteBundle(bundle RenderBundle) {
	// TODO: record via secondary command buffers once bundle recording exists.
	_ = bundle
}

// ComputePassEncoder records the commands of one Vulkan compute pass.
type ComputePassEncoder struct {
	encoder  *CommandEncoder
	pipeline *ComputePipeline
}

// End finishes the compute pass. Compute passes have no Vulkan-level end.
func (e *ComputePassEncoder) End() {}

// SetPipeline sets the compute pipeline.
func (e *ComputePassEncoder) SetPipeline(pipeline *ComputePipeline) {
	if pipeline == nil || !e.encoder.isRecording {
		return
	}
	e.pipeline = pipeline
	e.encoder.device.cmds.CmdBindPipeline(e.encoder.cmdBuffer, vk.PipelineBindPointCompute, pipeline.handle)
}

// SetBindSet sets a bind set.
func (e *ComputePassEncoder) SetBindSet(index uint32, group hal.BindSet, offsets []uint32) {
	bg, ok := group.(*BindSet)
	if !ok || !e.encoder.isRecording || e.pipeline == nil {
		return
	}

	var pOffsets *uint32
	if len(offsets) > 0 {
		pOffsets = &offsets[0]
	}

	e.encoder.device.cmds.CmdBindDescriptorSets(e.encoder.cmdBuffer, vk.PipelineBindPointCompute,
		e.pipeline.layout, index, 1, &bg.handle, uint32(len(offsets)), pOffsets)
}

// Dispatch dispatches compute work.
func (e *ComputePassEncoder) Dispatch(x, y, z uint32) {
	if !e.encoder.isRecording {
		return
	}
	e.encoder.device.cmds.CmdDispatch(e.encoder.cmdBuffer, x, y, z)
}

// DispatchIndirect dispatches compute work with GPU-generated parameters.
func (e *ComputePassEncoder) DispatchIndirect(buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.encoder.device.cmds.CmdDispatchIndirect(e.encoder.cmdBuffer, buf.handle, vk.DeviceSize(offset))
}

// --- Helper functions ---

func textureAspectToVk(aspect types.TextureAspect) vk.ImageAspectFlags {
	switch aspect {
	case types.TextureAspectDepthOnly:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case types.TextureAspectStencilOnly:
		return vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	default:
		return vk.ImageAspectFlags(vk.ImageAspectColorBit)
	}
}

func loadOpToVk(op types.LoadOp) vk.AttachmentLoadOp {
	switch op {
	case types.LoadOpClear:
		return vk.AttachmentLoadOpClear
	case types.LoadOpLoad:
		return vk.AttachmentLoadOpLoad
	default:
		return vk.AttachmentLoadOpDontCare
	}
}

func storeOpToVk(op types.StoreOp) vk.AttachmentStoreOp {
	switch op {
	case types.StoreOpStore:
		return vk.AttachmentStoreOpStore
	default:
		return vk.AttachmentStoreOpDontCare
	}
}
