// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/redwarx/rhi/hal/vulkan/vk"
	"github.com/redwarx/rhi/types"
)

// Raw VkFilter/VkSamplerMipmapMode/VkSamplerAddressMode/VkCompareOp values.
// vk.SamplerCreateInfo takes these as plain uint32 fields; the generated vk
// package carries no enum table for them, so the values are hardcoded here
// the way const_ext.go hardcodes other spec constants.
const (
	vkFilterNearest uint32 = 0
	vkFilterLinear  uint32 = 1

	vkSamplerMipmapModeNearest uint32 = 0
	vkSamplerMipmapModeLinear uint32 = 1

	vkSamplerAddressModeRepeat         uint32 = 0
	vkSamplerAddressModeMirroredRepeat uint32 = 1
	vkSamplerAddressModeClampToEdge    uint32 = 2

	vkCompareOpNever          uint32 = 0
	vkCompareOpLess           uint32 = 1
	vkCompareOpEqual          uint32 = 2
	vkCompareOpLessOrEqual    uint32 = 3
	vkCompareOpGreater        uint32 = 4
	vkCompareOpNotEqual       uint32 = 5
	vkCompareOpGreaterOrEqual uint32 = 6
	vkCompareOpAlways         uint32 = 7
)

func filterModeToVk(f types.FilterMode) uint32 {
	if f == types.FilterModeLinear {
		return vkFilterLinear
	}
	return vkFilterNearest
}

func mipmapFilterModeToVk(f types.MipmapFilterMode) uint32 {
	if f == types.MipmapFilterModeLinear {
		return vkSamplerMipmapModeLinear
	}
	return vkSamplerMipmapModeNearest
}

func addressModeToVk(m types.AddressMode) uint32 {
	switch m {
	case types.AddressModeRepeat:
		return vkSamplerAddressModeRepeat
	case types.AddressModeMirrorRepeat:
		return vkSamplerAddressModeMirroredRepeat
	default:
		return vkSamplerAddressModeClampToEdge
	}
}

func compareFunctionToVk(c types.CompareFunction) uint32 {
	switch c {
	case types.CompareFunctionNever:
		return vkCompareOpNever
	case types.CompareFunctionLess:
		return vkCompareOpLess
	case types.CompareFunctionEqual:
		return vkCompareOpEqual
	case types.CompareFunctionLessEqual:
		return vkCompareOpLessOrEqual
	case types.CompareFunctionGreater:
		return vkCompareOpGreater
	case types.CompareFunctionNotEqual:
		return vkCompareOpNotEqual
	case types.CompareFunctionGreaterEqual:
		return vkCompareOpGreaterOrEqual
	default:
		return vkCompareOpAlways
	}
}

// descriptorTypeForEntry picks the VkDescriptorType a bind set layout entry
// maps to and the descriptor count it contributes (always 1: this core does
// not support descriptor arrays).
func descriptorTypeForEntry(entry types.BindSetLayoutEntry) (vk.DescriptorType, uint32) {
	switch {
	case entry.Buffer != nil:
		if entry.Buffer.Type == types.BufferBindingTypeUniform {
			return vk.DescriptorTypeUniformBuffer, 1
		}
		return vk.DescriptorTypeStorageBuffer, 1
	case entry.Sampler != nil:
		return vk.DescriptorTypeSampler, 1
	case entry.Texture != nil:
		return vk.DescriptorTypeSampledImage, 1
	case entry.Storage != nil:
		return vk.DescriptorTypeStorageImage, 1
	default:
		return vk.DescriptorTypeUniformBuffer, 1
	}
}

func addDescriptorCount(counts *DescriptorCounts, t vk.DescriptorType, n uint32) {
	switch t {
	case vk.DescriptorTypeSampler:
		counts.Samplers += n
	case vk.DescriptorTypeSampledImage:
		counts.SampledImages += n
	case vk.DescriptorTypeStorageImage:
		counts.StorageImages += n
	case vk.DescriptorTypeUniformBuffer:
		counts.UniformBuffers += n
	case vk.DescriptorTypeStorageBuffer:
		counts.StorageBuffers += n
	case vk.DescriptorTypeUniformTexelBuffer:
		counts.UniformTexelBuffer += n
	case vk.DescriptorTypeStorageTexelBuffer:
		counts.StorageTexelBuffer += n
	case vk.DescriptorTypeInputAttachment:
		counts.InputAttachments += n
	}
}

// shaderStagesToVk converts a types.ShaderStages bitmask to VkShaderStageFlags.
func shaderStagesToVk(stages types.ShaderStages) vk.ShaderStageFlags {
	var flags vk.ShaderStageFlags
	if stages&types.ShaderStageVertex != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageVertexBit)
	}
	if stages&types.ShaderStageFragment != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageFragmentBit)
	}
	if stages&types.ShaderStageCompute != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageComputeBit)
	}
	return flags
}

// textureViewDimensionToVk converts a view dimension to VkImageViewType,
// defaulting to 2D: TextureViewDimension2D, the zero value
// TextureViewDimensionUndefined and any unlisted value all map to 2D.
func textureViewDimensionToVk(dim types.TextureViewDimension) vk.ImageViewType {
	switch dim {
	case types.TextureViewDimension1D:
		return vk.ImageViewType1d
	case types.TextureViewDimension2DArray:
		return vk.ImageViewType2dArray
	case types.TextureViewDimensionCube:
		return vk.ImageViewTypeCube
	case types.TextureViewDimensionCubeArray:
		return vk.ImageViewTypeCubeArray
	case types.TextureViewDimension3D:
		return vk.ImageViewType3d
	default:
		return vk.ImageViewType2d
	}
}

// mipLevelCountOrRemaining resolves a texture view's mip level count: 0
// means every level from baseMipLevel to the texture's last level.
func mipLevelCountOrRemaining(requested, textureMipLevels, baseMipLevel uint32) uint32 {
	if requested != 0 {
		return requested
	}
	return textureMipLevels - baseMipLevel
}

// arrayLayerCountOrRemaining resolves a texture view's array layer count: 0
// means every layer from baseArrayLayer to the texture's last layer.
func arrayLayerCountOrRemaining(requested, textureLayers, baseArrayLayer uint32) uint32 {
	if requested != 0 {
		return requested
	}
	return textureLayers - baseArrayLayer
}
