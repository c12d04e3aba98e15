// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

// SubresourceStorage is a compressed map from (aspect, array layer, mip
// level) to T. Storage is compressed on two axes: an aspect whose
// subresources all share one value stores that value once, and within an
// aspect a layer whose mips all share one value stores that value once.
//
// The zero value is not usable; construct with NewSubresourceStorage.
type SubresourceStorage[T any] struct {
	aspects    Aspect
	layerCount uint32
	mipCount   uint32

	// perAspect holds, for each aspect bit present in aspects, either a
	// single compressed value (compressed == true) or one entry per layer.
	perAspect map[Aspect]*aspectStorage[T]
}

type aspectStorage[T any] struct {
	compressed bool
	value      T        // valid iff compressed
	layers     []*layerStorage[T] // valid iff !compressed, len == layerCount
}

type layerStorage[T any] struct {
	compressed bool
	value      T   // valid iff compressed
	mips       []T // valid iff !compressed, len == mipCount
}

// NewSubresourceStorage creates a storage covering aspects x layerCount x
// mipCount subresources, all initialized to the zero value of T.
func NewSubresourceStorage[T any](aspects Aspect, layerCount, mipCount uint32) *SubresourceStorage[T] {
	s := &SubresourceStorage[T]{
		aspects:    aspects,
		layerCount: layerCount,
		mipCount:   mipCount,
		perAspect:  make(map[Aspect]*aspectStorage[T]),
	}
	var zero T
	s.Fill(zero)
	return s
}

// Fill sets every subresource to v, fully compressed.
func (s *SubresourceStorage[T]) Fill(v T) {
	for _, bit := range s.aspects.Bits() {
		s.perAspect[bit] = &aspectStorage[T]{compressed: true, value: v}
	}
}

// Get returns the value at a single subresource.
func (s *SubresourceStorage[T]) Get(aspect Aspect, layer, mip uint32) T {
	a := s.perAspect[aspect]
	if a == nil || a.compressed {
		var zero T
		if a != nil {
			return a.value
		}
		return zero
	}
	l := a.layers[layer]
	if l.compressed {
		return l.value
	}
	return l.mips[mip]
}

// expandAspect turns a compressed aspect entry into one entry per layer.
func (s *SubresourceStorage[T]) expandAspect(a *aspectStorage[T]) {
	if !a.compressed {
		return
	}
	v := a.value
	a.layers = make([]*layerStorage[T], s.layerCount)
	for i := range a.layers {
		a.layers[i] = &layerStorage[T]{compressed: true, value: v}
	}
	a.compressed = false
}

// expandLayer turns a compressed layer entry into one entry per mip.
func (s *SubresourceStorage[T]) expandLayer(l *layerStorage[T]) {
	if !l.compressed {
		return
	}
	v := l.value
	l.mips = make([]T, s.mipCount)
	for i := range l.mips {
		l.mips[i] = v
	}
	l.compressed = false
}

// tryCompressLayer re-compresses a layer if every mip now agrees, using eq
// to compare values.
func tryCompressLayer[T any](l *layerStorage[T], eq func(a, b T) bool) {
	if l.compressed {
		return
	}
	first := l.mips[0]
	for _, v := range l.mips[1:] {
		if !eq(v, first) {
			return
		}
	}
	l.compressed = true
	l.value = first
	l.mips = nil
}

// tryCompressAspect re-compresses an aspect if every layer now agrees, using
// eq to compare values.
func tryCompressAspect[T any](a *aspectStorage[T], eq func(x, y T) bool) {
	if a.compressed {
		return
	}
	for _, l := range a.layers {
		if !l.compressed {
			return
		}
	}
	first := a.layers[0].value
	for _, l := range a.layers[1:] {
		if !eq(l.value, first) {
			return
		}
	}
	a.compressed = true
	a.value = first
	a.layers = nil
}

// Update invokes fn(subRange, &T) once per stored value that range covers: a
// whole compressed aspect when range spans the aspect, a whole compressed
// layer when range spans its mips, and otherwise each single mip. It then
// re-compresses storage where values converged. eq compares two T values for
// the purpose of re-compression.
func (s *SubresourceStorage[T]) Update(r SubresourceRange, eq func(a, b T) bool, fn func(sub SubresourceRange, value *T)) {
	for _, bit := range r.Aspects.Bits() {
		a := s.perAspect[bit]
		if a == nil {
			continue
		}

		wholeAspect := r.BaseArrayLayer == 0 && r.LayerCount == s.layerCount &&
			r.BaseMipLevel == 0 && r.LevelCount == s.mipCount

		if a.compressed && wholeAspect {
			sub := SubresourceRange{Aspects: bit, BaseArrayLayer: 0, LayerCount: s.layerCount, BaseMipLevel: 0, LevelCount: s.mipCount}
			fn(sub, &a.value)
			continue
		}

		s.expandAspect(a)
		for layer := r.BaseArrayLayer; layer < r.BaseArrayLayer+r.LayerCount; layer++ {
			l := a.layers[layer]
			wholeLayer := r.BaseMipLevel == 0 && r.LevelCount == s.mipCount
			if l.compressed && wholeLayer {
				sub := SubresourceRange{Aspects: bit, BaseArrayLayer: layer, LayerCount: 1, BaseMipLevel: 0, LevelCount: s.mipCount}
				fn(sub, &l.value)
				continue
			}
			s.expandLayer(l)
			for mip := r.BaseMipLevel; mip < r.BaseMipLevel+r.LevelCount; mip++ {
				sub := SubresourceRange{Aspects: bit, BaseArrayLayer: layer, LayerCount: 1, BaseMipLevel: mip, LevelCount: 1}
				fn(sub, &l.mips[mip])
			}
			tryCompressLayer(l, eq)
		}
		tryCompressAspect(a, eq)
	}
}

// Merge zips s with other over their common aspects, invoking
// fn(subRange, &selfT, otherT) once per single subresource (one layer, one
// mip).
// Both storages must share the same layer/mip counts.
func (s *SubresourceStorage[T]) Merge(other *SubresourceStorage[T], eq func(a, b T) bool, fn func(sub SubresourceRange, self *T, otherValue T)) {
	full := SubresourceRange{Aspects: s.aspects & other.aspects, BaseArrayLayer: 0, LayerCount: s.layerCount, BaseMipLevel: 0, LevelCount: s.mipCount}
	for _, bit := range full.Aspects.Bits() {
		for layer := uint32(0); layer < s.layerCount; layer++ {
			for mip := uint32(0); mip < s.mipCount; mip++ {
				otherVal := other.Get(bit, layer, mip)
				sub := SubresourceRange{Aspects: bit, BaseArrayLayer: layer, LayerCount: 1, BaseMipLevel: mip, LevelCount: 1}
				s.Update(sub, eq, func(_ SubresourceRange, v *T) {
					fn(sub, v, otherVal)
				})
			}
		}
	}
}

// Iterate performs a read-only traversal, calling fn once per stored value: a
// whole compressed aspect, a whole compressed layer, or a single mip.
func (s *SubresourceStorage[T]) Iterate(fn func(sub SubresourceRange, value T)) {
	for _, bit := range s.aspects.Bits() {
		a := s.perAspect[bit]
		if a == nil {
			continue
		}
		if a.compressed {
			fn(SubresourceRange{Aspects: bit, BaseArrayLayer: 0, LayerCount: s.layerCount, BaseMipLevel: 0, LevelCount: s.mipCount}, a.value)
			continue
		}
		for layer, l := range a.layers {
			if l.compressed {
				fn(SubresourceRange{Aspects: bit, BaseArrayLayer: uint32(layer), LayerCount: 1, BaseMipLevel: 0, LevelCount: s.mipCount}, l.value)
				continue
			}
			for mip, v := range l.mips {
				fn(SubresourceRange{Aspects: bit, BaseArrayLayer: uint32(layer), LayerCount: 1, BaseMipLevel: uint32(mip), LevelCount: 1}, v)
			}
		}
	}
}
