// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/redwarx/rhi/hal/vulkan/vk"
)

const vkAPIVersion1_3 = uint32(1)<<22 | uint32(3)<<12

// Instance owns the VkInstance and the loaded command table shared by every
// device created from it.
type Instance struct {
	handle vk.Instance
	cmds   *vk.Commands
}

// InstanceDescriptor configures instance creation.
type InstanceDescriptor struct {
	// ApplicationName is reported to the driver for telemetry/allow-listing.
	ApplicationName string
}

// NewInstance loads the Vulkan library, creates a VkInstance and resolves the
// instance-level command table.
func NewInstance(desc *InstanceDescriptor) (*Instance, error) {
	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("vulkan: load loader: %w", err)
	}

	cmds := vk.NewCommands()
	if err := cmds.LoadGlobal(); err != nil {
		return nil, fmt.Errorf("vulkan: load global commands: %w", err)
	}

	appName := cString(desc.ApplicationName)
	engineName := cString("gogpu-rhi")
	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   appName,
		ApplicationVersion: 1,
		PEngineName:        engineName,
		EngineVersion:      1,
		ApiVersion:         vkAPIVersion1_3,
	}
	createInfo := vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &appInfo,
	}

	var handle vk.Instance
	if res := cmds.CreateInstance(&createInfo, nil, &handle); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateInstance failed: %d", res)
	}
	if err := cmds.LoadInstance(handle); err != nil {
		cmds.DestroyInstance(handle, nil)
		return nil, fmt.Errorf("vulkan: load instance commands: %w", err)
	}
	vk.SetDeviceProcAddr(handle)

	return &Instance{handle: handle, cmds: cmds}, nil
}

// Handle returns the VkInstance handle.
func (i *Instance) Handle() vk.Instance {
	return i.handle
}

// Destroy destroys the instance. All devices and surfaces created from it
// must already be destroyed.
func (i *Instance) Destroy() {
	i.cmds.DestroyInstance(i.handle, nil)
}

// PhysicalDeviceInfo describes one enumerated adapter.
type PhysicalDeviceInfo struct {
	Handle         vk.PhysicalDevice
	Name           string
	GraphicsFamily uint32
	HasGraphics    bool
}

// EnumerateAdapters lists physical devices exposing a graphics+compute queue
// family, the only configuration this core targets.
func (i *Instance) EnumerateAdapters() ([]PhysicalDeviceInfo, error) {
	var count uint32
	if res := i.cmds.EnumeratePhysicalDevices(i.handle, &count, nil); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkEnumeratePhysicalDevices failed: %d", res)
	}
	if count == 0 {
		return nil, nil
	}
	devices := make([]vk.PhysicalDevice, count)
	if res := i.cmds.EnumeratePhysicalDevices(i.handle, &count, &devices[0]); res != vk.Success {
		return nil, fmt.Errorf("vulkan: vkEnumeratePhysicalDevices failed: %d", res)
	}

	infos := make([]PhysicalDeviceInfo, 0, count)
	for _, pd := range devices {
		var props vk.PhysicalDeviceProperties
		i.cmds.GetPhysicalDeviceProperties(pd, &props)

		var familyCount uint32
		i.cmds.GetPhysicalDeviceQueueFamilyProperties(pd, &familyCount, nil)
		families := make([]vk.QueueFamilyProperties, familyCount)
		if familyCount > 0 {
			i.cmds.GetPhysicalDeviceQueueFamilyProperties(pd, &familyCount, &families[0])
		}

		info := PhysicalDeviceInfo{Handle: pd, Name: goString(props.DeviceName[:])}
		for idx, fam := range families {
			if fam.QueueFlags&vk.QueueGraphicsBit != 0 && fam.QueueFlags&vk.QueueComputeBit != 0 {
				info.GraphicsFamily = uint32(idx)
				info.HasGraphics = true
				break
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Surface wraps an externally created VkSurfaceKHR. Window-system surface
// creation (Win32, Xlib, Wayland, Metal) is the caller's responsibility; this
// core only consumes the resulting handle.
type Surface struct {
	handle    vk.SurfaceKHR
	instance  *Instance
	device    *Device
	swapchain *Swapchain

	// surfaceDestroyDeferred is set once a Swapchain.Destroy has handed the
	// surface handle off to a ResourceDeleter; Destroy must not free it again.
	surfaceDestroyDeferred bool
}

// NewSurface wraps a platform-created VkSurfaceKHR handle.
func NewSurface(instance *Instance, handle vk.SurfaceKHR) *Surface {
	return &Surface{handle: handle, instance: instance}
}

// Handle returns the VkSurfaceKHR handle.
func (s *Surface) Handle() vk.SurfaceKHR {
	return s.handle
}

// Destroy destroys the surface and any swapchain still bound to it. If the
// swapchain's teardown deferred its own destruction (and the surface's) to a
// ResourceDeleter, the surface handle is already spoken for and is not
// destroyed again here.
func (s *Surface) Destroy() {
	if s.swapchain != nil {
		s.swapchain.Destroy()
		s.swapchain = nil
	}
	if s.surfaceDestroyDeferred {
		return
	}
	s.instance.cmds.DestroySurfaceKHR(s.instance.handle, s.handle, nil)
}

func cString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

func goString(b []byte) string {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return string(b[:n])
}
