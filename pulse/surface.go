package pulse

import (
	"fmt"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceConfiguration holds the parameters a surface is configured with.
// Use NewSurfaceConfiguration to derive one from the surface capabilities.
type SurfaceConfiguration struct {
	Usage       wgpu.TextureUsage
	Format      wgpu.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode wgpu.PresentMode
	AlphaMode   wgpu.CompositeAlphaMode
}

// NewSurfaceConfiguration chooses format, present mode and alpha mode from
// the capabilities of a surface. Width and height must be the current
// physical size of the window.
func NewSurfaceConfiguration(caps Capabilities, width, height uint32) (SurfaceConfiguration, error) {
	if len(caps.Formats) == 0 {
		return SurfaceConfiguration{}, fmt.Errorf("%w: surface reports no formats", ErrSurfaceCreationFailed)
	}

	if len(caps.AlphaModes) == 0 {
		return SurfaceConfiguration{}, fmt.Errorf("%w: surface reports no alpha modes", ErrSurfaceCreationFailed)
	}

	config := SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      SelectFormat(caps.Formats),
		Width:       width,
		Height:      height,
		PresentMode: SelectPresentMode(caps.PresentModes),
		AlphaMode:   caps.AlphaModes[0],
	}

	return config, nil
}

// WithSize returns a copy of the configuration with a different size.
func (c SurfaceConfiguration) WithSize(width, height uint32) SurfaceConfiguration {
	c.Width = width
	c.Height = height
	return c
}

// SelectFormat returns the first sRGB format, or the first format
// if none of them is sRGB. formats must not be empty.
func SelectFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	idx := slices.IndexFunc(formats, IsSRGB)
	if idx < 0 {
		return formats[0]
	}

	return formats[idx]
}

// IsSRGB reports whether the format is a color format in the sRGB
// color space. Only formats that can be used for a surface are considered.
func IsSRGB(format wgpu.TextureFormat) bool {
	switch format {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	default:
		return false
	}
}

// SelectPresentMode picks a present mode that does not wait for
// vertical sync. Fifo is always supported and used if nothing better
// is available.
func SelectPresentMode(modes []wgpu.PresentMode) wgpu.PresentMode {
	for _, preferred := range []wgpu.PresentMode{wgpu.PresentModeImmediate, wgpu.PresentModeMailbox} {
		if slices.Contains(modes, preferred) {
			return preferred
		}
	}

	return wgpu.PresentModeFifo
}
