package adb

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/tmcf/droidctl/internal/platform"
)

// Screens captures the device display over screencap.
type Screens struct {
	dev *Device
}

// NewScreens returns a Screens bound to the device.
func NewScreens(dev *Device) *Screens {
	return &Screens{dev: dev}
}

// Capture grabs a full-screen PNG from the device and scales it down
// when opts.Scale is below 1.
func (s *Screens) Capture(opts platform.ScreenshotOptions) (image.Image, error) {
	raw, err := s.dev.ExecOut("screencap", "-p")
	if err != nil {
		return nil, fmt.Errorf("screencap: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode screencap output: %w", err)
	}
	if opts.Scale <= 0 || opts.Scale >= 1 {
		return img, nil
	}
	return scaleImage(img, opts.Scale), nil
}

func scaleImage(img image.Image, scale float64) image.Image {
	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
