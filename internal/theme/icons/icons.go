// Package icons loads themed icon assets.
package icons

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Type names an icon asset.
type Type string

// Pin is the pin toggle icon.
const Pin Type = "pin"

// State selects an image variant of a toggle icon.
type State int

const (
	Off State = iota
	On
)

func (s State) String() string {
	if s == On {
		return "on"
	}
	return "off"
}

// Size is an integer width and height.
type Size struct {
	W int
	H int
}

// toggleFiles maps toggle icon types to their per-state file names.
var toggleFiles = map[Type]map[State]string{
	Pin: {
		On:  "pin_filled",
		Off: "pin_outlined",
	},
}

// IsToggle reports whether t has on and off variants.
func IsToggle(t Type) bool {
	_, ok := toggleFiles[t]
	return ok
}

// Image is one loaded icon variant.
type Image struct {
	Path string
	Data []byte
}

// Rasterize renders the SVG data into an RGBA image of the given size.
func (img Image) Rasterize(size Size) (*image.RGBA, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", size.W, size.H)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(img.Data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg %s: %w", img.Path, err)
	}
	icon.SetTarget(0, 0, float64(size.W), float64(size.H))

	rgba := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	scanner := rasterx.NewScannerGV(size.W, size.H, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size.W, size.H, scanner), 1)
	return rgba, nil
}

// Icon is a single-state or toggle icon.
type Icon struct {
	Type   Type
	images map[State]Image
}

// IsToggle reports whether the icon swaps images by state.
func (i Icon) IsToggle() bool {
	return len(i.images) > 1
}

// States lists the available states in order.
func (i Icon) States() []State {
	states := make([]State, 0, len(i.images))
	for _, state := range []State{Off, On} {
		if _, ok := i.images[state]; ok {
			states = append(states, state)
		}
	}
	return states
}

// Image returns the variant for state. Single-state icons answer every
// state with their only image.
func (i Icon) Image(state State) (Image, bool) {
	if img, ok := i.images[state]; ok {
		return img, true
	}
	if !i.IsToggle() {
		for _, img := range i.images {
			return img, true
		}
	}
	return Image{}, false
}

// For returns the variant matching a checked flag.
func (i Icon) For(checked bool) (Image, bool) {
	if checked {
		return i.Image(On)
	}
	return i.Image(Off)
}
