package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/timelinefade/scene"
)

// layerImage builds the solid-color image for a layer spec.
func layerImage(spec scene.LayerSpec) *ebiten.Image {
	w, h := spec.W, spec.H
	if w <= 0 {
		w = baseWidth
	}
	if h <= 0 {
		h = baseHeight
	}
	img := ebiten.NewImage(w, h)
	img.Fill(parseHexColor(spec.Color))
	return img
}

// parseHexColor parses a color in the form #rrggbb. Returns a default
// blue if the parse fails.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0x00, 0x00, 0xff
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
