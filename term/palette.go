package term

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// xterm 256-color palette as RGB triples. Entries 0-15 are nominal VGA
// values; real terminals theme them, so nearest-match searches start at
// the 6x6x6 cube (16) like termenv does.
var palette256 [256][3]uint8

// Nominal VGA colors for the 16-entry palette
var palette16 = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func init() {
	copy(palette256[:16], palette16[:])
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette256[16+36*r+6*g+b] = [3]uint8{cubeLevels[r], cubeLevels[g], cubeLevels[b]}
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		palette256[232+i] = [3]uint8{v, v, v}
	}
}

var (
	memo256 sync.Map // uint32 rgb -> uint8 palette index
	memo16  sync.Map
)

func packRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// rgbTo256 finds the nearest cube/grayscale palette index for an RGB value
func rgbTo256(r, g, b uint8) uint8 {
	key := packRGB(r, g, b)
	if v, ok := memo256.Load(key); ok {
		return v.(uint8)
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := 16, -1.0
	for i := 16; i < 256; i++ {
		p := palette256[i]
		pc := colorful.Color{R: float64(p[0]) / 255, G: float64(p[1]) / 255, B: float64(p[2]) / 255}
		d := c.DistanceRgb(pc)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	memo256.Store(key, uint8(best))
	return uint8(best)
}

// rgbTo16 finds the nearest 16-palette index for an RGB value
func rgbTo16(r, g, b uint8) uint8 {
	key := packRGB(r, g, b)
	if v, ok := memo16.Load(key); ok {
		return v.(uint8)
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := 0, -1.0
	for i := 0; i < 16; i++ {
		p := palette16[i]
		pc := colorful.Color{R: float64(p[0]) / 255, G: float64(p[1]) / 255, B: float64(p[2]) / 255}
		d := c.DistanceRgb(pc)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	memo16.Store(key, uint8(best))
	return uint8(best)
}

// index256To16 downsamples a 256-palette index to the 16 palette
func index256To16(n uint8) uint8 {
	if n < 16 {
		return n
	}
	p := palette256[n]
	return rgbTo16(p[0], p[1], p[2])
}
