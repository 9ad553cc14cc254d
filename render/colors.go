package render

import "image/color"

var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 50, A: 255}
	Pink   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 56, B: 56, A: 255}   // #FF3838
	Green  = color.RGBA{R: 72, G: 249, B: 10, A: 255}   // #48F90A
	Cyan   = color.RGBA{R: 0, G: 212, B: 187, A: 255}   // #00D4BB
	Blue   = color.RGBA{R: 0, G: 194, B: 255, A: 255}   // #00C2FF
	Orange = color.RGBA{R: 255, G: 112, B: 31, A: 255}  // #FF701F
)

// hsvScalar packs an HSV triplet into a color.RGBA so GoCV passes it through
// to a three channel HSV Mat unchanged, GoCV writes the B, G and R fields to
// channels 0, 1 and 2
func hsvScalar(h, s, v uint8) color.RGBA {
	return color.RGBA{B: h, G: s, R: v, A: 255}
}

// hueToRGBA returns the fully saturated, full brightness color of an 8-bit
// hue in [0,180)
func hueToRGBA(hue float64) color.RGBA {

	// hue is stored as degrees/2
	deg := hue * 2
	for deg >= 360 {
		deg -= 360
	}
	for deg < 0 {
		deg += 360
	}

	sector := int(deg / 60)
	f := deg/60 - float64(sector)

	up := uint8(255*f + 0.5)
	down := uint8(255*(1-f) + 0.5)

	switch sector {
	case 0:
		return color.RGBA{R: 255, G: up, B: 0, A: 255}
	case 1:
		return color.RGBA{R: down, G: 255, B: 0, A: 255}
	case 2:
		return color.RGBA{R: 0, G: 255, B: up, A: 255}
	case 3:
		return color.RGBA{R: 0, G: down, B: 255, A: 255}
	case 4:
		return color.RGBA{R: up, G: 0, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, G: 0, B: down, A: 255}
	}
}

// scaleRGBA darkens c by factor f within [0,1]
func scaleRGBA(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: c.A,
	}
}
