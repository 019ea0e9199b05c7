package render

// RGB is a 24-bit color used for blending before conversion to tcell
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend mixes src over c with alpha
// If alpha is 1.0 or 0.0, return early
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv + 0.5),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv + 0.5),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv + 0.5),
	}
}

// Dim darkens c toward black by amount in [0,1]
func Dim(c RGB, amount float64) RGB {
	return Blend(c, RGBBlack, amount)
}

// Gradient picks a color along stops for t in [0,1]
func Gradient(t float64, stops ...RGB) RGB {
	switch len(stops) {
	case 0:
		return RGBBlack
	case 1:
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	pos := t * float64(len(stops)-1)
	i := int(pos)
	return Blend(stops[i], stops[i+1], pos-float64(i))
}
