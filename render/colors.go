package render

// Palette, Tokyo Night based
var (
	RgbBackground   = RGB{26, 27, 38}
	RgbPageText     = RGB{169, 177, 214}
	RgbPageGrid     = RGB{41, 46, 66}
	RgbTargetBg     = RGB{61, 89, 161}
	RgbTargetText   = RGB{255, 255, 255}
	RgbCrosshair    = RGB{255, 165, 0}
	RgbGaze         = RGB{125, 207, 255}
	RgbFrozen       = RGB{187, 154, 247}
	RgbStatusBar    = RGB{255, 255, 255}
	RgbStatusBg     = RGB{36, 40, 59}
	RgbKeyboardBg   = RGB{31, 35, 53}
	RgbKeyboardKey  = RGB{192, 202, 245}
	RgbKeyboardText = RGB{158, 206, 106}
	RgbShiftOn      = RGB{224, 175, 104}

	// Deviation gauge stops, settled to unsettled
	RgbGaugeLow  = RGB{158, 206, 106}
	RgbGaugeMid  = RGB{224, 175, 104}
	RgbGaugeHigh = RGB{247, 118, 142}
)

// GaugeColor maps deviation in [0,1] to the gauge gradient
func GaugeColor(deviation float64) RGB {
	return Gradient(deviation, RgbGaugeLow, RgbGaugeMid, RgbGaugeHigh)
}
