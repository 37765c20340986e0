package render

import "image/color"

func white(alpha float64) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(alpha*255 + 0.5)}
}

var (
	backdropColor = color.NRGBA{A: white(0.2).A}
	gridColor     = white(0.2)
	labelColor    = white(0.7)
	outlineColor  = white(0.8)
	axisColor     = white(0.5)
	meshColor     = white(0.2)

	labelStyle = TextStyle{Color: labelColor, Size: 12, Align: AlignCenter}
	axisLabel  = TextStyle{Color: labelColor, Size: 12, Align: AlignLeft}
)

// patternStops is the decorative red→blue fill of polar plots, alpha 0.8.
var patternStops = []Stop{
	{0, color.NRGBA{255, 0, 0, 204}},
	{0.25, color.NRGBA{255, 255, 0, 204}},
	{0.5, color.NRGBA{0, 255, 0, 204}},
	{0.75, color.NRGBA{0, 255, 255, 204}},
	{1, color.NRGBA{0, 0, 255, 204}},
}
