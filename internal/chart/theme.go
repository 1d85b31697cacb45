package chart

const (
	AccentColor     = "#00ffff"
	DecreaseColor   = "#ff4d6d"
	PaperBackground = "rgba(0,0,0,0)"
	PlotBackground  = "rgba(0,0,0,0.2)"
	GridColor       = "rgba(0, 255, 255, 0.2)"
	titleFontSize   = 20
)

// Palette starts with the accent; overlay traces cycle through it.
var Palette = []string{AccentColor, "#ff00ff", "#ffd166", "#06d6a0", "#f78c6b", "#a78bfa"}

var heatmapScale = [][2]any{
	{0, "#1b0f3b"},
	{0.5, "#0b3d5c"},
	{1, AccentColor},
}

func colorAt(i int) string {
	return Palette[i%len(Palette)]
}

func themedLayout(title string) Layout {
	return Layout{
		Title:        Title{Text: title, Font: &Font{Color: AccentColor, Size: titleFontSize}},
		Font:         Font{Color: AccentColor},
		PaperBgColor: PaperBackground,
		PlotBgColor:  PlotBackground,
		XAxis:        Axis{GridColor: GridColor},
		YAxis:        Axis{GridColor: GridColor},
		ShowLegend:   true,
	}
}
