package window

import (
	"image/color"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// rgba maps core colors to the xterm values the terminal frontend shows.
var rgba = map[core.Color]color.RGBA{
	core.ColorBlack:         {0, 0, 0, 255},
	core.ColorRed:           {205, 0, 0, 255},
	core.ColorGreen:         {0, 205, 0, 255},
	core.ColorYellow:        {205, 205, 0, 255},
	core.ColorBlue:          {0, 0, 238, 255},
	core.ColorMagenta:       {205, 0, 205, 255},
	core.ColorCyan:          {0, 205, 205, 255},
	core.ColorWhite:         {229, 229, 229, 255},
	core.ColorBrightRed:     {255, 0, 0, 255},
	core.ColorBrightGreen:   {0, 255, 0, 255},
	core.ColorBrightYellow:  {255, 255, 0, 255},
	core.ColorBrightBlue:    {92, 92, 255, 255},
	core.ColorBrightMagenta: {255, 0, 255, 255},
	core.ColorBrightCyan:    {0, 255, 255, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 135, 0, 255},
	core.ColorGray:          {138, 138, 138, 255},
}

// toRGBA converts a core color. ColorDefault resolves to fallback.
func toRGBA(c core.Color, fallback color.RGBA) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return fallback
}
