package term

import (
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

// Bright variants wash out on light backgrounds, so the palette is picked
// once at startup.
var IsDarkBg = termenv.HasDarkBackground()

var (
	ColorHiGreen   color.Attribute
	ColorHiMagenta color.Attribute
	ColorHiRed     color.Attribute
	ColorHiCyan    color.Attribute
)

func init() {
	// honor NO_COLOR and dumb terminals, including when output is piped
	if termenv.EnvColorProfile() == termenv.Ascii {
		color.NoColor = true
	}

	if IsDarkBg {
		ColorHiGreen = color.FgHiGreen
		ColorHiMagenta = color.FgHiMagenta
		ColorHiRed = color.FgHiRed
		ColorHiCyan = color.FgHiCyan
	} else {
		ColorHiGreen = color.FgGreen
		ColorHiMagenta = color.FgMagenta
		ColorHiRed = color.FgRed
		ColorHiCyan = color.FgCyan
	}
}
