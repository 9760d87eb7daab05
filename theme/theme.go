package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme resolves style names to concrete styles. The editor takes this as
// an injected capability, so rendering never reads ambient theme state.

var DefaultStyle = tcell.StyleDefault.
	Foreground(tcell.ColorReset).
	Background(tcell.ColorReset)

type Theme struct {
	styles   map[string]tcell.Style
	fallback tcell.Style
}

// Default builds the stock theme. Secondary styles (gutter, minimap) are
// derived by blending the text colors toward the background so they read
// as dimmed without hardcoding per-terminal palettes.
func Default() *Theme {
	fg := colorful.Color{R: 0.85, G: 0.85, B: 0.85}
	bg := colorful.Color{R: 0.08, G: 0.08, B: 0.10}
	accent := colorful.Color{R: 0.95, G: 0.75, B: 0.30}

	text := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
	dimmed := fg.BlendLab(bg, 0.55)

	styles := map[string]tcell.Style{
		"text":               text,
		"linenumber":         text.Foreground(toTcell(dimmed)),
		"linenumber.current": text.Foreground(toTcell(accent)).Bold(true),
		"minimap":            text.Foreground(toTcell(fg.BlendLab(bg, 0.35))),
		"scrollbar":          text.Foreground(toTcell(dimmed)),
		"status":             text.Reverse(true),
	}
	return &Theme{styles: styles, fallback: text}
}

func (t *Theme) Style(name string) tcell.Style {
	if s, ok := t.styles[name]; ok {
		return s
	}
	return t.fallback
}

// Set overrides or adds a named style.
func (t *Theme) Set(name string, style tcell.Style) {
	t.styles[name] = style
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
