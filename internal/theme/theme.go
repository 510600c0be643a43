package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds the fixed colors the widgets blend between. Accent is only the
// fallback used until a caller assigns an explicit accent color.
type Palette struct {
	Accent          colorful.Color
	Highlight       colorful.Color
	Background      colorful.Color
	PopupForeground colorful.Color
	PopupBackground colorful.Color
	HeaderSurface   colorful.Color
	Yellow          colorful.Color
	Muted           colorful.Color
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title       *lipgloss.Style
	Artist      *lipgloss.Style
	Meta        *lipgloss.Style
	MetaEmph    *lipgloss.Style
	Stat        *lipgloss.Style
	Pill        *lipgloss.Style
	Info        *lipgloss.Style
	Error       *lipgloss.Style
	Footer      *lipgloss.Style
	CardBorder  *lipgloss.Style
	FilterBox   *lipgloss.Style
	FilterEmpty *lipgloss.Style
}

var defaultPalette = Palette{
	Accent:          mustHex("#66ccff"),
	Highlight:       mustHex("#ffffff"),
	Background:      mustHex("#000000"),
	PopupForeground: mustHex("#000000"),
	PopupBackground: mustHex("#1c1c1c"),
	HeaderSurface:   mustHex("#262626"),
	Yellow:          mustHex("#ffcc22"),
	Muted:           mustHex("#8a8a8a"),
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Italic(true),
	),
	Artist: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true).Italic(true),
	),
	Meta: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	MetaEmph: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true).Italic(true),
	),
	Stat: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Pill: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")).Padding(0, 1),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	CardBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	),
	FilterBox: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	FilterEmpty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// DefaultPalette returns a copy of the built-in palette.
func DefaultPalette() Palette {
	return defaultPalette
}

// Color converts a palette entry into a Lip Gloss color.
func Color(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}

// ParseHex parses "#rrggbb" or "#rgb" accent strings.
func ParseHex(s string) (colorful.Color, error) {
	return colorful.Hex(s)
}

// Difficulty returns the icon color for a star rating, bucketed the same way
// the game client colors its difficulty icons.
func Difficulty(stars float64) colorful.Color {
	switch {
	case stars < 2.0:
		return mustHex("#88b300")
	case stars < 2.7:
		return mustHex("#66ccff")
	case stars < 4.0:
		return mustHex("#ffcc22")
	case stars < 5.3:
		return mustHex("#ff66aa")
	case stars < 6.5:
		return mustHex("#aa88ff")
	default:
		return mustHex("#121415")
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
