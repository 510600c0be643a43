package app

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/atomicstack/tabstrip/internal/logging/events"
	"github.com/atomicstack/tabstrip/internal/theme"
	"github.com/atomicstack/tabstrip/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width  int
	Height int
	// InitialWidth is the terminal width detected at startup, used until the
	// program receives its first resize.
	InitialWidth  int
	Accent        string
	PreferUnicode bool
	MaxRows       int
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	opts, err := modelOptions(cfg)
	if err != nil {
		return err
	}
	detectColorProfile(termenv.NewOutput(os.Stdout))

	model := ui.NewModel(opts)
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func modelOptions(cfg Config) (ui.Options, error) {
	opts := ui.Options{
		Width:         cfg.Width,
		InitialWidth:  cfg.InitialWidth,
		Height:        cfg.Height,
		PreferUnicode: cfg.PreferUnicode,
		MaxRows:       cfg.MaxRows,
	}
	if cfg.Accent != "" {
		accent, err := theme.ParseHex(cfg.Accent)
		if err != nil {
			return ui.Options{}, fmt.Errorf("parse accent %q: %w", cfg.Accent, err)
		}
		opts.Accent = &accent
	}
	return opts, nil
}

// detectColorProfile pins lipgloss to what the terminal supports so blended
// colors degrade consistently.
func detectColorProfile(out *termenv.Output) {
	profile := out.ColorProfile()
	dark := out.HasDarkBackground()
	lipgloss.SetColorProfile(profile)
	lipgloss.SetHasDarkBackground(dark)
	events.App.ColorProfile(profileName(profile), dark)
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	}
	return "ascii"
}
